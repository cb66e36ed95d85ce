package engine

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spaghettifunk/anima-tools/engine/assets"
	"github.com/spaghettifunk/anima-tools/engine/config"
	"github.com/spaghettifunk/anima-tools/engine/core"
	"github.com/spaghettifunk/anima-tools/engine/editor"
	"github.com/spaghettifunk/anima-tools/engine/history"
	"github.com/spaghettifunk/anima-tools/engine/scene"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete and tools can run
	EngineStageInitialized
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

const projectLockName = ".anima-tools.lock"

var (
	ErrNotInitialized = errors.New("engine is not initialized")
	ErrProjectLocked  = errors.New("project is locked by another anima-tools process")
)

// Engine bundles the material tools with the project they operate on: the
// asset database, the undo history, the open scene documents and the
// session change log.
type Engine struct {
	currentStage Stage
	appConfig    *ApplicationConfig
	assetManager *assets.AssetManager
	history      *history.History
	prefabs      scene.PrefabUtility
	ripper       *editor.Ripper
	replacer     *editor.Replacer
	changeLog    *editor.ChangeLog
	lock         *flock.Flock

	scenes  map[string]*scene.Scene
	touched map[*scene.Scene]bool
}

func New(appConfig *ApplicationConfig) (*Engine, error) {
	if appConfig.Settings == nil {
		def := config.Default()
		appConfig.Settings = &def
	}

	am, err := assets.NewAssetManager(appConfig.AssetsDir)
	if err != nil {
		core.LogError("%s", err)
		return nil, err
	}

	h := history.New(appConfig.MaxUndoGroups)
	var prefabs scene.PrefabUtility

	return &Engine{
		currentStage: EngineStageUninitialized,
		appConfig:    appConfig,
		assetManager: am,
		history:      h,
		prefabs:      prefabs,
		ripper:       editor.NewRipper(am, h, prefabs),
		replacer:     editor.NewReplacer(h, prefabs),
		changeLog:    editor.NewChangeLog(),
		scenes:       make(map[string]*scene.Scene),
		touched:      make(map[*scene.Scene]bool),
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	core.SetLogLevel(e.appConfig.LogLevel)

	if err := e.assetManager.Initialize(); err != nil {
		return err
	}
	lock := flock.New(filepath.Join(e.assetManager.ProjectDir(), projectLockName))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire project lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrProjectLocked, lock.Path())
	}
	if e.appConfig.WatchAssets {
		if err := e.assetManager.Watch(); err != nil {
			_ = lock.Unlock()
			return fmt.Errorf("watch assets: %w", err)
		}
	}
	e.lock = lock

	e.currentStage = EngineStageInitialized
	core.LogInfo("%s initialized on project '%s'", e.appConfig.Name, e.assetManager.ProjectDir())
	return nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) AssetManager() *assets.AssetManager {
	return e.assetManager
}

func (e *Engine) History() *history.History {
	return e.history
}

func (e *Engine) ChangeLog() *editor.ChangeLog {
	return e.changeLog
}

func (e *Engine) Settings() *config.Config {
	return e.appConfig.Settings
}

// DefaultRipOptions builds the rip options from the [ripper] settings.
func (e *Engine) DefaultRipOptions() (editor.RipOptions, error) {
	s := e.appConfig.Settings.Ripper
	layout, err := editor.ParseFolderLayout(s.FolderLayout)
	if err != nil {
		return editor.RipOptions{}, err
	}
	return editor.RipOptions{FolderPath: s.FolderPath, NameSuffix: s.NameSuffix, Layout: layout}, nil
}

// Rip clones the primary materials under the named roots of s. No names
// means every root of the scene. Unknown names are logged and skipped.
func (e *Engine) Rip(s *scene.Scene, rootNames []string, opts editor.RipOptions) ([]string, error) {
	if e.currentStage != EngineStageInitialized {
		return nil, ErrNotInitialized
	}
	roots := s.Roots
	if len(rootNames) > 0 {
		roots = make([]*scene.Node, 0, len(rootNames))
		for _, name := range rootNames {
			n := s.Lookup(name)
			if n == nil {
				core.LogWarn("%s: no node named '%s' in '%s'", editor.RipperToolName, name, s.Name)
			}
			// a nil root is reported and skipped by the ripper
			roots = append(roots, n)
		}
	}
	created, err := e.ripper.RipWithLog(roots, opts, e.changeLog)
	if len(created) > 0 {
		e.touched[s] = true
	}
	return created, err
}

// Replace substitutes the materials stored at findPaths with those at
// replacePaths, index for index, under the named node of s.
func (e *Engine) Replace(s *scene.Scene, rootName string, findPaths, replacePaths []string) (int, error) {
	if e.currentStage != EngineStageInitialized {
		return 0, ErrNotInitialized
	}
	find, err := e.loadMaterials(findPaths)
	if err != nil {
		return 0, err
	}
	replace, err := e.loadMaterials(replacePaths)
	if err != nil {
		return 0, err
	}
	n, err := e.replacer.ReplaceWithLog(e.findRoot(s, rootName), find, replace, e.changeLog)
	if n > 0 {
		e.touched[s] = true
	}
	return n, err
}

// Gather lists the distinct materials under the named node of s.
func (e *Engine) Gather(s *scene.Scene, rootName string) ([]*scene.Material, error) {
	return editor.GatherMaterialsWithLog(e.findRoot(s, rootName), e.changeLog)
}

// Undo reverts the most recent batch edit.
func (e *Engine) Undo() (string, error) {
	label, err := e.history.Undo()
	if err != nil {
		return "", err
	}
	e.changeLog.Add(fmt.Sprintf("undo: %s", label))
	return label, nil
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	core.LogInfo("shutting down %s", e.appConfig.Name)
	err := e.assetManager.Close()
	if e.lock != nil {
		if uerr := e.lock.Unlock(); uerr != nil {
			core.LogWarn("failed to release project lock: %s", uerr)
		}
	}
	return err
}

func (e *Engine) findRoot(s *scene.Scene, name string) *scene.Node {
	n := s.Lookup(name)
	if n == nil {
		core.LogWarn("no node named '%s' in '%s'", name, s.Name)
	}
	return n
}

func (e *Engine) loadMaterials(paths []string) ([]*scene.Material, error) {
	out := make([]*scene.Material, 0, len(paths))
	for _, p := range paths {
		m, err := e.assetManager.LoadMaterial(p)
		if err != nil {
			return nil, fmt.Errorf("load material: %w", err)
		}
		out = append(out, m)
	}
	return out, nil
}
