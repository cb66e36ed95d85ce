package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/anima-tools/engine/assets/loaders"
	"github.com/spaghettifunk/anima-tools/engine/core"
	"github.com/spaghettifunk/anima-tools/engine/resources"
)

type AssetInfo struct {
	Path       string
	Type       resources.ResourceType
	LastLoaded time.Time
}

// AssetManager is the on-disk asset database of a project. Asset paths are
// slash separated and relative to the project directory, e.g.
// "Assets/Materials/Brick.amt".
type AssetManager struct {
	projectDir string
	assets     map[string]AssetInfo
	loaders    map[resources.ResourceType]Loader
	materials  map[string]*resources.Material
	dirty      map[string]*resources.Material

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
}

func NewAssetManager(projectDir string) (*AssetManager, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, err
	}
	am := &AssetManager{
		projectDir: abs,
		assets:     make(map[string]AssetInfo),
		loaders:    make(map[resources.ResourceType]Loader),
		materials:  make(map[string]*resources.Material),
		dirty:      make(map[string]*resources.Material),
	}
	am.registerLoader(resources.ResourceTypeMaterial, &loaders.MaterialLoader{})
	return am, nil
}

// Initialize indexes every asset below the project directory.
func (am *AssetManager) Initialize() error {
	if err := os.MkdirAll(am.projectDir, 0o755); err != nil {
		return err
	}
	if err := am.Refresh(); err != nil {
		return err
	}
	core.LogInfo("Asset database initialized at '%s' (%d assets).", am.projectDir, am.Count())
	return nil
}

func (am *AssetManager) ProjectDir() string {
	return am.projectDir
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType resources.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// CreateFolder creates the folder at assetPath, and its parents, if absent.
func (am *AssetManager) CreateFolder(assetPath string) error {
	dir := am.abs(assetPath)
	if s, err := os.Stat(dir); err == nil && s.IsDir() {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	core.LogDebug("Created folder %s", assetPath)
	if am.fsnotify != nil && !am.isClosed {
		return am.watchRecursive(dir, false)
	}
	return nil
}

// GenerateUniqueAssetPath returns assetPath if nothing exists there, else the
// first free "<name> N<ext>" sibling.
func (am *AssetManager) GenerateUniqueAssetPath(assetPath string) string {
	assetPath = normalize(assetPath)
	if !am.exists(assetPath) {
		return assetPath
	}
	dir, file := path.Split(assetPath)
	ext := assetExt(file)
	base := strings.TrimSuffix(file, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s%s %d%s", dir, base, i, ext)
		if !am.exists(candidate) {
			return candidate
		}
	}
}

// CreateAsset writes m to assetPath. The path must be free; use
// GenerateUniqueAssetPath first.
func (am *AssetManager) CreateAsset(m *resources.Material, assetPath string) error {
	if m == nil {
		return core.ErrNilMaterial
	}
	assetPath = normalize(assetPath)
	if am.exists(assetPath) {
		return fmt.Errorf("create asset %s: %w", assetPath, core.ErrAssetExists)
	}
	if err := loaders.SaveMaterialFile(am.abs(assetPath), m.Config()); err != nil {
		return fmt.Errorf("create asset %s: %w", assetPath, err)
	}
	m.AssetPath = assetPath

	am.mutex.Lock()
	am.assets[assetPath] = AssetInfo{Path: assetPath, Type: resources.ResourceTypeMaterial, LastLoaded: time.Now()}
	am.materials[assetPath] = m
	am.mutex.Unlock()

	core.LogDebug("Created asset %s", assetPath)
	return nil
}

// DeleteAsset removes the asset file and forgets it.
func (am *AssetManager) DeleteAsset(assetPath string) error {
	assetPath = normalize(assetPath)
	if err := os.Remove(am.abs(assetPath)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("delete asset %s: %w", assetPath, core.ErrAssetNotFound)
		}
		return err
	}
	am.removeAsset(assetPath)
	core.LogDebug("Deleted asset %s", assetPath)
	return nil
}

// SetDirty marks a loaded material to be written by the next SaveAssets.
func (am *AssetManager) SetDirty(m *resources.Material) {
	if m == nil || m.AssetPath == "" {
		return
	}
	am.mutex.Lock()
	m.Generation++
	am.dirty[m.AssetPath] = m
	am.mutex.Unlock()
}

// SaveAssets writes every dirty material back to disk.
func (am *AssetManager) SaveAssets() error {
	am.mutex.Lock()
	pending := am.dirty
	am.dirty = make(map[string]*resources.Material)
	am.mutex.Unlock()

	var errs []error
	for p, m := range pending {
		if err := loaders.SaveMaterialFile(am.abs(p), m.Config()); err != nil {
			errs = append(errs, fmt.Errorf("save asset %s: %w", p, err))
		}
	}
	return errors.Join(errs...)
}

// Refresh rescans the project directory, indexing new files and dropping
// entries whose files are gone.
func (am *AssetManager) Refresh() error {
	seen := make(map[string]struct{})
	err := filepath.WalkDir(am.projectDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := am.rel(p)
		if am.handleFileEvent(rel) {
			seen[rel] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return err
	}
	am.mutex.Lock()
	for p := range am.assets {
		if _, ok := seen[p]; !ok {
			delete(am.assets, p)
			delete(am.materials, p)
		}
	}
	am.mutex.Unlock()
	return nil
}

// LoadMaterial returns the material stored at assetPath. Loading the same
// path twice returns the same *Material.
func (am *AssetManager) LoadMaterial(assetPath string) (*resources.Material, error) {
	assetPath = normalize(assetPath)
	am.mutex.RLock()
	m, ok := am.materials[assetPath]
	am.mutex.RUnlock()
	if ok {
		return m, nil
	}

	res, err := am.LoadAsset(assetPath, resources.ResourceTypeMaterial, nil)
	if err != nil {
		return nil, err
	}
	cfg, ok := res.Data.(*resources.MaterialConfig)
	if !ok {
		return nil, fmt.Errorf("asset %s is not a material", assetPath)
	}
	m = resources.NewMaterial(cfg)
	m.AssetPath = assetPath

	am.mutex.Lock()
	// lost a race with another loader, keep the first instance
	if existing, ok := am.materials[assetPath]; ok {
		am.mutex.Unlock()
		return existing, nil
	}
	am.materials[assetPath] = m
	am.mutex.Unlock()

	// the GUID minted for a file without one is persisted on the next save
	if cfg.GUID == "" {
		am.SetDirty(m)
	}
	return m, nil
}

// Load an asset using the appropriate loader
func (am *AssetManager) LoadAsset(assetPath string, resourceType resources.ResourceType, params interface{}) (*resources.Resource, error) {
	assetPath = normalize(assetPath)
	am.mutex.Lock()
	asset, exists := am.assets[assetPath]
	if !exists {
		am.mutex.Unlock()
		return nil, fmt.Errorf("%w: %s", core.ErrAssetNotFound, assetPath)
	}
	asset.LastLoaded = time.Now()
	am.assets[assetPath] = asset
	am.mutex.Unlock()

	if asset.Type != resourceType {
		return nil, fmt.Errorf("asset %s is a %s, not a %s", assetPath, asset.Type, resourceType)
	}
	loader, loaderExists := am.loaders[asset.Type]
	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type: %s", asset.Type)
	}
	return loader.Load(am.abs(assetPath), resourceType, params)
}

func (am *AssetManager) Info(assetPath string) (AssetInfo, bool) {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	info, ok := am.assets[normalize(assetPath)]
	return info, ok
}

func (am *AssetManager) Count() int {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	return len(am.assets)
}

// Watch keeps the index in sync with files created, written or removed
// outside of the asset manager until Close is called.
func (am *AssetManager) Watch() error {
	if am.isClosed {
		return errors.New("asset watcher already closed")
	}
	if am.fsnotify != nil {
		return nil
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	am.fsnotify = fsWatch
	am.done = make(chan struct{})
	if err := am.watchRecursive(am.projectDir, false); err != nil {
		fsWatch.Close()
		am.fsnotify = nil
		return err
	}
	go am.start(fsWatch, am.done)
	return nil
}

func (am *AssetManager) Close() error {
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	if am.done != nil {
		close(am.done)
	}
	return nil
}

func (am *AssetManager) start(w *fsnotify.Watcher, done chan struct{}) {
	for {
		select {
		case e, ok := <-w.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := am.watchRecursive(e.Name, false); err != nil {
						core.LogWarn("watch %s: %s", e.Name, err)
					}
				}
				continue
			}
			rel := am.rel(e.Name)
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(rel)
			}
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				am.removeAsset(rel)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			core.LogError("%s", err)

		case <-done:
			w.Close()
			return
		}
	}
}

// watchRecursive adds all directories under the given one to the watch list.
func (am *AssetManager) watchRecursive(dir string, unWatch bool) error {
	return filepath.WalkDir(dir, func(walkPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			am.handleFileEvent(am.rel(walkPath))
			return nil
		}
		if unWatch {
			return am.fsnotify.Remove(walkPath)
		}
		return am.fsnotify.Add(walkPath)
	})
}

// Handle the creation or modification of a file. Reports whether the file
// is a known asset type.
func (am *AssetManager) handleFileEvent(assetPath string) bool {
	assetType := determineAssetType(assetPath)
	if assetType == resources.ResourceTypeNone {
		return false
	}
	am.mutex.Lock()
	defer am.mutex.Unlock()
	if _, ok := am.assets[assetPath]; !ok {
		am.assets[assetPath] = AssetInfo{
			Path: assetPath,
			Type: assetType,
		}
	}
	return true
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(assetPath string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, assetPath)
	delete(am.materials, assetPath)
	delete(am.dirty, assetPath)
}

func (am *AssetManager) exists(assetPath string) bool {
	am.mutex.RLock()
	_, indexed := am.assets[assetPath]
	am.mutex.RUnlock()
	if indexed {
		return true
	}
	_, err := os.Stat(am.abs(assetPath))
	return err == nil
}

func (am *AssetManager) abs(assetPath string) string {
	if filepath.IsAbs(assetPath) {
		return assetPath
	}
	return filepath.Join(am.projectDir, filepath.FromSlash(assetPath))
}

func (am *AssetManager) rel(p string) string {
	r, err := filepath.Rel(am.projectDir, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(r)
}

func normalize(assetPath string) string {
	return path.Clean(filepath.ToSlash(assetPath))
}

func assetExt(name string) string {
	for _, ext := range []string{".scene.toml", ".prefab.toml"} {
		if strings.HasSuffix(name, ext) {
			return ext
		}
	}
	return path.Ext(name)
}

func determineAssetType(p string) resources.ResourceType {
	switch assetExt(p) {
	case resources.MaterialExtension:
		return resources.ResourceTypeMaterial
	case ".scene.toml":
		return resources.ResourceTypeScene
	case ".prefab.toml":
		return resources.ResourceTypePrefab
	default:
		return resources.ResourceTypeNone
	}
}
