package engine

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spaghettifunk/anima-tools/engine/core"
	"github.com/spaghettifunk/anima-tools/engine/scene"
)

// OpenScene loads a scene or prefab document. Materials are resolved
// through the asset database so every renderer pointing at the same asset
// shares one *Material. Opening the same file twice returns the same scene.
func (e *Engine) OpenScene(path string) (*scene.Scene, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if s, ok := e.scenes[abs]; ok {
		return s, nil
	}
	s, err := scene.LoadFile(abs, e.assetManager)
	if err != nil {
		return nil, err
	}
	e.scenes[abs] = s
	return s, nil
}

// OpenScenes returns the paths of the loaded documents.
func (e *Engine) OpenScenes() []string {
	paths := make([]string, 0, len(e.scenes))
	for p := range e.scenes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// NeedsSave reports whether s has edits to write. Prefab assets and prefab
// instances record no dirty flags, so any successful edit counts.
func (e *Engine) NeedsSave(s *scene.Scene) bool {
	return e.touched[s] || s.IsDirty()
}

// SaveScenes writes every open document that needs saving and returns the
// paths written.
func (e *Engine) SaveScenes() ([]string, error) {
	var saved []string
	for _, p := range e.OpenScenes() {
		s := e.scenes[p]
		if !e.NeedsSave(s) {
			continue
		}
		if err := s.SaveFile(p); err != nil {
			return saved, fmt.Errorf("save %s: %w", p, err)
		}
		delete(e.touched, s)
		saved = append(saved, p)
		core.LogInfo("saved %s", p)
	}
	return saved, nil
}
