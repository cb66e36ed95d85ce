package editor

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"
	"testing"

	"github.com/spaghettifunk/anima-tools/engine/core"
	"github.com/spaghettifunk/anima-tools/engine/history"
	"github.com/spaghettifunk/anima-tools/engine/math"
	"github.com/spaghettifunk/anima-tools/engine/resources"
	"github.com/spaghettifunk/anima-tools/engine/scene"
)

var errDiskFull = errors.New("disk full")

// memAssets is an in-memory AssetDatabase.
type memAssets struct {
	folders   []string
	assets    map[string]*resources.Material
	created   []string
	deleted   []string
	saves     int
	refreshes int
	// failOn makes the n-th CreateAsset call (1-based) fail.
	failOn int
	calls  int
}

func newMemAssets() *memAssets {
	return &memAssets{assets: make(map[string]*resources.Material)}
}

func (m *memAssets) CreateFolder(p string) error {
	for _, f := range m.folders {
		if f == p {
			return nil
		}
	}
	m.folders = append(m.folders, p)
	return nil
}

func (m *memAssets) GenerateUniqueAssetPath(p string) string {
	if _, ok := m.assets[p]; !ok {
		return p
	}
	ext := path.Ext(p)
	base := strings.TrimSuffix(p, ext)
	for i := 1; ; i++ {
		c := fmt.Sprintf("%s %d%s", base, i, ext)
		if _, ok := m.assets[c]; !ok {
			return c
		}
	}
}

func (m *memAssets) CreateAsset(mat *resources.Material, p string) error {
	m.calls++
	if m.failOn > 0 && m.calls == m.failOn {
		return errDiskFull
	}
	if _, ok := m.assets[p]; ok {
		return core.ErrAssetExists
	}
	mat.AssetPath = p
	m.assets[p] = mat
	m.created = append(m.created, p)
	return nil
}

func (m *memAssets) DeleteAsset(p string) error {
	if _, ok := m.assets[p]; !ok {
		return core.ErrAssetNotFound
	}
	delete(m.assets, p)
	m.deleted = append(m.deleted, p)
	return nil
}

func (m *memAssets) SaveAssets() error {
	m.saves++
	return nil
}

func (m *memAssets) Refresh() error {
	m.refreshes++
	return nil
}

func newMat(name string) *resources.Material {
	return resources.NewMaterial(&resources.MaterialConfig{
		Name:          name,
		ShaderName:    "Builtin.MaterialShader",
		DiffuseColour: math.NewVec4One(),
	})
}

type fixture struct {
	assets   *memAssets
	history  *history.History
	prefabs  scene.PrefabUtility
	ripper   *Ripper
	replacer *Replacer
}

func newFixture() *fixture {
	f := &fixture{
		assets:  newMemAssets(),
		history: history.New(32),
	}
	f.ripper = NewRipper(f.assets, f.history, f.prefabs)
	f.replacer = NewReplacer(f.history, f.prefabs)
	return f
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	core.SetLogOutput(&buf)
	t.Cleanup(func() { core.SetLogOutput(nil) })
	return &buf
}
