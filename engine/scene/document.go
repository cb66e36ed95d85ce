package scene

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/anima-tools/engine/core"
)

// MaterialResolver loads material assets by path. Resolving the same path
// twice must return the same *Material so identity is preserved.
type MaterialResolver interface {
	LoadMaterial(path string) (*Material, error)
}

const (
	documentKindScene  = "scene"
	documentKindPrefab = "prefab"
)

type document struct {
	Name  string         `toml:"name"`
	Kind  string         `toml:"kind"`
	Nodes []nodeDocument `toml:"nodes"`
}

type nodeDocument struct {
	Name         string             `toml:"name"`
	Active       *bool              `toml:"active,omitempty"`
	Prefab       string             `toml:"prefab,omitempty"`
	PrefabSource string             `toml:"prefab_source,omitempty"`
	Overrides    []string           `toml:"overrides,omitempty"`
	Renderers    []rendererDocument `toml:"renderers,omitempty"`
	Children     []nodeDocument     `toml:"children,omitempty"`
}

type rendererDocument struct {
	Name      string   `toml:"name"`
	Materials []string `toml:"materials"`
}

// LoadFile reads a TOML scene or prefab document.
func LoadFile(path string, resolver MaterialResolver) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Decode(data, resolver)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	s.Path = path
	core.LogDebug("Loaded %s '%s' with %d roots from %s", kindName(s.IsPrefab), s.Name, len(s.Roots), path)
	return s, nil
}

func Decode(data []byte, resolver MaterialResolver) (*Scene, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	s := NewScene(doc.Name)
	switch doc.Kind {
	case "", documentKindScene:
	case documentKindPrefab:
		s.IsPrefab = true
	default:
		return nil, fmt.Errorf("unknown document kind %q", doc.Kind)
	}
	for i := range doc.Nodes {
		n, err := decodeNode(&doc.Nodes[i], resolver)
		if err != nil {
			return nil, err
		}
		s.AddRoot(n)
	}
	return s, nil
}

func decodeNode(nd *nodeDocument, resolver MaterialResolver) (*Node, error) {
	if nd.Name == "" {
		return nil, fmt.Errorf("node without a name")
	}
	kind, err := ParsePrefabKind(nd.Prefab)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", nd.Name, err)
	}
	n := NewNode(nd.Name)
	if nd.Active != nil {
		n.Active = *nd.Active
	}
	n.Prefab = kind
	n.PrefabSource = nd.PrefabSource
	for _, o := range nd.Overrides {
		path, prop, ok := strings.Cut(o, ":")
		if !ok {
			return nil, fmt.Errorf("node %s: malformed override %q", nd.Name, o)
		}
		n.overrides = append(n.overrides, Override{Path: path, Property: prop})
	}
	for _, rd := range nd.Renderers {
		materials := make([]*Material, len(rd.Materials))
		for i, p := range rd.Materials {
			if p == "" {
				continue
			}
			m, err := resolver.LoadMaterial(p)
			if err != nil {
				return nil, fmt.Errorf("node %s renderer %s: %w", nd.Name, rd.Name, err)
			}
			materials[i] = m
		}
		n.AddRenderer(rd.Name, materials...)
	}
	for i := range nd.Children {
		c, err := decodeNode(&nd.Children[i], resolver)
		if err != nil {
			return nil, err
		}
		n.AddChild(c)
	}
	return n, nil
}

// SaveFile writes the scene back as a TOML document and clears dirty flags.
func (s *Scene) SaveFile(path string) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	s.Path = path
	s.ClearDirty()
	core.LogDebug("Saved %s '%s' to %s", kindName(s.IsPrefab), s.Name, path)
	return nil
}

func (s *Scene) Encode() ([]byte, error) {
	doc := document{Name: s.Name, Kind: documentKindScene}
	if s.IsPrefab {
		doc.Kind = documentKindPrefab
	}
	for _, r := range s.Roots {
		nd, err := encodeNode(r, s.IsPrefab)
		if err != nil {
			return nil, err
		}
		doc.Nodes = append(doc.Nodes, nd)
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeNode(n *Node, isPrefabRoot bool) (nodeDocument, error) {
	nd := nodeDocument{Name: n.Name, PrefabSource: n.PrefabSource}
	if !n.Active {
		active := false
		nd.Active = &active
	}
	// prefab documents imply the asset kind on their roots
	if !(isPrefabRoot && n.Prefab == PrefabAsset) {
		nd.Prefab = n.Prefab.String()
	}
	for _, o := range n.overrides {
		nd.Overrides = append(nd.Overrides, o.Path+":"+o.Property)
	}
	for _, r := range n.renderers {
		rd := rendererDocument{Name: r.Name, Materials: make([]string, len(r.materials))}
		for i, m := range r.materials {
			if m == nil {
				continue
			}
			if m.AssetPath == "" {
				return nd, fmt.Errorf("node %s renderer %s: material %q was never saved", n.Name, r.Name, m.Name)
			}
			rd.Materials[i] = filepath.ToSlash(m.AssetPath)
		}
		nd.Renderers = append(nd.Renderers, rd)
	}
	for _, c := range n.Children {
		cd, err := encodeNode(c, false)
		if err != nil {
			return nd, err
		}
		nd.Children = append(nd.Children, cd)
	}
	return nd, nil
}

func kindName(isPrefab bool) string {
	if isPrefab {
		return documentKindPrefab
	}
	return documentKindScene
}
