package editor

import (
	"fmt"
	"path"
	"strings"

	"github.com/spaghettifunk/anima-tools/engine/core"
	"github.com/spaghettifunk/anima-tools/engine/resources"
	"github.com/spaghettifunk/anima-tools/engine/scene"
)

type FolderLayout int

const (
	// LayoutPerRootSubfolder writes the clones of each root to <folder>/<root name>.
	LayoutPerRootSubfolder FolderLayout = iota
	// LayoutFlat writes every clone directly into the folder.
	LayoutFlat
)

func (l FolderLayout) String() string {
	if l == LayoutFlat {
		return "flat"
	}
	return "per_root"
}

func ParseFolderLayout(s string) (FolderLayout, error) {
	switch s {
	case "per_root", "":
		return LayoutPerRootSubfolder, nil
	case "flat":
		return LayoutFlat, nil
	default:
		return LayoutPerRootSubfolder, fmt.Errorf("unknown folder layout %q (want per_root or flat)", s)
	}
}

type RipOptions struct {
	FolderPath string
	NameSuffix string
	Layout     FolderLayout
}

func (o RipOptions) destination(root *scene.Node) string {
	if o.Layout == LayoutFlat {
		return o.FolderPath
	}
	return path.Join(o.FolderPath, root.Name)
}

// CloneName returns the name of the clone of a material called name.
func CloneName(name, suffix string) string {
	if strings.HasSuffix(name, suffix) {
		return name
	}
	return name + suffix
}

// Ripper clones the primary material of every renderer under a set of
// roots into new assets. Only slot 0 is ripped; other slots are untouched.
type Ripper struct {
	assets  AssetDatabase
	history UndoHistory
	prefabs PrefabUtility

	cache DedupCache
}

func NewRipper(assets AssetDatabase, h UndoHistory, p PrefabUtility) *Ripper {
	return &Ripper{
		assets:  assets,
		history: h,
		prefabs: p,
		cache:   make(DedupCache),
	}
}

// Cache exposes the dedup cache of the last Rip call.
func (r *Ripper) Cache() DedupCache {
	return r.cache
}

// Rip processes roots in order and returns the paths of the assets it
// created. A nil root or an empty folder path is logged and skipped; the
// remaining roots are still processed. A persistence failure aborts the
// call: the error is returned with the paths created before it.
func (r *Ripper) Rip(roots []*scene.Node, opts RipOptions) ([]string, error) {
	clock := core.NewClock()
	clock.Start()

	r.cache.Clear()
	group := r.history.CurrentGroup()

	var created []string
	for _, root := range roots {
		paths, err := r.ripRoot(root, opts, group)
		created = append(created, paths...)
		if err != nil {
			return created, fmt.Errorf("rip %s: %w", root.Name, err)
		}
	}

	if err := r.assets.SaveAssets(); err != nil {
		return created, fmt.Errorf("save assets: %w", err)
	}
	if err := r.assets.Refresh(); err != nil {
		return created, fmt.Errorf("refresh assets: %w", err)
	}

	clock.Stop()
	core.LogInfo("%s: %d materials created from %d roots in %s", RipperToolName, len(created), len(roots), clock.Elapsed())
	return created, nil
}

func (r *Ripper) ripRoot(root *scene.Node, opts RipOptions, group int) ([]string, error) {
	if root == nil {
		core.LogError("%s: Please select a scene node.", RipperToolName)
		return nil, nil
	}
	if opts.FolderPath == "" {
		core.LogError("%s: Please enter a folder path.", RipperToolName)
		return nil, nil
	}

	dest := opts.destination(root)
	if err := r.assets.CreateFolder(dest); err != nil {
		return nil, err
	}

	var targets []*scene.Renderer
	for _, rd := range root.Renderers(true) {
		if rd.SharedMaterial() == nil {
			core.LogWarn("%s: %s has no primary material, skipping.", RipperToolName, rd.Node().Path())
			continue
		}
		targets = append(targets, rd)
	}

	policy := NewOwnershipPolicy(root, r.history, r.prefabs)
	// collapse whatever was recorded, even when a fault cuts the loop short
	defer policy.Finish(group)
	policy.BeforeMutation(targets)

	var paths []string
	for _, rd := range targets {
		original := rd.SharedMaterial()
		clone, ok := r.cache.Lookup(original)
		if !ok {
			clone = original.Clone()
			clone.Name = CloneName(original.Name, opts.NameSuffix)
			assetPath := r.assets.GenerateUniqueAssetPath(path.Join(dest, clone.Name+resources.MaterialExtension))
			if err := r.assets.CreateAsset(clone, assetPath); err != nil {
				return paths, err
			}
			r.cache.Store(original, clone)
			paths = append(paths, assetPath)
			policy.ObjectCreated(func() {
				if err := r.assets.DeleteAsset(assetPath); err != nil {
					core.LogWarn("%s: undo could not delete %s: %s", RipperToolName, assetPath, err)
				}
			})
		}
		rd.SetSharedMaterial(clone)
		policy.ComponentMutated(rd.Node())
	}

	core.LogDebug("%s: %s (%s) ripped %d renderers into %s", RipperToolName, root.Name, policy.Ownership, len(targets), dest)
	return paths, nil
}

// RipWithLog runs Rip and prepends the created paths, under a summary
// header, to log.
func (r *Ripper) RipWithLog(roots []*scene.Node, opts RipOptions, log *ChangeLog) ([]string, error) {
	created, err := r.Rip(roots, opts)
	if len(created) > 0 {
		log.AddBatch(fmt.Sprintf("*** %d materials created ***", len(created)), created)
	}
	return created, err
}
