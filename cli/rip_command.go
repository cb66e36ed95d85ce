package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/anima-tools/engine"
	"github.com/spaghettifunk/anima-tools/engine/editor"
	"github.com/spaghettifunk/anima-tools/engine/scene"
)

func newRipCommand(ctx *commandContext) *cobra.Command {
	var scenePath string
	var folder string
	var suffix string
	var layout string
	var roots []string

	cmd := &cobra.Command{
		Use:   "rip",
		Short: "Clone the primary material of every renderer into new assets",
		Long: "Clones each distinct primary material found under the selected roots into a new\n" +
			"material asset and points the renderers at the clones. Without --root every root\n" +
			"of the scene is ripped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withScene(cmd, scenePath, func(e *engine.Engine, s *scene.Scene) error {
				opts, err := e.DefaultRipOptions()
				if err != nil {
					return err
				}
				flags := cmd.Flags()
				if flags.Changed("folder") {
					opts.FolderPath = folder
				}
				if flags.Changed("suffix") {
					opts.NameSuffix = suffix
				}
				if flags.Changed("layout") {
					if opts.Layout, err = editor.ParseFolderLayout(layout); err != nil {
						return err
					}
				}

				created, err := e.Rip(s, roots, opts)
				out := cmd.OutOrStdout()
				if len(created) == 0 {
					fmt.Fprintln(out, "No materials created")
				} else {
					rows := make([][]string, 0, len(created))
					for i, p := range created {
						rows = append(rows, []string{strconv.Itoa(i + 1), p})
					}
					fmt.Fprintln(out, renderTable([]string{"#", "Created material"}, rows, []columnAlignment{alignRight, alignLeft}))
				}
				printChangeLog(out, e.ChangeLog().Entries())
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&scenePath, "scene", "s", "", "Scene or prefab document to edit")
	cmd.Flags().StringVar(&folder, "folder", "", "Destination folder (overrides ripper.folder_path)")
	cmd.Flags().StringVar(&suffix, "suffix", "", "Clone name suffix (overrides ripper.name_suffix)")
	cmd.Flags().StringVar(&layout, "layout", "", "per_root or flat (overrides ripper.folder_layout)")
	cmd.Flags().StringSliceVarP(&roots, "root", "r", nil, "Root node to rip, repeatable")
	_ = cmd.MarkFlagRequired("scene")
	return cmd
}
