package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/anima-tools/engine"
	"github.com/spaghettifunk/anima-tools/engine/scene"
)

func newReplaceCommand(ctx *commandContext) *cobra.Command {
	var scenePath string
	var root string
	var find []string
	var replace []string

	cmd := &cobra.Command{
		Use:   "replace",
		Short: "Substitute materials under a node, index for index",
		Long: "Every renderer under --root whose slots contain any --find material has each\n" +
			"occurrence of --find[i] replaced with --replace[i]. Both lists name material\n" +
			"assets and must have the same length.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withScene(cmd, scenePath, func(e *engine.Engine, s *scene.Scene) error {
				n, err := e.Replace(s, root, find, replace)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Renderers modified: %d\n", n)
				printChangeLog(out, e.ChangeLog().Entries())
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&scenePath, "scene", "s", "", "Scene or prefab document to edit")
	cmd.Flags().StringVarP(&root, "root", "r", "", "Node whose hierarchy is edited")
	cmd.Flags().StringSliceVar(&find, "find", nil, "Material assets to find")
	cmd.Flags().StringSliceVar(&replace, "replace", nil, "Replacement material assets, matched by position")
	_ = cmd.MarkFlagRequired("scene")
	_ = cmd.MarkFlagRequired("root")
	return cmd
}
