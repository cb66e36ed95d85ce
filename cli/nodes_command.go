package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/anima-tools/engine"
	"github.com/spaghettifunk/anima-tools/engine/scene"
)

// newNodesCommand lists the nodes of a document with the ids accepted by
// "--root #<id>", which disambiguates nodes sharing a name.
func newNodesCommand(ctx *commandContext) *cobra.Command {
	var scenePath string

	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "List the nodes of a scene or prefab document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withScene(cmd, scenePath, func(e *engine.Engine, s *scene.Scene) error {
				var rows [][]string
				for _, r := range s.Roots {
					r.Walk(true, func(n *scene.Node) bool {
						rows = append(rows, []string{
							"#" + strconv.FormatUint(uint64(n.ID), 10),
							n.Path(),
							scene.ClassifyOwnership(n).String(),
							strconv.Itoa(len(n.OwnRenderers())),
						})
						return true
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Path", "Owner", "Renderers"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft, alignRight}))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&scenePath, "scene", "s", "", "Scene or prefab document to read")
	_ = cmd.MarkFlagRequired("scene")
	return cmd
}
