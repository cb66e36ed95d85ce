package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/anima-tools/engine"
	"github.com/spaghettifunk/anima-tools/engine/scene"
)

func newGatherCommand(ctx *commandContext) *cobra.Command {
	var scenePath string
	var root string

	cmd := &cobra.Command{
		Use:   "gather",
		Short: "List the distinct materials used under a node",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withScene(cmd, scenePath, func(e *engine.Engine, s *scene.Scene) error {
				found, err := e.Gather(s, root)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(found))
				for i, m := range found {
					rows = append(rows, []string{strconv.Itoa(i + 1), m.Name, m.AssetPath, m.ShaderName})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable([]string{"#", "Material", "Asset", "Shader"}, rows, []columnAlignment{alignRight}))
				printChangeLog(out, e.ChangeLog().Entries())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&scenePath, "scene", "s", "", "Scene or prefab document to read")
	cmd.Flags().StringVarP(&root, "root", "r", "", "Node whose hierarchy is scanned")
	_ = cmd.MarkFlagRequired("scene")
	_ = cmd.MarkFlagRequired("root")
	return cmd
}
