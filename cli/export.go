package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/uhrsim/uhrsim/pkg/export"
)

func generateExportCmd(opts *rootOptions) *cobra.Command {
	flags := &sceneFlags{}
	cmd := &cobra.Command{
		Use:   "export DIR",
		Short: "write the engine input files",
		Long:  "builds the scene and writes scene.json and materials.db into DIR without running the engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := loadScene(cmd, opts, flags)
			if err != nil {
				return err
			}
			files, err := export.Files(s, uuid.NewString())
			if err != nil {
				return err
			}
			if err := export.WriteFiles(args[0], files); err != nil {
				return err
			}
			printFiles(cmd, args[0], files)
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
