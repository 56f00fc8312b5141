package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uhrsim/uhrsim/pkg/setup"
)

func generateBBoxCmd(opts *rootOptions) *cobra.Command {
	flags := &sceneFlags{}
	cmd := &cobra.Command{
		Use:   "bbox [VOLUME]",
		Short: "print the size of a volume content",
		Long:  "prints the size of the box centered on VOLUME that holds all of its daughters (default world)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := loadScene(cmd, opts, flags)
			if err != nil {
				return err
			}
			name := setup.WorldName
			if len(args) == 1 {
				name = args[0]
			}
			size, err := s.ContentSize(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %.4f x %.4f x %.4f mm\n", name, size.X, size.Y, size.Z)
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
