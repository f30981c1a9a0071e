package dedupe

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the dedupe command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dedupe [file]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "data",
	}

	cmd.Flags().Bool("sort", false, MsgFlagSort)

	return cmd
}
