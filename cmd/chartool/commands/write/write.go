package write

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the write command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "write <path>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "files",
	}

	cmd.Flags().String("from", "", MsgFlagFrom)
	cmd.Flags().String("mode", "", MsgFlagMode)
	cmd.Flags().String("perm", "", MsgFlagPerm)

	return cmd
}
