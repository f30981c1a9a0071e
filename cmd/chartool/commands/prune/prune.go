package prune

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the prune command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prune <dir>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "files",
	}

	cmd.Flags().Bool("keep-root", false, MsgFlagKeepRoot)
	cmd.Flags().StringSlice("ignore", nil, MsgFlagIgnore)

	return cmd
}
