package genconfig

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the gen-config command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		GroupID: "misc",
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)

	return cmd
}
