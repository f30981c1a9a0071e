package strip

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the strip command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "strip [file]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "data",
	}

	cmd.Flags().StringSlice("literal", nil, MsgFlagLiteral)
	cmd.Flags().StringSlice("pattern", nil, MsgFlagPattern)
	cmd.Flags().Bool("prune-empty", true, MsgFlagPruneEmpty)
	cmd.Flags().Bool("match-null", false, MsgFlagMatchNull)

	return cmd
}
