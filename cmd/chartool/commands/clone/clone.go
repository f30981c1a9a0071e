package clone

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the clone command. The run function is attached by the
// root command, which owns configuration and I/O.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "clone [file]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "data",
	}
}
