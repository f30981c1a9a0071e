package unescape

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the unescape command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "unescape [text...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "data",
	}
}
