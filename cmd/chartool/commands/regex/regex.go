package regex

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the regex command group. Subcommands come from
// NewParseCommand, NewTestCommand and NewEscapeCommand.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "regex",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "regex",
	}
}

// NewParseCommand creates regex parse
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "parse <pattern>",
		Short:   MsgParseShort,
		Example: MsgParseExample,
		Args:    cobra.ExactArgs(1),
	}
	cmd.Flags().Bool("first-only", false, MsgFlagFirstOnly)
	return cmd
}

// NewTestCommand creates regex test
func NewTestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "test <pattern> <text>",
		Short:   MsgTestShort,
		Example: MsgTestExample,
		Args:    cobra.ExactArgs(2),
	}
	cmd.Flags().Bool("first-only", false, MsgFlagFirstOnly)
	cmd.Flags().String("replace", "", MsgFlagReplace)
	return cmd
}

// NewEscapeCommand creates regex escape
func NewEscapeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "escape <text>",
		Short:   MsgEscapeShort,
		Example: MsgEscapeExample,
		Args:    cobra.ExactArgs(1),
	}
	cmd.Flags().Bool("delimited", false, MsgFlagDelimited)
	return cmd
}
