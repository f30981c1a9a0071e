package chartool

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/steve02081504/char-tamplate/internal/version"
	"github.com/steve02081504/char-tamplate/pkg/filesystem"
	"github.com/steve02081504/char-tamplate/pkg/logging"
)

// NewRootCmd creates the chartool root command working on the real filesystem
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp(nil))
}

// NewRootCmdWithFS creates the root command on top of fsys
func NewRootCmdWithFS(fsys filesystem.FS) *cobra.Command {
	return newRootCmd(newApp(fsys))
}

func newRootCmd(a *app) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     logging.AppName,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerTo(cmd.ErrOrStderr(), a.verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(
		&cobra.Group{ID: "data", Title: MsgGroupData},
		&cobra.Group{ID: "regex", Title: MsgGroupRegex},
		&cobra.Group{ID: "files", Title: MsgGroupFiles},
		&cobra.Group{ID: "misc", Title: MsgGroupMisc},
	)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetHelpCommandGroupID("misc")

	rootCmd.AddCommand(
		newCloneCmd(a),
		newDedupeCmd(a),
		newStripCmd(a),
		newUnescapeCmd(a),
		newRegexCmd(a),
		newWriteCmd(a),
		newPruneCmd(a),
		newGenConfigCmd(a),
		newVersionCmd(),
		newCompletionCmd(),
		newManCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf(MsgErrShell, args[0])
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "CHARTOOL",
				Section: "1",
				Source:  logging.AppName + " " + version.Version,
				Manual:  logging.AppName + " manual",
			}
			if dir != "" {
				return doc.GenManTree(cmd.Root(), header, filepath.Clean(dir))
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", MsgFlagManDir)
	return cmd
}
