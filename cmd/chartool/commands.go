package chartool

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/steve02081504/char-tamplate/cmd/chartool/commands/clone"
	"github.com/steve02081504/char-tamplate/cmd/chartool/commands/dedupe"
	"github.com/steve02081504/char-tamplate/cmd/chartool/commands/genconfig"
	"github.com/steve02081504/char-tamplate/cmd/chartool/commands/prune"
	"github.com/steve02081504/char-tamplate/cmd/chartool/commands/regex"
	"github.com/steve02081504/char-tamplate/cmd/chartool/commands/strip"
	"github.com/steve02081504/char-tamplate/cmd/chartool/commands/unescape"
	"github.com/steve02081504/char-tamplate/cmd/chartool/commands/write"
	clonepkg "github.com/steve02081504/char-tamplate/pkg/clone"
	"github.com/steve02081504/char-tamplate/pkg/config"
	dedupepkg "github.com/steve02081504/char-tamplate/pkg/dedupe"
	"github.com/steve02081504/char-tamplate/pkg/delimregex"
	"github.com/steve02081504/char-tamplate/pkg/errors"
	"github.com/steve02081504/char-tamplate/pkg/filesystem"
	"github.com/steve02081504/char-tamplate/pkg/logging"
	"github.com/steve02081504/char-tamplate/pkg/ui/display"
	unescapepkg "github.com/steve02081504/char-tamplate/pkg/unescape"
)

// addDocumentFlags registers the input and output format flags shared by
// the data commands
func addDocumentFlags(cmd *cobra.Command, a *app) {
	cmd.Flags().StringVar(&a.inFormat, "in-format", "", MsgFlagInFormat)
	cmd.Flags().StringVar(&a.outFormat, "out-format", "", MsgFlagOutFormat)
}

func newCloneCmd(a *app) *cobra.Command {
	cmd := clone.NewCommand()
	addDocumentFlags(cmd, a)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := a.loadConfig(nil)
		if err != nil {
			return err
		}
		doc, err := a.readDocument(cmd, args)
		if err != nil {
			return fmt.Errorf(clone.MsgErrClone, err)
		}

		copied := clonepkg.Clone(doc)
		logger := logging.GetLogger("cmd.clone")
		logger.Debug().
			Str("kind", copied.Kind().String()).
			Msg("Document cloned")

		return a.writeDocument(cmd, cfg, copied)
	}
	return cmd
}

func newDedupeCmd(a *app) *cobra.Command {
	cmd := dedupe.NewCommand()
	addDocumentFlags(cmd, a)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := a.loadConfig(flagOverrides(cmd.Flags(), map[string]string{
			"sort": "dedupe.sort",
		}))
		if err != nil {
			return err
		}
		doc, err := a.readDocument(cmd, args)
		if err != nil {
			return fmt.Errorf(dedupe.MsgErrDedupe, err)
		}
		return a.writeDocument(cmd, cfg, dedupepkg.Nested(doc, cfg.DedupeOptions()))
	}
	return cmd
}

func newStripCmd(a *app) *cobra.Command {
	cmd := strip.NewCommand()
	addDocumentFlags(cmd, a)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := a.loadConfig(flagOverrides(cmd.Flags(), map[string]string{
			"literal":     "placeholder.literals",
			"pattern":     "placeholder.patterns",
			"prune-empty": "placeholder.prune_empty",
			"match-null":  "placeholder.match_null",
		}))
		if err != nil {
			return err
		}
		stripper, err := cfg.Stripper()
		if err != nil {
			return fmt.Errorf(strip.MsgErrStrip, err)
		}
		doc, err := a.readDocument(cmd, args)
		if err != nil {
			return fmt.Errorf(strip.MsgErrStrip, err)
		}

		out, stats := stripper.Strip(doc)
		logger := logging.GetLogger("cmd.strip")
		logger.Info().
			Int("placeholders", stats.Placeholders).
			Int("pruned", stats.Pruned).
			Msg(strip.MsgStripped)

		return a.writeDocument(cmd, cfg, out)
	}
	return cmd
}

func newUnescapeCmd(a *app) *cobra.Command {
	cmd := unescape.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) > 0 {
			text = strings.Join(args, " ") + "\n"
		} else {
			data, _, err := a.readInput(cmd, "")
			if err != nil {
				return fmt.Errorf(unescape.MsgErrRead, err)
			}
			text = string(data)
		}
		_, err := fmt.Fprint(cmd.OutOrStdout(), unescapepkg.Unicode(text))
		return err
	}
	return cmd
}

func newRegexCmd(a *app) *cobra.Command {
	cmd := regex.NewCommand()

	parseCmd := regex.NewParseCommand()
	parseCmd.RunE = func(cmd *cobra.Command, args []string) error {
		p, err := a.parsePattern(cmd, args[0])
		if err != nil {
			return err
		}
		renderer, err := a.renderer(cmd)
		if err != nil {
			return err
		}

		flags := p.Flags().String()
		if flags == "" {
			flags = regex.MsgNoFlags
		}
		std := regex.MsgStdOK
		if _, err := p.Std(); err != nil {
			std = regex.MsgStdNo
		}
		report := display.NewReport("regex parse").
			WithMessage(regex.MsgValid).
			AddField(regex.MsgFieldPattern, p.String()).
			AddField(regex.MsgFieldSource, p.Source()).
			AddField(regex.MsgFieldFlags, flags).
			AddField(regex.MsgFieldStd, std)
		return renderer.RenderResult(report)
	}

	testCmd := regex.NewTestCommand()
	testCmd.RunE = func(cmd *cobra.Command, args []string) error {
		p, err := a.parsePattern(cmd, args[0])
		if err != nil {
			return err
		}
		renderer, err := a.renderer(cmd)
		if err != nil {
			return err
		}

		matches := p.FindAll(args[1])
		report := display.NewReport("regex test").
			WithMessage(fmt.Sprintf(regex.MsgMatchesFormat, len(matches))).
			AddField(regex.MsgFieldPattern, p.String())
		if cmd.Flags().Changed("replace") {
			repl, _ := cmd.Flags().GetString("replace")
			report.AddField(regex.MsgFieldResult, p.ReplaceString(args[1], repl))
		}
		for _, m := range matches {
			report.AddItem(fmt.Sprintf(regex.MsgMatchFormat, m.Text, m.Index, m.End), display.StatusMatch)
		}
		return renderer.RenderResult(report)
	}

	escapeCmd := regex.NewEscapeCommand()
	escapeCmd.RunE = func(cmd *cobra.Command, args []string) error {
		delimited, _ := cmd.Flags().GetBool("delimited")
		escaped := delimregex.Escape(args[0])
		if delimited {
			escaped = delimregex.EscapeDelimited(args[0])
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), escaped)
		return err
	}

	cmd.AddCommand(parseCmd, testCmd, escapeCmd)
	return cmd
}

// parsePattern parses text with the configured unescape behaviour, letting
// --first-only override it
func (a *app) parsePattern(cmd *cobra.Command, text string) (*delimregex.Pattern, error) {
	cfg, err := a.loadConfig(flagOverrides(cmd.Flags(), map[string]string{
		"first-only": "regex.unescape_first_only",
	}))
	if err != nil {
		return nil, err
	}
	return delimregex.ParseWithOptions(text, cfg.RegexOptions())
}

func newWriteCmd(a *app) *cobra.Command {
	cmd := write.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := a.loadConfig(flagOverrides(cmd.Flags(), map[string]string{
			"mode": "write.mode",
			"perm": "write.perm",
		}))
		if err != nil {
			return err
		}
		cond, err := cfg.WriteCondition()
		if err != nil {
			return err
		}

		from, _ := cmd.Flags().GetString("from")
		data, _, err := a.readInput(cmd, from)
		if err != nil {
			return fmt.Errorf(write.MsgErrRead, err)
		}

		path := filesystem.ExpandPath(args[0])
		wrote, err := filesystem.WriteFile(a.fs, path, data, cfg.Write.Perm, cond)
		if err != nil {
			return err
		}

		renderer, err := a.renderer(cmd)
		if err != nil {
			return err
		}
		msg := fmt.Sprintf(write.MsgUnchanged, path)
		if wrote {
			msg = fmt.Sprintf(write.MsgWrote, path)
		}
		report := display.NewReport("write").
			WithMessage(msg).
			AddField(write.MsgFieldPath, path).
			AddField(write.MsgFieldMode, cond.String()).
			AddField(write.MsgFieldWritten, strconv.FormatBool(wrote))
		return renderer.RenderResult(report)
	}
	return cmd
}

func newPruneCmd(a *app) *cobra.Command {
	cmd := prune.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := a.loadConfig(flagOverrides(cmd.Flags(), map[string]string{
			"keep-root": "prune.keep_root",
			"ignore":    "prune.ignore",
		}))
		if err != nil {
			return err
		}

		root := filesystem.ExpandPath(args[0])
		removed, err := filesystem.PruneEmptyDirs(a.fs, root, cfg.PruneOptions())
		if err != nil {
			return err
		}

		renderer, err := a.renderer(cmd)
		if err != nil {
			return err
		}
		report := display.NewReport("prune").AddField(prune.MsgFieldRoot, root)
		if len(removed) == 0 {
			report.WithMessage(prune.MsgNothingToDo)
		} else {
			report.WithMessage(fmt.Sprintf(prune.MsgRemoved, len(removed)))
		}
		for _, dir := range removed {
			report.AddItem(dir, display.StatusRemoved)
		}
		return renderer.RenderResult(report)
	}
	return cmd
}

func newGenConfigCmd(a *app) *cobra.Command {
	cmd := genconfig.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		doWrite, _ := cmd.Flags().GetBool("write")
		if !doWrite {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.DefaultsContent())
			return err
		}

		path := config.UserConfigPath()
		wrote, err := filesystem.WriteFile(a.fs, path, []byte(config.DefaultsContent()), 0644, filesystem.WriteIfMissing)
		if err != nil {
			return errors.Wrap(err, errors.ErrFileWrite, "failed to write default configuration")
		}
		if wrote {
			_, err = fmt.Fprintf(cmd.OutOrStdout(), genconfig.MsgWritten+"\n", path)
		} else {
			_, err = fmt.Fprintf(cmd.OutOrStdout(), genconfig.MsgExists+"\n", path)
		}
		return err
	}
	return cmd
}
