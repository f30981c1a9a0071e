package chartool

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/steve02081504/char-tamplate/pkg/config"
	"github.com/steve02081504/char-tamplate/pkg/errors"
	"github.com/steve02081504/char-tamplate/pkg/filesystem"
	"github.com/steve02081504/char-tamplate/pkg/ui"
	"github.com/steve02081504/char-tamplate/pkg/value"
)

// app carries the global flag values and the filesystem every command uses
type app struct {
	verbosity  int
	configPath string
	format     string
	inFormat   string
	outFormat  string

	fs filesystem.FS
}

func newApp(fsys filesystem.FS) *app {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &app{fs: fsys}
}

// loadConfig layers the given overrides, keyed by config path, on top of
// the file and environment sources
func (a *app) loadConfig(overrides map[string]interface{}) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		Path:      filesystem.ExpandPath(a.configPath),
		Overrides: overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

// flagOverrides maps changed flags to config keys. Flags left at their
// defaults do not override anything.
func flagOverrides(flags *pflag.FlagSet, keys map[string]string) map[string]interface{} {
	overrides := make(map[string]interface{})
	for name, key := range keys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		switch f.Value.Type() {
		case "bool":
			v, _ := flags.GetBool(name)
			overrides[key] = v
		case "stringSlice":
			v, _ := flags.GetStringSlice(name)
			overrides[key] = v
		default:
			overrides[key] = f.Value.String()
		}
	}
	return overrides
}

func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// readInput returns the raw content of the named file, or stdin when name
// is empty or "-", together with a display name
func (a *app) readInput(cmd *cobra.Command, name string) ([]byte, string, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, MsgStdin, fmt.Errorf(MsgErrReadInput, MsgStdin, err)
		}
		return data, MsgStdin, nil
	}
	name = filesystem.ExpandPath(name)
	data, err := a.fs.ReadFile(name)
	if err != nil {
		return nil, name, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", name).WithDetail("path", name)
	}
	return data, name, nil
}

// readDocument decodes the document named by args (stdin when absent). The
// format comes from --in-format, then the file extension, then defaults to
// YAML, which also accepts JSON.
func (a *app) readDocument(cmd *cobra.Command, args []string) (value.Value, error) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	data, source, err := a.readInput(cmd, name)
	if err != nil {
		return value.Null(), err
	}

	format := value.FormatYAML
	switch {
	case a.inFormat != "":
		if format, err = value.ParseFormat(a.inFormat); err != nil {
			return value.Null(), err
		}
	case source != MsgStdin:
		if inferred, err := value.FormatFromPath(source); err == nil {
			format = inferred
		}
	}

	v, err := value.Decode(data, format)
	if err != nil {
		if te, ok := err.(*errors.ToolError); ok {
			return value.Null(), te.WithDetail("source", source)
		}
		return value.Null(), err
	}
	return v, nil
}

// writeDocument encodes v in the --out-format or configured format
func (a *app) writeDocument(cmd *cobra.Command, cfg *config.Config, v value.Value) error {
	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}
	if a.outFormat != "" {
		if format, err = value.ParseFormat(a.outFormat); err != nil {
			return err
		}
	}

	var out []byte
	switch format {
	case value.FormatJSON:
		out, err = value.EncodeJSON(v, cfg.IndentString())
		if err == nil && cfg.Output.Indent == 0 {
			out = append(out, '\n')
		}
	default:
		out, err = value.Encode(v, format)
	}
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return fmt.Errorf(MsgErrWriteOutput, err)
	}
	return nil
}
