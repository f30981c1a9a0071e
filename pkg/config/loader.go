package config

import (
	_ "embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/steve02081504/char-tamplate/pkg/clone"
	"github.com/steve02081504/char-tamplate/pkg/errors"
	"github.com/steve02081504/char-tamplate/pkg/logging"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "CHARTOOL_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, fmt.Errorf("rawBytesProvider does not support Read")
}

var (
	defaultsOnce sync.Once
	defaultsMap  map[string]interface{}
	defaultsErr  error
)

// systemDefaults parses the embedded defaults once and hands out deep copies
// so callers can never mutate the shared tree.
func systemDefaults() (map[string]interface{}, error) {
	defaultsOnce.Do(func() {
		k := koanf.New(".")
		if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
			defaultsErr = errors.Wrap(err, errors.ErrConfigParse, "cannot parse embedded defaults")
			return
		}
		defaultsMap = k.Raw()
	})
	if defaultsErr != nil {
		return nil, defaultsErr
	}
	copied, err := clone.Native(defaultsMap)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot copy embedded defaults")
	}
	return copied.(map[string]interface{}), nil
}

// DefaultsContent returns the embedded defaults file
func DefaultsContent() string {
	return string(defaultConfig)
}

// LoadOptions selects the sources Load reads on top of the defaults
type LoadOptions struct {
	// Path names a config file that must exist. When empty the XDG user
	// file is used if present.
	Path string
	// NoUserFile skips the XDG user file lookup.
	NoUserFile bool
	// NoEnv skips CHARTOOL_* environment variables.
	NoEnv bool
	// Overrides are applied last, keyed by dotted path ("dedupe.sort").
	Overrides map[string]interface{}
}

// UserConfigPath returns the XDG location of the user config file, whether
// or not it exists.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, logging.AppName, "config.toml")
}

// Default returns the configuration built from the embedded defaults alone
func Default() (*Config, error) {
	return Load(LoadOptions{NoUserFile: true, NoEnv: true})
}

// Load merges every configured source and validates the result
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	defaults, err := systemDefaults()
	if err != nil {
		return nil, err
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User file
	path, err := resolveConfigPath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	if !opts.NoEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToFileModeHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Trace().Interface("config", cfg).Msg("Configuration loaded")
	return &cfg, nil
}

func resolveConfigPath(opts LoadOptions) (string, error) {
	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s is not readable", opts.Path).
				WithDetail("path", opts.Path)
		}
		return opts.Path, nil
	}
	if opts.NoUserFile {
		return "", nil
	}
	path := UserConfigPath()
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	return path, nil
}

// envKey maps CHARTOOL_PRUNE_KEEP_ROOT to prune.keep_root. Only the first
// underscore separates the section, so keys may contain underscores.
func envKey(s string) string {
	name := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return ""
	}
	return section + "." + key
}

// stringToFileModeHookFunc accepts octal strings such as "0644" or "0o600"
// for fs.FileMode fields.
func stringToFileModeHookFunc() mapstructure.DecodeHookFunc {
	modeType := reflect.TypeOf(fs.FileMode(0))
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != modeType || f.Kind() != reflect.String {
			return data, nil
		}
		s := strings.TrimSpace(data.(string))
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0o"), "0O")
		mode, err := strconv.ParseUint(s, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid file mode %q: %w", data, err)
		}
		return fs.FileMode(mode), nil
	}
}
