// Package config loads chartool settings.
//
// Sources are layered in this order, later ones winning:
//
//   - the embedded defaults (embedded/defaults.toml)
//   - the user file, $XDG_CONFIG_HOME/chartool/config.toml or an explicit path
//   - CHARTOOL_<SECTION>_<KEY> environment variables
//   - explicit overrides, usually command-line flags
//
// The merged tree is decoded into Config with mapstructure hooks that
// accept comma-separated lists and octal permission strings.
package config
