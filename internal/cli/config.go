package cli

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/kata/pkg/catalog"
	"github.com/matzehuels/kata/pkg/errors"
)

// configEnv overrides the config file location.
const configEnv = "KATA_CONFIG"

// Config is the optional TOML config file. Every field has a default, so a
// missing file is not an error.
//
//	verbose = true
//	group_width = 3
//	pad = "*"
//	delete_cap = 2
//
//	[grep]
//	ignore_case = true
type Config struct {
	Verbose    bool       `toml:"verbose"`
	GroupWidth int        `toml:"group_width"`
	Pad        string     `toml:"pad"`
	DeleteCap  int        `toml:"delete_cap"`
	Grep       GrepConfig `toml:"grep"`

	path string // file the config was read from; empty for defaults
}

// GrepConfig holds defaults for the grep command.
type GrepConfig struct {
	IgnoreCase bool `toml:"ignore_case"`
}

func defaultConfig() Config {
	opts := catalog.DefaultOptions()
	return Config{
		GroupWidth: opts.GroupWidth,
		Pad:        string(opts.Pad),
		DeleteCap:  opts.DeleteCap,
	}
}

// Options converts the config into validated catalog options.
func (c Config) Options() (catalog.Options, error) {
	if err := errors.ValidatePad(c.Pad); err != nil {
		return catalog.Options{}, err
	}
	pad, _ := utf8.DecodeRuneInString(c.Pad)
	opts := catalog.Options{GroupWidth: c.GroupWidth, Pad: pad, DeleteCap: c.DeleteCap}
	if err := opts.Validate(); err != nil {
		return catalog.Options{}, err
	}
	return opts, nil
}

// configFile returns the config path using $KATA_CONFIG, then the XDG
// standard (~/.config/kata/config.toml).
func configFile() (string, error) {
	if p := os.Getenv(configEnv); p != "" {
		return p, nil
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config at path. An empty path means the default
// location, where a missing file yields the defaults. An explicit path must
// exist. Unknown keys are rejected so typos do not pass silently.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configFile()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		if stderrors.Is(err, fs.ErrNotExist) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidArgument, err, "config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return cfg, errors.Invalid("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.path = path
	if _, err := cfg.Options(); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidArgument, err, "config %s", path)
	}
	return cfg, nil
}
