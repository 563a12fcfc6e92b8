package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/arthur-debert/tsscaffold/pkg/errors"
	"github.com/arthur-debert/tsscaffold/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default returns the configuration built from the embedded defaults only
func Default() *Config {
	cfg, err := load("", nil, false)
	if err != nil {
		// The embedded defaults are part of the binary
		panic(err)
	}
	return cfg
}

// Load builds the configuration for a project root.
// overrides holds flag values keyed by config key (see the Key* constants);
// only flags the user actually set should be present.
func Load(root string, overrides map[string]interface{}) (*Config, error) {
	return load(root, overrides, true)
}

func load(root string, overrides map[string]interface{}, withEnv bool) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Project config if it exists
	if root != "" {
		path := filepath.Join(root, FileName)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse,
					"failed to load config from %s", path).WithDetail("path", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded project config")
		}
	}

	// 3. Environment, TSSCAFFOLD_OUTPUT__NO_COLOR -> output.no_color
	if withEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Explicit flags
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply flag overrides")
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
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	logger.Trace().Interface("config", cfg).Msg("Configuration loaded")
	return &cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

var fileModeType = reflect.TypeOf(fs.FileMode(0))

// stringToFileModeHookFunc reads permission strings such as "0755" as octal
func stringToFileModeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != fileModeType || f.Kind() != reflect.String {
			return data, nil
		}
		s := strings.TrimPrefix(strings.TrimSpace(data.(string)), "0o")
		mode, err := strconv.ParseUint(s, 8, 32)
		if err != nil {
			return nil, errors.Newf(errors.ErrConfigParse, "invalid permission %q: want an octal mode like \"0755\"", data)
		}
		return fs.FileMode(mode), nil
	}
}

func validate(cfg *Config) error {
	for name, mode := range map[string]fs.FileMode{
		KeyDirectoryMode: cfg.Permissions.Directory,
		KeyFileMode:      cfg.Permissions.File,
	} {
		if mode == 0 || mode&^fs.ModePerm != 0 {
			return errors.Newf(errors.ErrConfigParse, "%s: %#o is not a permission mode", name, uint32(mode)).
				WithDetail("key", name)
		}
	}
	return nil
}
