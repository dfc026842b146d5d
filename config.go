package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	csproj "github.com/bcomnes/csproj/pkg"
)

// envPrefix is prepended to flag names to form environment variables,
// e.g. CSPROJ_EXT or CSPROJ_DRY.
const envPrefix = "CSPROJ"

type config struct {
	Name      string
	Value     string
	Extension string
	Dry       bool
	Verbose   bool
}

// loadConfig merges defaults, the optional config file, CSPROJ_* environment
// variables and explicitly set flags, in increasing order of precedence.
// The config file itself comes from --config or CSPROJ_CONFIG.
func loadConfig(flags *pflag.FlagSet) (config, error) {
	v := viper.New()
	v.SetDefault("ext", csproj.DefaultExtension)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return config{}, fmt.Errorf("binding flags: %w", err)
	}
	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}

	cfg := config{
		Name:      v.GetString("name"),
		Value:     v.GetString("value"),
		Extension: v.GetString("ext"),
		Dry:       v.GetBool("dry"),
		Verbose:   v.GetBool("verbose"),
	}
	if cfg.Extension == "" {
		cfg.Extension = csproj.DefaultExtension
	}
	return cfg, nil
}
