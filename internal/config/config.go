// Package config loads rewrite.Options from layered sources: built-in
// defaults, an optional YAML file, then AIGRW_-prefixed environment
// variables, each layer overriding the last.
package config

import (
	"os"
	"strings"

	"github.com/kegliz/aigrw/rewrite"
	"github.com/spf13/viper"
)

const envPrefix = "AIGRW"

// Config is the process-level configuration surface: the rewrite
// options plus a couple of knobs for the ambient stack around it.
type Config struct {
	Rewrite rewrite.Options
	Debug   bool
}

// Load reads configuration from configPath (ignored if empty or
// missing) layered under defaults, then AIGRW_-prefixed environment
// variables on top. Key names mirror the Options field names
// lowercased: relaxassociativityguard, enablethreeleveldepthguard,
// maxsweeps, debug.
func Load(configPath string) (Config, error) {
	v := viper.New()

	defaults := rewrite.DefaultOptions()
	v.SetDefault("relaxassociativityguard", defaults.RelaxAssociativityGuard)
	v.SetDefault("enablethreeleveldepthguard", defaults.EnableThreeLevelDepthGuard)
	v.SetDefault("maxsweeps", defaults.MaxSweeps)
	v.SetDefault("debug", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, err
			}
		} else if !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	return Config{
		Rewrite: rewrite.Options{
			RelaxAssociativityGuard:    v.GetBool("relaxassociativityguard"),
			EnableThreeLevelDepthGuard: v.GetBool("enablethreeleveldepthguard"),
			MaxSweeps:                  v.GetInt("maxsweeps"),
		},
		Debug: v.GetBool("debug"),
	}, nil
}
