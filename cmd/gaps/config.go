package main

import (
	"strings"

	"github.com/mingzhi/gaps/gap"
	"github.com/spf13/viper"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Configuration keys of the find command.
const (
	keyCoverage      = "coverage"
	keyThreshold     = "threshold"
	keySD            = "sd"
	keyMinWidth      = "min_width"
	keyStability     = "stability"
	keyMaxLines      = "max_lines"
	keyFilter        = "filter"
	keyOut           = "out"
	keySummary       = "summary"
	keyPlot          = "plot"
	keyProgressEvery = "progress_every"
	keyProgress      = "progress"
	keyProfile       = "profile"
)

// cmdConfig merges command line flags with a configure file and the
// environment. A flag given on the command line overrides the environment,
// which overrides the configure file, which overrides the default.
type cmdConfig struct {
	config *string // configure file name.
	flags  map[string]func() interface{}
	given  map[string]bool
}

func newCmdConfig(c *kingpin.CmdClause) *cmdConfig {
	cfg := &cmdConfig{
		flags: make(map[string]func() interface{}),
		given: make(map[string]bool),
	}
	cfg.config = c.Flag("config", "configure file (YAML, TOML or JSON)").Default("").String()
	return cfg
}

// flag declares a flag bound to key and records whether it was given.
func (cfg *cmdConfig) flag(c *kingpin.CmdClause, key, help string) *kingpin.FlagClause {
	name := strings.Replace(key, "_", "-", -1)
	return c.Flag(name, help).Action(func(*kingpin.ParseContext) error {
		cfg.given[key] = true
		return nil
	})
}

// bind registers value, which returns the parsed value of the flag of key.
func (cfg *cmdConfig) bind(key string, value func() interface{}) {
	cfg.flags[key] = value
}

// Parse configs.
func (cfg *cmdConfig) parse() (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(keyThreshold, gap.DefaultOptions().Threshold)
	v.SetDefault(keySD, gap.DefaultOptions().SDOffset)
	v.SetDefault(keyMinWidth, gap.DefaultOptions().MinWidth)
	v.SetDefault(keyStability, false)
	v.SetDefault(keyMaxLines, gap.DefaultMaxLines)
	v.SetDefault(keyProgressEvery, 10000)

	v.SetEnvPrefix("gaps")
	v.AutomaticEnv()

	if *cfg.config != "" {
		v.SetConfigFile(*cfg.config)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	for key, value := range cfg.flags {
		if cfg.given[key] {
			v.Set(key, value())
		}
	}
	return v, nil
}
