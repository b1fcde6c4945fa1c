package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hidekawai/stk1/internal/reportlog"
)

var cfgFile string

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default $HOME/.stk1c.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
}

// initConfig wires up the --config file, or .stk1c.yaml in $HOME or the
// working directory, plus STK1C_* env vars, so the verbosity and log level
// can be set once per machine instead of repeated on every invocation. The
// dictionary preset is not read from here; it comes only from --tiny/--max.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".stk1c")
		viper.AddConfigPath("$HOME")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("stk1c")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			reportlog.Logger.WithError(err).Warn("could not read config file")
		}
	}

	reportlog.SetVerbose(viper.GetBool("verbose"))
	if lvl := viper.GetString("log-level"); lvl != "" {
		if parsed, err := logrus.ParseLevel(lvl); err == nil {
			reportlog.Logger.SetLevel(parsed)
		}
	}
}
