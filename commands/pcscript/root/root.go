// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package root

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/BOXFoundation/paircommit/config"
	"github.com/BOXFoundation/paircommit/log"
	"github.com/BOXFoundation/paircommit/metrics"
	"github.com/BOXFoundation/paircommit/script"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// root command
var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pcscript",
	Short: "OP_PAIRCOMMIT script toolkit",
	Long: `pcscript computes PairCommit commitments and runs scripts through
an interpreter that supports OP_PAIRCOMMIT.`,
	Example: `
1. commitment of two strings
  ./pcscript hash "Hello " "World!"
2. commitment of two hex operands, base58check encoded
  ./pcscript hash --hex --format base58check 01 02
3. run a script
  ./pcscript eval --flags PAIRCOMMIT "'Hello ' 'World!' PAIRCOMMIT SIZE"
4. check a vector file
  ./pcscript vectors script/testdata/paircommit_vectors.json
	`,
	Version:            fmt.Sprintf("%s %s", config.Version, config.GitCommit),
	PersistentPostRunE: writeMetrics,
}

var logger = log.NewLogger("cmd")

// init sets flags appropriately.
func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is nil)")

	RootCmd.PersistentFlags().String("workspace", "", "work directory for pcscript (default ~/.pcscript)")
	viper.BindPFlag("workspace", RootCmd.PersistentFlags().Lookup("workspace"))

	RootCmd.PersistentFlags().String("log-level", "error", "log level [debug|info|warn|error|fatal]")
	viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level"))

	RootCmd.PersistentFlags().StringSlice("flags", []string{"PAIRCOMMIT"},
		"script verify flags [PAIRCOMMIT|DISCOURAGE_UPGRADABLE_NOPS|CLEANSTACK|NONE], seperated by comma.")
	viper.BindPFlag("script.flags", RootCmd.PersistentFlags().Lookup("flags"))

	RootCmd.PersistentFlags().Bool("metrics", false, "print metrics after the command finishes.")
	viper.BindPFlag("metrics.enable", RootCmd.PersistentFlags().Lookup("metrics"))

	viper.SetDefault("log.out.name", "stderr")
	viper.SetDefault("log.formatter.name", "text")
	viper.SetDefault("script.cache_size", script.DefaultExecCacheSize)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	log.SetLogLevel(viper.GetString("log.level"))

	// Find home directory.
	home, err := homedir.Dir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("pcscript")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	viper.SetDefault("workspace", path.Join(home, ".pcscript"))

	// If a config file is found, read it in.
	if cfgFile != "" {
		if err := viper.ReadInConfig(); err != nil {
			logger.Warnf("Failed to read config file %s: %v", cfgFile, err)
		} else {
			logger.Infof("Using config file: %s", viper.ConfigFileUsed())
		}
	}
}

// LoadConfig builds the configuration from viper, prepares the workspace
// and sets up logging.
func LoadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	// init config object from viper
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Prepare(); err != nil {
		return nil, err
	}
	if err := log.Setup(&cfg.Log); err != nil {
		logger.Warnf("Failed to setup logger: %v", err)
	}
	logger.Debugf("config:\n%s", cfg)
	return cfg, nil
}

// ScriptFlags returns the configured script verify flags.
func ScriptFlags() (script.ScriptFlags, error) {
	return script.ParseScriptFlags(viper.GetStringSlice("script.flags"))
}

func writeMetrics(cmd *cobra.Command, args []string) error {
	cfg := &metrics.Config{Enable: viper.GetBool("metrics.enable")}
	metrics.WriteOnce(cfg, cmd.OutOrStderr())
	return nil
}
