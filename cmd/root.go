/*
Copyright © 2026 Thiago Saldanha
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fudgeroll",
	Short: "A dice roller that lands where you want it to",
	Long: `fudgeroll evaluates standard dice formulas (3d6, 2d20kh1 + 5) and,
when given a target, quietly re-rolls until the total matches it.
Unreachable targets fall back to a single honest roll.

Every roll at a table is appended to a JSONL event log so the
session history can be replayed and inspected.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fudgeroll.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("tables_dir", "", "Directory holding table event logs (default ./tables)")
	rootCmd.PersistentFlags().String("data_dir", "", "Directory holding shared character sheets and skill data (default ./data)")

	viper.BindPFlag("tables_dir", rootCmd.PersistentFlags().Lookup("tables_dir"))
	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data_dir"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".fudgeroll" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".fudgeroll")
	}

	viper.SetEnvPrefix("fudgeroll")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// tablesDir resolves the configured tables directory with its default.
func tablesDir() string {
	if dir := viper.GetString("tables_dir"); dir != "" {
		return dir
	}
	return "./tables"
}

// dataDir resolves the configured shared data directory with its default.
func dataDir() string {
	if dir := viper.GetString("data_dir"); dir != "" {
		return dir
	}
	return "./data"
}

// buildLogger builds the zap logger used across commands. Debug output is
// gated behind --verbose so steering stays quiet by default.
func buildLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
