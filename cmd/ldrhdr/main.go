package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:               "ldrhdr",
	Short:             "Simulate exposure brackets from a Plain PPM and write them as TGA",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (YAML, JSON or TOML)")
}

// initConfig layers flags, LDRHDR_* environment variables and an optional
// config file for the command about to run.
func initConfig(cmd *cobra.Command, args []string) error {
	viper.SetEnvPrefix("ldrhdr")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if cfg := viper.GetString("config"); cfg != "" {
		viper.SetConfigFile(cfg)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
