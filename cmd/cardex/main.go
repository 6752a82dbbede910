// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cardex CLI, a one-directional
// extractor: character-card and lorebook JSON files in, readable text or
// PDF out.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cardex/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the cardex CLI.
var rootCmd = &cobra.Command{
	Use:   "cardex",
	Short: "Extract readable text and PDFs from character cards and lorebooks",
	Long: `cardex reads character-card and lorebook JSON files as produced by
roleplay chat tools, lets you pick which fields to keep, and renders the
selection as formatted text, plain text, or a paginated PDF.

The pipeline is strictly one-directional: structured input to readable
output. Nothing is written back into the source files and no state is kept
between runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cardex.yaml or ~/.config/cardex/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cardex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cardex"))
		}
	}

	defaults := types.DefaultConfig()
	viper.SetDefault("output.format", string(defaults.Output.Format))
	viper.SetDefault("output.dir", defaults.Output.Dir)
	viper.SetDefault("output.condensed", defaults.Output.Condensed)
	viper.SetDefault("prompt.page_size", defaults.Prompt.PageSize)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// toolConfig resolves the effective configuration: built-in defaults,
// overridden by the config file, overridden by flags the user actually set.
func toolConfig(cmd *cobra.Command) types.Config {
	cfg := types.Config{
		Output: types.OutputConfig{
			Format:    types.OutputFormat(viper.GetString("output.format")),
			Dir:       viper.GetString("output.dir"),
			Condensed: viper.GetBool("output.condensed"),
		},
		Prompt: types.PromptConfig{
			PageSize: viper.GetInt("prompt.page_size"),
		},
	}

	if cmd.Flags().Changed("format") {
		v, _ := cmd.Flags().GetString("format")
		cfg.Output.Format = types.OutputFormat(v)
	}
	if cmd.Flags().Changed("condensed") {
		cfg.Output.Condensed, _ = cmd.Flags().GetBool("condensed")
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
