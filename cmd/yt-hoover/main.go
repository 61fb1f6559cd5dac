// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the yt-hoover CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/yt-hoover/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir is where API keys live, one file per key.
const secretsDir = ".secrets/"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the yt-hoover CLI.
var rootCmd = &cobra.Command{
	Use:   "yt-hoover",
	Short: "Extract technical information from YouTube videos",
	Long: `yt-hoover fetches YouTube video metadata and hoovers up the technical
content buried in descriptions: tools, languages, frameworks, URLs, code
snippets, and shell commands, each with a confidence score.

Analyze one video or a batch, keep a searchable history of past analyses,
and render reports as Markdown, JSON, HTML, or CSV summaries.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(secretsDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./yt-hoover.yaml or ~/.config/yt-hoover/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("yt-hoover")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "yt-hoover"))
		}
	}

	viper.SetEnvPrefix("YT_HOOVER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
