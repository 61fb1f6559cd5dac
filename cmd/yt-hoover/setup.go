// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/yt-hoover/internal/secrets"
	"github.com/pdiddy/yt-hoover/internal/youtube"
	"github.com/pdiddy/yt-hoover/pkg/types"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Validate and store the YouTube API key",
	Long: `Setup validates a YouTube Data API v3 key against the live API and
stores it in .secrets/youtube-api-key for later runs. Pass the key with
--api-key or enter it at the prompt.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().String("api-key", "", "YouTube Data API key to validate and store")
	setupCmd.Flags().Bool("skip-validation", false, "store the key without checking it against the API")

	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	key, _ := cmd.Flags().GetString("api-key")
	if key == "" {
		fmt.Fprint(os.Stderr, "Enter YouTube Data API key: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading API key: %w", err)
		}
		key = strings.TrimSpace(line)
	}
	if key == "" {
		return fmt.Errorf("no API key provided")
	}

	skipValidation, _ := cmd.Flags().GetBool("skip-validation")
	if !skipValidation {
		client, err := youtube.NewClient(types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   defaultTimeout,
				UserAgent: defaultUserAgent,
			},
			APIKey: key,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Validating API key...")
		if err := client.ValidateKey(context.Background()); err != nil {
			return err
		}
	}

	if err := secrets.Save(secretsDir, secrets.YouTubeAPIKey, key); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "API key stored in %s%s\n", secretsDir, secrets.YouTubeAPIKey)
	return nil
}
