package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

type configFile struct {
	Data struct {
		Dir     string `toml:"dir"`
		Backend string `toml:"backend"`
	} `toml:"data"`
	Chat struct {
		ReplyText    string `toml:"reply_text"`
		ReplyDelayMS int    `toml:"reply_delay_ms"`
	} `toml:"chat"`
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the bz config file",
	}

	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve home directory: %w", err)
			}

			configDir := filepath.Join(homeDir, configDirName)
			configPath := filepath.Join(configDir, "config.toml")

			if !force {
				if _, err := os.Stat(configPath); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
				} else if !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("stat config file: %w", err)
				}
			}

			var file configFile
			file.Data.Dir = filepath.Join(configDir, "data")
			file.Data.Backend = "file"
			file.Chat.ReplyText = defaultReplyText
			file.Chat.ReplyDelayMS = int(defaultReplyDelay / time.Millisecond)

			data, err := toml.Marshal(file)
			if err != nil {
				return fmt.Errorf("encode config file: %w", err)
			}

			if err := os.MkdirAll(configDir, 0o700); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
			if err := os.WriteFile(configPath, data, 0o600); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
