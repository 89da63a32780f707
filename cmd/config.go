package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/shaharia-lab/reskin/internal/cli"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates a config command
func NewConfigCmd(container *cli.Container) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage Reskin configuration",
		Long:  `Commands to manage and view your Reskin configuration.`,
	}

	cfgCmd.AddCommand(NewConfigPreviewCmd(container))
	return cfgCmd
}

// NewConfigPreviewCmd creates a command to preview the config file
func NewConfigPreviewCmd(container *cli.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Preview the current configuration file",
		Long:  `Display the content of your Reskin configuration file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := container.ConfigManager.Path()
			configData, err := os.ReadFile(configPath)
			if err != nil {
				return fmt.Errorf("error reading config file: %w", err)
			}

			out := cmd.OutOrStdout()
			color.New(color.FgHiCyan, color.Bold).Fprintln(out, "\nConfiguration File")
			color.New(color.FgHiWhite).Fprintf(out, "Located at: %s\n\n", configPath)
			fmt.Fprintln(out, string(configData))
			return nil
		},
	}
}
