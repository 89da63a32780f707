package cmd

import (
	"fmt"

	"github.com/shaharia-lab/reskin/internal/cli"
	"github.com/shaharia-lab/reskin/internal/theme"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd(container *cli.Container) *cobra.Command {
	rootCmd := &cobra.Command{
		Version: container.Config.Version.VersionText(),
		Use:     "reskin",
		Short:   "Runtime themes for your terminal",
		Long: `Reskin switches the colors, strings and art of an application at runtime.

Themes are either variants of the built-in resources or external bundles.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			palette := container.Palette(cmd.OutOrStdout())
			registry := container.Registry

			tagline, err := theme.ResolveString(registry.CurrentResolver(), registry.BaseProvider(), "tagline")
			if err != nil {
				tagline = ""
			}

			theme.DisplayBanner(palette, fmt.Sprintf("Welcome to %s", container.Config.Name), 40, tagline)
			fmt.Fprintln(cmd.OutOrStdout())
			palette.Info().Println("Run 'reskin themes list' to see the available themes.")
			return nil
		},
	}

	rootCmd.AddCommand(
		NewThemesCmd(container),
		NewResourceCmd(container),
		NewConfigCmd(container),
		NewServeCmd(container),
	)

	return rootCmd
}
