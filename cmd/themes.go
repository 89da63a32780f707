package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/shaharia-lab/reskin/internal/cli"
	"github.com/shaharia-lab/reskin/internal/logger"
	"github.com/shaharia-lab/reskin/internal/theme"
	"github.com/spf13/cobra"
)

// Picker asks the user to choose one of options
type Picker func(message string, options []string, current string) (string, error)

// SurveyPicker prompts on the terminal
func SurveyPicker(message string, options []string, current string) (string, error) {
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if current != "" {
		prompt.Default = current
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

// NewThemesCmd creates the themes command group
func NewThemesCmd(container *cli.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List, preview and pick themes",
	}

	cmd.AddCommand(
		NewThemesListCmd(container),
		NewThemesPreviewCmd(container),
		NewThemesPickCmd(container, SurveyPicker),
	)
	return cmd
}

// NewThemesListCmd creates a command listing the registered themes
func NewThemesListCmd(container *cli.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := container.Registry

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Theme", "Kind", "Source", "Package", "Active"})
			table.SetBorder(false)
			table.SetAutoWrapText(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)

			for _, d := range registry.Themes() {
				kind, source := "variant", d.Suffix()
				switch {
				case registry.IsDefaultTheme(d):
					kind, source = "default", "-"
				case d.Suffix() == "":
					kind = "bundle"
					source = d.SourcePath()
					if source == "" {
						if p, err := container.Bundles.Path(d); err == nil {
							source = p
						}
					}
				}

				active := ""
				if registry.IsCurrentTheme(d) {
					active = "*"
				}
				pkg := d.PackageName()
				if pkg == "" {
					pkg = "-"
				}
				table.Append([]string{d.Name(), kind, source, pkg, active})
			}

			table.Render()
			fmt.Fprintf(cmd.OutOrStdout(), "\nMode: %s\n", registry.Mode())
			return nil
		},
	}
}

// NewThemesPreviewCmd creates a command activating a theme and showing its palette
func NewThemesPreviewCmd(container *cli.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <name>",
		Short: "Activate a theme and preview its colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return preview(cmd.Context(), container, cmd.OutOrStdout(), args[0])
		},
	}
}

// NewThemesPickCmd creates a command choosing a theme interactively
func NewThemesPickCmd(container *cli.Container, pick Picker) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a theme interactively and preview it",
		RunE: func(cmd *cobra.Command, args []string) error {
			themes := container.Registry.Themes()
			names := make([]string, 0, len(themes))
			for _, d := range themes {
				names = append(names, d.Name())
			}

			selected, err := pick("Choose a theme:", names, container.Registry.CurrentTheme().Name())
			if err != nil {
				return err
			}
			if selected == "" {
				return fmt.Errorf("no theme selected")
			}

			return preview(cmd.Context(), container, cmd.OutOrStdout(), selected)
		},
	}
}

func preview(ctx context.Context, container *cli.Container, out io.Writer, name string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	registry := container.Registry
	palette := container.Palette(out)

	if err := registry.Activate(ctx, name); err != nil {
		container.Logger.Error("Theme preview failed", map[string]interface{}{
			"theme":         name,
			logger.ErrorKey: err,
		})
		palette.Error().Println(fmt.Sprintf("Cannot preview %q: %v", name, err))
		return err
	}

	current := registry.CurrentResolver()
	base := registry.BaseProvider()

	title, err := theme.ResolveString(current, base, "app_name")
	if err != nil {
		title = container.Config.Name
	}
	tagline, _ := theme.ResolveString(current, base, "tagline")

	if art, err := theme.ResolveDrawable(current, base, "banner"); err == nil && strings.HasPrefix(art.MediaType, "text/") {
		palette.Primary().Println(string(art.Data))
	}
	theme.DisplayBanner(palette, title, 40, tagline)
	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.RenderSwatches(current, base, theme.Roles))
	fmt.Fprintln(out)
	palette.Success().Println(fmt.Sprintf("Theme %q is active", registry.CurrentTheme().Name()))
	return nil
}
