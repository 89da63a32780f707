package cmd

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/shaharia-lab/reskin/internal/cli"
	"github.com/shaharia-lab/reskin/internal/resource"
	"github.com/shaharia-lab/reskin/internal/theme"
	"github.com/spf13/cobra"
)

// NewResourceCmd creates the resource command group
func NewResourceCmd(container *cli.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Resolve resources through the active theme",
	}
	cmd.AddCommand(
		NewResourceGetCmd(container),
		NewResourceListCmd(container),
	)
	return cmd
}

// NewResourceListCmd creates a command listing the resources of the application
func NewResourceListCmd(container *cli.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the resources of the application",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := container.Registry.BaseProvider()
			entries := resource.Describe(base)
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No resources")
				return nil
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Kind", "Name"})
			table.SetBorder(false)
			table.SetAutoWrapText(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)

			for _, e := range entries {
				id := base.Identifier(e.Name, e.Kind, e.Package)
				table.Append([]string{id.String(), string(e.Kind), e.Name})
			}
			table.Render()
			return nil
		},
	}
}

// NewResourceGetCmd creates a command resolving one resource
func NewResourceGetCmd(container *cli.Container) *cobra.Command {
	var themeName string

	cmd := &cobra.Command{
		Use:   "get <kind> <name>",
		Short: "Resolve a string, color or drawable",
		Long: `Resolve a resource of the application through the active theme.

Kinds are string, color and drawable. Use --theme to activate a theme first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := resource.ParseKind(args[0])
			if err != nil {
				return err
			}
			name := args[1]

			registry := container.Registry
			if themeName != "" {
				ctx := cmd.Context()
				if ctx == nil {
					ctx = context.Background()
				}
				if err := registry.Activate(ctx, themeName); err != nil {
					return err
				}
			}

			resolver := registry.CurrentResolver()
			base := registry.BaseProvider()
			out := cmd.OutOrStdout()

			switch kind {
			case resource.KindString:
				v, err := theme.ResolveString(resolver, base, name)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, v)
			case resource.KindColor:
				c, err := theme.ResolveColor(resolver, base, name)
				if err != nil {
					return err
				}
				theme.NewColorStyle(c).WithWriter(out).Print("■ ")
				fmt.Fprintln(out, c.Hex())
			case resource.KindDrawable:
				d, err := theme.ResolveDrawable(resolver, base, name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s (%s, %d bytes)\n", d.Name, d.MediaType, len(d.Data))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&themeName, "theme", "t", "", "theme to activate before resolving")
	return cmd
}
