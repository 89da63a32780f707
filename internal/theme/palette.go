package theme

import (
	"github.com/shaharia-lab/reskin/internal/resource"
)

// Roles are the semantic colors every built-in palette defines
var Roles = []string{"primary", "secondary", "success", "error", "warning", "info", "subtle", "disabled"}

const bannerArt = `
 ____           _    _
|  _ \ ___  ___| | _(_)_ __
| |_) / _ \/ __| |/ / | '_ \
|  _ <  __/\__ \   <| | | | |
|_| \_\___||___/_|\_\_|_| |_|
`

type paletteDef struct {
	name    string
	suffix  string
	tagline string
	colors  map[string]string
}

var builtinPalettes = []paletteDef{
	{
		name:    DefaultName,
		suffix:  "",
		tagline: "Runtime themes for your CLI",
		colors: map[string]string{
			"primary":   "#55FFFF",
			"secondary": "#3B78FF",
			"success":   "#16C60C",
			"error":     "#E74856",
			"warning":   "#F9F1A5",
			"info":      "#F2F2F2",
			"subtle":    "#767676",
			"disabled":  "#767676",
		},
	},
	{
		// calm blue primary with muted status colors
		name:    "professional",
		suffix:  "_professional",
		tagline: "Calm colors for long sessions",
		colors: map[string]string{
			"primary":   "#3B78FF",
			"secondary": "#8AA8E8",
			"success":   "#3FA34D",
			"error":     "#C94F4F",
			"warning":   "#D8A73C",
			"info":      "#E6E6E6",
			"subtle":    "#6E7681",
			"disabled":  "#6E7681",
		},
	},
	{
		name:    "modern-dark",
		suffix:  "_modern_dark",
		tagline: "High contrast on dark terminals",
		colors: map[string]string{
			"primary":   "#5B8DEF",
			"secondary": "#7AA2F7",
			"success":   "#3FB950",
			"error":     "#F85149",
			"warning":   "#D29922",
			"info":      "#E6EDF3",
			"subtle":    "#8B9AAE",
			"disabled":  "#223043",
		},
	},
	{
		name:    "corporate",
		suffix:  "_corporate",
		tagline: "Business as usual",
		colors: map[string]string{
			"primary":   "#1F3A93",
			"secondary": "#2E5CB8",
			"success":   "#2E7D32",
			"error":     "#C62828",
			"warning":   "#B8860B",
			"info":      "#FFFFFF",
			"subtle":    "#9E9E9E",
			"disabled":  "#BDBDBD",
		},
	},
}

// BuiltinTable builds the host resource table holding every built-in palette.
// Variants share base names and are told apart by their suffix.
func BuiltinTable(pkg, appName string) *resource.Table {
	table := resource.NewTable(pkg, resource.DefaultPackageID)

	for _, p := range builtinPalettes {
		table.PutString("app_name"+p.suffix, appName)
		table.PutString("tagline"+p.suffix, p.tagline)
		for _, role := range Roles {
			table.PutColor(role+p.suffix, resource.MustParseColor(p.colors[role]))
		}
		table.PutDrawable("banner"+p.suffix, resource.Drawable{
			Name:      "banner",
			MediaType: "text/plain",
			Data:      []byte(bannerArt),
		})
	}

	return table
}

// BuiltinVariants returns descriptors for the built-in palettes other than the default
func BuiltinVariants(pkg string) []*Descriptor {
	out := make([]*Descriptor, 0, len(builtinPalettes)-1)
	for _, p := range builtinPalettes {
		if p.name == DefaultName {
			continue
		}
		out = append(out, NewVariantDescriptor(p.name, p.suffix, pkg))
	}
	return out
}
