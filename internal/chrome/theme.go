package chrome

import (
	"fmt"
	"strings"
)

// Theme is the fixed styling contract shared by every page. A
// replacement styling layer must preserve these token names so the
// severity-to-color mapping stays consistent.
type Theme struct {
	Primary   string
	Secondary string
	Accent    string
	Warning   string
	Success   string
	Info      string
}

// DefaultTheme is the application palette.
var DefaultTheme = Theme{
	Primary:   "#1d3557",
	Secondary: "#457b9d",
	Accent:    "#e63946",
	Warning:   "#ffb703",
	Success:   "#2a9d8f",
	Info:      "#219ebc",
}

// SeverityColor maps an alert severity to its theme color. Danger wears
// the accent tone. The mapping is total.
func (t Theme) SeverityColor(s Severity) string {
	switch s {
	case SeveritySuccess:
		return t.Success
	case SeverityWarning:
		return t.Warning
	case SeverityDanger:
		return t.Accent
	default:
		return t.Info
	}
}

// CSS renders the theme as :root custom properties plus one rule per
// alert severity. Generating the sheet from the Go-side mapping keeps
// stylesheet and severity colors from drifting apart.
func (t Theme) CSS() string {
	var b strings.Builder

	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --color-primary: %s;\n", t.Primary)
	fmt.Fprintf(&b, "  --color-secondary: %s;\n", t.Secondary)
	fmt.Fprintf(&b, "  --color-accent: %s;\n", t.Accent)
	fmt.Fprintf(&b, "  --color-warning: %s;\n", t.Warning)
	fmt.Fprintf(&b, "  --color-success: %s;\n", t.Success)
	fmt.Fprintf(&b, "  --color-info: %s;\n", t.Info)
	b.WriteString("}\n")

	for _, s := range Severities() {
		fmt.Fprintf(&b, ".alert-%s { border-left: 4px solid %s; }\n", s, t.SeverityColor(s))
	}

	return b.String()
}
