package chrome

import (
	"strings"
	"testing"
)

func TestSeverityColor(t *testing.T) {
	theme := DefaultTheme

	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityInfo, theme.Info},
		{SeveritySuccess, theme.Success},
		{SeverityWarning, theme.Warning},
		{SeverityDanger, theme.Accent},
		{Severity(99), theme.Info},
	}

	for _, tt := range tests {
		if got := theme.SeverityColor(tt.severity); got != tt.want {
			t.Errorf("SeverityColor(%v) = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestThemeCSS(t *testing.T) {
	css := DefaultTheme.CSS()

	for _, token := range []string{
		"--color-primary: #1d3557;",
		"--color-secondary: #457b9d;",
		"--color-accent: #e63946;",
		"--color-warning: #ffb703;",
		"--color-success: #2a9d8f;",
		"--color-info: #219ebc;",
	} {
		if !strings.Contains(css, token) {
			t.Errorf("stylesheet missing %q", token)
		}
	}

	// danger banners wear the accent tone
	if !strings.Contains(css, ".alert-danger { border-left: 4px solid #e63946; }") {
		t.Error("stylesheet missing the danger alert rule")
	}
}
