package ui

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"needs truncation", "hello world", 8, "hello..."},
		{"very short max", "hello", 3, "hel"},
		{"zero max", "hello", 0, "hello"},
		{"multibyte", "Évaluation des risques", 8, "Évalu..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestBullets(t *testing.T) {
	got := Bullets([]string{"Agile Framework", "Code Review Process"})
	want := "- Agile Framework\n- Code Review Process\n"
	if got != want {
		t.Errorf("Bullets() = %q, want %q", got, want)
	}
	if Bullets(nil) != "" {
		t.Error("Bullets(nil) should be empty")
	}
}

func TestTerminalWidth_Fallback(t *testing.T) {
	// go test never runs with a terminal on stdout.
	if got := TerminalWidth(80); got <= 0 {
		t.Errorf("TerminalWidth(80) = %d, want positive", got)
	}
}

func TestPanel(t *testing.T) {
	t.Run("basic panel", func(t *testing.T) {
		result := NewPanel("Title", "Content").Render()

		if !strings.Contains(result, "Title") {
			t.Error("Panel should contain title")
		}
		if !strings.Contains(result, "Content") {
			t.Error("Panel should contain content")
		}
	})

	t.Run("panel without title", func(t *testing.T) {
		result := NewPanel("", "Content only").Render()

		if !strings.Contains(result, "Content only") {
			t.Error("Panel should contain content")
		}
	})

	t.Run("panel with custom color and width", func(t *testing.T) {
		result := NewPanel("Info", "Details").WithBorderColor(ColorCyan).WithWidth(30).Render()

		if !strings.Contains(result, "Info") {
			t.Error("Panel should contain title")
		}
	})

	t.Run("convenience functions", func(t *testing.T) {
		success := RenderSuccessPanel("Success", "content")
		errPanel := RenderErrorPanel("Error", "content")
		warning := RenderWarningPanel("Warning", "content")

		if !strings.Contains(success, "Success") {
			t.Error("Success panel should contain title")
		}
		if !strings.Contains(errPanel, "Error") {
			t.Error("Error panel should contain title")
		}
		if !strings.Contains(warning, "Warning") {
			t.Error("Warning panel should contain title")
		}
	})
}

func TestRenderPageHeader(t *testing.T) {
	out := RenderPageHeader("Agent archetypes", "20 archetypes")
	if !strings.Contains(out, "Agent archetypes") {
		t.Error("header should contain title")
	}
	if !strings.Contains(out, "20 archetypes") {
		t.Error("header should contain subtitle")
	}

	out = RenderPageHeader("Industries", "")
	if strings.Count(strings.TrimRight(out, "\n"), "\n") != 2 {
		t.Errorf("header without subtitle should be the 3-line box, got %q", out)
	}
}
