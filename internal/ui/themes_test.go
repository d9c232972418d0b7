package ui

import (
	"bytes"
	"testing"

	apperrors "github.com/agbru/fibtime/internal/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var _ apperrors.ColorProvider = Colors{}

// restoreThemes puts back both themes when the test ends.
func restoreThemes(t *testing.T) {
	t.Helper()
	out, errOut := GetCurrentTheme(), GetErrTheme()
	t.Cleanup(func() {
		SetCurrentTheme(out)
		SetErrTheme(errOut)
	})
}

func trueColorTheme(w *bytes.Buffer) Theme {
	theme := NewTheme(w)
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)
	theme.Error = r.NewStyle().Foreground(ColorError)
	theme.Warning = r.NewStyle().Foreground(ColorWarning)
	return theme
}

func TestInitTheme_NonTerminalDisablesColors(t *testing.T) {
	restoreThemes(t)

	InitTheme(false, &bytes.Buffer{}, &bytes.Buffer{})
	if GetCurrentTheme().Enabled || GetErrTheme().Enabled {
		t.Error("a bytes.Buffer is not a terminal, colors should be disabled")
	}

	msg := "Error: Format error, input again please."
	if got := Error(msg); got != msg {
		t.Errorf("Error() altered text without colors: %q", got)
	}
}

func TestInitTheme_NoColorFlag(t *testing.T) {
	restoreThemes(t)

	InitTheme(true, &bytes.Buffer{}, &bytes.Buffer{})
	if GetCurrentTheme().Name != "none" || GetErrTheme().Name != "none" {
		t.Errorf("expected the none theme, got %q and %q", GetCurrentTheme().Name, GetErrTheme().Name)
	}
}

// TestColors_ThemePerWriter checks that a colored standard output does not
// leak escape codes into a redirected standard error, and the reverse.
func TestColors_ThemePerWriter(t *testing.T) {
	restoreThemes(t)
	msg := "Error: unexpected end of input."

	SetCurrentTheme(trueColorTheme(&bytes.Buffer{}))
	SetErrTheme(NoColorTheme)
	if got := Stderr.Error(msg); got != msg {
		t.Errorf("Stderr.Error() = %q, want plain text", got)
	}
	if got := Stderr.Warning(msg); got != msg {
		t.Errorf("Stderr.Warning() = %q, want plain text", got)
	}
	if got := (Colors{}).Error(msg); got == msg {
		t.Error("standard output colors should decorate the message")
	}

	SetCurrentTheme(NoColorTheme)
	SetErrTheme(trueColorTheme(&bytes.Buffer{}))
	if got := Error(msg); got != msg {
		t.Errorf("Error() = %q, want plain text", got)
	}
	if got := Stderr.Error(msg); got == msg {
		t.Error("standard error colors should decorate the message")
	}
}

func TestEnabledThemeDecoratesWithoutChangingText(t *testing.T) {
	restoreThemes(t)

	var buf bytes.Buffer
	SetCurrentTheme(trueColorTheme(&buf))

	msg := "Error: The n value is bigger than 40."
	got := Colors{}.Error(msg)
	if got == msg {
		t.Fatal("expected ANSI decoration with a true color profile")
	}
	if !bytes.Contains([]byte(got), []byte(msg)) {
		t.Errorf("decorated output %q should still contain %q", got, msg)
	}
}

func TestHelpersPassThroughWithoutColors(t *testing.T) {
	restoreThemes(t)
	SetCurrentTheme(NoColorTheme)
	SetErrTheme(NoColorTheme)

	for _, fn := range []func(string) string{Error, Warning, Success, Accent, Dim, Colors{}.Warning, Stderr.Error} {
		if got := fn("55"); got != "55" {
			t.Errorf("expected pass-through, got %q", got)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer is not a terminal")
	}
}
