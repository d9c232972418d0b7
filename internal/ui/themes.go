package ui

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Theme groups the styles used for console messages.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Enabled is false when styling must be skipped entirely.
	Enabled bool

	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Accent  lipgloss.Style
	Dim     lipgloss.Style
}

// Palette colors, shared with the comparison table.
var (
	ColorError   = lipgloss.Color("#FF4444")
	ColorWarning = lipgloss.Color("#FFB347")
	ColorSuccess = lipgloss.Color("#9ece6a")
	ColorAccent  = lipgloss.Color("#FF8C00")
	ColorDim     = lipgloss.Color("#666666")
)

// NoColorTheme disables all styling.
var NoColorTheme = Theme{Name: "none"}

var (
	// currentTheme styles text written to standard output.
	currentTheme = NoColorTheme
	// errTheme styles text written to standard error.
	errTheme   = NoColorTheme
	themeMutex sync.RWMutex
)

// NewTheme builds the colored theme for a given output.
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Name:    "dark",
		Enabled: true,
		Error:   r.NewStyle().Foreground(ColorError),
		Warning: r.NewStyle().Foreground(ColorWarning),
		Success: r.NewStyle().Foreground(ColorSuccess),
		Accent:  r.NewStyle().Foreground(ColorAccent),
		Dim:     r.NewStyle().Foreground(ColorDim),
	}
}

// InitTheme selects one theme for out and one for errOut. Colors are
// disabled when noColor is set, when NO_COLOR is present in the environment
// (https://no-color.org/), or when the writer is not a terminal.
func InitTheme(noColor bool, out, errOut io.Writer) {
	SetCurrentTheme(themeFor(noColor, out))
	SetErrTheme(themeFor(noColor, errOut))
}

func themeFor(noColor bool, w io.Writer) Theme {
	if noColor || noColorEnv() || !IsTerminal(w) {
		return NoColorTheme
	}
	return NewTheme(w)
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// GetErrTheme returns the theme used for standard error.
func GetErrTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return errTheme
}

// SetErrTheme sets the theme used for standard error.
func SetErrTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	errTheme = t
}

func noColorEnv() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func render(style func(Theme) lipgloss.Style, text string) string {
	return renderWith(GetCurrentTheme(), style, text)
}

func renderWith(t Theme, style func(Theme) lipgloss.Style, text string) string {
	if !t.Enabled {
		return text
	}
	return style(t).Render(text)
}

// Error styles an error message.
func Error(text string) string {
	return render(func(t Theme) lipgloss.Style { return t.Error }, text)
}

// Warning styles a warning message.
func Warning(text string) string {
	return render(func(t Theme) lipgloss.Style { return t.Warning }, text)
}

// Success styles a success message.
func Success(text string) string {
	return render(func(t Theme) lipgloss.Style { return t.Success }, text)
}

// Accent styles a highlighted value.
func Accent(text string) string {
	return render(func(t Theme) lipgloss.Style { return t.Accent }, text)
}

// Dim styles secondary text.
func Dim(text string) string {
	return render(func(t Theme) lipgloss.Style { return t.Dim }, text)
}

// Colors adapts the active themes to apperrors.ColorProvider. The zero value
// styles for standard output.
type Colors struct {
	// Stderr selects the standard error theme.
	Stderr bool
}

// Stderr styles messages written to standard error.
var Stderr = Colors{Stderr: true}

func (c Colors) theme() Theme {
	if c.Stderr {
		return GetErrTheme()
	}
	return GetCurrentTheme()
}

// Error styles an error message.
func (c Colors) Error(text string) string {
	return renderWith(c.theme(), func(t Theme) lipgloss.Style { return t.Error }, text)
}

// Warning styles a warning message.
func (c Colors) Warning(text string) string {
	return renderWith(c.theme(), func(t Theme) lipgloss.Style { return t.Warning }, text)
}
