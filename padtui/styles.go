package padtui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - active field, keypad border
	SuccessColor = lipgloss.Color("#43BF6D") // Green - caret
	ErrorColor   = lipgloss.Color("#FF5555") // Red - invalid values
	MutedColor   = lipgloss.Color("#626262") // Gray - placeholders, labels
	TextColor    = lipgloss.Color("#FFFFFF") // White - values
)

// Layout constants
const (
	DisplayWidth = 18 // value box width
	LabelWidth   = 14
	KeyWidth     = 7
	KeyGap       = 1
	KeypadIndent = 2
)

// Styles holds every style the renderer uses. The six field states of the
// display (normal, active, invalid text, placeholder text, caret on, caret
// off) can each be overridden.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Suffix lipgloss.Style
	Status lipgloss.Style

	Display       lipgloss.Style
	ActiveDisplay lipgloss.Style

	Text            lipgloss.Style
	ActiveText      lipgloss.Style
	InvalidText     lipgloss.Style
	PlaceholderText lipgloss.Style

	CaretOn  lipgloss.Style
	CaretOff lipgloss.Style

	Keypad  lipgloss.Style
	Key     lipgloss.Style
	Dismiss lipgloss.Style
}

// DefaultStyles returns the built-in look.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			PaddingLeft(2),

		Label: lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(LabelWidth),

		Suffix: lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(1),

		Status: lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true).
			PaddingLeft(2),

		Display: lipgloss.NewStyle().
			Width(DisplayWidth).
			Align(lipgloss.Right),

		ActiveDisplay: lipgloss.NewStyle().
			Width(DisplayWidth).
			Align(lipgloss.Right).
			Underline(true),

		Text: lipgloss.NewStyle().
			Foreground(TextColor),

		ActiveText: lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true),

		InvalidText: lipgloss.NewStyle().
			Foreground(ErrorColor),

		PlaceholderText: lipgloss.NewStyle().
			Foreground(MutedColor),

		CaretOn: lipgloss.NewStyle().
			Foreground(SuccessColor),

		CaretOff: lipgloss.NewStyle(),

		Keypad: lipgloss.NewStyle().
			PaddingLeft(KeypadIndent),

		Key: lipgloss.NewStyle().
			Width(KeyWidth).
			Align(lipgloss.Center).
			Foreground(TextColor).
			Background(lipgloss.Color("#3C3C3C")),

		Dismiss: lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(KeypadIndent),
	}
}
