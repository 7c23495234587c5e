package padtui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/numpad/pad"
)

// fieldsTop is the screen row of the first field: title, then a blank line.
const fieldsTop = 2

// View implements tea.Model
func (m *Model) View() string {
	lines := m.contentLines()
	for i := 0; i < m.shTween.rows(); i++ {
		lines = append(lines, "")
	}

	visible := m.keypadRows()
	keypad := m.keypadLines()[:visible]

	if m.keypad.Position() == pad.PositionAbsolute && m.height > 0 {
		for len(lines) < m.height {
			lines = append(lines, "")
		}
		lines = lines[:m.height]
		copy(lines[m.height-visible:], keypad)
		return strings.Join(lines, "\n")
	}

	return strings.Join(append(lines, keypad...), "\n")
}

func (m *Model) contentLines() []string {
	lines := []string{m.styles.Title.Render(m.title), ""}
	for _, e := range m.fields {
		lines = append(lines, m.renderField(e))
	}
	lines = append(lines, "", m.styles.Status.Render(m.status))
	lines = append(lines, strings.Split(m.help.View(m.keys), "\n")...)
	return lines
}

func (m *Model) renderField(e *fieldEntry) string {
	v := e.field.View()

	marker := "  "
	if v.Active {
		marker = lipgloss.NewStyle().Foreground(PrimaryColor).Render("› ")
	}

	line := marker + m.styles.Label.Render(e.label) + m.renderValue(v)
	if e.suffix != "" {
		line += m.styles.Suffix.Render(e.suffix)
	}
	return line
}

func (m *Model) renderValue(v pad.FieldView) string {
	text := m.styles.Text
	if v.Active {
		text = m.styles.ActiveText
	}
	if v.Invalid {
		text = m.styles.InvalidText
	}
	if v.Placeholder {
		text = m.styles.PlaceholderText
	}

	out := text.Render(v.Text)
	if v.Caret {
		if v.CaretOn {
			out += m.styles.CaretOn.Render("▏")
		} else {
			out += m.styles.CaretOff.Render(" ")
		}
	}

	box := m.styles.Display
	if v.Active {
		box = m.styles.ActiveDisplay
	}
	return box.Render(out)
}

// keypadLines renders the whole keypad, exactly Height rows: the dismiss bar,
// the key grid, then blank rows.
func (m *Model) keypadLines() []string {
	dismiss := "done"
	if g := m.keypad.Glyph(pad.GlyphDismiss); g != "" {
		dismiss = g + " " + dismiss
	}
	lines := []string{m.styles.Dismiss.Render(dismiss)}

	gap := strings.Repeat(" ", KeyGap)
	for _, row := range m.keypad.Layout() {
		cells := make([]string, len(row))
		for i, k := range row {
			cells[i] = m.styles.Key.Render(m.keyLabel(k))
		}
		lines = append(lines, m.styles.Keypad.Render(strings.Join(cells, gap)))
	}

	height := m.keypad.Height()
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines[:height]
}

func (m *Model) keyLabel(k pad.Key) string {
	if k == pad.KeyBackspace {
		return m.keypad.Glyph(pad.GlyphBackspace)
	}
	return string(k)
}

// keypadRows is how many keypad rows are on screen, clamped to the keypad
// and, for the overlay, to the window.
func (m *Model) keypadRows() int {
	rows := min(m.kpTween.rows(), m.keypad.Height())
	if m.keypad.Position() == pad.PositionAbsolute && m.height > 0 {
		rows = min(rows, m.height)
	}
	return rows
}

// keypadHit is what a click on the keypad landed on.
type keypadHit struct {
	dismiss bool
	key     pad.Key
}

// keypadTop returns the screen row of the keypad's first row.
func (m *Model) keypadTop(visible int) int {
	if m.keypad.Position() == pad.PositionAbsolute && m.height > 0 {
		return m.height - visible
	}
	return len(m.contentLines()) + m.shTween.rows()
}

// keypadHit maps a screen cell onto the keypad.
func (m *Model) keypadHit(x, y int) (keypadHit, bool) {
	visible := m.keypadRows()
	if visible == 0 {
		return keypadHit{}, false
	}
	row := y - m.keypadTop(visible)
	if row < 0 || row >= visible {
		return keypadHit{}, false
	}
	if row == 0 {
		return keypadHit{dismiss: true}, true
	}

	layout := m.keypad.Layout()
	if row > len(layout) {
		return keypadHit{}, true
	}
	col := x - KeypadIndent
	if col < 0 || col%(KeyWidth+KeyGap) >= KeyWidth {
		return keypadHit{}, true
	}
	keys := layout[row-1]
	i := col / (KeyWidth + KeyGap)
	if i >= len(keys) {
		return keypadHit{}, true
	}
	return keypadHit{key: keys[i]}, true
}
