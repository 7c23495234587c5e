package pad

import (
	"go.uber.org/zap"

	"github.com/muurk/numpad/internal/logging"
)

// Position selects how the keypad takes screen space.
type Position string

const (
	// PositionRelative places the keypad in the layout flow; it grows from
	// zero to its height while showing.
	PositionRelative Position = "relative"

	// PositionAbsolute overlays the keypad on the bottom of the screen.
	PositionAbsolute Position = "absolute"
)

// DefaultKeypadHeight is the keypad height in terminal rows.
const DefaultKeypadHeight = 6

// Glyph names resolved through a GlyphSource.
const (
	GlyphBackspace = "backspace"
	GlyphDismiss   = "dismiss"
)

// GlyphSource resolves icon names to printable glyphs.
type GlyphSource interface {
	Glyph(name string) (string, error)
}

// KeypadOptions configures the shared keypad.
type KeypadOptions struct {
	Height   int
	Position Position
	Glyphs   GlyphSource

	OnWillShow func()
	OnDidShow  func()
	OnWillHide func()
	OnDidHide  func()
}

var keypadLayout = [][]Key{
	{"1", "2", "3"},
	{"4", "5", "6"},
	{"7", "8", "9"},
	{KeyPoint, "0", KeyBackspace},
}

// Keypad is the shared key surface. Its visibility follows the coordinator:
// shown while any field is active, hidden otherwise.
type Keypad struct {
	coord *Coordinator
	opts  KeypadOptions
	vis   Visibility

	glyphWarned bool
}

// NewKeypad creates the keypad, installs it in coord and publishes its height.
func NewKeypad(coord *Coordinator, opts KeypadOptions) *Keypad {
	if opts.Height <= 0 {
		opts.Height = DefaultKeypadHeight
	}
	if opts.Position == "" {
		opts.Position = PositionAbsolute
	}

	k := &Keypad{coord: coord, opts: opts}
	coord.SetKeypadHeight(opts.Height)
	coord.RegisterKeypad(k)
	return k
}

// Height returns the keypad height in rows.
func (k *Keypad) Height() int { return k.opts.Height }

// Position returns the configured position mode.
func (k *Keypad) Position() Position { return k.opts.Position }

// Show starts a transition to visible.
func (k *Keypad) Show() {
	t, ok := k.vis.Request(Visible)
	if !ok {
		return
	}
	logging.LogVisibility("keypad", t.Target.String(), t.Seq)
	if k.opts.OnWillShow != nil {
		k.opts.OnWillShow()
	}
}

// Hide starts a transition to hidden.
func (k *Keypad) Hide() {
	t, ok := k.vis.Request(Hidden)
	if !ok {
		return
	}
	logging.LogVisibility("keypad", t.Target.String(), t.Seq)
	if k.opts.OnWillHide != nil {
		k.opts.OnWillHide()
	}
}

// Transition returns the latest requested transition.
func (k *Keypad) Transition() Transition { return k.vis.Current() }

// Settled reports whether the latest transition has completed.
func (k *Keypad) Settled() bool { return k.vis.Settled() }

// Complete is called by the renderer when the animation for seq finished.
// Superseded transitions are ignored.
func (k *Keypad) Complete(seq uint64) {
	if !k.vis.Complete(seq) {
		return
	}
	switch k.vis.Target() {
	case Visible:
		if k.opts.OnDidShow != nil {
			k.opts.OnDidShow()
		}
	case Hidden:
		if k.opts.OnDidHide != nil {
			k.opts.OnDidHide()
		}
	}
}

// Press forwards key to the active field.
func (k *Keypad) Press(key Key) bool {
	return k.coord.DispatchKey(key)
}

// Dismiss blurs the active field.
func (k *Keypad) Dismiss() {
	k.coord.RequestBlur()
}

// Layout returns the key grid, row by row.
func (k *Keypad) Layout() [][]Key {
	rows := make([][]Key, len(keypadLayout))
	for i, r := range keypadLayout {
		rows[i] = append([]Key(nil), r...)
	}
	return rows
}

// Glyph resolves name through the glyph source. Without a source, or when
// the lookup fails, it returns "" and the caller omits the glyph.
func (k *Keypad) Glyph(name string) string {
	if k.opts.Glyphs == nil {
		k.warnGlyph(name, nil)
		return ""
	}
	g, err := k.opts.Glyphs.Glyph(name)
	if err != nil {
		k.warnGlyph(name, err)
		return ""
	}
	return g
}

func (k *Keypad) warnGlyph(name string, err error) {
	if k.glyphWarned {
		return
	}
	k.glyphWarned = true
	fields := []zap.Field{zap.String("glyph", name)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logging.Warn("Glyph source unavailable, keypad icons omitted", fields...)
}

// Close uninstalls the keypad and hides it.
func (k *Keypad) Close() {
	k.coord.UnregisterKeypad(k)
	k.Hide()
}
