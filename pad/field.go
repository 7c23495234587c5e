package pad

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/numpad/internal/logging"
	"github.com/muurk/numpad/numfmt"
)

// FieldOptions configures a Field. They are fixed once the field is created.
type FieldOptions struct {
	// ID overrides the generated identity. Registering a second field under
	// the same ID replaces the first in the coordinator.
	ID FieldID

	// Value is the initial numeric value.
	Value float64

	// Format bounds the digits kept. The zero value means numfmt.Default().
	Format numfmt.Options

	// Formatter replaces the built-in formatter entirely.
	Formatter numfmt.FormatFunc

	// IsValid is consulted after every keystroke; invalid values are still
	// shown and reported, only styled differently.
	IsValid func(formatted string) bool

	Caret       bool
	BlinkPeriod time.Duration
	Scheduler   Scheduler

	Autofocus bool

	OnChange func(value float64)
	OnFocus  func()
	OnBlur   func()
}

// FieldState is a snapshot of a field's mutable state.
type FieldState struct {
	Buffer       string // in-progress edit, EmptySentinel when nothing typed
	Committed    string // last committed display value, the placeholder while editing
	Active       bool
	Valid        bool
	CaretVisible bool
}

// FieldView is what the renderer needs to draw a field.
type FieldView struct {
	Text        string
	Placeholder bool
	Active      bool
	Invalid     bool
	Caret       bool // field shows a caret at all
	CaretOn     bool // caret is in its visible blink phase
}

// Field is one editable numeric display bound to the shared keypad.
type Field struct {
	id     FieldID
	coord  *Coordinator
	opts   FieldOptions
	format numfmt.FormatFunc

	state       FieldState
	cancelBlink func()
	closed      bool
}

// NewField creates a field and registers it with coord.
func NewField(coord *Coordinator, opts FieldOptions) *Field {
	if opts.ID == "" {
		opts.ID = NewFieldID()
	}
	if opts.Format == (numfmt.Options{}) {
		opts.Format = numfmt.Default()
	}
	if opts.IsValid == nil {
		opts.IsValid = func(string) bool { return true }
	}
	if opts.BlinkPeriod <= 0 {
		opts.BlinkPeriod = DefaultBlinkPeriod
	}
	if opts.Scheduler == nil {
		opts.Scheduler = steady{}
	}

	f := &Field{
		id:     opts.ID,
		coord:  coord,
		opts:   opts,
		format: opts.Formatter,
	}
	if f.format == nil {
		f.format = opts.Format.Func()
	}

	committed := f.format(numfmt.FromFloat(opts.Value), true)
	f.state = FieldState{
		Buffer:       numfmt.EmptySentinel,
		Committed:    committed,
		Valid:        true,
		CaretVisible: true,
	}

	coord.RegisterField(f.id, f)

	if opts.Autofocus {
		f.Tap()
	}
	return f
}

// ID returns the field's identity.
func (f *Field) ID() FieldID { return f.id }

// State returns a snapshot of the field state.
func (f *Field) State() FieldState { return f.state }

// Tap asks the coordinator for focus. Tapping the active field keeps its
// in-progress edit.
func (f *Field) Tap() {
	if f.closed || f.state.Active {
		return
	}
	f.coord.RequestFocus(f.id)
}

// Activate enters edit mode. Calls not coming from the coordinator are
// routed through it so the other fields get deactivated first.
func (f *Field) Activate(fromCoordinator bool) {
	if f.closed {
		return
	}
	if !fromCoordinator {
		f.coord.RequestFocus(f.id)
		return
	}
	if f.state.Active {
		return
	}

	f.state.Committed = f.format(f.Display(), true)
	f.state.Buffer = numfmt.EmptySentinel
	f.state.Active = true
	f.startBlink()

	if f.opts.OnFocus != nil {
		f.opts.OnFocus()
	}
}

// Deactivate commits the edit buffer and leaves edit mode. A field that is
// the coordinator's active field and is deactivated directly hands over to
// RequestBlur so the keypad hides too.
func (f *Field) Deactivate(fromCoordinator bool) {
	if !f.state.Active {
		return
	}
	if !fromCoordinator && f.coord.IsActive(f.id) {
		f.coord.RequestBlur()
		return
	}

	if value := f.format(f.state.Buffer, true); value != numfmt.EmptySentinel {
		f.state.Committed = value
	}
	f.state.Buffer = numfmt.EmptySentinel
	f.state.Active = false
	f.state.Valid = f.opts.IsValid(f.state.Committed)
	f.stopBlink()

	if f.opts.OnBlur != nil {
		f.opts.OnBlur()
	}
}

// ReceiveKey applies one keystroke to the edit buffer.
func (f *Field) ReceiveKey(key Key) {
	if f.closed || !f.state.Active {
		return
	}

	var raw string
	switch {
	case key == KeyBackspace:
		raw = f.state.Buffer
		if len(raw) > 0 {
			raw = raw[:len(raw)-1]
		}
	case key == KeyPoint, key.IsDigit():
		raw = f.state.Buffer + string(key)
	default:
		logging.Debug("Unknown key ignored", zap.String("field_id", string(f.id)), zap.String("key", string(key)))
		return
	}

	f.state.Buffer = f.format(raw, false)
	f.state.Valid = f.opts.IsValid(f.state.Buffer)
	logging.LogKey(string(f.id), string(key), f.state.Buffer)

	if f.opts.OnChange != nil {
		f.opts.OnChange(f.Value())
	}
}

// Display returns the string currently shown: the edit buffer once something
// has been typed, otherwise the committed value.
func (f *Field) Display() string {
	if f.state.Active && f.state.Buffer != numfmt.EmptySentinel {
		return f.state.Buffer
	}
	return f.state.Committed
}

// Value returns the numeric value of Display, or NaN if it does not parse.
func (f *Field) Value() float64 {
	v, err := numfmt.Parse(f.Display())
	if err != nil {
		logging.Debug("Display value does not parse", zap.String("field_id", string(f.id)), zap.Error(err))
		return math.NaN()
	}
	return v
}

// View decides how the field is drawn.
func (f *Field) View() FieldView {
	placeholder := f.state.Committed == numfmt.EmptySentinel
	if f.state.Active {
		placeholder = f.state.Buffer == numfmt.EmptySentinel
	}
	caret := f.state.Active && f.opts.Caret
	return FieldView{
		Text:        f.Display(),
		Placeholder: placeholder,
		Active:      f.state.Active,
		Invalid:     !f.state.Valid,
		Caret:       caret,
		CaretOn:     caret && f.state.CaretVisible,
	}
}

// Close unregisters the field and cancels its caret task.
func (f *Field) Close() {
	if f.closed {
		return
	}
	f.closed = true
	f.stopBlink()
	f.state.Active = false
	f.coord.UnregisterField(f.id, f)
}

func (f *Field) startBlink() {
	f.stopBlink()
	if !f.opts.Caret {
		return
	}
	f.cancelBlink = f.opts.Scheduler.Every(f.opts.BlinkPeriod, func() {
		if f.closed || !f.state.Active {
			return
		}
		f.state.CaretVisible = !f.state.CaretVisible
	})
}

func (f *Field) stopBlink() {
	if f.cancelBlink != nil {
		f.cancelBlink()
		f.cancelBlink = nil
	}
	f.state.CaretVisible = true
}
