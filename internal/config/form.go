package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/muurk/numpad/numfmt"
)

// CurrentVersion is the only form file version understood.
const CurrentVersion = 1

// ErrUnsupportedVersion is returned for form files written by a newer release.
var ErrUnsupportedVersion = errors.New("unsupported form version")

// Form is the entire form file.
type Form struct {
	Version   int           `yaml:"version"`
	Title     string        `yaml:"title,omitempty"`
	Fields    []FieldSpec   `yaml:"fields"`
	Keypad    KeypadSpec    `yaml:"keypad"`
	Animation AnimationSpec `yaml:"animation"`
}

// FieldSpec describes one numeric field.
type FieldSpec struct {
	Label     string          `yaml:"label"`
	Value     float64         `yaml:"value"`
	Format    *numfmt.Options `yaml:"format,omitempty"` // nil uses numfmt.Default()
	Min       *float64        `yaml:"min,omitempty"`    // inclusive lower bound for validity
	Max       *float64        `yaml:"max,omitempty"`    // inclusive upper bound for validity
	Caret     bool            `yaml:"caret"`            // show a blinking caret while active
	Autofocus bool            `yaml:"autofocus"`        // focus on start
	Suffix    string          `yaml:"suffix,omitempty"` // unit shown after the value
}

// KeypadSpec describes the shared keypad.
type KeypadSpec struct {
	Height   int    `yaml:"height"`   // rows
	Position string `yaml:"position"` // "relative" or "absolute"
}

// AnimationSpec tunes the show/hide springs.
type AnimationSpec struct {
	FPS       int           `yaml:"fps"`
	Frequency float64       `yaml:"frequency"` // angular frequency of the spring
	Damping   float64       `yaml:"damping"`   // damping ratio, 1 is critically damped
	Blink     time.Duration `yaml:"blink"`     // caret blink half-period
}

// Default returns the demo form used when no file exists.
func Default() *Form {
	return &Form{
		Version: CurrentVersion,
		Title:   "Split the bill",
		Fields: []FieldSpec{
			{Label: "Amount", Value: 0, Caret: true, Autofocus: true, Suffix: "USD"},
			{Label: "Tip %", Value: 15, Caret: true, Min: float64Ptr(0), Max: float64Ptr(100),
				Format: &numfmt.Options{IntegerDigits: 3, DecimalDigits: 1, MinDecimals: 0}},
			{Label: "People", Value: 2, Caret: true, Min: float64Ptr(1),
				Format: &numfmt.Options{IntegerDigits: 3, DecimalDigits: 0, MinDecimals: 0}},
		},
		Keypad:    KeypadSpec{Height: 6, Position: "absolute"},
		Animation: DefaultAnimation(),
	}
}

// DefaultAnimation settles the springs in roughly 200ms.
func DefaultAnimation() AnimationSpec {
	return AnimationSpec{FPS: 60, Frequency: 14.0, Damping: 1.0, Blink: 600 * time.Millisecond}
}

// Validate checks the form for values the renderer cannot use.
func (f *Form) Validate() error {
	if f.Version != CurrentVersion {
		return fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, f.Version, CurrentVersion)
	}
	if len(f.Fields) == 0 {
		return errors.New("form has no fields")
	}
	for i, fs := range f.Fields {
		if fs.Min != nil && fs.Max != nil && *fs.Min > *fs.Max {
			return fmt.Errorf("field %d (%s): min %v above max %v", i, fs.Label, *fs.Min, *fs.Max)
		}
	}
	switch f.Keypad.Position {
	case "", "relative", "absolute":
	default:
		return fmt.Errorf("keypad position %q: must be relative or absolute", f.Keypad.Position)
	}
	if f.Keypad.Height < 0 {
		return fmt.Errorf("keypad height %d: must not be negative", f.Keypad.Height)
	}
	return nil
}

// InRange reports whether v satisfies the field's bounds.
func (fs FieldSpec) InRange(v float64) bool {
	if fs.Min != nil && v < *fs.Min {
		return false
	}
	if fs.Max != nil && v > *fs.Max {
		return false
	}
	return true
}

// FormatOptions returns the field's formatter options.
func (fs FieldSpec) FormatOptions() numfmt.Options {
	if fs.Format == nil {
		return numfmt.Default()
	}
	return *fs.Format
}

func float64Ptr(v float64) *float64 { return &v }
