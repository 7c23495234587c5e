package main

import (
	"math"

	"github.com/muurk/numpad/internal/config"
	"github.com/muurk/numpad/numfmt"
	"github.com/muurk/numpad/pad"
	"github.com/muurk/numpad/padtui"
)

// buildOptions turns a form file into renderer options.
func buildOptions(form *config.Form, icons bool) padtui.Options {
	opts := padtui.Options{
		Title: form.Title,
		Keypad: pad.KeypadOptions{
			Height:   form.Keypad.Height,
			Position: pad.Position(form.Keypad.Position),
		},
		Animation: padtui.Animation{
			FPS:       form.Animation.FPS,
			Frequency: form.Animation.Frequency,
			Damping:   form.Animation.Damping,
		},
	}
	if icons {
		opts.Keypad.Glyphs = padtui.UnicodeGlyphs
	}

	for _, fs := range form.Fields {
		opts.Fields = append(opts.Fields, padtui.FieldConfig{
			Label:  fs.Label,
			Suffix: fs.Suffix,
			Field: pad.FieldOptions{
				Value:       fs.Value,
				Format:      fs.FormatOptions(),
				IsValid:     rangeValidator(fs),
				Caret:       fs.Caret,
				BlinkPeriod: form.Animation.Blink,
				Autofocus:   fs.Autofocus,
			},
		})
	}
	return opts
}

// rangeValidator checks a display string against the field's bounds.
// Unbounded fields accept everything, including text that does not parse.
func rangeValidator(fs config.FieldSpec) func(string) bool {
	if fs.Min == nil && fs.Max == nil {
		return nil
	}
	return func(display string) bool {
		v, err := numfmt.Parse(display)
		if err != nil || math.IsNaN(v) {
			return false
		}
		return fs.InRange(v)
	}
}
