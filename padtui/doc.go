// Package padtui renders numpad fields and the shared keypad with Bubble Tea.
//
// The core state lives in package pad; this package only draws it and turns
// terminal input into pad operations:
//
//   - a left click on a field row taps the field
//   - a left click on a keypad key presses it, on the top bar dismisses
//   - digits, "." and backspace press the matching keypad key
//   - tab / shift+tab move focus, enter / esc dismiss the keypad
//
// # Animation
//
// Keypad and shifter each expose a pad.Visibility machine. The model keeps one
// harmonica spring per machine and steps it on a 60 FPS tea.Tick. A new
// show/hide request only moves the spring's target, so an in-flight slide is
// retargeted rather than queued. When a spring settles the model reports the
// transition's sequence number back through Complete.
//
// # Caret Blink
//
// TickScheduler implements pad.Scheduler with tagged tea.Tick messages. A
// cancelled task keeps no state, so its pending tick is dropped on arrival.
//
// # Usage Example
//
//	m := padtui.New(padtui.Options{
//	    Title: "Split the bill",
//	    Fields: []padtui.FieldConfig{
//	        {Label: "Amount", Field: pad.FieldOptions{Caret: true, Autofocus: true}},
//	        {Label: "People", Field: pad.FieldOptions{Value: 2}},
//	    },
//	    Keypad: pad.KeypadOptions{Height: 6, Glyphs: padtui.UnicodeGlyphs},
//	})
//	if err := padtui.Run(m); err != nil {
//	    log.Fatal(err)
//	}
package padtui
