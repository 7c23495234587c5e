// Package pad implements focus arbitration for a set of numeric fields that
// share one on-screen keypad.
//
// A Coordinator owns the registry of fields, content shifters and the keypad.
// It guarantees that at most one Field is active at any time and routes every
// key pressed on the Keypad to that field. Fields, keypads and shifters are
// constructed with an explicit reference to their coordinator and register
// themselves on construction; Close unregisters them.
//
//	coord := pad.NewCoordinator()
//	kp := pad.NewKeypad(coord, pad.KeypadOptions{Height: 6})
//	price := pad.NewField(coord, pad.FieldOptions{Value: 12.5})
//	qty := pad.NewField(coord, pad.FieldOptions{Format: numfmt.Options{IntegerDigits: 4}})
//
//	price.Tap()                 // price active, keypad shown
//	kp.Press(pad.Digit(7))      // routed to price
//	qty.Tap()                   // price commits, qty active
//	kp.Dismiss()                // qty commits, keypad hidden
//
// Everything in this package runs on the caller's UI goroutine. Nothing here
// is safe for concurrent use; the only autonomous activity is the caret blink
// task, which is scheduled through the Scheduler supplied by the rendering layer.
//
// Show/hide animation is not modelled here. Keypad and Shifter expose a
// two-state Visibility machine; the renderer tweens towards its target and
// reports completion with Complete.
package pad
