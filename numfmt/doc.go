// Package numfmt converts raw keypad edit buffers into canonical display strings.
//
// The formatter is a pure function over strings. It is used on every keystroke
// (live phase) and once more when a field stops being edited (commit phase):
//
//	numfmt.Format("1234567", false, numfmt.Default()) // "1,234,567"
//	numfmt.Format("1234567", true, numfmt.Default())  // "1,234,567.00"
//	numfmt.Format("12.", false, numfmt.Default())     // "12."
//
// Parse is the inverse used to report the numeric value of a display string.
// The formatted string stays authoritative for redisplay; the float is only a
// notification value.
package numfmt
