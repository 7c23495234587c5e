package numfmt

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// EmptySentinel is the buffer value meaning "nothing typed yet".
	EmptySentinel = "0"

	// Point is the decimal separator.
	Point = "."

	// GroupSeparator is the thousands separator emitted by the en-US printer.
	GroupSeparator = ","

	// maxIntegerDigits keeps the whole part inside int64.
	maxIntegerDigits = 18
)

// FormatFunc formats a raw buffer in live (commit=false) or commit phase.
// Fields accept one as a custom formatter override.
type FormatFunc func(raw string, commit bool) string

// Options bounds the shape of a formatted number.
type Options struct {
	IntegerDigits int `yaml:"integer_digits"` // raw whole-part characters kept
	DecimalDigits int `yaml:"decimal_digits"` // fractional digits kept
	MinDecimals   int `yaml:"min_decimals"`   // zero padding applied on commit
}

// Default returns the caps used when a field does not configure its own:
// nine integer digits, two decimals, padded to two decimals on commit.
func Default() Options {
	return Options{IntegerDigits: 9, DecimalDigits: 2, MinDecimals: 2}
}

// Normalize clamps the options into a usable range.
func (o Options) Normalize() Options {
	if o.IntegerDigits <= 0 || o.IntegerDigits > maxIntegerDigits {
		o.IntegerDigits = maxIntegerDigits
	}
	if o.DecimalDigits < 0 {
		o.DecimalDigits = 0
	}
	if o.MinDecimals < 0 {
		o.MinDecimals = 0
	}
	if o.MinDecimals > o.DecimalDigits {
		o.MinDecimals = o.DecimalDigits
	}
	return o
}

// Func binds the options to Format.
func (o Options) Func() FormatFunc {
	return func(raw string, commit bool) string {
		return Format(raw, commit, o)
	}
}

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders raw as a canonical display string.
//
// Only the first point splits whole from fraction; later points are dropped.
// In live phase the point is kept iff raw has one. In commit phase any raw
// value other than the bootstrap "0" counts as decimal, the fraction is padded
// to MinDecimals, and the point is emitted only when fractional digits remain.
func Format(raw string, commit bool, opts Options) string {
	opts = opts.Normalize()

	whole, frac, hasPoint := strings.Cut(raw, Point)
	frac = strings.ReplaceAll(frac, Point, "")

	decimal := hasPoint
	if commit && raw != EmptySentinel {
		decimal = true
	}

	whole = strings.ReplaceAll(whole, GroupSeparator, "")
	whole = truncate(whole, opts.IntegerDigits)
	whole = group(whole)

	frac = truncate(frac, opts.DecimalDigits)
	if commit && decimal {
		for len(frac) < opts.MinDecimals {
			frac += "0"
		}
	}

	if commit && frac == "" {
		decimal = false
	}
	if !decimal {
		return whole
	}
	return whole + Point + frac
}

// Parse strips grouping separators and parses display as a float.
func Parse(display string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(display, GroupSeparator, ""), 64)
}

// FromFloat renders v as a raw buffer suitable for Format.
func FromFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func group(whole string) string {
	if whole == "" {
		return EmptySentinel
	}
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return EmptySentinel
	}
	return printer.Sprintf("%d", n)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
