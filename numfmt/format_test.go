package numfmt

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	std := Options{IntegerDigits: 9, DecimalDigits: 2, MinDecimals: 2}
	noPad := Options{IntegerDigits: 9, DecimalDigits: 2, MinDecimals: 0}

	tests := []struct {
		name   string
		raw    string
		commit bool
		opts   Options
		want   string
	}{
		{"grouping on commit", "1234567", true, std, "1,234,567.00"},
		{"grouping live", "1234567", false, std, "1,234,567"},
		{"whole part truncated before grouping", "123456789999", false, std, "123,456,789"},
		{"no trailing point without decimals", "5", true, noPad, "5"},
		{"bootstrap zero stays bare", "0", true, std, "0"},
		{"live keeps trailing point", "12.", false, std, "12."},
		{"live drops leading zero", "01", false, std, "1"},
		{"live point after sentinel", "0.", false, std, "0."},
		{"commit pads fraction", "12.5", true, std, "12.50"},
		{"commit point without fraction", "5.", true, noPad, "5"},
		{"fraction truncated", "1.2345", false, std, "1.23"},
		{"second point ignored", "12.5.", false, std, "12.5"},
		{"later points fold into fraction", "1.2.3", false, std, "1.23"},
		{"empty whole renders zero", ".5", false, std, "0.5"},
		{"empty input", "", false, std, "0"},
		{"existing separators stripped", "1,23", false, std, "123"},
		{"regroup after backspace", "1,234,56", false, std, "123,456"},
		{"garbage whole part", "abc", false, std, "0"},
		{"zero integer cap clamps", "1234", false, Options{IntegerDigits: 0, DecimalDigits: 2}, "1,234"},
		{"min decimals above cap", "1", true, Options{IntegerDigits: 9, DecimalDigits: 1, MinDecimals: 3}, "1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.raw, tt.commit, tt.opts); got != tt.want {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.raw, tt.commit, got, tt.want)
			}
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	opts := Default()
	inputs := []string{"0", "7", "12.5", "1234567", "0.", "99.99"}

	for _, in := range inputs {
		once := Format(in, true, opts)
		twice := Format(once, true, opts)
		if once != twice {
			t.Errorf("Format not stable for %q: %q then %q", in, once, twice)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"1,234,567.00", 1234567, false},
		{"12.", 12, false},
		{"0", 0, false},
		{"0.5", 0.5, false},
		{"", 0, true},
		{"n/a", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	opts := Default()
	inputs := []struct {
		raw  string
		want float64
	}{
		{"0", 0},
		{"5", 5},
		{"12.5", 12.5},
		{"1234567", 1234567},
		{"123456789.99", 123456789.99},
		{"0.07", 0.07},
		{"42.", 42},
	}

	for _, in := range inputs {
		got, err := Parse(Format(in.raw, true, opts))
		if err != nil {
			t.Fatalf("Parse(Format(%q)) error = %v", in.raw, err)
		}
		if math.Abs(got-in.want) > 1e-9 {
			t.Errorf("round trip %q = %v, want %v", in.raw, got, in.want)
		}
	}
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1234.5, "1234.5"},
		{0.25, "0.25"},
	}
	for _, tt := range tests {
		if got := FromFloat(tt.in); got != tt.want {
			t.Errorf("FromFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if got := Format(FromFloat(1234.5), true, Default()); got != "1,234.50" {
		t.Errorf("initial value formatting = %q, want %q", got, "1,234.50")
	}
}

func TestOptionsFunc(t *testing.T) {
	f := Options{IntegerDigits: 3, DecimalDigits: 1, MinDecimals: 1}.Func()
	if got := f("12345.67", true); got != "123.6" {
		t.Errorf("bound formatter = %q, want %q", got, "123.6")
	}
}
