package pad

import "testing"

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
		ok   bool
	}{
		{"5", "5", true},
		{"0", "0", true},
		{".", KeyPoint, true},
		{",", KeyPoint, true},
		{"backspace", KeyBackspace, true},
		{"delete", KeyBackspace, true},
		{"a", "", false},
		{"12", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKey(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseKey(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKey_Valid(t *testing.T) {
	for d := 0; d <= 9; d++ {
		if !Digit(d).Valid() {
			t.Errorf("Digit(%d) should be valid", d)
		}
	}
	if Key("x").Valid() {
		t.Error(`Key("x") should not be valid`)
	}
}
