package services

import "testing"

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect int
	}{
		{"plain number", "5", 5},
		{"zero", "0", 0},
		{"negative kept as typed", "-3", -3},
		{"whitespace trimmed", "  12  ", 12},
		{"empty coerces to zero", "", 0},
		{"non-numeric coerces to zero", "abc", 0},
		{"decimal coerces to zero", "2.5", 0},
		{"trailing garbage coerces to zero", "12abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuantity(tt.input)
			if got != tt.expect {
				t.Errorf("ParseQuantity(%q) = %d, want %d", tt.input, got, tt.expect)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect float64
	}{
		{"integer", "100", 100},
		{"decimal", "99.50", 99.5},
		{"negative", "-5", -5},
		{"whitespace trimmed", " 42 ", 42},
		{"empty coerces to zero", "", 0},
		{"non-numeric coerces to zero", "cheap", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePrice(tt.input)
			if got != tt.expect {
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}
