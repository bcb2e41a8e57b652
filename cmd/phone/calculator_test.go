package main

import "testing"

func keys(c *calculator, input string) {
	for _, r := range input {
		if r == '<' {
			c.backspace()
			continue
		}
		c.press(r)
	}
}

func TestCalculator(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"starts at zero", "", "0"},
		{"simple addition", "12+34=", "46"},
		{"chained operations", "2+3*4=", "20"},
		{"decimal entry", "1.5+2.25=", "3.75"},
		{"division", "10/4=", "2.5"},
		{"divide by zero", "5/0=", "Error"},
		{"recover from error", "5/0=7+1=", "8"},
		{"clear resets", "99c", "0"},
		{"backspace edits entry", "123<", "12"},
		{"backspace on single digit", "5<", "0"},
		{"leading zero replaced", "07", "7"},
		{"repeated equals is stable", "6+2==", "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCalculator()
			keys(&c, tt.input)
			if c.display != tt.expected {
				t.Errorf("display after %q = %q; want %q", tt.input, c.display, tt.expected)
			}
		})
	}
}
