package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(200), ""},
	}
	for _, tt := range tests {
		if got := tt.c.ANSI(); got != tt.want {
			t.Errorf("Color(%d).ANSI() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestColorsComplete(t *testing.T) {
	colors := Colors()
	if colors[0] != ColorDefault {
		t.Errorf("Colors()[0] = %d, want ColorDefault", colors[0])
	}
	for _, c := range colors[1:] {
		if c.ANSI() == "" {
			t.Errorf("color %d has no palette code", c)
		}
	}
}
