package refscreen

import (
	"testing"

	"github.com/cdavis5e/vtinput/vtinput"
)

func TestCursorSetStyleFromVT(t *testing.T) {
	cases := []struct {
		in   vtinput.CursorStyle
		want CursorStyle
	}{
		{vtinput.CursorStyleDefault, CursorStyleBlinkingBlock},
		{vtinput.CursorStyleBlockBlink, CursorStyleBlinkingBlock},
		{vtinput.CursorStyleBlockSteady, CursorStyleSteadyBlock},
		{vtinput.CursorStyleUnderlineBlink, CursorStyleBlinkingUnderline},
		{vtinput.CursorStyleUnderlineSteady, CursorStyleSteadyUnderline},
		{vtinput.CursorStyleBarBlink, CursorStyleBlinkingBar},
		{vtinput.CursorStyleBarSteady, CursorStyleSteadyBar},
	}
	for _, tc := range cases {
		c := NewCursor()
		c.SetStyleFromVT(tc.in)
		if c.Style != tc.want {
			t.Errorf("SetStyleFromVT(%v): Style = %v, want %v", tc.in, c.Style, tc.want)
		}
	}
}
