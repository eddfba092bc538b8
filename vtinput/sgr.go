package vtinput

import "strconv"

// sgr applies Select Graphic Rendition. Ps 38/48/58 (extended foreground,
// background and underline color) accept either the classic ';'-separated
// form ("38;2;r;g;b", "38;5;n") or the colon-substructured form a single
// parameter token carries ("38:2::r:g:b", "38:5:n"); both are normalized to
// the same Color value. An empty parameter list means a bare CSI m, which
// is SGR 0 (reset).
func (p *Parser) sgr(params []Param) {
	if len(params) == 0 {
		p.pen.Reset()
		return
	}
	for i := 0; i < len(params); i++ {
		pr := params[i]
		if pr.Type == ParamString {
			p.sgrColonToken(pr.Str)
			continue
		}
		ps := pr.Int(0)
		switch {
		case ps == 0:
			p.pen.Reset()
		case ps == 1:
			p.pen.Flags |= AttrBold
		case ps == 2:
			p.pen.Flags |= AttrDim
		case ps == 3:
			p.pen.Flags |= AttrItalic
		case ps == 4:
			p.pen.Underline = UnderlineSingle
		case ps == 5:
			p.pen.Flags |= AttrBlinkSlow
		case ps == 6:
			p.pen.Flags |= AttrBlinkFast
		case ps == 7:
			p.pen.Flags |= AttrReverse
		case ps == 8:
			p.pen.Flags |= AttrHidden
		case ps == 9:
			p.pen.Flags |= AttrStrike
		case ps == 21:
			p.pen.Underline = UnderlineDouble
		case ps == 22:
			p.pen.Flags &^= AttrBold | AttrDim
		case ps == 23:
			p.pen.Flags &^= AttrItalic
		case ps == 24:
			p.pen.Underline = UnderlineNone
		case ps == 25:
			p.pen.Flags &^= AttrBlinkSlow | AttrBlinkFast
		case ps == 27:
			p.pen.Flags &^= AttrReverse
		case ps == 28:
			p.pen.Flags &^= AttrHidden
		case ps == 29:
			p.pen.Flags &^= AttrStrike
		case ps >= 30 && ps <= 37:
			p.pen.Fg = IndexedColor(uint8(ps - 30))
		case ps == 38:
			c, consumed := p.sgrExtendedColor(params, i+1)
			p.pen.Fg = c
			i += consumed
		case ps == 39:
			p.pen.Fg = DefaultColor
		case ps >= 40 && ps <= 47:
			p.pen.Bg = IndexedColor(uint8(ps - 40))
		case ps == 48:
			c, consumed := p.sgrExtendedColor(params, i+1)
			p.pen.Bg = c
			i += consumed
		case ps == 49:
			p.pen.Bg = DefaultColor
		case ps == 53:
			p.pen.Flags |= AttrOverline
		case ps == 55:
			p.pen.Flags &^= AttrOverline
		case ps == 58:
			c, consumed := p.sgrExtendedColor(params, i+1)
			p.pen.UnderlineColor = c
			i += consumed
		case ps == 59:
			p.pen.UnderlineColor = DefaultColor
		case ps >= 90 && ps <= 97:
			p.pen.Fg = IndexedColor(uint8(ps-90) + 8)
		case ps >= 100 && ps <= 107:
			p.pen.Bg = IndexedColor(uint8(ps-100) + 8)
		default:
			p.hooks.unrecognized("SGR", strconv.FormatInt(ps, 10))
		}
	}
}

// sgrExtendedColor parses the classic ';'-separated continuation of a bare
// 38/48/58 parameter starting at index i, returning the color and how many
// further entries it consumed.
func (p *Parser) sgrExtendedColor(params []Param, i int) (Color, int) {
	if i >= len(params) {
		return DefaultColor, 0
	}
	switch params[i].Int(-1) {
	case 5:
		if i+1 < len(params) {
			return IndexedColor(uint8(params[i+1].Int(0))), 2
		}
		return DefaultColor, 1
	case 2:
		if i+3 < len(params) {
			r := uint8(params[i+1].Int(0))
			g := uint8(params[i+2].Int(0))
			b := uint8(params[i+3].Int(0))
			return RGBColor(r, g, b), 4
		}
		return DefaultColor, len(params) - i
	default:
		return DefaultColor, 0
	}
}

// sgrColonToken handles one colon-substructured SGR parameter token, e.g.
// "4:3" (curly underline) or "38:2::128:64:32" (direct-color foreground).
func (p *Parser) sgrColonToken(tok string) {
	segs := splitColon(tok)
	if len(segs) == 0 {
		return
	}
	head, ok := atoi(segs[0])
	if !ok {
		return
	}
	switch head {
	case 4:
		if len(segs) < 2 {
			return
		}
		style, ok := atoi(segs[1])
		if !ok {
			return
		}
		switch style {
		case 0:
			p.pen.Underline = UnderlineNone
		case 1:
			p.pen.Underline = UnderlineSingle
		case 2:
			p.pen.Underline = UnderlineDouble
		case 3:
			p.pen.Underline = UnderlineCurly
		case 4:
			p.pen.Underline = UnderlineDotted
		case 5:
			p.pen.Underline = UnderlineDashed
		}
	case 38, 48, 58:
		c, ok := parseColonColor(segs[1:])
		if !ok {
			return
		}
		switch head {
		case 38:
			p.pen.Fg = c
		case 48:
			p.pen.Bg = c
		case 58:
			p.pen.UnderlineColor = c
		}
	}
}

// parseColonColor interprets the segments following "38:"/"48:"/"58:":
// either "5:n" (indexed) or "2[:Pi]:r:g:b" (direct color, with an optional
// and possibly empty colorspace-id field before the three components).
func parseColonColor(segs []string) (Color, bool) {
	if len(segs) == 0 {
		return DefaultColor, false
	}
	mode, ok := atoi(segs[0])
	if !ok {
		return DefaultColor, false
	}
	rest := segs[1:]
	switch mode {
	case 5:
		if len(rest) == 0 {
			return DefaultColor, false
		}
		n, ok := atoi(rest[0])
		if !ok {
			return DefaultColor, false
		}
		return IndexedColor(uint8(n)), true
	case 2:
		// Drop a leading empty/omitted colorspace-id field, leaving r;g;b.
		for len(rest) > 3 {
			rest = rest[1:]
		}
		if len(rest) < 3 {
			return DefaultColor, false
		}
		r, _ := atoi(rest[0])
		g, _ := atoi(rest[1])
		b, _ := atoi(rest[2])
		return RGBColor(uint8(r), uint8(g), uint8(b)), true
	}
	return DefaultColor, false
}

func splitColon(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ':' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return out
}

func atoi(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
