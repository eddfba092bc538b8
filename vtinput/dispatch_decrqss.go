package vtinput

import (
	"strconv"
	"strings"
)

// buildDECRQSSTables wires decrqss_enter, decrqss_intermediate and
// decrqss_ignore: the mini-grammar DECRQSS's "DCS $ q <mnemonic> ST" form
// collects after breaking out of the outer DCS introducer (see
// dcsEnterDispatch). The mnemonic is exactly a CSI-shaped intermediate/
// final pair, so the tables mirror csi_enter/csi_intermediate in shape.
func buildDECRQSSTables() {
	addState(StateDECRQSSEnter,
		transition{0x00, 0x17, doIgnore},
		transition{0x19, 0x19, doIgnore},
		transition{0x1C, 0x1F, doIgnore},
		transition{0x1B, 0x1B, decrqssEsc},
		transition{0x20, 0x2F, decrqssCollectIntermediate},
		transition{0x30, 0x3F, decrqssToIgnore},
		transition{0x40, 0x7E, decrqssFinal},
		transition{0x7F, 0x7F, doIgnore},
		transition{0x80, 0xFF, doIgnore},
	)
	addState(StateDECRQSSIntermediate,
		transition{0x00, 0x17, doIgnore},
		transition{0x19, 0x19, doIgnore},
		transition{0x1C, 0x1F, doIgnore},
		transition{0x1B, 0x1B, decrqssEsc},
		transition{0x20, 0x2F, decrqssCollectIntermediate},
		transition{0x30, 0x3F, decrqssToIgnore},
		transition{0x40, 0x7E, decrqssFinal},
		transition{0x7F, 0x7F, doIgnore},
		transition{0x80, 0xFF, doIgnore},
	)
	addState(StateDECRQSSIgnore,
		transition{0x00, 0x17, doIgnore},
		transition{0x19, 0x19, doIgnore},
		transition{0x1C, 0x1F, doIgnore},
		transition{0x1B, 0x1B, decrqssEsc},
		transition{0x20, 0x7E, doIgnore},
		transition{0x7F, 0x7F, doIgnore},
		transition{0x80, 0xFF, doIgnore},
	)
}

func decrqssCollectIntermediate(p *Parser, b byte) State {
	p.col.collectIntermediate(b)
	return StateDECRQSSIntermediate
}

func decrqssToIgnore(p *Parser, b byte) State { return StateDECRQSSIgnore }

func decrqssEsc(p *Parser, b byte) State { return StateConsumeST }

// decrqssFinal is reached on the mnemonic's final byte. The reply is
// formatted and sent right away rather than waiting for the terminating
// ST, matching how the query's own ST follows the final byte immediately
// in every real client; the state just swallows whatever comes next up
// to ST.
func decrqssFinal(p *Parser, final byte) State {
	mnemonic := string(p.col.intermediates) + string(final)
	if body, ok := p.decrqssReply(mnemonic); ok {
		p.reply("\x1bP1$r" + body + mnemonic + "\x1b\\")
	} else {
		p.reply("\x1bP0$r\x1b\\")
	}
	p.col.reset()
	return StateDECRQSSIgnore
}

// decrqssReply answers DECRQSS for the handful of control functions this
// core tracks enough state to reconstruct: SGR, DECSCUSR, DECSTBM,
// DECSLRM, DECSCA and DECSCL. Anything else reports unrecognized (the "$r" with
// Ps0 form).
func (p *Parser) decrqssReply(mnemonic string) (string, bool) {
	switch mnemonic {
	case "m":
		return p.encodeSGR(), true
	case " q":
		return strconv.Itoa(int(decsscusrReplyCode(p.defaultCursor))), true
	case "r":
		top, bottom := p.screen.ScrollRegion()
		return strconv.Itoa(top+1) + ";" + strconv.Itoa(bottom+1), true
	case "s":
		if !p.screen.HasMode(ModeLeftRightMargin) {
			return "", false
		}
		left, right := p.screen.ScrollMargin()
		return strconv.Itoa(left+1) + ";" + strconv.Itoa(right+1), true
	case "\"q":
		if p.pen.Flags&AttrProtected != 0 {
			return "1", true
		}
		return "2", true
	case "\"p":
		return strconv.Itoa(p.decsclReplyPs()), true
	default:
		return "", false
	}
}

func decsscusrReplyCode(s CursorStyle) int {
	switch s {
	case CursorStyleBlockSteady:
		return 2
	case CursorStyleUnderlineBlink:
		return 3
	case CursorStyleUnderlineSteady:
		return 4
	case CursorStyleBarBlink:
		return 5
	case CursorStyleBarSteady:
		return 6
	default:
		return 1
	}
}

// encodeSGR reconstructs the semicolon-joined SGR parameter list that
// would reproduce the pen's current rendition, in the same parameter
// order real terminals emit it (attributes, then foreground, then
// background). A pen with no non-default attributes replies "0".
func (p *Parser) encodeSGR() string {
	var parts []string
	f := p.pen.Flags
	if f&AttrBold != 0 {
		parts = append(parts, "1")
	}
	if f&AttrDim != 0 {
		parts = append(parts, "2")
	}
	if f&AttrItalic != 0 {
		parts = append(parts, "3")
	}
	switch p.pen.Underline {
	case UnderlineSingle:
		parts = append(parts, "4")
	case UnderlineDouble, UnderlineCurly, UnderlineDotted, UnderlineDashed:
		parts = append(parts, "4:"+strconv.Itoa(int(p.pen.Underline)))
	}
	if f&AttrBlinkSlow != 0 {
		parts = append(parts, "5")
	}
	if f&AttrBlinkFast != 0 {
		parts = append(parts, "6")
	}
	if f&AttrReverse != 0 {
		parts = append(parts, "7")
	}
	if f&AttrHidden != 0 {
		parts = append(parts, "8")
	}
	if f&AttrStrike != 0 {
		parts = append(parts, "9")
	}
	if f&AttrOverline != 0 {
		parts = append(parts, "53")
	}
	parts = append(parts, encodeSGRColor(p.pen.Fg, true)...)
	parts = append(parts, encodeSGRColor(p.pen.Bg, false)...)
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(append([]string{"0"}, parts...), ";")
}

func encodeSGRColor(c Color, fg bool) []string {
	switch c.Kind {
	case ColorIndexed:
		base := "38"
		if !fg {
			base = "48"
		}
		return []string{base, "5", strconv.Itoa(int(c.Index))}
	case ColorRGB:
		base := "38"
		if !fg {
			base = "48"
		}
		return []string{base, "2", strconv.Itoa(int(c.R)), strconv.Itoa(int(c.G)), strconv.Itoa(int(c.B))}
	default:
		return nil
	}
}
