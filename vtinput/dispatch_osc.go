package vtinput

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// buildStringTables wires osc_string, apc_string, rename_string and
// consume_st. The three collecting states share one shape (ignore C0
// except the introducer-specific terminator, collect everything else,
// break out to consume_st on ESC) and differ only in which terminators
// they recognize and which dispatch function consume_st/the BEL path
// eventually calls.
func buildStringTables() {
	addState(StateOSCString,
		transition{0x00, 0x06, doIgnore},
		transition{0x07, 0x07, oscTerminateBEL},
		transition{0x08, 0x17, doIgnore},
		transition{0x19, 0x19, doIgnore},
		transition{0x1B, 0x1B, stringEsc},
		transition{0x1C, 0x1F, doIgnore},
		transition{0x20, 0x7E, stringCollect},
		transition{0x7F, 0x7F, doIgnore},
		transition{0x80, 0xFF, stringCollect},
	)
	addState(StateAPCString,
		transition{0x00, 0x17, doIgnore},
		transition{0x19, 0x19, doIgnore},
		transition{0x1B, 0x1B, stringEsc},
		transition{0x1C, 0x1F, doIgnore},
		transition{0x20, 0x7E, stringCollect},
		transition{0x7F, 0x7F, doIgnore},
		transition{0x80, 0xFF, stringCollect},
	)
	addState(StateRenameString,
		transition{0x00, 0x17, doIgnore},
		transition{0x19, 0x19, doIgnore},
		transition{0x1B, 0x1B, stringEsc},
		transition{0x1C, 0x1F, doIgnore},
		transition{0x20, 0x7E, stringCollect},
		transition{0x7F, 0x7F, doIgnore},
		transition{0x80, 0xFF, stringCollect},
	)
	addState(StateConsumeST,
		transition{0x00, 0x5B, consumeSTOther},
		transition{0x5C, 0x5C, consumeSTComplete},
		transition{0x5D, 0xFF, consumeSTOther},
	)
}

func stringCollect(p *Parser, b byte) State {
	p.str.append(b)
	return p.state
}

func stringEsc(p *Parser, b byte) State { return StateConsumeST }

// oscTerminateBEL implements the xterm convention that BEL, not just ST,
// ends an OSC string.
func oscTerminateBEL(p *Parser, b byte) State {
	p.oscKind = 0x07
	p.dispatchOSC()
	p.str.reset()
	return StateGround
}

// consumeSTComplete finalizes ST for whichever family entered the
// lookahead (recorded in escReturn): dispatch the collected payload and
// return to ground.
func consumeSTComplete(p *Parser, b byte) State {
	switch p.escReturn {
	case StateOSCString:
		p.oscKind = 0x1B
		p.dispatchOSC()
	case StateAPCString:
		p.dispatchAPCLike()
	case StateRenameString:
		p.dispatchRename()
	}
	p.str.reset()
	p.col.reset()
	return StateGround
}

// consumeSTOther handles the byte after ESC turning out not to be '\':
// not ST after all. The ESC is kept as a literal payload byte of whatever
// family is being collected (DECRQSS has no payload to append to), and b
// is fed back into that same collection; a second ESC re-enters the
// lookahead instead of being swallowed as data.
func consumeSTOther(p *Parser, b byte) State {
	switch p.escReturn {
	case StateOSCString, StateAPCString, StateRenameString:
		p.str.append(0x1B)
		if b == 0x1B {
			return StateConsumeST
		}
		p.str.append(b)
		return p.escReturn
	default:
		if b == 0x1B {
			return StateConsumeST
		}
		return p.escReturn
	}
}

// dispatchOSC interprets the completed OSC payload: the leading token up
// to the first ';' is the option number, the rest its argument string.
func (p *Parser) dispatchOSC() {
	payload := p.str.String()
	code, rest := splitOnce(payload, ';')
	switch code {
	case "0", "2":
		if p.allowSetTitle {
			p.screen.SetTitle(rest)
		}
	case "1":
		// Icon name: this core exposes only a single title slot, so an
		// icon-name-only OSC 1 has nothing to apply to.
	case "4":
		p.dispatchOSC4(rest)
	case "7":
		p.setWorkingDirectory(rest)
	case "8":
		p.dispatchHyperlink(rest)
	case "10", "11", "12":
		p.dispatchOSCColor(code, rest)
	case "52":
		p.dispatchClipboard(rest)
	case "104", "110", "111", "112":
		// Palette/foreground/background/cursor-color reset: this core
		// keeps no addressable palette (see requestTerminalState), so
		// there is nothing to restore to a prior value.
	case "133":
		p.dispatchShellIntegrationOSC(rest)
	default:
		p.hooks.unrecognized("OSC", code)
	}
}

// dispatchOSC4 would apply "index;spec" palette entries (possibly several,
// semicolon-separated); ChromeWriter exposes no indexed-palette setter, so
// this is recorded as unsupported rather than silently dropped.
func (p *Parser) dispatchOSC4(rest string) {
	if rest == "" {
		return
	}
	p.hooks.discarded("OSC 4 palette")
}

// dispatchOSCColor handles OSC 10/11/12 (set foreground/background/cursor
// color). Only the cursor color has a ChromeWriter hook; 10/11 query or
// set the text colors this core does not keep a settable reference to
// outside the pen itself, which an OSC color request does not touch.
func (p *Parser) dispatchOSCColor(code, rest string) {
	if rest == "?" {
		p.hooks.unrecognized("OSC", code+" query")
		return
	}
	if code != "12" {
		p.hooks.discarded("OSC " + code)
		return
	}
	if c, ok := parseXParseColor(rest); ok {
		p.screen.SetCursorColor(c)
	}
}

// parseXParseColor parses the "rgb:RR/GG/BB" (or shorter/longer per-
// channel hex) form xterm's OSC 10/11/12/4 colors use; "#RRGGBB" is
// accepted too since some clients emit that instead.
func parseXParseColor(s string) (Color, bool) {
	s = strings.TrimPrefix(s, "rgb:")
	s = strings.TrimPrefix(s, "#")
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		if len(s) == 6 {
			parts = []string{s[0:2], s[2:4], s[4:6]}
		} else {
			return Color{}, false
		}
	}
	chans := make([]uint8, 3)
	for i, part := range parts {
		if len(part) > 2 {
			part = part[:2]
		}
		n, err := strconv.ParseUint(part, 16, 16)
		if err != nil {
			return Color{}, false
		}
		chans[i] = uint8(n)
	}
	return RGBColor(chans[0], chans[1], chans[2]), true
}

// dispatchHyperlink implements OSC 8: "params;uri". params is a
// semicolon-free, ':'-separated key=value list; only "id=" is meaningful
// here (matching the one piece of OSC 8 state SetHyperlink threads
// through). An empty uri closes the currently open hyperlink; an empty id
// on open gets one synthesized so consecutive unrelated links don't collide
// on the pen's HyperlinkID, matching how every id-less "OSC 8 ; ; uri"
// sender in the wild still expects each link to resolve independently.
func (p *Parser) dispatchHyperlink(rest string) {
	params, uri := splitOnce(rest, ';')
	id := ""
	for _, kv := range strings.Split(params, ":") {
		if k, v, ok := strings.Cut(kv, "="); ok && k == "id" {
			id = v
		}
	}
	if uri == "" {
		p.screen.SetHyperlink(id, uri)
		p.pen.HyperlinkID = ""
		return
	}
	if id == "" {
		p.hyperlinkSeq++
		id = "auto" + strconv.Itoa(p.hyperlinkSeq)
	}
	p.screen.SetHyperlink(id, uri)
	p.pen.HyperlinkID = id
}

// dispatchClipboard implements OSC 52: "Pc;Pd". Pc names one or more
// selection buffers (each a single letter) on the way in; Pd is either "?"
// (query back through the response channel) or base64-encoded content to
// install. The query reply always carries an empty Pc field, matching
// input.c's fixed "\033]52;;" reply prefix rather than echoing back the
// selector that was asked about.
func (p *Parser) dispatchClipboard(rest string) {
	if p.setClipboard == "off" {
		return
	}
	selectors, data := splitOnce(rest, ';')
	if selectors == "" {
		selectors = "c"
	}
	if data == "?" {
		sel := selectors[0]
		if payload, ok := p.clipboard.Read(sel); ok {
			p.reply("\x1b]52;;" + base64.StdEncoding.EncodeToString(payload) + "\x07")
		}
		return
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		p.hooks.unrecognized("OSC", "52 payload")
		return
	}
	for i := 0; i < len(selectors); i++ {
		sel := selectors[i]
		p.clipboard.Write(sel, decoded)
		p.screen.SetSelection(sel, decoded)
	}
}

// dispatchShellIntegrationOSC implements OSC 133 shell-integration marks:
// "A" prompt start, "B" prompt end, "C" command output start, "D[;exit]"
// command finished.
func (p *Parser) dispatchShellIntegrationOSC(rest string) {
	if rest == "" {
		return
	}
	kind := rest[0]
	switch kind {
	case 'A', 'B', 'C':
		p.recordShellIntegrationMark(kind, -1)
	case 'D':
		exitCode := -1
		if _, code, ok := strings.Cut(rest, ";"); ok {
			if n, err := strconv.Atoi(code); err == nil {
				exitCode = n
			}
		}
		p.recordShellIntegrationMark(kind, exitCode)
	}
}

// dispatchAPCLike handles a completed SOS/PM/APC payload, routed to
// whichever provider matches the introducer byte recorded in stringKind.
func (p *Parser) dispatchAPCLike() {
	payload := p.str.Bytes()
	switch p.stringKind {
	case 0x58: // SOS
		p.sos.Receive(append([]byte(nil), payload...))
	case 0x5E: // PM
		p.pm.Receive(append([]byte(nil), payload...))
	case 0x5F: // APC
		p.apc.Receive(append([]byte(nil), payload...))
	}
}

// dispatchRename implements ESC k ... ST, tmux's window-rename control
// string; it is only honored when the host has not disabled renaming
// (allowRename). An empty name re-enables automatic renaming (autoRename)
// and a non-empty one turns it off; either way the name goes to SetTitle.
func (p *Parser) dispatchRename() {
	if !p.allowRename {
		return
	}
	name := p.str.String()
	p.autoRename = name == ""
	p.screen.SetTitle(name)
}

func splitOnce(s string, sep byte) (before, after string) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}
