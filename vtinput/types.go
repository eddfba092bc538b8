package vtinput

// ColorKind distinguishes the three ways a terminal can name a color: the
// pen's default, an indexed palette slot, or a direct 24-bit value.
type ColorKind uint8

const (
	ColorDefault ColorKind = iota
	ColorIndexed
	ColorRGB
)

// Color is a color reference as it appears in an SGR parameter: either the
// default foreground/background, a palette index 0-255, or an RGB triple.
// It carries no palette lookup itself; resolving ColorIndexed to pixels is
// the screen backend's job.
type Color struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

// DefaultColor is the zero value: the pen's default foreground or
// background, whichever field it occupies.
var DefaultColor = Color{Kind: ColorDefault}

func IndexedColor(i uint8) Color { return Color{Kind: ColorIndexed, Index: i} }

func RGBColor(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

// AttrFlags is a bitmask of the boolean SGR attributes. Underline uses a
// separate style enum since it has five mutually exclusive forms rather
// than one on/off bit.
type AttrFlags uint16

const (
	AttrBold AttrFlags = 1 << iota
	AttrDim
	AttrItalic
	AttrBlinkSlow
	AttrBlinkFast
	AttrReverse
	AttrHidden
	AttrStrike
	AttrOverline
	AttrProtected // DECSCA
)

// UnderlineStyle enumerates the five SGR 4:x / 21 underline forms; None
// means no underline.
type UnderlineStyle uint8

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// CellAttrs is the full graphic-rendition state the pen carries between
// characters: set by SGR, read by every cell-writing operation.
type CellAttrs struct {
	Flags          AttrFlags
	Underline      UnderlineStyle
	Fg             Color
	Bg             Color
	UnderlineColor Color
	HyperlinkID    string
}

// Reset clears a to the SGR-0 state.
func (a *CellAttrs) Reset() {
	*a = CellAttrs{}
}

// GridCell is one absolute-coordinate grid slot as seen by the Grid
// contract: a rune plus the attributes it was written with. Width 0 marks
// a padding cell (the right half of a wide character).
type GridCell struct {
	Ch     rune
	Width  int
	Attrs  CellAttrs
}

// ModeFlags is the bitmask of terminal modes toggled by SM/RM, DECSET/
// DECRST and the keypad/charset ESC sequences. Ownership of this state is
// split: origin mode, autowrap and the few modes that gate dispatch
// decisions live here (queried by the parser itself); most of the rest are
// opaque to the parser and only meaningful to the screen backend, which is
// exactly why they are threaded through ScreenWriter rather than kept
// locally.
type ModeFlags uint64

const (
	ModeInsert          ModeFlags = 1 << iota // IRM (4)
	ModeOrigin                                // DECOM (6)
	ModeAutowrap                              // DECAWM (7)
	ModeNewline                               // LNM (20)
	ModeCursorVisible                         // DECTCEM (25)
	ModeReverseVideo                          // DECSCNM (5)
	ModeAppCursorKeys                         // DECCKM (1)
	ModeAppKeypad                             // DECPAM/DECKPAM
	ModeBracketedPaste                        // (2004)
	ModeMouseX10                              // (9)
	ModeMouseVT200                            // (1000)
	ModeMouseBtnEvent                         // (1002)
	ModeMouseAnyEvent                         // (1003)
	ModeMouseSGR                              // (1006)
	ModeMouseUTF8                             // (1005)
	ModeFocusReporting                        // (1004)
	ModeAltScreen                             // (47/1047/1049)
	ModeAltScreenSaveCur                      // (1049 cursor-save half)
	ModeLeftRightMargin                       // DECLRMM (69)
	ModeSendsC1                               // S8C1T/S7C1T (affects reply encoding)
	ModeKeyboardLocked                        // KAM (2)
)

// CursorStyle mirrors DECSCUSR's six shapes plus the implicit default.
type CursorStyle uint8

const (
	CursorStyleDefault CursorStyle = iota
	CursorStyleBlockBlink
	CursorStyleBlockSteady
	CursorStyleUnderlineBlink
	CursorStyleUnderlineSteady
	CursorStyleBarBlink
	CursorStyleBarSteady
)

// EmulationLevel gates which commands are recognized at all: a VT100
// won't answer a DECRQSS a VT220 would, and DECSCL can move the running
// level up or down within a compiled-in ceiling.
type EmulationLevel uint8

const (
	EmulationVT100 EmulationLevel = 100
	EmulationVT101 EmulationLevel = 101
	EmulationVT102 EmulationLevel = 102
	EmulationVT125 EmulationLevel = 125
	EmulationVT220 EmulationLevel = 220
	EmulationVT241 EmulationLevel = 241
)

// Charset identifies one of the four G0-G3 designator slots.
type Charset int

const (
	G0 Charset = iota
	G1
	G2
	G3
)

// CharsetIndex identifies what a designator slot currently holds.
type CharsetIndex int

const (
	CharsetASCII CharsetIndex = iota
	CharsetUKNational
	CharsetLineDrawing // DEC Special Graphics (ESC ( 0)
)

// SixelImage is a decoded Sixel raster ready for placement, as returned by
// a SixelDecoder. It is deliberately minimal: pixel storage and lifetime
// belong to the screen backend, not to the parser.
type SixelImage struct {
	Width, Height int
	Pixels        []Color // row-major, len == Width*Height
}

// SixelDecoder is the external collaborator that turns a DCS Sixel payload
// into pixels; Sixel decoding itself is kept out of scope for the parser
// core (package sixelcodec implements one).
type SixelDecoder interface {
	Decode(params []int64, data []byte) (SixelImage, error)
}
