package refscreen

import (
	"image/color"

	"github.com/cdavis5e/vtinput/vtinput"
)

// CellFlags is a bitmask of cell rendering attributes.
type CellFlags uint16

const (
	CellFlagBold CellFlags = 1 << iota
	CellFlagDim
	CellFlagItalic
	CellFlagUnderline
	CellFlagDoubleUnderline
	CellFlagCurlyUnderline
	CellFlagDottedUnderline
	CellFlagDashedUnderline
	CellFlagBlinkSlow
	CellFlagBlinkFast
	CellFlagReverse
	CellFlagHidden
	CellFlagStrike
	CellFlagWideChar
	CellFlagWideCharSpacer
	CellFlagDirty
)

// Cell stores the character, colors, and formatting attributes for one grid position.
// Wide characters (2 columns) use a spacer cell in the second position.
type Cell struct {
	Char           rune
	Fg             color.Color
	Bg             color.Color
	UnderlineColor color.Color
	Flags          CellFlags
	Hyperlink      *Hyperlink
	Image          *CellImage // Image reference, nil if no image
}

// Hyperlink associates a cell with a clickable link (OSC 8).
type Hyperlink struct {
	ID  string
	URI string
}

// NewCell creates a cell initialized with space character and default colors.
func NewCell() Cell {
	return Cell{
		Char: ' ',
		Fg:   &NamedColor{Name: NamedColorForeground},
		Bg:   &NamedColor{Name: NamedColorBackground},
	}
}

// Reset clears all attributes and sets the cell to default state (space character, default colors).
func (c *Cell) Reset() {
	c.Char = ' '
	c.Fg = &NamedColor{Name: NamedColorForeground}
	c.Bg = &NamedColor{Name: NamedColorBackground}
	c.UnderlineColor = nil
	c.Flags = 0
	c.Hyperlink = nil
	c.Image = nil
}

// HasFlag returns true if the specified flag is set.
func (c *Cell) HasFlag(flag CellFlags) bool {
	return c.Flags&flag != 0
}

// SetFlag enables the specified flag without affecting others.
func (c *Cell) SetFlag(flag CellFlags) {
	c.Flags |= flag
}

// ClearFlag disables the specified flag without affecting others.
func (c *Cell) ClearFlag(flag CellFlags) {
	c.Flags &^= flag
}

// IsDirty returns true if the cell was modified since the last ClearDirty call.
func (c *Cell) IsDirty() bool {
	return c.HasFlag(CellFlagDirty)
}

// MarkDirty marks the cell as modified for dirty tracking.
func (c *Cell) MarkDirty() {
	c.SetFlag(CellFlagDirty)
}

// ClearDirty resets the dirty tracking flag.
func (c *Cell) ClearDirty() {
	c.ClearFlag(CellFlagDirty)
}

// IsWide returns true if this cell contains a wide character (CJK, emoji, etc.) that occupies 2 columns.
func (c *Cell) IsWide() bool {
	return c.HasFlag(CellFlagWideChar)
}

// IsWideSpacer returns true if this is the second cell of a wide character (should be skipped during rendering).
func (c *Cell) IsWideSpacer() bool {
	return c.HasFlag(CellFlagWideCharSpacer)
}

// Copy returns a copy of the cell. The hyperlink and image pointers are
// copied as pointers, so the copy shares them with the original.
func (c *Cell) Copy() Cell {
	return Cell{
		Char:           c.Char,
		Fg:             c.Fg,
		Bg:             c.Bg,
		UnderlineColor: c.UnderlineColor,
		Flags:          c.Flags,
		Hyperlink:      c.Hyperlink,
		Image:          c.Image,
	}
}

// HasImage returns true if this cell has an image reference.
func (c *Cell) HasImage() bool {
	return c.Image != nil
}

// NewWideCharSpacer creates the blank, char-less second half of a wide
// character: ViewSetCell writes the glyph into the leading column and the
// grid adapter pads the trailing column with one of these, matching
// vtinput.GridCell's Width-0 convention for "owned by the cell to my left".
func NewWideCharSpacer() Cell {
	c := NewCell()
	c.Char = 0
	c.SetFlag(CellFlagWideCharSpacer)
	return c
}

// CellFromAttrs builds a Cell from the pen state vtinput threads through
// every cell-writing call, resolving a hyperlink ID against the id->uri map
// SetHyperlink maintains (nil when the caller has no use for the link, e.g.
// a plain background fill).
func CellFromAttrs(a vtinput.CellAttrs, hyperlinks map[string]string) Cell {
	c := NewCell()
	c.Fg = colorToRefscreen(a.Fg, true)
	c.Bg = colorToRefscreen(a.Bg, false)
	if a.UnderlineColor.Kind != vtinput.ColorDefault {
		c.UnderlineColor = colorToRefscreen(a.UnderlineColor, true)
	}
	if a.Flags&vtinput.AttrBold != 0 {
		c.SetFlag(CellFlagBold)
	}
	if a.Flags&vtinput.AttrDim != 0 {
		c.SetFlag(CellFlagDim)
	}
	if a.Flags&vtinput.AttrItalic != 0 {
		c.SetFlag(CellFlagItalic)
	}
	if a.Flags&vtinput.AttrBlinkSlow != 0 {
		c.SetFlag(CellFlagBlinkSlow)
	}
	if a.Flags&vtinput.AttrBlinkFast != 0 {
		c.SetFlag(CellFlagBlinkFast)
	}
	if a.Flags&vtinput.AttrReverse != 0 {
		c.SetFlag(CellFlagReverse)
	}
	if a.Flags&vtinput.AttrHidden != 0 {
		c.SetFlag(CellFlagHidden)
	}
	if a.Flags&vtinput.AttrStrike != 0 {
		c.SetFlag(CellFlagStrike)
	}
	// AttrOverline and AttrProtected (DECSCA) have no rendering counterpart
	// in CellFlags; this backend tracks neither.
	switch a.Underline {
	case vtinput.UnderlineSingle:
		c.SetFlag(CellFlagUnderline)
	case vtinput.UnderlineDouble:
		c.SetFlag(CellFlagDoubleUnderline)
	case vtinput.UnderlineCurly:
		c.SetFlag(CellFlagCurlyUnderline)
	case vtinput.UnderlineDotted:
		c.SetFlag(CellFlagDottedUnderline)
	case vtinput.UnderlineDashed:
		c.SetFlag(CellFlagDashedUnderline)
	}
	if a.HyperlinkID != "" {
		c.Hyperlink = &Hyperlink{ID: a.HyperlinkID, URI: hyperlinks[a.HyperlinkID]}
	}
	return c
}

// ToAttrs reverses CellFromAttrs, used when the Grid is read back (e.g. to
// answer a ViewGetCell that a renderer issues to redraw a damaged region).
func (c *Cell) ToAttrs() vtinput.CellAttrs {
	var a vtinput.CellAttrs
	a.Fg = refscreenColorToVT(c.Fg)
	a.Bg = refscreenColorToVT(c.Bg)
	if c.UnderlineColor != nil {
		a.UnderlineColor = refscreenColorToVT(c.UnderlineColor)
	}
	if c.HasFlag(CellFlagBold) {
		a.Flags |= vtinput.AttrBold
	}
	if c.HasFlag(CellFlagDim) {
		a.Flags |= vtinput.AttrDim
	}
	if c.HasFlag(CellFlagItalic) {
		a.Flags |= vtinput.AttrItalic
	}
	if c.HasFlag(CellFlagBlinkSlow) {
		a.Flags |= vtinput.AttrBlinkSlow
	}
	if c.HasFlag(CellFlagBlinkFast) {
		a.Flags |= vtinput.AttrBlinkFast
	}
	if c.HasFlag(CellFlagReverse) {
		a.Flags |= vtinput.AttrReverse
	}
	if c.HasFlag(CellFlagHidden) {
		a.Flags |= vtinput.AttrHidden
	}
	if c.HasFlag(CellFlagStrike) {
		a.Flags |= vtinput.AttrStrike
	}
	switch {
	case c.HasFlag(CellFlagDoubleUnderline):
		a.Underline = vtinput.UnderlineDouble
	case c.HasFlag(CellFlagCurlyUnderline):
		a.Underline = vtinput.UnderlineCurly
	case c.HasFlag(CellFlagDottedUnderline):
		a.Underline = vtinput.UnderlineDotted
	case c.HasFlag(CellFlagDashedUnderline):
		a.Underline = vtinput.UnderlineDashed
	case c.HasFlag(CellFlagUnderline):
		a.Underline = vtinput.UnderlineSingle
	}
	if c.Hyperlink != nil {
		a.HyperlinkID = c.Hyperlink.ID
	}
	return a
}

// CellFromGridCell builds a Cell from a vtinput.GridCell, translating the
// Width convention (0 = trailing half of a wide character, >=2 = leading
// half) onto CellFlagWideChar/CellFlagWideCharSpacer.
func CellFromGridCell(gc vtinput.GridCell, hyperlinks map[string]string) Cell {
	c := CellFromAttrs(gc.Attrs, hyperlinks)
	c.Char = gc.Ch
	switch {
	case gc.Width == 0:
		c.Char = 0
		c.SetFlag(CellFlagWideCharSpacer)
	case gc.Width >= 2:
		c.SetFlag(CellFlagWideChar)
	}
	return c
}

// ToGridCell reverses CellFromGridCell.
func (c *Cell) ToGridCell() vtinput.GridCell {
	gc := vtinput.GridCell{Ch: c.Char, Width: 1, Attrs: c.ToAttrs()}
	if c.IsWideSpacer() {
		gc.Width = 0
		gc.Ch = 0
	} else if c.IsWide() {
		gc.Width = 2
	}
	return gc
}
