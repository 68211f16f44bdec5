// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

import (
	"encoding/binary"
	"fmt"
)

// RgbColor is a 24-bit RGB color.
type RgbColor struct {
	Red, Green, Blue uint8
}

// String renders the color as a #RRGGBB hex triplet.
func (c RgbColor) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.Red, c.Green, c.Blue)
}

func rgbFromBGR(b, g, r uint8) RgbColor { return RgbColor{Red: r, Green: g, Blue: b} }

// OleColorTag is the high byte of an OleColor that selects its variant.
type OleColorTag uint8

// OleColor tag values, spec §3.
const (
	OleColorTagDefault       OleColorTag = 0x00
	OleColorTagPaletteEntry  OleColorTag = 0x01
	OleColorTagRgbColor      OleColorTag = 0x02
	OleColorTagSystemPalette OleColorTag = 0x80
)

// SystemColor is a Windows system color index, the payload of a
// SystemPalette OleColor.
type SystemColor uint16

// SystemColor values used by the named OleColor constants below.
const (
	SystemColorWindowFrame      SystemColor = 0x06
	SystemColorWindowText       SystemColor = 0x08
	SystemColorButtonFace       SystemColor = 0x0F
	SystemColorButtonText       SystemColor = 0x12
	SystemColorWindowBackground SystemColor = 0x05
	SystemColor3DHighlight      SystemColor = 0x14
	SystemColor3DDKShadow       SystemColor = 0x15
)

// OleColor is the 4-byte tagged color value used by FormControl and
// CommandButton. The tag is the high byte; the low
// three bytes carry the payload (spec §3).
type OleColor struct {
	Tag     OleColorTag
	RGB     RgbColor // valid when Tag is Default or RgbColor
	Palette uint16   // valid when Tag is PaletteEntry or SystemPalette
}

// decodeOleColor splits a raw little-endian u32 into its tagged variant,
// rejecting any tag outside the four declared values.
func decodeOleColor(v uint32) (OleColor, bool) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	tag := OleColorTag(b[3])
	switch tag {
	case OleColorTagDefault, OleColorTagRgbColor:
		return OleColor{Tag: tag, RGB: rgbFromBGR(b[0], b[1], b[2])}, true
	case OleColorTagPaletteEntry, OleColorTagSystemPalette:
		return OleColor{Tag: tag, Palette: binary.LittleEndian.Uint16(b[0:2])}, true
	default:
		return OleColor{}, false
	}
}

// oleColor reads a 4-byte-aligned OleColor from the cursor, rejecting any
// unrecognized tag byte as UnknownEnum (the tag is a closed, 4-value
// enumeration per spec §3's table).
func (c *cursor) oleColor(record, field string) (OleColor, error) {
	if err := c.align(4, record, field); err != nil {
		return OleColor{}, err
	}
	b, err := c.take(4, record, field)
	if err != nil {
		return OleColor{}, err
	}
	v := binary.LittleEndian.Uint32(b)
	oc, ok := decodeOleColor(v)
	if !ok {
		return OleColor{}, newDecodeError(ErrKindUnknownEnum, record, field, c.logPos-4)
	}
	return oc, nil
}

func systemPaletteColor(idx SystemColor) OleColor {
	return OleColor{Tag: OleColorTagSystemPalette, Palette: uint16(idx)}
}

// Named OleColor constants referenced as property defaults elsewhere in
// this package (CommandButton.ForeColor/BackColor, and general use).
var (
	OleColorBtnFace     = systemPaletteColor(SystemColorButtonFace)
	OleColorBtnText     = systemPaletteColor(SystemColorButtonText)
	OleColorWindow      = systemPaletteColor(SystemColorWindowBackground)
	OleColorWindowText  = systemPaletteColor(SystemColorWindowText)
	OleColorWindowFrame = systemPaletteColor(SystemColorWindowFrame)
	OleColor3DDkShadow  = systemPaletteColor(SystemColor3DDKShadow)
	OleColor3DFace      = systemPaletteColor(SystemColorButtonFace)
	OleColor3DHighlight = systemPaletteColor(SystemColor3DHighlight)
)
