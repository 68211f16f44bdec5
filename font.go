// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

// FontFlags is an 8-bit flag set (Bold, Italic, Underline, Strikethrough),
// spec §3.
type FontFlags uint8

// FontFlags bits.
const (
	FontFlagBold          FontFlags = 1 << 0
	FontFlagItalic        FontFlags = 1 << 1
	FontFlagUnderline     FontFlags = 1 << 2
	FontFlagStrikethrough FontFlags = 1 << 3
	fontFlagsKnown                  = FontFlagBold | FontFlagItalic | FontFlagUnderline | FontFlagStrikethrough
)

// StdFont is the embedded font record dispatched to by GuidAndFont when
// the GUID is GUIDStdFont (spec §3).
type StdFont struct {
	Charset  int16
	Flags    FontFlags
	Weight   int16
	Height   uint32 // HIMETRIC-ish font unit; nonzero, <= 655_350_000
	FontFace string
}

const stdFontMaxHeight = 655_350_000
const stdFontMaxFaceLen = 32

// parseStdFont decodes a StdFont body: version byte (=1), charset(i16),
// FontFlags(u8, strict), weight(i16), height(nonzero u32, bounded),
// font-face (length-prefixed ASCII, length < 32). The body is a flat
// packed layout with no inter-field alignment padding (unlike the
// mask-gated fixed blocks of FormControl/OleSiteConcrete), so every field
// after the version byte uses the cursor's raw, non-padding reads.
// Grounded on properties/font/parser.rs's parse_std_font and its embedded
// test, which this package's S5 scenario test reproduces byte-for-byte.
func parseStdFont(c *cursor) (StdFont, error) {
	const record = "StdFont"
	version, err := c.u8(record, "version")
	if err != nil {
		return StdFont{}, err
	}
	if version != 1 {
		return StdFont{}, newDecodeError(ErrKindBadMagic, record, "version", c.logPos-1)
	}
	charset, err := c.rawI16(record, "charset")
	if err != nil {
		return StdFont{}, err
	}
	flagsRaw, err := c.u8(record, "flags")
	if err != nil {
		return StdFont{}, err
	}
	if flagsRaw&^uint8(fontFlagsKnown) != 0 {
		return StdFont{}, newDecodeError(ErrKindUnknownBits, record, "flags", c.logPos-1)
	}
	weight, err := c.rawI16(record, "weight")
	if err != nil {
		return StdFont{}, err
	}
	height, err := c.rawU32(record, "height")
	if err != nil {
		return StdFont{}, err
	}
	if height == 0 || height > stdFontMaxHeight {
		return StdFont{}, newDecodeError(ErrKindConstraintViolation, record, "height", c.logPos-4)
	}
	faceLen, err := c.u8(record, "font_face_length")
	if err != nil {
		return StdFont{}, err
	}
	if faceLen >= stdFontMaxFaceLen {
		return StdFont{}, newDecodeError(ErrKindConstraintViolation, record, "font_face_length", c.logPos-1)
	}
	faceBytes, err := c.bytesNoPad(uint32(faceLen), record, "font_face")
	if err != nil {
		return StdFont{}, err
	}
	return StdFont{
		Charset:  charset,
		Flags:    FontFlags(flagsRaw),
		Weight:   weight,
		Height:   height,
		FontFace: decodeISO88591(faceBytes),
	}, nil
}

// FormFontKind discriminates GuidAndFont's variant.
type FormFontKind int

// FormFontKind values.
const (
	FormFontEmpty FormFontKind = iota
	FormFontStdFont
	FormFontDdsForm21FontNew
	FormFontTextProps
)

// DdsForm21FontNew is the legacy "DDS Form 2.1" inline font payload: two
// opaque u32s behind a fixed {0x00, 0x00, count==8} header.
type DdsForm21FontNew struct {
	D1, D2 uint32
}

// GuidAndFont is a GUID followed by a variant chosen by that GUID,
// spec §3.
type GuidAndFont struct {
	GUID GUID
	Kind FormFontKind
	Font StdFont
	Dds  DdsForm21FontNew
}

// emptyGuidAndFont is the zero-value GuidAndFont, used as the FONT
// property's default and as the placeholder's resolved shell when no
// stream data is available.
var emptyGuidAndFont = GuidAndFont{GUID: GUIDNil, Kind: FormFontEmpty}

// parseGuidAndFont reads a GUID then dispatches on it per spec §3: StdFont,
// the legacy DdsForm21FontNew inline payload, TextProps (opaque; no known
// on-disk shape is specified beyond its GUID), or an unrecognized GUID
// (fatal: UnknownGUID). Grounded on properties/font/parser.rs's
// parse_guid_and_font.
func parseGuidAndFont(c *cursor) (GuidAndFont, error) {
	const record = "GuidAndFont"
	g, err := c.guid(record, "guid")
	if err != nil {
		return GuidAndFont{}, err
	}
	switch g {
	case GUIDStdFont:
		font, err := parseStdFont(c)
		if err != nil {
			return GuidAndFont{}, err
		}
		return GuidAndFont{GUID: g, Kind: FormFontStdFont, Font: font}, nil
	case GUIDDtDdsForm21FontNew:
		if err := c.expectMagic([]byte{0x00, 0x00}, record); err != nil {
			return GuidAndFont{}, err
		}
		count, err := c.rawU16(record, "cb_count")
		if err != nil {
			return GuidAndFont{}, err
		}
		if count != 8 {
			return GuidAndFont{}, newDecodeError(ErrKindConstraintViolation, record, "cb_count", c.logPos-2)
		}
		d1, err := c.rawU32(record, "d1")
		if err != nil {
			return GuidAndFont{}, err
		}
		d2, err := c.rawU32(record, "d2")
		if err != nil {
			return GuidAndFont{}, err
		}
		return GuidAndFont{GUID: g, Kind: FormFontDdsForm21FontNew, Dds: DdsForm21FontNew{D1: d1, D2: d2}}, nil
	case GUIDTextProps:
		return GuidAndFont{GUID: g, Kind: FormFontTextProps}, nil
	case GUIDNil:
		return emptyGuidAndFont, nil
	default:
		return GuidAndFont{}, newDecodeError(ErrKindUnknownGUID, record, "guid", c.logPos-16)
	}
}
