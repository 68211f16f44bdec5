// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

// ClipboardFormatKind discriminates ClipboardFormat's variant.
type ClipboardFormatKind int

// ClipboardFormatKind values.
const (
	ClipboardFormatNone ClipboardFormatKind = iota
	ClipboardFormatStandard
	ClipboardFormatCustom
)

// ClipboardFormat is the \001CompObj stream's ANSI clipboard format field:
// a 0 marker means no format, 0xFFFFFFFE/0xFFFFFFFF marks one of the
// predefined Windows clipboard formats (carried as its numeric ID), and
// any other value is read as a byte count for a custom format name.
type ClipboardFormat struct {
	Kind     ClipboardFormatKind
	Standard uint32 // valid when Kind is ClipboardFormatStandard
	Custom   []byte // valid when Kind is ClipboardFormatCustom; NUL terminator stripped
}

// CompObj is the decoded \001CompObj stream: a fixed 28-byte header
// (skipped, carries no information this package surfaces), a
// length-prefixed ANSI NUL-terminated user-type string, and an ANSI
// clipboard format. Grounded on common/parser.rs's parse_comp_obj and its
// embedded fixture, which this package's CompObj scenario test reproduces
// byte-for-byte.
type CompObj struct {
	AnsiUserType    string
	ClipboardFormat ClipboardFormat
}

const compObjHeaderLen = 28

// parseCompObj decodes a full \001CompObj stream from buf.
func parseCompObj(buf []byte) (CompObj, error) {
	c := newCursor(buf)
	const record = "CompObj"
	if _, err := c.bytesNoPad(compObjHeaderLen, record, "header"); err != nil {
		return CompObj{}, err
	}
	userType, err := parseLengthPrefixedAnsiString(c, record, "ansi_user_type")
	if err != nil {
		return CompObj{}, err
	}
	format, err := parseAnsiClipboardFormat(c, record, "ansi_clipboard_format")
	if err != nil {
		return CompObj{}, err
	}
	return CompObj{AnsiUserType: userType, ClipboardFormat: format}, nil
}

// parseLengthPrefixedAnsiString reads a u32 byte count followed by that
// many bytes of ANSI text, the last of which must be the NUL terminator.
// The returned string does not include the terminator.
func parseLengthPrefixedAnsiString(c *cursor, record, field string) (string, error) {
	n, err := c.rawU32(record, field+"_length")
	if err != nil {
		return "", err
	}
	b, err := c.bytesNoPad(n, record, field)
	if err != nil {
		return "", err
	}
	if n == 0 || b[n-1] != 0x00 {
		return "", newDecodeError(ErrKindConstraintViolation, record, field, c.logPos-n)
	}
	return decodeISO88591(b[:n-1]), nil
}

// parseAnsiClipboardFormat reads the marker-or-length u32 and dispatches:
// 0 is None, 0xFFFFFFFE/0xFFFFFFFF is Standard (followed by a u32 format
// ID), and any other value is a byte count for a Custom format name, the
// last byte of which must be the NUL terminator.
func parseAnsiClipboardFormat(c *cursor, record, field string) (ClipboardFormat, error) {
	marker, err := c.rawU32(record, field)
	if err != nil {
		return ClipboardFormat{}, err
	}
	switch marker {
	case 0x00000000:
		return ClipboardFormat{Kind: ClipboardFormatNone}, nil
	case 0xFFFFFFFE, 0xFFFFFFFF:
		id, err := c.rawU32(record, field+"_standard_id")
		if err != nil {
			return ClipboardFormat{}, err
		}
		return ClipboardFormat{Kind: ClipboardFormatStandard, Standard: id}, nil
	default:
		b, err := c.bytesNoPad(marker, record, field)
		if err != nil {
			return ClipboardFormat{}, err
		}
		if b[marker-1] != 0x00 {
			return ClipboardFormat{}, newDecodeError(ErrKindConstraintViolation, record, field, c.logPos-marker)
		}
		custom := make([]byte, marker-1)
		copy(custom, b[:marker-1])
		return ClipboardFormat{Kind: ClipboardFormatCustom, Custom: custom}, nil
	}
}
