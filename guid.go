// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

import (
	"encoding/binary"
	"fmt"
)

// GUID is a 16-byte class identifier encoded per the Windows mixed-endian
// convention: a little-endian u32, two little-endian u16s, then 8 raw
// bytes carried verbatim (no byte-swap on the tail). Compared structurally.
type GUID [16]byte

// String renders the GUID in the canonical
// {dddddddd-dddd-dddd-dddd-dddddddddddd} form.
func (g GUID) String() string {
	return fmt.Sprintf("{%08x-%04x-%04x-%02x%02x-%02x%02x%02x%02x%02x%02x}",
		binary.LittleEndian.Uint32(g[0:4]),
		binary.LittleEndian.Uint16(g[4:6]),
		binary.LittleEndian.Uint16(g[6:8]),
		g[8], g[9], g[10], g[11], g[12], g[13], g[14], g[15])
}

func newGUID(d1 uint32, d2, d3 uint16, tail [8]byte) GUID {
	var g GUID
	binary.LittleEndian.PutUint32(g[0:4], d1)
	binary.LittleEndian.PutUint16(g[4:6], d2)
	binary.LittleEndian.PutUint16(g[6:8], d3)
	copy(g[8:16], tail[:])
	return g
}

// Well-known GUIDs referenced by GuidAndFont/GuidAndPicture dispatch and by
// SiteClassInfo's IDispatch-referencing defaults.
var (
	// GUIDStdFont identifies an embedded StdFont record.
	// {0BE35203-8F91-11CE-9DE3-00AA004BB851}
	GUIDStdFont = newGUID(0x0BE35203, 0x8F91, 0x11CE, [8]byte{0x9D, 0xE3, 0x00, 0xAA, 0x00, 0x4B, 0xB8, 0x51})

	// GUIDTextProps identifies an embedded TextProps record.
	// {AFC20920-DA4E-11CE-B943-00AA006887B4}
	GUIDTextProps = newGUID(0xAFC20920, 0xDA4E, 0x11CE, [8]byte{0xB9, 0x43, 0x00, 0xAA, 0x00, 0x68, 0x87, 0xB4})

	// GUIDStdPicture identifies an embedded StdPicture record.
	// {0BE35204-8F91-11CE-9DE3-00AA004BB851}
	GUIDStdPicture = newGUID(0x0BE35204, 0x8F91, 0x11CE, [8]byte{0x9D, 0xE3, 0x00, 0xAA, 0x00, 0x4B, 0xB8, 0x51})

	// GUIDDtDdsForm21FontNew identifies the legacy "DDS Form 2.1" inline
	// font variant (version 0.0, 8 opaque payload bytes).
	// {105B80DE-95F1-11D0-B0A0-00AA00BDCB5C}
	GUIDDtDdsForm21FontNew = newGUID(0x105B80DE, 0x95F1, 0x11D0, [8]byte{0xB0, 0xA0, 0x00, 0xAA, 0x00, 0xBD, 0xCB, 0x5C})

	// GUIDIDispatch is IID_IDispatch, the default for SiteClassInfo's
	// DispEvent and DefaultProc fields.
	// {00020400-0000-0000-C000-000000000046}
	GUIDIDispatch = newGUID(0x00020400, 0x0000, 0x0000, [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46})

	// GUIDNil is the all-zero GUID, the default for SiteClassInfo's ClsId.
	GUIDNil = GUID{}
)

// guid reads a GUID, which is never padded internally beyond the outer
// cursor's own alignment to 4 on entry (the u32 lead field applies it).
func (c *cursor) guid(record, field string) (GUID, error) {
	if err := c.align(4, record, field); err != nil {
		return GUID{}, err
	}
	b, err := c.bytesNoPad(16, record, field)
	if err != nil {
		return GUID{}, err
	}
	var g GUID
	copy(g[:], b)
	return g, nil
}
