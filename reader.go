// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

import (
	"encoding/binary"
)

// cursor is a primitive reader over a byte slice that maintains a logical
// alignment counter independent of its physical read position. Every
// higher-level decoder in this package reads through a cursor so that
// padding-before-read semantics stay centralized in one place instead of
// drifting between the fixed-block, padding-point, and variable-block code
// for the same record (the single commonest source of silent
// misalignment in a hand-rolled decoder).
type cursor struct {
	buf    []byte
	pos    uint32 // physical offset into buf
	logPos uint32 // logical byte counter, used only for alignment math
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

// remaining reports how many bytes are left to read.
func (c *cursor) remaining() uint32 {
	if c.pos > uint32(len(c.buf)) {
		return 0
	}
	return uint32(len(c.buf)) - c.pos
}

// align pads the logical cursor to the next multiple of a (1, 2, or 4),
// skipping the corresponding number of bytes from the physical input.
func (c *cursor) align(a uint32, record, field string) error {
	if a <= 1 {
		return nil
	}
	pad := (a - (c.logPos % a)) % a
	if pad == 0 {
		return nil
	}
	if c.remaining() < pad {
		return newDecodeError(ErrKindTruncated, record, field, c.logPos)
	}
	c.pos += pad
	c.logPos += pad
	return nil
}

func (c *cursor) take(n uint32, record, field string) ([]byte, error) {
	if c.remaining() < n {
		return nil, newDecodeError(ErrKindTruncated, record, field, c.logPos)
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	c.logPos += n
	return b, nil
}

// u8 reads an unsigned byte. u8 reads never pad, per spec §4.1.
func (c *cursor) u8(record, field string) (uint8, error) {
	b, err := c.take(1, record, field)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// i8 reads a signed byte.
func (c *cursor) i8(record, field string) (int8, error) {
	v, err := c.u8(record, field)
	return int8(v), err
}

// u16 pads to 2-byte alignment, then reads a little-endian uint16.
func (c *cursor) u16(record, field string) (uint16, error) {
	if err := c.align(2, record, field); err != nil {
		return 0, err
	}
	b, err := c.take(2, record, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// i16 pads to 2-byte alignment, then reads a little-endian int16.
func (c *cursor) i16(record, field string) (int16, error) {
	v, err := c.u16(record, field)
	return int16(v), err
}

// u32 pads to 4-byte alignment, then reads a little-endian uint32.
func (c *cursor) u32(record, field string) (uint32, error) {
	if err := c.align(4, record, field); err != nil {
		return 0, err
	}
	b, err := c.take(4, record, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// i32 pads to 4-byte alignment, then reads a little-endian int32.
func (c *cursor) i32(record, field string) (int32, error) {
	v, err := c.u32(record, field)
	return int32(v), err
}

// rawU16 reads a little-endian uint16 with no alignment padding, for use
// inside packed sub-records (StdFont, CompObj, the legacy DDS font inline
// payload, the site depth-and-type list) whose own layout is a flat byte
// sequence independent of the outer cursor's alignment discipline.
func (c *cursor) rawU16(record, field string) (uint16, error) {
	b, err := c.take(2, record, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// rawI16 is the signed analog of rawU16.
func (c *cursor) rawI16(record, field string) (int16, error) {
	v, err := c.rawU16(record, field)
	return int16(v), err
}

// rawU32 reads a little-endian uint32 with no alignment padding.
func (c *cursor) rawU32(record, field string) (uint32, error) {
	b, err := c.take(4, record, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// rawI32 is the signed analog of rawU32.
func (c *cursor) rawI32(record, field string) (int32, error) {
	v, err := c.rawU32(record, field)
	return int32(v), err
}

// bytesNoPad reads n raw bytes without any alignment padding, advancing
// both cursors by n. Used for GUIDs and other blobs whose own internal
// layout fixes their size regardless of surrounding alignment.
func (c *cursor) bytesNoPad(n uint32, record, field string) ([]byte, error) {
	return c.take(n, record, field)
}

// bitfield32 reads a u32 and validates it against a mask of declared bits,
// the "strict reject of unknown bits" helper from spec §4.1. Used for
// closed 32-bit property masks and other flag sets.
func (c *cursor) bitfield32(known uint32, record, field string) (uint32, error) {
	v, err := c.u32(record, field)
	if err != nil {
		return 0, err
	}
	if v&^known != 0 {
		return 0, newDecodeError(ErrKindUnknownBits, record, field, c.logPos)
	}
	return v, nil
}

// bitfield16 is the 16-bit analog of bitfield32.
func (c *cursor) bitfield16(known uint16, record, field string) (uint16, error) {
	v, err := c.u16(record, field)
	if err != nil {
		return 0, err
	}
	if v&^known != 0 {
		return 0, newDecodeError(ErrKindUnknownBits, record, field, c.logPos)
	}
	return v, nil
}

// bitfield8 is the 8-bit analog of bitfield32. u8 reads do not pad.
func (c *cursor) bitfield8(known uint8, record, field string) (uint8, error) {
	v, err := c.u8(record, field)
	if err != nil {
		return 0, err
	}
	if v&^known != 0 {
		return 0, newDecodeError(ErrKindUnknownBits, record, field, c.logPos)
	}
	return v, nil
}

// variantU8 reads a u8 and validates it is a member of a declared closed
// enumeration, the "strict reject of unknown enum values" helper from
// spec §4.1.
func (c *cursor) variantU8(allowed []uint8, record, field string) (uint8, error) {
	v, err := c.u8(record, field)
	if err != nil {
		return 0, err
	}
	for _, a := range allowed {
		if a == v {
			return v, nil
		}
	}
	return 0, newDecodeError(ErrKindUnknownEnum, record, field, c.logPos)
}

// variantU16 is the 16-bit analog of variantU8.
func (c *cursor) variantU16(allowed []uint16, record, field string) (uint16, error) {
	v, err := c.u16(record, field)
	if err != nil {
		return 0, err
	}
	for _, a := range allowed {
		if a == v {
			return v, nil
		}
	}
	return 0, newDecodeError(ErrKindUnknownEnum, record, field, c.logPos)
}

// expectMagic reads len(tag) raw bytes without padding and requires them
// to equal tag exactly, the record-header check used by FormControl,
// OleSiteConcrete, SiteClassInfo, and every per-control decoder.
func (c *cursor) expectMagic(tag []byte, record string) error {
	b, err := c.bytesNoPad(uint32(len(tag)), record, "magic")
	if err != nil {
		return err
	}
	for i, want := range tag {
		if b[i] != want {
			return newDecodeError(ErrKindBadMagic, record, "magic", c.logPos-uint32(len(tag)))
		}
	}
	return nil
}

// expectPlaceholder reads a u16 placeholder and requires it to equal want,
// used by the FONT/PICTURE/MOUSE_ICON inline "stream data" slots (spec §3,
// §8 property 7: "Placeholder enforcement").
func (c *cursor) expectPlaceholder(want uint16, record, field string) error {
	v, err := c.u16(record, field)
	if err != nil {
		return err
	}
	if v != want {
		return newDecodeError(ErrKindPlaceholderMismatch, record, field, c.logPos-2)
	}
	return nil
}

// sub carves out a bounded, independently-aligned cursor over the next n
// bytes of raw input (no padding consumed). Sub-records that re-frame
// alignment (sites, class info, per-control bodies) use this to build a
// fresh logical cursor starting at 0 inside their own bounded slice, per
// spec §4.1's "sub-records ... construct a fresh cursor at 0".
func (c *cursor) sub(n uint32, record, field string) (*cursor, error) {
	b, err := c.take(n, record, field)
	if err != nil {
		return nil, err
	}
	return newCursor(b), nil
}
