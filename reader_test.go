// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

import "testing"

func TestCursorAlignPadsToBoundary(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		preRead int // bytes to take before aligning
		align   uint32
		wantPos uint32
	}{
		{"already aligned to 4", []byte{1, 2, 3, 4, 5, 6, 7, 8}, 4, 4, 4},
		{"pads 2 bytes to reach 4", []byte{1, 2, 3, 4, 5, 6, 7, 8}, 2, 4, 4},
		{"pads 1 byte to reach 2", []byte{1, 2, 3}, 1, 2, 2},
		{"alignment 1 never pads", []byte{1, 2, 3}, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(tt.buf)
			if _, err := c.take(uint32(tt.preRead), "Test", "pre"); err != nil {
				t.Fatalf("take() failed: %v", err)
			}
			if err := c.align(tt.align, "Test", "pad"); err != nil {
				t.Fatalf("align() failed: %v", err)
			}
			if c.pos != tt.wantPos {
				t.Errorf("pos = %d, want %d", c.pos, tt.wantPos)
			}
		})
	}
}

func TestCursorAlignTruncated(t *testing.T) {
	c := newCursor([]byte{1, 2}) // 2 bytes, take 1, need 3 more to reach align 4 but only 1 left
	if _, err := c.take(1, "Test", "pre"); err != nil {
		t.Fatalf("take() failed: %v", err)
	}
	if err := c.align(4, "Test", "pad"); err == nil {
		t.Fatal("align() should fail when not enough bytes remain")
	}
}

func TestCursorRawReadsDoNotPad(t *testing.T) {
	// rawU16 after one byte must read the very next two bytes, not pad first.
	buf := []byte{0xAA, 0x34, 0x12}
	c := newCursor(buf)
	if _, err := c.u8("Test", "lead"); err != nil {
		t.Fatalf("u8() failed: %v", err)
	}
	v, err := c.rawU16("Test", "value")
	if err != nil {
		t.Fatalf("rawU16() failed: %v", err)
	}
	if v != 0x1234 {
		t.Errorf("rawU16() = 0x%04x, want 0x1234", v)
	}
}

func TestCursorU16PadsThenReads(t *testing.T) {
	// u16 after one byte must pad one byte, then read the following two.
	buf := []byte{0xAA, 0xFF, 0x34, 0x12}
	c := newCursor(buf)
	if _, err := c.u8("Test", "lead"); err != nil {
		t.Fatalf("u8() failed: %v", err)
	}
	v, err := c.u16("Test", "value")
	if err != nil {
		t.Fatalf("u16() failed: %v", err)
	}
	if v != 0x1234 {
		t.Errorf("u16() = 0x%04x, want 0x1234", v)
	}
}

func TestBitfield32RejectsUnknownBits(t *testing.T) {
	const known = uint32(0x3)
	buf := []byte{0x07, 0x00, 0x00, 0x00} // bit 0x4 is not known
	c := newCursor(buf)
	if _, err := c.bitfield32(known, "Test", "mask"); err == nil {
		t.Fatal("bitfield32() should reject a bit outside the known mask")
	}
}

func TestBitfield32AcceptsKnownBits(t *testing.T) {
	const known = uint32(0x3)
	buf := []byte{0x03, 0x00, 0x00, 0x00}
	c := newCursor(buf)
	v, err := c.bitfield32(known, "Test", "mask")
	if err != nil {
		t.Fatalf("bitfield32() failed: %v", err)
	}
	if v != 0x3 {
		t.Errorf("bitfield32() = 0x%x, want 0x3", v)
	}
}

func TestVariantU8RejectsUnknownValue(t *testing.T) {
	allowed := []uint8{0, 1, 2}
	c := newCursor([]byte{9})
	if _, err := c.variantU8(allowed, "Test", "enum"); err == nil {
		t.Fatal("variantU8() should reject a value outside the allow-list")
	}
}

func TestExpectMagicMismatch(t *testing.T) {
	c := newCursor([]byte{0x00, 0x01})
	if err := c.expectMagic([]byte{0x00, 0x02}, "Test"); err == nil {
		t.Fatal("expectMagic() should fail on a mismatched tag")
	}
}

func TestExpectPlaceholderMismatch(t *testing.T) {
	c := newCursor([]byte{0x00, 0x00})
	if err := c.expectPlaceholder(0xFFFF, "Test", "placeholder"); err == nil {
		t.Fatal("expectPlaceholder() should fail when the value isn't the expected sentinel")
	}
}

func TestSubCarvesIndependentCursor(t *testing.T) {
	// The outer cursor has already consumed 3 bytes (odd alignment); sub's
	// inner cursor must start its own alignment accounting fresh at 0.
	buf := []byte{0xFF, 0xFF, 0xFF, 0x01, 0x00, 0x00, 0x00, 0xAA, 0xAA}
	c := newCursor(buf)
	if _, err := c.take(3, "Test", "prefix"); err != nil {
		t.Fatalf("take() failed: %v", err)
	}
	sub, err := c.sub(4, "Test", "inner")
	if err != nil {
		t.Fatalf("sub() failed: %v", err)
	}
	v, err := sub.u32("Inner", "value")
	if err != nil {
		t.Fatalf("inner u32() failed: %v", err)
	}
	if v != 1 {
		t.Errorf("inner u32() = %d, want 1", v)
	}
	if c.pos != 7 {
		t.Errorf("outer cursor pos = %d, want 7", c.pos)
	}
}
