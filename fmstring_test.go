// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

import "testing"

func TestDecodeLengthAndCompression(t *testing.T) {
	tests := []struct {
		name           string
		raw            uint32
		wantCompressed bool
		wantLength     uint32
	}{
		{"uncompressed", 0x00000010, false, 0x10},
		{"compressed", 0x80000010, true, 0x10},
		{"max length, uncompressed", 0x7FFFFFFF, false, 0x7FFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeLengthAndCompression(tt.raw)
			if got.compressed != tt.wantCompressed || got.length != tt.wantLength {
				t.Errorf("decodeLengthAndCompression(0x%x) = %+v, want {compressed:%v length:%d}",
					tt.raw, got, tt.wantCompressed, tt.wantLength)
			}
		})
	}
}

func TestFmStringCompressed(t *testing.T) {
	l := lengthAndCompression{compressed: true, length: 5}
	c := newCursor([]byte("Hello"))
	got, err := c.fmString(l, "Test", "field")
	if err != nil {
		t.Fatalf("fmString() failed: %v", err)
	}
	if got != "Hello" {
		t.Errorf("fmString() = %q, want Hello", got)
	}
}

func TestFmStringUncompressedUTF16LE(t *testing.T) {
	// "Hi" as UTF-16LE: 'H'=0x0048, 'i'=0x0069.
	buf := []byte{0x48, 0x00, 0x69, 0x00}
	l := lengthAndCompression{compressed: false, length: uint32(len(buf))}
	c := newCursor(buf)
	got, err := c.fmString(l, "Test", "field")
	if err != nil {
		t.Fatalf("fmString() failed: %v", err)
	}
	if got != "Hi" {
		t.Errorf("fmString() = %q, want Hi", got)
	}
}

func TestFmStringEmpty(t *testing.T) {
	l := lengthAndCompression{compressed: false, length: 0}
	c := newCursor(nil)
	got, err := c.fmString(l, "Test", "field")
	if err != nil {
		t.Fatalf("fmString() failed: %v", err)
	}
	if got != "" {
		t.Errorf("fmString() = %q, want empty string", got)
	}
}
