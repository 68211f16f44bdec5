// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

import "testing"

func TestGuidRoundTripsWellKnownConstant(t *testing.T) {
	c := newCursor(GUIDStdFont[:])
	got, err := c.guid("Test", "guid")
	if err != nil {
		t.Fatalf("guid() failed: %v", err)
	}
	if got != GUIDStdFont {
		t.Errorf("guid() = %v, want %v", got, GUIDStdFont)
	}
}

func TestGuidStringFormat(t *testing.T) {
	want := "{0be35203-8f91-11ce-9de3-00aa004bb851}"
	if got := GUIDStdFont.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGuidTailBytesNotByteSwapped(t *testing.T) {
	// The tail 8 bytes of a GUID are carried verbatim on the wire; a
	// decoder that mistakenly swaps them would corrupt every well-known
	// constant's tail.
	g := newGUID(0, 0, 0, [8]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04})
	want := [8]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04}
	var got [8]byte
	copy(got[:], g[8:16])
	if got != want {
		t.Errorf("tail bytes = %v, want %v", got, want)
	}
}
