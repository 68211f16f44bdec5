// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

import "testing"

func TestParseGuidAndPictureEmpty(t *testing.T) {
	c := newCursor(GUIDNil[:])
	got, err := parseGuidAndPicture(c)
	if err != nil {
		t.Fatalf("parseGuidAndPicture() failed: %v", err)
	}
	if got.Kind != GuidAndPictureEmpty {
		t.Errorf("Kind = %v, want GuidAndPictureEmpty", got.Kind)
	}
	if got != emptyGuidAndPicture {
		t.Errorf("got = %+v, want %+v", got, emptyGuidAndPicture)
	}
}

func TestParseGuidAndPicturePresent(t *testing.T) {
	c := newCursor(GUIDStdPicture[:])
	got, err := parseGuidAndPicture(c)
	if err != nil {
		t.Fatalf("parseGuidAndPicture() failed: %v", err)
	}
	if got.Kind != GuidAndPicturePresent {
		t.Errorf("Kind = %v, want GuidAndPicturePresent", got.Kind)
	}
	if got.GUID != GUIDStdPicture {
		t.Errorf("GUID = %v, want %v", got.GUID, GUIDStdPicture)
	}
}

func TestParseGuidAndPictureTruncated(t *testing.T) {
	c := newCursor(GUIDNil[:8])
	if _, err := parseGuidAndPicture(c); err == nil {
		t.Fatal("parseGuidAndPicture() should reject a truncated GUID")
	}
}
