// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

// GuidAndPictureKind discriminates GuidAndPicture's variant. Unlike
// GuidAndFont, only the Empty sentinel participates in the core decoder:
// picture/icon decoding beyond identifying that a picture is present is a
// non-goal (the bitmap payload has no self-describing length in anything
// grounded here, and this package returns opaque presence only).
type GuidAndPictureKind int

// GuidAndPictureKind values.
const (
	GuidAndPictureEmpty GuidAndPictureKind = iota
	GuidAndPicturePresent
)

// GuidAndPicture is the GUID-led picture slot used by FormControl's
// MOUSE_ICON and PICTURE stream-data entries, and by CommandButton's
// Picture/MouseIcon fields.
type GuidAndPicture struct {
	Kind GuidAndPictureKind
	GUID GUID // the dispatching GUID when Kind is GuidAndPicturePresent
}

// emptyGuidAndPicture is the zero-value, all-GUID-nil GuidAndPicture.
var emptyGuidAndPicture = GuidAndPicture{Kind: GuidAndPictureEmpty, GUID: GUIDNil}

// parseGuidAndPicture reads the dispatching GUID only. A nil GUID resolves
// to the Empty sentinel; any other GUID (GUIDStdPicture in every observed
// form) resolves to Present, and the decoder advances no further: the
// picture/icon body itself has no length self-described anywhere this
// package is grounded on, and decoding it is out of scope. Callers that
// reach a Present GuidAndPicture must not assume any particular amount of
// trailing stream data has been consumed.
func parseGuidAndPicture(c *cursor) (GuidAndPicture, error) {
	const record = "GuidAndPicture"
	g, err := c.guid(record, "guid")
	if err != nil {
		return GuidAndPicture{}, err
	}
	if g == GUIDNil {
		return emptyGuidAndPicture, nil
	}
	return GuidAndPicture{Kind: GuidAndPicturePresent, GUID: g}, nil
}
