// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

// SiteFlags is a 32-bit Boolean-property flag set describing an embedded
// control's site-level behavior. It is a closed flag set: the decoder
// rejects any bit outside the ones declared below as UnknownBits.
type SiteFlags uint32

// SiteFlags bits.
const (
	SiteFlagTabStop         SiteFlags = 0x00000001
	SiteFlagVisible         SiteFlags = 0x00000002
	SiteFlagDefault         SiteFlags = 0x00000004
	SiteFlagCancel          SiteFlags = 0x00000008
	SiteFlagStreamed        SiteFlags = 0x00000010
	SiteFlagAutoSize        SiteFlags = 0x00000020
	SiteFlagPreserveHeight  SiteFlags = 0x00000100
	SiteFlagFitToParent     SiteFlags = 0x00000200
	SiteFlagSelectChild     SiteFlags = 0x00002000
	SiteFlagPromoteControls SiteFlags = 0x00040000

	siteFlagsKnown = SiteFlagTabStop | SiteFlagVisible | SiteFlagDefault | SiteFlagCancel |
		SiteFlagStreamed | SiteFlagAutoSize | SiteFlagPreserveHeight | SiteFlagFitToParent |
		SiteFlagSelectChild | SiteFlagPromoteControls

	// siteFlagsDefault is the file format default: 0x00000033 (TabStop,
	// Visible, Streamed, AutoSize).
	siteFlagsDefault = SiteFlagTabStop | SiteFlagVisible | SiteFlagStreamed | SiteFlagAutoSize
)

// Has reports whether every bit in mask is set.
func (f SiteFlags) Has(mask SiteFlags) bool { return f&mask == mask }

// ClsidCacheKind discriminates ClsidCacheIndex's resolved meaning.
type ClsidCacheKind int

// ClsidCacheKind values.
const (
	ClsidCacheInvalid ClsidCacheKind = iota
	ClsidCacheClassTable
	ClsidCacheGlobal
)

const (
	clsidCacheInvalidValue    uint16 = 0x7FFF
	clsidCacheIndexMask       uint16 = 0x7FFF
	clsidCacheIsFromClassTable uint16 = 0x8000
)

// ClsidCacheIndex resolves an OleSiteConcrete's cached-control index:
// 0x7FFF is Invalid, a set high bit selects an index into the form's own
// class table (low 15 bits), and any other value selects an index into
// the global cached-control enumeration (spec §6).
type ClsidCacheIndex struct {
	Kind  ClsidCacheKind
	Index uint16 // valid when Kind is ClassTable or Global
}

func decodeClsidCacheIndex(v uint16) ClsidCacheIndex {
	if v == clsidCacheInvalidValue {
		return ClsidCacheIndex{Kind: ClsidCacheInvalid}
	}
	if v&clsidCacheIsFromClassTable != 0 {
		return ClsidCacheIndex{Kind: ClsidCacheClassTable, Index: v & clsidCacheIndexMask}
	}
	return ClsidCacheIndex{Kind: ClsidCacheGlobal, Index: v & clsidCacheIndexMask}
}

var clsidCacheIndexInvalid = ClsidCacheIndex{Kind: ClsidCacheInvalid}

// OleSiteConcrete is one embedded control's site record, spec §4.4.
// Grounded on controls/ole_site_concrete/mod.rs's OleSiteConcrete and
// controls/user_form/ole_site_concrete/parser.rs's parse_ole_site_concrete.
type OleSiteConcrete struct {
	ID              int32
	HelpContextID   int32
	BitFlags        SiteFlags
	ObjectStreamSize uint32
	TabIndex        int16
	ClsidCacheIndex ClsidCacheIndex
	GroupID         uint16 // 0 means "no group"
	Name            string
	Tag             string
	Position        Position
	ControlTipText  string
	RuntimeLicKey   string
	ControlSource   string
	RowSource       string
}

var oleSiteConcreteHeaderMagic = []byte{0x00, 0x00}

// parseOleSiteConcrete decodes one OleSiteConcrete record. The header's
// byte count is authoritative: the body is parsed within a bounded,
// independently-aligned sub-cursor carved to exactly that many bytes.
func parseOleSiteConcrete(c *cursor) (OleSiteConcrete, error) {
	const record = "OleSiteConcrete"

	if err := c.expectMagic(oleSiteConcreteHeaderMagic, record); err != nil {
		return OleSiteConcrete{}, err
	}
	cb, err := c.rawU16(record, "cb_site")
	if err != nil {
		return OleSiteConcrete{}, err
	}
	sub, err := c.sub(uint32(cb), record, "body")
	if err != nil {
		return OleSiteConcrete{}, err
	}
	return parseOleSiteConcreteBody(sub)
}

func parseOleSiteConcreteBody(c *cursor) (OleSiteConcrete, error) {
	const record = "OleSiteConcrete"

	mask, err := c.bitfield32(uint32(sitePropMaskKnown), record, "mask")
	if err != nil {
		return OleSiteConcrete{}, err
	}
	m := SitePropMask(mask)

	var site OleSiteConcrete

	var nameLen, tagLen, tipLen, licLen, sourceLen, rowLen lengthAndCompression
	if m.Has(SitePropMaskName) {
		if nameLen, err = c.lengthAndCompression(record, "name"); err != nil {
			return OleSiteConcrete{}, err
		}
	}
	if m.Has(SitePropMaskTag) {
		if tagLen, err = c.lengthAndCompression(record, "tag"); err != nil {
			return OleSiteConcrete{}, err
		}
	}
	if m.Has(SitePropMaskID) {
		if site.ID, err = c.i32(record, "id"); err != nil {
			return OleSiteConcrete{}, err
		}
	}
	if m.Has(SitePropMaskHelpContextID) {
		if site.HelpContextID, err = c.i32(record, "help_context_id"); err != nil {
			return OleSiteConcrete{}, err
		}
	}
	if m.Has(SitePropMaskBitFlags) {
		v, err := c.bitfield32(uint32(siteFlagsKnown), record, "bit_flags")
		if err != nil {
			return OleSiteConcrete{}, err
		}
		site.BitFlags = SiteFlags(v)
	} else {
		site.BitFlags = siteFlagsDefault
	}
	if m.Has(SitePropMaskObjectStreamSz) {
		if site.ObjectStreamSize, err = c.u32(record, "object_stream_size"); err != nil {
			return OleSiteConcrete{}, err
		}
	}
	if m.Has(SitePropMaskTabIndex) {
		if site.TabIndex, err = c.i16(record, "tab_index"); err != nil {
			return OleSiteConcrete{}, err
		}
	} else {
		site.TabIndex = -1
	}
	if m.Has(SitePropMaskClsidCacheIndex) {
		v, err := c.u16(record, "clsid_cache_index")
		if err != nil {
			return OleSiteConcrete{}, err
		}
		site.ClsidCacheIndex = decodeClsidCacheIndex(v)
	} else {
		site.ClsidCacheIndex = clsidCacheIndexInvalid
	}
	if m.Has(SitePropMaskGroupID) {
		if site.GroupID, err = c.u16(record, "group_id"); err != nil {
			return OleSiteConcrete{}, err
		}
	}
	if m.Has(SitePropMaskControlTipText) {
		if tipLen, err = c.lengthAndCompression(record, "control_tip_text"); err != nil {
			return OleSiteConcrete{}, err
		}
	}
	if m.Has(SitePropMaskRuntimeLicKey) {
		if licLen, err = c.lengthAndCompression(record, "runtime_lic_key"); err != nil {
			return OleSiteConcrete{}, err
		}
	}
	if m.Has(SitePropMaskControlSource) {
		if sourceLen, err = c.lengthAndCompression(record, "control_source"); err != nil {
			return OleSiteConcrete{}, err
		}
	}
	if m.Has(SitePropMaskRowSource) {
		if rowLen, err = c.lengthAndCompression(record, "row_source"); err != nil {
			return OleSiteConcrete{}, err
		}
	}

	if err := c.align(4, record, "padding5"); err != nil {
		return OleSiteConcrete{}, err
	}

	if m.Has(SitePropMaskName) {
		if site.Name, err = c.fmString(nameLen, record, "name"); err != nil {
			return OleSiteConcrete{}, err
		}
	}
	if m.Has(SitePropMaskTag) {
		if site.Tag, err = c.fmString(tagLen, record, "tag"); err != nil {
			return OleSiteConcrete{}, err
		}
	}
	if m.Has(SitePropMaskPosition) {
		if site.Position, err = c.position(record, "site_position"); err != nil {
			return OleSiteConcrete{}, err
		}
	}
	if m.Has(SitePropMaskControlTipText) {
		if site.ControlTipText, err = c.fmString(tipLen, record, "control_tip_text"); err != nil {
			return OleSiteConcrete{}, err
		}
	}
	if m.Has(SitePropMaskRuntimeLicKey) {
		if site.RuntimeLicKey, err = c.fmString(licLen, record, "runtime_lic_key"); err != nil {
			return OleSiteConcrete{}, err
		}
	}
	if m.Has(SitePropMaskControlSource) {
		if site.ControlSource, err = c.fmString(sourceLen, record, "control_source"); err != nil {
			return OleSiteConcrete{}, err
		}
	}
	if m.Has(SitePropMaskRowSource) {
		if site.RowSource, err = c.fmString(rowLen, record, "row_source"); err != nil {
			return OleSiteConcrete{}, err
		}
	}

	return site, nil
}
