// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

// ClsTableFlags is a 16-bit Boolean-property flag set describing a
// SiteClassInfo entry's type information.
type ClsTableFlags uint16

// ClsTableFlags bits.
const (
	ClsTableFlagExclusiveValue ClsTableFlags = 0x0001
	ClsTableFlagDualInterface  ClsTableFlags = 0x0002
	ClsTableFlagNoAggregation  ClsTableFlags = 0x0004

	clsTableFlagsKnown = ClsTableFlagExclusiveValue | ClsTableFlagDualInterface | ClsTableFlagNoAggregation
)

// SiteClassInfo is one entry of a FormControl's class table: the type
// information needed to re-bind a cached-control-index site back to its
// concrete COM class. Grounded on controls/form/mod.rs's ClassTable and
// controls/user_form/parser.rs's parse_site_class_info.
type SiteClassInfo struct {
	ClassTableFlags ClsTableFlags
	VarFlags        VarFlags
	CountOfMethods  uint32
	DispidBind      uint32
	GetBindIndex    uint16
	PutBindIndex    uint16
	BindType        VarType
	GetValueIndex   uint16
	PutValueIndex   uint16
	ValueType       VarType
	DispidRowset    uint32
	SetRowset       uint16
	ClsID           GUID
	DispEvent       GUID
	DefaultProc     GUID
}

var siteClassInfoHeaderMagic = []byte{0x00, 0x00}

// parseSiteClassInfo decodes one class-table entry from c. The entry
// header's byte count is read but, per the source this is grounded on,
// not used to bound the body: the body is parsed directly off the shared
// cursor.
func parseSiteClassInfo(c *cursor) (SiteClassInfo, error) {
	const record = "SiteClassInfo"

	if err := c.expectMagic(siteClassInfoHeaderMagic, record); err != nil {
		return SiteClassInfo{}, err
	}
	if _, err := c.rawU16(record, "cb_class_table"); err != nil {
		return SiteClassInfo{}, err
	}

	mask, err := c.bitfield32(uint32(classInfoPropMaskKnown), record, "mask")
	if err != nil {
		return SiteClassInfo{}, err
	}
	m := ClassInfoPropMask(mask)

	var sci SiteClassInfo

	if m.Has(ClassInfoPropMaskClassFlags) {
		v, err := c.bitfield16(uint16(clsTableFlagsKnown), record, "class_table_flags")
		if err != nil {
			return SiteClassInfo{}, err
		}
		sci.ClassTableFlags = ClsTableFlags(v)
		// VarFlags is gated by the same bit as ClassTableFlags: the two
		// always travel together in the wire format.
		vf, err := c.u16(record, "var_flags")
		if err != nil {
			return SiteClassInfo{}, err
		}
		sci.VarFlags = VarFlags(vf)
	}

	if m.Has(ClassInfoPropMaskCountOfMethods) {
		if sci.CountOfMethods, err = c.u32(record, "count_of_methods"); err != nil {
			return SiteClassInfo{}, err
		}
	}
	if m.Has(ClassInfoPropMaskDispidBind) {
		if sci.DispidBind, err = c.u32(record, "dispid_bind"); err != nil {
			return SiteClassInfo{}, err
		}
	} else {
		sci.DispidBind = 0xFFFFFFFF
	}
	if m.Has(ClassInfoPropMaskGetBindIndex) {
		if sci.GetBindIndex, err = c.u16(record, "get_bind_index"); err != nil {
			return SiteClassInfo{}, err
		}
	}
	if m.Has(ClassInfoPropMaskPutBindIndex) {
		if sci.PutBindIndex, err = c.u16(record, "put_bind_index"); err != nil {
			return SiteClassInfo{}, err
		}
	}
	if m.Has(ClassInfoPropMaskBindType) {
		v, err := c.u16(record, "bind_type")
		if err != nil {
			return SiteClassInfo{}, err
		}
		sci.BindType = VarType(v)
	} else {
		sci.BindType = VTEmpty
	}
	if m.Has(ClassInfoPropMaskGetValueIndex) {
		if sci.GetValueIndex, err = c.u16(record, "get_value_index"); err != nil {
			return SiteClassInfo{}, err
		}
	}
	if m.Has(ClassInfoPropMaskPutValueIndex) {
		if sci.PutValueIndex, err = c.u16(record, "put_value_index"); err != nil {
			return SiteClassInfo{}, err
		}
	}
	if m.Has(ClassInfoPropMaskValueType) {
		v, err := c.u16(record, "value_type")
		if err != nil {
			return SiteClassInfo{}, err
		}
		sci.ValueType = VarType(v)
	} else {
		sci.ValueType = VTEmpty
	}
	if m.Has(ClassInfoPropMaskDispidRowset) {
		if sci.DispidRowset, err = c.u32(record, "dispid_rowset"); err != nil {
			return SiteClassInfo{}, err
		}
	} else {
		sci.DispidRowset = 0xFFFFFFFF
	}
	if m.Has(ClassInfoPropMaskSetRowset) {
		if sci.SetRowset, err = c.u16(record, "set_rowset"); err != nil {
			return SiteClassInfo{}, err
		}
	}

	if err := c.align(4, record, "extra_data_block"); err != nil {
		return SiteClassInfo{}, err
	}

	if m.Has(ClassInfoPropMaskClsID) {
		if sci.ClsID, err = c.guid(record, "cls_id"); err != nil {
			return SiteClassInfo{}, err
		}
	} else {
		sci.ClsID = GUIDNil
	}
	if m.Has(ClassInfoPropMaskDispEvent) {
		if sci.DispEvent, err = c.guid(record, "disp_event"); err != nil {
			return SiteClassInfo{}, err
		}
	} else {
		sci.DispEvent = GUIDIDispatch
	}
	if m.Has(ClassInfoPropMaskDefaultProc) {
		if sci.DefaultProc, err = c.guid(record, "default_proc"); err != nil {
			return SiteClassInfo{}, err
		}
	} else {
		sci.DefaultProc = GUIDIDispatch
	}

	return sci, nil
}
