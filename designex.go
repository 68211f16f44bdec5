// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

// DXMode is DesignExtender's opaque bit-flag word. No closed bit layout for
// it is grounded anywhere in this pack; it is carried as a raw value.
type DXMode uint32

// dxModeDefault is DesignExtender.BitFlags' file format default.
const dxModeDefault DXMode = 0x00015F55

// ClickControlMode is a signed, closed enumeration of single-click behavior
// over an embedded control at design time, grounded on
// controls/user_form/designex.rs's ClickControlMode.
type ClickControlMode int8

// ClickControlMode values.
const (
	ClickControlModeInherit          ClickControlMode = -2
	ClickControlModeDefault          ClickControlMode = -1
	ClickControlModeInsertionPoint   ClickControlMode = 0
	ClickControlModeSelectThenInsert ClickControlMode = 1
)

var clickControlModeValues = []uint8{
	uint8(int8(ClickControlModeInherit)), uint8(int8(ClickControlModeDefault)),
	uint8(ClickControlModeInsertionPoint), uint8(ClickControlModeSelectThenInsert),
}

// DblClickControlMode is an unsigned, closed enumeration of double-click
// behavior over an embedded control at design time, grounded on
// controls/user_form/designex.rs's DblClickControlMode.
type DblClickControlMode uint8

// DblClickControlMode values.
const (
	DblClickControlModeSelectText     DblClickControlMode = 0x00
	DblClickControlModeEditCode       DblClickControlMode = 0x01
	DblClickControlModeEditProperties DblClickControlMode = 0x02
	DblClickControlModeInherit        DblClickControlMode = 0xFE
)

var dblClickControlModeValues = []uint8{
	uint8(DblClickControlModeSelectText), uint8(DblClickControlModeEditCode),
	uint8(DblClickControlModeEditProperties), uint8(DblClickControlModeInherit),
}

// DesignExtender is the design-time-only persisted sibling of a
// FormControl, spec §4.8. It never affects runtime rendering; callers that
// don't care about design-time UI state can ignore it entirely. Grounded on
// controls/user_form/designex.rs's DesignExtender struct — the source
// declares the struct but no parser, so the field layout here is authored
// directly from that struct: a flat, non-padding record in declaration
// order (BitFlags, ClickControlMode, DblClickControlMode, GridX, GridY),
// following the same flat-record convention as StdFont and CompObj.
type DesignExtender struct {
	BitFlags            DXMode
	ClickControlMode    ClickControlMode
	DblClickControlMode DblClickControlMode
	GridX               int32
	GridY               int32
}

// defaultDesignExtender is DesignExtender's file format default, used by
// callers that need a value without a persisted stream to read.
var defaultDesignExtender = DesignExtender{
	BitFlags:            dxModeDefault,
	ClickControlMode:    ClickControlModeInsertionPoint,
	DblClickControlMode: DblClickControlModeSelectText,
}

// ParseDesignExtender decodes a DesignExtender record from buf. Callers
// invoke this explicitly — it is never called from parseFormControl — when
// FormFlagDesignExtenderPersisted is set and a design-time host cares about
// the extra state; a runtime-only reader of the form stream can skip it.
func ParseDesignExtender(buf []byte) (DesignExtender, error) {
	c := newCursor(buf)
	const record = "DesignExtender"

	var dx DesignExtender

	bits, err := c.rawU32(record, "bit_flags")
	if err != nil {
		return DesignExtender{}, err
	}
	dx.BitFlags = DXMode(bits)

	click, err := c.variantU8(clickControlModeValues, record, "click_control_mode")
	if err != nil {
		return DesignExtender{}, err
	}
	dx.ClickControlMode = ClickControlMode(int8(click))

	dblClick, err := c.variantU8(dblClickControlModeValues, record, "double_click_control_mode")
	if err != nil {
		return DesignExtender{}, err
	}
	dx.DblClickControlMode = DblClickControlMode(dblClick)

	if dx.GridX, err = c.rawI32(record, "grid_x"); err != nil {
		return DesignExtender{}, err
	}
	if dx.GridY, err = c.rawI32(record, "grid_y"); err != nil {
		return DesignExtender{}, err
	}

	return dx, nil
}
