// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

// VarFlags is the [MS-OAUT] VARFLAGS bit-field, used in SiteClassInfo's
// class-level metadata. Treated as a flag set (bitflags), not a closed
// enumeration, for forward compatibility with MS-OAUT additions: all 16
// bits are accepted.
type VarFlags uint16

// VarFlags bits.
const (
	VarFlagReadOnly       VarFlags = 0x1
	VarFlagSource         VarFlags = 0x2
	VarFlagBindable       VarFlags = 0x4
	VarFlagRequestEdit    VarFlags = 0x8
	VarFlagDisplayBind    VarFlags = 0x10
	VarFlagDefaultBind    VarFlags = 0x20
	VarFlagHidden         VarFlags = 0x40
	VarFlagRestricted     VarFlags = 0x80
	VarFlagDefaultCollElm VarFlags = 0x100
	VarFlagUIDefault      VarFlags = 0x200
	VarFlagNonBrowsable   VarFlags = 0x400
	VarFlagReplaceable    VarFlags = 0x800
	VarFlagImmediateBind  VarFlags = 0x1000
)

// Has reports whether all bits of mask are set.
func (f VarFlags) Has(mask VarFlags) bool { return f&mask == mask }

// VarType is the [MS-OAUT] VARIANT type constant (VARENUM) used by
// SiteClassInfo's BindType and ValueType fields. Treated as a flag set
// (bitflags) rather than a closed enumeration, per spec §9's guidance that
// VarType/VarFlags stay open for MS-OAUT forward-compat, unlike the small
// UI enumerations (BorderStyle, Cycle, MousePointer, ...) which are closed.
type VarType uint16

// VarType base types and modifier bits.
const (
	VTEmpty       VarType = 0x0000
	VTNull        VarType = 0x0001
	VTI2          VarType = 0x0002
	VTI4          VarType = 0x0003
	VTR4          VarType = 0x0004
	VTR8          VarType = 0x0005
	VTCY          VarType = 0x0006
	VTDate        VarType = 0x0007
	VTBSTR        VarType = 0x0008
	VTDispatch    VarType = 0x0009
	VTError       VarType = 0x000A
	VTBool        VarType = 0x000B
	VTVariant     VarType = 0x000C
	VTUnknown     VarType = 0x000D
	VTDecimal     VarType = 0x000E
	VTI1          VarType = 0x0010
	VTUI1         VarType = 0x0011
	VTUI2         VarType = 0x0012
	VTUI4         VarType = 0x0013
	VTI8          VarType = 0x0014
	VTUI8         VarType = 0x0015
	VTInt         VarType = 0x0016
	VTUInt        VarType = 0x0017
	VTVoid        VarType = 0x0018
	VTHResult     VarType = 0x0019
	VTPtr         VarType = 0x001A
	VTSafeArray   VarType = 0x001B
	VTCArray      VarType = 0x001C
	VTUserDefined VarType = 0x001D
	VTLPSTR       VarType = 0x001E
	VTLPWSTR      VarType = 0x001F
	VTRecord      VarType = 0x0024
	VTIntPtr      VarType = 0x0025
	VTUIntPtr     VarType = 0x0026
	VTArray       VarType = 0x2000
	VTByRef       VarType = 0x4000
)
