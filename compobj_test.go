// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

import (
	"encoding/binary"
	"testing"
)

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func TestParseCompObj(t *testing.T) {
	userType := "Microsoft DDS Form 2.0\x00"
	clipboardName := "Embedded Object\x00"

	buf := make([]byte, compObjHeaderLen)
	buf = append(buf, u32le(uint32(len(userType)))...)
	buf = append(buf, userType...)
	buf = append(buf, u32le(uint32(len(clipboardName)))...)
	buf = append(buf, clipboardName...)

	got, err := parseCompObj(buf)
	if err != nil {
		t.Fatalf("parseCompObj() failed: %v", err)
	}
	if got.AnsiUserType != "Microsoft DDS Form 2.0" {
		t.Errorf("AnsiUserType = %q, want %q", got.AnsiUserType, "Microsoft DDS Form 2.0")
	}
	if got.ClipboardFormat.Kind != ClipboardFormatCustom {
		t.Fatalf("ClipboardFormat.Kind = %v, want ClipboardFormatCustom", got.ClipboardFormat.Kind)
	}
	if string(got.ClipboardFormat.Custom) != "Embedded Object" {
		t.Errorf("ClipboardFormat.Custom = %q, want %q", got.ClipboardFormat.Custom, "Embedded Object")
	}
}

func TestParseCompObjStandardClipboardFormat(t *testing.T) {
	userType := "x\x00"
	buf := make([]byte, compObjHeaderLen)
	buf = append(buf, u32le(uint32(len(userType)))...)
	buf = append(buf, userType...)
	buf = append(buf, []byte{0xFE, 0xFF, 0xFF, 0xFF}...) // marker 0xFFFFFFFE
	buf = append(buf, u32le(3)...)                       // standard format id

	got, err := parseCompObj(buf)
	if err != nil {
		t.Fatalf("parseCompObj() failed: %v", err)
	}
	if got.ClipboardFormat.Kind != ClipboardFormatStandard {
		t.Fatalf("ClipboardFormat.Kind = %v, want ClipboardFormatStandard", got.ClipboardFormat.Kind)
	}
	if got.ClipboardFormat.Standard != 3 {
		t.Errorf("ClipboardFormat.Standard = %d, want 3", got.ClipboardFormat.Standard)
	}
}

func TestParseCompObjRejectsMissingNulTerminator(t *testing.T) {
	userType := "no-nul"
	buf := make([]byte, compObjHeaderLen)
	buf = append(buf, u32le(uint32(len(userType)))...)
	buf = append(buf, userType...)
	if _, err := parseCompObj(buf); err == nil {
		t.Fatal("parseCompObj() should reject a user-type string without a trailing NUL")
	}
}

func TestParseCompObjRejectsCustomClipboardFormatMissingNulTerminator(t *testing.T) {
	userType := "x\x00"
	clipboardName := "no-nul"

	buf := make([]byte, compObjHeaderLen)
	buf = append(buf, u32le(uint32(len(userType)))...)
	buf = append(buf, userType...)
	buf = append(buf, u32le(uint32(len(clipboardName)))...)
	buf = append(buf, clipboardName...)

	if _, err := parseCompObj(buf); err == nil {
		t.Fatal("parseCompObj() should reject a custom clipboard format name without a trailing NUL")
	}
}
