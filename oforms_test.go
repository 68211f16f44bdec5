// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

import (
	"os"
	"path/filepath"
	"testing"
)

func minimalFormControlBytes() []byte {
	var buf []byte
	buf = append(buf, 0x00, 0x04) // magic
	buf = append(buf, 0x00, 0x00) // cb_form (unused)
	buf = append(buf, u32le(0)...) // mask = 0
	buf = append(buf, u16le(0)...) // count_of_site_class_info = 0
	buf = append(buf, 0x00, 0x00)  // pad to 4
	buf = append(buf, u32le(0)...) // count_of_sites = 0
	buf = append(buf, u32le(0)...) // count_of_bytes = 0
	return buf
}

func minimalCompObjBytes() []byte {
	var buf []byte
	buf = append(buf, make([]byte, compObjHeaderLen)...)
	buf = append(buf, u32le(1)...)
	buf = append(buf, 0x00) // user type: empty, NUL terminator only
	buf = append(buf, u32le(0)...) // clipboard format: None
	return buf
}

func writeStream(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("WriteFile(%s) failed: %v", name, err)
	}
}

func TestNewParsesMinimalUserForm(t *testing.T) {
	dir := t.TempDir()
	writeStream(t, dir, "f", minimalFormControlBytes())
	writeStream(t, dir, "o", nil)
	writeStream(t, dir, "\x01CompObj", minimalCompObjBytes())

	f, err := New(dir, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer f.Close()

	if f.CompObj.AnsiUserType != "" {
		t.Errorf("AnsiUserType = %q, want empty", f.CompObj.AnsiUserType)
	}
	if f.CompObj.ClipboardFormat.Kind != ClipboardFormatNone {
		t.Errorf("ClipboardFormat.Kind = %v, want ClipboardFormatNone", f.CompObj.ClipboardFormat.Kind)
	}
	if len(f.Form.Sites) != 0 {
		t.Errorf("len(Sites) = %d, want 0", len(f.Form.Sites))
	}
	if f.Form.Zoom != 100 {
		t.Errorf("Zoom = %d, want 100 (default)", f.Form.Zoom)
	}

	it, err := f.Sites()
	if err != nil {
		t.Fatalf("Sites() failed: %v", err)
	}
	_, ok, err := it.Next()
	if err != nil {
		t.Fatalf("Next() failed on an empty site list: %v", err)
	}
	if ok {
		t.Error("Next() should report ok=false for an empty site list")
	}
}

func TestOptionsMaxSitesDefault(t *testing.T) {
	var o *Options
	if got := o.maxSites(); got != defaultMaxSites {
		t.Errorf("nil Options.maxSites() = %d, want %d", got, defaultMaxSites)
	}
	o = &Options{MaxSites: 3}
	if got := o.maxSites(); got != 3 {
		t.Errorf("Options{MaxSites:3}.maxSites() = %d, want 3", got)
	}
}
