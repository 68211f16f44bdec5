// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

import "testing"

func TestParseDesignExtender(t *testing.T) {
	buf := []byte{
		0x55, 0x5F, 0x01, 0x00, // bit_flags = 0x00015F55
		0x00,                   // click_control_mode = InsertionPoint
		0x00,                   // double_click_control_mode = SelectText
		0x0A, 0x00, 0x00, 0x00, // grid_x = 10
		0x14, 0x00, 0x00, 0x00, // grid_y = 20
	}
	got, err := ParseDesignExtender(buf)
	if err != nil {
		t.Fatalf("ParseDesignExtender() failed: %v", err)
	}
	want := DesignExtender{
		BitFlags:            0x00015F55,
		ClickControlMode:    ClickControlModeInsertionPoint,
		DblClickControlMode: DblClickControlModeSelectText,
		GridX:               10,
		GridY:               20,
	}
	if got != want {
		t.Errorf("ParseDesignExtender() = %+v, want %+v", got, want)
	}
}

func TestParseDesignExtenderRejectsUnknownClickMode(t *testing.T) {
	buf := []byte{
		0x00, 0x00, 0x00, 0x00,
		0x7F, // not a declared ClickControlMode value
		0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	if _, err := ParseDesignExtender(buf); err == nil {
		t.Fatal("ParseDesignExtender() should reject an unrecognized click control mode")
	}
}

func TestParseDesignExtenderInheritModes(t *testing.T) {
	buf := []byte{
		0x00, 0x00, 0x00, 0x00,
		0xFE, // ClickControlMode::Inherit as int8 is -2, but 0xFE as a byte is the
		// DblClickControlMode Inherit sentinel; ClickControlMode's own
		// Inherit value is 0xFE interpreted as int8 == -2.
		0xFE, // double_click_control_mode = Inherit
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	got, err := ParseDesignExtender(buf)
	if err != nil {
		t.Fatalf("ParseDesignExtender() failed: %v", err)
	}
	if got.ClickControlMode != ClickControlModeInherit {
		t.Errorf("ClickControlMode = %v, want ClickControlModeInherit", got.ClickControlMode)
	}
	if got.DblClickControlMode != DblClickControlModeInherit {
		t.Errorf("DblClickControlMode = %v, want DblClickControlModeInherit", got.DblClickControlMode)
	}
}
