// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

// CommandButton is the decoded per-control body of a CommandButton site,
// spec §4.6. Grounded on controls/command_button.rs, which implements
// only ForeColor/BackColor; the remaining fields are grounded directly on
// the MS-OFORMS field list spec §4.6 names, laid out the same way
// FormControl lays out its own fixed/extra-data/stream-data split since
// no fuller reference decoder survives in this pack. PicturePosition,
// VariousPropertyBits, and Accelerator have no closed enumeration grounded
// anywhere in this pack (spec §9's closed-enum list omits them), so they
// are carried as plain byte values rather than named enums.
type CommandButton struct {
	ForeColor           OleColor
	BackColor           OleColor
	VariousPropertyBits uint8
	Caption             string
	PicturePosition     uint8
	Size                Size
	MousePointer        MousePointer
	Picture             GuidAndPicture
	Accelerator         uint8
	TakeFocusOnClick    bool
	MouseIcon           GuidAndPicture
}

var commandButtonHeaderMagic = []byte{0x00, 0x02}

// parseCommandButton decodes a complete CommandButton record. The header's
// byte count is authoritative: the body is parsed within a bounded,
// independently-aligned sub-cursor.
func parseCommandButton(c *cursor) (CommandButton, error) {
	const record = "CommandButton"

	if err := c.expectMagic(commandButtonHeaderMagic, record); err != nil {
		return CommandButton{}, err
	}
	cb, err := c.rawU16(record, "cb_button")
	if err != nil {
		return CommandButton{}, err
	}
	sub, err := c.sub(uint32(cb), record, "body")
	if err != nil {
		return CommandButton{}, err
	}
	return parseCommandButtonBody(sub)
}

func parseCommandButtonBody(c *cursor) (CommandButton, error) {
	const record = "CommandButton"

	mask, err := c.bitfield32(uint32(commandButtonPropMaskKnown), record, "mask")
	if err != nil {
		return CommandButton{}, err
	}
	m := CommandButtonPropMask(mask)

	var cbtn CommandButton
	cbtn.TakeFocusOnClick = !m.Has(CommandButtonPropMaskTakeFocusOnClick)

	if m.Has(CommandButtonPropMaskForeColor) {
		if cbtn.ForeColor, err = c.oleColor(record, "fore_color"); err != nil {
			return CommandButton{}, err
		}
	} else {
		cbtn.ForeColor = OleColorBtnText
	}
	if m.Has(CommandButtonPropMaskBackColor) {
		if cbtn.BackColor, err = c.oleColor(record, "back_color"); err != nil {
			return CommandButton{}, err
		}
	} else {
		cbtn.BackColor = OleColorBtnFace
	}
	if m.Has(CommandButtonPropMaskVariousPropertyBits) {
		if cbtn.VariousPropertyBits, err = c.u8(record, "various_property_bits"); err != nil {
			return CommandButton{}, err
		}
	}
	var captionLen lengthAndCompression
	if m.Has(CommandButtonPropMaskCaption) {
		if captionLen, err = c.lengthAndCompression(record, "caption"); err != nil {
			return CommandButton{}, err
		}
	}
	if m.Has(CommandButtonPropMaskPicturePosition) {
		if cbtn.PicturePosition, err = c.u8(record, "picture_position"); err != nil {
			return CommandButton{}, err
		}
	}
	if m.Has(CommandButtonPropMaskMousePointer) {
		v, err := c.variantU8(mousePointerValues, record, "mouse_pointer")
		if err != nil {
			return CommandButton{}, err
		}
		cbtn.MousePointer = MousePointer(v)
	} else {
		cbtn.MousePointer = MousePointerDefault
	}
	if m.Has(CommandButtonPropMaskPicture) {
		if err := c.expectPlaceholder(0xFFFF, record, "picture_placeholder"); err != nil {
			return CommandButton{}, err
		}
	}
	if m.Has(CommandButtonPropMaskAccelerator) {
		if cbtn.Accelerator, err = c.u8(record, "accelerator"); err != nil {
			return CommandButton{}, err
		}
	}
	if m.Has(CommandButtonPropMaskMouseIcon) {
		if err := c.expectPlaceholder(0xFFFF, record, "mouse_icon_placeholder"); err != nil {
			return CommandButton{}, err
		}
	}

	if err := c.align(4, record, "extra_data_block"); err != nil {
		return CommandButton{}, err
	}

	if m.Has(CommandButtonPropMaskSize) {
		if cbtn.Size, err = c.size(record, "size"); err != nil {
			return CommandButton{}, err
		}
	}
	if m.Has(CommandButtonPropMaskCaption) {
		if cbtn.Caption, err = c.fmString(captionLen, record, "caption"); err != nil {
			return CommandButton{}, err
		}
	}

	cbtn.Picture = emptyGuidAndPicture
	cbtn.MouseIcon = emptyGuidAndPicture

	return cbtn, nil
}
