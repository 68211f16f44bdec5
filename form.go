// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

// Size is a pair of unsigned HIMETRIC dimensions.
type Size struct {
	Width, Height uint32
}

// Position is a pair of signed HIMETRIC offsets from a reference point,
// read off the wire left-before-top (spec §2 Open Question: Position's
// on-disk order is left-then-top, matching the most recent grounding
// source even though the field's declared struct order elsewhere lists
// top before left).
type Position struct {
	Left, Top int32
}

func (c *cursor) size(record, field string) (Size, error) {
	w, err := c.u32(record, field+"_width")
	if err != nil {
		return Size{}, err
	}
	h, err := c.u32(record, field+"_height")
	if err != nil {
		return Size{}, err
	}
	return Size{Width: w, Height: h}, nil
}

func (c *cursor) position(record, field string) (Position, error) {
	left, err := c.i32(record, field+"_left")
	if err != nil {
		return Position{}, err
	}
	top, err := c.i32(record, field+"_top")
	if err != nil {
		return Position{}, err
	}
	return Position{Left: left, Top: top}, nil
}

// BorderStyle is a closed 1-bit enumeration.
type BorderStyle uint8

// BorderStyle values.
const (
	BorderStyleNone   BorderStyle = 0x00
	BorderStyleSingle BorderStyle = 0x01
)

var borderStyleValues = []uint8{uint8(BorderStyleNone), uint8(BorderStyleSingle)}

// Cycle specifies TAB-key behavior in the last control of a form, a
// closed enumeration.
type Cycle uint8

// Cycle values.
const (
	CycleAllForms   Cycle = 0x00
	CycleCurrentForm Cycle = 0x02
)

var cycleValues = []uint8{uint8(CycleAllForms), uint8(CycleCurrentForm)}

// FormScrollBarFlags is an 8-bit flag set controlling a form's scroll bars.
type FormScrollBarFlags uint8

// FormScrollBarFlags bits.
const (
	FormScrollBarHorizontal     FormScrollBarFlags = 0x01
	FormScrollBarVertical       FormScrollBarFlags = 0x02
	FormScrollBarKeepHorizontal FormScrollBarFlags = 0x04
	FormScrollBarKeepVertical   FormScrollBarFlags = 0x08
	FormScrollBarKeepLeft       FormScrollBarFlags = 0x10

	formScrollBarKnown = FormScrollBarHorizontal | FormScrollBarVertical | FormScrollBarKeepHorizontal |
		FormScrollBarKeepVertical | FormScrollBarKeepLeft

	// FormScrollBarDefault is the file format default: both scroll bars
	// always shown.
	FormScrollBarDefault = FormScrollBarKeepHorizontal | FormScrollBarKeepVertical
)

// FormFlags is a 32-bit Boolean-property flag set for a form.
type FormFlags uint32

// FormFlags bits.
const (
	FormFlagEnabled            FormFlags = 0x00000004
	FormFlagDesignExtenderPersisted FormFlags = 0x00004000
	FormFlagDontSaveClassTable FormFlags = 0x00008000

	formFlagsKnown = FormFlagEnabled | FormFlagDesignExtenderPersisted | FormFlagDontSaveClassTable
)

// Has reports whether every bit in mask is set.
func (f FormFlags) Has(mask FormFlags) bool { return f&mask == mask }

// MousePointer is a closed enumeration of mouse cursor shapes.
type MousePointer uint8

// MousePointer values.
const (
	MousePointerDefault     MousePointer = 0x00
	MousePointerArrow       MousePointer = 0x01
	MousePointerCross       MousePointer = 0x02
	MousePointerIBeam       MousePointer = 0x03
	MousePointerSizeNESW    MousePointer = 0x06
	MousePointerSizeNS      MousePointer = 0x07
	MousePointerSizeNWSE    MousePointer = 0x08
	MousePointerSizeWE      MousePointer = 0x09
	MousePointerUpArrow     MousePointer = 0x0A
	MousePointerHourGlass   MousePointer = 0x0B
	MousePointerNoDrop      MousePointer = 0x0C
	MousePointerAppStarting MousePointer = 0x0D
	MousePointerHelp        MousePointer = 0x0E
	MousePointerSizeAll     MousePointer = 0x0F
	MousePointerCustom      MousePointer = 0x63
)

var mousePointerValues = []uint8{
	uint8(MousePointerDefault), uint8(MousePointerArrow), uint8(MousePointerCross), uint8(MousePointerIBeam),
	uint8(MousePointerSizeNESW), uint8(MousePointerSizeNS), uint8(MousePointerSizeNWSE), uint8(MousePointerSizeWE),
	uint8(MousePointerUpArrow), uint8(MousePointerHourGlass), uint8(MousePointerNoDrop),
	uint8(MousePointerAppStarting), uint8(MousePointerHelp), uint8(MousePointerSizeAll), uint8(MousePointerCustom),
}

// SpecialEffect is a closed enumeration of 3D border appearances.
type SpecialEffect uint8

// SpecialEffect values.
const (
	SpecialEffectFlat   SpecialEffect = 0x00
	SpecialEffectRaised SpecialEffect = 0x01
	SpecialEffectSunken SpecialEffect = 0x02
	SpecialEffectEtched SpecialEffect = 0x03
	SpecialEffectBump   SpecialEffect = 0x06
)

var specialEffectValues = []uint8{
	uint8(SpecialEffectFlat), uint8(SpecialEffectRaised), uint8(SpecialEffectSunken),
	uint8(SpecialEffectEtched), uint8(SpecialEffectBump),
}

// PictureAlignment is a closed enumeration of picture placement within a
// form or image.
type PictureAlignment uint8

// PictureAlignment values.
const (
	PictureAlignmentTopLeft     PictureAlignment = 0x00
	PictureAlignmentTopRight    PictureAlignment = 0x01
	PictureAlignmentCenter      PictureAlignment = 0x02
	PictureAlignmentBottomLeft  PictureAlignment = 0x03
	PictureAlignmentBottomRight PictureAlignment = 0x04
)

var pictureAlignmentValues = []uint8{
	uint8(PictureAlignmentTopLeft), uint8(PictureAlignmentTopRight), uint8(PictureAlignmentCenter),
	uint8(PictureAlignmentBottomLeft), uint8(PictureAlignmentBottomRight),
}

// PictureSizeMode is a closed enumeration of picture scaling behavior.
type PictureSizeMode uint8

// PictureSizeMode values.
const (
	PictureSizeModeClip    PictureSizeMode = 0x00
	PictureSizeModeStretch PictureSizeMode = 0x01
	PictureSizeModeZoom    PictureSizeMode = 0x03
)

var pictureSizeModeValues = []uint8{
	uint8(PictureSizeModeClip), uint8(PictureSizeModeStretch), uint8(PictureSizeModeZoom),
}

// SiteType is a closed enumeration of embedded-site kinds. Only Ole is
// defined by MS-OFORMS.
type SiteType uint8

// SiteType values.
const SiteTypeOle SiteType = 0x01

var siteTypeValues = []uint8{uint8(SiteTypeOle)}

// typeOrCountMask/typeOrCountIsCount decode the packed depth-and-type
// stream's second byte (spec §3/§6): the low 7 bits carry either a type
// value or a repeated-site count, and the high bit distinguishes which.
const (
	typeOrCountMask    uint8 = 0x7F
	typeOrCountIsCount uint8 = 0x80
)

// SiteDepthAndType pairs a tree depth with a resolved SiteType, one entry
// per site, expanded from the packed repeated-count encoding.
type SiteDepthAndType struct {
	Depth uint8
	Type  SiteType
}

// parseSiteDepthsAndTypes reads countOfSites expanded (depth, type) pairs
// from the packed stream: each entry is either a 2-byte {depth, type} for
// a single site, or a 3-byte {depth, 0x80|count, type} run for `count`
// consecutive sites sharing type and depth. The whole list 4-byte aligns
// once at the end, not per entry. Grounded on
// controls/user_form/parser.rs's parse_form_object_depth_type_count and
// parse_site_depths_and_types.
func parseSiteDepthsAndTypes(c *cursor, countOfSites uint32) ([]SiteDepthAndType, error) {
	const record = "SiteDepthAndType"
	result := make([]SiteDepthAndType, 0, countOfSites)
	var seen uint32
	for seen < countOfSites {
		depth, err := c.u8(record, "depth")
		if err != nil {
			return nil, err
		}
		value, err := c.u8(record, "type_or_count")
		if err != nil {
			return nil, err
		}
		typeOrCount := value & typeOrCountMask
		var n uint32
		var siteType uint8
		if value&typeOrCountIsCount != 0 {
			siteType, err = c.variantU8(siteTypeValues, record, "type")
			if err != nil {
				return nil, err
			}
			n = uint32(typeOrCount)
		} else {
			if !containsU8(siteTypeValues, typeOrCount) {
				return nil, newDecodeError(ErrKindUnknownEnum, record, "type", c.logPos-1)
			}
			siteType = typeOrCount
			n = 1
		}
		seen += n
		for i := uint32(0); i < n; i++ {
			result = append(result, SiteDepthAndType{Depth: depth, Type: SiteType(siteType)})
		}
	}
	if err := c.align(4, record, "list"); err != nil {
		return nil, err
	}
	return result, nil
}

func containsU8(vs []uint8, v uint8) bool {
	for _, a := range vs {
		if a == v {
			return true
		}
	}
	return false
}

// Site wraps one embedded control's decoded OleSiteConcrete along with the
// tree depth at which it was declared.
type Site struct {
	Depth uint8
	Ole   OleSiteConcrete
}

// FormControl is the decoded contents of the "f" stream: the root form's
// properties, its class table, and every embedded control site. Grounded
// on controls/form/mod.rs's FormControl and controls/user_form/parser.rs's
// parse_form_control.
type FormControl struct {
	BackColor         OleColor
	ForeColor         OleColor
	NextAvailableID   uint32
	BooleanProperties FormFlags
	BorderStyle       BorderStyle
	MousePointer      MousePointer
	ScrollBars        FormScrollBarFlags
	GroupCount        uint32
	Cycle             Cycle
	SpecialEffect     SpecialEffect
	BorderColor       OleColor
	Caption           string
	MouseIcon         GuidAndPicture
	Font              GuidAndFont
	Picture           GuidAndPicture
	PictureTiling     bool
	Zoom              uint32
	PictureAlignment  PictureAlignment
	PictureSizeMode   PictureSizeMode
	ShapeCookie       uint32
	DrawBuffer        uint32
	DisplayedSize     Size
	LogicalSize       Size
	ScrollPosition    Position
	SiteClasses       []SiteClassInfo
	Sites             []Site

	// Anomalies records non-fatal deviations from the strict wire
	// contract, e.g. a count_of_bytes field that does not match the
	// byte length actually consumed by the depth/type list and sites.
	Anomalies []string
}

var formControlMagic = []byte{0x00, 0x04}

// parseFormControl decodes a complete FormControl record from buf (the
// full contents of the "f" stream, or the portion of it beginning at the
// record header). maxSites bounds count_of_sites before it is used to size
// any allocation, so a malformed or hostile count_of_sites can't force a
// multi-gigabyte allocation ahead of the caller ever seeing the decoded
// site count.
func parseFormControl(buf []byte, maxSites uint32) (FormControl, error) {
	c := newCursor(buf)
	const record = "FormControl"

	if err := c.expectMagic(formControlMagic, record); err != nil {
		return FormControl{}, err
	}
	if _, err := c.rawU16(record, "cb_form"); err != nil {
		return FormControl{}, err
	}

	mask, err := c.bitfield32(uint32(formPropMaskKnown), record, "mask")
	if err != nil {
		return FormControl{}, err
	}
	m := FormPropMask(mask)

	fc := FormControl{PictureTiling: m.Has(FormPropMaskPictureTiling)}

	if m.Has(FormPropMaskBackColor) {
		if fc.BackColor, err = c.oleColor(record, "back_color"); err != nil {
			return FormControl{}, err
		}
	} else {
		fc.BackColor = OleColorBtnFace
	}
	if m.Has(FormPropMaskForeColor) {
		if fc.ForeColor, err = c.oleColor(record, "fore_color"); err != nil {
			return FormControl{}, err
		}
	} else {
		fc.ForeColor = OleColorBtnText
	}
	if m.Has(FormPropMaskNextAvailableID) {
		if fc.NextAvailableID, err = c.u32(record, "next_available_id"); err != nil {
			return FormControl{}, err
		}
	}
	if m.Has(FormPropMaskBooleanProperties) {
		v, err := c.bitfield32(uint32(formFlagsKnown), record, "boolean_properties")
		if err != nil {
			return FormControl{}, err
		}
		fc.BooleanProperties = FormFlags(v)
	} else {
		fc.BooleanProperties = FormFlagEnabled
	}
	if fc.BooleanProperties.Has(FormFlagDesignExtenderPersisted) {
		// parseFormControl never reads the DesignExtender sibling record
		// itself; a caller that needs it calls ParseDesignExtender directly.
		fc.Anomalies = append(fc.Anomalies, AnoDesignExtenderNotConsulted)
	}
	if m.Has(FormPropMaskBorderStyle) {
		v, err := c.variantU8(borderStyleValues, record, "border_style")
		if err != nil {
			return FormControl{}, err
		}
		fc.BorderStyle = BorderStyle(v)
	} else {
		fc.BorderStyle = BorderStyleNone
	}
	if m.Has(FormPropMaskMousePointer) {
		v, err := c.variantU8(mousePointerValues, record, "mouse_pointer")
		if err != nil {
			return FormControl{}, err
		}
		fc.MousePointer = MousePointer(v)
	} else {
		fc.MousePointer = MousePointerDefault
	}
	if m.Has(FormPropMaskScrollBars) {
		v, err := c.bitfield8(uint8(formScrollBarKnown), record, "scroll_bars")
		if err != nil {
			return FormControl{}, err
		}
		fc.ScrollBars = FormScrollBarFlags(v)
	} else {
		fc.ScrollBars = FormScrollBarDefault
	}
	if m.Has(FormPropMaskGroupCnt) {
		if fc.GroupCount, err = c.u32(record, "group_count"); err != nil {
			return FormControl{}, err
		}
	}
	if m.Has(FormPropMaskMouseIcon) {
		if err := c.expectPlaceholder(0xFFFF, record, "mouse_icon_placeholder"); err != nil {
			return FormControl{}, err
		}
	}
	if m.Has(FormPropMaskCycle) {
		v, err := c.variantU8(cycleValues, record, "cycle")
		if err != nil {
			return FormControl{}, err
		}
		fc.Cycle = Cycle(v)
	} else {
		fc.Cycle = CycleAllForms
	}
	if m.Has(FormPropMaskSpecialEffect) {
		v, err := c.variantU8(specialEffectValues, record, "special_effect")
		if err != nil {
			return FormControl{}, err
		}
		fc.SpecialEffect = SpecialEffect(v)
	} else {
		fc.SpecialEffect = SpecialEffectFlat
	}
	if m.Has(FormPropMaskBorderColor) {
		if fc.BorderColor, err = c.oleColor(record, "border_color"); err != nil {
			return FormControl{}, err
		}
	} else {
		fc.BorderColor = OleColorBtnText
	}
	var captionLen lengthAndCompression
	if m.Has(FormPropMaskCaption) {
		if captionLen, err = c.lengthAndCompression(record, "caption"); err != nil {
			return FormControl{}, err
		}
	}
	if m.Has(FormPropMaskFont) {
		if err := c.expectPlaceholder(0xFFFF, record, "font_placeholder"); err != nil {
			return FormControl{}, err
		}
	}
	if m.Has(FormPropMaskPicture) {
		if err := c.expectPlaceholder(0xFFFF, record, "picture_placeholder"); err != nil {
			return FormControl{}, err
		}
	}
	if m.Has(FormPropMaskZoom) {
		if fc.Zoom, err = c.u32(record, "zoom"); err != nil {
			return FormControl{}, err
		}
		if fc.Zoom < 10 || fc.Zoom > 400 {
			return FormControl{}, newDecodeError(ErrKindConstraintViolation, record, "zoom", c.logPos-4)
		}
	} else {
		fc.Zoom = 100
	}
	if m.Has(FormPropMaskPictureAlignment) {
		v, err := c.variantU8(pictureAlignmentValues, record, "picture_alignment")
		if err != nil {
			return FormControl{}, err
		}
		fc.PictureAlignment = PictureAlignment(v)
	} else {
		fc.PictureAlignment = PictureAlignmentCenter
	}
	if m.Has(FormPropMaskPictureSizeMode) {
		v, err := c.variantU8(pictureSizeModeValues, record, "picture_size_mode")
		if err != nil {
			return FormControl{}, err
		}
		fc.PictureSizeMode = PictureSizeMode(v)
	} else {
		fc.PictureSizeMode = PictureSizeModeClip
	}
	if m.Has(FormPropMaskShapeCookie) {
		if fc.ShapeCookie, err = c.u32(record, "shape_cookie"); err != nil {
			return FormControl{}, err
		}
	}
	if m.Has(FormPropMaskDrawBuffer) {
		if fc.DrawBuffer, err = c.u32(record, "draw_buffer"); err != nil {
			return FormControl{}, err
		}
	}

	if err := c.align(4, record, "extra_data_block"); err != nil {
		return FormControl{}, err
	}

	if m.Has(FormPropMaskDisplayedSize) {
		if fc.DisplayedSize, err = c.size(record, "displayed_size"); err != nil {
			return FormControl{}, err
		}
	} else {
		fc.DisplayedSize = Size{Width: 4000, Height: 3000}
	}
	if m.Has(FormPropMaskLogicalSize) {
		if fc.LogicalSize, err = c.size(record, "logical_size"); err != nil {
			return FormControl{}, err
		}
	} else {
		fc.LogicalSize = Size{Width: 4000, Height: 3000}
	}
	if m.Has(FormPropMaskScrollPosition) {
		if fc.ScrollPosition, err = c.position(record, "scroll_position"); err != nil {
			return FormControl{}, err
		}
	}

	if m.Has(FormPropMaskCaption) {
		if fc.Caption, err = c.fmString(captionLen, record, "caption"); err != nil {
			return FormControl{}, err
		}
	}

	// Stream data block: mouse icon, font, picture.
	fc.MouseIcon = emptyGuidAndPicture
	if m.Has(FormPropMaskFont) {
		if fc.Font, err = parseGuidAndFont(c); err != nil {
			return FormControl{}, err
		}
	} else {
		fc.Font = emptyGuidAndFont
	}
	fc.Picture = emptyGuidAndPicture

	var countOfSiteClassInfo uint16
	if !fc.BooleanProperties.Has(FormFlagDontSaveClassTable) {
		if countOfSiteClassInfo, err = c.u16(record, "count_of_site_class_info"); err != nil {
			return FormControl{}, err
		}
	}
	fc.SiteClasses = make([]SiteClassInfo, 0, countOfSiteClassInfo)
	for i := uint16(0); i < countOfSiteClassInfo; i++ {
		sci, err := parseSiteClassInfo(c)
		if err != nil {
			return FormControl{}, err
		}
		fc.SiteClasses = append(fc.SiteClasses, sci)
	}

	countOfSites, err := c.u32(record, "count_of_sites")
	if err != nil {
		return FormControl{}, err
	}
	if countOfSites > maxSites {
		return FormControl{}, ErrTooManySites
	}
	countOfBytes, err := c.u32(record, "count_of_bytes")
	if err != nil {
		return FormControl{}, err
	}
	startLogPos := c.logPos

	depthsAndTypes, err := parseSiteDepthsAndTypes(c, countOfSites)
	if err != nil {
		return FormControl{}, err
	}

	fc.Sites = make([]Site, 0, len(depthsAndTypes))
	for _, dt := range depthsAndTypes {
		switch dt.Type {
		case SiteTypeOle:
			site, err := parseOleSiteConcrete(c)
			if err != nil {
				return FormControl{}, err
			}
			fc.Sites = append(fc.Sites, Site{Depth: dt.Depth, Ole: site})
		default:
			return FormControl{}, newDecodeError(ErrKindUnknownEnum, record, "site_type", c.logPos)
		}
	}

	if consumed := c.logPos - startLogPos; consumed != countOfBytes {
		fc.Anomalies = append(fc.Anomalies, AnoCountOfBytesMismatch)
	}

	return fc, nil
}
