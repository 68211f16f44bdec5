// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

import "io"

// CachedControlKind names a globally-known ActiveX control identifier from
// the cached-control enumeration, spec §6. Grounded on the MS-OFORMS
// control type table; no corresponding enumeration survives in the
// retrieved source, so the values below are authored directly from the
// MS-OFORMS field table.
type CachedControlKind uint16

// CachedControlKind values.
const (
	CachedControlForm          CachedControlKind = 7
	CachedControlImage         CachedControlKind = 12
	CachedControlFrame         CachedControlKind = 14
	CachedControlMorphData     CachedControlKind = 15
	CachedControlSpinButton    CachedControlKind = 16
	CachedControlCommandButton CachedControlKind = 17
	CachedControlTabStrip      CachedControlKind = 18
	CachedControlLabel         CachedControlKind = 21
	CachedControlTextBox       CachedControlKind = 23
	CachedControlListBox       CachedControlKind = 24
	CachedControlComboBox      CachedControlKind = 25
	CachedControlCheckBox      CachedControlKind = 26
	CachedControlOptionButton  CachedControlKind = 27
	CachedControlToggleButton  CachedControlKind = 28
	CachedControlScrollBar     CachedControlKind = 47
	CachedControlMultiPage     CachedControlKind = 57
)

func (k CachedControlKind) String() string {
	switch k {
	case CachedControlForm:
		return "Form"
	case CachedControlImage:
		return "Image"
	case CachedControlFrame:
		return "Frame"
	case CachedControlMorphData:
		return "MorphData"
	case CachedControlSpinButton:
		return "SpinButton"
	case CachedControlCommandButton:
		return "CommandButton"
	case CachedControlTabStrip:
		return "TabStrip"
	case CachedControlLabel:
		return "Label"
	case CachedControlTextBox:
		return "TextBox"
	case CachedControlListBox:
		return "ListBox"
	case CachedControlComboBox:
		return "ComboBox"
	case CachedControlCheckBox:
		return "CheckBox"
	case CachedControlOptionButton:
		return "OptionButton"
	case CachedControlToggleButton:
		return "ToggleButton"
	case CachedControlScrollBar:
		return "ScrollBar"
	case CachedControlMultiPage:
		return "MultiPage"
	default:
		return "Unknown"
	}
}

var cachedControlByIndex = map[uint16]CachedControlKind{
	7:  CachedControlForm,
	12: CachedControlImage,
	14: CachedControlFrame,
	15: CachedControlMorphData,
	16: CachedControlSpinButton,
	17: CachedControlCommandButton,
	18: CachedControlTabStrip,
	21: CachedControlLabel,
	23: CachedControlTextBox,
	24: CachedControlListBox,
	25: CachedControlComboBox,
	26: CachedControlCheckBox,
	27: CachedControlOptionButton,
	28: CachedControlToggleButton,
	47: CachedControlScrollBar,
	57: CachedControlMultiPage,
}

// ControlKindTag discriminates ControlKind's resolved meaning.
type ControlKindTag int

// ControlKindTag values.
const (
	ControlKindClassTable ControlKindTag = iota
	ControlKindGlobal
)

// ControlKind is a site's resolved control identity: either a reference
// into the form's own class table (a non-cached ActiveX control) or a
// value from the global cached-control enumeration.
type ControlKind struct {
	Tag       ControlKindTag
	ClassInfo *SiteClassInfo    // valid when Tag is ControlKindClassTable
	Cached    CachedControlKind // valid when Tag is ControlKindGlobal
}

// resolveControlKind resolves a site's ClsidCacheIndex into a ControlKind.
// Invalid is always a caller-observable error: the bytes decoded cleanly,
// but the value they encode cannot be resolved to a control identity.
func resolveControlKind(idx ClsidCacheIndex, classTable []SiteClassInfo) (ControlKind, error) {
	switch idx.Kind {
	case ClsidCacheInvalid:
		return ControlKind{}, ErrInvalidClsidCacheIndex
	case ClsidCacheClassTable:
		if int(idx.Index) >= len(classTable) {
			return ControlKind{}, ErrClassTableIndexOutOfRange
		}
		return ControlKind{Tag: ControlKindClassTable, ClassInfo: &classTable[idx.Index]}, nil
	default: // ClsidCacheGlobal
		kind, ok := cachedControlByIndex[idx.Index]
		if !ok {
			return ControlKind{}, ErrUnknownCachedControl
		}
		return ControlKind{Tag: ControlKindGlobal, Cached: kind}, nil
	}
}

// SiteEntry is one site yielded by SiteIterator.Next.
type SiteEntry struct {
	Depth   uint8
	Site    OleSiteConcrete
	Control ControlKind
}

// SiteIterator walks a FormControl's decoded sites in document order,
// resolving each one's control kind and lending a bounded reader over its
// slice of the object stream. Grounded on spec §4.7: the iterator holds
// the decoded site array and class-info array by reference, and advances
// a running [start, end) range over the object stream by each site's
// ObjectStreamSize.
type SiteIterator struct {
	sites      []Site
	classTable []SiteClassInfo
	stream     io.ReaderAt
	streamLen  int64

	idx           int
	pos           int64
	lastStart     int64
	lastEnd       int64
	haveLastRange bool
}

// NewSiteIterator constructs a SiteIterator over a decoded FormControl and
// a seekable object stream ("o") of the given length.
func NewSiteIterator(fc *FormControl, objectStream io.ReaderAt, objectStreamLen int64) *SiteIterator {
	return &SiteIterator{
		sites:      fc.Sites,
		classTable: fc.SiteClasses,
		stream:     objectStream,
		streamLen:  objectStreamLen,
	}
}

// Next returns the next site, or ok=false once every site has been
// visited. Once exhausted, it additionally validates that the running sum
// of ObjectStreamSize matched the object stream's length (spec §7,
// universal property 8); a mismatch is reported as an error on that final
// call rather than silently ignored.
func (it *SiteIterator) Next() (SiteEntry, bool, error) {
	if it.idx >= len(it.sites) {
		if it.pos != it.streamLen {
			return SiteEntry{}, false, ErrObjectStreamSizeMismatch
		}
		return SiteEntry{}, false, nil
	}

	s := it.sites[it.idx]
	ck, err := resolveControlKind(s.Ole.ClsidCacheIndex, it.classTable)
	if err != nil {
		return SiteEntry{}, false, err
	}

	it.lastStart = it.pos
	it.lastEnd = it.pos + int64(s.Ole.ObjectStreamSize)
	it.haveLastRange = true
	it.pos = it.lastEnd
	it.idx++

	return SiteEntry{Depth: s.Depth, Site: s.Ole, Control: ck}, true, nil
}

// errNoCurrentSite is returned by SiteStream when called before the first
// successful call to Next.
var errNoCurrentSite = decodeErrNoCurrentSite{}

type decodeErrNoCurrentSite struct{}

func (decodeErrNoCurrentSite) Error() string {
	return "oforms: SiteStream called with no current site"
}

// SiteStream returns a reader bounded to the most recently yielded site's
// slice of the object stream, as described by spec §4.7's companion
// site_stream() method.
func (it *SiteIterator) SiteStream() (*io.SectionReader, error) {
	if !it.haveLastRange {
		return nil, errNoCurrentSite
	}
	return io.NewSectionReader(it.stream, it.lastStart, it.lastEnd-it.lastStart), nil
}
