// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestResolveControlKindClassTable(t *testing.T) {
	classTable := []SiteClassInfo{{ClsID: GUIDStdFont}, {ClsID: GUIDStdPicture}}
	idx := ClsidCacheIndex{Kind: ClsidCacheClassTable, Index: 1}
	got, err := resolveControlKind(idx, classTable)
	if err != nil {
		t.Fatalf("resolveControlKind() failed: %v", err)
	}
	if got.Tag != ControlKindClassTable {
		t.Fatalf("Tag = %v, want ControlKindClassTable", got.Tag)
	}
	if got.ClassInfo != &classTable[1] {
		t.Errorf("ClassInfo = %p, want %p", got.ClassInfo, &classTable[1])
	}
}

func TestResolveControlKindClassTableOutOfRange(t *testing.T) {
	classTable := []SiteClassInfo{{}}
	idx := ClsidCacheIndex{Kind: ClsidCacheClassTable, Index: 5}
	if _, err := resolveControlKind(idx, classTable); !errors.Is(err, ErrClassTableIndexOutOfRange) {
		t.Errorf("err = %v, want ErrClassTableIndexOutOfRange", err)
	}
}

func TestResolveControlKindGlobal(t *testing.T) {
	idx := ClsidCacheIndex{Kind: ClsidCacheGlobal, Index: 17}
	got, err := resolveControlKind(idx, nil)
	if err != nil {
		t.Fatalf("resolveControlKind() failed: %v", err)
	}
	if got.Tag != ControlKindGlobal || got.Cached != CachedControlCommandButton {
		t.Errorf("got = %+v, want Global/CommandButton", got)
	}
}

func TestResolveControlKindUnknownGlobal(t *testing.T) {
	idx := ClsidCacheIndex{Kind: ClsidCacheGlobal, Index: 9999}
	if _, err := resolveControlKind(idx, nil); !errors.Is(err, ErrUnknownCachedControl) {
		t.Errorf("err = %v, want ErrUnknownCachedControl", err)
	}
}

func TestResolveControlKindInvalid(t *testing.T) {
	idx := ClsidCacheIndex{Kind: ClsidCacheInvalid}
	if _, err := resolveControlKind(idx, nil); !errors.Is(err, ErrInvalidClsidCacheIndex) {
		t.Errorf("err = %v, want ErrInvalidClsidCacheIndex", err)
	}
}

func TestSiteIteratorNextAndSiteStream(t *testing.T) {
	fc := &FormControl{
		Sites: []Site{
			{Depth: 0, Ole: OleSiteConcrete{ObjectStreamSize: 4, ClsidCacheIndex: ClsidCacheIndex{Kind: ClsidCacheGlobal, Index: 17}}},
			{Depth: 1, Ole: OleSiteConcrete{ObjectStreamSize: 6, ClsidCacheIndex: ClsidCacheIndex{Kind: ClsidCacheGlobal, Index: 23}}},
		},
	}
	stream := bytes.NewReader([]byte("0123456789"))
	it := NewSiteIterator(fc, stream, 10)

	entry, ok, err := it.Next()
	if err != nil || !ok {
		t.Fatalf("Next() = (%+v, %v, %v)", entry, ok, err)
	}
	if entry.Control.Cached != CachedControlCommandButton {
		t.Errorf("Control.Cached = %v, want CommandButton", entry.Control.Cached)
	}
	r, err := it.SiteStream()
	if err != nil {
		t.Fatalf("SiteStream() failed: %v", err)
	}
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		t.Fatalf("ReadFull() failed: %v", err)
	}
	if string(buf) != "0123" {
		t.Errorf("site stream = %q, want 0123", buf)
	}

	entry, ok, err = it.Next()
	if err != nil || !ok {
		t.Fatalf("Next() = (%+v, %v, %v)", entry, ok, err)
	}
	if entry.Control.Cached != CachedControlTextBox {
		t.Errorf("Control.Cached = %v, want TextBox", entry.Control.Cached)
	}

	_, ok, err = it.Next()
	if err != nil {
		t.Fatalf("final Next() returned error: %v", err)
	}
	if ok {
		t.Fatal("final Next() should report ok=false")
	}
}

func TestSiteIteratorObjectStreamSizeMismatch(t *testing.T) {
	fc := &FormControl{
		Sites: []Site{
			{Ole: OleSiteConcrete{ObjectStreamSize: 4, ClsidCacheIndex: ClsidCacheIndex{Kind: ClsidCacheGlobal, Index: 17}}},
		},
	}
	stream := bytes.NewReader([]byte("0123456789"))
	it := NewSiteIterator(fc, stream, 10)

	if _, _, err := it.Next(); err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	if _, _, err := it.Next(); !errors.Is(err, ErrObjectStreamSizeMismatch) {
		t.Errorf("err = %v, want ErrObjectStreamSizeMismatch", err)
	}
}

func TestSiteStreamBeforeNext(t *testing.T) {
	it := NewSiteIterator(&FormControl{}, bytes.NewReader(nil), 0)
	if _, err := it.SiteStream(); err == nil {
		t.Fatal("SiteStream() before Next() should return an error")
	}
}
