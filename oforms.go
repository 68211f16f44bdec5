// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package oforms decodes the MS-OFORMS binary persistence format for
// VBA/ActiveX UserForms: the FormControl stream ("f"), its per-site
// records in the object stream ("o"), and the sibling "\001CompObj"
// stream. CFB container access, rendering, and picture/icon decoding are
// out of scope; see Container.
package oforms

import (
	"errors"

	"github.com/oforms-go/oforms/internal/log"
)

// defaultMaxSites is a sanity cap: a malformed count_of_sites should not
// make the decoder allocate unbounded memory.
const defaultMaxSites = 1 << 16

// ErrTooManySites is returned when a FormControl declares more sites than
// Options.MaxSites allows.
var ErrTooManySites = errors.New("oforms: form declares more sites than MaxSites permits")

// Options configures a File.
type Options struct {
	// Logger receives soft-failure and diagnostic messages. Defaults to a
	// stderr logger filtered to LevelError.
	Logger log.Logger

	// Strict, when true, is reserved for future relaxation of the closed
	// enum/bitflag rejection this decoder otherwise always applies; it has
	// no effect (see DESIGN.md's Façade section).
	Strict bool

	// MaxSites caps FormControl.Sites, default defaultMaxSites.
	MaxSites int
}

func (o *Options) maxSites() int {
	if o == nil || o.MaxSites == 0 {
		return defaultMaxSites
	}
	return o.MaxSites
}

// File is a decoded MS-OFORMS UserForm: its CompObj identity, its form
// properties and embedded-control sites, and a handle to the container's
// object stream for on-demand per-control decoding.
type File struct {
	CompObj CompObj
	Form    FormControl

	container Container
	opts      *Options
	logger    *log.Helper
}

// streamNameForm, streamNameObjects, and streamNameCompObj are the three
// CFB streams spec §1 names.
const (
	streamNameForm    = "f"
	streamNameObjects = "o"
	streamNameCompObj = "\x01CompObj"
)

// New opens a UserForm persisted as a directory of extracted CFB streams
// (see DirContainer) and fully decodes its CompObj and FormControl.
func New(dir string, opts *Options) (*File, error) {
	return Open(NewDirContainer(dir), opts)
}

// Open decodes a UserForm from an already-constructed Container, the seam
// a real CFB library plugs into (spec §1's "external collaborator").
func Open(container Container, opts *Options) (*File, error) {
	f := &File{container: container, opts: opts}

	if opts == nil {
		f.opts = &Options{}
	}
	if f.opts.Logger == nil {
		f.logger = log.NewStderrHelper()
	} else {
		f.logger = log.NewHelper(f.opts.Logger)
	}

	if err := f.Parse(); err != nil {
		return nil, err
	}
	return f, nil
}

// Parse (re-)decodes the CompObj and FormControl streams from the
// container. New/Open call this automatically; it is exported so a
// caller building a File by hand (e.g. in tests) can drive it directly.
func (f *File) Parse() error {
	compObjBuf, err := f.container.ReadStream(streamNameCompObj)
	if err != nil {
		return err
	}
	compObj, err := parseCompObj(compObjBuf)
	if err != nil {
		return err
	}
	f.CompObj = compObj

	formBuf, err := f.container.ReadStream(streamNameForm)
	if err != nil {
		return err
	}
	form, err := parseFormControl(formBuf, uint32(f.opts.maxSites()))
	if err != nil {
		return err
	}
	for _, a := range form.Anomalies {
		f.logger.Warnf("form control anomaly: %s", a)
	}
	f.Form = form

	return nil
}

// Sites returns a SiteIterator over the decoded form's embedded controls,
// lending bounded readers over the object stream ("o") as it goes.
func (f *File) Sites() (*SiteIterator, error) {
	stream, err := f.container.OpenStream(streamNameObjects)
	if err != nil {
		return nil, err
	}
	return NewSiteIterator(&f.Form, stream, stream.Len()), nil
}

// Close releases any resources (e.g. memory maps) held by the underlying
// container, if it supports that.
func (f *File) Close() error {
	if c, ok := f.container.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
