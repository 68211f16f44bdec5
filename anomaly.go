// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the fatal structural errors a decode can produce.
// Every kind here corresponds 1:1 to a failure mode of the MS-OFORMS
// binary layout; there is no local recovery from any of them.
type ErrorKind int

const (
	// ErrKindTruncated means the decoder ran out of input while reading a
	// primitive, a sub-record body, or a length-prefixed payload.
	ErrKindTruncated ErrorKind = iota
	// ErrKindBadMagic means a tag byte sequence at a record header did not
	// match the expected pattern.
	ErrKindBadMagic
	// ErrKindUnknownBits means a bitflag field contained bits outside the
	// declared universe.
	ErrKindUnknownBits
	// ErrKindUnknownEnum means an enum field held an undeclared value.
	ErrKindUnknownEnum
	// ErrKindPlaceholderMismatch means an inline stream placeholder (e.g.
	// 0xFFFF for font/picture/mouse-icon) held an unexpected value.
	ErrKindPlaceholderMismatch
	// ErrKindConstraintViolation means a numeric constraint failed (StdFont
	// height, Zoom range, font-face length, ANSI NUL-termination, ...).
	ErrKindConstraintViolation
	// ErrKindUnknownGUID means a GUID-dispatched sub-record carried an
	// unrecognized class id.
	ErrKindUnknownGUID
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindTruncated:
		return "Truncated"
	case ErrKindBadMagic:
		return "BadMagic"
	case ErrKindUnknownBits:
		return "UnknownBits"
	case ErrKindUnknownEnum:
		return "UnknownEnum"
	case ErrKindPlaceholderMismatch:
		return "PlaceholderMismatch"
	case ErrKindConstraintViolation:
		return "ConstraintViolation"
	case ErrKindUnknownGUID:
		return "UnknownGUID"
	default:
		return "Unknown"
	}
}

// DecodeError is the structured error returned for every fatal decode
// failure: it names the record kind, the field being decoded, the logical
// byte offset at the point of failure, and the underlying cause.
type DecodeError struct {
	Kind   ErrorKind
	Record string
	Field  string
	Offset uint32
	Cause  error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("oforms: %s: %s.%s at offset %d: %v",
			e.Kind, e.Record, e.Field, e.Offset, e.Cause)
	}
	return fmt.Sprintf("oforms: %s: %s.%s at offset %d", e.Kind, e.Record, e.Field, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

func newDecodeError(kind ErrorKind, record, field string, offset uint32) *DecodeError {
	return &DecodeError{Kind: kind, Record: record, Field: field, Offset: offset}
}

// Errors reported by the site iterator and the object-stream partitioning.
// These are caller-observable errors, not decoder errors: the bytes
// decoded without complaint, but the value they encode cannot be resolved.
var (
	// ErrInvalidClsidCacheIndex is returned when a site's ClsidCacheIndex
	// resolves to Invalid (0x7FFF) and a caller asks the iterator to
	// resolve its control kind anyway.
	ErrInvalidClsidCacheIndex = errors.New("oforms: ClsidCacheIndex is Invalid, cannot resolve control kind")

	// ErrUnknownCachedControl is returned when a Global ClsidCacheIndex
	// does not match any entry of the cached-control enumeration.
	ErrUnknownCachedControl = errors.New("oforms: unrecognized global cached control index")

	// ErrClassTableIndexOutOfRange is returned when a site's ClsidCacheIndex
	// names a SiteClassInfo slot beyond the form's class table.
	ErrClassTableIndexOutOfRange = errors.New("oforms: ClassTable index out of range")

	// ErrObjectStreamSizeMismatch is returned when the sum of ObjectStreamSize
	// across all sites does not match the number of bytes available in the
	// object stream handed to the iterator.
	ErrObjectStreamSizeMismatch = errors.New("oforms: object stream size does not match sum of site sizes")
)

// Anomalies accumulated during a decode that are not fatal: soft
// diagnostics the caller may want to inspect or log rather than a hard
// decode failure.
const (
	// AnoCountOfBytesMismatch is reported when FormControl's count_of_bytes
	// field disagrees with the actual size of the site-depth-and-type
	// region plus the site bodies.
	AnoCountOfBytesMismatch = "count_of_bytes does not bound the site region"

	// AnoDesignExtenderNotConsulted is reported whenever DESINKPERSISTED is
	// set in BooleanProperties: parseFormControl never decodes the
	// DesignExtender record itself (only ParseDesignExtender does).
	AnoDesignExtenderNotConsulted = "DESINKPERSISTED set but DesignExtender was not decoded"
)
