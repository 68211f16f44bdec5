// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

import (
	"golang.org/x/text/encoding/unicode"
)

// countOfBytesMask isolates the byte-length bits of a length-and-compression
// word; the high bit (above this mask) is the compression flag.
const countOfBytesMask uint32 = 0x7FFFFFFF

// lengthAndCompression is the u32 prefix carried in a record's fixed block
// for every variable-length string field: the high bit flags compression,
// the low 31 bits count the bytes of the stored payload (spec §3).
type lengthAndCompression struct {
	compressed bool
	length     uint32
}

func decodeLengthAndCompression(v uint32) lengthAndCompression {
	return lengthAndCompression{
		compressed: v&^countOfBytesMask != 0,
		length:     v & countOfBytesMask,
	}
}

func (l lengthAndCompression) encode() uint32 {
	v := l.length & countOfBytesMask
	if l.compressed {
		v |= ^countOfBytesMask
	}
	return v
}

// lengthAndCompression reads the u32 prefix. It does not read the string
// bytes themselves: those live in a later variable block per spec §4.2.
func (c *cursor) lengthAndCompression(record, field string) (lengthAndCompression, error) {
	v, err := c.u32(record, field)
	if err != nil {
		return lengthAndCompression{}, err
	}
	return decodeLengthAndCompression(v), nil
}

// fmString decodes l.length bytes as either ISO-8859-1 ("compressed", one
// byte per code point, isomorphic decode) or UTF-16LE ("uncompressed"),
// per spec §3 and §9.
func (c *cursor) fmString(l lengthAndCompression, record, field string) (string, error) {
	b, err := c.take(l.length, record, field)
	if err != nil {
		return "", err
	}
	if l.compressed {
		return decodeISO88591(b), nil
	}
	return decodeUTF16LE(b)
}

// decodeISO88591 performs the isomorphic decode: ISO-8859-1 maps every
// byte value directly onto the Unicode code point of the same value, so
// this is a straight byte-to-rune widening.
func decodeISO88591(b []byte) string {
	runes := make([]rune, len(b))
	for i, v := range b {
		runes[i] = rune(v)
	}
	return string(runes)
}

// decodeUTF16LE decodes a UTF-16LE byte slice of exact length, with no NUL
// terminator scanning: length here comes from the authoritative
// length-and-compression prefix, not from a sentinel.
func decodeUTF16LE(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	s, err := decoder.Bytes(b)
	if err != nil {
		return "", err
	}
	return string(s), nil
}
