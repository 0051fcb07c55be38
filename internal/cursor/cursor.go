// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

// Package cursor implements the positioned byte reader every decoder in
// this module is built on. A Cursor tracks an absolute file offset
// alongside its read position, and every primitive read returns both the
// decoded value and the Span (offset + raw bytes) that produced it, so
// callers never have to reconstruct where a value came from.
package cursor

import (
	"unicode/utf8"

	wasmerrors "github.com/wasmforensics/wasmdump/internal/errors"
)

// Span is an absolute byte range within the input file.
type Span struct {
	Offset uint64
	Bytes  []byte
}

// Decoded pairs a decoded value with the Span of bytes that produced it.
type Decoded[T any] struct {
	Value T
	Span  Span
}

// Cursor is a positioned view over a byte slice, carrying the absolute
// file offset of byte zero so every read can report its true location.
type Cursor struct {
	Path string

	buf  []byte
	base uint64
	pos  int
}

// New creates a cursor over buf, whose first byte sits at absolute file
// offset base.
func New(path string, buf []byte, base uint64) *Cursor {
	return &Cursor{Path: path, buf: buf, base: base}
}

// Offset returns the absolute file offset of the next unread byte.
func (c *Cursor) Offset() uint64 {
	return c.base + uint64(c.pos)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Mark captures the current read position for a later RewindAndRequire.
func (c *Cursor) Mark() int {
	return c.pos
}

// Sub carves out a sub-cursor over the next size bytes, advancing this
// cursor past them. Used to frame a section or code-entry payload.
func (c *Cursor) Sub(size int) (*Cursor, error) {
	d, err := c.Require(size)
	if err != nil {
		return nil, err
	}
	return New(c.Path, d.Value, d.Span.Offset), nil
}

// Take advances by up to n bytes, returning whatever was available.
func (c *Cursor) Take(n int) Decoded[[]byte] {
	if n > c.Remaining() {
		n = c.Remaining()
	}
	start := c.pos
	off := c.Offset()
	c.pos += n
	return Decoded[[]byte]{Value: c.buf[start:c.pos], Span: Span{Offset: off, Bytes: c.buf[start:c.pos]}}
}

// Require advances by exactly n bytes or fails with ErrTruncatedInput.
func (c *Cursor) Require(n int) (Decoded[[]byte], error) {
	if n > c.Remaining() {
		return Decoded[[]byte]{}, wasmerrors.WrapTruncatedInput(c.Offset(), n, c.Remaining())
	}
	return c.Take(n), nil
}

// RewindAndRequire returns a Decoded covering [saved, current) without
// moving the cursor, for building the Span of an already-consumed field.
func (c *Cursor) RewindAndRequire(saved int) Decoded[[]byte] {
	b := c.buf[saved:c.pos]
	return Decoded[[]byte]{Value: b, Span: Span{Offset: c.base + uint64(saved), Bytes: b}}
}

// U32LE reads a 4-byte little-endian unsigned integer.
func (c *Cursor) U32LE() (Decoded[uint32], error) {
	d, err := c.Require(4)
	if err != nil {
		return Decoded[uint32]{}, err
	}
	v := uint32(d.Value[0]) | uint32(d.Value[1])<<8 | uint32(d.Value[2])<<16 | uint32(d.Value[3])<<24
	return Decoded[uint32]{Value: v, Span: d.Span}, nil
}

// LEB128Raw reads bytes up to and including the first whose high bit is
// clear, failing with ErrTruncatedInput if the buffer ends first.
func (c *Cursor) LEB128Raw() (Decoded[[]byte], error) {
	start := c.pos
	for {
		if c.Remaining() == 0 {
			c.pos = start
			return Decoded[[]byte]{}, wasmerrors.WrapTruncatedInput(c.Offset(), 1, 0)
		}
		b := c.buf[c.pos]
		c.pos++
		if b&0x80 == 0 {
			return c.RewindAndRequire(start), nil
		}
	}
}

// LEB128U reads an unsigned LEB128 integer.
func (c *Cursor) LEB128U() (Decoded[uint64], error) {
	d, err := c.LEB128Raw()
	if err != nil {
		return Decoded[uint64]{}, err
	}
	return Decoded[uint64]{Value: DecodeULEB128Bytes(d.Value), Span: d.Span}, nil
}

// LEB128S reads a signed LEB128 integer.
func (c *Cursor) LEB128S() (Decoded[int64], error) {
	d, err := c.LEB128Raw()
	if err != nil {
		return Decoded[int64]{}, err
	}
	return Decoded[int64]{Value: DecodeSLEB128Bytes(d.Value), Span: d.Span}, nil
}

// UTF8Name reads a length-prefixed UTF-8 string. The returned Span covers
// both the length prefix and the payload.
func (c *Cursor) UTF8Name() (Decoded[string], error) {
	start := c.pos
	n, err := c.LEB128U()
	if err != nil {
		return Decoded[string]{}, err
	}
	payload, err := c.Require(int(n.Value))
	if err != nil {
		return Decoded[string]{}, err
	}
	if !utf8.Valid(payload.Value) {
		whole := c.RewindAndRequire(start)
		return Decoded[string]{}, wasmerrors.WrapInvalidUTF8(whole.Span.Offset, whole.Span.Bytes)
	}
	whole := c.RewindAndRequire(start)
	return Decoded[string]{Value: string(payload.Value), Span: whole.Span}, nil
}

// DecodeULEB128Bytes decodes an already-consumed raw LEB128 byte sequence
// as an unsigned integer. Used to interpret bytes read via LEB128Raw
// without re-reading from a cursor (e.g. block-type decoding).
func DecodeULEB128Bytes(raw []byte) uint64 {
	var result uint64
	var shift uint
	for _, b := range raw {
		result |= uint64(b&0x7f) << shift
		shift += 7
	}
	return result
}

// DecodeSLEB128Bytes decodes an already-consumed raw LEB128 byte sequence
// as a signed integer, sign-extending from bit 6 of the final byte.
func DecodeSLEB128Bytes(raw []byte) int64 {
	var result int64
	var shift uint
	var last byte
	for _, b := range raw {
		result |= int64(b&0x7f) << shift
		shift += 7
		last = b
	}
	if shift < 64 && last&0x40 != 0 {
		result |= -(1 << shift)
	}
	return result
}
