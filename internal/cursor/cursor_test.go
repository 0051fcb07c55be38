// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package cursor

import (
	"errors"
	"testing"

	wasmerrors "github.com/wasmforensics/wasmdump/internal/errors"
)

func encodeULEB128(v uint64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if v == 0 {
			return out
		}
	}
}

func encodeSLEB128(v int64) []byte {
	var out []byte
	more := true
	for more {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			more = false
		} else {
			b |= 0x80
		}
		out = append(out, b)
	}
	return out
}

func TestLEB128URoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 0xffffffff, 1 << 40, 1<<64 - 1}
	for _, n := range cases {
		c := New("t", encodeULEB128(n), 0)
		d, err := c.LEB128U()
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if d.Value != n {
			t.Fatalf("n=%d: got %d", n, d.Value)
		}
	}
}

func TestLEB128SRoundTrip(t *testing.T) {
	cases := []int64{0, -1, 1, 63, -64, 1000, -1000, 1<<62 - 1, -(1 << 62)}
	for _, n := range cases {
		c := New("t", encodeSLEB128(n), 0)
		d, err := c.LEB128S()
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if d.Value != n {
			t.Fatalf("n=%d: got %d", n, d.Value)
		}
	}
}

func TestLEB128UPaddedEncodingMatchesShortest(t *testing.T) {
	shortest := New("t", []byte{0x01}, 0)
	d1, err := shortest.LEB128U()
	if err != nil {
		t.Fatal(err)
	}

	padded := New("t", []byte{0x80 | 0x01, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, 0)
	d2, err := padded.LEB128U()
	if err != nil {
		t.Fatal(err)
	}

	if d1.Value != d2.Value {
		t.Fatalf("shortest=%d padded=%d", d1.Value, d2.Value)
	}
}

func TestLEB128SLastByte0x7FDecodesToMinusOne(t *testing.T) {
	c := New("t", []byte{0x7f}, 0)
	d, err := c.LEB128S()
	if err != nil {
		t.Fatal(err)
	}
	if d.Value != -1 {
		t.Fatalf("expected -1, got %d", d.Value)
	}
}

func TestRequireFailsOnTruncatedInput(t *testing.T) {
	c := New("t", []byte{0x01, 0x02}, 0)
	_, err := c.Require(10)
	if !errors.Is(err, wasmerrors.ErrTruncatedInput) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
}

func TestTakeReturnsShortReadWithoutError(t *testing.T) {
	c := New("t", []byte{0x01, 0x02}, 100)
	d := c.Take(10)
	if len(d.Value) != 2 {
		t.Fatalf("expected short read of 2 bytes, got %d", len(d.Value))
	}
	if d.Span.Offset != 100 {
		t.Fatalf("expected offset 100, got %d", d.Span.Offset)
	}
}

func TestSpanOffsetTracksBaseAndPosition(t *testing.T) {
	c := New("t", []byte{0xAA, 0xBB, 0xCC, 0xDD}, 1000)
	first, _ := c.Require(2)
	if first.Span.Offset != 1000 {
		t.Fatalf("expected 1000, got %d", first.Span.Offset)
	}
	second, _ := c.Require(2)
	if second.Span.Offset != 1002 {
		t.Fatalf("expected 1002, got %d", second.Span.Offset)
	}
}

func TestUTF8NameSpanCoversLengthPrefixAndPayload(t *testing.T) {
	raw := append(encodeULEB128(5), []byte("hello")...)
	c := New("t", raw, 10)
	d, err := c.UTF8Name()
	if err != nil {
		t.Fatal(err)
	}
	if d.Value != "hello" {
		t.Fatalf("got %q", d.Value)
	}
	if d.Span.Offset != 10 || len(d.Span.Bytes) != len(raw) {
		t.Fatalf("span mismatch: offset=%d len=%d", d.Span.Offset, len(d.Span.Bytes))
	}
}

func TestUTF8NameFailsOnInvalidUTF8(t *testing.T) {
	raw := append(encodeULEB128(2), 0xff, 0xfe)
	c := New("t", raw, 0)
	_, err := c.UTF8Name()
	if !errors.Is(err, wasmerrors.ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestRewindAndRequireCoversExactBytesAdvanced(t *testing.T) {
	c := New("t", []byte{0x01, 0x02, 0x03, 0x04}, 0)
	start := c.Mark()
	c.Require(3)
	d := c.RewindAndRequire(start)
	if len(d.Span.Bytes) != 3 {
		t.Fatalf("expected 3 bytes, got %d", len(d.Span.Bytes))
	}
}

func TestSubCarvesFramedSubCursor(t *testing.T) {
	c := New("t", []byte{0x01, 0x02, 0x03, 0x04, 0x05}, 0)
	c.Require(1)
	sub, err := c.Sub(3)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Offset() != 1 {
		t.Fatalf("expected sub-cursor base offset 1, got %d", sub.Offset())
	}
	if sub.Remaining() != 3 {
		t.Fatalf("expected 3 remaining, got %d", sub.Remaining())
	}
	if c.Offset() != 4 {
		t.Fatalf("expected parent cursor advanced to 4, got %d", c.Offset())
	}
}
