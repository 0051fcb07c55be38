// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package wasmtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wasmforensics/wasmdump/internal/cursor"
	wasmerrors "github.com/wasmforensics/wasmdump/internal/errors"
)

func TestDecodeValTypeKnownCodes(t *testing.T) {
	cases := map[byte]ValType{
		0x7F: I32, 0x7E: I64, 0x7D: F32, 0x7C: F64,
		0x7B: V128, 0x70: FuncRef, 0x6F: ExternRef,
	}
	for code, want := range cases {
		c := cursor.New("t", []byte{code}, 0)
		d, err := DecodeValType(c)
		require.NoError(t, err)
		assert.Equal(t, want, d.Value)
	}
}

func TestDecodeValTypeUnknownCode(t *testing.T) {
	c := cursor.New("t", []byte{0x01}, 0)
	_, err := DecodeValType(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, wasmerrors.ErrUnknownValType)
}

func TestDecodeRefTypeRejectsValueTypes(t *testing.T) {
	c := cursor.New("t", []byte{0x7F}, 0)
	_, err := DecodeRefType(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, wasmerrors.ErrUnknownRefType)
}

func TestDecodeResultTypeSpanCoversCountAndPayload(t *testing.T) {
	c := cursor.New("t", []byte{0x02, 0x7F, 0x7E}, 5)
	d, err := DecodeResultType(c)
	require.NoError(t, err)
	assert.Equal(t, []ValType{I32, I64}, d.Value.Types)
	assert.Equal(t, uint64(5), d.Span.Offset)
	assert.Len(t, d.Span.Bytes, 3)
}

func TestDecodeFuncTypeRequiresPrefix(t *testing.T) {
	c := cursor.New("t", []byte{0x61, 0x00, 0x00}, 0)
	_, err := DecodeFuncType(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, wasmerrors.ErrMalformedFuncType)
}

func TestDecodeFuncTypeParamsAndResults(t *testing.T) {
	raw := []byte{0x60, 0x02, 0x7F, 0x7F, 0x01, 0x7F}
	c := cursor.New("t", raw, 0)
	d, err := DecodeFuncType(c)
	require.NoError(t, err)
	assert.Equal(t, []ValType{I32, I32}, d.Value.Params)
	assert.Equal(t, []ValType{I32}, d.Value.Results)
	assert.Len(t, d.Span.Bytes, len(raw))
}

func TestDecodeLimitsMinOnly(t *testing.T) {
	c := cursor.New("t", []byte{0x00, 0x01}, 0)
	d, err := DecodeLimits(c)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), d.Value.Min)
	assert.Nil(t, d.Value.Max)
}

func TestDecodeLimitsMinAndMax(t *testing.T) {
	c := cursor.New("t", []byte{0x01, 0x01, 0x02}, 0)
	d, err := DecodeLimits(c)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), d.Value.Min)
	require.NotNil(t, d.Value.Max)
	assert.Equal(t, uint32(2), *d.Value.Max)
}

func TestDecodeLimitsBadFlag(t *testing.T) {
	c := cursor.New("t", []byte{0x02, 0x00}, 0)
	_, err := DecodeLimits(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, wasmerrors.ErrMalformedLimits)
}

func TestDecodeMutability(t *testing.T) {
	c := cursor.New("t", []byte{0x01}, 0)
	d, err := DecodeMutability(c)
	require.NoError(t, err)
	assert.Equal(t, Var, d.Value)
	assert.Equal(t, "var", d.Value.String())
}

func TestDecodeMutabilityBadFlag(t *testing.T) {
	c := cursor.New("t", []byte{0x07}, 0)
	_, err := DecodeMutability(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, wasmerrors.ErrMalformedMutability)
}
