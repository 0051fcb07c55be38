// Copyright (c) 2026 wasmdump authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotNil(t, ErrTruncatedInput)
	assert.NotNil(t, ErrBadMagic)
	assert.NotNil(t, ErrInvalidUTF8)
	assert.NotNil(t, ErrUnknownSectionID)
	assert.NotNil(t, ErrUnknownOpcode)
	assert.NotNil(t, ErrUnknownValType)
	assert.NotNil(t, ErrUnknownRefType)
	assert.NotNil(t, ErrMalformedLimits)
	assert.NotNil(t, ErrMalformedMutability)
	assert.NotNil(t, ErrMalformedFuncType)
	assert.NotNil(t, ErrUnknownImportKind)
	assert.NotNil(t, ErrUnknownExportKind)
	assert.NotNil(t, ErrUnknownElementMode)
	assert.NotNil(t, ErrUnknownDataMode)
}

func TestErrorWrapping(t *testing.T) {
	err := WrapTruncatedInput(0x10, 4, 1)
	assert.True(t, errors.Is(err, ErrTruncatedInput))
	assert.Contains(t, err.Error(), "0x10")

	err = WrapBadMagic([]byte{0xde, 0xad, 0xbe, 0xef})
	assert.True(t, errors.Is(err, ErrBadMagic))
	assert.Contains(t, err.Error(), "de ad be ef")

	err = WrapUnknownSectionID(8, 0xff)
	assert.True(t, errors.Is(err, ErrUnknownSectionID))
	assert.Contains(t, err.Error(), "0xff")

	err = WrapUnknownOpcode(42, []byte{0x06})
	assert.True(t, errors.Is(err, ErrUnknownOpcode))
	assert.Contains(t, err.Error(), "06")

	err = WrapUnknownDataMode(100, 7)
	assert.True(t, errors.Is(err, ErrUnknownDataMode))
	assert.Contains(t, err.Error(), "7")
}

func TestErrorComparison(t *testing.T) {
	err1 := WrapBadMagic([]byte{0, 0, 0, 0})
	err2 := WrapUnknownSectionID(0, 0xff)

	assert.True(t, errors.Is(err1, ErrBadMagic))
	assert.False(t, errors.Is(err1, ErrUnknownSectionID))

	assert.True(t, errors.Is(err2, ErrUnknownSectionID))
	assert.False(t, errors.Is(err2, ErrBadMagic))
}

func TestHexPreviewTruncatesLongInput(t *testing.T) {
	long := make([]byte, 32)
	for i := range long {
		long[i] = byte(i)
	}
	err := WrapUnknownOpcode(0, long)
	// Only the first 16 bytes should appear (as two-digit hex groups).
	assert.Contains(t, err.Error(), "0f")
	assert.NotContains(t, err.Error(), " 1f")
}
