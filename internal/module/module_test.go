// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package module

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wasmforensics/wasmdump/internal/disasm"
	wasmerrors "github.com/wasmforensics/wasmdump/internal/errors"
)

func newDriver() *Driver {
	return New(Options{Width: 8, Disasm: disasm.DefaultConfig()})
}

func TestDumpEmptyModule(t *testing.T) {
	buf := []byte{0x00, 'a', 's', 'm', 0x01, 0x00, 0x00, 0x00}
	var out bytes.Buffer
	err := newDriver().Dump(context.Background(), "empty.wasm", buf, &out)
	require.NoError(t, err)
	s := out.String()
	assert.Contains(t, s, `magic = "\x00asm"`)
	assert.Contains(t, s, "version = 1")
}

func TestDumpMinimalAddFunction(t *testing.T) {
	typeSection := []byte{0x60, 0x02, 0x7F, 0x7F, 0x01, 0x7F}
	typeSec := append([]byte{1, byte(len(typeSection) + 1), 1}, typeSection...)

	funcSection := []byte{1, 0} // count = 1, typeidx[0] = 0
	funcSec := append([]byte{3, byte(len(funcSection))}, funcSection...)

	body := []byte{0x20, 0x00, 0x20, 0x01, 0x6A, 0x0B}
	codeEntry := append([]byte{byte(len(body) + 1), 0}, body...)
	codeSec := append([]byte{10, byte(len(codeEntry) + 1), 1}, codeEntry...)

	buf := []byte{0x00, 'a', 's', 'm', 0x01, 0x00, 0x00, 0x00}
	buf = append(buf, typeSec...)
	buf = append(buf, funcSec...)
	buf = append(buf, codeSec...)

	var out bytes.Buffer
	err := newDriver().Dump(context.Background(), "add.wasm", buf, &out)
	require.NoError(t, err)
	s := out.String()
	assert.Contains(t, s, "functype")
	assert.Contains(t, s, "local.get")
	assert.Contains(t, s, "i32.add")
	assert.Contains(t, s, "end")
}

func TestDumpTruncatedInputAfterMagic(t *testing.T) {
	buf := []byte{0x00, 'a', 's', 'm', 0x01, 0x00}
	var out bytes.Buffer
	err := newDriver().Dump(context.Background(), "trunc.wasm", buf, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wasmerrors.ErrTruncatedInput))
	assert.Contains(t, out.String(), `magic = "\x00asm"`)
}

func TestDumpBadMagic(t *testing.T) {
	buf := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x00, 0x00, 0x00}
	var out bytes.Buffer
	err := newDriver().Dump(context.Background(), "bad.wasm", buf, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wasmerrors.ErrBadMagic))
}

func TestDumpUnknownOpcodeStopsAfterEmittingPriorInstructions(t *testing.T) {
	body := []byte{0x01, 0x06, 0x0B} // nop, reserved 0x06, end
	codeEntry := append([]byte{byte(len(body) + 1), 0}, body...)
	codeSec := append([]byte{10, byte(len(codeEntry) + 1), 1}, codeEntry...)

	buf := []byte{0x00, 'a', 's', 'm', 0x01, 0x00, 0x00, 0x00}
	buf = append(buf, codeSec...)

	var out bytes.Buffer
	err := newDriver().Dump(context.Background(), "bad_opcode.wasm", buf, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wasmerrors.ErrUnknownOpcode))
	assert.Contains(t, out.String(), "nop")
}

func TestDumpDataCountMismatchWarning(t *testing.T) {
	dataCountSec := []byte{12, 1, 5} // declares 5, leb128u
	dataSec := append([]byte{11, 3}, 1 /* count = 1 */, 1 /* mode = passive */, 0 /* size = 0 */)

	buf := []byte{0x00, 'a', 's', 'm', 0x01, 0x00, 0x00, 0x00}
	buf = append(buf, dataCountSec...)
	buf = append(buf, dataSec...)

	var out bytes.Buffer
	driver := newDriver()
	err := driver.Dump(context.Background(), "mismatch.wasm", buf, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "data count section declares 5, data section has 1")
}
