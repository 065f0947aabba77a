// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bson

import (
	"bytes"
	"encoding/binary"
	"math"
)

// byteCursor is a bounds-checked forward-only reader over an immutable byte
// buffer. The buffer is never mutated; returned slices alias it and must be
// copied before the input is reused.
type byteCursor struct {
	data []byte
	off  int
}

func newByteCursor(data []byte) *byteCursor {
	return &byteCursor{data: data}
}

func (c *byteCursor) pos() int {
	return c.off
}

func (c *byteCursor) remaining() int {
	return len(c.data) - c.off
}

func (c *byteCursor) readByte() (byte, error) {
	if c.remaining() < 1 {
		return 0, TruncatedInputError{
			Offset:    c.off,
			Needed:    1,
			Remaining: c.remaining(),
		}
	}
	b := c.data[c.off]
	c.off++
	return b, nil
}

// readBytes returns the next n bytes without copying
func (c *byteCursor) readBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, MalformedLengthError{Offset: c.off, Length: n}
	}
	if c.remaining() < n {
		return nil, TruncatedInputError{
			Offset:    c.off,
			Needed:    n,
			Remaining: c.remaining(),
		}
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *byteCursor) skip(n int) error {
	_, err := c.readBytes(n)
	return err
}

func (c *byteCursor) readInt32() (int32, error) {
	b, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func (c *byteCursor) readInt64() (int64, error) {
	b, err := c.readBytes(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func (c *byteCursor) readUint64() (uint64, error) {
	b, err := c.readBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (c *byteCursor) readFloat64() (float64, error) {
	b, err := c.readBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// readCString reads bytes up to the next NUL terminator and returns them
// without the terminator. The cursor advances past the terminator.
func (c *byteCursor) readCString() ([]byte, error) {
	idx := bytes.IndexByte(c.data[c.off:], 0x00)
	if idx < 0 {
		return nil, TruncatedInputError{
			Offset:    c.off,
			Needed:    c.remaining() + 1,
			Remaining: c.remaining(),
		}
	}
	b := c.data[c.off : c.off+idx]
	c.off += idx + 1
	return b, nil
}

// readSizedString reads a 4-byte little-endian length L followed by L bytes,
// the last of which must be a NUL terminator, and returns the L-1 content
// bytes
func (c *byteCursor) readSizedString() ([]byte, error) {
	lenOff := c.off
	l, err := c.readInt32()
	if err != nil {
		return nil, err
	}
	if l < 1 || int(l) > c.remaining() {
		return nil, MalformedLengthError{Offset: lenOff, Length: int(l)}
	}
	b, err := c.readBytes(int(l))
	if err != nil {
		return nil, err
	}
	if b[l-1] != 0x00 {
		return nil, MalformedLengthError{Offset: lenOff, Length: int(l)}
	}
	return b[:l-1], nil
}
