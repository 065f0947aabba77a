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
	"encoding/binary"
)

// StreamDecoder provides sequential decoding of back-to-back BSON documents
// with position tracking, the layout used by dump files and bulk transfers.
type StreamDecoder struct {
	data []byte
	pos  int
	opts []DecodeOptionFunc
}

// NewStreamDecoder creates a decoder over a buffer of concatenated BSON
// documents. The options apply to every document decoded from the stream.
func NewStreamDecoder(data []byte, opts ...DecodeOptionFunc) *StreamDecoder {
	return &StreamDecoder{
		data: data,
		opts: opts,
	}
}

// Position returns the current byte position in the stream
func (d *StreamDecoder) Position() int {
	return d.pos
}

// Remaining returns the number of unconsumed bytes
func (d *StreamDecoder) Remaining() int {
	return len(d.data) - d.pos
}

// EOF returns true if the decoder has consumed all of the data
func (d *StreamDecoder) EOF() bool {
	return d.pos >= len(d.data)
}

// frame locates the next document without decoding it: the declared length
// must fit the remaining buffer and the document must end with a NUL
// terminator
func (d *StreamDecoder) frame() (int, error) {
	remaining := d.Remaining()
	if remaining < minDocumentLength {
		return 0, TruncatedInputError{
			Offset:    d.pos,
			Needed:    minDocumentLength,
			Remaining: remaining,
		}
	}
	declared := int(int32(binary.LittleEndian.Uint32(d.data[d.pos:])))
	if declared < minDocumentLength {
		return 0, MalformedLengthError{Offset: d.pos, Length: declared}
	}
	if declared > remaining {
		return 0, TruncatedInputError{
			Offset:    d.pos,
			Needed:    declared,
			Remaining: remaining,
		}
	}
	if d.data[d.pos+declared-1] != 0x00 {
		return 0, LengthMismatchError{
			Declared: declared,
			Consumed: declared,
		}
	}
	return declared, nil
}

// Next decodes the next document in the stream
func (d *StreamDecoder) Next() (*Document, error) {
	length, err := d.frame()
	if err != nil {
		return nil, err
	}
	doc, err := Decode(d.data[d.pos:d.pos+length], d.opts...)
	if err != nil {
		return nil, err
	}
	d.pos += length
	return doc, nil
}

// Skip advances past the next document without decoding its elements.
// Returns (startOffset, length, error).
func (d *StreamDecoder) Skip() (int, int, error) {
	length, err := d.frame()
	if err != nil {
		return 0, 0, err
	}
	start := d.pos
	d.pos += length
	return start, length, nil
}

// DecodeRaw returns the next document's raw bytes without decoding its
// elements. The returned slice aliases the stream buffer.
// Returns (startOffset, rawBytes, error).
func (d *StreamDecoder) DecodeRaw() (int, []byte, error) {
	length, err := d.frame()
	if err != nil {
		return 0, nil, err
	}
	start := d.pos
	d.pos += length
	return start, d.data[start : start+length], nil
}
