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
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Encode serializes a document to BSON bytes, the inverse of Decode. String
// contents are written as-is; lossily decoded strings re-encode cleanly
// since replacement characters are themselves valid UTF-8.
func Encode(doc *Document) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encodeDocument(buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeDocument(buf *bytes.Buffer, doc *Document) error {
	start := buf.Len()
	// Length placeholder, patched once the terminator is written
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00})
	for _, key := range doc.keys {
		if err := encodeElement(buf, key, doc.values[key]); err != nil {
			return err
		}
	}
	buf.WriteByte(0x00)
	patchLength(buf, start)
	return nil
}

func encodeArray(buf *bytes.Buffer, arr Array) error {
	start := buf.Len()
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00})
	for i, val := range arr {
		if err := encodeElement(buf, strconv.Itoa(i), val); err != nil {
			return err
		}
	}
	buf.WriteByte(0x00)
	patchLength(buf, start)
	return nil
}

func patchLength(buf *bytes.Buffer, start int) {
	binary.LittleEndian.PutUint32(
		buf.Bytes()[start:start+4],
		uint32(buf.Len()-start),
	)
}

func writeCString(buf *bytes.Buffer, s string) error {
	if strings.IndexByte(s, 0x00) >= 0 {
		return fmt.Errorf("cannot encode string containing NUL byte: %q", s)
	}
	buf.WriteString(s)
	buf.WriteByte(0x00)
	return nil
}

func writeSizedString(buf *bytes.Buffer, s string) {
	var lenBytes [4]byte
	// Length includes the trailing NUL
	binary.LittleEndian.PutUint32(lenBytes[:], uint32(len(s)+1))
	buf.Write(lenBytes[:])
	buf.WriteString(s)
	buf.WriteByte(0x00)
}

func writeInt32(buf *bytes.Buffer, v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func encodeElement(buf *bytes.Buffer, key string, val any) error {
	writeTag := func(tag byte) error {
		buf.WriteByte(tag)
		return writeCString(buf, key)
	}
	if val == nil {
		return writeTag(BsonTypeNull)
	}
	switch v := val.(type) {
	case float64:
		if err := writeTag(BsonTypeDouble); err != nil {
			return err
		}
		writeUint64(buf, math.Float64bits(v))
	case string:
		if err := writeTag(BsonTypeString); err != nil {
			return err
		}
		writeSizedString(buf, v)
	case *Document:
		if err := writeTag(BsonTypeDocument); err != nil {
			return err
		}
		return encodeDocument(buf, v)
	case Array:
		if err := writeTag(BsonTypeArray); err != nil {
			return err
		}
		return encodeArray(buf, v)
	case []any:
		if err := writeTag(BsonTypeArray); err != nil {
			return err
		}
		return encodeArray(buf, Array(v))
	case Binary:
		if err := writeTag(BsonTypeBinary); err != nil {
			return err
		}
		writeInt32(buf, int32(len(v.Data)))
		buf.WriteByte(v.Subtype)
		buf.Write(v.Data)
	case Undefined:
		return writeTag(BsonTypeUndefined)
	case ObjectID:
		if err := writeTag(BsonTypeObjectID); err != nil {
			return err
		}
		buf.Write(v[:])
	case bool:
		if err := writeTag(BsonTypeBoolean); err != nil {
			return err
		}
		if v {
			buf.WriteByte(0x01)
		} else {
			buf.WriteByte(0x00)
		}
	case DateTime:
		if err := writeTag(BsonTypeDateTime); err != nil {
			return err
		}
		writeUint64(buf, uint64(v))
	case time.Time:
		if err := writeTag(BsonTypeDateTime); err != nil {
			return err
		}
		writeUint64(buf, uint64(NewDateTimeFromTime(v)))
	case Regex:
		if err := writeTag(BsonTypeRegex); err != nil {
			return err
		}
		if err := writeCString(buf, v.Pattern); err != nil {
			return err
		}
		return writeCString(buf, v.Options)
	case DBPointer:
		if err := writeTag(BsonTypeDBPointer); err != nil {
			return err
		}
		writeSizedString(buf, v.Namespace)
		buf.Write(v.ID[:])
	case JavaScript:
		if err := writeTag(BsonTypeJavaScript); err != nil {
			return err
		}
		writeSizedString(buf, string(v))
	case Symbol:
		if err := writeTag(BsonTypeSymbol); err != nil {
			return err
		}
		writeSizedString(buf, string(v))
	case CodeWithScope:
		if err := writeTag(BsonTypeCodeWithScope); err != nil {
			return err
		}
		start := buf.Len()
		buf.Write([]byte{0x00, 0x00, 0x00, 0x00})
		writeSizedString(buf, v.Code)
		scope := v.Scope
		if scope == nil {
			scope = NewDocument()
		}
		if err := encodeDocument(buf, scope); err != nil {
			return err
		}
		patchLength(buf, start)
	case int32:
		if err := writeTag(BsonTypeInt32); err != nil {
			return err
		}
		writeInt32(buf, v)
	case Timestamp:
		if err := writeTag(BsonTypeTimestamp); err != nil {
			return err
		}
		writeUint64(buf, uint64(v.Seconds)<<32|uint64(v.Increment))
	case int64:
		if err := writeTag(BsonTypeInt64); err != nil {
			return err
		}
		writeUint64(buf, uint64(v))
	case int:
		if err := writeTag(BsonTypeInt64); err != nil {
			return err
		}
		writeUint64(buf, uint64(int64(v)))
	case Decimal128:
		if err := writeTag(BsonTypeDecimal128); err != nil {
			return err
		}
		writeUint64(buf, v.Low)
		writeUint64(buf, v.High)
	case MinKey:
		return writeTag(BsonTypeMinKey)
	case MaxKey:
		return writeTag(BsonTypeMaxKey)
	default:
		return UnsupportedTypeError{Value: val}
	}
	return nil
}
