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
)

// MaxNestedLevels is the default limit on document/array nesting depth.
// This is far beyond what well-formed documents use, while still bounding
// stack growth on adversarial input.
const MaxNestedLevels = 256

type decodeConfig struct {
	utf8Uniform  *bool
	utf8ByKey    map[string]bool
	utf8ByKeySet bool
	maxDepth     int
}

// DecodeOptionFunc is a type that represents functions that modify the
// decode configuration
type DecodeOptionFunc func(*decodeConfig)

// WithUTF8Validation enables or disables strict UTF-8 validation uniformly
// for every key and string value at every nesting depth. The default is
// enabled.
func WithUTF8Validation(enabled bool) DecodeOptionFunc {
	return func(c *decodeConfig) {
		c.utf8Uniform = &enabled
		c.utf8ByKeySet = false
	}
}

// WithUTF8ValidationByKey controls strict UTF-8 validation per top-level
// field name. A named field's flag governs its entire subtree; fields not
// named get the opposite of the mapping's common value. All values in the
// mapping must agree, and the mapping must not be empty.
func WithUTF8ValidationByKey(keys map[string]bool) DecodeOptionFunc {
	return func(c *decodeConfig) {
		c.utf8ByKey = keys
		c.utf8ByKeySet = true
		c.utf8Uniform = nil
	}
}

// WithMaxDepth overrides the default nesting depth limit
func WithMaxDepth(depth int) DecodeOptionFunc {
	return func(c *decodeConfig) {
		c.maxDepth = depth
	}
}

type decoder struct {
	cur      *byteCursor
	policy   *validationPolicy
	maxDepth int
}

// Decode parses a single BSON document from data. The buffer must contain
// exactly one document; its declared length must match len(data). Decoding
// is fail-fast: the first error aborts the call and no partial document is
// returned. The input buffer is only read, never retained or mutated, so
// concurrent Decode calls may share it.
func Decode(data []byte, opts ...DecodeOptionFunc) (*Document, error) {
	cfg := &decodeConfig{
		maxDepth: MaxNestedLevels,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	// Resolve the validation policy before reading any input byte
	policy, err := newValidationPolicy(cfg)
	if err != nil {
		return nil, err
	}
	if len(data) < minDocumentLength {
		return nil, TruncatedInputError{
			Offset:    0,
			Needed:    minDocumentLength,
			Remaining: len(data),
		}
	}
	declared := int(int32(binary.LittleEndian.Uint32(data)))
	if declared < minDocumentLength {
		return nil, MalformedLengthError{Offset: 0, Length: declared}
	}
	if declared > len(data) {
		return nil, TruncatedInputError{
			Offset:    0,
			Needed:    declared,
			Remaining: len(data),
		}
	}
	if declared != len(data) {
		return nil, LengthMismatchError{
			Declared: declared,
			Consumed: len(data),
		}
	}
	d := &decoder{
		cur:      newByteCursor(data),
		policy:   policy,
		maxDepth: cfg.maxDepth,
	}
	return d.decodeDocument("", 1, true)
}

// decodeString resolves the validation policy for the given top-level key
// and either strictly validates or lossily decodes the raw bytes
func (d *decoder) decodeString(raw []byte, topKey string) (string, error) {
	if d.policy.isEnabled(topKey) {
		if !validUTF8(raw) {
			return "", InvalidUtf8StringError{}
		}
		return string(raw), nil
	}
	return decodeLossy(raw), nil
}

// decodeElement reads one element: tag, key, and typed payload. A zero tag
// marks the end of the enclosing document and returns done=true.
func (d *decoder) decodeElement(
	topKey string,
	isRoot bool,
	depth int,
) (string, any, bool, error) {
	tag, err := d.cur.readByte()
	if err != nil {
		return "", nil, false, err
	}
	if tag == 0x00 {
		return "", nil, true, nil
	}
	rawKey, err := d.cur.readCString()
	if err != nil {
		return "", nil, false, err
	}
	// Policy lookups are keyed by top-level field name only. Elements of the
	// root document resolve against their own key; everything below inherits
	// its top-level ancestor's key. The lookup uses the raw key bytes, so an
	// invalid-UTF-8 key simply never matches a mapping entry.
	lookupKey := topKey
	if isRoot {
		lookupKey = string(rawKey)
	}
	key, err := d.decodeString(rawKey, lookupKey)
	if err != nil {
		return "", nil, false, err
	}
	val, err := d.decodeValue(tag, lookupKey, depth)
	if err != nil {
		return "", nil, false, err
	}
	return key, val, false, nil
}

// decodeDocument parses one embedded document starting at the cursor. The
// declared length must exactly cover the consumed bytes up to and including
// the terminator.
func (d *decoder) decodeDocument(
	topKey string,
	depth int,
	isRoot bool,
) (*Document, error) {
	if depth > d.maxDepth {
		return nil, MaxDepthExceededError{Limit: d.maxDepth}
	}
	start := d.cur.pos()
	declared, err := d.cur.readInt32()
	if err != nil {
		return nil, err
	}
	if declared < minDocumentLength ||
		int(declared)-4 > d.cur.remaining() {
		return nil, MalformedLengthError{Offset: start, Length: int(declared)}
	}
	doc := NewDocument()
	for {
		key, val, done, err := d.decodeElement(topKey, isRoot, depth)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		doc.Set(key, val)
	}
	if consumed := d.cur.pos() - start; consumed != int(declared) {
		return nil, LengthMismatchError{
			Declared: int(declared),
			Consumed: consumed,
		}
	}
	return doc, nil
}

// decodeArray parses an embedded array, which shares the document grammar.
// The index keys are read and validated like any other key but the values
// are kept in wire order regardless of what the keys claim.
func (d *decoder) decodeArray(topKey string, depth int) (Array, error) {
	if depth > d.maxDepth {
		return nil, MaxDepthExceededError{Limit: d.maxDepth}
	}
	start := d.cur.pos()
	declared, err := d.cur.readInt32()
	if err != nil {
		return nil, err
	}
	if declared < minDocumentLength ||
		int(declared)-4 > d.cur.remaining() {
		return nil, MalformedLengthError{Offset: start, Length: int(declared)}
	}
	arr := Array{}
	for {
		_, val, done, err := d.decodeElement(topKey, false, depth)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		arr = append(arr, val)
	}
	if consumed := d.cur.pos() - start; consumed != int(declared) {
		return nil, LengthMismatchError{
			Declared: int(declared),
			Consumed: consumed,
		}
	}
	return arr, nil
}

// decodeValue parses one typed payload per the BSON type table
func (d *decoder) decodeValue(tag byte, topKey string, depth int) (any, error) {
	switch tag {
	case BsonTypeDouble:
		return d.cur.readFloat64()
	case BsonTypeString:
		raw, err := d.cur.readSizedString()
		if err != nil {
			return nil, err
		}
		return d.decodeString(raw, topKey)
	case BsonTypeDocument:
		return d.decodeDocument(topKey, depth+1, false)
	case BsonTypeArray:
		return d.decodeArray(topKey, depth+1)
	case BsonTypeBinary:
		lenOff := d.cur.pos()
		l, err := d.cur.readInt32()
		if err != nil {
			return nil, err
		}
		if l < 0 || int(l) > d.cur.remaining() {
			return nil, MalformedLengthError{Offset: lenOff, Length: int(l)}
		}
		subtype, err := d.cur.readByte()
		if err != nil {
			return nil, err
		}
		payload, err := d.cur.readBytes(int(l))
		if err != nil {
			return nil, err
		}
		return Binary{
			Subtype: subtype,
			Data:    bytes.Clone(payload),
		}, nil
	case BsonTypeUndefined:
		return Undefined{}, nil
	case BsonTypeObjectID:
		raw, err := d.cur.readBytes(12)
		if err != nil {
			return nil, err
		}
		var oid ObjectID
		copy(oid[:], raw)
		return oid, nil
	case BsonTypeBoolean:
		b, err := d.cur.readByte()
		if err != nil {
			return nil, err
		}
		return b != 0x00, nil
	case BsonTypeDateTime:
		ms, err := d.cur.readInt64()
		if err != nil {
			return nil, err
		}
		return DateTime(ms), nil
	case BsonTypeNull:
		return nil, nil
	case BsonTypeRegex:
		rawPattern, err := d.cur.readCString()
		if err != nil {
			return nil, err
		}
		pattern, err := d.decodeString(rawPattern, topKey)
		if err != nil {
			return nil, err
		}
		rawOptions, err := d.cur.readCString()
		if err != nil {
			return nil, err
		}
		options, err := d.decodeString(rawOptions, topKey)
		if err != nil {
			return nil, err
		}
		return Regex{Pattern: pattern, Options: options}, nil
	case BsonTypeDBPointer:
		rawNs, err := d.cur.readSizedString()
		if err != nil {
			return nil, err
		}
		ns, err := d.decodeString(rawNs, topKey)
		if err != nil {
			return nil, err
		}
		raw, err := d.cur.readBytes(12)
		if err != nil {
			return nil, err
		}
		var oid ObjectID
		copy(oid[:], raw)
		return DBPointer{Namespace: ns, ID: oid}, nil
	case BsonTypeJavaScript:
		raw, err := d.cur.readSizedString()
		if err != nil {
			return nil, err
		}
		code, err := d.decodeString(raw, topKey)
		if err != nil {
			return nil, err
		}
		return JavaScript(code), nil
	case BsonTypeSymbol:
		raw, err := d.cur.readSizedString()
		if err != nil {
			return nil, err
		}
		sym, err := d.decodeString(raw, topKey)
		if err != nil {
			return nil, err
		}
		return Symbol(sym), nil
	case BsonTypeCodeWithScope:
		start := d.cur.pos()
		declared, err := d.cur.readInt32()
		if err != nil {
			return nil, err
		}
		if declared < 4 || int(declared)-4 > d.cur.remaining() {
			return nil, MalformedLengthError{
				Offset: start,
				Length: int(declared),
			}
		}
		rawCode, err := d.cur.readSizedString()
		if err != nil {
			return nil, err
		}
		code, err := d.decodeString(rawCode, topKey)
		if err != nil {
			return nil, err
		}
		scope, err := d.decodeDocument(topKey, depth+1, false)
		if err != nil {
			return nil, err
		}
		if consumed := d.cur.pos() - start; consumed != int(declared) {
			return nil, LengthMismatchError{
				Declared: int(declared),
				Consumed: consumed,
			}
		}
		return CodeWithScope{Code: code, Scope: scope}, nil
	case BsonTypeInt32:
		return d.cur.readInt32()
	case BsonTypeTimestamp:
		u, err := d.cur.readUint64()
		if err != nil {
			return nil, err
		}
		return Timestamp{
			Seconds:   uint32(u >> 32),
			Increment: uint32(u),
		}, nil
	case BsonTypeInt64:
		return d.cur.readInt64()
	case BsonTypeDecimal128:
		low, err := d.cur.readUint64()
		if err != nil {
			return nil, err
		}
		high, err := d.cur.readUint64()
		if err != nil {
			return nil, err
		}
		return Decimal128{High: high, Low: low}, nil
	case BsonTypeMinKey:
		return MinKey{}, nil
	case BsonTypeMaxKey:
		return MaxKey{}, nil
	default:
		return nil, UnknownTypeError{Tag: tag}
	}
}
