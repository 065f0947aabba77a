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
	"encoding/hex"
	"reflect"
	"slices"
	"time"
)

// Document is an ordered mapping of string keys to BSON values. Keys are
// unique; element order matches the on-wire order.
type Document struct {
	keys   []string
	values map[string]any
}

func NewDocument() *Document {
	return &Document{
		values: map[string]any{},
	}
}

// Set stores a value under the given key. Setting an existing key replaces
// its value but keeps its original position. Returns the document for
// chaining.
func (d *Document) Set(key string, value any) *Document {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return d
}

// Get returns the value stored under key and whether it exists
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Delete removes a key, reporting whether it was present
func (d *Document) Delete(key string) bool {
	if _, ok := d.values[key]; !ok {
		return false
	}
	delete(d.values, key)
	d.keys = slices.DeleteFunc(d.keys, func(k string) bool {
		return k == key
	})
	return true
}

// Keys returns the document's keys in element order. The returned slice is a
// copy.
func (d *Document) Keys() []string {
	return slices.Clone(d.keys)
}

func (d *Document) Len() int {
	return len(d.keys)
}

// Map returns a plain nested-map view of the document. Nested documents
// become maps and arrays become []any; element order is lost.
func (d *Document) Map() map[string]any {
	ret := make(map[string]any, len(d.keys))
	for _, k := range d.keys {
		ret[k] = plainValue(d.values[k])
	}
	return ret
}

func plainValue(val any) any {
	switch v := val.(type) {
	case *Document:
		return v.Map()
	case Array:
		ret := make([]any, len(v))
		for i, item := range v {
			ret[i] = plainValue(item)
		}
		return ret
	default:
		return val
	}
}

// Equal reports whether two documents have the same keys in the same order
// with deeply equal values
func (d *Document) Equal(other *Document) bool {
	if other == nil || len(d.keys) != len(other.keys) {
		return false
	}
	for i, k := range d.keys {
		if other.keys[i] != k {
			return false
		}
		if !reflect.DeepEqual(d.values[k], other.values[k]) {
			return false
		}
	}
	return true
}

// Array is an ordered sequence of BSON values
type Array []any

// Binary is a BSON binary value with its subtype tag
type Binary struct {
	Subtype byte
	Data    []byte
}

// ObjectID is a 12-byte BSON object identifier
type ObjectID [12]byte

func (o ObjectID) String() string {
	return hex.EncodeToString(o[:])
}

// DateTime is a BSON UTC datetime: milliseconds since the Unix epoch
type DateTime int64

// NewDateTimeFromTime converts a time.Time, truncating to millisecond
// precision
func NewDateTimeFromTime(t time.Time) DateTime {
	return DateTime(t.UnixMilli())
}

func (d DateTime) Time() time.Time {
	return time.UnixMilli(int64(d)).UTC()
}

// Regex is a BSON regular expression value
type Regex struct {
	Pattern string
	Options string
}

// Timestamp is a BSON internal timestamp: a seconds value and an ordinal
// increment within that second
type Timestamp struct {
	Seconds   uint32
	Increment uint32
}

// Decimal128 is an IEEE 754-2008 decimal128 value, stored as its raw
// little-endian halves. This package only preserves the bytes; arithmetic is
// up to the caller.
type Decimal128 struct {
	High uint64
	Low  uint64
}

// JavaScript is a BSON JavaScript code value
type JavaScript string

// Symbol is a deprecated BSON symbol value, preserved for round-trip fidelity
type Symbol string

// CodeWithScope is a deprecated BSON JavaScript-code-with-scope value
type CodeWithScope struct {
	Code  string
	Scope *Document
}

// DBPointer is a deprecated BSON database pointer value
type DBPointer struct {
	Namespace string
	ID        ObjectID
}

// Undefined is the deprecated BSON undefined value
type Undefined struct{}

// MinKey sorts before all other BSON values
type MinKey struct{}

// MaxKey sorts after all other BSON values
type MaxKey struct{}
