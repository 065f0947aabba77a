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

package bson_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/blinklabs-io/gobson/bson"
)

func TestDocumentOrdering(t *testing.T) {
	doc := bson.NewDocument().
		Set("c", int32(3)).
		Set("a", int32(1)).
		Set("b", int32(2))
	expected := []string{"c", "a", "b"}
	if !reflect.DeepEqual(doc.Keys(), expected) {
		t.Fatalf(
			"did not get expected key order, got: %v, wanted: %v",
			doc.Keys(),
			expected,
		)
	}
	// Replacing a value keeps the key's original position
	doc.Set("a", int32(99))
	if !reflect.DeepEqual(doc.Keys(), expected) {
		t.Fatalf(
			"key order changed on value replacement, got: %v",
			doc.Keys(),
		)
	}
	v, ok := doc.Get("a")
	if !ok || v != int32(99) {
		t.Fatalf("did not get expected value, got: %v", v)
	}
	if doc.Len() != 3 {
		t.Fatalf("did not get expected length, got: %d, wanted: 3", doc.Len())
	}
}

func TestDocumentDelete(t *testing.T) {
	doc := bson.NewDocument().
		Set("a", int32(1)).
		Set("b", int32(2))
	if !doc.Delete("a") {
		t.Fatal("expected Delete to report key presence")
	}
	if doc.Delete("a") {
		t.Fatal("expected Delete to report missing key")
	}
	if _, ok := doc.Get("a"); ok {
		t.Fatal("expected key to be removed")
	}
	if !reflect.DeepEqual(doc.Keys(), []string{"b"}) {
		t.Fatalf("did not get expected keys, got: %v", doc.Keys())
	}
}

func TestDocumentMap(t *testing.T) {
	doc := bson.NewDocument().
		Set("s", "text").
		Set("nested", bson.NewDocument().Set("n", int32(1))).
		Set("arr", bson.Array{int32(1), bson.NewDocument().Set("x", true)})
	expected := map[string]any{
		"s": "text",
		"nested": map[string]any{
			"n": int32(1),
		},
		"arr": []any{
			int32(1),
			map[string]any{"x": true},
		},
	}
	if !reflect.DeepEqual(doc.Map(), expected) {
		t.Fatalf(
			"did not get expected map view\n  got: %#v\n  wanted: %#v",
			doc.Map(),
			expected,
		)
	}
}

func TestDocumentEqual(t *testing.T) {
	a := bson.NewDocument().Set("x", int32(1)).Set("y", "two")
	b := bson.NewDocument().Set("x", int32(1)).Set("y", "two")
	if !a.Equal(b) {
		t.Fatal("expected documents to be equal")
	}
	// Same content, different order
	c := bson.NewDocument().Set("y", "two").Set("x", int32(1))
	if a.Equal(c) {
		t.Fatal("expected order-sensitive inequality")
	}
	if a.Equal(nil) {
		t.Fatal("expected inequality with nil")
	}
}

func TestObjectIDString(t *testing.T) {
	oid := bson.ObjectID{
		0x65, 0x0a, 0x1b, 0x2c, 0x3d, 0x4e,
		0x5f, 0x60, 0x71, 0x82, 0x93, 0xa4,
	}
	expected := "650a1b2c3d4e5f60718293a4"
	if oid.String() != expected {
		t.Fatalf(
			"did not get expected string, got: %s, wanted: %s",
			oid.String(),
			expected,
		)
	}
}

func TestDateTimeConversion(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	dt := bson.NewDateTimeFromTime(ts)
	if !dt.Time().Equal(ts) {
		t.Fatalf(
			"did not get expected time, got: %s, wanted: %s",
			dt.Time(),
			ts,
		)
	}
	// Sub-millisecond precision is truncated
	precise := ts.Add(123456 * time.Nanosecond)
	if !bson.NewDateTimeFromTime(precise).Time().Equal(ts) {
		t.Fatal("expected sub-millisecond precision to be truncated")
	}
}
