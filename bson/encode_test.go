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
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/blinklabs-io/gobson/bson"

	"github.com/stretchr/testify/require"
)

type encodeTestDefinition struct {
	Object  *bson.Document
	BsonHex string
}

var encodeTests = []encodeTestDefinition{
	{
		Object:  bson.NewDocument(),
		BsonHex: "0500000000",
	},
	{
		Object:  bson.NewDocument().Set("hello", "world"),
		BsonHex: "160000000268656c6c6f0006000000776f726c640000",
	},
	{
		Object:  bson.NewDocument().Set("n", int32(5)),
		BsonHex: "0c000000106e000500000000",
	},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		enc, err := bson.Encode(test.Object)
		if err != nil {
			t.Fatalf("failed to encode BSON: %s", err)
		}
		if hex.EncodeToString(enc) != test.BsonHex {
			t.Fatalf(
				"BSON did not encode to expected bytes\n  got: %s\n  wanted: %s",
				hex.EncodeToString(enc),
				test.BsonHex,
			)
		}
	}
}

func TestEncodeUnsupportedType(t *testing.T) {
	doc := bson.NewDocument().Set("bad", struct{ X int }{X: 1})
	_, err := bson.Encode(doc)
	if !errors.Is(err, bson.ErrUnsupportedType) {
		t.Fatalf("did not get expected error, got: %v", err)
	}
}

func TestEncodeKeyWithNul(t *testing.T) {
	doc := bson.NewDocument().Set("bad\x00key", int32(1))
	if _, err := bson.Encode(doc); err == nil {
		t.Fatal("expected error for key containing NUL byte")
	}
}

func TestEncodeTimeConvertsToDateTime(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	enc, err := bson.Encode(bson.NewDocument().Set("at", ts))
	require.NoError(t, err)
	doc, err := bson.Decode(enc)
	require.NoError(t, err)
	v, _ := doc.Get("at")
	require.Equal(t, bson.NewDateTimeFromTime(ts), v)
}

// Round-trip fidelity across the full type table under strict validation
func TestRoundTrip(t *testing.T) {
	scope := bson.NewDocument().Set("x", int32(1))
	doc := bson.NewDocument().
		Set("double", 3.14159).
		Set("string", "text").
		Set("document", bson.NewDocument().Set("inner", "value")).
		Set("array", bson.Array{int32(1), "two", 3.0}).
		Set("emptyArray", bson.Array{}).
		Set("binary", bson.Binary{
			Subtype: bson.BinarySubtypeGeneric,
			Data:    []byte{0x01, 0x02, 0x03},
		}).
		Set("undefined", bson.Undefined{}).
		Set("objectId", bson.ObjectID{
			0x65, 0x0a, 0x1b, 0x2c, 0x3d, 0x4e,
			0x5f, 0x60, 0x71, 0x82, 0x93, 0xa4,
		}).
		Set("bool", true).
		Set("dateTime", bson.DateTime(1717243200000)).
		Set("null", nil).
		Set("regex", bson.Regex{Pattern: "^a.*z$", Options: "im"}).
		Set("dbPointer", bson.DBPointer{
			Namespace: "db.coll",
			ID:        bson.ObjectID{0x01},
		}).
		Set("javascript", bson.JavaScript("function() { return 1; }")).
		Set("symbol", bson.Symbol("sym")).
		Set("codeWithScope", bson.CodeWithScope{
			Code:  "function() { return x; }",
			Scope: scope,
		}).
		Set("int32", int32(-42)).
		Set("timestamp", bson.Timestamp{Seconds: 1717243200, Increment: 7}).
		Set("int64", int64(-9000000000)).
		Set("decimal128", bson.Decimal128{
			High: 0x3040000000000000,
			Low:  0x000000000000002a,
		}).
		Set("minKey", bson.MinKey{}).
		Set("maxKey", bson.MaxKey{})

	enc, err := bson.Encode(doc)
	require.NoError(t, err)
	decoded, err := bson.Decode(enc)
	require.NoError(t, err)
	require.Equal(t, doc.Keys(), decoded.Keys())
	require.True(
		t,
		decoded.Equal(doc),
		"round-tripped document mismatch\n  got: %#v\n  wanted: %#v",
		decoded.Map(),
		doc.Map(),
	)
	// A second pass over the re-encoded bytes must be byte-identical
	enc2, err := bson.Encode(decoded)
	require.NoError(t, err)
	require.Equal(t, enc, enc2)
}

// Lossily decoded documents re-encode cleanly, with replacement characters
// in place of the original invalid bytes
func TestReencodeAfterLossyDecode(t *testing.T) {
	doc := bson.NewDocument().Set("key", invalidString)
	enc, err := bson.Encode(doc)
	require.NoError(t, err)
	decoded, err := bson.Decode(enc, bson.WithUTF8Validation(false))
	require.NoError(t, err)
	reenc, err := bson.Encode(decoded)
	require.NoError(t, err)
	// The replacement character is valid UTF-8, so strict decode now passes
	final, err := bson.Decode(reenc)
	require.NoError(t, err)
	v, _ := final.Get("key")
	require.Equal(t, "hi�bye", v)
}
