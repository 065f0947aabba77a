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

// Package bson implements encoding and decoding of BSON documents.
//
// # Key Types
//
// Document is the in-memory representation of a decoded BSON document. It
// preserves on-wire element order and enforces key uniqueness. Array holds
// BSON array members in wire order. Scalar values map to Go-native types
// (float64, string, bool, int32, int64) or to named wrapper types (Binary,
// ObjectID, DateTime, Regex, Timestamp, Decimal128, JavaScript, Symbol,
// DBPointer, CodeWithScope, Undefined, MinKey, MaxKey).
//
// # UTF-8 Validation Policy
//
// Decode validates every key and string value as strict UTF-8 by default.
// This can be tuned per call:
//
//	// Disable validation everywhere; invalid byte runs are replaced with U+FFFD
//	doc, err := bson.Decode(data, bson.WithUTF8Validation(false))
//
//	// Disable validation only within the "rawBlob" top-level field's subtree
//	doc, err := bson.Decode(data, bson.WithUTF8ValidationByKey(
//	    map[string]bool{"rawBlob": false},
//	))
//
// The per-key mapping is keyed by top-level field name only and governs the
// named field's entire subtree. All values in the mapping must agree; keys
// not named in the mapping get the opposite of the mapping's common value.
//
// # Error Handling
//
// Decoding is fail-fast: the first structural or validation error aborts the
// whole call and no partial document is returned. All errors are typed and
// match package-level sentinels via errors.Is.
package bson
