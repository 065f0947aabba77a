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

// BSON element type tags
// https://bsonspec.org/spec.html
const (
	BsonTypeDouble        byte = 0x01
	BsonTypeString        byte = 0x02
	BsonTypeDocument      byte = 0x03
	BsonTypeArray         byte = 0x04
	BsonTypeBinary        byte = 0x05
	BsonTypeUndefined     byte = 0x06 // deprecated
	BsonTypeObjectID      byte = 0x07
	BsonTypeBoolean       byte = 0x08
	BsonTypeDateTime      byte = 0x09
	BsonTypeNull          byte = 0x0a
	BsonTypeRegex         byte = 0x0b
	BsonTypeDBPointer     byte = 0x0c // deprecated
	BsonTypeJavaScript    byte = 0x0d
	BsonTypeSymbol        byte = 0x0e // deprecated
	BsonTypeCodeWithScope byte = 0x0f // deprecated
	BsonTypeInt32         byte = 0x10
	BsonTypeTimestamp     byte = 0x11
	BsonTypeInt64         byte = 0x12
	BsonTypeDecimal128    byte = 0x13
	BsonTypeMinKey        byte = 0xff
	BsonTypeMaxKey        byte = 0x7f
)

// Binary element subtypes
const (
	BinarySubtypeGeneric     byte = 0x00
	BinarySubtypeFunction    byte = 0x01
	BinarySubtypeBinaryOld   byte = 0x02
	BinarySubtypeUuidOld     byte = 0x03
	BinarySubtypeUuid        byte = 0x04
	BinarySubtypeMd5         byte = 0x05
	BinarySubtypeEncrypted   byte = 0x06
	BinarySubtypeCompressed  byte = 0x07
	BinarySubtypeSensitive   byte = 0x08
	BinarySubtypeUserDefined byte = 0x80
)

// The smallest possible document: int32 length plus NUL terminator
const minDocumentLength = 5
