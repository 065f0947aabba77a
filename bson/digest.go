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
	"golang.org/x/crypto/blake2b"
)

// Digest returns the Blake2b-256 hash of the document's encoded form, useful
// for content-addressed storage and change detection. Element order is part
// of the identity: two documents with the same fields in different order
// hash differently.
func (d *Document) Digest() ([blake2b.Size256]byte, error) {
	enc, err := Encode(d)
	if err != nil {
		return [blake2b.Size256]byte{}, err
	}
	return blake2b.Sum256(enc), nil
}
