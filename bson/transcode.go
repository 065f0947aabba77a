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
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedEncMode     _cbor.EncMode
	cachedEncModeErr  error
	cachedEncModeOnce sync.Once
)

func getTranscodeEncMode() (_cbor.EncMode, error) {
	cachedEncModeOnce.Do(func() {
		opts := _cbor.EncOptions{
			// Make sure that maps have ordered keys
			Sort: _cbor.SortCoreDeterministic,
		}
		cachedEncMode, cachedEncModeErr = opts.EncMode()
	})
	return cachedEncMode, cachedEncModeErr
}

// ToCBOR converts a decoded document into deterministic CBOR bytes, for
// storage or transports that index CBOR and for diagnostic tooling.
//
// The mapping is lossy in the BSON-specific corners: documents become CBOR
// maps (element order replaced by deterministic key order), DateTime becomes
// tag 1 (epoch seconds), Binary and ObjectID become byte strings, Regex
// becomes tag 35, Timestamp becomes its combined uint64, Decimal128 becomes
// its raw [high, low] pair, and MinKey/MaxKey/Undefined become simple
// values. Round-tripping back to BSON is not a goal; use Encode for that.
func ToCBOR(doc *Document) ([]byte, error) {
	em, err := getTranscodeEncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(cborValue(doc))
}

func cborValue(val any) any {
	switch v := val.(type) {
	case *Document:
		ret := make(map[string]any, v.Len())
		for _, k := range v.keys {
			ret[k] = cborValue(v.values[k])
		}
		return ret
	case Array:
		ret := make([]any, len(v))
		for i, item := range v {
			ret[i] = cborValue(item)
		}
		return ret
	case DateTime:
		return _cbor.Tag{
			Number:  1,
			Content: float64(v) / 1000,
		}
	case Binary:
		return v.Data
	case ObjectID:
		return v[:]
	case Regex:
		return _cbor.Tag{
			Number:  35,
			Content: v.Pattern,
		}
	case Timestamp:
		return uint64(v.Seconds)<<32 | uint64(v.Increment)
	case Decimal128:
		return []uint64{v.High, v.Low}
	case JavaScript:
		return string(v)
	case Symbol:
		return string(v)
	case CodeWithScope:
		scope := any(map[string]any{})
		if v.Scope != nil {
			scope = cborValue(v.Scope)
		}
		return map[string]any{
			"code":  v.Code,
			"scope": scope,
		}
	case DBPointer:
		return map[string]any{
			"namespace": v.Namespace,
			"id":        v.ID[:],
		}
	case Undefined:
		return _cbor.SimpleValue(23)
	case MinKey:
		return "MinKey"
	case MaxKey:
		return "MaxKey"
	default:
		return val
	}
}
