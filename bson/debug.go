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
	"fmt"
)

// DumpDocumentStructure generates an indented string representing a decoded
// document for debugging purposes
func DumpDocumentStructure(data any, prefix string) string {
	var ret bytes.Buffer
	switch v := data.(type) {
	case *Document:
		ret.WriteString(prefix + "{\n")
		newPrefix := "  " + prefix
		for _, key := range v.keys {
			ret.WriteString(fmt.Sprintf("%s%s =>\n", newPrefix, key))
			ret.WriteString(DumpDocumentStructure(v.values[key], "  "+newPrefix))
		}
		ret.WriteString(prefix + "}\n")
	case Array:
		ret.WriteString(prefix + "[\n")
		newPrefix := "  " + prefix
		for _, val := range v {
			ret.WriteString(DumpDocumentStructure(val, newPrefix))
		}
		ret.WriteString(prefix + "],\n")
	case Binary:
		return fmt.Sprintf(
			"%s<binary subtype 0x%02x> (length %d),\n",
			prefix,
			v.Subtype,
			len(v.Data),
		)
	case ObjectID:
		return fmt.Sprintf("%sObjectID(%s),\n", prefix, v.String())
	case DateTime:
		return fmt.Sprintf("%sDateTime(%s),\n", prefix, v.Time())
	case int32, int64, float64:
		return fmt.Sprintf("%s%v,\n", prefix, v)
	default:
		return fmt.Sprintf("%s%#v,\n", prefix, v)
	}
	return ret.String()
}
