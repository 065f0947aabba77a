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
	"strings"
	"unicode/utf8"
)

// validUTF8 reports whether b is strictly valid UTF-8. Overlong encodings,
// surrogate halves, and truncated multi-byte sequences are all rejected.
func validUTF8(b []byte) bool {
	return utf8.Valid(b)
}

// utf8LeadInfo returns the total sequence length for a lead byte along with
// the allowed range for the first continuation byte. A zero length means the
// byte cannot start a sequence. The constrained first-continuation ranges
// exclude overlong encodings (0xe0, 0xf0), surrogates (0xed), and code
// points above U+10FFFF (0xf4).
func utf8LeadInfo(lead byte) (length int, lo byte, hi byte) {
	switch {
	case lead <= 0x7f:
		return 1, 0, 0
	case lead >= 0xc2 && lead <= 0xdf:
		return 2, 0x80, 0xbf
	case lead == 0xe0:
		return 3, 0xa0, 0xbf
	case lead >= 0xe1 && lead <= 0xec:
		return 3, 0x80, 0xbf
	case lead == 0xed:
		return 3, 0x80, 0x9f
	case lead >= 0xee && lead <= 0xef:
		return 3, 0x80, 0xbf
	case lead == 0xf0:
		return 4, 0x90, 0xbf
	case lead >= 0xf1 && lead <= 0xf3:
		return 4, 0x80, 0xbf
	case lead == 0xf4:
		return 4, 0x80, 0x8f
	default:
		return 0, 0, 0
	}
}

// decodeLossy decodes b as UTF-8, substituting U+FFFD for each maximal
// invalid byte subsequence. A malformed multi-byte sequence (the lead byte
// plus however many of its continuation bytes were valid before the failure)
// collapses into a single replacement character, while independent malformed
// sequences each produce their own. This is implemented explicitly rather
// than via strings.ToValidUTF8, which collapses adjacent independent runs
// into one marker.
func decodeLossy(b []byte) string {
	// Fast path for fully valid input
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); {
		lead := b[i]
		if lead <= 0x7f {
			sb.WriteByte(lead)
			i++
			continue
		}
		length, lo, hi := utf8LeadInfo(lead)
		if length == 0 {
			// Stray continuation byte or invalid lead
			sb.WriteRune(utf8.RuneError)
			i++
			continue
		}
		// Consume the maximal valid prefix of the sequence
		j := i + 1
		ok := true
		for k := 1; k < length; k++ {
			if j >= len(b) {
				ok = false
				break
			}
			cont := b[j]
			if k == 1 {
				if cont < lo || cont > hi {
					ok = false
					break
				}
			} else if cont < 0x80 || cont > 0xbf {
				ok = false
				break
			}
			j++
		}
		if ok {
			sb.Write(b[i:j])
		} else {
			sb.WriteRune(utf8.RuneError)
		}
		i = j
	}
	return sb.String()
}
