// flex_id.go
//
// Admissions desk: application intake, employee task workflow and lead follow-up service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of admissions-desk.
// admissions-desk is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// admissions-desk is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with admissions-desk.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexID is an identifier that can be unmarshaled from a JSON number, a numeric
// JSON string, or an object carrying an "id" member (for example a nested program).
// Unmarshaling never fails; malformed input is recorded so the caller can report
// a validation error naming the field.
type FlexID struct {
	value   uint64
	present bool
	valid   bool
}

// NewFlexID returns a valid FlexID holding id
func NewFlexID(id uint64) FlexID {
	return FlexID{value: id, present: true, valid: id > 0}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	*f = FlexID{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	f.present = true

	switch data[0] {
	case '{':
		var obj struct {
			ID FlexID `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil
		}
		if !obj.ID.present {
			f.present = false
			return nil
		}
		f.value, f.valid = obj.ID.value, obj.ID.valid
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			f.present = false
			return nil
		}
		f.setFromString(s)
	default:
		f.setFromString(string(data))
	}
	return nil
}

func (f *FlexID) setFromString(s string) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return
	}
	f.value, f.valid = n, true
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexID) MarshalJSON() ([]byte, error) {
	if !f.valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// Present reports whether a non-null value was supplied
func (f FlexID) Present() bool {
	return f.present
}

// Valid reports whether the supplied value is a positive integer
func (f FlexID) Valid() bool {
	return f.valid
}

// Uint64 returns the parsed id, 0 when absent or invalid
func (f FlexID) Uint64() uint64 {
	if !f.valid {
		return 0
	}
	return f.value
}
