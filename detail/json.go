/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package detail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Ensure Value plugs into encoding/json directly, so a details map can
// be embedded into larger wire structs without adapter code.
var (
	_ json.Marshaler   = Value{}
	_ json.Unmarshaler = (*Value)(nil)
)

// MarshalJSON encodes the value as a plain JSON value: text as a string,
// integer as a number, boolean and null as themselves, and the
// structured arm through protojson (which renders a structpb.Value as
// the document it represents, not as a tagged envelope).
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindText:
		return json.Marshal(v.text)
	case KindInt:
		return strconv.AppendInt(nil, v.num, 10), nil
	case KindBool:
		return strconv.AppendBool(nil, v.flag), nil
	case KindStructured:
		return protojson.Marshal(v.doc)
	default:
		return nil, fmt.Errorf("detail: cannot marshal kind %s", v.kind)
	}
}

// UnmarshalJSON decodes a plain JSON value into the matching arm:
// strings, booleans, and null map to their scalar arms; numbers map to
// the integer arm when they are written as integers, and to a structured
// number otherwise; objects and arrays map to the structured arm.
//
// This is the exact inverse of MarshalJSON combined with the
// normalization performed by Structured, so decode(encode(v)) == v
// under Equal.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	switch rv := raw.(type) {
	case nil:
		*v = Null()
		return nil
	case string:
		*v = Text(rv)
		return nil
	case bool:
		*v = Bool(rv)
		return nil
	case json.Number:
		if n, err := rv.Int64(); err == nil {
			*v = Int(n)
			return nil
		}
		f, err := rv.Float64()
		if err != nil {
			return fmt.Errorf("%w: bad number %q", ErrInvalidJSON, rv.String())
		}
		*v = Value{kind: KindStructured, doc: structpb.NewNumberValue(f)}
		return nil
	default:
		// Object or array: let protojson build the document tree.
		doc := &structpb.Value{}
		if err := protojson.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		*v = Value{kind: KindStructured, doc: doc}
		return nil
	}
}
