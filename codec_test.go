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

package errobj

import (
	"errors"
	"strings"
	"testing"
)

// roundTrip decodes the encoding of o and fails the test unless the
// result equals o field-for-field. Holds in every capability build.
func roundTrip(t *testing.T, o *Object) {
	t.Helper()
	data, err := Encode(o)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !o.Equal(back) {
		t.Fatalf("round trip mismatch:\n  original: %s\n  decoded:  %s\n  wire:     %s", o, back, data)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		roundTrip(t, Create(404, "generic error").Build())
	})

	t.Run("all scalars", func(t *testing.T) {
		roundTrip(t, Create(409, "version conflict").
			WithShortMessage("conflict").
			WithErrorCode("storage.version_conflict").
			Build())
	})

	t.Run("every detail kind", func(t *testing.T) {
		roundTrip(t, Create(422, "validation failed").
			AddTextDetail("field", "name").
			AddIntDetail("max_length", 64).
			AddBoolDetail("required", true).
			AddNullDetail("previous").
			AddStructFromValue("entity", map[string]any{
				"id":   94,
				"name": "server",
				"up":   false,
				"tags": []any{"a", "b"},
			}).
			Build())
	})

	t.Run("explicit reference", func(t *testing.T) {
		roundTrip(t, Create(404, "generic error").WithReference().Build())
	})

	t.Run("message with control characters", func(t *testing.T) {
		roundTrip(t, Create(500, "line\nbreak\tand \x1b[31mcolor").Build())
	})
}

func TestDecode_Strictness(t *testing.T) {
	cases := []struct {
		name  string
		input string
		field string
	}{
		{"status missing", `{"message":"x"}`, "status"},
		{"status string", `{"status":"405","message":"x"}`, "status"},
		{"status fractional", `{"status":404.5,"message":"x"}`, "status"},
		{"status negative", `{"status":-1,"message":"x"}`, "status"},
		{"status too large", `{"status":70000,"message":"x"}`, "status"},
		{"message missing", `{"status":404}`, "message"},
		{"message not a string", `{"status":404,"message":7}`, "message"},
		{"short_message not a string", `{"status":404,"message":"x","short_message":1}`, "short_message"},
		{"details not an object", `{"status":404,"message":"x","details":7}`, "details"},
		{"not an object", `[1,2]`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.input))
			if err == nil {
				t.Fatal("want decode failure")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("error %v does not wrap ErrMalformed", err)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("error %T is not a *DecodeError", err)
			}
			if de.Field != tc.field {
				t.Fatalf("DecodeError.Field = %q, want %q", de.Field, tc.field)
			}
		})
	}
}

func TestDecode_Leniency(t *testing.T) {
	t.Run("missing details becomes empty map", func(t *testing.T) {
		o, err := Decode([]byte(`{"status":404,"message":"x"}`))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if o.Details() == nil || len(o.Details()) != 0 {
			t.Fatal("details must decode to an empty map")
		}
	})

	t.Run("null details becomes empty map", func(t *testing.T) {
		o, err := Decode([]byte(`{"status":404,"message":"x","details":null}`))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(o.Details()) != 0 {
			t.Fatal("null details must decode to an empty map")
		}
	})

	t.Run("unknown fields ignored", func(t *testing.T) {
		o, err := Decode([]byte(`{"status":404,"message":"x","trace":"abc","severity":3}`))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if o.Status() != 404 || o.Message() != "x" {
			t.Fatal("known fields lost next to unknown ones")
		}
	})
}

func TestEncode_NoNullsEmitted(t *testing.T) {
	data, err := Encode(Create(404, "generic error").Build())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.Contains(string(data), "null") {
		t.Fatalf("wire form %s emits null for an absent field", data)
	}
	if strings.Contains(string(data), "details") {
		t.Fatalf("wire form %s emits empty details", data)
	}
	if strings.Contains(string(data), "tags") {
		t.Fatalf("wire form %s leaks tags", data)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var o Object
	if err := o.UnmarshalJSON([]byte(`{"status":405,"message":"x"}`)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if o.Status() != 405 {
		t.Fatalf("status = %d, want 405", o.Status())
	}
}
