//go:build !errobj_time && !errobj_id && !errobj_ref && !errobj_tags

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

// Assertions that hold only in a build without optional capabilities:
// exact wire bytes and absence of every capability field.

package errobj

import "testing"

func TestCreate_NoCapabilities(t *testing.T) {
	o := Create(404, "generic error").Build()

	if _, ok := o.Reference(); ok {
		t.Fatal("reference must be absent without the reference capability")
	}
	if _, ok := o.Timestamp(); ok {
		t.Fatal("timestamp must be absent without the timestamp capability")
	}
	if _, ok := o.ID(); ok {
		t.Fatal("id must be absent without the identifier capability")
	}
	if len(o.Tags()) != 0 {
		t.Fatal("tags must be absent without the tags capability")
	}
}

func TestAddTag_NoopWithoutCapability(t *testing.T) {
	o := Create(409, "failed to persist entity due to version conflict").
		AddTag("op:persist").
		AddTag("ctx:none").
		Build()

	if len(o.Tags()) != 0 {
		t.Fatal("AddTag must be a no-op without the tags capability")
	}
	want := "(409) :: failed to persist entity due to version conflict"
	if got := o.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestEncode_ExactMinimalDocument(t *testing.T) {
	data, err := Encode(Create(404, "generic error").Build())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if want := `{"status":404,"message":"generic error"}`; string(data) != want {
		t.Fatalf("wire form = %s, want %s", data, want)
	}
}

func TestDecode_EqualsBuiltObject(t *testing.T) {
	decoded, err := Decode([]byte(`{"status":405,"message":"Method not allowed; use GET","error_code":"web.generic"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	built := Create(405, "Method not allowed; use GET").
		WithErrorCode("web.generic").
		Build()

	if !decoded.Equal(built) {
		t.Fatalf("decoded %s != built %s", decoded, built)
	}
	if len(decoded.Details()) != 0 {
		t.Fatal("details must be empty")
	}
}

func TestDecode_CapabilityFieldsIgnored(t *testing.T) {
	o, err := Decode([]byte(`{
		"status": 404,
		"message": "x",
		"timestamp": "2026-08-29T10:00:00Z",
		"id": "7f9c24e5-2f02-4b33-9c5c-9f1d8e1f2a3b"
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := o.Timestamp(); ok {
		t.Fatal("timestamp must be ignored in a build without the capability")
	}
	if _, ok := o.ID(); ok {
		t.Fatal("id must be ignored in a build without the capability")
	}
}
