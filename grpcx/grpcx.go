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

// Package grpcx converts error objects to and from gRPC status values.
//
// This is pure value-level interop: no interceptors, no transport. A
// service that speaks gRPC turns its *errobj.Object into a
// *status.Status at the boundary; a client recovers the full object
// from the status details. The object travels as a structpb.Struct
// detail holding its exact wire document, so nothing is lost in the
// mapping (tags excepted — they never serialize).
package grpcx

import (
	"encoding/json"

	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errobj"
)

// ToStatus converts an error object into a gRPC status. The gRPC code
// is derived from the object's HTTP status via Code, the status message
// is the object's message, and the object's wire document is attached
// as a structpb.Struct detail.
//
// A nil object yields nil.
func ToStatus(o *errobj.Object) *gstatus.Status {
	if o == nil {
		return nil
	}
	base := gstatus.New(Code(o.Status()), o.Message())

	doc, err := objectStruct(o)
	if err != nil {
		// The object itself is always encodable; this only trips on a
		// hand-rolled Object from a future field this package predates.
		return base
	}
	if with, err := base.WithDetails(doc); err == nil {
		return with
	}
	return base
}

// FromStatus recovers an error object from a gRPC status produced by
// ToStatus. The bool is false when the status is nil or carries no
// decodable object detail. Useful in tests and client code.
func FromStatus(st *gstatus.Status) (*errobj.Object, bool) {
	if st == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		doc, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		raw, err := protojson.Marshal(doc)
		if err != nil {
			continue
		}
		o, err := errobj.Decode(raw)
		if err != nil {
			continue
		}
		return o, true
	}
	return nil, false
}

// objectStruct renders the object's wire document as a structpb.Struct.
func objectStruct(o *errobj.Object) (*structpb.Struct, error) {
	raw, err := errobj.Encode(o)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}
