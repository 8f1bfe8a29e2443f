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
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dirpx.dev/errobj/capability"
	"dirpx.dev/errobj/detail"
)

var (
	// ErrMalformed is the sentinel wrapped by every DecodeError. Having a
	// dedicated sentinel makes it easy for callers and tests to detect
	// "this document could not be decoded" without matching on the exact
	// field that was violated.
	ErrMalformed = errors.New("errobj: malformed document")
)

// DecodeError reports which field of an inbound document violated which
// expectation. Decode never fabricates defaults for required fields and
// never returns a partially populated object — the first violation
// aborts decoding.
type DecodeError struct {
	// Field is the wire name of the offending field, e.g. "status".
	// Empty when the document as a whole is not valid JSON.
	Field string

	// Expect describes the violated expectation, e.g. "required" or
	// "must be an unsigned 16-bit integer".
	Expect string

	// Cause holds the underlying parse error, if any.
	Cause error
}

// Error implements the built-in error interface.
func (e *DecodeError) Error() string {
	switch {
	case e.Field == "":
		return fmt.Sprintf("errobj: decode: %s", e.Expect)
	case e.Cause != nil:
		return fmt.Sprintf("errobj: decode: field %q: %s: %v", e.Field, e.Expect, e.Cause)
	default:
		return fmt.Sprintf("errobj: decode: field %q: %s", e.Field, e.Expect)
	}
}

// Unwrap makes errors.Is(err, ErrMalformed) hold for every DecodeError.
func (e *DecodeError) Unwrap() error {
	return ErrMalformed
}

// wireObject is the document shape of an Object. Field order here is
// the field order on the wire. Absent optionals are omitted entirely,
// never emitted as null; tags are log-only metadata and have no wire
// representation at all.
type wireObject struct {
	Status       uint16                  `json:"status"`
	Message      string                  `json:"message"`
	ShortMessage string                  `json:"short_message,omitempty"`
	ErrorCode    string                  `json:"error_code,omitempty"`
	Details      map[string]detail.Value `json:"details,omitempty"`
	Reference    string                  `json:"reference,omitempty"`
	Timestamp    string                  `json:"timestamp,omitempty"`
	ID           string                  `json:"id,omitempty"`
}

// Encode serializes the object into its wire document. It is equivalent
// to json.Marshal(o) and exists as the named counterpart of Decode.
func Encode(o *Object) ([]byte, error) {
	return json.Marshal(o)
}

// MarshalJSON implements json.Marshaler.
//
// Exactly the present fields are emitted: short_message, error_code,
// and an empty details map are omitted rather than written as null or
// {}. The timestamp is RFC 3339; the id is the canonical UUID string.
// Capability fields appear only in builds that carry the capability,
// because only such builds ever populate them.
func (o *Object) MarshalJSON() ([]byte, error) {
	w := wireObject{
		Status:       o.status,
		Message:      o.message,
		ShortMessage: o.shortMessage,
		ErrorCode:    o.errorCode,
		Reference:    o.reference,
	}
	if len(o.details) > 0 {
		w.Details = o.details
	}
	if ts, ok := o.Timestamp(); ok {
		w.Timestamp = ts.Format(time.RFC3339)
	}
	if id, ok := o.ID(); ok {
		w.ID = id.String()
	}
	return json.Marshal(w)
}

// Decode parses a wire document back into an Object.
//
// Decoding is strict about the two required fields: a document without a
// numeric status or without a string message fails with a *DecodeError
// naming the violation. Everything else is lenient by contract — a
// missing details field decodes to an empty map, unknown fields are
// ignored, and capability fields present in the payload but not
// compiled into this build are ignored the same way.
func Decode(data []byte) (*Object, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Expect: "document must be a JSON object", Cause: err}
	}

	o := &Object{details: map[string]detail.Value{}}

	rawStatus, ok := raw["status"]
	if !ok {
		return nil, &DecodeError{Field: "status", Expect: "required"}
	}
	if err := json.Unmarshal(rawStatus, &o.status); err != nil {
		return nil, &DecodeError{Field: "status", Expect: "must be an unsigned 16-bit integer", Cause: err}
	}

	rawMessage, ok := raw["message"]
	if !ok {
		return nil, &DecodeError{Field: "message", Expect: "required"}
	}
	if err := json.Unmarshal(rawMessage, &o.message); err != nil {
		return nil, &DecodeError{Field: "message", Expect: "must be a string", Cause: err}
	}

	if err := decodeString(raw, "short_message", &o.shortMessage); err != nil {
		return nil, err
	}
	if err := decodeString(raw, "error_code", &o.errorCode); err != nil {
		return nil, err
	}
	if err := decodeString(raw, "reference", &o.reference); err != nil {
		return nil, err
	}

	if rawDetails, ok := raw["details"]; ok {
		if err := json.Unmarshal(rawDetails, &o.details); err != nil {
			return nil, &DecodeError{Field: "details", Expect: "must be an object of detail values", Cause: err}
		}
		if o.details == nil {
			// "details": null on the wire still decodes to the explicit
			// empty-map default.
			o.details = map[string]detail.Value{}
		}
	}

	if rawTS, ok := raw["timestamp"]; ok && capability.Enabled(capability.Timestamp) {
		var s string
		if err := json.Unmarshal(rawTS, &s); err != nil {
			return nil, &DecodeError{Field: "timestamp", Expect: "must be an RFC 3339 string", Cause: err}
		}
		ts, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, &DecodeError{Field: "timestamp", Expect: "must be an RFC 3339 string", Cause: err}
		}
		o.timestamp = ts.UTC()
	}

	if rawID, ok := raw["id"]; ok && capability.Enabled(capability.Identifier) {
		var s string
		if err := json.Unmarshal(rawID, &s); err != nil {
			return nil, &DecodeError{Field: "id", Expect: "must be a UUID string", Cause: err}
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, &DecodeError{Field: "id", Expect: "must be a UUID string", Cause: err}
		}
		o.id = id
	}

	return o, nil
}

// UnmarshalJSON implements json.Unmarshaler with the exact semantics of
// Decode.
func (o *Object) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*o = *decoded
	return nil
}

// decodeString reads an optional string field into dst, leaving dst
// untouched when the field is absent.
func decodeString(raw map[string]json.RawMessage, field string, dst *string) error {
	r, ok := raw[field]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(r, dst); err != nil {
		return &DecodeError{Field: field, Expect: "must be a string", Cause: err}
	}
	return nil
}
