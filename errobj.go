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
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"dirpx.dev/errobj/detail"
)

// MDNStatusRef is the base URL for the documentation reference attached
// to objects. The full reference for an object is MDNStatusRef + "/" +
// its decimal status code.
const MDNStatusRef = "https://developer.mozilla.org/en-US/docs/Web/HTTP/Status"

// ReferenceURL returns the documentation reference for an HTTP status
// code. It is a pure function of the status; no validation of the code
// is performed.
func ReferenceURL(status uint16) string {
	return fmt.Sprintf("%s/%d", MDNStatusRef, status)
}

// Object is an immutable, serializable error object.
//
// At the minimum it reports the HTTP status associated with the error
// and the error message. Depending on how it was built and which
// capabilities the binary carries, it may also report:
//
//   - a shortened version of the message;
//   - a caller-defined error code;
//   - arbitrary named details;
//   - a reference to the MDN documentation for the status;
//   - the instant the object was created (capability.Timestamp);
//   - a v4 UUID identifying this occurrence (capability.Identifier);
//   - debug tags used only by the log formatter (capability.Tags).
//
// Once built, every field is fixed. There are no mutators; producing a
// changed object means building a new one. This makes a finished Object
// safe to share and read concurrently without synchronization.
type Object struct {
	status       uint16
	message      string
	shortMessage string
	errorCode    string
	details      map[string]detail.Value
	reference    string
	timestamp    time.Time
	id           uuid.UUID
	tags         []string
}

// Object doubles as an error value so services can return it directly
// up their call chains.
var (
	_ error        = (*Object)(nil)
	_ fmt.Stringer = (*Object)(nil)
)

// Status returns the HTTP status associated with the error. The value
// is reported exactly as built; it is not validated against any status
// registry.
func (o *Object) Status() uint16 {
	return o.status
}

// Message returns the primary human-readable message.
func (o *Object) Message() string {
	return o.message
}

// ShortMessage returns the abbreviated message, if one was set.
func (o *Object) ShortMessage() (string, bool) {
	return o.shortMessage, o.shortMessage != ""
}

// ErrorCode returns the caller-defined machine code, if one was set.
func (o *Object) ErrorCode() (string, bool) {
	return o.errorCode, o.errorCode != ""
}

// Details returns a copy of the details map. The copy is shallow — the
// detail values themselves are immutable — but mutating the returned
// map never affects the object.
func (o *Object) Details() map[string]detail.Value {
	if len(o.details) == 0 {
		return map[string]detail.Value{}
	}
	return maps.Clone(o.details)
}

// Detail returns the detail stored under key, if present.
func (o *Object) Detail(key string) (detail.Value, bool) {
	v, ok := o.details[key]
	return v, ok
}

// Reference returns the documentation-reference URL, if present. It is
// present when the Reference capability is compiled in, or when the
// builder's WithReference was called explicitly.
func (o *Object) Reference() (string, bool) {
	return o.reference, o.reference != ""
}

// Timestamp returns the creation instant, if the Timestamp capability
// is compiled in. The instant is captured once when the builder is
// created and never recomputed.
func (o *Object) Timestamp() (time.Time, bool) {
	return o.timestamp, !o.timestamp.IsZero()
}

// ID returns the unique identifier of this error occurrence, if the
// Identifier capability is compiled in. The id is a random v4 UUID
// generated once when the builder is created.
func (o *Object) ID() (uuid.UUID, bool) {
	return o.id, o.id != uuid.Nil
}

// Tags returns a copy of the debug tag list, in insertion order. Tags
// exist only in builds carrying the Tags capability and are used only
// by the log formatter; they are never serialized.
func (o *Object) Tags() []string {
	return slices.Clone(o.tags)
}

// Error implements the built-in error interface. The text equals the
// formatter output of String.
func (o *Object) Error() string {
	return o.String()
}

// String renders the object as a single log line:
//
//	(409) :: failed to persist entity due to version conflict
//
// When debug tags are present, they are joined by single spaces,
// bracketed, and prefixed:
//
//	[op:persist ctx:none] (409) :: failed to persist entity due to version conflict
//
// Tags render in insertion order. No escaping is performed: control
// characters inside tags or the message pass through verbatim. That is
// a documented limitation of the line format, not something this
// method tries to repair.
func (o *Object) String() string {
	if len(o.tags) > 0 {
		return fmt.Sprintf("[%s] (%d) :: %s", strings.Join(o.tags, " "), o.status, o.message)
	}
	return fmt.Sprintf("(%d) :: %s", o.status, o.message)
}

// Equal reports field-for-field equality of two objects, including the
// identifier and timestamp when those capabilities are enabled. This is
// the equality under which the codec round-trip contract holds:
// Decode(Encode(o)) equals o.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if o.status != other.status ||
		o.message != other.message ||
		o.shortMessage != other.shortMessage ||
		o.errorCode != other.errorCode ||
		o.reference != other.reference ||
		o.id != other.id ||
		!o.timestamp.Equal(other.timestamp) ||
		!slices.Equal(o.tags, other.tags) {
		return false
	}
	if len(o.details) != len(other.details) {
		return false
	}
	for k, v := range o.details {
		ov, ok := other.details[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
