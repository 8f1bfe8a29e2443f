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
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errobj/capability"
	"dirpx.dev/errobj/detail"
)

// Builder incrementally assembles an Object. It is strictly single-use:
// obtain one per error occurrence from Create or FromError, chain the
// configuration calls, and finish with Build exactly once.
//
// Go has no move semantics, so the one-time-use contract of the
// original consuming-builder design is enforced with an internal
// consumed flag instead of the type system: every method called after
// Build panics. Sharing one builder across goroutines is a logic error,
// not a supported mode — nothing here is synchronized.
//
// All configuration methods return the receiver so calls chain.
type Builder struct {
	obj      Object
	consumed bool
}

// Create returns a fresh builder holding the minimal required data.
//
// In builds carrying the Timestamp or Identifier capability, the
// creation instant and the v4 UUID are captured here, not in Build, so
// no configuration call can observe a different construction time. The
// instant is UTC, truncated to whole seconds — the wire format is
// RFC 3339 without a fractional part, and truncating up front keeps the
// in-memory value identical to what a round trip yields.
//
// In builds carrying the Reference capability, the documentation
// reference for status is attached eagerly (it is a pure function of
// the status, so eager computation costs one string format). Other
// builds attach it only on an explicit WithReference call.
func Create(status uint16, message string) *Builder {
	b := &Builder{obj: Object{
		status:  status,
		message: message,
		details: map[string]detail.Value{},
	}}
	if capability.Enabled(capability.Timestamp) {
		b.obj.timestamp = time.Now().UTC().Truncate(time.Second)
	}
	if capability.Enabled(capability.Identifier) {
		b.obj.id = uuid.New()
	}
	if capability.Enabled(capability.Reference) {
		b.obj.reference = ReferenceURL(status)
	}
	return b
}

// FromError returns a builder derived from an arbitrary error value:
// status 500, message err.Error().
func FromError(err error) *Builder {
	return Create(500, err.Error())
}

// WithShortMessage sets the abbreviated message. The last call wins.
// The empty string means "unset": passing it clears the field, and the
// field is then absent from accessors and from the wire form.
func (b *Builder) WithShortMessage(msg string) *Builder {
	b.use()
	b.obj.shortMessage = msg
	return b
}

// WithErrorCode sets the caller-defined machine code. The last call wins.
// As with WithShortMessage, the empty string means "unset".
func (b *Builder) WithErrorCode(code string) *Builder {
	b.use()
	b.obj.errorCode = code
	return b
}

// AddDetail stores a detail value under key. Re-adding a key replaces
// the previous entry — the details collection has map semantics, not
// append semantics.
func (b *Builder) AddDetail(key string, v detail.Value) *Builder {
	b.use()
	b.obj.details[key] = v
	return b
}

// AddTextDetail stores a text detail under key.
func (b *Builder) AddTextDetail(key, value string) *Builder {
	return b.AddDetail(key, detail.Text(value))
}

// AddIntDetail stores an integer detail under key.
func (b *Builder) AddIntDetail(key string, value int64) *Builder {
	return b.AddDetail(key, detail.Int(value))
}

// AddBoolDetail stores a boolean detail under key.
func (b *Builder) AddBoolDetail(key string, value bool) *Builder {
	return b.AddDetail(key, detail.Bool(value))
}

// AddNullDetail stores the null detail under key.
func (b *Builder) AddNullDetail(key string) *Builder {
	return b.AddDetail(key, detail.Null())
}

// AddStructuredDetail stores an already-built document under key. This
// variant cannot fail; callers that need to handle unencodable input
// gracefully should build the document themselves (detail.FromAny) and
// chain AddDetail.
func (b *Builder) AddStructuredDetail(key string, doc *structpb.Value) *Builder {
	return b.AddDetail(key, detail.Structured(doc))
}

// AddStructFromValue serializes an arbitrary Go value into a document
// and stores it under key.
//
// IMPORTANT: this method is strict. If the value has no document
// encoding (a channel, a function, a struct containing either), it
// panics, aborting the construction chain at this call — an
// unserializable detail is a programming error, never silently dropped.
// The recoverable path is detail.FromAny plus AddDetail.
func (b *Builder) AddStructFromValue(key string, value any) *Builder {
	b.use()
	v, err := detail.FromAny(value)
	if err != nil {
		panic(fmt.Sprintf("errobj: detail %q: %v", key, err))
	}
	b.obj.details[key] = v
	return b
}

// WithReference attaches the documentation reference for the builder's
// status. In builds carrying the Reference capability the reference is
// already present from Create and this call is a harmless no-op; in
// other builds it is the only way to attach one.
func (b *Builder) WithReference() *Builder {
	b.use()
	b.obj.reference = ReferenceURL(b.obj.status)
	return b
}

// AddTag appends a debug tag for the log formatter. Tags keep insertion
// order and are never serialized.
//
// In builds without the Tags capability this is a no-op, so call sites
// compile identically across deployments.
func (b *Builder) AddTag(tag string) *Builder {
	b.use()
	if capability.Enabled(capability.Tags) {
		b.obj.tags = append(b.obj.tags, tag)
	}
	return b
}

// Build concludes the configuration and produces the finished Object.
// The builder is consumed: any subsequent call on it, including another
// Build, panics.
func (b *Builder) Build() *Object {
	b.use()
	b.consumed = true
	o := b.obj
	o.details = maps.Clone(b.obj.details)
	// Drop the builder's references so the object truly owns its state.
	b.obj = Object{}
	return &o
}

// use panics when the builder has already been consumed by Build.
func (b *Builder) use() {
	if b.consumed {
		panic("errobj: builder used after Build")
	}
}
