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

import "dirpx.dev/errobj/detail"

// Option is a functional option for one-shot object construction with
// New. It always takes a *Builder and returns a (possibly same) *Builder.
type Option func(*Builder) *Builder

// New builds an Object in one call, applying all provided options in
// order. It is the compact alternative to an explicit builder chain:
//
//	o := errobj.New(404, "trip not found",
//	    errobj.WithErrorCodeOption("trips.not_found"),
//	    errobj.WithDetailOption("trip_id", detail.Text("tr_01929")),
//	)
func New(status uint16, msg string, opts ...Option) *Object {
	b := Create(status, msg)
	for _, opt := range opts {
		b = opt(b)
	}
	return b.Build()
}

// WithShortMessageOption sets the abbreviated message on construction.
// Intended to be used with New(...).
func WithShortMessageOption(msg string) Option {
	return func(b *Builder) *Builder {
		return b.WithShortMessage(msg)
	}
}

// WithErrorCodeOption sets the machine code on construction.
// Intended to be used with New(...).
func WithErrorCodeOption(code string) Option {
	return func(b *Builder) *Builder {
		return b.WithErrorCode(code)
	}
}

// WithDetailOption stores one detail value on construction.
// Intended to be used with New(...).
func WithDetailOption(key string, v detail.Value) Option {
	return func(b *Builder) *Builder {
		return b.AddDetail(key, v)
	}
}

// WithReferenceOption attaches the documentation reference on
// construction. Intended to be used with New(...).
func WithReferenceOption() Option {
	return func(b *Builder) *Builder {
		return b.WithReference()
	}
}

// WithTagOption appends a debug tag on construction.
// Intended to be used with New(...).
func WithTagOption(tag string) Option {
	return func(b *Builder) *Builder {
		return b.AddTag(tag)
	}
}
