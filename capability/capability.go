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

// Package capability resolves the optional features compiled into this
// deployment of errobj.
//
// A capability is an optional field/behavior of the error object:
// creation timestamp, unique identifier, documentation reference, and
// log tags. Which capabilities a binary carries is decided at build
// time via build tags, not at run time via flags:
//
//	go build -tags errobj_time,errobj_id ./...
//
// Each tag flips a package-level boolean constant (see the enabled_*.go
// / disabled_*.go pairs), so disabled capability code paths are dead
// branches the compiler removes entirely. Fields that depend on a
// disabled capability are never populated and never serialized —
// zero-cost absence.
//
// Recognized tags:
//
//   - errobj_time — attach and serialize the creation instant;
//   - errobj_id   — attach and serialize a random v4 UUID per object;
//   - errobj_ref  — eagerly attach the documentation-reference URL;
//   - errobj_tags — enable the log tag list (formatter-only, never
//     serialized).
package capability

import "fmt"

// Capability names one optional feature of the error object.
type Capability uint8

const (
	// Timestamp attaches the UTC creation instant to every object.
	Timestamp Capability = iota

	// Identifier attaches a random v4 UUID to every object.
	Identifier

	// Reference eagerly attaches the documentation-reference URL derived
	// from the object's status.
	Reference

	// Tags enables the debug tag list used by the log formatter.
	Tags
)

// String returns the tag name of the capability (without the build-tag
// prefix), e.g. "timestamp".
func (c Capability) String() string {
	switch c {
	case Timestamp:
		return "timestamp"
	case Identifier:
		return "identifier"
	case Reference:
		return "reference"
	case Tags:
		return "tags"
	default:
		return fmt.Sprintf("capability(%d)", uint8(c))
	}
}

// Enabled reports whether the capability is compiled into this build.
// The result is constant for the lifetime of the process.
func Enabled(c Capability) bool {
	switch c {
	case Timestamp:
		return timeEnabled
	case Identifier:
		return idEnabled
	case Reference:
		return refEnabled
	case Tags:
		return tagsEnabled
	default:
		return false
	}
}

// Set lists the capabilities compiled into this build, in declaration
// order. Useful for startup diagnostics.
func Set() []Capability {
	var s []Capability
	for _, c := range []Capability{Timestamp, Identifier, Reference, Tags} {
		if Enabled(c) {
			s = append(s, c)
		}
	}
	return s
}
