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

// Package errobj builds structured, serializable error objects for
// service responses and logs.
//
// An Object carries an HTTP-style status code and a human message, plus
// optional metadata: an abbreviated message, a machine-readable error
// code, a documentation reference, a creation timestamp, a unique id,
// debug tags, and an open-ended map of named, typed details (see
// dirpx.dev/errobj/detail).
//
// Objects are assembled through a single-use Builder:
//
//	o := errobj.Create(409, "failed to persist entity due to version conflict").
//		WithErrorCode("storage.version_conflict").
//		AddTextDetail("entity", "trip").
//		AddIntDetail("expected_version", 4).
//		Build()
//
// After Build the builder is consumed — any further call on it panics.
// The Object itself is immutable and therefore safe to share across
// goroutines without synchronization.
//
// The wire form is a flat JSON document in which absent optional fields
// are omitted entirely; see Encode and Decode. Which optional fields
// exist at all is decided per deployment at compile time via the
// dirpx.dev/errobj/capability build tags.
//
// IMPORTANT: this package is a leaf value library. It performs no I/O,
// no status-range validation, and no transport integration; HTTP
// handlers, gRPC services, and loggers consume it, not the other way
// around.
package errobj
