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

// Package detail provides the closed value type stored in an error
// object's details map.
//
// A "detail" is a named, auxiliary datum attached to an error object —
// a resource id, a limit that was exceeded, a flag, or an entire nested
// document describing the failing entity. Instead of an open `any` bag
// (which forces runtime type inspection on every read), this package
// defines a tagged variant over the value shapes that a schemaless wire
// document can carry:
//
//   - text;
//   - 64-bit signed integer;
//   - boolean;
//   - null;
//   - structured document (object / array / arbitrary nesting).
//
// Every Value is equality-comparable via Equal and round-trips losslessly
// through JSON. The structured arm is backed by structpb.Value, so one
// detail key can hold an entire document tree.
package detail
