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

package grpcx

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// statusCodes defines the built-in mapping from HTTP status codes to
// canonical gRPC codes. These are only defaults chosen to align with
// common gateway conventions; callers producing gRPC at a boundary with
// a different policy should map there instead.
var statusCodes = map[uint16]codes.Code{
	// 4xx — client/protocol/resource issues.
	http.StatusBadRequest:            codes.InvalidArgument,    // Malformed input, validation errors, contract violation.
	http.StatusUnauthorized:          codes.Unauthenticated,    // No/invalid credentials — caller must authenticate.
	http.StatusForbidden:             codes.PermissionDenied,   // Caller is authenticated but not allowed to act.
	http.StatusNotFound:              codes.NotFound,           // Target resource does not exist (or is not visible).
	http.StatusRequestTimeout:        codes.Canceled,           // Client gave up or the request was cut short.
	http.StatusConflict:              codes.Aborted,            // Concurrent modification or version mismatch.
	http.StatusGone:                  codes.NotFound,           // gRPC has no 410; NotFound is the closest practical choice.
	http.StatusPreconditionFailed:    codes.FailedPrecondition, // If-Match / resource preconditions not met.
	http.StatusRequestEntityTooLarge: codes.InvalidArgument,    // Payload exceeds what the server accepts.
	http.StatusTooEarly:              codes.FailedPrecondition, // Request made before allowed time.
	http.StatusTooManyRequests:       codes.ResourceExhausted,  // Rate limit or quota hit.

	// 5xx — server / dependency / transient issues.
	http.StatusInternalServerError: codes.Internal,         // Generic internal failure; details stay server-side.
	http.StatusNotImplemented:      codes.Unimplemented,    // Operation is known but not supported here.
	http.StatusBadGateway:          codes.Unavailable,      // Upstream dependency failed in a client-visible way.
	http.StatusServiceUnavailable:  codes.Unavailable,      // Service or a required dependency is unreachable.
	http.StatusGatewayTimeout:      codes.DeadlineExceeded, // Operation exceeded the time budget.
}

// Code maps an HTTP status code to a gRPC code.
//
// Statuses without an explicit entry fall back by class: any other 4xx
// maps to InvalidArgument, everything else to Internal. The result for
// sub-400 statuses is OK — an error object carrying a success status is
// unusual but not forbidden (statuses are not range-validated anywhere
// in this module).
func Code(status uint16) codes.Code {
	if c, ok := statusCodes[status]; ok {
		return c
	}
	switch {
	case status < 400:
		return codes.OK
	case status < 500:
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}
