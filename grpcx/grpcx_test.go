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
	"testing"

	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/errobj"
)

func TestCode(t *testing.T) {
	cases := []struct {
		status uint16
		want   codes.Code
	}{
		{400, codes.InvalidArgument},
		{401, codes.Unauthenticated},
		{403, codes.PermissionDenied},
		{404, codes.NotFound},
		{409, codes.Aborted},
		{413, codes.InvalidArgument},
		{429, codes.ResourceExhausted},
		{500, codes.Internal},
		{501, codes.Unimplemented},
		{503, codes.Unavailable},
		{504, codes.DeadlineExceeded},
		// Class fallbacks.
		{418, codes.InvalidArgument},
		{451, codes.InvalidArgument},
		{599, codes.Internal},
		{200, codes.OK},
	}
	for _, tc := range cases {
		if got := Code(tc.status); got != tc.want {
			t.Fatalf("Code(%d) = %s, want %s", tc.status, got, tc.want)
		}
	}
}

func TestToStatus(t *testing.T) {
	t.Run("nil object", func(t *testing.T) {
		if st := ToStatus(nil); st != nil {
			t.Fatal("nil object must yield nil status")
		}
	})

	t.Run("code and message", func(t *testing.T) {
		o := errobj.Create(404, "trip not found").Build()
		st := ToStatus(o)
		if st.Code() != codes.NotFound {
			t.Fatalf("code = %s, want NotFound", st.Code())
		}
		if st.Message() != "trip not found" {
			t.Fatalf("message = %q", st.Message())
		}
		if len(st.Details()) != 1 {
			t.Fatalf("details len = %d, want 1", len(st.Details()))
		}
	})
}

func TestStatusRoundTrip(t *testing.T) {
	o := errobj.Create(409, "failed to persist entity due to version conflict").
		WithShortMessage("version conflict").
		WithErrorCode("storage.version_conflict").
		AddTextDetail("entity", "trip").
		AddIntDetail("expected_version", 4).
		AddBoolDetail("retryable", true).
		AddStructFromValue("conflict", map[string]any{
			"theirs": map[string]any{"version": 5},
			"ours":   map[string]any{"version": 4},
		}).
		Build()

	back, ok := FromStatus(ToStatus(o))
	if !ok {
		t.Fatal("object not recovered from status")
	}
	if !o.Equal(back) {
		t.Fatalf("round trip mismatch:\n  original: %s\n  decoded:  %s", o, back)
	}
}

func TestFromStatus_NoObjectDetail(t *testing.T) {
	t.Run("nil status", func(t *testing.T) {
		if _, ok := FromStatus(nil); ok {
			t.Fatal("nil status must not yield an object")
		}
	})

	t.Run("plain status", func(t *testing.T) {
		st := gstatus.New(codes.Internal, "boom")
		if _, ok := FromStatus(st); ok {
			t.Fatal("status without details must not yield an object")
		}
	})
}
