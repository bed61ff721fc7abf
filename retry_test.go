/*
Copyright 2024 Google LLC

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

package tabletstore

import (
	"errors"
	"testing"
	"time"

	gax "github.com/googleapis/gax-go/v2"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
)

func errWithRetryInfo(t *testing.T, code codes.Code, delay time.Duration) error {
	t.Helper()
	st, err := status.New(code, "server says wait").WithDetails(&errdetails.RetryInfo{
		RetryDelay: durationpb.New(delay),
	})
	if err != nil {
		t.Fatalf("building status with RetryInfo: %v", err)
	}
	return st.Err()
}

func newTestRetryer(disableRetryInfo bool) *tabletstoreRetryer {
	return &tabletstoreRetryer{
		baseRetryFn: clientOnlyRetry,
		backoff: gax.Backoff{
			Initial:    defaultBackoff.Initial,
			Max:        defaultBackoff.Max,
			Multiplier: defaultBackoff.Multiplier,
		},
		disableRetryInfo: disableRetryInfo,
	}
}

func TestRetryerUsesServerRetryInfo(t *testing.T) {
	r := newTestRetryer(false)

	wantDelay := 42 * time.Second
	delay, retry := r.Retry(errWithRetryInfo(t, codes.Unavailable, wantDelay))
	if !retry {
		t.Fatal("Retry = false, want true")
	}
	if delay != wantDelay {
		t.Errorf("delay = %v, want server-provided %v", delay, wantDelay)
	}

	// RetryInfo applies even to codes the client would not retry on its own.
	delay, retry = r.Retry(errWithRetryInfo(t, codes.InvalidArgument, wantDelay))
	if !retry || delay != wantDelay {
		t.Errorf("Retry(InvalidArgument with RetryInfo) = (%v, %v), want (%v, true)", delay, retry, wantDelay)
	}
}

func TestRetryerResetsBackoffAfterRetryInfoStops(t *testing.T) {
	r := newTestRetryer(false)

	// Burn through several client-side pauses so the backoff grows past Initial.
	for i := 0; i < 10; i++ {
		if _, retry := r.Retry(status.Error(codes.Unavailable, "transient")); !retry {
			t.Fatal("Retry = false, want true")
		}
	}

	// A server RetryInfo delay, then a plain error: the client backoff
	// restarts from its initial pause.
	if _, retry := r.Retry(errWithRetryInfo(t, codes.Unavailable, time.Minute)); !retry {
		t.Fatal("Retry(RetryInfo) = false, want true")
	}
	delay, retry := r.Retry(status.Error(codes.Unavailable, "transient"))
	if !retry {
		t.Fatal("Retry = false, want true")
	}
	if delay > defaultBackoff.Initial {
		t.Errorf("delay after RetryInfo stopped = %v, want <= %v", delay, defaultBackoff.Initial)
	}
}

func TestRetryerIgnoresRetryInfoWhenDisabled(t *testing.T) {
	r := newTestRetryer(true)

	serverDelay := 42 * time.Second
	delay, retry := r.Retry(errWithRetryInfo(t, codes.Unavailable, serverDelay))
	if !retry {
		t.Fatal("Retry = false, want true")
	}
	// Unavailable is still retryable, but on the client's own backoff.
	if delay >= serverDelay {
		t.Errorf("delay = %v, want client backoff below server's %v", delay, serverDelay)
	}

	if _, retry := r.Retry(errWithRetryInfo(t, codes.InvalidArgument, serverDelay)); retry {
		t.Error("Retry(InvalidArgument) = true, want false with RetryInfo disabled")
	}
}

func TestClientOnlyRetry(t *testing.T) {
	for _, test := range []struct {
		desc string
		err  error
		want bool
	}{
		{"unavailable", status.Error(codes.Unavailable, "transient"), true},
		{"deadline exceeded", status.Error(codes.DeadlineExceeded, "too slow"), true},
		{"aborted", status.Error(codes.Aborted, "aborted"), true},
		{"invalid argument", status.Error(codes.InvalidArgument, "bad request"), false},
		{"not found", status.Error(codes.NotFound, "no such table"), false},
		{"internal rst stream", status.Error(codes.Internal, "stream terminated by RST_STREAM"), true},
		{"internal other", status.Error(codes.Internal, "blew up"), false},
		{"not a status error", errors.New("plain"), false},
	} {
		backoff := defaultBackoff
		if _, got := clientOnlyRetry(&backoff, test.err); got != test.want {
			t.Errorf("%s: clientOnlyRetry = %v, want %v", test.desc, got, test.want)
		}
	}
}
