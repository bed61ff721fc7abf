// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tstest

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/tabletstore"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

func TestLatencyTargetParsing(t *testing.T) {
	for _, test := range []struct {
		in   string
		want latencyTarget
	}{
		{"ReadRows:p50:100ms", latencyTarget{"ReadRows", 50, 100 * time.Millisecond}},
		{"SampleRowKeys:0:2s", latencyTarget{"SampleRowKeys", 0, 2 * time.Second}},
		{"ReadRows:p99:1.5s", latencyTarget{"ReadRows", 99, 1500 * time.Millisecond}},
	} {
		got, err := newLatencyTarget(test.in)
		if err != nil {
			t.Errorf("newLatencyTarget(%q): %v", test.in, err)
			continue
		}
		if *got != test.want {
			t.Errorf("newLatencyTarget(%q) = %+v, want %+v", test.in, *got, test.want)
		}
	}

	for _, in := range []string{
		"MutateRow:p50:100ms", // not a streaming method
		"ReadRows:p100:100ms", // percentile out of range
		"ReadRows:px:100ms",   // not a number
		"ReadRows:p50:100",    // missing duration unit
		"ReadRows:p50",        // missing piece
		"",
	} {
		if _, err := newLatencyTarget(in); err == nil {
			t.Errorf("newLatencyTarget(%q) succeeded, want error", in)
		}
	}
}

func TestErrorTargetParsing(t *testing.T) {
	for _, test := range []struct {
		in   string
		want grpcErrorCodeTarget
	}{
		{"ReadRows:10%:14", grpcErrorCodeTarget{"ReadRows", 10, codes.Unavailable}},
		{"SampleRowKeys:100:9", grpcErrorCodeTarget{"SampleRowKeys", 100, codes.FailedPrecondition}},
		{"ReadRows:0%:5", grpcErrorCodeTarget{"ReadRows", 0, codes.NotFound}},
	} {
		got, err := newErrorTarget(test.in)
		if err != nil {
			t.Errorf("newErrorTarget(%q): %v", test.in, err)
			continue
		}
		if *got != test.want {
			t.Errorf("newErrorTarget(%q) = %+v, want %+v", test.in, *got, test.want)
		}
	}

	for _, in := range []string{
		"PingAndWarm:10%:14", // not a streaming method
		"ReadRows:101%:14",   // rate out of range
		"ReadRows:x%:14",     // not a number
		"ReadRows:10%:255",   // not a GRPC code
		"ReadRows:10%",       // missing piece
	} {
		if _, err := newErrorTarget(in); err == nil {
			t.Errorf("newErrorTarget(%q) succeeded, want error", in)
		}
	}
}

func TestErrorTargetTotalRate(t *testing.T) {
	var ets grpcErrorCodeTargets
	if err := ets.Set("ReadRows:60%:14"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := ets.Set("ReadRows:40%:4"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, want := ets.GetTotalErrorRate(), int32(100); got != want {
		t.Errorf("GetTotalErrorRate() = %d, want %d", got, want)
	}
	if err := ets.Set("ReadRows:1%:14"); err == nil {
		t.Error("Set beyond 100% succeeded, want error")
	}
}

func TestStackGrpcErrorCodeTargets(t *testing.T) {
	b := &EmulatorInterceptorBuilder{}
	if err := b.GrpcErrorCodeTargets.Set("ReadRows:20%:12"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.GrpcErrorCodeTargets.Set("ReadRows:10%:14"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	b.stackGrpcErrorCodeTargets()

	// Targets are sorted by rate and then accumulated, so a random draw
	// below 10 picks code 14 and a draw in [10, 30) picks code 12.
	want := grpcErrorCodeTargets{
		{"ReadRows", 10, codes.Unavailable},
		{"ReadRows", 30, codes.Unimplemented},
	}
	if len(b.GrpcErrorCodeTargets) != len(want) {
		t.Fatalf("stacked %d targets, want %d", len(b.GrpcErrorCodeTargets), len(want))
	}
	for i := range want {
		if b.GrpcErrorCodeTargets[i] != want[i] {
			t.Errorf("stacked target %d = %+v, want %+v", i, b.GrpcErrorCodeTargets[i], want[i])
		}
	}
}

// setupFakeServer starts an in-process server with the given options and
// returns a Table backed by it.
func setupFakeServer(t *testing.T, opt ...grpc.ServerOption) (*tabletstore.Table, func()) {
	t.Helper()
	srv, err := NewServer("localhost:0", opt...)
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		srv.Close()
		t.Fatal(err)
	}

	config := tabletstore.ClientConfig{Admin: true, MetricsProvider: tabletstore.NoopMetricsProvider{}}
	client, err := tabletstore.NewClientWithConfig(ctx, "client", config, option.WithGRPCConn(conn))
	if err != nil {
		srv.Close()
		t.Fatal(err)
	}

	inst := client.Instance("instance")
	if err := inst.CreateTable(ctx, "table"); err != nil {
		t.Fatal(err)
	}
	if err := inst.CreateColumnFamily(ctx, "table", "cf"); err != nil {
		t.Fatal(err)
	}

	tbl := inst.Table("table")
	cleanup := func() {
		client.Close()
		srv.Close()
	}
	return tbl, cleanup
}

func TestAddLatency(t *testing.T) {
	b := &EmulatorInterceptorBuilder{}
	if err := b.LatencyTargets.Set("SampleRowKeys:p0:300ms"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	tbl, cleanup := setupFakeServer(t, b.BuildStreamInterceptor())
	defer cleanup()

	ctx := context.Background()

	start := time.Now()
	if _, err := tbl.SampleRowKeys(ctx); err != nil {
		t.Fatalf("SampleRowKeys: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 300*time.Millisecond {
		t.Errorf("SampleRowKeys returned after %v, want at least 300ms", elapsed)
	}

	// Untargeted methods are unaffected.
	start = time.Now()
	if err := tbl.ReadRows(ctx, tabletstore.InfiniteRange(""), func(tabletstore.Row) bool { return true }); err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if elapsed := time.Since(start); elapsed >= 300*time.Millisecond {
		t.Errorf("ReadRows returned after %v, want less than 300ms", elapsed)
	}
}

func TestAddError(t *testing.T) {
	b := &EmulatorInterceptorBuilder{}
	// FailedPrecondition is not retried by the client, so the injected
	// error surfaces on the first attempt.
	if err := b.GrpcErrorCodeTargets.Set("ReadRows:100%:9"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	tbl, cleanup := setupFakeServer(t, b.BuildStreamInterceptor())
	defer cleanup()

	ctx := context.Background()

	err := tbl.ReadRows(ctx, tabletstore.InfiniteRange(""), func(tabletstore.Row) bool { return true })
	if got, want := status.Code(err), codes.FailedPrecondition; got != want {
		t.Errorf("ReadRows error code = %v, want %v", got, want)
	}

	// Untargeted methods are unaffected.
	if _, err := tbl.SampleRowKeys(ctx); err != nil {
		t.Errorf("SampleRowKeys: %v", err)
	}
}

func TestAddMultipleErrors(t *testing.T) {
	b := &EmulatorInterceptorBuilder{}
	if err := b.GrpcErrorCodeTargets.Set("ReadRows:50%:9"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.GrpcErrorCodeTargets.Set("ReadRows:50%:5"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	tbl, cleanup := setupFakeServer(t, b.BuildStreamInterceptor())
	defer cleanup()

	ctx := context.Background()

	counts := make(map[codes.Code]int)
	for i := 0; i < 25; i++ {
		err := tbl.ReadRows(ctx, tabletstore.InfiniteRange(""), func(tabletstore.Row) bool { return true })
		if err == nil {
			t.Fatal("ReadRows succeeded, want injected error")
		}
		code := status.Code(err)
		if code != codes.FailedPrecondition && code != codes.NotFound {
			t.Fatalf("ReadRows error code = %v, want FailedPrecondition or NotFound", code)
		}
		counts[code]++
	}
	if len(counts) != 2 {
		t.Errorf("saw error codes %v, want both FailedPrecondition and NotFound", counts)
	}
}
