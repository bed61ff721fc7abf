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

package tstest

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Fault injection for the emulator's streaming methods. Targets are parsed
// from command-line flags of the emulator binary; only streaming methods can
// be targeted because that is where clients exercise retry and resumption.
var streamMethodSuffixes = []string{"ReadRows", "SampleRowKeys"}

func checkStreamMethodSuffix(kind, s string) (string, error) {
	for _, v := range streamMethodSuffixes {
		if s == v {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid method for %s. Expected one of: %s", kind, streamMethodSuffixes)
}

// splitTarget splits a flag value of the form <method>:<a>:<b>.
func splitTarget(s, form string) (method, a, b string, err error) {
	pieces := strings.Split(s, ":")
	if len(pieces) != 3 {
		return "", "", "", fmt.Errorf("expected target in form of: %s", form)
	}
	return pieces[0], pieces[1], pieces[2], nil
}

// EmulatorInterceptorBuilder collects latency and error targets and builds a
// stream interceptor that applies them.
type EmulatorInterceptorBuilder struct {
	LatencyTargets       latencyTargets
	GrpcErrorCodeTargets grpcErrorCodeTargets
}

func (esib *EmulatorInterceptorBuilder) BuildStreamInterceptor() grpc.ServerOption {
	log.Println("Building Stream Server Interceptor:")
	if len(esib.LatencyTargets) > 0 {
		log.Printf(" - Latency Targets: %s\n", esib.LatencyTargets.String())
	}
	if len(esib.GrpcErrorCodeTargets) > 0 {
		log.Printf(" - Error Targets: %s\n", esib.GrpcErrorCodeTargets.String())
		esib.stackGrpcErrorCodeTargets()
	}
	return grpc.StreamInterceptor(esib.intercept)
}

// stackGrpcErrorCodeTargets sorts the error targets by rate and accumulates
// the rates, so that a single random draw against the stacked values throws
// each error at its own configured rate. [ReadRows:20%:12, ReadRows:10%:14]
// becomes [ReadRows:10%:14, ReadRows:30%:12]: a draw below 10 throws code 14
// and a draw in [10, 30) throws code 12.
func (esib *EmulatorInterceptorBuilder) stackGrpcErrorCodeTargets() {
	ets := esib.GrpcErrorCodeTargets
	sort.SliceStable(ets, func(i, j int) bool { return ets[i].errorRate < ets[j].errorRate })
	var stacked int32
	for i := range ets {
		stacked += ets[i].errorRate
		ets[i].errorRate = stacked
	}
}

func (esib *EmulatorInterceptorBuilder) intercept(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()

	draw := rand.Int31n(100)
	for _, lt := range esib.LatencyTargets {
		if strings.HasSuffix(info.FullMethod, lt.methodSuffix) && draw >= lt.percentile {
			if pad := lt.expectedDuration - time.Since(start); pad > 0 {
				time.Sleep(pad)
			}
		}
	}

	// Real handler errors win over injected ones.
	if err := handler(srv, ss); err != nil {
		return err
	}

	draw = rand.Int31n(100)
	for _, gt := range esib.GrpcErrorCodeTargets {
		if strings.HasSuffix(info.FullMethod, gt.methodSuffix) && draw < gt.errorRate {
			return status.Error(gt.grpcErrorCode, "Injected Emulator Error")
		}
	}
	return nil
}

// A latencyTarget makes a method take at least a given duration at a given
// percentile of calls, e.g. ReadRows:p50:100ms.
type latencyTarget struct {
	methodSuffix     string
	percentile       int32
	expectedDuration time.Duration
}

func newLatencyTarget(s string) (*latencyTarget, error) {
	method, pct, dur, err := splitTarget(s, "<method>:<percentile>:<duration>")
	if err != nil {
		return nil, err
	}
	lt := &latencyTarget{}
	if lt.methodSuffix, err = checkStreamMethodSuffix("Latency Target", method); err != nil {
		return nil, err
	}
	p, err := strconv.Atoi(strings.TrimPrefix(pct, "p"))
	if err != nil || p < 0 || p > 99 {
		return nil, fmt.Errorf("invalid latency percentile: %s. Expected integer between 0 and 99", pct)
	}
	lt.percentile = int32(p)
	if lt.expectedDuration, err = time.ParseDuration(dur); err != nil {
		return nil, fmt.Errorf("invalid latency duration: %s: %v", dur, err)
	}
	return lt, nil
}

func (lt *latencyTarget) String() string {
	return fmt.Sprintf("%s:p%d:%s", lt.methodSuffix, lt.percentile, lt.expectedDuration)
}

// latencyTargets is a repeatable flag.Value.
type latencyTargets []latencyTarget

func (lts *latencyTargets) Set(s string) error {
	lt, err := newLatencyTarget(s)
	if err != nil {
		return err
	}
	*lts = append(*lts, *lt)
	return nil
}

func (lts *latencyTargets) String() string {
	var s []string
	for i := range *lts {
		s = append(s, (*lts)[i].String())
	}
	return strings.Join(s, ", ")
}

// A grpcErrorCodeTarget makes a method fail with a given code at a given
// rate, e.g. ReadRows:10%:14 fails 10% of ReadRows calls with code 14
// (Unavailable).
type grpcErrorCodeTarget struct {
	methodSuffix  string
	errorRate     int32
	grpcErrorCode codes.Code
}

func newErrorTarget(s string) (*grpcErrorCodeTarget, error) {
	method, rate, code, err := splitTarget(s, "<method>:<error_rate>:<grpc_error_code>")
	if err != nil {
		return nil, err
	}
	gt := &grpcErrorCodeTarget{}
	if gt.methodSuffix, err = checkStreamMethodSuffix("GRPC Error Target", method); err != nil {
		return nil, err
	}
	r, err := strconv.Atoi(strings.TrimSuffix(rate, "%"))
	if err != nil || r < 0 || r > 100 {
		return nil, fmt.Errorf("invalid error rate: %s. Expected integer between 0 and 100", rate)
	}
	gt.errorRate = int32(r)
	// UnmarshalJSON validates against the codes google.golang.org/grpc/codes knows.
	if err := gt.grpcErrorCode.UnmarshalJSON([]byte(code)); err != nil {
		return nil, fmt.Errorf("invalid GRPC Error Code: %s: %v", code, err)
	}
	return gt, nil
}

func (gt *grpcErrorCodeTarget) String() string {
	return fmt.Sprintf("%s:%d%%:%v", gt.methodSuffix, gt.errorRate, gt.grpcErrorCode)
}

// grpcErrorCodeTargets is a repeatable flag.Value. Set rejects a target that
// would push the combined rate past 100%.
type grpcErrorCodeTargets []grpcErrorCodeTarget

func (ets *grpcErrorCodeTargets) Set(s string) error {
	et, err := newErrorTarget(s)
	if err != nil {
		return err
	}
	*ets = append(*ets, *et)
	if ets.GetTotalErrorRate() > 100 {
		return fmt.Errorf("hit errorRate > 100 on %s", s)
	}
	return nil
}

func (ets *grpcErrorCodeTargets) GetTotalErrorRate() int32 {
	var total int32
	for _, v := range *ets {
		total += v.errorRate
	}
	return total
}

func (ets *grpcErrorCodeTargets) String() string {
	var s []string
	for i := range *ets {
		s = append(s, (*ets)[i].String())
	}
	return strings.Join(s, ", ")
}
