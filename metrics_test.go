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
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"cloud.google.com/go/internal/testutil"
	tspb "cloud.google.com/go/tabletstore/apiv2/tabletstorepb"
	"github.com/golang/protobuf/proto"
	"github.com/google/go-cmp/cmp/cmpopts"
	gax "github.com/googleapis/gax-go/v2"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var (
	clusterID1 = "cluster-id-1"
	clusterID2 = "cluster-id-2"
	zoneID1    = "zone-id-1"

	testHeaders, _ = proto.Marshal(&tspb.ResponseParams{
		ClusterId: &clusterID1,
		ZoneId:    &zoneID1,
	})
	testTrailers, _ = proto.Marshal(&tspb.ResponseParams{
		ClusterId: &clusterID2,
		ZoneId:    &zoneID1,
	})

	testHeaderMD = &metadata.MD{
		locationMDKey:     []string{string(testHeaders)},
		serverTimingMDKey: []string{"gfet4t7; dur=1234"},
	}
	testTrailerMD = &metadata.MD{
		locationMDKey:     []string{string(testTrailers)},
		serverTimingMDKey: []string{"gfet4t7; dur=5678"},
	}
)

func equalErrs(gotErr error, wantErr error) bool {
	if gotErr == nil && wantErr == nil {
		return true
	}
	if gotErr == nil || wantErr == nil {
		return false
	}
	return strings.Contains(gotErr.Error(), wantErr.Error())
}

type unknownMetricsProvider struct{}

func (unknownMetricsProvider) isMetricsProvider() {}

func TestNewBuiltinMetricsTracerFactory(t *testing.T) {
	ctx := context.Background()
	project := "test-project"
	appProfile := "test-app-profile"
	clientUID := "test-uid"

	origGenerateClientUID := generateClientUID
	generateClientUID = func() (string, error) {
		return clientUID, nil
	}
	defer func() {
		generateClientUID = origGenerateClientUID
	}()

	wantClientAttributes := []attribute.KeyValue{
		attribute.String(monitoredResLabelKeyProject, project),
		attribute.String(metricLabelKeyAppProfile, appProfile),
		attribute.String(metricLabelKeyClientUID, clientUID),
		attribute.String(metricLabelKeyClientName, clientName),
	}

	customMeterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))
	customOpenTelemetryMetricsProvider := CustomOpenTelemetryMetricsProvider{MeterProvider: customMeterProvider}

	tests := []struct {
		desc               string
		metricsProvider    MetricsProvider
		wantError          error
		wantBuiltinEnabled bool
		setEmulator        bool
	}{
		{
			desc:               "should create a new tracer factory with custom meter provider",
			metricsProvider:    customOpenTelemetryMetricsProvider,
			wantBuiltinEnabled: true,
		},
		{
			desc:            "should create a new tracer factory with noop meter provider",
			metricsProvider: NoopMetricsProvider{},
		},
		{
			desc:            "should not create instruments when TABLETSTORE_EMULATOR_HOST is set",
			metricsProvider: customOpenTelemetryMetricsProvider,
			setEmulator:     true,
		},
		{
			desc:            "should return an error for unknown metrics provider type",
			metricsProvider: unknownMetricsProvider{},
			wantError:       errors.New("unknown MetricsProvider type"),
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			if test.setEmulator {
				t.Setenv("TABLETSTORE_EMULATOR_HOST", "localhost:8086")
			}
			tracerFactory, gotErr := newBuiltinMetricsTracerFactory(ctx, project, appProfile, test.metricsProvider)
			if !equalErrs(gotErr, test.wantError) {
				t.Fatalf("err: got: %v, want: %v", gotErr, test.wantError)
			}
			if tracerFactory.builtinEnabled != test.wantBuiltinEnabled {
				t.Errorf("builtinEnabled: got: %v, want: %v", tracerFactory.builtinEnabled, test.wantBuiltinEnabled)
			}

			if diff := testutil.Diff(tracerFactory.clientAttributes, wantClientAttributes,
				cmpopts.IgnoreUnexported(attribute.KeyValue{}, attribute.Value{})); diff != "" {
				t.Errorf("clientAttributes: got=-, want=+ \n%v", diff)
			}

			// Check instruments
			gotNonNilInstruments := tracerFactory.operationLatencies != nil &&
				tracerFactory.serverLatencies != nil &&
				tracerFactory.attemptLatencies != nil &&
				tracerFactory.retryCount != nil
			if test.wantBuiltinEnabled != gotNonNilInstruments {
				t.Errorf("NonNilInstruments: got: %v, want: %v", gotNonNilInstruments, test.wantBuiltinEnabled)
			}
		})
	}
}

func TestToOtelMetricAttrs(t *testing.T) {
	mt := builtinMetricsTracer{
		instanceID:  "my-instance",
		tableName:   "my-table",
		method:      "ReadRows",
		isStreaming: true,
	}
	tests := []struct {
		desc       string
		metricName string
		wantAttrs  []attribute.KeyValue
		wantError  error
	}{
		{
			desc:       "Known metric",
			metricName: metricNameOperationLatencies,
			wantAttrs: []attribute.KeyValue{
				attribute.String(metricLabelKeyMethod, "ReadRows"),
				attribute.String(monitoredResLabelKeyInstance, "my-instance"),
				attribute.String(monitoredResLabelKeyTable, "my-table"),
				attribute.String(monitoredResLabelKeyCluster, clusterID1),
				attribute.String(monitoredResLabelKeyZone, zoneID1),
				attribute.String(metricLabelKeyStatus, codes.OK.String()),
				attribute.Bool(metricLabelKeyStreamingOperation, true),
			},
			wantError: nil,
		},
		{
			desc:       "Unknown metric",
			metricName: "unknown_metric",
			wantAttrs:  nil,
			wantError:  fmt.Errorf("unable to create attributes list for unknown metric: unknown_metric"),
		},
	}

	lessKeyValue := func(a, b attribute.KeyValue) bool { return a.Key < b.Key }
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			gotAttrs, gotErr := mt.toOtelMetricAttrs(test.metricName, testHeaderMD, &metadata.MD{}, codes.OK.String())
			if !equalErrs(gotErr, test.wantError) {
				t.Errorf("error got: %v, want: %v", gotErr, test.wantError)
			}
			if diff := testutil.Diff(gotAttrs, test.wantAttrs,
				cmpopts.IgnoreUnexported(attribute.KeyValue{}, attribute.Value{}),
				cmpopts.SortSlices(lessKeyValue)); diff != "" {
				t.Errorf("got=-, want=+ \n%v", diff)
			}
		})
	}
}

// collectMetrics reads whatever the manual reader has accumulated.
func collectMetrics(ctx context.Context, t *testing.T, mr *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	rm := metricdata.ResourceMetrics{}
	if err := mr.Collect(ctx, &rm); err != nil {
		t.Fatalf("ManualReader.Collect failed: %v", err)
	}
	got := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			got[m.Name] = m
		}
	}
	return got
}

func TestGaxInvokeWithRecorder(t *testing.T) {
	ctx := context.Background()
	mr := sdkmetric.NewManualReader()
	provider := CustomOpenTelemetryMetricsProvider{
		MeterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(mr)),
	}
	tf, err := newBuiltinMetricsTracerFactory(ctx, "proj", "profile", provider)
	if err != nil {
		t.Fatalf("newBuiltinMetricsTracerFactory failed: %v", err)
	}

	mt := tf.newBuiltinMetricsTracer(ctx, "inst", "tbl", false)
	attempts := 0
	err = gaxInvokeWithRecorder(ctx, &mt, "MutateRow", func(ctx context.Context, _ gax.CallSettings) error {
		attempts++
		if attempts < 3 {
			return status.Error(codes.Unavailable, "try again")
		}
		return nil
	}, defaultRetryOption)
	if err != nil {
		t.Fatalf("gaxInvokeWithRecorder failed: %v", err)
	}
	mt.currOp.setStatus(codes.OK.String())
	mt.recordOperationCompletion()

	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if mt.currOp.attemptCount != 3 {
		t.Errorf("attemptCount = %d, want 3", mt.currOp.attemptCount)
	}

	got := collectMetrics(ctx, t, mr)
	if _, ok := got[metricNameAttemptLatencies]; !ok {
		t.Errorf("attempt_latencies not recorded")
	}
	if _, ok := got[metricNameOperationLatencies]; !ok {
		t.Errorf("operation_latencies not recorded")
	}
	rc, ok := got[metricNameRetryCount]
	if !ok {
		t.Fatalf("retry_count not recorded")
	}
	sum, ok := rc.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("retry_count data is %T, want Sum[int64]", rc.Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	if total != 2 {
		t.Errorf("retry_count = %d, want 2", total)
	}
}
