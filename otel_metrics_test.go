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
	"fmt"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestMetricFormatter(t *testing.T) {
	want := "tabletstore.googleapis.com/internal/client/metric/name"
	s := metricdata.Metrics{Name: "metric.name"}
	got := metricFormatter(s)
	if want != got {
		t.Errorf("got: %v, want %v", got, want)
	}
}

func TestNewExporterLogSuppressor(t *testing.T) {
	ctx := context.Background()
	s := &exporterLogSuppressor{Exporter: &failingExporter{}}
	if err := s.Export(ctx, nil); err == nil {
		t.Errorf("exporterLogSuppressor: did not emit an error when one was expected")
	}
	if err := s.Export(ctx, nil); err != nil {
		t.Errorf("exporterLogSuppressor: emitted an error when it should have suppressed")
	}
}

type failingExporter struct {
	metric.Exporter
}

func (f *failingExporter) Export(ctx context.Context, rm *metricdata.ResourceMetrics) error {
	return fmt.Errorf("PermissionDenied")
}

func TestTabletstoreClientMonitoredResource(t *testing.T) {
	ctx := context.Background()
	// No resource detectors, so every detected attribute falls back to its
	// default.
	tmr, err := newTabletstoreClientMonitoredResource(ctx, "my-project", "my-app-profile", "test-client", "test-uid")
	if err != nil {
		t.Fatalf("newTabletstoreClientMonitoredResource failed: %v", err)
	}
	if got, want := tmr.project, "my-project"; got != want {
		t.Errorf("project: got %q, want %q", got, want)
	}
	if got, want := tmr.cloudPlatform, "unknown"; got != want {
		t.Errorf("cloudPlatform: got %q, want %q", got, want)
	}
	if got, want := tmr.hostID, "unknown"; got != want {
		t.Errorf("hostID: got %q, want %q", got, want)
	}
	if got, want := tmr.region, "global"; got != want {
		t.Errorf("region: got %q, want %q", got, want)
	}

	s := tmr.resource.Set()
	for key, want := range map[string]string{
		"gcp.resource_type": tabletstoreClientMonitoredResourceName,
		"project_id":        "my-project",
		"app_profile":       "my-app-profile",
		"client_name":       "test-client",
		"uuid":              "test-uid",
	} {
		v, ok := s.Value(attribute.Key(key))
		if !ok {
			t.Errorf("resource attribute %q missing", key)
			continue
		}
		if got := v.AsString(); got != want {
			t.Errorf("resource attribute %q: got %q, want %q", key, got, want)
		}
	}
}
