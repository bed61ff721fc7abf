package tabletstore

import (
	"context"
	"fmt"
	"strings"

	mexporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/metric"
	"go.opentelemetry.io/contrib/detectors/gcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/resource"
)

const (
	tabletstoreClientMonitoredResourceName = "tabletstore_client"
)

// tabletstore_client monitored resource labels
type tabletstoreClientMonitoredResource struct {
	project       string // project
	appProfile    string // app_profile
	cloudPlatform string // cloud_platform
	region        string // client_region
	hostID        string // host_id
	hostName      string // host_name
	clientName    string // client_name
	clientUID     string // uuid
	resource      *resource.Resource
}

func (tmr *tabletstoreClientMonitoredResource) exporter() (metric.Exporter, error) {
	exporter, err := mexporter.New(
		mexporter.WithProjectID(tmr.project),
		mexporter.WithMetricDescriptorTypeFormatter(metricFormatter),
		mexporter.WithCreateServiceTimeSeries(),
		mexporter.WithMonitoredResourceDescription(tabletstoreClientMonitoredResourceName, []string{"project_id", "app_profile", "cloud_platform", "host_id", "host_name", "client_name", "uuid", "region"}),
	)
	if err != nil {
		return nil, fmt.Errorf("tabletstore: creating metrics exporter: %w", err)
	}
	return exporter, nil
}

func metricFormatter(m metricdata.Metrics) string {
	// converts operation_latencies to `tabletstore.googleapis.com/internal/client/operation_latencies`
	return builtInMetricsMeterName + strings.ReplaceAll(string(m.Name), ".", "/")
}

func newTabletstoreClientMonitoredResource(ctx context.Context, project, appProfile, clientName, clientUID string, opts ...resource.Option) (*tabletstoreClientMonitoredResource, error) {
	detectedAttrs, err := resource.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	tmr := &tabletstoreClientMonitoredResource{
		project:    project,
		appProfile: appProfile,
		clientName: clientName,
		clientUID:  clientUID,
	}
	s := detectedAttrs.Set()
	// Attempt to use resource detector project id if project id wasn't
	// identified using ADC as a last resort. Otherwise metrics cannot be started.
	if p, present := s.Value("cloud.account.id"); present && tmr.project == "" {
		tmr.project = p.AsString()
	}
	if v, ok := s.Value("cloud.platform"); ok {
		tmr.cloudPlatform = v.AsString()
	} else {
		tmr.cloudPlatform = "unknown"
	}
	if v, ok := s.Value("host.id"); ok {
		tmr.hostID = v.AsString()
		// cloud run / cloud functions have faas.id instead of host.id
	} else if v, ok := s.Value("faas.id"); ok {
		tmr.hostID = v.AsString()
	} else {
		tmr.hostID = "unknown"
	}

	if v, ok := s.Value("cloud.region"); ok {
		tmr.region = v.AsString()
	} else {
		tmr.region = "global"
	}
	if v, ok := s.Value("host.name"); ok {
		tmr.hostName = v.AsString()
	} else {
		tmr.hostName = "unknown"
	}
	tmr.resource, err = resource.New(ctx, resource.WithAttributes([]attribute.KeyValue{
		{Key: "gcp.resource_type", Value: attribute.StringValue(tabletstoreClientMonitoredResourceName)},
		{Key: "project_id", Value: attribute.StringValue(tmr.project)},
		{Key: "app_profile", Value: attribute.StringValue(tmr.appProfile)},
		{Key: "region", Value: attribute.StringValue(tmr.region)},
		{Key: "cloud_platform", Value: attribute.StringValue(tmr.cloudPlatform)},
		{Key: "host_id", Value: attribute.StringValue(tmr.hostID)},
		{Key: "host_name", Value: attribute.StringValue(tmr.hostName)},
		{Key: "client_name", Value: attribute.StringValue(tmr.clientName)},
		{Key: "uuid", Value: attribute.StringValue(tmr.clientUID)},
	}...))
	if err != nil {
		return nil, err
	}
	return tmr, nil
}

func builtInMeterProviderOptions(ctx context.Context, project, appProfile, clientUID string) ([]metric.Option, error) {
	tmr, err := newTabletstoreClientMonitoredResource(ctx, project, appProfile, clientName, clientUID,
		resource.WithDetectors(gcp.NewDetector()))
	if err != nil {
		return nil, err
	}
	exporter, err := tmr.exporter()
	if err != nil {
		return nil, err
	}
	return []metric.Option{
		metric.WithResource(tmr.resource),
		metric.WithReader(metric.NewPeriodicReader(&exporterLogSuppressor{Exporter: exporter},
			metric.WithInterval(defaultSamplePeriod))),
	}, nil
}

// Silences permission errors after initial error is emitted to prevent
// chatty logs.
type exporterLogSuppressor struct {
	metric.Exporter
	emittedFailure bool
}

// Implements OTel SDK metric.Exporter interface to prevent noisy logs from
// lack of credentials after initial failure.
func (e *exporterLogSuppressor) Export(ctx context.Context, rm *metricdata.ResourceMetrics) error {
	if err := e.Exporter.Export(ctx, rm); err != nil && !e.emittedFailure {
		if strings.Contains(err.Error(), "PermissionDenied") {
			e.emittedFailure = true
			return fmt.Errorf("metrics failed due permission issue: %w", err)
		}
		return err
	}
	return nil
}
