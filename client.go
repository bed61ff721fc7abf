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

package tabletstore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"sync"

	lropb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	adminpb "cloud.google.com/go/tabletstore/admin/apiv2/adminpb"
	tspb "cloud.google.com/go/tabletstore/apiv2/tabletstorepb"
	tsopt "cloud.google.com/go/tabletstore/internal/option"
	gax "github.com/googleapis/gax-go/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"google.golang.org/api/option"
	"google.golang.org/api/option/internaloption"
	gtransport "google.golang.org/api/transport/grpc"
	"google.golang.org/grpc"
)

var (
	// ErrConflictingAccessMode is returned when a client is configured for
	// both administrative and read-only access. The two modes request
	// different OAuth scopes and cannot be combined.
	ErrConflictingAccessMode = errors.New("tabletstore: ReadOnly is not compatible with Admin")

	// ErrAdminRequired is returned when an administrative operation is
	// attempted on a client that was not configured with Admin access.
	ErrAdminRequired = errors.New("tabletstore: admin access required")
)

// Client is a client for a Cloud Tabletstore project. It is used to read and
// write table data, and, when configured with admin access, to manage the
// project's instances and tables.
//
// A Client is safe to use concurrently, except for its Close method.
type Client struct {
	project    string
	appProfile string
	scopes     []string
	admin      bool
	readOnly   bool

	// opts are the dial options the client was created with. They are
	// retained so that connections can be dialed on first use.
	opts []option.ClientOption

	metricsTracerFactory *builtinMetricsTracerFactory
	retryOption          gax.CallOption

	// mu guards the lazily created connections and stubs below. Each stub
	// is created at most once per client and reused thereafter.
	mu        sync.Mutex
	dConnPool gtransport.ConnPool
	dClient   tspb.TabletstoreClient
	iConnPool gtransport.ConnPool
	iClient   adminpb.TabletstoreInstanceAdminClient
	lroClient lropb.OperationsClient
	tConnPool gtransport.ConnPool
	tClient   adminpb.TabletstoreTableAdminClient
}

// ClientConfig has configurations for the client.
type ClientConfig struct {
	// The id of the app profile to associate with all data operations sent
	// from this client. If unspecified, the default app profile for the
	// instance will be used.
	AppProfile string

	// Admin requests access to the administrative APIs for the project's
	// instances and tables in addition to the data APIs. Operations such as
	// creating instances or tables fail with ErrAdminRequired unless Admin
	// was set when the client was created.
	Admin bool

	// ReadOnly requests read-only access to table data. It is not compatible
	// with Admin.
	ReadOnly bool

	// If not set or set to nil, client side metrics will be collected and
	// exported to Cloud Monitoring.
	//
	// To disable client side metrics, set 'MetricsProvider' to
	// 'NoopMetricsProvider'.
	//
	// To export metrics through a user provided OpenTelemetry meter provider,
	// set 'MetricsProvider' to 'CustomOpenTelemetryMetricsProvider'.
	MetricsProvider MetricsProvider
}

// MetricsProvider is a wrapper for built in metrics meter provider
type MetricsProvider interface {
	isMetricsProvider()
}

// NoopMetricsProvider can be used to disable built in metrics
type NoopMetricsProvider struct{}

func (NoopMetricsProvider) isMetricsProvider() {}

// CustomOpenTelemetryMetricsProvider can be used to collect built in metrics
// with a user provided OpenTelemetry meter provider.
type CustomOpenTelemetryMetricsProvider struct {
	// MeterProvider is the meter provider the built in metrics are
	// recorded against. The user owns its readers and exporters.
	MeterProvider *sdkmetric.MeterProvider
}

func (CustomOpenTelemetryMetricsProvider) isMetricsProvider() {}

// NewClient creates a new Client for a given project.
// The default ClientConfig will be used.
func NewClient(ctx context.Context, project string, opts ...option.ClientOption) (*Client, error) {
	return NewClientWithConfig(ctx, project, ClientConfig{}, opts...)
}

// NewClientWithConfig creates a new client with the given config.
//
// The client's access mode, and with it the OAuth scopes its connections
// will request, is fixed at creation. No connection is opened here; each
// of the client's service connections is dialed on first use.
func NewClientWithConfig(ctx context.Context, project string, config ClientConfig, opts ...option.ClientOption) (*Client, error) {
	scopes, err := resolveScopes(config.Admin, config.ReadOnly)
	if err != nil {
		return nil, err
	}

	metricsProvider := config.MetricsProvider
	if emulatorAddr := os.Getenv("TABLETSTORE_EMULATOR_HOST"); emulatorAddr != "" {
		// Do not emit metrics when emulator is being used
		metricsProvider = NoopMetricsProvider{}
	}

	metricsTracerFactory, err := newBuiltinMetricsTracerFactory(ctx, project, config.AppProfile, metricsProvider)
	if err != nil {
		return nil, err
	}

	// If DISABLE_RETRY_INFO=1, the library does not base retry decisions and
	// back off times on server returned RetryInfo values.
	retryOption := defaultRetryOption
	if os.Getenv("DISABLE_RETRY_INFO") == "1" {
		retryOption = clientOnlyRetryOption
	}

	return &Client{
		project:              project,
		appProfile:           config.AppProfile,
		scopes:               scopes,
		admin:                config.Admin,
		readOnly:             config.ReadOnly,
		opts:                 opts,
		metricsTracerFactory: metricsTracerFactory,
		retryOption:          retryOption,
	}, nil
}

// resolveScopes returns the OAuth scopes a client with the given access mode
// will request: the data scope by default, additionally the admin scope for
// admin clients, and only the read-only scope for read-only clients.
func resolveScopes(admin, readOnly bool) ([]string, error) {
	if admin && readOnly {
		return nil, ErrConflictingAccessMode
	}
	switch {
	case readOnly:
		return []string{ReadonlyScope}, nil
	case admin:
		return []string{Scope, AdminScope}, nil
	default:
		return []string{Scope}, nil
	}
}

// defaultOptions returns the options every connection of this client is
// dialed with. User supplied options are appended last so they take
// precedence.
func (c *Client) defaultOptions(endpoint, mtlsEndpoint string, extra ...option.ClientOption) ([]option.ClientOption, error) {
	o, err := tsopt.DefaultClientOptions(endpoint, mtlsEndpoint, clientUserAgent, c.scopes...)
	if err != nil {
		return nil, err
	}
	// Add gRPC client interceptors to supply Google client information.
	// No external interceptors are passed.
	o = append(o, tsopt.ClientInterceptorOptions(nil, nil)...)
	// Allow non-default service account in DirectPath.
	o = append(o, internaloption.AllowNonDefaultServiceAccount(true))
	o = append(o, extra...)
	o = append(o, c.opts...)
	return o, nil
}

// dataClient returns the data plane stub, dialing the data endpoint on first
// use.
func (c *Client) dataClient(ctx context.Context) (tspb.TabletstoreClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dClient != nil {
		return c.dClient, nil
	}
	o, err := c.defaultOptions(prodAddr, mtlsProdAddr,
		// Default to a small connection pool that can be overridden.
		option.WithGRPCConnectionPool(4),
		// Set the max size to correspond to server-side limits.
		option.WithGRPCDialOption(grpc.WithDefaultCallOptions(grpc.MaxCallSendMsgSize(1<<28), grpc.MaxCallRecvMsgSize(1<<28))),
	)
	if err != nil {
		return nil, err
	}
	connPool, err := gtransport.DialPool(ctx, o...)
	if err != nil {
		return nil, fmt.Errorf("dialing data endpoint: %w", err)
	}
	c.dConnPool = connPool
	c.dClient = tspb.NewTabletstoreClient(connPool)
	return c.dClient, nil
}

// instanceAdminClient returns the instance admin stub, dialing the admin
// endpoint on first use. It fails with ErrAdminRequired unless the client
// was configured with admin access, whether or not a connection was
// supplied.
func (c *Client) instanceAdminClient(ctx context.Context) (adminpb.TabletstoreInstanceAdminClient, error) {
	if !c.admin {
		return nil, ErrAdminRequired
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.iClient != nil {
		return c.iClient, nil
	}
	o, err := c.defaultOptions(adminAddr, mtlsAdminAddr)
	if err != nil {
		return nil, err
	}
	connPool, err := gtransport.DialPool(ctx, o...)
	if err != nil {
		return nil, fmt.Errorf("dialing admin endpoint: %w", err)
	}
	c.iConnPool = connPool
	c.iClient = adminpb.NewTabletstoreInstanceAdminClient(connPool)
	c.lroClient = lropb.NewOperationsClient(connPool)
	return c.iClient, nil
}

// tableAdminClient returns the table admin stub, dialing the admin endpoint
// on first use. It fails with ErrAdminRequired under exactly the same
// conditions as instanceAdminClient.
func (c *Client) tableAdminClient(ctx context.Context) (adminpb.TabletstoreTableAdminClient, error) {
	if !c.admin {
		return nil, ErrAdminRequired
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tClient != nil {
		return c.tClient, nil
	}
	o, err := c.defaultOptions(adminAddr, mtlsAdminAddr)
	if err != nil {
		return nil, err
	}
	connPool, err := gtransport.DialPool(ctx, o...)
	if err != nil {
		return nil, fmt.Errorf("dialing admin endpoint: %w", err)
	}
	c.tConnPool = connPool
	c.tClient = adminpb.NewTabletstoreTableAdminClient(connPool)
	return c.tClient, nil
}

// Close closes the Client, shutting down every connection it has opened.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var firstErr error
	for _, pool := range []gtransport.ConnPool{c.dConnPool, c.iConnPool, c.tConnPool} {
		if pool == nil {
			continue
		}
		if err := pool.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.dConnPool, c.iConnPool, c.tConnPool = nil, nil, nil
	c.dClient, c.iClient, c.tClient, c.lroClient = nil, nil, nil, nil
	if c.metricsTracerFactory != nil {
		c.metricsTracerFactory.shutdown()
	}
	return firstErr
}

// Project returns the ID of the project the client operates on.
func (c *Client) Project() string {
	return c.project
}

func (c *Client) projectPath() string {
	return "projects/" + c.project
}

func (c *Client) instancePath(instance string) string {
	return fmt.Sprintf("projects/%s/instances/%s", c.project, instance)
}

func (c *Client) tablePath(instance, table string) string {
	return fmt.Sprintf("projects/%s/instances/%s/tables/%s", c.project, instance, table)
}

func (c *Client) reqParamsHeaderValTable(instance, table string) string {
	return fmt.Sprintf("table_name=%s&app_profile_id=%s", url.QueryEscape(c.tablePath(instance, table)), url.QueryEscape(c.appProfile))
}

func (c *Client) reqParamsHeaderValInstance(instance string) string {
	return fmt.Sprintf("name=%s&app_profile_id=%s", url.QueryEscape(c.instancePath(instance)), url.QueryEscape(c.appProfile))
}

func (c *Client) newBuiltinMetricsTracer(ctx context.Context, instance, table string, isStreaming bool) *builtinMetricsTracer {
	mt := c.metricsTracerFactory.newBuiltinMetricsTracer(ctx, instance, table, isStreaming)
	return &mt
}
