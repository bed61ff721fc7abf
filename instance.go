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

	"cloud.google.com/go/internal/trace"
	lropb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	adminpb "cloud.google.com/go/tabletstore/admin/apiv2/adminpb"
	tspb "cloud.google.com/go/tabletstore/apiv2/tabletstorepb"
	gax "github.com/googleapis/gax-go/v2"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// DefaultServeNodes is the number of nodes an instance's cluster is created
// with when the node count is not specified.
const DefaultServeNodes = 3

// Instance is a handle for a Tabletstore instance owned by the client's
// project: a collection of tables and the cluster of nodes that serves them.
//
// An Instance is purely local state. Creating one performs no remote calls,
// and the handle does not track the lifetime of the client it was created
// from.
type Instance struct {
	c           *Client
	instanceID  string
	displayName string
	location    string
	serveNodes  int32
}

// InstanceOption configures the instance handle returned by
// Client.Instance.
type InstanceOption func(*Instance)

// WithDisplayName sets the descriptive name of the instance as it appears
// in UIs. If unset, the instance ID is used.
func WithDisplayName(displayName string) InstanceOption {
	return func(i *Instance) {
		i.displayName = displayName
	}
}

// WithLocation sets the location the instance's cluster is served from.
// If unset, the service chooses a location when the instance is created.
func WithLocation(location string) InstanceOption {
	return func(i *Instance) {
		i.location = location
	}
}

// WithServeNodes sets the number of nodes of the instance's cluster.
// If unset, DefaultServeNodes is used.
func WithServeNodes(n int32) InstanceOption {
	return func(i *Instance) {
		i.serveNodes = n
	}
}

// Instance returns a handle for the instance with the given ID. It always
// succeeds and does not contact the service; use Create to materialize the
// instance remotely, or Reload to check that it exists.
func (c *Client) Instance(instanceID string, opts ...InstanceOption) *Instance {
	inst := &Instance{
		c:           c,
		instanceID:  instanceID,
		displayName: instanceID,
		serveNodes:  DefaultServeNodes,
	}
	for _, opt := range opts {
		opt(inst)
	}
	return inst
}

// InstanceID returns the ID of the instance.
func (i *Instance) InstanceID() string {
	return i.instanceID
}

// DisplayName returns the descriptive name of the instance.
func (i *Instance) DisplayName() string {
	return i.displayName
}

// Location returns the location of the instance's cluster, or the empty
// string if the service chooses one.
func (i *Instance) Location() string {
	return i.location
}

// ServeNodes returns the number of nodes of the instance's cluster.
func (i *Instance) ServeNodes() int32 {
	return i.serveNodes
}

func (i *Instance) name() string {
	return i.c.instancePath(i.instanceID)
}

// ListInstances lists information about the instances of the client's
// project.
//
// The response is returned exactly as the service sent it. In particular,
// locations that were unreachable when the service assembled the response
// are reported in its FailedLocations field, and instances served entirely
// from those locations may be missing; callers that care should inspect the
// field themselves.
func (c *Client) ListInstances(ctx context.Context) (*adminpb.ListInstancesResponse, error) {
	iClient, err := c.instanceAdminClient(ctx)
	if err != nil {
		return nil, err
	}
	req := &adminpb.ListInstancesRequest{
		Parent: c.projectPath(),
	}
	return iClient.ListInstances(ctx, req)
}

// Create creates the instance remotely with a single cluster configured
// from the handle, and blocks until the operation completes.
func (i *Instance) Create(ctx context.Context) (err error) {
	ctx = mergeOutgoingMetadata(ctx, metadata.Pairs(resourcePrefixHeader, i.c.projectPath()))
	ctx = trace.StartSpan(ctx, "cloud.google.com/go/tabletstore.Instance.Create")
	defer func() { trace.EndSpan(ctx, err) }()
	iClient, err := i.c.instanceAdminClient(ctx)
	if err != nil {
		return err
	}
	req := &adminpb.CreateInstanceRequest{
		Parent:     i.c.projectPath(),
		InstanceId: i.instanceID,
		Instance:   &adminpb.Instance{DisplayName: i.displayName},
		Clusters: map[string]*adminpb.Cluster{
			i.instanceID + "-cluster": {
				Location:   i.location,
				ServeNodes: i.serveNodes,
			},
		},
	}
	op, err := iClient.CreateInstance(ctx, req)
	if err != nil {
		return err
	}
	return i.c.waitForOp(ctx, op)
}

// Delete permanently deletes the instance and all of its tables.
func (i *Instance) Delete(ctx context.Context) error {
	iClient, err := i.c.instanceAdminClient(ctx)
	if err != nil {
		return err
	}
	_, err = iClient.DeleteInstance(ctx, &adminpb.DeleteInstanceRequest{Name: i.name()})
	return err
}

// Reload fetches the instance's current metadata from the service and
// updates the handle's display name from it.
func (i *Instance) Reload(ctx context.Context) error {
	iClient, err := i.c.instanceAdminClient(ctx)
	if err != nil {
		return err
	}
	res, err := iClient.GetInstance(ctx, &adminpb.GetInstanceRequest{Name: i.name()})
	if err != nil {
		return err
	}
	i.displayName = res.GetDisplayName()
	return nil
}

// waitForOp polls op until it completes, sharing the connection of the
// instance admin stub, and reports the operation's terminal error if any.
func (c *Client) waitForOp(ctx context.Context, op *lropb.Operation) error {
	bo := gax.Backoff{
		Initial:    defaultBackoff.Initial,
		Max:        defaultBackoff.Max,
		Multiplier: defaultBackoff.Multiplier,
	}
	for {
		if op.GetDone() {
			if s := op.GetError(); s != nil {
				return status.ErrorProto(s)
			}
			return nil
		}
		if err := gax.Sleep(ctx, bo.Pause()); err != nil {
			return err
		}
		c.mu.Lock()
		lroClient := c.lroClient
		c.mu.Unlock()
		var err error
		op, err = lroClient.GetOperation(ctx, &lropb.GetOperationRequest{Name: op.GetName()})
		if err != nil {
			return err
		}
	}
}

// Table returns a handle for reading and writing data rows of the named
// table in this instance.
func (i *Instance) Table(table string) *Table {
	return &Table{
		c:        i.c,
		instance: i.instanceID,
		table:    table,
		md: metadata.Pairs(
			resourcePrefixHeader, i.c.tablePath(i.instanceID, table),
			requestParamsHeader, i.c.reqParamsHeaderValTable(i.instanceID, table),
		),
	}
}

// PingAndWarm pings the instance and warms the client's connection to it.
// This call is not required, but can reduce the latency of the first data
// operations against the instance.
func (i *Instance) PingAndWarm(ctx context.Context) (err error) {
	md := metadata.Pairs(
		resourcePrefixHeader, i.name(),
		requestParamsHeader, i.c.reqParamsHeaderValInstance(i.instanceID),
	)
	ctx = mergeOutgoingMetadata(ctx, md)
	ctx = trace.StartSpan(ctx, "cloud.google.com/go/tabletstore.PingAndWarm")
	defer func() { trace.EndSpan(ctx, err) }()
	mt := i.c.newBuiltinMetricsTracer(ctx, i.instanceID, "", false)
	defer mt.recordOperationCompletion()

	dClient, err := i.c.dataClient(ctx)
	if err == nil {
		req := &tspb.PingAndWarmRequest{
			Name:         i.name(),
			AppProfileId: i.c.appProfile,
		}
		err = gaxInvokeWithRecorder(ctx, mt, "PingAndWarm", func(ctx context.Context, _ gax.CallSettings) error {
			_, err := dClient.PingAndWarm(ctx, req)
			return err
		})
	}
	statusCode, statusErr := convertToGrpcStatusErr(err)
	mt.currOp.setStatus(statusCode.String())
	return statusErr
}
