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

/*
Package tstest contains test helpers for working with the tabletstore package.

To use a Server, create it, and then connect to it with no security:
(The project/instance values are ignored.)

	srv, err := tstest.NewServer("localhost:0")
	...
	conn, err := grpc.Dial(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	...
	client, err := tabletstore.NewClient(ctx, proj, option.WithGRPCConn(conn))
	...
*/
package tstest // import "cloud.google.com/go/tabletstore/tstest"

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strings"
	"sync"
	"time"

	lropb "cloud.google.com/go/longrunning/autogen/longrunningpb"
	adminpb "cloud.google.com/go/tabletstore/admin/apiv2/adminpb"
	tspb "cloud.google.com/go/tabletstore/apiv2/tabletstorepb"
	emptypb "github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"
)

// Server is an in-memory Cloud Tabletstore fake.
// It is unauthenticated, and only a rough approximation.
type Server struct {
	Addr string

	l   net.Listener
	srv *grpc.Server
	s   *server
}

// server is the real implementation of the fake.
// It is a separate and unexported type so the API won't be cluttered with
// methods that are only relevant to the fake's implementation.
type server struct {
	mu        sync.Mutex
	tables    map[string]*table    // keyed by fully qualified name
	instances map[string]*instance // keyed by fully qualified name
}

// NewServer creates a new Server.
// The Server will be listening for gRPC connections, without TLS,
// on the provided address. The resolved address is named by the Addr field.
func NewServer(laddr string, opt ...grpc.ServerOption) (*Server, error) {
	l, err := net.Listen("tcp", laddr)
	if err != nil {
		return nil, err
	}

	s := &Server{
		Addr: l.Addr().String(),
		l:    l,
		srv:  grpc.NewServer(opt...),
		s: &server{
			tables:    make(map[string]*table),
			instances: make(map[string]*instance),
		},
	}
	tspb.RegisterTabletstoreServer(s.srv, s.s)
	adminpb.RegisterTabletstoreTableAdminServer(s.srv, s.s)
	adminpb.RegisterTabletstoreInstanceAdminServer(s.srv, s.s)

	go s.srv.Serve(s.l)

	return s, nil
}

// Close shuts down the server.
func (s *Server) Close() {
	s.srv.Stop()
	s.l.Close()
}

func (s *server) CreateTable(ctx context.Context, req *adminpb.CreateTableRequest) (*adminpb.Table, error) {
	tbl := req.Parent + "/tables/" + req.TableId

	s.mu.Lock()
	if _, ok := s.tables[tbl]; ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("table %q already exists", tbl)
	}
	// Initial splits only affect tablet placement, which a single-process
	// fake does not model.
	s.tables[tbl] = newTable(req)
	s.mu.Unlock()

	return &adminpb.Table{Name: tbl}, nil
}

func (s *server) ListTables(ctx context.Context, req *adminpb.ListTablesRequest) (*adminpb.ListTablesResponse, error) {
	res := &adminpb.ListTablesResponse{}
	prefix := req.Parent + "/tables/"

	s.mu.Lock()
	for tbl := range s.tables {
		if strings.HasPrefix(tbl, prefix) {
			res.Tables = append(res.Tables, &adminpb.Table{Name: tbl})
		}
	}
	s.mu.Unlock()

	return res, nil
}

func (s *server) GetTable(ctx context.Context, req *adminpb.GetTableRequest) (*adminpb.Table, error) {
	s.mu.Lock()
	tbl, ok := s.tables[req.Name]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no such table %q", req.Name)
	}

	return &adminpb.Table{
		Name:           req.Name,
		ColumnFamilies: tbl.familyProtos(),
		Granularity:    adminpb.Table_MILLIS,
	}, nil
}

func (s *server) DeleteTable(ctx context.Context, req *adminpb.DeleteTableRequest) (*emptypb.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[req.Name]; !ok {
		return nil, fmt.Errorf("no such table %q", req.Name)
	}
	delete(s.tables, req.Name)
	return &emptypb.Empty{}, nil
}

func (s *server) ModifyColumnFamilies(ctx context.Context, req *adminpb.ModifyColumnFamiliesRequest) (*adminpb.Table, error) {
	s.mu.Lock()
	tbl, ok := s.tables[req.Name]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no such table %q", req.Name)
	}

	var dropped []string
	tbl.mu.Lock()
	for _, mod := range req.Modifications {
		switch m := mod.Mod.(type) {
		default:
			tbl.mu.Unlock()
			return nil, fmt.Errorf("can't handle modification %v", mod)
		case *adminpb.ModifyColumnFamiliesRequest_Modification_Create:
			if _, ok := tbl.families[mod.Id]; ok {
				tbl.mu.Unlock()
				return nil, fmt.Errorf("family %q already exists", mod.Id)
			}
			tbl.families[mod.Id] = &columnFamily{gcRule: m.Create.GetGcRule()}
		case *adminpb.ModifyColumnFamiliesRequest_Modification_Update:
			cf, ok := tbl.families[mod.Id]
			if !ok {
				tbl.mu.Unlock()
				return nil, fmt.Errorf("no such family %q", mod.Id)
			}
			cf.gcRule = m.Update.GetGcRule()
		case *adminpb.ModifyColumnFamiliesRequest_Modification_Drop:
			if _, ok := tbl.families[mod.Id]; !ok {
				tbl.mu.Unlock()
				return nil, fmt.Errorf("no such family %q", mod.Id)
			}
			delete(tbl.families, mod.Id)
			dropped = append(dropped, mod.Id)
		}
	}
	rows := make([]*row, len(tbl.rows))
	copy(rows, tbl.rows)
	fams := tbl.familyProtosLocked()
	tbl.mu.Unlock()

	// Dropping a family also drops its data. Rows are purged without the
	// table lock held; mutations lock rows before consulting the table.
	for _, fam := range dropped {
		prefix := fam + ":"
		for _, r := range rows {
			r.mu.Lock()
			for col := range r.cells {
				if strings.HasPrefix(col, prefix) {
					delete(r.cells, col)
				}
			}
			r.mu.Unlock()
		}
	}

	return &adminpb.Table{
		Name:           req.Name,
		ColumnFamilies: fams,
		Granularity:    adminpb.Table_MILLIS,
	}, nil
}

func (s *server) CreateInstance(ctx context.Context, req *adminpb.CreateInstanceRequest) (*lropb.Operation, error) {
	name := req.Parent + "/instances/" + req.InstanceId

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.instances[name]; ok {
		return nil, fmt.Errorf("instance %q already exists", name)
	}
	inst := &instance{
		name:        name,
		displayName: req.GetInstance().GetDisplayName(),
	}
	for _, c := range req.GetClusters() {
		inst.location = c.GetLocation()
		inst.serveNodes = c.GetServeNodes()
	}
	s.instances[name] = inst

	// The fake provisions instantly, so the returned operation is already done.
	return &lropb.Operation{
		Name: "operations/" + req.InstanceId,
		Done: true,
	}, nil
}

func (s *server) GetInstance(ctx context.Context, req *adminpb.GetInstanceRequest) (*adminpb.Instance, error) {
	s.mu.Lock()
	inst, ok := s.instances[req.Name]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no such instance %q", req.Name)
	}
	return inst.proto(), nil
}

func (s *server) ListInstances(ctx context.Context, req *adminpb.ListInstancesRequest) (*adminpb.ListInstancesResponse, error) {
	res := &adminpb.ListInstancesResponse{}
	prefix := req.Parent + "/instances/"

	s.mu.Lock()
	for name, inst := range s.instances {
		if strings.HasPrefix(name, prefix) {
			res.Instances = append(res.Instances, inst.proto())
		}
	}
	s.mu.Unlock()

	sort.Slice(res.Instances, func(i, j int) bool { return res.Instances[i].Name < res.Instances[j].Name })
	return res, nil
}

func (s *server) DeleteInstance(ctx context.Context, req *adminpb.DeleteInstanceRequest) (*emptypb.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.instances[req.Name]; !ok {
		return nil, fmt.Errorf("no such instance %q", req.Name)
	}
	delete(s.instances, req.Name)
	// Deleting an instance deletes its tables with it.
	prefix := req.Name + "/tables/"
	for tbl := range s.tables {
		if strings.HasPrefix(tbl, prefix) {
			delete(s.tables, tbl)
		}
	}
	return &emptypb.Empty{}, nil
}

func (s *server) ReadRows(req *tspb.ReadRowsRequest, stream tspb.Tabletstore_ReadRowsServer) error {
	s.mu.Lock()
	tbl, ok := s.tables[req.TableName]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("no such table %q", req.TableName)
	}

	// Snapshot the rows to stream back, in key order.
	tbl.mu.RLock()
	var rows []*row
	if rs := req.Rows; rs != nil && (len(rs.RowKeys) > 0 || len(rs.RowRanges) > 0) {
		for _, r := range tbl.rows {
			if rowSetContains(rs, r.key) {
				rows = append(rows, r)
			}
		}
	} else {
		rows = append(rows, tbl.rows...)
	}
	families := tbl.familySnapshotLocked()
	tbl.mu.RUnlock()

	var n int64
	for _, r := range rows {
		rp := r.proto(families)
		if rp == nil {
			continue
		}
		if err := stream.Send(&tspb.ReadRowsResponse{Row: rp}); err != nil {
			return err
		}
		n++
		if req.RowsLimit > 0 && n >= req.RowsLimit {
			break
		}
	}
	return nil
}

// rowSetContains reports whether key is a member of rs.
func rowSetContains(rs *tspb.RowSet, key string) bool {
	for _, rk := range rs.RowKeys {
		if string(rk) == key {
			return true
		}
	}
	for _, rr := range rs.RowRanges {
		if rowRangeContains(rr, key) {
			return true
		}
	}
	return false
}

func rowRangeContains(rr *tspb.RowRange, key string) bool {
	switch sk := rr.StartKey.(type) {
	case *tspb.RowRange_StartKeyClosed:
		if key < string(sk.StartKeyClosed) {
			return false
		}
	case *tspb.RowRange_StartKeyOpen:
		if key <= string(sk.StartKeyOpen) {
			return false
		}
	}
	switch ek := rr.EndKey.(type) {
	case *tspb.RowRange_EndKeyOpen:
		if key >= string(ek.EndKeyOpen) {
			return false
		}
	case *tspb.RowRange_EndKeyClosed:
		if key > string(ek.EndKeyClosed) {
			return false
		}
	}
	return true
}

func (s *server) SampleRowKeys(req *tspb.SampleRowKeysRequest, stream tspb.Tabletstore_SampleRowKeysServer) error {
	s.mu.Lock()
	tbl, ok := s.tables[req.TableName]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("no such table %q", req.TableName)
	}

	tbl.mu.RLock()
	rows := make([]*row, len(tbl.rows))
	copy(rows, tbl.rows)
	tbl.mu.RUnlock()

	// Return every row key, then an empty key marking the end of the table.
	// Offsets approximate the stored size of the preceding rows.
	var offset int64
	for _, r := range rows {
		res := &tspb.SampleRowKeysResponse{
			RowKey:      []byte(r.key),
			OffsetBytes: offset,
		}
		if err := stream.Send(res); err != nil {
			return err
		}
		offset += r.size()
	}
	return stream.Send(&tspb.SampleRowKeysResponse{OffsetBytes: offset})
}

func (s *server) MutateRow(ctx context.Context, req *tspb.MutateRowRequest) (*tspb.MutateRowResponse, error) {
	s.mu.Lock()
	tbl, ok := s.tables[req.TableName]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no such table %q", req.TableName)
	}
	if len(req.Mutations) == 0 {
		return nil, fmt.Errorf("mutations must not be empty")
	}

	r := tbl.mutableRow(string(req.RowKey))
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, mut := range req.Mutations {
		if err := applyMutation(tbl, r, mut); err != nil {
			return nil, err
		}
	}
	return &tspb.MutateRowResponse{}, nil
}

// applyMutation applies a single mutation to r, which must be locked.
func applyMutation(tbl *table, r *row, mut *tspb.Mutation) error {
	switch m := mut.Mutation.(type) {
	default:
		return fmt.Errorf("can't handle mutation %v", mut)
	case *tspb.Mutation_SetCell_:
		set := m.SetCell
		tbl.mu.RLock()
		_, famOK := tbl.families[set.FamilyName]
		tbl.mu.RUnlock()
		if !famOK {
			return fmt.Errorf("unknown family %q", set.FamilyName)
		}
		ts := set.TimestampMicros
		if ts == -1 { // use server time
			ts = newTimestamp()
		}
		if ts < 0 {
			return fmt.Errorf("invalid timestamp %d", ts)
		}
		col := set.FamilyName + ":" + string(set.ColumnQualifier)
		r.cells[col] = insertCell(r.cells[col], cell{ts: ts, value: set.Value})
	case *tspb.Mutation_DeleteFromColumn_:
		del := m.DeleteFromColumn
		col := del.FamilyName + ":" + string(del.ColumnQualifier)
		tr := del.TimeRange
		if tr.GetStartTimestampMicros() == 0 && tr.GetEndTimestampMicros() == 0 {
			delete(r.cells, col)
			break
		}
		var kept []cell
		for _, c := range r.cells[col] {
			if inTimestampRange(tr, c.ts) {
				continue
			}
			kept = append(kept, c)
		}
		if len(kept) == 0 {
			delete(r.cells, col)
		} else {
			r.cells[col] = kept
		}
	case *tspb.Mutation_DeleteFromFamily_:
		prefix := m.DeleteFromFamily.FamilyName + ":"
		for col := range r.cells {
			if strings.HasPrefix(col, prefix) {
				delete(r.cells, col)
			}
		}
	case *tspb.Mutation_DeleteFromRow_:
		r.cells = make(map[string][]cell)
	}
	return nil
}

// inTimestampRange reports whether ts falls in the half-open range tr.
// A zero end bound means infinity.
func inTimestampRange(tr *tspb.TimestampRange, ts int64) bool {
	if ts < tr.GetStartTimestampMicros() {
		return false
	}
	return tr.GetEndTimestampMicros() == 0 || ts < tr.GetEndTimestampMicros()
}

func (s *server) PingAndWarm(ctx context.Context, req *tspb.PingAndWarmRequest) (*tspb.PingAndWarmResponse, error) {
	// There is no state to warm up; accept anything with a name.
	if req.Name == "" {
		return nil, fmt.Errorf("name must be provided")
	}
	return &tspb.PingAndWarmResponse{}, nil
}

// newTimestamp returns the current time in microseconds, rounded down to
// the millisecond granularity tables are served at.
func newTimestamp() int64 {
	ts := time.Now().UnixNano() / 1e3
	ts -= ts % 1000
	return ts
}

type table struct {
	mu       sync.RWMutex
	families map[string]*columnFamily // keyed by family name
	rows     []*row                   // sorted by row key
	rowIndex map[string]*row          // indexed by row key
}

type columnFamily struct {
	gcRule *adminpb.GcRule
}

func newTable(req *adminpb.CreateTableRequest) *table {
	fams := make(map[string]*columnFamily)
	for id, cf := range req.GetTable().GetColumnFamilies() {
		fams[id] = &columnFamily{gcRule: cf.GetGcRule()}
	}
	return &table{
		families: fams,
		rowIndex: make(map[string]*row),
	}
}

func (t *table) familyProtos() map[string]*adminpb.ColumnFamily {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.familyProtosLocked()
}

func (t *table) familyProtosLocked() map[string]*adminpb.ColumnFamily {
	fams := make(map[string]*adminpb.ColumnFamily)
	for id, cf := range t.families {
		fams[id] = &adminpb.ColumnFamily{GcRule: cf.gcRule}
	}
	return fams
}

func (t *table) familySnapshotLocked() map[string]*adminpb.GcRule {
	fams := make(map[string]*adminpb.GcRule)
	for id, cf := range t.families {
		fams[id] = cf.gcRule
	}
	return fams
}

func (t *table) mutableRow(key string) *row {
	// Try fast path first.
	t.mu.RLock()
	r := t.rowIndex[key]
	t.mu.RUnlock()
	if r != nil {
		return r
	}

	// We probably need to create the row.
	t.mu.Lock()
	r = t.rowIndex[key]
	if r == nil {
		r = newRow(key)
		t.rowIndex[key] = r
		t.rows = append(t.rows, r)
		sort.Slice(t.rows, func(i, j int) bool { return t.rows[i].key < t.rows[j].key })
	}
	t.mu.Unlock()
	return r
}

type row struct {
	key string

	mu    sync.Mutex
	cells map[string][]cell // keyed by family:qualifier, sorted by decreasing timestamp
}

func newRow(key string) *row {
	return &row{
		key:   key,
		cells: make(map[string][]cell),
	}
}

// proto converts the row for streaming, applying each family's GC rule.
// Deleted or fully collected rows yield nil.
func (r *row) proto(families map[string]*adminpb.GcRule) *tspb.Row {
	r.mu.Lock()
	defer r.mu.Unlock()

	cols := make(map[string]map[string][]cell) // family -> qualifier -> cells
	for col, cells := range r.cells {
		i := strings.Index(col, ":") // family names cannot contain the separator
		fam, qual := col[:i], col[i+1:]
		rule, ok := families[fam]
		if !ok {
			continue
		}
		kept := applyGC(cells, rule)
		if len(kept) == 0 {
			continue
		}
		if cols[fam] == nil {
			cols[fam] = make(map[string][]cell)
		}
		cols[fam][qual] = kept
	}
	if len(cols) == 0 {
		return nil
	}

	rp := &tspb.Row{Key: []byte(r.key)}
	for _, fam := range sortedKeys(cols) {
		fp := &tspb.Family{Name: fam}
		for _, qual := range sortedKeys(cols[fam]) {
			cp := &tspb.Column{Qualifier: []byte(qual)}
			for _, c := range cols[fam][qual] {
				cp.Cells = append(cp.Cells, &tspb.Cell{TimestampMicros: c.ts, Value: c.value})
			}
			fp.Columns = append(fp.Columns, cp)
		}
		rp.Families = append(rp.Families, fp)
	}
	return rp
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *row) size() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, cells := range r.cells {
		for _, c := range cells {
			n += int64(len(c.value))
		}
	}
	return n
}

type cell struct {
	ts    int64
	value []byte
}

// insertCell adds c to cells, which are sorted by decreasing timestamp.
// Writing at an existing timestamp replaces that cell's value.
func insertCell(cells []cell, c cell) []cell {
	i := sort.Search(len(cells), func(i int) bool { return cells[i].ts <= c.ts })
	if i < len(cells) && cells[i].ts == c.ts {
		cells[i].value = c.value
		return cells
	}
	cells = append(cells, cell{})
	copy(cells[i+1:], cells[i:])
	cells[i] = c
	return cells
}

// applyGC returns the cells retained after applying rule. Cells are sorted
// by decreasing timestamp, and every individual rule retains a prefix, so
// composites reduce to keeping the shortest (union) or longest
// (intersection) retained prefix.
func applyGC(cells []cell, rule *adminpb.GcRule) []cell {
	if rule == nil {
		return cells
	}
	switch r := rule.Rule.(type) {
	case *adminpb.GcRule_MaxNumVersions:
		if n := int(r.MaxNumVersions); n > 0 && len(cells) > n {
			cells = cells[:n]
		}
	case *adminpb.GcRule_MaxAge:
		cutoff := time.Now().UnixNano() / 1e3
		cutoff -= r.MaxAge.GetSeconds() * 1e6
		cutoff -= int64(r.MaxAge.GetNanos()) / 1e3
		i := sort.Search(len(cells), func(i int) bool { return cells[i].ts < cutoff })
		cells = cells[:i]
	case *adminpb.GcRule_Union_:
		for _, sub := range r.Union.GetRules() {
			cells = applyGC(cells, sub)
		}
	case *adminpb.GcRule_Intersection_:
		var max int
		for _, sub := range r.Intersection.GetRules() {
			if kept := applyGC(cells, sub); len(kept) > max {
				max = len(kept)
			}
		}
		cells = cells[:max]
	}
	return cells
}

type instance struct {
	name        string
	displayName string
	location    string
	serveNodes  int32
}

func (i *instance) proto() *adminpb.Instance {
	return &adminpb.Instance{
		Name:        i.name,
		DisplayName: i.displayName,
		State:       adminpb.Instance_READY,
	}
}
