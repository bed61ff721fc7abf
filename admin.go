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
	"sort"
	"strings"

	adminpb "cloud.google.com/go/tabletstore/admin/apiv2/adminpb"
	"google.golang.org/grpc/metadata"
)

func (i *Instance) adminContext(ctx context.Context) context.Context {
	return mergeOutgoingMetadata(ctx, metadata.Pairs(resourcePrefixHeader, i.name()))
}

// Tables returns a list of the tables in the instance.
func (i *Instance) Tables(ctx context.Context) ([]string, error) {
	tClient, err := i.c.tableAdminClient(ctx)
	if err != nil {
		return nil, err
	}
	ctx = i.adminContext(ctx)
	prefix := i.name()
	req := &adminpb.ListTablesRequest{
		Parent: prefix,
	}
	res, err := tClient.ListTables(ctx, req)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(res.Tables))
	for _, tbl := range res.Tables {
		names = append(names, strings.TrimPrefix(tbl.Name, prefix+"/tables/"))
	}
	return names, nil
}

// CreateTable creates a new table in the instance.
// This method may return before the table's creation is complete.
func (i *Instance) CreateTable(ctx context.Context, table string) error {
	return i.createTable(ctx, &adminpb.CreateTableRequest{
		Parent:  i.name(),
		TableId: table,
	})
}

// CreatePresplitTable creates a new table in the instance, pre-split into
// tablets at the given row keys. The keys act as split points only; they do
// not create any rows.
func (i *Instance) CreatePresplitTable(ctx context.Context, table string, splitKeys []string) error {
	req := &adminpb.CreateTableRequest{
		Parent:  i.name(),
		TableId: table,
	}
	for _, key := range splitKeys {
		req.InitialSplits = append(req.InitialSplits, &adminpb.CreateTableRequest_Split{Key: []byte(key)})
	}
	return i.createTable(ctx, req)
}

func (i *Instance) createTable(ctx context.Context, req *adminpb.CreateTableRequest) error {
	tClient, err := i.c.tableAdminClient(ctx)
	if err != nil {
		return err
	}
	ctx = i.adminContext(ctx)
	_, err = tClient.CreateTable(ctx, req)
	return err
}

// DeleteTable deletes a table and all of its data.
func (i *Instance) DeleteTable(ctx context.Context, table string) error {
	tClient, err := i.c.tableAdminClient(ctx)
	if err != nil {
		return err
	}
	ctx = i.adminContext(ctx)
	req := &adminpb.DeleteTableRequest{
		Name: i.c.tablePath(i.instanceID, table),
	}
	_, err = tClient.DeleteTable(ctx, req)
	return err
}

// CreateColumnFamily creates a new column family in a table.
func (i *Instance) CreateColumnFamily(ctx context.Context, table, family string) error {
	return i.modifyColumnFamily(ctx, table, &adminpb.ModifyColumnFamiliesRequest_Modification{
		Id:  family,
		Mod: &adminpb.ModifyColumnFamiliesRequest_Modification_Create{Create: &adminpb.ColumnFamily{}},
	})
}

// DeleteColumnFamily deletes a column family in a table and all of its data.
func (i *Instance) DeleteColumnFamily(ctx context.Context, table, family string) error {
	return i.modifyColumnFamily(ctx, table, &adminpb.ModifyColumnFamiliesRequest_Modification{
		Id:  family,
		Mod: &adminpb.ModifyColumnFamiliesRequest_Modification_Drop{Drop: true},
	})
}

// SetGCPolicy specifies which cells in a column family should be garbage
// collected. GC executes opportunistically in the background; deleted cells
// may still be returned by reads for some time after the policy is set.
func (i *Instance) SetGCPolicy(ctx context.Context, table, family string, policy GCPolicy) error {
	return i.modifyColumnFamily(ctx, table, &adminpb.ModifyColumnFamiliesRequest_Modification{
		Id: family,
		Mod: &adminpb.ModifyColumnFamiliesRequest_Modification_Update{
			Update: &adminpb.ColumnFamily{GcRule: policy.proto()},
		},
	})
}

func (i *Instance) modifyColumnFamily(ctx context.Context, table string, mod *adminpb.ModifyColumnFamiliesRequest_Modification) error {
	tClient, err := i.c.tableAdminClient(ctx)
	if err != nil {
		return err
	}
	ctx = i.adminContext(ctx)
	req := &adminpb.ModifyColumnFamiliesRequest{
		Name:          i.c.tablePath(i.instanceID, table),
		Modifications: []*adminpb.ModifyColumnFamiliesRequest_Modification{mod},
	}
	_, err = tClient.ModifyColumnFamilies(ctx, req)
	return err
}

// TableInfo represents information about a table.
type TableInfo struct {
	// Families lists the names of the table's column families,
	// in no particular order. It is kept for compatibility;
	// new code should use FamilyInfos.
	Families    []string
	FamilyInfos []FamilyInfo
}

// FamilyInfo represents information about a column family.
type FamilyInfo struct {
	Name     string
	GCPolicy string
}

// TableInfo retrieves information about a table.
func (i *Instance) TableInfo(ctx context.Context, table string) (*TableInfo, error) {
	tClient, err := i.c.tableAdminClient(ctx)
	if err != nil {
		return nil, err
	}
	ctx = i.adminContext(ctx)
	req := &adminpb.GetTableRequest{
		Name: i.c.tablePath(i.instanceID, table),
	}
	res, err := tClient.GetTable(ctx, req)
	if err != nil {
		return nil, err
	}
	ti := &TableInfo{}
	for name, fam := range res.ColumnFamilies {
		ti.Families = append(ti.Families, name)
		ti.FamilyInfos = append(ti.FamilyInfos, FamilyInfo{
			Name:     name,
			GCPolicy: GCRuleToString(fam.GetGcRule()),
		})
	}
	sort.Strings(ti.Families)
	sort.Slice(ti.FamilyInfos, func(a, b int) bool {
		return ti.FamilyInfos[a].Name < ti.FamilyInfos[b].Name
	})
	return ti, nil
}
