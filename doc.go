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
Package tabletstore is an API to Cloud Tabletstore, a sparse wide-column
store in which every table is served from one or more tablets.

See https://godoc.org/cloud.google.com/go for authentication, timeouts,
connection pooling and similar aspects of this package.

# Setup and Credentials

Use NewClient to create a client for a project. The client requests only
the data scope unless configured otherwise; pass a ClientConfig to
NewClientWithConfig to request administrative or read-only access:

	client, err := tabletstore.NewClientWithConfig(ctx, project, tabletstore.ClientConfig{Admin: true})
	if err != nil {
		// handle error
	}

Admin and ReadOnly are mutually exclusive; requesting both fails with
ErrConflictingAccessMode. Creating a client does not open any connections.
Connections are dialed on first use and reused for the life of the client,
and administrative operations on a client that was not configured with
Admin fail with ErrAdminRequired.

If your program is run on Google Compute Engine or Google App Engine, lack
of credentials is handled automatically. Otherwise, credentials are
typically supplied through option.WithCredentialsFile or
option.WithTokenSource, and a pre-established connection through
option.WithGRPCConn.

# Reading

The principal way to read from a Tabletstore table is to use the ReadRows
method on a Table, obtained from an Instance handle. A RowRange specifies a
contiguous portion of a table. Rows are returned in key order.

	tbl := client.Instance("my-instance").Table("mytable")
	rr := tabletstore.PrefixRange("com.google.")
	err := tbl.ReadRows(ctx, rr, func(r tabletstore.Row) bool {
		// do something with r
		return true // keep going
	})

To read a single row, use ReadRow:

	r, err := tbl.ReadRow(ctx, "com.google.cloud")

# Writing

Set cells and delete data in a row with a Mutation, applied atomically by
Apply:

	mut := tabletstore.NewMutation()
	mut.Set("links", "maps.google.com", tabletstore.Now(), []byte("1"))
	mut.Set("links", "golang.org", tabletstore.Now(), []byte("1"))
	err := tbl.Apply(ctx, "com.google.cloud", mut)

An application profile ("app profile") may be specified in the
ClientConfig to control how the service routes the client's data
operations.
*/
package tabletstore // import "cloud.google.com/go/tabletstore"

// Scope constants for authentication.
const (
	// Scope is the OAuth scope for Cloud Tabletstore data operations.
	Scope = "https://www.googleapis.com/auth/tabletstore.data"
	// ReadonlyScope is the OAuth scope for Cloud Tabletstore read-only data
	// operations.
	ReadonlyScope = "https://www.googleapis.com/auth/tabletstore.data.readonly"
	// AdminScope is the OAuth scope for Cloud Tabletstore admin operations.
	AdminScope = "https://www.googleapis.com/auth/tabletstore.admin"
)

// clientUserAgent identifies the version of this package.
// It should be bumped upon significant changes only.
const clientUserAgent = "cts-go/20240501"
