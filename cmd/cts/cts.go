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

// Command docs are in ctsdoc.go.

package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"
	"text/template"
	"time"

	"cloud.google.com/go/tabletstore"
	"cloud.google.com/go/tabletstore/internal/ctsconfig"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
)

var (
	oFlag = flag.String("o", "", "if set, redirect stdout to this file")

	config      *ctsconfig.Config
	client      *tabletstore.Client
	adminClient *tabletstore.Client

	version      = "<unknown version>"
	revision     = "<unknown revision>"
	revisionDate = "<unknown revision date>"
	cliUserAgent = "cts-cli-go/unknown"
)

// tableAPI is the subset of the data plane the row commands use. Tests
// may preset table with a fake; otherwise it is created on first use
// from the configured client.
type tableAPI interface {
	ReadRows(ctx context.Context, arg tabletstore.RowSet, f func(tabletstore.Row) bool, opts ...tabletstore.ReadOption) error
	ReadRow(ctx context.Context, row string, opts ...tabletstore.ReadOption) (tabletstore.Row, error)
	Apply(ctx context.Context, row string, m *tabletstore.Mutation) error
}

var table tableAPI

func getCredentialOpts(opts []option.ClientOption) []option.ClientOption {
	if ts := config.TokenSource; ts != nil {
		opts = append(opts, option.WithTokenSource(ts))
	}
	if tlsCreds := config.TLSCreds; tlsCreds != nil {
		opts = append(opts, option.WithGRPCDialOption(grpc.WithTransportCredentials(tlsCreds)))
	}
	return opts
}

func getClient(clientConf tabletstore.ClientConfig) *tabletstore.Client {
	if client == nil {
		var opts []option.ClientOption
		if ep := config.DataEndpoint; ep != "" {
			opts = append(opts, option.WithEndpoint(ep))
		}
		if ua := config.UserAgent; ua != "" {
			opts = append(opts, option.WithUserAgent(ua))
		} else {
			opts = append(opts, option.WithUserAgent(cliUserAgent))
		}
		opts = getCredentialOpts(opts)
		var err error
		client, err = tabletstore.NewClientWithConfig(context.Background(), config.Project, clientConf, opts...)
		if err != nil {
			log.Fatalf("Making tabletstore.Client: %v", err)
		}
	}
	return client
}

func getAdminClient() *tabletstore.Client {
	if adminClient == nil {
		var opts []option.ClientOption
		if ep := config.AdminEndpoint; ep != "" {
			opts = append(opts, option.WithEndpoint(ep))
		}
		if ua := config.UserAgent; ua != "" {
			opts = append(opts, option.WithUserAgent(ua))
		} else {
			opts = append(opts, option.WithUserAgent(cliUserAgent))
		}
		opts = getCredentialOpts(opts)
		var err error
		adminClient, err = tabletstore.NewClientWithConfig(context.Background(), config.Project,
			tabletstore.ClientConfig{Admin: true}, opts...)
		if err != nil {
			log.Fatalf("Making admin tabletstore.Client: %v", err)
		}
	}
	return adminClient
}

func getAdminInstance() *tabletstore.Instance {
	return getAdminClient().Instance(config.Instance)
}

func getTable(tableName string) tableAPI {
	return getTableWithAppProfile(tableName, "")
}

func getTableWithAppProfile(tableName, appProfile string) tableAPI {
	if table != nil {
		return table
	}
	return getClient(tabletstore.ClientConfig{AppProfile: appProfile}).Instance(config.Instance).Table(tableName)
}

func main() {
	var err error
	config, err = ctsconfig.Load()
	if err != nil {
		log.Fatal(err)
	}
	config.RegisterFlags()
	valueFormatting.registerFlags()

	flag.Usage = func() { usage(os.Stderr) }
	flag.Parse()
	if flag.NArg() == 0 {
		usage(os.Stderr)
		os.Exit(1)
	}

	if *oFlag != "" {
		f, err := os.Create(*oFlag)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Fatal(err)
			}
		}()
		os.Stdout = f
	}

	if err := valueFormatting.setup(); err != nil {
		log.Fatal(err)
	}

	doMain(config, flag.Args())
}

func doMain(config *ctsconfig.Config, args []string) {
	ctx := context.Background()
	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	for _, cmd := range commands {
		if cmd.Name == args[0] {
			if err := config.CheckFlags(cmd.Required); err != nil {
				log.Fatal(err)
			}
			cmd.do(ctx, args[1:]...)
			return
		}
	}
	log.Fatalf("Unknown command %q", args[0])
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [flags] <command> ...\n", os.Args[0])
	flag.CommandLine.SetOutput(w)
	flag.CommandLine.PrintDefaults()
	fmt.Fprintf(w, "\n%s", cmdSummary)
}

var cmdSummary string // generated in init, below

func init() {
	// The help and doc commands walk the commands table themselves, so
	// their do funcs are hooked up here rather than in the table literal.
	for i := range commands {
		switch commands[i].Name {
		case "doc":
			commands[i].do = doDoc
		case "help":
			commands[i].do = doHelp
		}
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 10, 8, 4, '\t', 0)
	for _, cmd := range commands {
		fmt.Fprintf(tw, "cts %s\t%s\n", cmd.Name, cmd.Desc)
	}
	tw.Flush()
	buf.WriteString(configHelp)
	cmdSummary = buf.String()
}

var configHelp = `
For convenience, values of the -project, -instance, -creds, -admin-endpoint,
-data-endpoint, -cert-file, -user-agent, -auth-token and -timeout flags may be
specified in ` + ctsconfig.Filename() + ` in this format:

	project = my-project-123
	instance = my-instance
	creds = path-to-account-key.json
	admin-endpoint = hostname:port
	data-endpoint = hostname:port
	cert-file = path-to-certificate-file
	user-agent = custom-user-agent
	auth-token = token
	timeout = 30s

All values are optional and can be overridden by flags.
`

var commands = []struct {
	Name, Desc string
	do         func(context.Context, ...string)
	Usage      string
	Required   ctsconfig.RequiredFlags
}{
	{
		Name:     "count",
		Desc:     "Count rows in a table",
		do:       doCount,
		Usage:    "cts count <table>",
		Required: ctsconfig.ProjectAndInstanceRequired,
	},
	{
		Name:     "createfamily",
		Desc:     "Create a column family",
		do:       doCreateFamily,
		Usage:    "cts createfamily <table> <family>",
		Required: ctsconfig.ProjectAndInstanceRequired,
	},
	{
		Name: "createtable",
		Desc: "Create a table",
		do:   doCreateTable,
		Usage: "cts createtable <table> [splits=split,...]\n" +
			"  splits=split,...	Create the table with initial row key splits",
		Required: ctsconfig.ProjectAndInstanceRequired,
	},
	{
		Name:     "deletefamily",
		Desc:     "Delete a column family",
		do:       doDeleteFamily,
		Usage:    "cts deletefamily <table> <family>",
		Required: ctsconfig.ProjectAndInstanceRequired,
	},
	{
		Name:     "deleterow",
		Desc:     "Delete a row",
		do:       doDeleteRow,
		Usage:    "cts deleterow <table> <row>",
		Required: ctsconfig.ProjectAndInstanceRequired,
	},
	{
		Name:     "deletetable",
		Desc:     "Delete a table",
		do:       doDeleteTable,
		Usage:    "cts deletetable <table>",
		Required: ctsconfig.ProjectAndInstanceRequired,
	},
	{
		Name: "doc",
		Desc: "Print documentation for cts",
		// do is assigned in init; doDoc renders the commands table and
		// referencing it here would make the initializations cyclic.
		Usage:    "cts doc",
		Required: ctsconfig.NoneRequired,
	},
	{
		Name: "help",
		Desc: "Print help text",
		// do is assigned in init, as for doc.
		Usage:    "cts help [command]",
		Required: ctsconfig.NoneRequired,
	},
	{
		Name: "import",
		Desc: "Batch write many rows based on the input file",
		do:   doImport,
		Usage: "cts import <table> <input-file> [app-profile=<app-profile-id>] [column-family=<family-name>] [batch-size=<500>] [workers=<1>]\n" +
			"  app-profile=<app-profile-id>	The app profile ID to use for the request\n" +
			"  column-family=<family-name>	The column family label to use\n" +
			"  batch-size=<500>		The max number of rows per batch write request\n" +
			"  workers=<1>			The number of worker threads\n" +
			"\n" +
			"  The input file must be a csv. If no column family is given, the first\n" +
			"  line of the file names the column family of each column and the second\n" +
			"  line names the columns; otherwise only the column line is present.\n" +
			"  The first column of every following line is the row key.",
		Required: ctsconfig.ProjectAndInstanceRequired,
	},
	{
		Name:     "listinstances",
		Desc:     "List instances in a project",
		do:       doListInstances,
		Usage:    "cts listinstances",
		Required: ctsconfig.ProjectRequired,
	},
	{
		Name:     "lookup",
		Desc:     "Read from a single row",
		do:       doLookup,
		Usage:    "cts lookup <table> <row>",
		Required: ctsconfig.ProjectAndInstanceRequired,
	},
	{
		Name: "ls",
		Desc: "List tables and column families",
		do:   doLS,
		Usage: "cts ls			List tables\n" +
			"cts ls <table>		List column families in <table>",
		Required: ctsconfig.ProjectAndInstanceRequired,
	},
	{
		Name: "read",
		Desc: "Read rows",
		do:   doRead,
		Usage: "cts read <table> [start=<row>] [end=<row>] [prefix=<prefix>] [count=<n>]\n" +
			"  start=<row>		Start reading at this row\n" +
			"  end=<row>		Stop reading before this row\n" +
			"  prefix=<prefix>	Read rows with this prefix\n" +
			"  count=<n>		Read only this many rows",
		Required: ctsconfig.ProjectAndInstanceRequired,
	},
	{
		Name: "set",
		Desc: "Set value of a cell",
		do:   doSet,
		Usage: "cts set <table> <row> family:column=val[@ts] ...\n" +
			"  family:column=val[@ts] may be repeated to set multiple cells.\n" +
			"\n" +
			"  ts is an optional integer timestamp.\n" +
			"  If it cannot be parsed, the `@ts` part will be\n" +
			"  interpreted as part of the value.",
		Required: ctsconfig.ProjectAndInstanceRequired,
	},
	{
		Name: "setgcpolicy",
		Desc: "Set the GC policy for a column family",
		do:   doSetGCPolicy,
		Usage: "cts setgcpolicy <table> <family> ((maxage=<d> | maxversions=<n>) [(and|or) (maxage=<d>|maxversions=<n>)...] | never)\n" +
			"  maxage=<d>		Maximum timestamp age to preserve (e.g. \"1h\", \"4d\")\n" +
			"  maxversions=<n>	Maximum number of versions to preserve\n" +
			"  never		Never delete cells",
		Required: ctsconfig.ProjectAndInstanceRequired,
	},
	{
		Name:     "version",
		Desc:     "Print the current cts version",
		do:       doVersion,
		Usage:    "cts version",
		Required: ctsconfig.NoneRequired,
	},
}

func doCount(ctx context.Context, args ...string) {
	if len(args) != 1 {
		log.Fatal("usage: cts count <table>")
	}
	tbl := getTable(args[0])
	n := 0
	err := tbl.ReadRows(ctx, tabletstore.InfiniteRange(""), func(_ tabletstore.Row) bool {
		n++
		return true
	})
	if err != nil {
		log.Fatalf("Reading rows: %v", err)
	}
	fmt.Println(n)
}

func doCreateFamily(ctx context.Context, args ...string) {
	if len(args) != 2 {
		log.Fatal("usage: cts createfamily <table> <family>")
	}
	if err := getAdminInstance().CreateColumnFamily(ctx, args[0], args[1]); err != nil {
		log.Fatalf("Creating column family: %v", err)
	}
}

func doCreateTable(ctx context.Context, args ...string) {
	if len(args) < 1 {
		log.Fatal("usage: cts createtable <table> [splits=split,...]")
	}
	parsed, err := parseArgs(args[1:], []string{"splits"})
	if err != nil {
		log.Fatal(err)
	}
	inst := getAdminInstance()
	if splits, ok := parsed["splits"]; ok {
		err = inst.CreatePresplitTable(ctx, args[0], strings.Split(splits, ","))
	} else {
		err = inst.CreateTable(ctx, args[0])
	}
	if err != nil {
		log.Fatalf("Creating table: %v", err)
	}
}

func doDeleteFamily(ctx context.Context, args ...string) {
	if len(args) != 2 {
		log.Fatal("usage: cts deletefamily <table> <family>")
	}
	if err := getAdminInstance().DeleteColumnFamily(ctx, args[0], args[1]); err != nil {
		log.Fatalf("Deleting column family: %v", err)
	}
}

func doDeleteRow(ctx context.Context, args ...string) {
	if len(args) != 2 {
		log.Fatal("usage: cts deleterow <table> <row>")
	}
	tbl := getTable(args[0])
	mut := tabletstore.NewMutation()
	mut.DeleteRow()
	if err := tbl.Apply(ctx, args[1], mut); err != nil {
		log.Fatalf("Deleting row: %v", err)
	}
}

func doDeleteTable(ctx context.Context, args ...string) {
	if len(args) != 1 {
		log.Fatal("usage: cts deletetable <table>")
	}
	if err := getAdminInstance().DeleteTable(ctx, args[0]); err != nil {
		log.Fatalf("Deleting table: %v", err)
	}
}

func doHelp(ctx context.Context, args ...string) {
	if len(args) == 0 {
		usage(os.Stdout)
		return
	}
	for _, cmd := range commands {
		if cmd.Name == args[0] {
			fmt.Println(cmd.Usage)
			return
		}
	}
	log.Fatalf("Don't know command %q", args[0])
}

func doListInstances(ctx context.Context, args ...string) {
	if len(args) != 0 {
		log.Fatalf("usage: cts listinstances")
	}
	res, err := getAdminClient().ListInstances(ctx)
	if err != nil {
		log.Fatalf("Getting list of instances: %v", err)
	}
	tw := tabwriter.NewWriter(os.Stdout, 10, 8, 4, '\t', 0)
	fmt.Fprintf(tw, "Instance Name\tInfo\n")
	fmt.Fprintf(tw, "-------------\t----\n")
	for _, inst := range res.Instances {
		id := inst.Name
		if i := strings.LastIndex(id, "/"); i >= 0 {
			id = id[i+1:]
		}
		fmt.Fprintf(tw, "%s\t%s\n", id, inst.DisplayName)
	}
	tw.Flush()
}

func doLookup(ctx context.Context, args ...string) {
	if len(args) != 2 {
		log.Fatalf("usage: cts lookup <table> <row>")
	}
	tbl := getTable(args[0])
	r, err := tbl.ReadRow(ctx, args[1])
	if err != nil {
		log.Fatalf("Reading row: %v", err)
	}
	printRow(r)
}

var timestampFormat = "2006/01/02-15:04:05.000000"

func printRow(r tabletstore.Row) {
	fmt.Println(strings.Repeat("-", 40))
	fmt.Println(r.Key())

	var fams []string
	for fam := range r {
		fams = append(fams, fam)
	}
	sort.Strings(fams)
	for _, fam := range fams {
		ris := r[fam]
		sort.Sort(byColumn(ris))
		for _, ri := range ris {
			ts := ri.Timestamp.Time()
			fmt.Printf("  %-40s @ %s\n", ri.Column, ts.Format(timestampFormat))
			col := ri.Column[strings.Index(ri.Column, ":")+1:]
			formatted, err := valueFormatting.format("    ", fam, col, ri.Value)
			if err != nil {
				log.Fatalf("Formatting value of %s: %v", ri.Column, err)
			}
			fmt.Print(formatted)
		}
	}
}

type byColumn []tabletstore.ReadItem

func (b byColumn) Len() int           { return len(b) }
func (b byColumn) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
func (b byColumn) Less(i, j int) bool { return b[i].Column < b[j].Column }

func doLS(ctx context.Context, args ...string) {
	switch len(args) {
	default:
		log.Fatalf("Can't do `ls %s`", args)
	case 0:
		tables, err := getAdminInstance().Tables(ctx)
		if err != nil {
			log.Fatalf("Getting list of tables: %v", err)
		}
		sort.Strings(tables)
		for _, table := range tables {
			fmt.Println(table)
		}
	case 1:
		ti, err := getAdminInstance().TableInfo(ctx, args[0])
		if err != nil {
			log.Fatalf("Getting table info: %v", err)
		}
		sort.Strings(ti.Families)
		for _, fam := range ti.Families {
			fmt.Println(fam)
		}
	}
}

func doRead(ctx context.Context, args ...string) {
	if len(args) < 1 {
		log.Fatalf("usage: cts read <table> [args ...]")
	}
	tbl := getTable(args[0])

	parsed, err := parseArgs(args[1:], []string{"start", "end", "prefix", "count"})
	if err != nil {
		log.Fatal(err)
	}
	if (parsed["start"] != "" || parsed["end"] != "") && parsed["prefix"] != "" {
		log.Fatal(`"start"/"end" may not be mixed with "prefix"`)
	}

	var rr tabletstore.RowRange
	if start, end := parsed["start"], parsed["end"]; end != "" {
		rr = tabletstore.NewRange(start, end)
	} else if start != "" {
		rr = tabletstore.InfiniteRange(start)
	} else {
		rr = tabletstore.InfiniteRange("")
	}
	if prefix := parsed["prefix"]; prefix != "" {
		rr = tabletstore.PrefixRange(prefix)
	}

	var opts []tabletstore.ReadOption
	if count := parsed["count"]; count != "" {
		n, err := strconv.ParseInt(count, 0, 64)
		if err != nil {
			log.Fatalf("Bad count %q: %v", count, err)
		}
		opts = append(opts, tabletstore.LimitRows(n))
	}

	err = tbl.ReadRows(ctx, rr, func(r tabletstore.Row) bool {
		printRow(r)
		return true
	}, opts...)
	if err != nil {
		log.Fatalf("Reading rows: %v", err)
	}
}

func doSet(ctx context.Context, args ...string) {
	if len(args) < 3 {
		log.Fatalf("usage: cts set <table> <row> family:column=val[@ts] ...")
	}
	tbl := getTable(args[0])
	row := args[1]
	mut := tabletstore.NewMutation()
	for _, arg := range args[2:] {
		colon := strings.Index(arg, ":")
		if colon < 0 {
			log.Fatalf("Bad arg %q", arg)
		}
		family, col := arg[:colon], arg[colon+1:]
		eq := strings.Index(col, "=")
		if eq < 0 {
			log.Fatalf("Bad arg %q", arg)
		}
		col, val := col[:eq], col[eq+1:]
		ts := tabletstore.Now()
		if i := strings.LastIndex(val, "@"); i >= 0 {
			// Try parsing a timestamp.
			n, err := strconv.ParseInt(val[i+1:], 0, 64)
			if err == nil {
				val = val[:i]
				ts = tabletstore.Timestamp(n)
			}
		}
		mut.Set(family, col, ts, []byte(val))
	}
	if err := tbl.Apply(ctx, row, mut); err != nil {
		log.Fatalf("Applying mutation: %v", err)
	}
}

func doSetGCPolicy(ctx context.Context, args ...string) {
	if len(args) < 3 {
		log.Fatalf("usage: cts setgcpolicy <table> <family> ((maxage=<d> | maxversions=<n>) [(and|or) (maxage=<d>|maxversions=<n>)...] | never)")
	}
	table, fam := args[0], args[1]
	pol, err := parseGCPolicy(strings.Join(args[2:], " "))
	if err != nil {
		log.Fatal(err)
	}
	if err := getAdminInstance().SetGCPolicy(ctx, table, fam, pol); err != nil {
		log.Fatalf("Setting GC policy: %v", err)
	}
}

func parseGCPolicy(s string) (tabletstore.GCPolicy, error) {
	if strings.TrimSpace(s) == "never" {
		return tabletstore.NoGcPolicy(), nil
	}
	hasAnd := strings.Contains(s, " and ")
	hasOr := strings.Contains(s, " or ")
	if hasAnd && hasOr {
		return nil, fmt.Errorf("Cannot mix \"and\" and \"or\" in GC policy %q", s)
	}
	var sub []string
	switch {
	case hasAnd:
		sub = strings.Split(s, " and ")
	case hasOr:
		sub = strings.Split(s, " or ")
	default:
		sub = []string{s}
	}
	var pols []tabletstore.GCPolicy
	for _, p := range sub {
		p = strings.TrimSpace(p)
		switch {
		case strings.HasPrefix(p, "maxage="):
			d, err := parseDuration(strings.TrimPrefix(p, "maxage="))
			if err != nil {
				return nil, err
			}
			pols = append(pols, tabletstore.MaxAgePolicy(d))
		case strings.HasPrefix(p, "maxversions="):
			n, err := strconv.ParseUint(strings.TrimPrefix(p, "maxversions="), 10, 16)
			if err != nil {
				return nil, err
			}
			pols = append(pols, tabletstore.MaxVersionsPolicy(int(n)))
		default:
			return nil, fmt.Errorf("Bad GC policy rule %q", p)
		}
	}
	if len(pols) == 1 {
		return pols[0], nil
	}
	if hasOr {
		return tabletstore.UnionPolicy(pols...), nil
	}
	return tabletstore.IntersectionPolicy(pols...), nil
}

func doVersion(ctx context.Context, args ...string) {
	fmt.Printf("%s %s %s\n", version, revision, revisionDate)
}

// parseDuration parses a duration string in the form [0-9]+[unit],
// where unit is one of ms, s, m, h or d. It is deliberately stricter
// than time.ParseDuration: no fractions, no unit chaining, and no
// units finer than a millisecond.
func parseDuration(s string) (time.Duration, error) {
	// Split [0-9]+ from the unit suffix.
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
	}
	ds, u := s[:i], s[i:]
	if ds == "" || u == "" {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	d, err := strconv.ParseUint(ds, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %v", s, err)
	}
	unit, ok := unitMap[u]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q in duration %q", u, s)
	}
	if d > uint64(1<<63-1)/uint64(unit) {
		return 0, fmt.Errorf("invalid duration %q overflows", s)
	}
	return time.Duration(d) * unit, nil
}

var unitMap = map[string]time.Duration{
	"ms": time.Millisecond,
	"s":  time.Second,
	"m":  time.Minute,
	"h":  time.Hour,
	"d":  24 * time.Hour,
}

// parseArgs takes a slice of arguments of the form key=value and
// returns a map from key to value. It returns an error if an argument
// is malformed or a key is not in valid.
func parseArgs(args []string, valid []string) (map[string]string, error) {
	parsed := make(map[string]string)
	for _, arg := range args {
		i := strings.Index(arg, "=")
		if i < 0 {
			return nil, fmt.Errorf("Bad arg %q", arg)
		}
		key, val := arg[:i], arg[i+1:]
		if !slices.Contains(valid, key) {
			return nil, fmt.Errorf("Unknown arg key %q", key)
		}
		parsed[key] = val
	}
	return parsed, nil
}

const maxImportBatchSize = 100000

type importerArgs struct {
	appProfile string
	fam        string
	sz         int
	workers    int
}

type safeReader struct {
	mu sync.Mutex
	r  *csv.Reader
	t  int // total rows written
}

func doImport(ctx context.Context, args ...string) {
	ia, err := parseImporterArgs(ctx, args)
	if err != nil {
		log.Fatalf("error parsing importer args: %s", err)
	}
	f, err := os.Open(args[1])
	if err != nil {
		log.Fatalf("couldn't open the csv file: %s", err)
	}
	defer f.Close()

	tbl := getTableWithAppProfile(args[0], ia.appProfile)
	importCSV(ctx, tbl, csv.NewReader(f), ia)
}

func parseImporterArgs(ctx context.Context, args []string) (importerArgs, error) {
	var err error
	ia := importerArgs{
		fam:     "",
		sz:      500,
		workers: 1,
	}
	if len(args) < 2 {
		return ia, fmt.Errorf("usage: cts import <table-id> <input-file> [app-profile=<app-profile-id>] [column-family=<family-name>] [batch-size=<500>] [workers=<1>]")
	}
	for _, arg := range args[2:] {
		switch {
		case strings.HasPrefix(arg, "app-profile="):
			ia.appProfile = strings.TrimPrefix(arg, "app-profile=")
		case strings.HasPrefix(arg, "column-family="):
			ia.fam = strings.TrimPrefix(arg, "column-family=")
			if ia.fam == "" {
				return ia, fmt.Errorf("column-family cannot be ''")
			}
		case strings.HasPrefix(arg, "batch-size="):
			ia.sz, err = strconv.Atoi(strings.TrimPrefix(arg, "batch-size="))
			if err != nil || ia.sz <= 0 || ia.sz > maxImportBatchSize {
				return ia, fmt.Errorf("batch-size must be > 0 and <= %v", maxImportBatchSize)
			}
		case strings.HasPrefix(arg, "workers="):
			ia.workers, err = strconv.Atoi(strings.TrimPrefix(arg, "workers="))
			if err != nil || ia.workers <= 0 {
				return ia, fmt.Errorf("workers must be > 0, err:%s", err)
			}
		}
	}
	return ia, nil
}

func importCSV(ctx context.Context, tbl tableAPI, r *csv.Reader, ia importerArgs) {
	fams, cols, err := parseCsvHeaders(r, ia.fam)
	if err != nil {
		log.Fatalf("error parsing csv headers: %s", err)
	}
	sr := safeReader{r: r}
	ts := tabletstore.Now()

	var wg sync.WaitGroup
	wg.Add(ia.workers)
	for i := 0; i < ia.workers; i++ {
		go func(worker int) {
			defer wg.Done()
			if err := sr.parseAndWrite(ctx, tbl, fams, cols, ts, ia.sz, worker); err != nil {
				log.Fatalf("error: %s", err)
			}
		}(i)
	}
	wg.Wait()
	log.Printf("Done importing %d rows.\n", sr.t)
}

// parseCsvHeaders reads the header rows from the csv reader. The
// column family row is only present when no column-family argument was
// given; gaps in it extend the previous family. The first column of a
// header row belongs to the row keys and must be empty.
func parseCsvHeaders(reader *csv.Reader, fam string) ([]string, []string, error) {
	var fams, cols []string
	if fam == "" { // no column-family arg, get families from the csv
		row, err := reader.Read()
		if err != nil {
			return nil, nil, fmt.Errorf("family header reader error:%s", err)
		}
		fams = row
	}
	cols, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("columns header reader error:%s", err)
	}

	for _, header := range [][]string{fams, cols} {
		if len(header) == 0 {
			continue
		}
		if header[0] != "" {
			return nil, nil, fmt.Errorf("the first column must be empty for column-family and column name rows")
		}
		if len(header) < 2 || header[1] == "" {
			return nil, nil, fmt.Errorf("the second column (first data column) must have values for column family and column name rows if present")
		}
	}

	if fam == "" {
		for i := 1; i < len(fams); i++ {
			if fams[i] == "" {
				fams[i] = fams[i-1]
			}
		}
	} else {
		fams = make([]string, len(cols))
		for i := 1; i < len(fams); i++ {
			fams[i] = fam
		}
	}
	return fams, cols, nil
}

func (sr *safeReader) parseAndWrite(ctx context.Context, tbl tableAPI, fams, cols []string, ts tabletstore.Timestamp, max, worker int) error {
	for {
		rowKeys, muts, err := sr.nextBatch(fams, cols, ts, max)
		if err != nil {
			return err
		}
		if len(muts) == 0 {
			return nil
		}
		for i, mut := range muts {
			if err := tbl.Apply(ctx, rowKeys[i], mut); err != nil {
				return fmt.Errorf("error applying row %q: %s", rowKeys[i], err)
			}
		}
	}
}

// nextBatch claims up to max data rows from the shared reader and
// converts them to mutations. Rows with no values are skipped.
func (sr *safeReader) nextBatch(fams, cols []string, ts tabletstore.Timestamp, max int) ([]string, []*tabletstore.Mutation, error) {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	var rowKeys []string
	var muts []*tabletstore.Mutation
	for len(muts) < max {
		line, err := sr.r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		mut := tabletstore.NewMutation()
		empty := true
		for i, val := range line {
			if i > 0 && val != "" {
				mut.Set(fams[i], cols[i], ts, []byte(val))
				empty = false
			}
		}
		if !empty {
			rowKeys = append(rowKeys, line[0])
			muts = append(muts, mut)
		}
	}
	sr.t += len(muts)
	return rowKeys, muts, nil
}

func doDoc(ctx context.Context, args ...string) {
	data := map[string]interface{}{
		"Commands": commands,
	}
	var buf bytes.Buffer
	if err := docTemplate.Execute(&buf, data); err != nil {
		log.Fatalf("Bad doc template: %v", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("Bad doc output: %v", err)
	}
	os.Stdout.Write(out)
}

func indentLines(s, ind string) string {
	ss := strings.Split(s, "\n")
	for i, p := range ss {
		ss[i] = ind + p
	}
	return strings.Join(ss, "\n")
}

var docTemplate = template.Must(template.New("doc").Funcs(template.FuncMap{
	"indent": indentLines,
}).
	Parse(`// Copyright 2024 Google LLC
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

// DO NOT EDIT. THIS IS AUTOMATICALLY GENERATED.
// Run "go generate" to regenerate.
//go:generate go run cts.go valueformatting.go -o ctsdoc.go doc

/*
Cts is a tool for doing basic interactions with Cloud Tabletstore.

Usage:

	cts [options] command [arguments]

The commands are:
{{range .Commands}}
	{{printf "%-25s %s" .Name .Desc}}{{end}}

Use "cts help <command>" for more information about a command.
{{range .Commands}}
{{.Desc}}

Usage:

{{indent .Usage "\t"}}
{{end}}
*/
package main
`))
