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
	"fmt"
	"strings"
	"time"

	durpb "github.com/golang/protobuf/ptypes/duration"

	adminpb "cloud.google.com/go/tabletstore/admin/apiv2/adminpb"
)

// A GCPolicy represents a rule that determines which cells are eligible for
// garbage collection.
type GCPolicy interface {
	String() string
	proto() *adminpb.GcRule
}

// IntersectionPolicy returns a GC policy that removes cells matched by all
// of the given policies.
func IntersectionPolicy(sub ...GCPolicy) GCPolicy { return intersectionPolicy{sub} }

type intersectionPolicy struct {
	sub []GCPolicy
}

func (ip intersectionPolicy) String() string {
	var chunks []string
	for _, sp := range ip.sub {
		chunks = append(chunks, sp.String())
	}
	return "(" + strings.Join(chunks, " && ") + ")"
}

func (ip intersectionPolicy) proto() *adminpb.GcRule {
	inter := &adminpb.GcRule_Intersection{}
	for _, sp := range ip.sub {
		inter.Rules = append(inter.Rules, sp.proto())
	}
	return &adminpb.GcRule{
		Rule: &adminpb.GcRule_Intersection_{Intersection: inter},
	}
}

// UnionPolicy returns a GC policy that removes cells matched by any of the
// given policies.
func UnionPolicy(sub ...GCPolicy) GCPolicy { return unionPolicy{sub} }

type unionPolicy struct {
	sub []GCPolicy
}

func (up unionPolicy) String() string {
	var chunks []string
	for _, sp := range up.sub {
		chunks = append(chunks, sp.String())
	}
	return "(" + strings.Join(chunks, " || ") + ")"
}

func (up unionPolicy) proto() *adminpb.GcRule {
	union := &adminpb.GcRule_Union{}
	for _, sp := range up.sub {
		union.Rules = append(union.Rules, sp.proto())
	}
	return &adminpb.GcRule{
		Rule: &adminpb.GcRule_Union_{Union: union},
	}
}

// MaxVersionsPolicy returns a GC policy that removes all cells in a column
// except the n most recent.
func MaxVersionsPolicy(n int) GCPolicy { return maxVersionsPolicy(n) }

type maxVersionsPolicy int

func (mvp maxVersionsPolicy) String() string { return fmt.Sprintf("versions() > %d", int(mvp)) }

func (mvp maxVersionsPolicy) proto() *adminpb.GcRule {
	return &adminpb.GcRule{Rule: &adminpb.GcRule_MaxNumVersions{MaxNumVersions: int32(mvp)}}
}

// MaxAgePolicy returns a GC policy that removes cells older than the given
// age.
func MaxAgePolicy(d time.Duration) GCPolicy { return maxAgePolicy(d) }

type maxAgePolicy time.Duration

var units = []struct {
	d      time.Duration
	suffix string
}{
	{24 * time.Hour, "d"},
	{time.Hour, "h"},
	{time.Minute, "m"},
}

func (ma maxAgePolicy) String() string {
	d := time.Duration(ma)
	for _, u := range units {
		if d%u.d == 0 {
			return fmt.Sprintf("age() > %d%s", d/u.d, u.suffix)
		}
	}
	return fmt.Sprintf("age() > %d", d/time.Microsecond)
}

func (ma maxAgePolicy) proto() *adminpb.GcRule {
	// Overflow after ~290 years of max age is not handled.
	ns := time.Duration(ma).Nanoseconds()
	return &adminpb.GcRule{
		Rule: &adminpb.GcRule_MaxAge{MaxAge: &durpb.Duration{
			Seconds: ns / 1e9,
			Nanos:   int32(ns % 1e9),
		}},
	}
}

type noGCPolicy struct{}

func (n noGCPolicy) String() string { return "" }

func (n noGCPolicy) proto() *adminpb.GcRule { return &adminpb.GcRule{Rule: nil} }

// NoGcPolicy applies to all families that do not have a GCPolicy. It also
// resets any existing policy on a family.
func NoGcPolicy() GCPolicy { return noGCPolicy{} }

// GCRuleToString converts the given GcRule proto to a user-visible string.
func GCRuleToString(rule *adminpb.GcRule) string {
	if rule == nil {
		return "<never>"
	}
	switch r := rule.Rule.(type) {
	case *adminpb.GcRule_MaxNumVersions:
		return MaxVersionsPolicy(int(r.MaxNumVersions)).String()
	case *adminpb.GcRule_MaxAge:
		return MaxAgePolicy(time.Duration(r.MaxAge.Seconds)*time.Second + time.Duration(r.MaxAge.Nanos)*time.Nanosecond).String()
	case *adminpb.GcRule_Intersection_:
		return joinRules(r.Intersection.Rules, " && ")
	case *adminpb.GcRule_Union_:
		return joinRules(r.Union.Rules, " || ")
	default:
		return ""
	}
}

func joinRules(rules []*adminpb.GcRule, sep string) string {
	var chunks []string
	for _, r := range rules {
		chunks = append(chunks, GCRuleToString(r))
	}
	return "(" + strings.Join(chunks, sep) + ")"
}
