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

package main

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"cloud.google.com/go/internal/testutil"
	"github.com/jhump/protoreflect/dynamic"
)

func assertEqual(t *testing.T, label string, got, want interface{}) {
	t.Helper()
	if !testutil.Equal(got, want) {
		t.Errorf("%s: got %v, want %v", label, got, want)
	}
}

func assertNoError(t *testing.T, err error) bool {
	t.Helper()
	if err != nil {
		t.Error(err)
		return false
	}
	return true
}

func TestParseValueFormatSettings(t *testing.T) {
	want := ValueFormatSettings{
		DefaultEncoding: "HEX",
		ProtocolBuffer: ValueFormatProtocolBufferDefinition{
			Definitions: []string{"MyProto.proto", "MyOtherProto.proto"},
			Imports:     []string{"mycode/stuff", "/home/user/dev/othercode/"},
		},
		Families: map[string]ValueFormatFamily{
			"family1": {
				DefaultEncoding: "BigEndian",
				DefaultType:     "INT64",
				Columns: map[string]ValueFormatColumn{
					"address": {
						Encoding: "PROTO",
						Type:     "tutorial.Person",
					},
				},
			},
			"family2": {
				Columns: map[string]ValueFormatColumn{
					"col1": {
						Encoding: "B",
						Type:     "INT32",
					},
					"col2": {
						Encoding: "L",
						Type:     "INT16",
					},
					"address": {
						Encoding: "PROTO",
						Type:     "tutorial.Person",
					},
				},
			},
			"family3": {
				Columns: map[string]ValueFormatColumn{
					"proto_col": {
						Encoding: "PROTO",
						Type:     "MyProtoMessageType",
					},
				},
			},
		},
	}

	var formatting ValueFormatting
	if err := formatting.parse(filepath.Join("testdata", t.Name()+".yml")); err != nil {
		t.Fatalf("Parse error: %s", err)
	}
	assertEqual(t, "settings", formatting.settings, want)
}

// personWireData is a serialized tutorial.Person with name "Jim",
// id 42, email "jim@example.com" and one HOME phone number.
var personWireData = []byte(
	"\x0a\x03Jim\x10\x2a\x1a\x0fjim@example.com\x22\x0c\x0a\x08555-1212\x10\x01")

func TestSetupPBMessages(t *testing.T) {
	var formatting ValueFormatting
	formatting.settings.ProtocolBuffer.Imports = []string{
		"testdata",
		filepath.Join("testdata", "protoincludes"),
	}
	formatting.settings.ProtocolBuffer.Definitions = []string{
		"addressbook.proto",
		"club.proto",
	}
	if err := formatting.setupPBMessages(); err != nil {
		t.Fatalf("Proto parse error: %s", err)
	}

	var keys []string
	for k := range formatting.pbMessageTypes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assertEqual(t, "keys", keys, []string{
		"AddressBook",
		"Equipment",
		"Person",
		"addressbook",
		"equipment",
		"person",
		"tutorial.AddressBook",
		"tutorial.Person",
		"tutorial.addressbook",
		"tutorial.person",
	})

	// Make sure the message descriptors are usable.
	message := dynamic.NewMessage(formatting.pbMessageTypes["tutorial.person"])
	if err := message.Unmarshal(personWireData); err != nil {
		t.Fatalf("unmarshalling: %s", err)
	}
	assertEqual(t, "message", fmt.Sprint(message),
		`name:"Jim" id:42 email:"jim@example.com"`+
			` phones:<number:"555-1212" type:HOME>`)
}

var binaryFormatterTestData = []byte{
	0, 1, 2, 3, 4, 5, 6, 7, 255, 255, 255, 255, 255, 255, 255, 156}

func checkBinaryValueFormatter(
	t *testing.T, typ string, nbytes int, want string, order binary.ByteOrder,
) {
	t.Helper()
	got, err := binaryValueFormatters[typ](binaryFormatterTestData[:nbytes], order)
	if !assertNoError(t, err) {
		return
	}
	assertEqual(t, typ, got, want)
}

func TestBinaryValueFormatterINT8(t *testing.T) {
	checkBinaryValueFormatter(
		t, "int8", 16, "[0 1 2 3 4 5 6 7 -1 -1 -1 -1 -1 -1 -1 -100]", binary.BigEndian)
}

func TestBinaryValueFormatterINT16(t *testing.T) {
	// Also covers the scalar and empty special cases and byte order.
	checkBinaryValueFormatter(
		t, "int16", 16, "[1 515 1029 1543 -1 -1 -1 -100]", binary.BigEndian)
	checkBinaryValueFormatter(t, "int16", 0, "[]", binary.BigEndian)
	checkBinaryValueFormatter(t, "int16", 2, "1", binary.BigEndian)
	checkBinaryValueFormatter(
		t, "int16", 16, "[256 770 1284 1798 -1 -1 -1 -25345]", binary.LittleEndian)
}

func TestBinaryValueFormatterINT32(t *testing.T) {
	checkBinaryValueFormatter(
		t, "int32", 16, "[66051 67438087 -1 -100]", binary.BigEndian)
}

func TestBinaryValueFormatterINT64(t *testing.T) {
	checkBinaryValueFormatter(
		t, "int64", 16, "[283686952306183 -100]", binary.BigEndian)
}

func TestBinaryValueFormatterUINT8(t *testing.T) {
	checkBinaryValueFormatter(
		t, "uint8", 16, "[0 1 2 3 4 5 6 7 255 255 255 255 255 255 255 156]",
		binary.BigEndian)
}

func TestBinaryValueFormatterUINT16(t *testing.T) {
	checkBinaryValueFormatter(
		t, "uint16", 16, "[1 515 1029 1543 65535 65535 65535 65436]",
		binary.BigEndian)
}

func TestBinaryValueFormatterUINT32(t *testing.T) {
	checkBinaryValueFormatter(
		t, "uint32", 16, "[66051 67438087 4294967295 4294967196]", binary.BigEndian)
}

func TestBinaryValueFormatterUINT64(t *testing.T) {
	checkBinaryValueFormatter(
		t, "uint64", 16, "[283686952306183 18446744073709551516]", binary.BigEndian)
}

func TestBinaryValueFormatterFLOAT32(t *testing.T) {
	checkBinaryValueFormatter(
		t, "float32", 16, "[9.2557e-41 1.5636842e-36 NaN NaN]", binary.BigEndian)
}

func TestBinaryValueFormatterFLOAT64(t *testing.T) {
	checkBinaryValueFormatter(
		t, "float64", 16, "[1.40159977307889e-309 NaN]", binary.BigEndian)
}

func TestFormat(t *testing.T) {
	var f ValueFormatting
	f.settings.Families = map[string]ValueFormatFamily{
		"binaries": {
			DefaultEncoding: "Hex",
			Columns: map[string]ValueFormatColumn{
				"be16": {Encoding: "BigEndian", Type: "int16"},
			},
		},
	}

	got, err := f.format("  ", "plain", "col", []byte("hello"))
	if assertNoError(t, err) {
		assertEqual(t, "default", got, "  \"hello\"\n")
	}

	got, err = f.format("  ", "binaries", "other", []byte{0xde, 0xad})
	if assertNoError(t, err) {
		assertEqual(t, "hex", got, "  de ad\n")
	}

	got, err = f.format("  ", "binaries", "be16", []byte{1, 1})
	if assertNoError(t, err) {
		assertEqual(t, "bigendian", got, "  257\n")
	}

	f.settings.DefaultEncoding = "spicy"
	if _, err := f.format("  ", "plain", "col", []byte("x")); err == nil {
		t.Error("unknown encoding: got nil, want error")
	}
	f.settings.DefaultEncoding = ""
}

func TestFormatProto(t *testing.T) {
	var f ValueFormatting
	f.settings.ProtocolBuffer.Imports = []string{"testdata"}
	f.settings.ProtocolBuffer.Definitions = []string{"addressbook.proto"}
	if err := f.setupPBMessages(); err != nil {
		t.Fatalf("Proto parse error: %s", err)
	}
	f.settings.Families = map[string]ValueFormatFamily{
		"people": {
			Columns: map[string]ValueFormatColumn{
				"address": {Encoding: "PROTO", Type: "person"},
			},
		},
	}

	got, err := f.format("  ", "people", "address", personWireData)
	if !assertNoError(t, err) {
		return
	}
	for _, want := range []string{`"Jim"`, "555-1212"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatted proto output missing %s:\n%s", want, got)
		}
	}
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		if !strings.HasPrefix(line, "  ") {
			t.Errorf("line %q not indented:\n%s", line, got)
		}
	}
}
