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
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
	"gopkg.in/yaml.v2"
)

// ValueFormatColumn selects how values of a single column are rendered.
type ValueFormatColumn struct {
	Encoding string
	Type     string
}

// ValueFormatFamily carries per-family formatting defaults and column
// overrides.
type ValueFormatFamily struct {
	DefaultEncoding string `yaml:"default_encoding"`
	DefaultType     string `yaml:"default_type"`
	Columns         map[string]ValueFormatColumn
}

// ValueFormatProtocolBufferDefinition names the protocol buffer
// definition files and import paths used to decode PROTO encoded
// values.
type ValueFormatProtocolBufferDefinition struct {
	Definitions []string
	Imports     []string
}

// ValueFormatSettings is the root of a value formatting settings file.
type ValueFormatSettings struct {
	ProtocolBuffer  ValueFormatProtocolBufferDefinition `yaml:"protocol_buffer"`
	DefaultEncoding string                              `yaml:"default_encoding"`
	DefaultType     string                              `yaml:"default_type"`
	Families        map[string]ValueFormatFamily
}

// ValueFormatting renders cell values for display according to the
// settings file named by the -format-file flag. The zero value formats
// every cell with %q.
type ValueFormatting struct {
	settings ValueFormatSettings
	flags    struct {
		formatFile string
	}
	pbMessageTypes map[string]*desc.MessageDescriptor
}

var valueFormatting ValueFormatting

func (f *ValueFormatting) registerFlags() {
	flag.StringVar(&f.flags.formatFile, "format-file", "",
		"file containing value formatting settings")
}

func (f *ValueFormatting) parse(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, &f.settings)
}

func (f *ValueFormatting) setup() error {
	if f.flags.formatFile == "" {
		return nil
	}
	if err := f.parse(f.flags.formatFile); err != nil {
		return err
	}
	if err := f.setupPBMessages(); err != nil {
		return err
	}
	return f.validateColumns()
}

// setupPBMessages parses the configured protocol buffer definitions
// and indexes the top level message types under their qualified and
// unqualified names, in original and lower case.
func (f *ValueFormatting) setupPBMessages() error {
	if len(f.settings.ProtocolBuffer.Definitions) == 0 {
		return nil
	}
	parser := protoparse.Parser{
		ImportPaths: f.settings.ProtocolBuffer.Imports,
	}
	fds, err := parser.ParseFiles(f.settings.ProtocolBuffer.Definitions...)
	if err != nil {
		return err
	}
	f.pbMessageTypes = make(map[string]*desc.MessageDescriptor)
	for _, fd := range fds {
		pkg := fd.GetPackage()
		for _, md := range fd.GetMessageTypes() {
			name := md.GetName()
			f.pbMessageTypes[name] = md
			f.pbMessageTypes[strings.ToLower(name)] = md
			if pkg != "" {
				name = pkg + "." + name
				f.pbMessageTypes[name] = md
				f.pbMessageTypes[strings.ToLower(name)] = md
			}
		}
	}
	return nil
}

func (f *ValueFormatting) pbMessageType(name string) (*desc.MessageDescriptor, error) {
	md, ok := f.pbMessageTypes[name]
	if !ok {
		md, ok = f.pbMessageTypes[strings.ToLower(name)]
	}
	if !ok {
		return nil, fmt.Errorf("no protocol buffer message type %q", name)
	}
	return md, nil
}

type valueEncoding int

const (
	encodingDefault valueEncoding = iota
	encodingBigEndian
	encodingLittleEndian
	encodingHex
	encodingProtocolBuffer
)

var valueEncodings = map[string]valueEncoding{
	"":             encodingDefault,
	"bigendian":    encodingBigEndian,
	"b":            encodingBigEndian,
	"binary":       encodingBigEndian,
	"littleendian": encodingLittleEndian,
	"l":            encodingLittleEndian,
	"hex":          encodingHex,
	"h":            encodingHex,
	"proto":        encodingProtocolBuffer,
	"p":            encodingProtocolBuffer,
}

// colEncodingType resolves the encoding and type for a column from the
// most specific settings available: column, then family, then global.
func (f *ValueFormatting) colEncodingType(family, column string) (string, string) {
	encoding := f.settings.DefaultEncoding
	typ := f.settings.DefaultType
	if fam, ok := f.settings.Families[family]; ok {
		if fam.DefaultEncoding != "" {
			encoding = fam.DefaultEncoding
		}
		if fam.DefaultType != "" {
			typ = fam.DefaultType
		}
		if col, ok := fam.Columns[column]; ok {
			if col.Encoding != "" {
				encoding = col.Encoding
			}
			if col.Type != "" {
				typ = col.Type
			}
		}
	}
	return encoding, typ
}

func (f *ValueFormatting) validateColumns() error {
	var errs []string
	for famName, fam := range f.settings.Families {
		for colName := range fam.Columns {
			encodingName, typ := f.colEncodingType(famName, colName)
			encoding, ok := valueEncodings[strings.ToLower(strings.TrimSpace(encodingName))]
			if !ok {
				errs = append(errs, fmt.Sprintf("bad encoding %q for %s:%s", encodingName, famName, colName))
				continue
			}
			switch encoding {
			case encodingBigEndian, encodingLittleEndian:
				if _, ok := binaryValueFormatters[strings.ToLower(typ)]; !ok {
					errs = append(errs, fmt.Sprintf("bad binary type %q for %s:%s", typ, famName, colName))
				}
			case encodingProtocolBuffer:
				if _, err := f.pbMessageType(typ); err != nil {
					errs = append(errs, fmt.Sprintf("bad protocol buffer type %q for %s:%s", typ, famName, colName))
				}
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid value formatting settings:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

type binaryValueFormatter func([]byte, binary.ByteOrder) (string, error)

// formatBinaryValues decodes in as a sequence of binary values of type
// T in the given byte order. A single value is printed bare, any other
// count as a bracketed list.
func formatBinaryValues[T any](in []byte, order binary.ByteOrder) (string, error) {
	var zero T
	size := binary.Size(zero)
	if len(in)%size != 0 {
		return "", fmt.Errorf("data size %d is not a multiple of the value size %d", len(in), size)
	}
	v := make([]T, len(in)/size)
	if err := binary.Read(bytes.NewReader(in), order, v); err != nil {
		return "", err
	}
	if len(v) == 1 {
		return fmt.Sprint(v[0]), nil
	}
	return fmt.Sprint(v), nil
}

var binaryValueFormatters = map[string]binaryValueFormatter{
	"int8":    formatBinaryValues[int8],
	"int16":   formatBinaryValues[int16],
	"int32":   formatBinaryValues[int32],
	"int64":   formatBinaryValues[int64],
	"uint8":   formatBinaryValues[uint8],
	"uint16":  formatBinaryValues[uint16],
	"uint32":  formatBinaryValues[uint32],
	"uint64":  formatBinaryValues[uint64],
	"float32": formatBinaryValues[float32],
	"float64": formatBinaryValues[float64],
}

// format renders a cell value with the encoding configured for its
// family and column. Every output line is prefixed with prefix and the
// result always ends in a newline.
func (f *ValueFormatting) format(prefix, family, column string, value []byte) (string, error) {
	encodingName, typ := f.colEncodingType(family, column)
	encoding, ok := valueEncodings[strings.ToLower(strings.TrimSpace(encodingName))]
	if !ok {
		return "", fmt.Errorf("unknown encoding %q for column %q", encodingName, column)
	}
	var formatted string
	switch encoding {
	case encodingDefault:
		formatted = fmt.Sprintf("%q", value)
	case encodingHex:
		formatted = fmt.Sprintf("% x", value)
	case encodingBigEndian, encodingLittleEndian:
		formatter, ok := binaryValueFormatters[strings.ToLower(typ)]
		if !ok {
			return "", fmt.Errorf("invalid binary type %q for column %q", typ, column)
		}
		var order binary.ByteOrder = binary.BigEndian
		if encoding == encodingLittleEndian {
			order = binary.LittleEndian
		}
		var err error
		formatted, err = formatter(value, order)
		if err != nil {
			return "", err
		}
	case encodingProtocolBuffer:
		md, err := f.pbMessageType(typ)
		if err != nil {
			return "", err
		}
		message := dynamic.NewMessage(md)
		if err := message.Unmarshal(value); err != nil {
			return "", err
		}
		data, err := message.MarshalTextIndent()
		if err != nil {
			return "", err
		}
		formatted = string(data)
	}
	formatted = prefix + strings.TrimRight(
		strings.ReplaceAll(formatted, "\n", "\n"+prefix), " \t\n") + "\n"
	return formatted, nil
}
