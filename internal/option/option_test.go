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

package option

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	origDebug := debug
	defer func() { debug = origDebug }()

	debug = false
	Debugf(logger, "quiet %d", 1)
	if got := buf.String(); got != "" {
		t.Errorf("Debugf with debug disabled wrote %q, want nothing", got)
	}

	debug = true
	Debugf(logger, "dialing %q", "localhost:1234")
	want := `DEBUG: dialing "localhost:1234"`
	if got := buf.String(); !strings.Contains(got, want) {
		t.Errorf("Debugf wrote %q, want it to contain %q", got, want)
	}
}
