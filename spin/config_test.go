// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package spin_test

import (
	"testing"

	"os"
	"path/filepath"

	"github.com/aamcrae/spingif/spin"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "spin.yaml")
	if err := os.WriteFile(name, []byte(body), 0644); err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return name
}

func TestDefaultConfig(t *testing.T) {
	c := spin.DefaultConfig()
	if c.Frames != 36 || c.Delay != 50 || c.Loop != 0 {
		t.Fatalf("Bad defaults: %+v", c)
	}
	if c.Input != "logo.png" || c.Output != "logo-rotating.gif" {
		t.Fatalf("Bad default files: %+v", c)
	}
}

func TestReadConfig(t *testing.T) {
	name := writeConfig(t, "input: in.png\noutput: out.gif\nframes: 12\ndelay: 80\n")
	c, err := spin.ReadConfig(name)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	if c.Input != "in.png" || c.Output != "out.gif" || c.Frames != 12 || c.Delay != 80 {
		t.Fatalf("Bad config: %+v", c)
	}
	// Unset values keep the defaults.
	name = writeConfig(t, "input: other.png\n")
	c, err = spin.ReadConfig(name)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	if c.Input != "other.png" || c.Frames != 36 || c.Delay != 50 {
		t.Fatalf("Defaults not applied: %+v", c)
	}
}

func TestBadConfig(t *testing.T) {
	for _, body := range []string{
		"frames: -1\n",
		"delay: -5\n",
		"loop: -2\n",
		"output: \"\"\n",
		"frames: [1, 2]\n",
	} {
		name := writeConfig(t, body)
		if _, err := spin.ReadConfig(name); err == nil {
			t.Fatalf("Expected error for config %q", body)
		}
	}
	if _, err := spin.ReadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Expected error for missing config file")
	}
}
