// seehuhn.de/go/motion - path-following animation geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "pathtrace.toml")
	if err := os.WriteFile(fname, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestLoadConfig(t *testing.T) {
	fname := writeFile(t, `
flatness = 0.25
steps = 100
tangent = true
format = "csv"

[trace]
marks = 24
arrow_size = 6.0
line_width = 0.5
`)

	got, err := loadConfig(fname)
	if err != nil {
		t.Fatal(err)
	}
	want := &config{
		Flatness: 0.25,
		Steps:    100,
		Tangent:  true,
		Format:   "csv",
		Trace: traceConfig{
			Marks:     24,
			ArrowSize: 6,
			LineWidth: 0.5,
		},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestLoadConfigEmptyName(t *testing.T) {
	got, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(&config{}, got); d != "" {
		t.Error(d)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"unknown_key": "colour = \"red\"\n",
		"bad_type":    "steps = \"many\"\n",
		"negative":    "steps = -3\n",
		"syntax":      "steps = \n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			fname := writeFile(t, content)
			_, err := loadConfig(fname)
			if err == nil {
				t.Fatal("missing error")
			}
			if !strings.Contains(err.Error(), fname) {
				t.Errorf("error %q does not name the file", err)
			}
		})
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing error for nonexistent file")
	}
}

func TestFirstNonZero(t *testing.T) {
	if got := firstNonZero(0, 7, 10); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
	if got := firstNonZero("", "", "json"); got != "json" {
		t.Errorf("got %q, want json", got)
	}
	if got := firstNonZero(0.5, 0.25); got != 0.5 {
		t.Errorf("got %g, want 0.5", got)
	}
	if got := firstNonZero[int](); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}
