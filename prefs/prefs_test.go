/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package prefs

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mikeb26/teetimes/teetime"
)

func TestLoadMissing(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f != (File{}) {
		t.Errorf("Load = %+v; want empty", f)
	}
	if _, err := Load(""); err == nil {
		t.Error("Load(\"\"): expected error")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teetimes", "settings.toml")
	in := File{
		Settings: teetime.Settings{MenCount: teetime.Int(72),
			WomenCount: teetime.Int(18), FlightSize: teetime.Int(4), Layout: "double", Format: "54", StartTime: "07:30"},
		Area: "RM",
	}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("Load = %+v; want %+v", out, in)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[settings]") ||
		strings.Contains(string(data), "symmetry") {
		t.Errorf("unexpected file contents:\n%s", data)
	}

	if err := Reset(path); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if err := Reset(path); err != nil {
		t.Errorf("Reset of a missing file: %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("[settings\nmen_count = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load: expected decode error")
	}
}

func TestApply(t *testing.T) {
	f := File{Settings: teetime.Settings{MenCount: teetime.Int(40), Layout: "double",
		Gap: "00:11"}}
	got := f.Apply(teetime.Settings{MenCount: teetime.Int(12), Gap: "00:09"})
	if teetime.ToInt(got.MenCount) != 12 || got.Gap != "00:09" || got.Layout != "double" {
		t.Errorf("Apply = %+v", got)
	}
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := Path(); got != filepath.Join("/tmp/xdg", "teetimes", "settings.toml") {
		t.Errorf("Path = %v", got)
	}
}
