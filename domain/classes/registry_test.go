package classes

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestAdd_AssignsNextIDAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	r := New([]string{"object"})
	r.Bind(path)

	got, err := r.Add("  person ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !got.Created || got.ID != 1 {
		t.Fatalf("expected new id 1, got %+v", got)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "object\nperson\n" {
		t.Fatalf("unexpected file %q", data)
	}
}

func TestAdd_ExistingNameCaseInsensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	r := New([]string{"object", "truck", "car"})
	r.Bind(path)

	got, err := r.Add("Car")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got.Created || got.ID != 2 {
		t.Fatalf("expected existing id 2, got %+v", got)
	}
	if r.Len() != 3 {
		t.Fatalf("registry must not grow, len=%d", r.Len())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("no write expected for existing name")
	}
}

func TestAdd_EmptyName(t *testing.T) {
	r := New(nil)
	if _, err := r.Add("   "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	got, err := r.Add("first")
	if err != nil || got.ID != 0 {
		t.Fatalf("first class in empty registry should get id 0, got %+v err=%v", got, err)
	}
}

func TestAdd_WriteFailureSurfaced(t *testing.T) {
	r := New([]string{"object"})
	r.Bind(filepath.Join(t.TempDir(), "missing", FileName))
	got, err := r.Add("dog")
	if err == nil {
		t.Fatalf("expected write error")
	}
	if !got.Created || !r.Has(got.ID) {
		t.Fatalf("entry should remain in memory after failed write")
	}
}

func TestLoad_GapsAndEnsure(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("cat\n\ndog\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r.Len() != 2 || r.Name(0) != "cat" || r.Name(2) != "dog" || r.Has(1) {
		t.Fatalf("unexpected registry %+v", r.Entries())
	}
	if !r.Ensure(1) || r.Name(1) != "class_1" {
		t.Fatalf("expected placeholder for gap")
	}
	if r.Ensure(1) {
		t.Fatalf("second Ensure should be a no-op")
	}
	if r.Path() != path {
		t.Fatalf("loaded registry should be bound to its file")
	}
}

func TestSave_FillsGapsWithPlaceholders(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	r := New([]string{"a", "", "c"})
	if err := r.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if back.Name(1) != "class_1" || back.Name(2) != "c" {
		t.Fatalf("ids shifted after round trip: %+v", back.Entries())
	}
}

func TestEntries_SortedByID(t *testing.T) {
	r := New(nil)
	r.Ensure(5)
	r.Ensure(1)
	r.Ensure(3)
	e := r.Entries()
	if len(e) != 3 || e[0].ID != 1 || e[1].ID != 3 || e[2].ID != 5 {
		t.Fatalf("unexpected order %+v", e)
	}
	if got, _ := r.Add("new"); got.ID != 6 {
		t.Fatalf("expected id 6 after max 5, got %d", got.ID)
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	r := New([]string{"cat", "", "dog"})
	if err := WriteManifest(path, dir, r); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.NC != 3 || m.Names[0] != "cat" || m.Names[1] != "class_1" || m.Names[2] != "dog" {
		t.Fatalf("unexpected manifest %+v", m)
	}
	if !strings.Contains(string(data), "nc: 3") {
		t.Fatalf("manifest missing nc: %s", data)
	}
}
