package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
	err   error
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

type testSection struct {
	Name  string   `toml:"name"`
	Count int      `toml:"count"`
	Tags  []string `toml:"tags"`
}

type testConfig struct {
	Title   string      `toml:"title"`
	Section testSection `toml:"section"`
}

func TestTOMLLoaderLoad(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
title = "dbterm"

[section]
name = "db"
count = 3
tags = ["a", "b"]
`)

	var cfg testConfig
	found, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load(&cfg)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !found {
		t.Fatal("expected file to be found")
	}

	if cfg.Title != "dbterm" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Section.Name != "db" || cfg.Section.Count != 3 {
		t.Errorf("Section = %+v", cfg.Section)
	}
	if len(cfg.Section.Tags) != 2 || cfg.Section.Tags[1] != "b" {
		t.Errorf("Tags = %v", cfg.Section.Tags)
	}
}

func TestTOMLLoaderKeepsDefaults(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", "[section]\ncount = 7\n")

	cfg := testConfig{Title: "default", Section: testSection{Name: "keep"}}
	if _, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load(&cfg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Title != "default" || cfg.Section.Name != "keep" {
		t.Errorf("defaults overwritten: %+v", cfg)
	}
	if cfg.Section.Count != 7 {
		t.Errorf("Count = %d, want 7", cfg.Section.Count)
	}
}

func TestTOMLLoaderMissingFile(t *testing.T) {
	var cfg testConfig
	found, err := NewTOMLLoaderWithFS(NewMemFS(), "/missing.toml").Load(&cfg)
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if found {
		t.Error("expected found = false")
	}
}

func TestTOMLLoaderReadError(t *testing.T) {
	memfs := NewMemFS()
	memfs.err = errors.New("permission denied")

	var cfg testConfig
	_, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("error = %v", err)
	}
}

func TestTOMLLoaderSyntaxError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[section]\nname = = 1\n")

	var cfg testConfig
	_, err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load(&cfg)
	if err == nil {
		t.Fatal("expected parse error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Path != "/bad.toml" {
		t.Errorf("Path = %q", parseErr.Path)
	}
	if parseErr.Line != 2 {
		t.Errorf("Line = %d, want 2", parseErr.Line)
	}
}

func TestTOMLLoaderUnknownKey(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", "[section]\nbogus = 1\n")

	var cfg testConfig
	_, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load(&cfg)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if !strings.Contains(parseErr.Message, "bogus") {
		t.Errorf("Message = %q, want mention of bogus", parseErr.Message)
	}
}

func TestTOMLLoaderFromReader(t *testing.T) {
	var cfg testConfig
	err := NewTOMLLoader("").LoadFromReader(strings.NewReader(`title = "r"`), &cfg)
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if cfg.Title != "r" {
		t.Errorf("Title = %q", cfg.Title)
	}
}

func TestMerge(t *testing.T) {
	cfg := testConfig{Title: "file", Section: testSection{Name: "file", Count: 2}}
	values := map[string]any{
		"section": map[string]any{"name": "env"},
	}

	if err := Merge("environment", values, &cfg); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if cfg.Section.Name != "env" {
		t.Errorf("Name = %q, want env", cfg.Section.Name)
	}
	if cfg.Title != "file" || cfg.Section.Count != 2 {
		t.Errorf("unrelated fields changed: %+v", cfg)
	}
}

func TestMergeEmpty(t *testing.T) {
	cfg := testConfig{Title: "x"}
	if err := Merge("environment", nil, &cfg); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if cfg.Title != "x" {
		t.Errorf("Title = %q", cfg.Title)
	}
}

func TestMergeUnknownKey(t *testing.T) {
	var cfg testConfig
	err := Merge("environment", map[string]any{"nope": "1"}, &cfg)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Path != "environment" {
		t.Errorf("Path = %q", parseErr.Path)
	}
}

func TestParseErrorFormat(t *testing.T) {
	tests := []struct {
		err  ParseError
		want string
	}{
		{ParseError{Path: "a.toml", Line: 3, Column: 4, Message: "bad"}, "parse error in a.toml at line 3, column 4: bad"},
		{ParseError{Path: "a.toml", Line: 3, Message: "bad"}, "parse error in a.toml at line 3: bad"},
		{ParseError{Path: "a.toml", Message: "bad"}, "parse error in a.toml: bad"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
