package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
	Kept  string `yaml:"kept"`
}

func (s *sample) Validate() error {
	if s.Count < 0 {
		return errors.New("count must not be negative")
	}
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_ExpandsEnvAndKeepsDefaults(t *testing.T) {
	t.Setenv("SAMPLE_NAME", "from-env")
	p := writeFile(t, "name: ${SAMPLE_NAME}\ncount: 3\n")

	s := sample{Kept: "default"}
	if err := Load(p, &s); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "from-env" || s.Count != 3 || s.Kept != "default" {
		t.Errorf("loaded %+v", s)
	}
}

func TestLoad_RunsValidator(t *testing.T) {
	p := writeFile(t, "count: -1\n")

	var s sample
	err := Load(p, &s)
	if err == nil || !strings.Contains(err.Error(), "count must not be negative") {
		t.Errorf("Load error = %v", err)
	}
}

func TestLoadIfExists(t *testing.T) {
	var s sample
	loaded, err := LoadIfExists(filepath.Join(t.TempDir(), "missing.yaml"), &s)
	if err != nil || loaded {
		t.Errorf("LoadIfExists(missing) = %v, %v", loaded, err)
	}

	p := writeFile(t, "name: x\n")
	loaded, err = LoadIfExists(p, &s)
	if err != nil || !loaded || s.Name != "x" {
		t.Errorf("LoadIfExists(present) = %v, %v, %+v", loaded, err, s)
	}
}
