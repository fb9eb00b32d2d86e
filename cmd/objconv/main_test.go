package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/ddm-converter/internal/config"
)

const quadOBJ = `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Export.OutputDir = t.TempDir()
	cfg.Logging.Level = "error"
	return cfg
}

func TestRun_NoArgsIsNoop(t *testing.T) {
	var stdout, stderr bytes.Buffer
	for _, args := range [][]string{nil, {"a.obj", "b.obj"}} {
		if code := run(args, &stdout, &stderr); code != 0 {
			t.Errorf("args %v: expected exit 0, got %d (%s)", args, code, stderr.String())
		}
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no output, got %q", stdout.String())
	}
}

func TestRun_NoArgsSkipsConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "objconv.yaml"), []byte("export: [broken\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 0 {
		t.Errorf("expected exit 0 with a broken config and no input, got %d (%s)", code, stderr.String())
	}

	if code := run([]string{"in.obj"}, &stdout, &stderr); code != 1 {
		t.Errorf("expected exit 1 with a broken config and an input, got %d", code)
	}
	if !strings.HasPrefix(stderr.String(), "Config error:") {
		t.Errorf("expected config error report, got %q", stderr.String())
	}
}

func TestConvert(t *testing.T) {
	cfg := testConfig(t)
	input := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(input, []byte(quadOBJ), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if code := convert(input, cfg, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}

	report := stdout.String()
	for _, want := range []string{"Positions read:  4", "total:         2", "offsets:       0 2", "Exported:"} {
		if !strings.Contains(report, want) {
			t.Errorf("expected %q in report:\n%s", want, report)
		}
	}

	data, err := os.ReadFile(filepath.Join(cfg.Export.OutputDir, "quad.ddm"))
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if !strings.Contains(string(data), "s 6\nm 0\n- 0 1 2\n- 0 2 3\n</ebo>\n") {
		t.Errorf("unexpected ebo block in:\n%s", data)
	}
}

func TestConvert_Failures(t *testing.T) {
	dir := t.TempDir()
	badOrder := filepath.Join(dir, "bad.obj")
	if err := os.WriteFile(badOrder, []byte("f 1/1/1 2/2/2 3/3/3\n"), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	tests := []struct {
		name  string
		input string
	}{
		{"missing file", filepath.Join(dir, "missing.obj")},
		{"face before attributes", badOrder},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t)
			var stdout, stderr bytes.Buffer
			if code := convert(tc.input, cfg, &stdout, &stderr); code != 1 {
				t.Errorf("expected exit 1, got %d", code)
			}
			if !strings.HasPrefix(stderr.String(), "Error:") {
				t.Errorf("expected error report, got %q", stderr.String())
			}

			entries, _ := os.ReadDir(cfg.Export.OutputDir)
			if len(entries) != 0 {
				t.Errorf("expected no output files, found %d", len(entries))
			}
		})
	}
}
