package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorustyt/gonavmesh2d/config"
)

func assertTrue(t *testing.T, value bool, msg string) {
	t.Helper()
	if !value {
		t.Error(msg)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := RootCmd()
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := c.Execute()
	return out.String(), err
}

const squareAsset = `{
	# a single square
	outlines: [
		[0, 0, 10, 0, 10, 10, 0, 10]
	]
}`

func TestCompileAndPath(t *testing.T) {
	dir := t.TempDir()
	asset := filepath.Join(dir, "square.hjson")
	if err := os.WriteFile(asset, []byte(squareAsset), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "compile", asset); err != nil {
		t.Fatalf("compile: %v", err)
	}
	bin := filepath.Join(dir, "square.bin")
	_, err := os.Stat(bin)
	assertTrue(t, err == nil, "compile writes next to the asset by default")

	pb := filepath.Join(dir, "out", "square.pb")
	_ = os.MkdirAll(filepath.Dir(pb), 0755)
	if _, err = run(t, "compile", asset, "-o", pb); err != nil {
		t.Fatalf("compile to proto: %v", err)
	}

	for _, mesh := range []string{bin, pb, asset} {
		out, err := run(t, "path", mesh, "--from", "1,1", "--to", "9,9")
		if err != nil {
			t.Fatalf("path %s: %v", mesh, err)
		}
		assertTrue(t, out == "1,1\n9,9\n", "unexpected path output: "+out)
	}

	out, err := run(t, "closest", bin, "--point", "15,5")
	if err != nil {
		t.Fatalf("closest: %v", err)
	}
	assertTrue(t, out == "10,5 "+bin+"\n", "unexpected closest output: "+out)
}

func TestDefaultOutput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"level.hjson", "level.bin"},
		{"dir/level.pb", "dir/level.bin"},
		{"level.bin", "level.compiled.bin"},
		{"LEVEL.BIN", "LEVEL.compiled.bin"},
		{"level", "level.bin"},
	}
	for _, tt := range tests {
		got := defaultOutput(tt.in)
		assertTrue(t, got == tt.want, "defaultOutput("+tt.in+") = "+got)
	}
}

func TestCompileBinInput(t *testing.T) {
	dir := t.TempDir()
	asset := filepath.Join(dir, "square.hjson")
	if err := os.WriteFile(asset, []byte(squareAsset), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "compile", asset); err != nil {
		t.Fatalf("compile: %v", err)
	}
	bin := filepath.Join(dir, "square.bin")
	before, err := os.ReadFile(bin)
	if err != nil {
		t.Fatal(err)
	}

	if _, err = run(t, "compile", bin); err != nil {
		t.Fatalf("compile bin: %v", err)
	}
	after, err := os.ReadFile(bin)
	if err != nil {
		t.Fatal(err)
	}
	assertTrue(t, bytes.Equal(before, after), "input is left untouched")

	compiled := filepath.Join(dir, "square.compiled.bin")
	out, err := run(t, "path", compiled, "--from", "1,1", "--to", "9,9")
	if err != nil {
		t.Fatalf("path %s: %v", compiled, err)
	}
	assertTrue(t, out == "1,1\n9,9\n", "unexpected path output: "+out)
}

func TestPathErrors(t *testing.T) {
	_, err := run(t, "path", "missing.bin", "--from", "1", "--to", "2,2")
	assertTrue(t, err != nil && strings.Contains(err.Error(), "--from"), "bad point is rejected")

	_, err = run(t, "path", "mesh.txt", "--from", "1,1", "--to", "2,2")
	assertTrue(t, err != nil, "unknown extension is rejected")

	_, err = run(t, "--cell-size", "0", "demo")
	assertTrue(t, err != nil, "non positive cell size is rejected")
}

func TestDemo(t *testing.T) {
	for _, args := range [][]string{{"demo"}, {"demo", "--compile"}} {
		out, err := run(t, args...)
		if err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assertTrue(t, len(lines) >= 2, "demo prints a path")
	}
}

func TestConfigCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", config.FileName)
	if _, err := run(t, "--cell-size", "2", "config", "-o", path); err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertTrue(t, cfg.Navigation.CellSize == 2, "flag override is saved")
	assertTrue(t, cfg.Logging.Level == "error", "log level override is saved")
}
