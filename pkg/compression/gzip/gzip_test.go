package gzip

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/Riviera71/ephemeris-compute-de430/pkg/logger"
)

func TestPackerRoundtrip(t *testing.T) {
	for _, tool := range []string{"gzip", "gunzip"} {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("no %v tool on this host", tool)
		}
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "astorb.dat")
	if err := os.WriteFile(path, []byte("orbit data\n"), 0644); err != nil {
		t.Fatal(err)
	}

	p := New("", "", logger.Default())
	if err := p.Compress(path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + Ext); err != nil {
		t.Fatalf("no compressed file after Compress: %v", err)
	}
	if _, err := os.Stat(path); err == nil {
		t.Fatal("original file left behind after Compress")
	}

	if err := p.Decompress(path + Ext); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("no plain file after Decompress: %v", err)
	}
	if string(data) != "orbit data\n" {
		t.Errorf("roundtrip content = %q", data)
	}
}

func TestPackerRejectsWrongSuffix(t *testing.T) {
	p := New("", "", logger.Default())
	if err := p.Compress("already.gz"); err == nil {
		t.Error("Compress on a .gz file should fail")
	}
	if err := p.Decompress("plain.dat"); err == nil {
		t.Error("Decompress on a non-.gz file should fail")
	}
}

func TestPackerMissingTool(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.dat")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	p := New(filepath.Join(dir, "no-such-gzip"), filepath.Join(dir, "no-such-gunzip"), logger.Default())
	if err := p.Compress(path); err == nil {
		t.Error("expected an error for a missing gzip tool")
	}
}
