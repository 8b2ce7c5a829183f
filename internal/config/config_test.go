package config

import (
	"os"
	"testing"
)

func TestResolveRoot_MissingDirectory(t *testing.T) {
	_, err := resolveRoot("/no/such/directory/resweep-test")
	if err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}

func TestResolveRoot_NotADirectory(t *testing.T) {
	f := t.TempDir() + "/file.txt"
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := resolveRoot(f)
	if err == nil {
		t.Fatalf("expected an error when root is a file, not a directory")
	}
}

func TestResolveRoot_DefaultsToWorkingDirectory(t *testing.T) {
	got, err := resolveRoot("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == "" {
		t.Fatalf("expected a non-empty working directory")
	}
}
