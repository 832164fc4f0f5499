package db

import (
	"context"
	"path/filepath"
	"testing"
)

func TestInitSchemaIdempotent(t *testing.T) {
	ledger, err := NewDB(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("NewDB() error: %v", err)
	}
	defer ledger.Close()

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := InitSchema(ctx, ledger); err != nil {
			t.Fatalf("InitSchema() run %d error: %v", i+1, err)
		}
	}
}

func TestInsertAndListBuilds(t *testing.T) {
	ledger, err := NewDB(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("NewDB() error: %v", err)
	}
	defer ledger.Close()

	ctx := context.Background()
	if err := InitSchema(ctx, ledger); err != nil {
		t.Fatalf("InitSchema() error: %v", err)
	}

	first := &Build{
		Output:     "build/image.bin",
		Digest:     "sha256:aaaa",
		SizeBytes:  2048,
		InodeCount: 1,
		DataCount:  2,
		DurationMS: 12,
	}
	if err := InsertBuild(ctx, ledger, first); err != nil {
		t.Fatalf("InsertBuild() error: %v", err)
	}
	if first.ID == "" {
		t.Error("InsertBuild did not fill in the build ID")
	}
	if first.CreatedAt.IsZero() {
		t.Error("InsertBuild did not fill in the creation time")
	}

	second := &Build{
		Output:     "build/image.bin",
		Digest:     "sha256:bbbb",
		SizeBytes:  4096,
		InodeCount: 1,
		DataCount:  6,
		DurationMS: 9,
	}
	if err := InsertBuild(ctx, ledger, second); err != nil {
		t.Fatalf("InsertBuild() error: %v", err)
	}

	builds, err := ListBuilds(ctx, ledger)
	if err != nil {
		t.Fatalf("ListBuilds() error: %v", err)
	}
	if len(builds) != 2 {
		t.Fatalf("ListBuilds() = %d builds, want 2", len(builds))
	}
	if builds[0].Digest != "sha256:bbbb" {
		t.Errorf("newest build digest = %q, want %q", builds[0].Digest, "sha256:bbbb")
	}
	if builds[1].Digest != "sha256:aaaa" {
		t.Errorf("oldest build digest = %q, want %q", builds[1].Digest, "sha256:aaaa")
	}
	if builds[0].SizeBytes != 4096 || builds[0].DataCount != 6 {
		t.Errorf("newest build = %+v, counters not preserved", builds[0])
	}
}

func TestListBuildsEmpty(t *testing.T) {
	ledger, err := NewDB(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("NewDB() error: %v", err)
	}
	defer ledger.Close()

	ctx := context.Background()
	if err := InitSchema(ctx, ledger); err != nil {
		t.Fatalf("InitSchema() error: %v", err)
	}

	builds, err := ListBuilds(ctx, ledger)
	if err != nil {
		t.Fatalf("ListBuilds() error: %v", err)
	}
	if len(builds) != 0 {
		t.Errorf("ListBuilds() on empty ledger = %d builds, want 0", len(builds))
	}
}
