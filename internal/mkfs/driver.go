// Package mkfs assembles bootable ENTFS images on the host: boot-loader
// bytes at sector 0, the superblock at sector 1, then the node stream of
// the single payload entity. It is the build-side half of the entos boot
// story, the loader consumes what this package writes.
package mkfs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/opencontainers/go-digest"

	"github.com/quernstone/entos/pkg/entfs"
	"github.com/quernstone/entos/pkg/fs"
)

// Builder runs image builds. Build calls are independent of each other;
// the builder holds no per-build state.
type Builder struct {
	logger *slog.Logger
}

// NewBuilder returns a builder logging through slog.Default.
func NewBuilder() *Builder {
	return &Builder{logger: slog.Default()}
}

// Build assembles one image per the config and publishes it atomically.
// The order is fixed: load boot bytes, validate the inode geometry, load
// the payload, lay it out, assemble in memory, publish. The output path is
// only touched after the whole image exists in memory, so a failed build
// leaves no partial file behind.
func (b *Builder) Build(ctx context.Context, cfg Config) (*Report, error) {
	startTime := time.Now()
	b.logger.InfoContext(ctx, "starting build",
		"source", describeTarget(cfg.Source),
		"output", describeTarget(cfg.Output))

	boot, err := loadBoot(cfg.Bootloader)
	if err != nil {
		return nil, err
	}
	if len(boot) == 0 {
		return nil, ErrEmptyBootloader
	}

	if err := entfs.ValidateInodeSize(); err != nil {
		return nil, err
	}

	payload, name, err := loadSource(cfg.Source)
	if err != nil {
		return nil, err
	}
	b.logger.DebugContext(ctx, "payload loaded", "entity", name, "bytes", len(payload))

	loc, err := entfs.ExtentForPayload(entfs.NodeStreamStart, len(payload))
	if err != nil {
		return nil, err
	}

	ino := entfs.NewInode()
	if err := ino.SetName(name); err != nil {
		return nil, err
	}
	if err := ino.SetExtent(0, loc); err != nil {
		return nil, err
	}

	super := entfs.NewSuperBlock(entfs.FormatVersion, cfg.BlockSize)
	if cfg.DirectBoot && name == cfg.DirectBootTarget {
		super.SetDirectBoot(loc)
		b.logger.DebugContext(ctx, "direct boot marked", "entity", name, "extent", loc.String())
	}

	sectors := entfs.SplitSectors(payload)

	image := entfs.NewImage(super, boot)
	image.Append(entfs.InodeNode(ino))
	for _, sector := range sectors {
		image.Append(entfs.DataNode(sector))
	}

	out, err := image.Build()
	if err != nil {
		return nil, err
	}

	if cfg.Output.Kind != TargetFile {
		return nil, fmt.Errorf("output: %w: %s", ErrBadConfig, cfg.Output.Kind)
	}
	if dir := filepath.Dir(cfg.Output.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := fs.WriteFileAtomic(cfg.Output.Path, out, 0o644); err != nil {
		return nil, fmt.Errorf("failed to publish image: %w", err)
	}

	report := &Report{
		ImageSize:  len(out),
		InodeCount: 1,
		DataCount:  len(sectors),
		Digest:     digest.FromBytes(out),
		Output:     cfg.Output.Path,
		BuildTime:  time.Since(startTime),
	}
	b.logger.InfoContext(ctx, "build completed successfully",
		"size_bytes", report.ImageSize,
		"digest", report.Digest.String(),
		"duration", report.BuildTime)

	return report, nil
}

func loadBoot(t Target) ([]byte, error) {
	switch t.Kind {
	case TargetFile:
		data, err := os.ReadFile(t.Path)
		if err != nil {
			return nil, fmt.Errorf("bootloader %q: %w: %v", t.Path, ErrFileNotFound, err)
		}
		return data, nil
	case TargetRaw:
		return t.Raw, nil
	default:
		return nil, fmt.Errorf("bootloader: %w: %s", ErrBadConfig, t.Kind)
	}
}

func loadSource(t Target) ([]byte, string, error) {
	if t.Kind != TargetFile {
		return nil, "", fmt.Errorf("source: %w: %s", ErrBadConfig, t.Kind)
	}
	data, err := os.ReadFile(t.Path)
	if err != nil {
		return nil, "", fmt.Errorf("source %q: %w: %v", t.Path, ErrFileNotFound, err)
	}
	return data, filepath.Base(t.Path), nil
}

func describeTarget(t Target) string {
	switch t.Kind {
	case TargetFile:
		return "file:" + t.Path
	case TargetRaw:
		return fmt.Sprintf("raw:%dB", len(t.Raw))
	default:
		return t.Kind.String()
	}
}
