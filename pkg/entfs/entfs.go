// Package entfs implements the on-disk data model of ENTFS, the entity
// filesystem of entos, and the assembly of bootable ENTFS images.
//
// An image is a flat concatenation of three regions, with sectors counted
// by raw byte offset in units of SectorSize:
//
//	sector 0   boot-loader bytes
//	sector 1   superblock, one fixed-size record
//	sector 2+  node stream: one inode record followed by its data sectors
//
// Every record in the node stream is exactly SectorSize bytes wide. The
// first node is always the inode of the single embedded entity; the nodes
// that follow are its raw data sectors in payload order, the last one
// tail-padded with zeros. Whether a sector holds an inode or data is not
// tagged on disk, it is implied by stream position. In memory the
// distinction is kept explicit via Node.
//
// All multi-byte fields are encoded little-endian. The byte layout of the
// superblock and inode records is a frozen contract shared with the entos
// boot loader; see the type documentation for the exact offsets.
package entfs

import "fmt"

// SectorSize is the width of every node stream record in bytes.
const SectorSize = 512

// FormatVersion is the superblock version written by current builds.
const FormatVersion uint16 = 1

// Addr is a sector index into the image, counted from 0.
type Addr uint16

// NodeStreamStart is the first sector of the node stream: sector 0 holds
// the boot loader and sector 1 the superblock.
const NodeStreamStart Addr = 2

// Extent describes a contiguous run of sectors as an inclusive [Start, End]
// range. The zero value is the degenerate "no data" extent. For any other
// extent Start <= End must hold; constructors keep that invariant, callers
// of NewExtent are expected to.
type Extent struct {
	Start Addr
	End   Addr
}

// NewExtent constructs an extent from its first and last sector.
func NewExtent(start, end Addr) Extent {
	return Extent{Start: start, End: end}
}

// ExtentForPayload computes the extent needed to store size bytes starting
// at the given sector: End = start + ceil(size/SectorSize) - 1. A size of 0
// yields the degenerate zero extent. Payloads whose last sector would not
// fit the 16-bit address space fail with ErrAddressSpace.
func ExtentForPayload(start Addr, size int) (Extent, error) {
	n := SectorCount(size)
	if n == 0 {
		return Extent{}, nil
	}
	last := int(start) + n - 1
	if last > int(^Addr(0)) {
		return Extent{}, fmt.Errorf("%w: %d bytes need sectors %d..%d", ErrAddressSpace, size, start, last)
	}
	return Extent{Start: start, End: Addr(last)}, nil
}

// SectorCount returns the number of sectors needed to store size bytes;
// any non-zero remainder consumes one additional, zero-padded sector.
func SectorCount(size int) int {
	if size <= 0 {
		return 0
	}
	return (size + SectorSize - 1) / SectorSize
}

// Sectors returns the number of sectors the extent spans, 0 for the
// degenerate zero extent.
func (e Extent) Sectors() int {
	if e.IsZero() {
		return 0
	}
	return int(e.End) - int(e.Start) + 1
}

// IsZero reports whether the extent is the degenerate "no data" extent.
func (e Extent) IsZero() bool {
	return e == Extent{}
}

func (e Extent) String() string {
	if e.IsZero() {
		return "extent<none>"
	}
	return fmt.Sprintf("extent<%d..%d>", e.Start, e.End)
}
