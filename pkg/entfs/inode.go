package entfs

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	// InodeNameLen is the width of the fixed inode name field.
	InodeNameLen = 32
	// InodeExtents is the number of data extent slots per inode.
	InodeExtents = 16
)

// Inode is the fixed-size entity record that opens a node stream. Like the
// superblock it is encoded little-endian and must occupy exactly one
// sector; ValidateInodeSize checks that once per build.
//
// On-disk layout:
//
//	offset 0    Name       [32]byte    NUL-padded entity name
//	offset 32   Dat        [16]Extent  data extents, unused slots zero
//	offset 96   Reserved   [416]byte
type Inode struct {
	Name     [InodeNameLen]byte
	Dat      [InodeExtents]Extent
	Reserved [416]byte
}

// NewInode returns an empty inode: no name, all extent slots degenerate.
func NewInode() Inode {
	return Inode{}
}

// SetName stores the entity name, NUL-padded to the field width. Names
// longer than InodeNameLen bytes fail with ErrNameTooLong.
func (ino *Inode) SetName(name string) error {
	if len(name) > InodeNameLen {
		return fmt.Errorf("%w: %q is %d bytes, limit %d", ErrNameTooLong, name, len(name), InodeNameLen)
	}
	ino.Name = [InodeNameLen]byte{}
	copy(ino.Name[:], name)
	return nil
}

// NameString returns the entity name with the NUL padding stripped.
func (ino *Inode) NameString() string {
	return string(bytes.TrimRight(ino.Name[:], "\x00"))
}

// SetExtent stores a data extent in the given slot.
func (ino *Inode) SetExtent(slot int, e Extent) error {
	if slot < 0 || slot >= InodeExtents {
		return fmt.Errorf("extent slot %d out of range [0,%d)", slot, InodeExtents)
	}
	ino.Dat[slot] = e
	return nil
}

// Encode serializes the inode into exactly one sector.
func (ino *Inode) Encode() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Grow(SectorSize)
	if err := binary.Write(buf, binary.LittleEndian, ino); err != nil {
		return nil, fmt.Errorf("encode inode: %w", err)
	}
	if buf.Len() != SectorSize {
		return nil, fmt.Errorf("%w: encoded to %d bytes", ErrInvalidInode, buf.Len())
	}
	return buf.Bytes(), nil
}

// DecodeInode parses the inode record at the start of b.
func DecodeInode(b []byte) (Inode, error) {
	var ino Inode
	if len(b) < SectorSize {
		return ino, fmt.Errorf("inode record truncated: got %d bytes, want %d", len(b), SectorSize)
	}
	if err := binary.Read(bytes.NewReader(b[:SectorSize]), binary.LittleEndian, &ino); err != nil {
		return ino, fmt.Errorf("decode inode: %w", err)
	}
	return ino, nil
}

// ValidateInodeSize checks that the in-memory inode layout still encodes
// to one sector. The node stream geometry depends on it, so builds run
// this before any layout work.
func ValidateInodeSize() error {
	if size := binary.Size(Inode{}); size != SectorSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidInode, size, SectorSize)
	}
	return nil
}
