package entfs

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// SuperBlock is the fixed-size record at sector 1 of every image. It is
// encoded little-endian and padded to exactly one sector so the loader can
// read it with a single sector fetch.
//
// On-disk layout:
//
//	offset 0    Version     uint16
//	offset 2    BlockSize   uint16
//	offset 4    BootFlag    uint8   1 when Boot holds a direct-boot extent
//	offset 5    (padding)   uint8
//	offset 6    Boot        Extent  {Start uint16, End uint16}
//	offset 10   Reserved    [502]byte
type SuperBlock struct {
	Version   uint16
	BlockSize uint16
	BootFlag  uint8
	_         uint8
	Boot      Extent
	Reserved  [502]byte
}

// NewSuperBlock returns a superblock with no direct-boot extent set.
func NewSuperBlock(version, blockSize uint16) SuperBlock {
	return SuperBlock{Version: version, BlockSize: blockSize}
}

// SetDirectBoot marks the extent the loader should hand control to after
// reading the superblock.
func (sb *SuperBlock) SetDirectBoot(e Extent) {
	sb.BootFlag = 1
	sb.Boot = e
}

// DirectBoot returns the direct-boot extent and whether one is set. The
// extent is only meaningful when the flag is set; a cleared flag leaves
// whatever bytes are in the Boot field without meaning.
func (sb *SuperBlock) DirectBoot() (Extent, bool) {
	return sb.Boot, sb.BootFlag == 1
}

// Encode serializes the superblock into exactly one sector.
func (sb *SuperBlock) Encode() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Grow(SectorSize)
	if err := binary.Write(buf, binary.LittleEndian, sb); err != nil {
		return nil, fmt.Errorf("encode superblock: %w", err)
	}
	if buf.Len() != SectorSize {
		return nil, fmt.Errorf("superblock record is %d bytes, want %d", buf.Len(), SectorSize)
	}
	return buf.Bytes(), nil
}

// DecodeSuperBlock parses the superblock record at the start of b.
func DecodeSuperBlock(b []byte) (SuperBlock, error) {
	var sb SuperBlock
	if len(b) < SectorSize {
		return sb, fmt.Errorf("superblock record truncated: got %d bytes, want %d", len(b), SectorSize)
	}
	if err := binary.Read(bytes.NewReader(b[:SectorSize]), binary.LittleEndian, &sb); err != nil {
		return sb, fmt.Errorf("decode superblock: %w", err)
	}
	return sb, nil
}
