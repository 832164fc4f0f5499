package entfs

import (
	"bytes"
	"fmt"
)

// Node is one record of the node stream. On disk the inode/data
// distinction is positional; in memory it is carried by the variant so an
// image cannot be assembled with the kinds mixed up silently.
type Node struct {
	inode *Inode
	data  []byte
}

// InodeNode wraps an inode record for the node stream. The inode is copied
// in, later changes to the caller's value do not reach the node.
func InodeNode(ino Inode) Node {
	return Node{inode: &ino}
}

// DataNode wraps one raw data sector. The node takes ownership of the
// slice; callers must not mutate it afterwards. The sector must be exactly
// SectorSize bytes, which Image.Build enforces.
func DataNode(sector []byte) Node {
	return Node{data: sector}
}

// IsInode reports whether the node carries an inode record.
func (n Node) IsInode() bool {
	return n.inode != nil
}

func (n Node) encodeTo(buf *bytes.Buffer) error {
	if n.inode != nil {
		rec, err := n.inode.Encode()
		if err != nil {
			return err
		}
		buf.Write(rec)
		return nil
	}
	if len(n.data) != SectorSize {
		return fmt.Errorf("data node is %d bytes, want %d", len(n.data), SectorSize)
	}
	buf.Write(n.data)
	return nil
}

// SplitSectors slices a payload into SectorSize-wide data sectors in
// order. Full sectors alias the payload; a trailing partial sector is
// copied into a fresh zero-padded buffer. An empty payload yields no
// sectors.
func SplitSectors(payload []byte) [][]byte {
	if len(payload) == 0 {
		return nil
	}
	sectors := make([][]byte, 0, SectorCount(len(payload)))
	for off := 0; off+SectorSize <= len(payload); off += SectorSize {
		sectors = append(sectors, payload[off:off+SectorSize])
	}
	if rem := len(payload) % SectorSize; rem != 0 {
		tail := make([]byte, SectorSize)
		copy(tail, payload[len(payload)-rem:])
		sectors = append(sectors, tail)
	}
	return sectors
}
