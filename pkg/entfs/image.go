package entfs

import (
	"bytes"
	"fmt"
)

// Image assembles a bootable ENTFS image from its three regions. It owns
// every buffer handed to it; callers pass boot bytes and nodes in and read
// the finished image out, nothing is shared in between.
type Image struct {
	super SuperBlock
	boot  []byte
	nodes []Node
	built bool
}

// NewImage starts an image from the boot-loader bytes and the superblock
// that will sit at sector 1. The boot region is written at offset 0
// verbatim, it is not padded or truncated here.
func NewImage(super SuperBlock, boot []byte) *Image {
	return &Image{super: super, boot: boot}
}

// Append adds one node to the end of the node stream.
func (im *Image) Append(n Node) {
	im.nodes = append(im.nodes, n)
}

// Build serializes the image: boot bytes, then the superblock, then each
// node in append order. The image is consumed; a second call fails with
// ErrImageConsumed.
func (im *Image) Build() ([]byte, error) {
	if im.built {
		return nil, ErrImageConsumed
	}
	buf := new(bytes.Buffer)
	buf.Grow(len(im.boot) + SectorSize*(1+len(im.nodes)))
	buf.Write(im.boot)

	rec, err := im.super.Encode()
	if err != nil {
		return nil, err
	}
	buf.Write(rec)

	for i := range im.nodes {
		if err := im.nodes[i].encodeTo(buf); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
	}

	im.boot = nil
	im.nodes = nil
	im.built = true
	return buf.Bytes(), nil
}
