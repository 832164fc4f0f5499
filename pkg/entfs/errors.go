package entfs

import "errors"

var (
	// ErrInvalidInode means the inode record does not encode to exactly
	// one sector, so the node stream geometry would be broken.
	ErrInvalidInode = errors.New("inode record does not match sector size")

	// ErrNameTooLong means an entity name exceeds the fixed name field
	// of the inode.
	ErrNameTooLong = errors.New("entity name too long")

	// ErrAddressSpace means a payload needs sectors beyond the 16-bit
	// sector address space.
	ErrAddressSpace = errors.New("payload exceeds sector address space")

	// ErrImageConsumed means Build was called on an image that has
	// already been built.
	ErrImageConsumed = errors.New("image already built")
)
