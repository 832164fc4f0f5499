package mkfs

import "errors"

var (
	// ErrBadConfig means a target kind is not usable in its role.
	ErrBadConfig = errors.New("unsupported target for role")

	// ErrFileNotFound means a configured path could not be opened.
	ErrFileNotFound = errors.New("file not found")

	// ErrEmptyBootloader means the boot target resolved to zero bytes.
	ErrEmptyBootloader = errors.New("bootloader is empty")
)
