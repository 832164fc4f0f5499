package mkfs

import "fmt"

// TargetKind discriminates how a build target is sourced or sunk.
type TargetKind int

const (
	// TargetFile reads from or writes to a file path.
	TargetFile TargetKind = iota
	// TargetRaw uses in-memory bytes, handy for tests and embedding.
	TargetRaw
	// TargetDir groups nested targets. No build role accepts it yet; the
	// driver rejects it with ErrBadConfig.
	TargetDir
)

func (k TargetKind) String() string {
	switch k {
	case TargetFile:
		return "file"
	case TargetRaw:
		return "raw"
	case TargetDir:
		return "dir"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Target names one input or output of a build.
type Target struct {
	Kind TargetKind
	Path string   // TargetFile
	Raw  []byte   // TargetRaw
	Sub  []Target // TargetDir
}

// FileTarget points a role at a file path.
func FileTarget(path string) Target { return Target{Kind: TargetFile, Path: path} }

// RawTarget feeds a role from memory.
func RawTarget(data []byte) Target { return Target{Kind: TargetRaw, Raw: data} }

// DirTarget groups nested targets.
func DirTarget(sub ...Target) Target { return Target{Kind: TargetDir, Sub: sub} }

// Defaults matching the standard entos build layout.
const (
	DefaultBootloader       = "build/boot.bin"
	DefaultOutput           = "build/image.bin"
	DefaultSource           = "build/kernel.bin"
	DefaultDirectBootTarget = "kernel.bin"
	DefaultDirectBoot       = true
	DefaultBlockSize        uint16 = 512
)

// Config describes one image build.
type Config struct {
	Bootloader Target // sector 0 bytes; file or raw
	Output     Target // where the image is published; must be a file
	Source     Target // the payload entity; must be a file
	DirectBoot bool   // mark the payload for direct boot on name match
	// DirectBootTarget is the entity name the direct-boot marker applies
	// to when DirectBoot is on.
	DirectBootTarget string
	BlockSize        uint16 // recorded in the superblock
}

// DefaultConfig returns the standard build layout with direct boot on.
func DefaultConfig() Config {
	return Config{
		Bootloader:       FileTarget(DefaultBootloader),
		Output:           FileTarget(DefaultOutput),
		Source:           FileTarget(DefaultSource),
		DirectBoot:       DefaultDirectBoot,
		DirectBootTarget: DefaultDirectBootTarget,
		BlockSize:        DefaultBlockSize,
	}
}
