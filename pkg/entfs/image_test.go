package entfs_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quernstone/entos/pkg/entfs"
)

// Assembles a full image and checks every region byte for byte, the way
// the loader will read it back.
func TestImageLayout(t *testing.T) {
	boot := bytes.Repeat([]byte{0xB0}, 2*entfs.SectorSize)
	payload := bytes.Repeat([]byte{0xAB}, 1300) // 3 sectors, last one padded

	loc, err := entfs.ExtentForPayload(entfs.NodeStreamStart, len(payload))
	require.NoError(t, err)
	require.Equal(t, entfs.Extent{Start: 2, End: 4}, loc)

	super := entfs.NewSuperBlock(entfs.FormatVersion, 512)
	super.SetDirectBoot(loc)

	ino := entfs.NewInode()
	require.NoError(t, ino.SetName("kernel.bin"))
	require.NoError(t, ino.SetExtent(0, loc))

	img := entfs.NewImage(super, boot)
	img.Append(entfs.InodeNode(ino))
	for _, sector := range entfs.SplitSectors(payload) {
		img.Append(entfs.DataNode(sector))
	}

	out, err := img.Build()
	require.NoError(t, err)
	require.Len(t, out, len(boot)+entfs.SectorSize*(1+1+3))

	assert.Equal(t, boot, out[:len(boot)], "boot region")

	sb, err := entfs.DecodeSuperBlock(out[len(boot):])
	require.NoError(t, err)
	assert.Equal(t, entfs.FormatVersion, sb.Version)
	assert.Equal(t, uint16(512), sb.BlockSize)
	direct, ok := sb.DirectBoot()
	require.True(t, ok, "direct-boot extent")
	assert.Equal(t, loc, direct)

	inoOff := len(boot) + entfs.SectorSize
	dec, err := entfs.DecodeInode(out[inoOff:])
	require.NoError(t, err)
	assert.Equal(t, "kernel.bin", dec.NameString())
	assert.Equal(t, loc, dec.Dat[0])

	dataOff := inoOff + entfs.SectorSize
	assert.Equal(t, payload, out[dataOff:dataOff+len(payload)], "payload bytes")
	assert.Equal(t, make([]byte, 3*entfs.SectorSize-len(payload)), out[dataOff+len(payload):], "tail padding")
}

// The boot region is written verbatim; sizing it to sector boundaries is
// the caller's business.
func TestImageBootRegionVerbatim(t *testing.T) {
	img := entfs.NewImage(entfs.NewSuperBlock(entfs.FormatVersion, 512), []byte{1, 2, 3})
	out, err := img.Build()
	require.NoError(t, err)
	assert.Len(t, out, 3+entfs.SectorSize)
	assert.Equal(t, []byte{1, 2, 3}, out[:3])
}

func TestImageBuildConsumed(t *testing.T) {
	img := entfs.NewImage(entfs.NewSuperBlock(entfs.FormatVersion, 512), make([]byte, entfs.SectorSize))
	_, err := img.Build()
	require.NoError(t, err)
	_, err = img.Build()
	assert.ErrorIs(t, err, entfs.ErrImageConsumed)
}

func TestImageBuildRejectsShortDataNode(t *testing.T) {
	img := entfs.NewImage(entfs.NewSuperBlock(entfs.FormatVersion, 512), make([]byte, entfs.SectorSize))
	img.Append(entfs.DataNode([]byte("short")))
	_, err := img.Build()
	assert.Error(t, err)
}
