package mkfs

import (
	"fmt"
	"time"

	"github.com/opencontainers/go-digest"
)

// Report summarizes a finished build.
type Report struct {
	ImageSize  int           // total bytes published
	InodeCount int           // inode records in the node stream
	DataCount  int           // data sectors in the node stream
	Digest     digest.Digest // digest of the whole image
	Output     string        // path the image was published to
	BuildTime  time.Duration
}

// String renders the report block that build scripts scrape from stdout.
func (r *Report) String() string {
	return fmt.Sprintf("[MKFS REPORT]\nSize: %d Bytes\nInode count:%d\nDatanode count:%d\nDigest:%s\n",
		r.ImageSize, r.InodeCount, r.DataCount, r.Digest)
}
