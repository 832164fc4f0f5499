package mkfs

import "testing"

func TestReportString(t *testing.T) {
	r := &Report{
		ImageSize:  3584,
		InodeCount: 1,
		DataCount:  3,
		Digest:     "sha256:4f2d",
	}
	want := "[MKFS REPORT]\nSize: 3584 Bytes\nInode count:1\nDatanode count:3\nDigest:sha256:4f2d\n"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
