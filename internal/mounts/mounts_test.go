package mounts_test

import (
	"strings"
	"testing"

	"github.com/codekoriko/wsl-pathlib/internal/mounts"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		contents string

		want []mounts.Entry
	}{
		"empty table": {
			contents: "",
			want:     nil,
		},
		"single mount": {
			contents: "/dev/sdc / ext4 rw,relatime 0 0\n",
			want: []mounts.Entry{
				{Source: "/dev/sdc", MountPoint: "/", FSType: "ext4", Options: "rw,relatime"},
			},
		},
		"drive mount with escaped backslash": {
			contents: `C:\134 /mnt/c 9p rw,noatime,aname=drvfs;path=C:\;uid=1000 0 0` + "\n",
			want: []mounts.Entry{
				{Source: `C:\`, MountPoint: "/mnt/c", FSType: "9p", Options: `rw,noatime,aname=drvfs;path=C:\;uid=1000`},
			},
		},
		"mount point with escaped space": {
			contents: `E:\134 /mnt/my\040drive 9p rw 0 0` + "\n",
			want: []mounts.Entry{
				{Source: `E:\`, MountPoint: "/mnt/my drive", FSType: "9p", Options: "rw"},
			},
		},
		"escape at end of field kept verbatim": {
			contents: `src\04 /target tmpfs rw 0 0` + "\n",
			want: []mounts.Entry{
				{Source: `src\04`, MountPoint: "/target", FSType: "tmpfs", Options: "rw"},
			},
		},
		"short record skipped": {
			contents: "garbage line\n/dev/sdc / ext4 rw 0 0\n",
			want: []mounts.Entry{
				{Source: "/dev/sdc", MountPoint: "/", FSType: "ext4", Options: "rw"},
			},
		},
		"full WSL2 table": {
			contents: `/dev/sdc / ext4 rw,relatime,discard,errors=remount-ro,data=ordered 0 0
none /mnt/wsl tmpfs rw,relatime 0 0
proc /proc proc rw,nosuid,nodev,noexec,relatime 0 0
C:\134 /mnt/c 9p rw,noatime,dirsync,aname=drvfs;path=C:\;uid=1000;gid=1000,mmap,access=client 0 0
`,
			want: []mounts.Entry{
				{Source: "/dev/sdc", MountPoint: "/", FSType: "ext4", Options: "rw,relatime,discard,errors=remount-ro,data=ordered"},
				{Source: "none", MountPoint: "/mnt/wsl", FSType: "tmpfs", Options: "rw,relatime"},
				{Source: "proc", MountPoint: "/proc", FSType: "proc", Options: "rw,nosuid,nodev,noexec,relatime"},
				{Source: `C:\`, MountPoint: "/mnt/c", FSType: "9p", Options: `rw,noatime,dirsync,aname=drvfs;path=C:\;uid=1000;gid=1000,mmap,access=client`},
			},
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := mounts.Parse(strings.NewReader(tc.contents))
			require.NoError(t, err, "Parse should not have failed")
			require.Equal(t, tc.want, got, "unexpected mount entries")
		})
	}
}

func TestDriveMounts(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		entries []mounts.Entry

		want []mounts.DriveMount
	}{
		"no entries": {
			entries: nil,
			want:    nil,
		},
		"WSL2 drive over 9p": {
			entries: []mounts.Entry{{Source: `C:\`, MountPoint: "/mnt/c", FSType: "9p"}},
			want:    []mounts.DriveMount{{Letter: 'C', MountPoint: "/mnt/c"}},
		},
		"WSL1 drive over drvfs": {
			entries: []mounts.Entry{{Source: "C:", MountPoint: "/mnt/c", FSType: "drvfs"}},
			want:    []mounts.DriveMount{{Letter: 'C', MountPoint: "/mnt/c"}},
		},
		"lowercase source upper-cased": {
			entries: []mounts.Entry{{Source: `d:\`, MountPoint: "/mnt/d", FSType: "9p"}},
			want:    []mounts.DriveMount{{Letter: 'D', MountPoint: "/mnt/d"}},
		},
		"non-drive filesystems filtered": {
			entries: []mounts.Entry{
				{Source: "/dev/sdc", MountPoint: "/", FSType: "ext4"},
				{Source: "none", MountPoint: "/mnt/wsl", FSType: "tmpfs"},
				{Source: "proc", MountPoint: "/proc", FSType: "proc"},
			},
			want: nil,
		},
		"9p without a drive source filtered": {
			entries: []mounts.Entry{{Source: "none", MountPoint: "/usr/lib/wsl/drivers", FSType: "9p"}},
			want:    nil,
		},
		"drive at a custom mount point": {
			entries: []mounts.Entry{{Source: `C:\`, MountPoint: "/windir/c", FSType: "9p"}},
			want:    []mounts.DriveMount{{Letter: 'C', MountPoint: "/windir/c"}},
		},
		"mixed table keeps only drives": {
			entries: []mounts.Entry{
				{Source: "/dev/sdc", MountPoint: "/", FSType: "ext4"},
				{Source: `C:\`, MountPoint: "/mnt/c", FSType: "9p"},
				{Source: `D:\`, MountPoint: "/mnt/d", FSType: "9p"},
			},
			want: []mounts.DriveMount{
				{Letter: 'C', MountPoint: "/mnt/c"},
				{Letter: 'D', MountPoint: "/mnt/d"},
			},
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := mounts.DriveMounts(tc.entries)
			require.Equal(t, tc.want, got, "unexpected drive mounts")
		})
	}
}
