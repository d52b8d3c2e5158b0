// Package mounts parses the mount table in the /proc/mounts format, and
// extracts the entries backed by Windows drives.
package mounts

import (
	"bufio"
	"io"
	"strings"

	"github.com/ubuntu/decorate"
)

// Entry is a single mount table record.
type Entry struct {
	Source     string
	MountPoint string
	FSType     string
	Options    string
}

// DriveMount is a mount entry backed by a Windows drive.
type DriveMount struct {
	// Letter is the upper-cased drive letter.
	Letter byte

	// MountPoint is where the drive is visible inside the distro.
	MountPoint string
}

// Parse reads a mount table in the /proc/mounts format. The kernel's octal
// escapes (\040 and friends) are decoded in the source and mount point fields.
// Records too short to be mounts are skipped.
func Parse(r io.Reader) (entries []Entry, err error) {
	defer decorate.OnError(&err, "could not parse mount table")

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 4 {
			continue
		}

		entries = append(entries, Entry{
			Source:     unescape(fields[0]),
			MountPoint: unescape(fields[1]),
			FSType:     fields[2],
			Options:    fields[3],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// DriveMounts filters entries down to the ones backed by Windows drives:
// drvfs mounts on WSL1, 9p mounts with a drive-letter source on WSL2.
func DriveMounts(entries []Entry) []DriveMount {
	var drives []DriveMount
	for _, e := range entries {
		if e.FSType != "drvfs" && e.FSType != "9p" {
			continue
		}
		if len(e.Source) < 2 || e.Source[1] != ':' || !isASCIILetter(e.Source[0]) {
			continue
		}

		drives = append(drives, DriveMount{
			Letter:     upperASCII(e.Source[0]),
			MountPoint: e.MountPoint,
		})
	}
	return drives
}

// unescape decodes the octal escapes the kernel uses for whitespace and
// backslashes in /proc/mounts fields.
func unescape(field string) string {
	if !strings.Contains(field, `\`) {
		return field
	}

	var b strings.Builder
	b.Grow(len(field))
	for i := 0; i < len(field); i++ {
		c := field[i]
		if c == '\\' && i+3 < len(field) && isOctal(field[i+1]) && isOctal(field[i+2]) && isOctal(field[i+3]) {
			b.WriteByte((field[i+1]-'0')<<6 | (field[i+2]-'0')<<3 | (field[i+3] - '0'))
			i += 3
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func upperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
