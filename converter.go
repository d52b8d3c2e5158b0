package wslpath

// This file contains the Converter: the set of rules a path's two renderings
// are derived from. The zero configuration reproduces a stock WSL install.

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"strings"
	"unicode"

	"github.com/0xrawsec/golang-utils/log"
	"github.com/codekoriko/wsl-pathlib/internal/mounts"
	"github.com/codekoriko/wsl-pathlib/internal/wslconf"
	"github.com/ubuntu/decorate"
)

// Converter holds the translation rules between the Windows and the WSL
// conventions: the automount root, an optional table of actual drive mount
// points, and the distro name used for UNC rendering.
//
// The defaults match a stock install (root /mnt, no mount table). Use the
// options for a known custom setup, or SystemConverter to probe the running
// system.
type Converter struct {
	root   string
	distro string
	drives []mounts.DriveMount
}

var defaultConverter = NewConverter()

// NewConverter returns a Converter with the given options applied over the
// defaults.
func NewConverter(opts ...func(*Converter)) *Converter {
	c := &Converter{root: "/mnt"}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithAutomountRoot overrides the directory Windows drives are expected to be
// mounted under. A trailing slash is ignored. Roots that are not absolute are
// refused with a warning, keeping the previous value.
func WithAutomountRoot(root string) func(*Converter) {
	return func(c *Converter) {
		if !strings.HasPrefix(root, "/") {
			log.Warnf("wslpath: ignoring automount root %q: not an absolute path", root)
			return
		}
		if root != "/" {
			root = strings.TrimRight(root, "/")
		}
		c.root = root
	}
}

// WithDistro sets the distro name used when rendering UNC paths.
func WithDistro(name string) func(*Converter) {
	return func(c *Converter) {
		c.distro = name
	}
}

// WithDriveMount adds a drive to the converter's mount table. Mount table
// entries take precedence over the automount root in both directions.
func WithDriveMount(letter rune, mountPoint string) func(*Converter) {
	return func(c *Converter) {
		if mountPoint != "/" {
			mountPoint = strings.TrimRight(mountPoint, "/")
		}
		c.drives = append(c.drives, mounts.DriveMount{
			Letter:     byte(unicode.ToUpper(letter)),
			MountPoint: mountPoint,
		})
	}
}

// SystemConverter probes the running system and returns a Converter matching
// it: the automount root from /etc/wsl.conf, the drive mount table from
// /proc/mounts, and the distro name from the environment or, failing that,
// from the registry.
//
// Missing probes are not errors: whatever cannot be read keeps its stock
// default, so the constructor works on the Windows side too, where no proc
// files exist. A malformed wsl.conf is logged and ignored, matching how WSL
// itself treats bad configuration.
func SystemConverter(ctx context.Context) (c *Converter, err error) {
	defer decorate.OnError(&err, "could not build a converter from the running system")

	b := selectBackend(ctx)

	conf := wslconf.Default()
	data, err := b.WslConfig()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No wsl.conf: stock defaults.
	case err != nil:
		return nil, err
	default:
		parsed, err := wslconf.Parse(data)
		if err != nil {
			log.Warnf("wslpath: ignoring wsl.conf: %v", err)
		} else {
			conf = parsed
		}
	}
	if !conf.AutomountEnabled {
		log.Warnf("wslpath: automount is disabled on this distro, drive paths may not exist")
	}

	c = NewConverter(WithAutomountRoot(conf.AutomountRoot))

	data, err = b.ProcMounts()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No mount table: the automount root covers every drive.
	case err != nil:
		return nil, err
	default:
		entries, err := mounts.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		c.drives = mounts.DriveMounts(entries)
	}

	// The environment names the distro inside it; the registry names the
	// default one on the Windows side. No name at all still converts drives.
	if name, ok := b.DistroName(); ok {
		c.distro = name
	} else if name, err := DefaultDistro(ctx); err == nil {
		c.distro = name
	}

	return c, nil
}

// DetectForm returns the convention path follows under this converter's rules.
func (c *Converter) DetectForm(path string) Form {
	if isWindowsForm(path) {
		return FormWindows
	}
	if _, _, _, ok := c.splitWSL(path); ok {
		return FormWSL
	}
	return FormOther
}

// ToWSL translates a Windows drive path to its location inside the distro.
//
// The Windows-form check is intentionally minimal, as documented on DetectForm:
// values failing it are rejected with ErrUnsupportedPath.
func (c *Converter) ToWSL(winPath string) (s string, err error) {
	defer decorate.OnError(&err, "could not translate %q to the WSL form", winPath)
	return c.toWSL(winPath)
}

// ToWindows translates a path under the automount root, or under a known drive
// mount point, back to its Windows drive spelling.
//
// Paths rooted elsewhere in the distro (/home/...) have no drive spelling and
// are rejected with ErrUnsupportedPath; see WindowsUNC for their rendering.
func (c *Converter) ToWindows(wslPath string) (s string, err error) {
	defer decorate.OnError(&err, "could not translate %q to the Windows form", wslPath)
	return c.toWindows(wslPath)
}

func (c *Converter) toWSL(winPath string) (string, error) {
	if !isWindowsForm(winPath) {
		return "", ErrUnsupportedPath
	}

	target := c.driveMountPoint(winPath[0])
	segs := segments(winPath[2:], `\/`)
	if len(segs) == 0 {
		return target, nil
	}
	return target + "/" + strings.Join(segs, "/"), nil
}

func (c *Converter) toWindows(wslPath string) (string, error) {
	_, letter, rest, ok := c.splitWSL(wslPath)
	if !ok {
		return "", ErrUnsupportedPath
	}

	drive := string(upperASCII(letter)) + ":"
	segs := segments(rest, "/")
	if len(segs) == 0 {
		return drive + `\`, nil
	}
	return drive + `\` + strings.Join(segs, `\`), nil
}

// canonWSL re-renders a WSL-form path in canonical spelling: single forward
// slashes, no trailing separator. The drive letter keeps its case.
func (c *Converter) canonWSL(path string) (string, error) {
	mountPoint, _, rest, ok := c.splitWSL(path)
	if !ok {
		return "", ErrUnsupportedPath
	}

	segs := segments(rest, "/")
	if len(segs) == 0 {
		return mountPoint, nil
	}
	return mountPoint + "/" + strings.Join(segs, "/"), nil
}

// driveMountPoint returns where a drive lands inside the distro: its mount
// table entry if there is one, the automount location otherwise.
func (c *Converter) driveMountPoint(drive byte) string {
	upper := upperASCII(drive)
	for _, d := range c.drives {
		if d.Letter == upper {
			return d.MountPoint
		}
	}

	root := c.root
	if root == "/" {
		root = ""
	}
	return root + "/" + string(lowerASCII(drive))
}

// splitWSL splits a WSL-form path into the mount point it sits under, the
// backing drive letter, and the remainder. Mount table entries win over the
// automount root, longest mount point first.
func (c *Converter) splitWSL(path string) (mountPoint string, letter byte, rest string, ok bool) {
	best := -1
	for i, d := range c.drives {
		mp := d.MountPoint
		if path != mp && !strings.HasPrefix(path, mp+"/") {
			continue
		}
		if best < 0 || len(mp) > len(c.drives[best].MountPoint) {
			best = i
		}
	}
	if best >= 0 {
		d := c.drives[best]
		return d.MountPoint, d.Letter, path[len(d.MountPoint):], true
	}

	prefix := c.root
	if prefix == "/" {
		prefix = ""
	}
	prefix += "/"

	if !strings.HasPrefix(path, prefix) {
		return "", 0, "", false
	}
	tail := path[len(prefix):]
	if len(tail) == 0 || !isASCIILetter(tail[0]) {
		return "", 0, "", false
	}
	if len(tail) > 1 && tail[1] != '/' {
		return "", 0, "", false
	}

	return prefix + string(tail[0]), tail[0], tail[1:], true
}

// isWindowsForm is the drive-letter heuristic: the second character is a colon.
// Deliberately nothing more; UNC and rooted Linux paths fail it.
func isWindowsForm(path string) bool {
	return len(path) >= 2 && path[1] == ':'
}

// segments splits a path on the given separator set, dropping empty segments so
// that repeated and trailing separators collapse.
func segments(path, seps string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})
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

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
