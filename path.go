package wslpath

// This file contains the Path adapter: one path value carrying its two
// renderings, each derived lazily and memoized on first access.

import (
	"strings"
	"sync"

	"github.com/ubuntu/decorate"
)

// Path wraps a path value and lazily derives its spelling on the other side of
// the Windows / WSL boundary. The wrapped value is never modified, and each
// derived rendering is computed at most once, its error included.
//
// A Path is safe for concurrent use.
type Path struct {
	raw  string
	form Form
	conv *Converter

	wsl memo
	win memo
}

// memo is a write-once cell holding one derived rendering.
type memo struct {
	once  sync.Once
	value string
	err   error
}

func (m *memo) do(derive func() (string, error)) (string, error) {
	m.once.Do(func() {
		m.value, m.err = derive()
	})
	return m.value, m.err
}

// New wraps a path value. The value may follow the Windows convention, the WSL
// convention, or neither: construction never fails, and the derived renderings
// report ErrUnsupportedPath on access instead.
func New(path string, opts ...func(*Path)) *Path {
	p := &Path{
		raw:  path,
		conv: defaultConverter,
	}
	for _, o := range opts {
		o(p)
	}
	p.form = p.conv.DetectForm(path)

	return p
}

// WithConverter derives the path's renderings through c instead of the default
// rules.
func WithConverter(c *Converter) func(*Path) {
	return func(p *Path) {
		p.conv = c
	}
}

// String returns the path value as constructed or joined, verbatim.
func (p *Path) String() string {
	return p.raw
}

// Form returns the convention the path value was detected to follow.
func (p *Path) Form() Form {
	return p.form
}

// WSLPath returns the path's spelling inside the distro: /mnt/c/foo for
// C:\foo. A value already in WSL form is re-rendered in canonical spelling.
//
// The result is memoized: the first access fixes the value and the error, and
// later accesses return them without recomputing.
func (p *Path) WSLPath() (string, error) {
	return p.wsl.do(func() (s string, err error) {
		defer decorate.OnError(&err, "could not derive the WSL form of %q", p.raw)

		switch p.form {
		case FormWSL:
			return p.conv.canonWSL(p.raw)
		case FormWindows:
			return p.conv.toWSL(p.raw)
		}
		return "", ErrUnsupportedPath
	})
}

// WindowsPath returns the path's Windows drive spelling: C:\foo for /mnt/c/foo.
// A value already in Windows form is re-rendered in canonical spelling.
//
// The result is memoized the same way WSLPath is.
func (p *Path) WindowsPath() (string, error) {
	return p.win.do(func() (s string, err error) {
		defer decorate.OnError(&err, "could not derive the Windows form of %q", p.raw)

		switch p.form {
		case FormWindows:
			return canonWindows(p.raw)
		case FormWSL:
			return p.conv.toWindows(p.raw)
		}
		return "", ErrUnsupportedPath
	})
}

// DriveLetter returns the lower-cased drive letter backing the path, for
// either supported form.
func (p *Path) DriveLetter() (s string, err error) {
	defer decorate.OnError(&err, "could not determine the drive letter of %q", p.raw)

	switch p.form {
	case FormWindows:
		return string(lowerASCII(p.raw[0])), nil
	case FormWSL:
		if _, letter, _, ok := p.conv.splitWSL(p.raw); ok {
			return string(lowerASCII(letter)), nil
		}
	}

	return "", ErrUnsupportedPath
}

// Join appends elements to the path and returns a new adapter, with fresh
// caches and the same conversion rules. Elements are joined with the raw
// form's separator and treated as relative.
func (p *Path) Join(elems ...string) *Path {
	sep := "/"
	if p.form == FormWindows {
		sep = `\`
	}

	raw := p.raw
	for _, e := range elems {
		e = strings.Trim(e, `\/`)
		if e == "" {
			continue
		}
		raw = strings.TrimRight(raw, `\/`) + sep + e
	}

	return New(raw, WithConverter(p.conv))
}

// canonWindows re-renders a Windows-form path in canonical spelling: single
// backslashes, no trailing separator. The drive letter keeps its case.
func canonWindows(path string) (string, error) {
	if !isWindowsForm(path) {
		return "", ErrUnsupportedPath
	}

	drive := path[:2]
	segs := segments(path[2:], `\/`)
	if len(segs) == 0 {
		return drive + `\`, nil
	}
	return drive + `\` + strings.Join(segs, `\`), nil
}
