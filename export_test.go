package wslpath

// This file exports private functionality used for unit testing

// MutateRaw overwrites the wrapped path value in place, without touching the
// memo cells. Tests use it to prove the derived renderings are write-once.
func (p *Path) MutateRaw(raw string) {
	p.raw = raw
}
