package layout

import (
	"strconv"
	"strings"
)

// Unit discriminates how a Dim resolves against its container.
type Unit int

const (
	// UnitAuto marks an unspecified dimension: the node is flexible on
	// that axis and takes whatever the container grants.
	UnitAuto Unit = iota
	// UnitPixel is an absolute size in pixels.
	UnitPixel
	// UnitPercent resolves as a fraction of the container's extent.
	UnitPercent
)

// Dim is one axis of a size request. The zero value is Auto. Resolution
// happens lazily against a container extent, so the same tree can be laid
// out at any viewport size.
type Dim struct {
	Amount float64
	Unit   Unit
}

// Auto returns the unspecified dimension.
func Auto() Dim { return Dim{} }

// Pixels returns a fixed pixel dimension.
func Pixels(n int) Dim { return Dim{Amount: float64(n), Unit: UnitPixel} }

// Percent returns a percentage dimension.
func Percent(p float64) Dim { return Dim{Amount: p, Unit: UnitPercent} }

// IsAuto reports whether the dimension is unspecified.
func (d Dim) IsAuto() bool { return d.Unit == UnitAuto }

// Resolve turns the dimension into pixels against a container extent. The
// boolean is false for Auto. Percentages truncate toward zero, so "50%"
// of 401 is 200.
func (d Dim) Resolve(container int) (int, bool) {
	switch d.Unit {
	case UnitPixel:
		return int(d.Amount), true
	case UnitPercent:
		return int(float64(container) * d.Amount / 100), true
	default:
		return 0, false
	}
}

// ParseDim interprets one side of a size attribute. Empty means Auto, a
// trailing % is a percentage, anything else must be a whole number of
// pixels. Malformed or negative input degrades to Auto rather than
// erroring; layout must keep working with whatever markup it is given.
func ParseDim(raw string) Dim {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Auto()
	}
	if p, ok := strings.CutSuffix(raw, "%"); ok {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil || f < 0 {
			return Auto()
		}
		return Percent(f)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return Auto()
	}
	return Pixels(n)
}

// ParseSizeSpec splits a "WxH" attribute into its two dimensions. The
// split happens at the first x, and either side may be empty ("x32",
// "640x"). A string with no x at all specifies neither axis; a bare
// number is not treated as a width.
func ParseSizeSpec(raw string) (Dim, Dim) {
	w, h, found := strings.Cut(raw, "x")
	if !found {
		return Auto(), Auto()
	}
	return ParseDim(w), ParseDim(h)
}
