package swipeview

import "fmt"

// MeasureMode tells a measured primitive how to treat the size of a
// [MeasureSpec].
type MeasureMode int

const (
	// Unspecified places no limit on the measured size.
	Unspecified MeasureMode = iota
	// Exactly forces the measured size to the spec's size.
	Exactly
	// AtMost lets the measured size grow up to the spec's size.
	AtMost
)

func (m MeasureMode) String() string {
	switch m {
	case Unspecified:
		return "unspecified"
	case Exactly:
		return "exactly"
	case AtMost:
		return "at-most"
	default:
		return fmt.Sprintf("MeasureMode(%d)", int(m))
	}
}

// MeasureSpec is the constraint a container passes down for one dimension.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// ExactSpec returns a spec which forces size.
func ExactSpec(size int) MeasureSpec {
	return MeasureSpec{Mode: Exactly, Size: size}
}

// AtMostSpec returns a spec which bounds the size from above.
func AtMostSpec(size int) MeasureSpec {
	return MeasureSpec{Mode: AtMost, Size: size}
}

// UnspecifiedSpec returns a spec without any constraint.
func UnspecifiedSpec() MeasureSpec {
	return MeasureSpec{Mode: Unspecified}
}

// Resolve returns the final size for a primitive that would like to be
// desired cells large. Unknown modes behave like Unspecified. The result is
// never negative.
func (s MeasureSpec) Resolve(desired int) int {
	var result int
	switch s.Mode {
	case Exactly:
		result = s.Size
	case AtMost:
		result = min(desired, s.Size)
	default:
		result = desired
	}
	return max(result, 0)
}

// Wrap returns the size of a primitive whose content is desired cells large
// and which never grows past its content: Exactly and AtMost both act as an
// upper bound.
func (s MeasureSpec) Wrap(desired int) int {
	switch s.Mode {
	case Exactly, AtMost:
		return max(min(desired, s.Size), 0)
	default:
		return max(desired, 0)
	}
}

func (s MeasureSpec) String() string {
	return fmt.Sprintf("%s(%d)", s.Mode, s.Size)
}

// Measurer is implemented by primitives that can report the size they would
// like to have under the given constraints.
type Measurer interface {
	Measure(width, height MeasureSpec) (int, int)
}

// MeasurePrimitive measures p under the given specs. Primitives which do not
// implement [Measurer] report the size of their current rect.
func MeasurePrimitive(p Primitive, width, height MeasureSpec) (int, int) {
	if m, ok := p.(Measurer); ok {
		w, h := m.Measure(width, height)
		return max(w, 0), max(h, 0)
	}
	_, _, w, h := p.GetRect()
	return max(w, 0), max(h, 0)
}
