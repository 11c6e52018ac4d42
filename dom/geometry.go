package dom

// Rect is an element's position in page and window coordinates.
type Rect struct {
	Left, Top             float64 // page relative
	WindowLeft, WindowTop float64 // viewport relative
	Width, Height         float64
}

func (r Rect) Right() float64  { return r.WindowLeft + r.Width }
func (r Rect) Bottom() float64 { return r.WindowTop + r.Height }

// Offset walks el's offset parents. Offsets sum to page coordinates; the
// parents' scroll offsets are subtracted on top of that for window coordinates.
func Offset(el Element) Rect {
	r := Rect{Width: el.OffsetWidth(), Height: el.OffsetHeight()}
	var scrollLeft, scrollTop float64
	for e := el; e != nil; e = e.OffsetParent() {
		r.Left += e.OffsetLeft()
		r.Top += e.OffsetTop()
		if e != el {
			scrollLeft += e.ScrollLeft()
			scrollTop += e.ScrollTop()
		}
	}
	r.WindowLeft = r.Left - scrollLeft
	r.WindowTop = r.Top - scrollTop
	return r
}

// Visibility classifies where an element sits relative to the viewport.
type Visibility string

const (
	InView        Visibility = ""
	Below         Visibility = "below"
	Above         Visibility = "above"
	Right         Visibility = "right"
	Left          Visibility = "left"
	ClippedBottom Visibility = "clipped-bottom"
	ClippedTop    Visibility = "clipped-top"
	ClippedRight  Visibility = "clipped-right"
	ClippedLeft   Visibility = "clipped-left"
)

func (v Visibility) OutOfView() bool { return v != InView }

// IsOutOfView reports the first edge condition that applies, checking fully
// hidden positions before, with partially set, clipped edges.
func IsOutOfView(doc Document, el Element, partially bool) Visibility {
	r := Offset(el)
	vw, vh := doc.ClientWidth(), doc.ClientHeight()

	switch {
	case r.WindowTop >= vh:
		return Below
	case r.Bottom() <= 0:
		return Above
	case r.WindowLeft >= vw:
		return Right
	case r.Right() <= 0:
		return Left
	}
	if !partially {
		return InView
	}
	switch {
	case r.Bottom() > vh:
		return ClippedBottom
	case r.WindowTop < 0:
		return ClippedTop
	case r.Right() > vw:
		return ClippedRight
	case r.WindowLeft < 0:
		return ClippedLeft
	}
	return InView
}

// FindClosestScrollableOffsetParent returns the nearest offset parent whose
// content is taller than its visible area, or the body.
func FindClosestScrollableOffsetParent(doc Document, el Element) Element {
	for p := el.OffsetParent(); p != nil; p = p.OffsetParent() {
		if p.ScrollHeight() > p.ClientHeight() {
			return p
		}
	}
	return doc.Body()
}

// ScrollY scrolls container vertically so that el is fully visible, keeping
// padding pixels of room on the revealed edge. A nil container means the
// closest scrollable offset parent. It reports whether it scrolled; an element
// already fully in view is left alone.
func ScrollY(doc Document, el Element, padding float64, container Element) bool {
	if !IsOutOfView(doc, el, true).OutOfView() {
		return false
	}
	if container == nil {
		container = FindClosestScrollableOffsetParent(doc, el)
	}
	if container == nil {
		return false
	}

	r := Offset(el)
	top := r.Top
	visible := container.ClientHeight()
	if container == doc.Body() {
		visible = doc.ClientHeight()
	} else {
		top -= Offset(container).Top
	}
	viewTop := container.ScrollTop()

	var target float64
	switch {
	case top+r.Height > viewTop+visible:
		target = top + r.Height - visible + padding
	case top < viewTop:
		target = top - padding
	default:
		return false
	}
	if target < 0 {
		target = 0
	}
	container.SetScrollTop(target)
	return true
}

// CursorRelativeTo converts a page position into el's coordinate space.
func CursorRelativeTo(page Point, el Element) Point {
	r := Offset(el)
	return Point{X: page.X - r.Left, Y: page.Y - r.Top}
}
