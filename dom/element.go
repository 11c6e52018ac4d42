package dom

// Element is one rendered element as seen by the geometry helpers.
// Implementations must return a nil interface, not a typed nil, when there is
// no offset parent or parent.
type Element interface {
	OffsetLeft() float64
	OffsetTop() float64
	OffsetWidth() float64
	OffsetHeight() float64
	OffsetParent() Element
	ParentElement() Element

	ScrollLeft() float64
	ScrollTop() float64
	ScrollHeight() float64
	ClientHeight() float64
	SetScrollTop(v float64)
}

// Matcher is implemented by elements that can test CSS selectors.
type Matcher interface {
	Matches(selector string) (bool, error)
}

type Document interface {
	Body() Element
	ClientWidth() float64
	ClientHeight() float64
}

type Point struct {
	X, Y float64
}

// Box is an offset box: position relative to the offset parent plus size.
type Box struct {
	Left, Top, Width, Height float64
}
