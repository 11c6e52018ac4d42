package dom

import (
	"errors"
	"fmt"
)

var ErrNoMatcher = errors.New("element cannot match selectors")

// NodeMatchesSelector tests el against a CSS selector.
func NodeMatchesSelector(el Element, selector string) (bool, error) {
	m, ok := el.(Matcher)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrNoMatcher, el)
	}
	return m.Matches(selector)
}

// FindParentNode returns the closest ancestor of el satisfying pred, or nil.
func FindParentNode(el Element, pred func(Element) bool) Element {
	for p := el.ParentElement(); p != nil; p = p.ParentElement() {
		if pred(p) {
			return p
		}
	}
	return nil
}

// FindParentNodeBySelector returns the closest ancestor matching selector.
// A nil element and nil error mean no ancestor matched.
func FindParentNodeBySelector(el Element, selector string) (Element, error) {
	for p := el.ParentElement(); p != nil; p = p.ParentElement() {
		ok, err := NodeMatchesSelector(p, selector)
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
	}
	return nil, nil
}
