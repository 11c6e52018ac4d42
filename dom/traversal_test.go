package dom_test

import (
	"testing"

	"github.com/on-the-ground/fossen_go/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bareElement has geometry but cannot match selectors.
type bareElement struct {
	parent dom.Element
}

func (bareElement) OffsetLeft() float64          { return 0 }
func (bareElement) OffsetTop() float64           { return 0 }
func (bareElement) OffsetWidth() float64         { return 0 }
func (bareElement) OffsetHeight() float64        { return 0 }
func (bareElement) OffsetParent() dom.Element    { return nil }
func (b bareElement) ParentElement() dom.Element { return b.parent }
func (bareElement) ScrollLeft() float64          { return 0 }
func (bareElement) ScrollTop() float64           { return 0 }
func (bareElement) ScrollHeight() float64        { return 0 }
func (bareElement) ClientHeight() float64        { return 0 }
func (bareElement) SetScrollTop(float64)         {}

func TestNodeMatchesSelector(t *testing.T) {
	f := newFixture()
	cases := map[string]bool{
		"div":                     true,
		"DIV":                     true,
		"*":                       true,
		"#list":                   true,
		".scroller":               true,
		"div#list.scroller.panel": true,
		"div.scroller.missing":    false,
		"span":                    false,
		"#other":                  false,
		"span, .panel":            true,
		"span,p":                  false,
	}
	for sel, want := range cases {
		got, err := dom.NodeMatchesSelector(f.list, sel)
		require.NoError(t, err, sel)
		assert.Equal(t, want, got, sel)
	}

	for _, bad := range []string{"", "div > p", "div p", "#", "a..b", "#a#b", "a[href]"} {
		_, err := dom.NodeMatchesSelector(f.list, bad)
		assert.ErrorIs(t, err, dom.ErrInvalidSelector, bad)
	}
}

func TestNodeMatchesSelector_NoMatcher(t *testing.T) {
	_, err := dom.NodeMatchesSelector(bareElement{}, "div")
	assert.ErrorIs(t, err, dom.ErrNoMatcher)
}

func TestFindParentNode(t *testing.T) {
	f := newFixture()

	got := dom.FindParentNode(f.item, func(el dom.Element) bool {
		return el.OffsetHeight() > 1000
	})
	assert.Same(t, f.body, got)

	assert.Nil(t, dom.FindParentNode(f.item, func(dom.Element) bool { return false }))
}

func TestFindParentNodeBySelector(t *testing.T) {
	f := newFixture()

	got, err := dom.FindParentNodeBySelector(f.item, ".scroller")
	require.NoError(t, err)
	assert.Same(t, f.list, got)

	got, err = dom.FindParentNodeBySelector(f.item, "body")
	require.NoError(t, err)
	assert.Same(t, f.body, got)

	got, err = dom.FindParentNodeBySelector(f.item, "li")
	require.NoError(t, err)
	assert.Nil(t, got, "the element itself is not a candidate")

	_, err = dom.FindParentNodeBySelector(bareElement{parent: bareElement{}}, "div")
	assert.ErrorIs(t, err, dom.ErrNoMatcher)
}
