package dom_test

import (
	"testing"

	"github.com/on-the-ground/fossen_go/dom"
	"github.com/stretchr/testify/assert"
)

func TestDispatchCustomEvent_Bubbles(t *testing.T) {
	f := newFixture()

	var order []string
	var detail any
	f.item.AddEventListener("picked", func(e *dom.CustomEvent) {
		order = append(order, "item")
		detail = e.Detail
	})
	f.list.AddEventListener("picked", func(e *dom.CustomEvent) {
		order = append(order, "list")
		assert.Same(t, f.item, e.Target)
		assert.Same(t, f.list, e.CurrentTarget)
	})
	f.body.AddEventListener("other", func(e *dom.CustomEvent) {
		order = append(order, "wrong type")
	})

	ok := dom.DispatchCustomEvent(f.item, "picked", map[string]int{"id": 7}, dom.EventOptions{Bubbles: true})
	assert.True(t, ok)
	assert.Equal(t, []string{"item", "list"}, order)
	assert.Equal(t, map[string]int{"id": 7}, detail)
}

func TestDispatchCustomEvent_NoBubble(t *testing.T) {
	f := newFixture()
	called := false
	f.list.AddEventListener("picked", func(*dom.CustomEvent) { called = true })

	dom.DispatchCustomEvent(f.item, "picked", nil, dom.EventOptions{})
	assert.False(t, called)
}

func TestDispatchCustomEvent_PreventDefault(t *testing.T) {
	f := newFixture()
	f.body.AddEventListener("close", func(e *dom.CustomEvent) { e.PreventDefault() })

	assert.False(t, dom.DispatchCustomEvent(f.item, "close", nil, dom.EventOptions{Bubbles: true, Cancelable: true}))
	// non-cancelable events ignore PreventDefault
	assert.True(t, dom.DispatchCustomEvent(f.item, "close", nil, dom.EventOptions{Bubbles: true}))
}

func TestDispatchCustomEvent_StopPropagationAndRemove(t *testing.T) {
	f := newFixture()
	bodyCalls := 0
	f.body.AddEventListener("ping", func(*dom.CustomEvent) { bodyCalls++ })
	id := f.list.AddEventListener("ping", func(e *dom.CustomEvent) { e.StopPropagation() })

	dom.DispatchCustomEvent(f.item, "ping", nil, dom.EventOptions{Bubbles: true})
	assert.Equal(t, 0, bodyCalls)

	f.list.RemoveEventListener("ping", id)
	dom.DispatchCustomEvent(f.item, "ping", nil, dom.EventOptions{Bubbles: true})
	assert.Equal(t, 1, bodyCalls)
}
