// Package dom computes element geometry against an explicit host layout.
//
// The host is described by two small interfaces: Element exposes the offset
// box, offset parent and scroll metrics of one element, and Document exposes
// the body element and the viewport size. Node is an in-memory layout tree
// implementing both Element and Matcher, usable on its own or as a test
// double for a real rendering host.
//
// Coordinates follow the browser model: an element's offset box is relative
// to its offset parent, page coordinates sum the offset chain, and window
// coordinates additionally subtract every scroll offset along that chain.
package dom
