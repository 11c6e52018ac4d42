// Package host provides the explicit host context the rest of fossen_go runs
// against instead of ambient browser globals.
//
// A Loop runs callbacks one at a time on a single goroutine, in the order they
// were posted, and offers SetTimeout/ClearTimeout on top of that. Nothing
// posted to a Loop ever runs concurrently with anything else posted to the
// same Loop, so callbacks may share state without locking.
//
// A Document models the page load lifecycle: listeners registered with OnLoad
// run once, on the Loop, when the document is marked loaded.
//
// Example:
//
//	loop := host.NewLoop(ctx)
//	defer loop.Close()
//
//	doc := host.NewDocument(loop, false)
//	doc.OnLoad(func() { fmt.Println("loaded") })
//	loop.SetTimeout(func() { _ = doc.MarkLoaded() }, 50*time.Millisecond)
package host
