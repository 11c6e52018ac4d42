package xhr

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

var (
	// ErrAborted is the cancellation cause set by Request.Abort.
	ErrAborted  = errors.New("request aborted")
	errTimedOut = errors.New("request timed out")
)

// Callback receives a nil status on failure, with response set to Abort,
// Timeout or Error.
type Callback func(status *int, response any, req *Request)

// Request is the handle of one in-flight or finished request.
type Request struct {
	Id      string
	Options Options

	cancel context.CancelCauseFunc
	once   sync.Once
	done   chan struct{}

	mu           sync.Mutex
	status       *int
	response     any
	responseText string
	header       http.Header
}

func newRequest(id string, opts Options, cancel context.CancelCauseFunc) *Request {
	return &Request{
		Id:      id,
		Options: opts,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
}

// Abort cancels the request. The callback then receives Abort unless the
// request had already finished.
func (r *Request) Abort() {
	r.cancel(ErrAborted)
}

// Done is closed once the outcome is recorded, before the callback runs.
func (r *Request) Done() <-chan struct{} { return r.done }

// Status is nil until a response arrives, and stays nil on failure.
func (r *Request) Status() *int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *Request) Response() any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.response
}

// ResponseText is the raw body, whatever the ResponseType.
func (r *Request) ResponseText() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.responseText
}

func (r *Request) ResponseHeader() http.Header {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.header
}

// settle records the outcome once and reports whether this call did so.
func (r *Request) settle(status *int, response any, text string, header http.Header) bool {
	settled := false
	r.once.Do(func() {
		r.mu.Lock()
		r.status, r.response, r.responseText, r.header = status, response, text, header
		r.mu.Unlock()
		close(r.done)
		settled = true
	})
	return settled
}
