package xhr

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/fossen_go/host"
	"github.com/on-the-ground/fossen_go/log"
)

// Client sends requests. The zero value uses http.DefaultClient and runs
// callbacks on the transport goroutine.
type Client struct {
	HTTPClient *http.Client
	// CrossOrigin serves CORS requests; HTTPClient is used when nil.
	CrossOrigin *http.Client
	// Loop, when set, runs callbacks and progress reports.
	Loop    *host.Loop
	Metrics *Metrics
}

var DefaultClient = &Client{}

func Ajax(ctx context.Context, opts Options, cb Callback) *Request {
	return DefaultClient.Ajax(ctx, opts, cb)
}

func AjaxURL(ctx context.Context, u string, cb Callback) *Request {
	return DefaultClient.AjaxURL(ctx, u, cb)
}

func (c *Client) AjaxURL(ctx context.Context, u string, cb Callback) *Request {
	return c.Ajax(ctx, OptionsFromURL(u), cb)
}

// Ajax starts the request and returns its handle immediately. cb is called
// exactly once.
func (c *Client) Ajax(ctx context.Context, opts Options, cb Callback) *Request {
	reqCtx, cancel := context.WithCancelCause(ctx)
	stop := func() {}
	if opts.Timeout > 0 {
		reqCtx, stop = context.WithTimeoutCause(reqCtx, opts.Timeout, errTimedOut)
	}
	r := newRequest(uuid.New().String(), opts, cancel)
	start := time.Now()

	httpReq, err := c.newHTTPRequest(reqCtx, opts)
	if err != nil {
		log.LogEff(ctx, log.LogWarn, "xhr request not sent", map[string]interface{}{
			"request_id": r.Id,
			"url":        opts.URL,
			"error":      err.Error(),
		})
		go func() {
			defer stop()
			defer cancel(nil)
			c.finish(ctx, r, cb, start, nil, Error, "", nil)
		}()
		return r
	}

	go func() {
		defer stop()
		defer cancel(nil)
		c.send(ctx, reqCtx, r, cb, start, httpReq)
	}()
	return r
}

func (c *Client) newHTTPRequest(ctx context.Context, opts Options) (*http.Request, error) {
	body, bodyType, err := encodeBody(opts.Body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, opts.method(), opts.URL, body)
	if err != nil {
		return nil, err
	}
	req.Header = opts.header(bodyType)
	return req, nil
}

func (c *Client) send(ctx, reqCtx context.Context, r *Request, cb Callback, start time.Time, httpReq *http.Request) {
	resp, err := c.httpClient(r.Options).Do(httpReq)
	if err != nil {
		c.finish(ctx, r, cb, start, nil, failure(reqCtx, err), "", nil)
		return
	}
	defer resp.Body.Close()

	var body io.Reader = resp.Body
	if r.Options.OnProgress != nil {
		body = &progressReader{r: resp.Body, total: max(resp.ContentLength, 0), report: c.progress(r.Options.OnProgress)}
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		c.finish(ctx, r, cb, start, nil, failure(reqCtx, err), "", nil)
		return
	}
	status := resp.StatusCode
	c.finish(ctx, r, cb, start, &status, decode(r.Options.ResponseType, raw), string(raw), resp.Header)
}

func (c *Client) httpClient(opts Options) *http.Client {
	hc := c.HTTPClient
	if opts.CORS && c.CrossOrigin != nil {
		hc = c.CrossOrigin
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	if opts.CORS && !opts.WithCredentials && hc.Jar != nil {
		anon := *hc
		anon.Jar = nil
		hc = &anon
	}
	return hc
}

func (c *Client) progress(fn ProgressFunc) ProgressFunc {
	if c.Loop == nil {
		return fn
	}
	return func(loaded, total int64) {
		_ = c.Loop.Post(func() { fn(loaded, total) })
	}
}

func (c *Client) finish(
	ctx context.Context,
	r *Request,
	cb Callback,
	start time.Time,
	status *int,
	response any,
	text string,
	header http.Header,
) {
	if !r.settle(status, response, text, header) {
		return
	}
	elapsed := time.Since(start)
	outcome := outcomeLabel(status, response)
	c.Metrics.RecordRequest(outcome, elapsed)

	fields := map[string]interface{}{
		"request_id":  r.Id,
		"method":      r.Options.method(),
		"url":         r.Options.URL,
		"outcome":     outcome,
		"duration_ms": elapsed.Milliseconds(),
	}
	if status != nil {
		fields["status"] = *status
	}
	log.LogEff(ctx, log.LogDebug, "xhr request finished", fields)

	if cb == nil {
		return
	}
	if c.Loop != nil {
		if err := c.Loop.Post(func() { cb(status, response, r) }); err == nil {
			return
		}
		log.LogEff(ctx, log.LogWarn, "loop closed, running xhr callback inline", map[string]interface{}{
			"request_id": r.Id,
		})
	}
	cb(status, response, r)
}

// failure maps a transport error to its callback payload.
func failure(reqCtx context.Context, err error) string {
	cause := context.Cause(reqCtx)
	switch {
	case errors.Is(cause, errTimedOut), errors.Is(cause, context.DeadlineExceeded):
		return Timeout
	case errors.Is(cause, ErrAborted), errors.Is(cause, context.Canceled):
		return Abort
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Timeout
	}
	return Error
}

func decode(responseType string, raw []byte) any {
	switch responseType {
	case "json":
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil
		}
		return v
	case "arraybuffer", "blob":
		return raw
	default:
		return string(raw)
	}
}

type progressReader struct {
	r      io.Reader
	loaded int64
	total  int64
	report ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.loaded += int64(n)
		p.report(p.loaded, p.total)
	}
	return n, err
}
