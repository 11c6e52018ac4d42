package xhr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/on-the-ground/fossen_go/pure"
)

// Failure payloads handed to the callback in place of a response.
const (
	Abort   = "Abort"
	Timeout = "Timeout"
	Error   = "Error"
)

const (
	FormContentType = "application/x-www-form-urlencoded; charset=UTF-8"
	RequestedWith   = "XMLHttpRequest"
)

var ErrUnsupportedBody = errors.New("unsupported request body")

type ProgressFunc func(loaded, total int64)

// Options describes one request. Only URL is required.
type Options struct {
	URL string
	// Method defaults to POST when Body is set, GET otherwise.
	Method  string
	Headers map[string]string
	// Body is one of string, []byte, url.Values, map[string]any, io.Reader
	// or *FormData.
	Body any
	// CORS routes the request through the client's cross-origin transport.
	CORS bool
	// ResponseType is "json", "arraybuffer", "blob" or empty for text.
	ResponseType    string
	WithCredentials bool
	// Timeout of zero means no timeout.
	Timeout    time.Duration
	OnProgress ProgressFunc
}

func OptionsFromURL(u string) Options {
	return Options{URL: u}
}

func (o Options) hasBody() bool {
	switch b := o.Body.(type) {
	case nil:
		return false
	case string:
		return b != ""
	case []byte:
		return len(b) > 0
	case *FormData:
		return b != nil
	}
	return true
}

func (o Options) method() string {
	if o.Method != "" {
		return strings.ToUpper(o.Method)
	}
	if o.hasBody() {
		return http.MethodPost
	}
	return http.MethodGet
}

// header builds the outgoing header set, applying the body defaults.
func (o Options) header(bodyType string) http.Header {
	h := make(http.Header, len(o.Headers)+2)
	for k, v := range o.Headers {
		h.Set(k, v)
	}
	if !o.hasBody() {
		return h
	}
	if h.Get("Content-Type") == "" {
		if bodyType != "" {
			h.Set("Content-Type", bodyType)
		} else {
			h.Set("Content-Type", FormContentType)
		}
	}
	h.Set("X-Requested-With", RequestedWith)
	return h
}

// encodeBody returns the body reader and, for multipart forms, the content
// type carrying the boundary.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case string:
		return strings.NewReader(b), "", nil
	case []byte:
		return bytes.NewReader(b), "", nil
	case url.Values:
		return strings.NewReader(b.Encode()), "", nil
	case map[string]any:
		return strings.NewReader(pure.ObjectToQueryString(b)), "", nil
	case *FormData:
		if b == nil {
			return nil, "", nil
		}
		return b.encode()
	case io.Reader:
		return b, "", nil
	default:
		return nil, "", fmt.Errorf("%w: %T", ErrUnsupportedBody, body)
	}
}
