package snapshot

import (
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

// DefaultFetchTimeout bounds a single snapshot download.
const DefaultFetchTimeout = 30 * time.Second

// Fetcher loads snapshot payloads. A source is either a local file path or
// an http(s) URL; both return the raw bytes for the decoders in this
// package.
type Fetcher struct {
	client  *fasthttp.Client
	timeout time.Duration
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Fetcher{
		client: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		timeout: timeout,
	}
}

func (f *Fetcher) Fetch(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return f.fetchHTTP(source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, errors.Wrapf(err, "read snapshot file %q", source)
	}
	return data, nil
}

func (f *Fetcher) fetchHTTP(url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := f.client.DoTimeout(req, resp, f.timeout); err != nil {
		return nil, errors.Wrapf(err, "fetch snapshot %q", url)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, errors.Newf("fetch snapshot %q: unexpected status %d", url, resp.StatusCode())
	}

	// The response body is only valid until the response is released, so
	// copy it out through a pooled buffer.
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.Write(resp.Body()); err != nil {
		return nil, errors.Wrapf(err, "buffer snapshot %q", url)
	}
	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}
