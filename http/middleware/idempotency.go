package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/gob"
	"hash"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

const (
	// IdempotencyHeader carries the idempotency key of a request.
	IdempotencyHeader = "Idempotency-Key"

	// IdempotencyFormKey carries the idempotency key of an HTML form submission,
	// since forms cannot set headers.
	IdempotencyFormKey = "idempotency_key"
)

var (
	_          http.ResponseWriter = idemReqWriter{}
	hasherLock                     = sync.Mutex{}
)

// Idempotent returns a middleware.Adapter that enables features
// of idempotency on a POST endpoint.
// Requests with any other method pass through untouched,
// as do POST requests without a key.
//
// Idempotent pulls a key (a UUID v4 string) from the IdempotencyHeader
// or, for form submissions, the IdempotencyFormKey field,
// to base the uniqueness of a POST request around.
//
// If a previous request has not used that key,
// Idempotent pairs all of the following values to the key:
// - the hashed body of the request
// - the headers, body and status code of the resulting response
//
// If that key has been used before (and has not expired),
// Idempotent falls into one of these scenarios:
//
//   - if a status code has not been set for that key,
//     Idempotent responds with 409 since the idempotent request is still processing
//
//   - if the newly requested resource (the URI) or body does not match the original,
//     Idempotent responds with 422
//
//   - otherwise, Idempotent replays the response stored for the key
//
// cache and hasher can be nil.
// Idempotent will use an IdemResMap and sha256, accordingly.
//
// Idempotent implements the draft Idempotent HTTP Header Field specification:
// https://tools.ietf.org/id/draft-idempotency-header-01.html
func Idempotent(cache IdempotencyCacher, hasher hash.Hash) Adapter {
	if cache == nil {
		cache = NewIdemResMap()
	}

	if hasher == nil {
		hasher = sha256.New()
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				handler.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			r.Body.Close()
			r.Body = io.NopCloser(bytes.NewReader(body))

			key := idempotencyKey(r, body)
			if key == "" {
				handler.ServeHTTP(w, r)
				return
			}

			sum := hashBody(hasher, body)
			ir, ok := cache.Get(r.Context(), key)
			if ok {
				if ir.Status == 0 {
					w.WriteHeader(http.StatusConflict)
					return
				}

				if ir.URI != r.URL.RequestURI() || !bytes.Equal(ir.Req, sum) {
					w.WriteHeader(http.StatusUnprocessableEntity)
					return
				}

				for k, vs := range ir.Header {
					for _, v := range vs {
						w.Header().Add(k, v)
					}
				}

				w.WriteHeader(ir.Status)
				w.Write(ir.Body.Bytes())
				return
			}

			ir = NewIdemRes(r.URL.RequestURI(), sum)
			cache.Set(r.Context(), key, ir)

			irw := idemReqWriter{
				ctx: r.Context(),
				c:   cache,
				i:   &ir,
				k:   key,
				w:   w,
			}
			handler.ServeHTTP(irw, r)
		})
	}
}

// idempotencyKey reads the key from the header or the body of a form submission.
func idempotencyKey(r *http.Request, body []byte) string {
	if key := r.Header.Get(IdempotencyHeader); key != "" {
		return key
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		return ""
	}

	vals, err := url.ParseQuery(string(body))
	if err != nil {
		return ""
	}

	return vals.Get(IdempotencyFormKey)
}

func hashBody(hasher hash.Hash, body []byte) []byte {
	hasherLock.Lock()
	defer hasherLock.Unlock()

	hasher.Write(body)
	sum := hasher.Sum(nil)
	hasher.Reset()

	return sum
}

// An IdemRes is data from an HTTP response
// that can be reused when another request
// matches the same idempotency key.
type IdemRes struct {
	Body   *bytes.Buffer
	Header http.Header
	Req    []byte
	Status int
	URI    string
}

// An idemResGob is an intermediate represenation of
// an IdemRes for the purposes of gob encoding/decoding.
//
// idemResGob is necessary as long as pkg gob cannot decode/encode
// fields in an IdemRes (e.g., Body).
type idemResGob struct {
	B []byte
	H map[string][]string
	R []byte
	S int
	U string
}

// NewIdemRes constructs a new IdemRes.
func NewIdemRes(uri string, hashedBody []byte) IdemRes {
	return IdemRes{Body: bytes.NewBuffer(nil), URI: uri, Req: hashedBody}
}

// GobDecode unmarshals the gob-encoded []byte into fields of the *IdemRes.
//
// GobDecode implements gob.GobDecoder.
func (i *IdemRes) GobDecode(b []byte) error {
	g := new(idemResGob)
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(g); err != nil {
		return err
	}

	i.Body = bytes.NewBuffer(g.B)
	if g.H != nil {
		i.Header = http.Header(g.H)
	}

	i.Req, i.Status, i.URI = g.R, g.S, g.U
	return nil
}

// GobEncode marshals the fields of the IdemRes into a gob-encoded []byte.
//
// GobEncode implements gob.GobEncoder.
func (i IdemRes) GobEncode() ([]byte, error) {
	var body []byte
	if i.Body != nil {
		body = i.Body.Bytes()
	}

	buf := bytes.NewBuffer(nil)
	g := idemResGob{body, i.Header, i.Req, i.Status, i.URI}
	if err := gob.NewEncoder(buf).Encode(g); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// An idemReqWriter pairs an IdemRes with an http.ResponseWriter
// so both can be written to by an HTTP handler.
// Changes to the IdemRes in such a way are saved in the cache.
//
// An idemReqWriter implements http.ResponseWriter.
type idemReqWriter struct {
	ctx context.Context
	c   IdempotencyCacher
	i   *IdemRes
	k   string
	w   http.ResponseWriter
}

// Header returns the http.Header of the underlying http.ResponseWriter.
func (irw idemReqWriter) Header() http.Header { return irw.w.Header() }

// Write writes the bytes to all consumers the idemReqWriter is concerned with.
func (irw idemReqWriter) Write(b []byte) (int, error) {
	select {
	case <-irw.ctx.Done():
		return 0, nil
	default:
		if irw.i.Status == 0 {
			irw.WriteHeader(http.StatusOK)
		}

		n, err := irw.w.Write(b)
		if err != nil {
			return n, err
		}

		if _, err = irw.i.Body.Write(b); err != nil {
			return n, err
		}

		irw.c.Set(irw.ctx, irw.k, *irw.i)
		return n, nil
	}
}

// WriteHeader copies the status code and headers about to be written to the IdemRes for later reuse
// before actually writing the status code.
func (irw idemReqWriter) WriteHeader(s int) {
	select {
	case <-irw.ctx.Done():
		return
	default:
		irw.i.Header = irw.w.Header().Clone()
		irw.w.WriteHeader(s)
		irw.i.Status = s
		irw.c.Set(irw.ctx, irw.k, *irw.i)
	}
}
