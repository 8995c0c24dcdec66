// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

func TestGZip(t *testing.T) {
	transcript := []byte(`{"newTranscript":"` + strings.Repeat("we need to talk about the budget ", 50) + `"}`)

	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		body            io.Reader
		wantStatus      int
		wantGzipped     bool
		wantRequestBody string
	}{
		{
			name:           "compress response when client accepts gzip",
			acceptEncoding: "gzip",
			wantStatus:     http.StatusOK,
			wantGzipped:    true,
		},
		{
			name:        "plain response without accept-encoding",
			wantStatus:  http.StatusOK,
			wantGzipped: false,
		},
		{
			name:           "accept-encoding list with quality values",
			acceptEncoding: "deflate, gzip;q=1.0, identity;q=0.5",
			wantStatus:     http.StatusOK,
			wantGzipped:    true,
		},
		{
			name:            "decompress gzipped transcript",
			contentEncoding: "gzip",
			body:            gzipBytes(t, transcript),
			wantStatus:      http.StatusOK,
			wantRequestBody: string(transcript),
		},
		{
			name:            "invalid gzip request body",
			contentEncoding: "gzip",
			body:            strings.NewReader("not gzipped data"),
			wantStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Body != nil {
					data, err := io.ReadAll(r.Body)
					require.NoError(t, err)
					gotBody = string(data)
					assert.Empty(t, r.Header.Get("Content-Encoding"))
				}
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"ok":true}`))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/analyze", tt.body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				assert.JSONEq(t, `{"error":"invalid data provided"}`, rr.Body.String())
				return
			}

			assert.Contains(t, rr.Header().Values("Vary"), "Accept-Encoding")
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.JSONEq(t, `{"ok":true}`, gunzip(t, rr.Body))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
			}

			if tt.wantRequestBody != "" {
				assert.Equal(t, tt.wantRequestBody, gotBody)
			}
		})
	}
}

func TestGZip_CompressionRatio(t *testing.T) {
	data := strings.Repeat("This is repetitive data. ", 1000)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(data))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/conversations/1", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(data)/10)
	assert.Equal(t, data, gunzip(t, rr.Body))
}

func TestGZip_PoolReuseAcrossRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(body)
	})
	middleware := withGZip(next)

	for i := range 5 {
		payload := strings.Repeat("x", i+1)
		req := httptest.NewRequest(http.MethodPost, "/api/conversations", gzipBytes(t, []byte(payload)))
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set("Accept-Encoding", "gzip")

		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "request %d", i)
		assert.Equal(t, payload, gunzip(t, rr.Body), "request %d", i)
	}
}

func TestGZip_UntouchedResponseStaysEmpty(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Zero(t, rr.Body.Len())
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
}

func TestWrappedReadCloser_CloseRunsCallbackOnce(t *testing.T) {
	calls := 0
	wrapped := &wrappedReadCloser{
		Reader:  strings.NewReader("test"),
		OnClose: func() { calls++ },
	}

	assert.NoError(t, wrapped.Close())
	assert.NoError(t, wrapped.Close())
	assert.Equal(t, 1, calls)
}
