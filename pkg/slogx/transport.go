package slogx

import (
	"log/slog"
	"net/http"
	"time"
)

// Transport is an http.RoundTripper that logs every outgoing request:
// method, path, status, duration and the X-Request-ID the caller attached.
// It is the client-side counterpart of a server request-logging middleware.
type Transport struct {
	// Base performs the actual round trip. Defaults to http.DefaultTransport.
	Base http.RoundTripper

	// Logger used when the request context carries none.
	Logger *slog.Logger
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger := t.Logger
	if l, ok := req.Context().Value(ctxKey{}).(*slog.Logger); ok {
		logger = l
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(
		"method", req.Method,
		"path", req.URL.Path,
		"req_id", req.Header.Get("X-Request-ID"),
	)

	resp, err := t.base().RoundTrip(req)
	duration := time.Since(start).Milliseconds()

	if err != nil {
		logger.Error("api_request_failed", "duration_ms", duration, "error", err)
		return nil, err
	}

	logger.Info("api_request",
		"status", resp.StatusCode,
		"duration_ms", duration,
	)
	return resp, nil
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
