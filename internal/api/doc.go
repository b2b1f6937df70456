package api

// Package api implements the HTTP client for the showcase backend: the
// slideshow playlist endpoint and the currency conversion endpoint. Both
// callers keep a fully local fallback, so every error returned here is
// recoverable by design of the calling widget.
