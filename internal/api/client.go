package api

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Timeout constants
const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultRetryCount     = 2
	DefaultRetryWait      = 500 * time.Millisecond
)

// Client talks to the showcase backend API.
type Client struct {
	http *resty.Client
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(DefaultRequestTimeout).
		SetRetryCount(DefaultRetryCount).
		SetRetryWaitTime(DefaultRetryWait).
		SetHeader("Accept", "application/json")

	return &Client{http: client}
}
