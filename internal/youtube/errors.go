package youtube

import (
	"errors"
	"fmt"
)

// ErrNoDataBlob means the page was fetched but no parseable ytInitialData
// script could be located. Nothing can be recovered without the blob.
var ErrNoDataBlob = errors.New("no data blob found")

// NotFoundError means the channel page itself returned 404.
type NotFoundError struct {
	ChannelID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("channel with ID %s not found", e.ChannelID)
}

// UpstreamError is any other non-2xx response from the source.
type UpstreamError struct {
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to fetch channel page: %s", e.Status)
}

// TransportError is a network-level failure (timeout, DNS, reset) before a
// usable response arrived.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
