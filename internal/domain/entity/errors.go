package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRoom is returned for room numbers outside the catalog
	ErrUnknownRoom = errors.New("unknown room")
	// ErrNoGuest is returned when a room has no guest with a phone number today
	ErrNoGuest = errors.New("no guest or phone number for room")
)

// FetchError is a failed PMS schedule fetch
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("schedule fetch failed: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("schedule fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// SendError is a failed or rejected notification send
type SendError struct {
	Channel string
	Reason  string
	Err     error
}

func (e *SendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s send failed: %v", e.Channel, e.Err)
	}
	return fmt.Sprintf("%s send failed: %s", e.Channel, e.Reason)
}

func (e *SendError) Unwrap() error { return e.Err }

// ConfigError reports required configuration that is missing at the point of use
type ConfigError struct {
	Keys []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing configuration: %v", e.Keys)
}
