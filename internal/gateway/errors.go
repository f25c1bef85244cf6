package gateway

import "errors"

var (
	// ErrNotCacheable is returned when a response to a non-GET request is
	// offered to the cache.
	ErrNotCacheable = errors.New("only GET responses can be cached")

	// ErrUnknownControlMessage is returned for control messages of an
	// unsupported type.
	ErrUnknownControlMessage = errors.New("unknown control message")

	// ErrInstallFailed is returned when the application shell could not be
	// precached. Nothing is written to the static partition in that case.
	ErrInstallFailed = errors.New("gateway install failed")

	// ErrNotInstalled is returned by Activate when no version was installed.
	ErrNotInstalled = errors.New("gateway is not installed")
)
