package platform

import "fmt"

// Canonical media error codes. Browser MediaError codes and headless
// failures are mapped onto these so that listeners see consistent values.
const (
	// ErrCodeAborted indicates the fetch was aborted by the user agent.
	ErrCodeAborted = "aborted"

	// ErrCodeSourceError indicates the media source could not be loaded or
	// is not supported. Covers network failures, invalid URLs and
	// unsupported formats.
	ErrCodeSourceError = "source_error"

	// ErrCodeDecoderError indicates the media could not be decoded.
	ErrCodeDecoderError = "decoder_error"

	// ErrCodePlaybackFailed indicates a failure that does not fit a more
	// specific category.
	ErrCodePlaybackFailed = "playback_failed"
)

// MediaError describes the failure behind an "error" event.
type MediaError struct {
	Code    string
	Message string
}

func (e *MediaError) Error() string {
	if e.Message == "" {
		return "media error: " + e.Code
	}
	return fmt.Sprintf("media error: %s: %s", e.Code, e.Message)
}
