package media

import "fmt"

// FitMode is the CSS object-fit applied to the media element.
type FitMode string

const (
	// FitContain letterboxes the media inside its box.
	FitContain FitMode = "contain"
	// FitCover scales the media to cover its box, cropping the overflow.
	FitCover FitMode = "cover"
)

// ParseFitMode validates a fit mode name. An empty name means FitContain.
func ParseFitMode(s string) (FitMode, error) {
	switch FitMode(s) {
	case "", FitContain:
		return FitContain, nil
	case FitCover:
		return FitCover, nil
	default:
		return "", fmt.Errorf("media: unsupported fit mode %q", s)
	}
}
