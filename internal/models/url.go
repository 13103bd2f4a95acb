package models

import (
	"errors"
	"strings"
)

var ErrInvalidURL = errors.New("invalid YouTube URL")

// ExtractVideoID pulls the video ID out of a watch URL (v=) or a short
// youtu.be link. The ID itself is not validated.
func ExtractVideoID(url string) (string, error) {
	// Find the v= parameter
	if vIndex := strings.Index(url, "v="); vIndex != -1 {
		id := url[vIndex+2:]

		// If there are other parameters, cut at the &
		if ampIndex := strings.Index(id, "&"); ampIndex != -1 {
			id = id[:ampIndex]
		}
		return id, nil
	}

	if shortIndex := strings.Index(url, "youtu.be/"); shortIndex != -1 {
		id := url[shortIndex+len("youtu.be/"):]
		if qIndex := strings.Index(id, "?"); qIndex != -1 {
			id = id[:qIndex]
		}
		return id, nil
	}

	return "", ErrInvalidURL
}
