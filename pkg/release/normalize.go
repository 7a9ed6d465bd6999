package release

import (
	"strconv"
	"strings"
)

// QualityInput is the raw quality data reported by a library manager.
// Source and Modifier may hold several candidate tags.
type QualityInput struct {
	Source     []string
	Modifier   []string
	Resolution int

	// MediaInfoResolution is the probed frame size ("1920x1080"), used
	// when the quality profile carries no resolution (e.g. DVD).
	MediaInfoResolution string
}

// Guesser infers release attributes from a file or release name.
type Guesser interface {
	Guess(name string) Guess
}

// Normalized holds single, lower-cased quality values.
type Normalized struct {
	Source     string
	Modifier   string
	Resolution int
}

// PickSource collapses candidate sources to one value. Only the first
// candidate is considered.
func PickSource(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}

// PickModifier collapses candidate modifiers to one value, preferring
// "remux", then "rip", then the first candidate.
func PickModifier(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	for _, preferred := range []string{"remux", "rip"} {
		for _, c := range candidates {
			if strings.EqualFold(c, preferred) {
				return c
			}
		}
	}
	return candidates[0]
}

var dvdAmbiguous = map[string]bool{"": true, "none": true, "dvd": true}

// Normalize resolves the quality input to single lower-cased values.
// path is the file's relative path and is only parsed when the structured
// data is ambiguous or incomplete. g may be nil to disable guessing.
func Normalize(in QualityInput, path string, g Guesser) Normalized {
	n := Normalized{
		Source:     strings.ToLower(PickSource(in.Source)),
		Modifier:   strings.ToLower(PickModifier(in.Modifier)),
		Resolution: in.Resolution,
	}

	var guessed *Guess
	guess := func() *Guess {
		if guessed == nil && g != nil && path != "" {
			r := g.Guess(path)
			guessed = &r
		}
		return guessed
	}

	// A DVD without modifier cannot be told apart from a DVD encode. Radarr
	// says "none"; Sonarr's modifier is its quality name, so "dvd".
	if n.Source == "dvd" && dvdAmbiguous[n.Modifier] {
		if r := guess(); r != nil {
			n.Modifier = strings.ToLower(PickModifier(r.Other))
		}
	}

	if n.Resolution <= 0 {
		n.Resolution = heightFromDimensions(in.MediaInfoResolution)
	}
	if n.Resolution <= 0 {
		if r := guess(); r != nil {
			n.Resolution = ParseScreenSize(r.ScreenSize)
		}
	}
	if n.Resolution < 0 {
		n.Resolution = 0
	}

	return n
}

// Analyze normalizes the input and classifies the result.
func Analyze(in QualityInput, path string, g Guesser) Classification {
	n := Normalize(in, path, g)
	return Classification{
		Source:     n.Source,
		Modifier:   n.Modifier,
		Resolution: n.Resolution,
		VideoType:  Classify(n.Source, n.Modifier),
	}
}

// ParseScreenSize extracts the digits of a screen-size tag such as
// "1080p" or "576i". Returns 0 when no digits are present.
func ParseScreenSize(tag string) int {
	var b strings.Builder
	for _, r := range tag {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	v, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return v
}

// heightFromDimensions parses "WIDTHxHEIGHT" and returns the height.
func heightFromDimensions(dims string) int {
	_, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(dims)), "x")
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
