// Package release classifies media files from library quality metadata and
// release-name heuristics into tracker-agnostic video types.
package release

import "strconv"

// VideoType is the tracker-agnostic release category of a media file.
type VideoType string

const (
	TypeFullDisc VideoType = "FULL DISC"
	TypeRemux    VideoType = "REMUX"
	TypeEncode   VideoType = "ENCODE"
	TypeWebDL    VideoType = "WEB-DL"
	TypeWebRip   VideoType = "WEBRIP"
	TypeHDTV     VideoType = "HDTV"
	TypeOther    VideoType = "OTHER"
)

func (v VideoType) String() string {
	return string(v)
}

// unknownStr is the label used for values that could not be determined.
const unknownStr = "unknown"

// Classification is the normalized view of a local file used to build
// tracker queries. It is derived once per item and never mutated.
type Classification struct {
	Source     string // lower-cased, e.g. "bluray", "webdl", "dvd"
	Modifier   string // lower-cased, e.g. "remux", "full", "none"
	Resolution int    // frame height in pixels, 0 when unknown
	VideoType  VideoType
}

// ResolutionLabel returns the resolution as printed in logs.
func (c Classification) ResolutionLabel() string {
	if c.Resolution <= 0 {
		return unknownStr
	}
	return strconv.Itoa(c.Resolution)
}

// String renders the classification as "<resolution> <type>".
func (c Classification) String() string {
	return c.ResolutionLabel() + " " + c.VideoType.String()
}
