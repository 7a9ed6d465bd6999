package release

import "strings"

// Classify maps a normalized (source, modifier) pair to a VideoType.
// Rules are applied in order and the first match wins. Radarr reports
// discrete sources ("bluray", "webdl") while Sonarr folds most of the
// information into the modifier, so both shapes are handled here.
func Classify(source, modifier string) VideoType {
	source = strings.ToLower(source)
	modifier = strings.ToLower(modifier)

	switch source {
	case "bluray", "dvd":
		switch modifier {
		case "remux":
			return TypeRemux
		case "full":
			return TypeFullDisc
		default:
			return TypeEncode
		}
	case "webdl", "web-dl":
		return TypeWebDL
	case "webrip", "web-rip":
		return TypeWebRip
	case "hdtv":
		return TypeHDTV
	}

	switch {
	case source == "web" && strings.Contains(modifier, "webdl"):
		return TypeWebDL
	case strings.Contains(modifier, "remux"):
		return TypeRemux
	case strings.Contains(modifier, "hdtv"):
		return TypeHDTV
	case strings.Contains(modifier, "bluray"):
		// remux already matched above
		return TypeEncode
	default:
		return TypeOther
	}
}
