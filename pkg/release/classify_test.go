package release

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		modifier string
		want     VideoType
	}{
		{"bluray remux", "bluray", "remux", TypeRemux},
		{"bluray full", "bluray", "full", TypeFullDisc},
		{"bluray encode", "bluray", "none", TypeEncode},
		{"bluray empty modifier", "bluray", "", TypeEncode},
		{"dvd remux", "dvd", "remux", TypeRemux},
		{"dvd full", "dvd", "full", TypeFullDisc},
		{"dvd rip", "dvd", "rip", TypeEncode},
		{"webdl", "webdl", "none", TypeWebDL},
		{"web-dl", "web-dl", "", TypeWebDL},
		{"webrip", "webrip", "none", TypeWebRip},
		{"web-rip", "web-rip", "", TypeWebRip},
		{"hdtv", "hdtv", "none", TypeHDTV},
		{"sonarr web webdl", "web", "webdl", TypeWebDL},
		{"sonarr web webrip", "web", "webrip", TypeOther},
		{"sonarr bluray remux modifier", "television", "blurayremux", TypeRemux},
		{"sonarr hdtv modifier", "television", "hdtv720p", TypeHDTV},
		{"sonarr bluray modifier", "television", "bluray1080p", TypeEncode},
		{"case insensitive", "BluRay", "REMUX", TypeRemux},
		{"unknown", "cam", "", TypeOther},
		{"empty", "", "", TypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.source, tt.modifier); got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.source, tt.modifier, got, tt.want)
			}
		})
	}
}

func TestClassification_String(t *testing.T) {
	c := Classification{Resolution: 1080, VideoType: TypeWebDL}
	if got := c.String(); got != "1080 WEB-DL" {
		t.Errorf("String() = %q, want %q", got, "1080 WEB-DL")
	}

	c = Classification{VideoType: TypeOther}
	if got := c.String(); got != "unknown OTHER" {
		t.Errorf("String() = %q, want %q", got, "unknown OTHER")
	}
}
