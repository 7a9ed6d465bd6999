package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_Group(t *testing.T) {
	p := NewParser()

	assert.Equal(t, "GROUP", p.Guess("Movie.2024.1080p.BluRay.x264-GROUP").Group)
	assert.Equal(t, "GROUP", p.Guess("Movie (2024)/Movie.2024.1080p.BluRay.x264-GROUP.mkv").Group)
}

func TestParser_Tags(t *testing.T) {
	p := NewParser()

	g := p.Guess("Movie.1999.DVD.REMUX.DD2.0-GRP.mkv")
	assert.Contains(t, g.Other, "remux")

	g = p.Guess("Movie.1999.DVDRip.x264-GRP.mkv")
	assert.Contains(t, g.Other, "rip")
	assert.NotContains(t, g.Other, "remux")

	g = p.Guess("Trip.1999.DVD.x264-GRP.mkv")
	assert.NotContains(t, g.Other, "rip")
}

func TestParser_ScreenSize(t *testing.T) {
	p := NewParser()
	assert.Equal(t, "1080p", p.Guess("Show.S01E01.1080p.WEB-DL.DDP5.1.H.264-GRP.mkv").ScreenSize)
}

func TestParser_Caches(t *testing.T) {
	p := NewParser()
	first := p.Guess("Movie.2024.720p.HDTV.x264-GRP")
	_, cached := p.cache["Movie.2024.720p.HDTV.x264-GRP"]
	assert.True(t, cached)
	assert.Equal(t, first, p.Guess("Movie.2024.720p.HDTV.x264-GRP"))
}

func TestReleaseStem(t *testing.T) {
	assert.Equal(t, "Movie.2024.1080p-GRP", releaseStem("/movies/Movie (2024)/Movie.2024.1080p-GRP.mkv"))
	assert.Equal(t, "Movie.2024.1080p-GRP.nfo", releaseStem("Movie.2024.1080p-GRP.nfo"))
	assert.Equal(t, "", releaseStem(""))
}

func TestFallbackGroup(t *testing.T) {
	assert.Equal(t, "GRP", fallbackGroup("Movie.2024.1080p.x264-GRP"))
	assert.Equal(t, "", fallbackGroup("Movie.2024.1080p.WEB-DL"))
	assert.Equal(t, "", fallbackGroup("Movie 2024"))
}
