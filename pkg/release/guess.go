package release

import (
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/moistari/rls"
)

// Guess contains the attributes inferred from a release or file name.
type Guess struct {
	Title      string
	Group      string
	Source     string   // lower-cased as reported by the parser, e.g. "bluray"
	Other      []string // lower-cased tags such as "remux", "rip", "proper"
	ScreenSize string   // e.g. "1080p", empty when unknown
}

var videoExtensions = map[string]bool{
	".mkv": true, ".mp4": true, ".avi": true, ".m2ts": true,
	".ts": true, ".iso": true, ".wmv": true, ".m4v": true,
}

var (
	remuxPattern      = regexp.MustCompile(`(?i)remux`)
	ripPattern        = regexp.MustCompile(`(?i)(?:^|[^a-z])(?:dvd|bd|br|web|hd|tv)?rip(?:[^a-z]|$)`)
	screenSizePattern = regexp.MustCompile(`(?i)(?:^|[^a-z0-9])(\d{3,4}[pi])(?:[^a-z0-9]|$)`)
	groupPattern      = regexp.MustCompile(`-([A-Za-z0-9]+)$`)
)

// tokens that trail a hyphen without being a group name
var notGroups = map[string]bool{"dl": true, "rip": true, "ray": true, "dvd": true}

// Parser guesses release attributes using rls, caching results by name.
// Safe for concurrent use.
type Parser struct {
	mu    sync.RWMutex
	cache map[string]Guess
}

// NewParser creates a new caching parser.
func NewParser() *Parser {
	return &Parser{cache: make(map[string]Guess)}
}

// Guess parses name, which may be a bare release name or a relative path.
func (p *Parser) Guess(name string) Guess {
	p.mu.RLock()
	g, ok := p.cache[name]
	p.mu.RUnlock()
	if ok {
		return g
	}

	g = guess(name)

	p.mu.Lock()
	p.cache[name] = g
	p.mu.Unlock()
	return g
}

func guess(name string) Guess {
	stem := releaseStem(name)
	r := rls.ParseString(stem)

	g := Guess{
		Title:      r.Title,
		Group:      strings.TrimSpace(r.Group),
		Source:     strings.ToLower(r.Source),
		ScreenSize: strings.ToLower(r.Resolution),
	}

	seen := make(map[string]bool)
	addOther := func(tag string) {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		g.Other = append(g.Other, tag)
	}
	for _, o := range r.Other {
		addOther(o)
	}
	if remuxPattern.MatchString(stem) {
		addOther("remux")
	}
	if ripPattern.MatchString(stem) {
		addOther("rip")
	}

	if g.ScreenSize == "" {
		if m := screenSizePattern.FindStringSubmatch(stem); m != nil {
			g.ScreenSize = strings.ToLower(m[1])
		}
	}
	if g.Group == "" {
		g.Group = fallbackGroup(stem)
	}

	return g
}

// releaseStem strips directories and a trailing video extension.
func releaseStem(name string) string {
	base := filepath.Base(filepath.ToSlash(strings.TrimSpace(name)))
	if base == "." || base == "/" {
		return ""
	}
	if ext := filepath.Ext(base); videoExtensions[strings.ToLower(ext)] {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

func fallbackGroup(stem string) string {
	m := groupPattern.FindStringSubmatch(stem)
	if m == nil || notGroups[strings.ToLower(m[1])] {
		return ""
	}
	return m[1]
}
