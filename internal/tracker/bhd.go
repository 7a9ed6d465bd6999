package tracker

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vmunix/trumparr/pkg/release"
)

// DefaultBHDURL is the public Beyond-HD endpoint.
const DefaultBHDURL = "https://beyond-hd.me"

// DefaultBHDBannedGroups is used when no list is configured. Beyond-HD
// exposes no blacklist API.
var DefaultBHDBannedGroups = []string{
	"Sicario", "TOMMY", "x0r", "nikt0", "FGT", "d3g", "MeGusta", "YIFY",
	"tigole", "TEKNO3D", "C4K", "RARBG", "4K4U", "EASports", "ReaLHD",
	"Telly", "AOC", "WKS", "SasukeducK",
}

var bhdResolutions = map[int][]string{
	480:  {"480p"},
	540:  {"540p"},
	576:  {"576i", "576p"},
	720:  {"720p"},
	1080: {"1080i", "1080p"},
	2160: {"2160p"},
}

var bhdSources = map[string]string{
	"bluray":   "Blu-ray",
	"blu-ray":  "Blu-ray",
	"hddvd":    "HD-DVD",
	"hd dvd":   "HD-DVD",
	"web":      "WEB",
	"webdl":    "WEB",
	"web-dl":   "WEB",
	"webrip":   "WEB",
	"hdtv":     "HDTV",
	"uhdtv":    "HDTV",
	"dvd":      "DVD",
	"ntsc":     "DVD",
	"ntsc dvd": "DVD",
	"pal":      "DVD",
	"pal dvd":  "DVD",
}

// BHD is the adapter for Beyond-HD.
type BHD struct {
	baseURL    string
	apiKey     string
	banned     []string
	httpClient *http.Client
}

// NewBHD creates a Beyond-HD adapter. A nil opts.BannedGroups selects
// DefaultBHDBannedGroups.
func NewBHD(opts Options) *BHD {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBHDURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	banned := opts.BannedGroups
	if banned == nil {
		banned = DefaultBHDBannedGroups
	}
	return &BHD{
		baseURL:    strings.TrimSuffix(base, "/"),
		apiKey:     opts.APIKey,
		banned:     append([]string(nil), banned...),
		httpClient: client,
	}
}

func (b *BHD) Name() string { return "bhd" }

func (b *BHD) CategoryID(kind MediaKind) string {
	switch kind {
	case KindMovie:
		return "1"
	case KindTV:
		return "2"
	default:
		return ""
	}
}

func (b *BHD) ResolutionTokens(height int) []string {
	return bhdResolutions[height]
}

// TypeToken names the remux type. Other video types are searched by
// resolution and source instead.
func (b *BHD) TypeToken(c release.Classification) string {
	if c.VideoType != release.TypeRemux {
		return ""
	}
	switch {
	case c.Source == "dvd":
		return "DVD Remux"
	case c.Resolution >= 2160:
		return "UHD Remux"
	default:
		return "BD Remux"
	}
}

func (b *BHD) BuildQuery(ctx context.Context, p SearchParams) (*http.Request, error) {
	form := url.Values{}
	form.Set("action", "search")
	form.Set("categories", b.CategoryID(p.Kind))

	prefix := "movie"
	if p.Kind == KindTV {
		prefix = "tv"
	}
	if p.IDs.TMDB > 0 {
		form.Set("tmdb_id", prefix+"/"+strconv.FormatInt(p.IDs.TMDB, 10))
	}
	if p.Kind == KindTV && p.IDs.IMDB != "" {
		form.Set("imdb_id", p.IDs.IMDB)
	}

	if p.Type != "" {
		form.Set("types", p.Type)
	} else {
		if len(p.Resolutions) > 0 {
			form.Set("types", strings.Join(p.Resolutions, ","))
		}
		if src, ok := bhdSource(p); ok {
			form.Set("sources", src)
		}
	}

	if p.Season > 0 {
		form.Set("search", fmt.Sprintf("S%02d", p.Season))
	}

	u := b.baseURL + "/api/torrents/" + url.PathEscape(b.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("bhd: build query: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// bhdSource maps the library source, falling back to the one guessed from
// the file name for values like Sonarr's "television".
func bhdSource(p SearchParams) (string, bool) {
	if src, ok := bhdSources[strings.ToLower(p.Source)]; ok {
		return src, true
	}
	src, ok := bhdSources[strings.ToLower(p.GuessedSource)]
	return src, ok
}

type bhdSearchResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       *bool  `json:"success"`
	Results       []struct {
		Name string `json:"name"`
	} `json:"results"`
}

func (b *BHD) ExecuteSearch(ctx context.Context, req *http.Request) ([]Candidate, error) {
	var resp bhdSearchResponse
	if err := doJSON(b.httpClient, req.WithContext(ctx), b.apiKey, &resp); err != nil {
		return nil, err
	}
	if resp.Success != nil && !*resp.Success {
		return nil, fmt.Errorf("%w: bhd: %s", ErrTransport, redact(resp.StatusMessage, b.apiKey))
	}

	out := make([]Candidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		out = append(out, Candidate{Name: r.Name})
	}
	return out, nil
}

// FetchBannedGroups returns the configured static list.
func (b *BHD) FetchBannedGroups(context.Context) ([]string, error) {
	return append([]string(nil), b.banned...), nil
}
