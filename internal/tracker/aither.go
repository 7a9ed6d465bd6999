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

// DefaultAitherURL is the public Aither endpoint.
const DefaultAitherURL = "https://aither.cc"

var aitherTypes = map[release.VideoType]string{
	release.TypeFullDisc: "1",
	release.TypeRemux:    "2",
	release.TypeEncode:   "3",
	release.TypeWebDL:    "4",
	release.TypeWebRip:   "5",
	release.TypeHDTV:     "6",
}

// Interlaced and progressive variants share a height, so both are searched.
var aitherResolutions = map[int][]string{
	4320: {"1"},
	2160: {"2"},
	1080: {"3", "4"},
	720:  {"5"},
	576:  {"6", "7"},
	480:  {"8", "9"},
	8640: {"10"},
}

// Aither is the adapter for the UNIT3D-based Aither tracker.
type Aither struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewAither creates an Aither adapter.
func NewAither(opts Options) *Aither {
	base := opts.BaseURL
	if base == "" {
		base = DefaultAitherURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &Aither{
		baseURL:    strings.TrimSuffix(base, "/"),
		apiKey:     opts.APIKey,
		httpClient: client,
	}
}

func (a *Aither) Name() string { return "aither" }

func (a *Aither) CategoryID(kind MediaKind) string {
	switch kind {
	case KindMovie:
		return "1"
	case KindTV:
		return "2"
	default:
		return ""
	}
}

func (a *Aither) ResolutionTokens(height int) []string {
	return aitherResolutions[height]
}

// TypeToken maps the video type to an Aither type id. OTHER is never
// sent, so such files are searched without a type filter.
func (a *Aither) TypeToken(c release.Classification) string {
	return aitherTypes[c.VideoType]
}

func (a *Aither) BuildQuery(ctx context.Context, p SearchParams) (*http.Request, error) {
	q := url.Values{}
	q.Set("categories[0]", a.CategoryID(p.Kind))

	switch p.Kind {
	case KindTV:
		if p.IDs.TVDB > 0 {
			q.Set("tvdbId", strconv.FormatInt(p.IDs.TVDB, 10))
		} else if p.IDs.TMDB > 0 {
			q.Set("tmdbId", strconv.FormatInt(p.IDs.TMDB, 10))
		}
		if p.Season > 0 {
			q.Set("seasonNumber", strconv.Itoa(p.Season))
		}
	default:
		if p.IDs.TMDB > 0 {
			q.Set("tmdbId", strconv.FormatInt(p.IDs.TMDB, 10))
		}
	}

	for i, r := range p.Resolutions {
		q.Set(fmt.Sprintf("resolutions[%d]", i), r)
	}
	if p.Type != "" {
		q.Set("types[0]", p.Type)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/api/torrents/filter?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("aither: build query: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

type aitherTorrent struct {
	Attributes struct {
		Name string `json:"name"`
	} `json:"attributes"`
}

type aitherSearchResponse struct {
	Data []aitherTorrent `json:"data"`
}

func (a *Aither) ExecuteSearch(ctx context.Context, req *http.Request) ([]Candidate, error) {
	var resp aitherSearchResponse
	if err := doJSON(a.httpClient, req.WithContext(ctx), a.apiKey, &resp); err != nil {
		return nil, err
	}

	out := make([]Candidate, 0, len(resp.Data))
	for _, t := range resp.Data {
		out = append(out, Candidate{Name: t.Attributes.Name})
	}
	return out, nil
}

type aitherBlacklistResponse struct {
	Data []struct {
		Name       string `json:"name"`
		Attributes struct {
			Name string `json:"name"`
		} `json:"attributes"`
	} `json:"data"`
}

// FetchBannedGroups pulls the live release group blacklist.
func (a *Aither) FetchBannedGroups(ctx context.Context) ([]string, error) {
	u := a.baseURL + "/api/blacklists/releasegroups?" + url.Values{"api_token": {a.apiKey}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("aither: build blacklist request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var resp aitherBlacklistResponse
	if err := doJSON(a.httpClient, req, a.apiKey, &resp); err != nil {
		return nil, fmt.Errorf("aither: banned groups: %w", err)
	}

	groups := make([]string, 0, len(resp.Data))
	for _, d := range resp.Data {
		name := d.Name
		if name == "" {
			name = d.Attributes.Name
		}
		if name != "" {
			groups = append(groups, name)
		}
	}
	return groups, nil
}
