package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/trumparr/internal/tracker"
	"github.com/vmunix/trumparr/pkg/release"
)

// TrackerQuery is what a tracker would be asked for a release.
type TrackerQuery struct {
	Type        string   `json:"type,omitempty"`
	Resolutions []string `json:"resolutions,omitempty"`
}

// ParseResult describes how a release name is classified.
type ParseResult struct {
	Name       string                  `json:"name"`
	Group      string                  `json:"group,omitempty"`
	Source     string                  `json:"source,omitempty"`
	Other      []string                `json:"other,omitempty"`
	Resolution int                     `json:"resolution,omitempty"`
	VideoType  release.VideoType       `json:"video_type"`
	Trackers   map[string]TrackerQuery `json:"trackers"`
}

var parseCmd = &cobra.Command{
	Use:   "parse [release]",
	Short: "Classify a release name (local, no network)",
	Long: `Parse a release name and show its video type and the search terms each
tracker would receive for it.

Examples:
  trumparr parse "Movie.2024.1080p.BluRay.REMUX.AVC-GROUP"
  trumparr parse --file releases.txt --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("file", "f", "", "Read release names from file (one per line)")
	parseCmd.Flags().Bool("json", false, "Output as JSON")
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	inputFile, _ := cmd.Flags().GetString("file")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	var names []string
	switch {
	case inputFile != "":
		n, err := readReleaseFile(inputFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		names = n
	case len(args) > 0:
		names = args
	default:
		return fmt.Errorf("usage: trumparr parse <release-name> or trumparr parse --file <filename>")
	}

	parser := release.NewParser()
	results := make([]ParseResult, 0, len(names))
	for _, name := range names {
		results = append(results, describeRelease(parser, name))
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printParseResult(out, r)
	}
	return nil
}

// describeRelease classifies a release name the same way a local file with
// no library quality data would be classified.
func describeRelease(g release.Guesser, name string) ParseResult {
	guess := g.Guess(name)

	in := release.QualityInput{
		Modifier:   guess.Other,
		Resolution: release.ParseScreenSize(guess.ScreenSize),
	}
	if guess.Source != "" {
		in.Source = []string{guess.Source}
	}
	c := release.Analyze(in, name, g)

	r := ParseResult{
		Name:       name,
		Group:      guess.Group,
		Source:     c.Source,
		Other:      guess.Other,
		Resolution: c.Resolution,
		VideoType:  c.VideoType,
		Trackers:   make(map[string]TrackerQuery),
	}
	for _, tn := range tracker.Names() {
		adapter, err := tracker.New(tn, tracker.Options{})
		if err != nil {
			continue
		}
		r.Trackers[tn] = TrackerQuery{
			Type:        adapter.TypeToken(c),
			Resolutions: adapter.ResolutionTokens(c.Resolution),
		}
	}
	return r
}

func printParseResult(w io.Writer, r ParseResult) {
	fmt.Fprintf(w, "%s\n", r.Name)
	fmt.Fprintf(w, "  Group:      %s\n", valueOr(r.Group, "-"))
	fmt.Fprintf(w, "  Source:     %s\n", valueOr(r.Source, "-"))
	if len(r.Other) > 0 {
		fmt.Fprintf(w, "  Other:      %s\n", strings.Join(r.Other, ", "))
	}
	fmt.Fprintf(w, "  Quality:    %s\n", release.Classification{Resolution: r.Resolution, VideoType: r.VideoType})
	for _, tn := range tracker.Names() {
		q := r.Trackers[tn]
		fmt.Fprintf(w, "  %-10s  type=%s resolutions=%s\n", tn+":", valueOr(q.Type, "-"), valueOr(strings.Join(q.Resolutions, ","), "-"))
	}
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// readReleaseFile reads release names from a file, one per line.
func readReleaseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			names = append(names, line)
		}
	}
	return names, scanner.Err()
}
