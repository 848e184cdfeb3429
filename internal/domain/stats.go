package domain

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

type CountedLabel struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// CollectionStats aggregates a collection for the stats view. The
// top-N lists are truncated the way the stats page displays them.
type CollectionStats struct {
	TotalItems int            `json:"total_items"`
	Genres     []CountedLabel `json:"genres"`
	Decades    []CountedLabel `json:"decades"`
	Years      []YearCount    `json:"years"`
	Formats    []CountedLabel `json:"formats"`
	Styles     []CountedLabel `json:"styles"`
	Labels     []CountedLabel `json:"labels"`
	Artists    []CountedLabel `json:"artists"`
}

const statsTopN = 10

// ComputeCollectionStats derives all aggregate counts from the item
// list. Pure; safe to call on every request.
func ComputeCollectionStats(items []CollectionItem) CollectionStats {
	genres := map[string]int{}
	decades := map[string]int{}
	years := map[int]int{}
	formats := map[string]int{}
	styles := map[string]int{}
	labels := map[string]int{}
	artists := map[string]int{}

	for _, item := range items {
		info := item.BasicInformation

		for _, genre := range info.Genres {
			genres[genre]++
		}
		for _, style := range info.Styles {
			styles[style]++
		}

		if info.Year != 0 {
			decades[fmt.Sprintf("%ds", info.Year/10*10)]++
		} else {
			decades["Unknown"]++
		}
		if info.Year >= 1950 {
			years[info.Year]++
		}

		if len(info.Formats) > 0 {
			formats[foldFormatName(info.Formats[0])]++
		}
		if len(info.Labels) > 0 && info.Labels[0].Name != "" {
			labels[info.Labels[0].Name]++
		}
		if artist := info.PrimaryArtist().Name; artist != "" && artist != "Various" {
			artists[artist]++
		}
	}

	return CollectionStats{
		TotalItems: len(items),
		Genres:     topCounts(genres, statsTopN),
		Decades:    decadesDescending(decades),
		Years:      yearsAscending(years),
		Formats:    topCounts(formats, 0),
		Styles:     topCounts(styles, statsTopN),
		Labels:     topCounts(labels, statsTopN),
		Artists:    topCounts(artists, statsTopN),
	}
}

// foldFormatName reduces Discogs format descriptions to the handful of
// buckets the stats view charts.
func foldFormatName(format Format) string {
	switch {
	case slices.Contains(format.Descriptions, "LP"):
		return "LP"
	case slices.Contains(format.Descriptions, "Single"):
		return "Single"
	case slices.Contains(format.Descriptions, "EP"):
		return "EP"
	case slices.Contains(format.Descriptions, "Album"):
		return "LP"
	case format.Name != "":
		return format.Name
	default:
		return "Other"
	}
}

// topCounts sorts by count descending and truncates to n entries when
// n > 0. Equal counts order alphabetically so the output is stable.
func topCounts(counts map[string]int, n int) []CountedLabel {
	out := make([]CountedLabel, 0, len(counts))
	for label, count := range counts {
		out = append(out, CountedLabel{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// decadesDescending orders newest decade first, with Unknown last.
func decadesDescending(counts map[string]int) []CountedLabel {
	out := make([]CountedLabel, 0, len(counts))
	for label, count := range counts {
		out = append(out, CountedLabel{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Label == "Unknown" {
			return false
		}
		if out[j].Label == "Unknown" {
			return true
		}
		return strings.Compare(out[i].Label, out[j].Label) > 0
	})
	return out
}

func yearsAscending(counts map[int]int) []YearCount {
	out := make([]YearCount, 0, len(counts))
	for year, count := range counts {
		out = append(out, YearCount{Year: year, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Year < out[j].Year
	})
	return out
}
