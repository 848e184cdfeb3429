package records

import (
	"slices"
	"strconv"
	"strings"

	"vinylvault/internal/domain"
)

// Criteria are the active filter and sort selections. Zero values mean
// "no filter".
type Criteria struct {
	Search string
	Genre  string
	Decade int    // decade start year, e.g. 1970
	Year   string // exact year as typed
	Sort   SortKey
}

func matchesSearch(info domain.ReleaseInfo, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)

	if strings.Contains(strings.ToLower(info.Title), term) {
		return true
	}
	for _, artist := range info.Artists {
		if strings.Contains(strings.ToLower(artist.Name), term) {
			return true
		}
	}
	for _, label := range info.Labels {
		if strings.Contains(strings.ToLower(label.Name), term) {
			return true
		}
	}
	return false
}

func matchesGenre(info domain.ReleaseInfo, genre string) bool {
	if genre == "" {
		return true
	}
	genre = strings.ToLower(genre)
	for _, g := range info.Genres {
		if strings.Contains(strings.ToLower(g), genre) {
			return true
		}
	}
	return false
}

func matches(item domain.CollectionItem, criteria Criteria) bool {
	info := item.BasicInformation

	if !matchesSearch(info, criteria.Search) {
		return false
	}
	if !matchesGenre(info, criteria.Genre) {
		return false
	}
	if criteria.Decade != 0 {
		// An item without a year never matches a decade
		if info.Year < criteria.Decade || info.Year >= criteria.Decade+10 {
			return false
		}
	}
	if criteria.Year != "" {
		if strconv.Itoa(info.Year) != criteria.Year {
			return false
		}
	}
	return true
}

// FilterAndSort returns the items matching criteria, ordered by the
// selected sort key. It only reads the already-resolved portion of the
// artist-type and master-year caches and never blocks; unresolved
// artists sort as bands, unresolved masters fall back to the pressing
// year.
func FilterAndSort(
	items []domain.CollectionItem,
	criteria Criteria,
	artistTypes map[int64]domain.ArtistType,
	masterYears map[int64]domain.MasterYear,
) []domain.CollectionItem {
	filtered := make([]domain.CollectionItem, 0, len(items))
	for _, item := range items {
		if matches(item, criteria) {
			filtered = append(filtered, item)
		}
	}

	sortItems(filtered, criteria.Sort, artistTypes, masterYears)
	return filtered
}

// Genres returns the distinct genre tags across items, sorted, for
// populating the genre filter.
func Genres(items []domain.CollectionItem) []string {
	seen := make(map[string]struct{})
	var genres []string
	for _, item := range items {
		for _, genre := range item.BasicInformation.Genres {
			if _, ok := seen[genre]; ok {
				continue
			}
			seen[genre] = struct{}{}
			genres = append(genres, genre)
		}
	}
	slices.Sort(genres)
	return genres
}
