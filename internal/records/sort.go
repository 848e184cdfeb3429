package records

import (
	"math"
	"regexp"
	"slices"
	"strings"

	"vinylvault/internal/domain"
)

type SortKey string

const (
	SortAdded        SortKey = "added"
	SortArtist       SortKey = "artist"
	SortArtistDesc   SortKey = "artist-reverse"
	SortTitle        SortKey = "title"
	SortYear         SortKey = "year"
	SortOriginalYear SortKey = "original-year"
)

// Discogs disambiguates same-named artists with a numeric suffix,
// e.g. "Phil Collins (2)".
var numberSuffixRegex = regexp.MustCompile(`\s*\(\d+\)\s*$`)

// SortName derives the key used for artist ordering. People sort
// surname-first ("clapton, eric"), bands sort by name with a leading
// "The " stripped ("stone roses"). Use band for unresolved artists.
func SortName(name string, kind domain.ArtistKind) string {
	cleaned := numberSuffixRegex.ReplaceAllString(name, "")
	cleaned = strings.TrimPrefix(cleaned, "The ")
	cleaned = strings.TrimSpace(cleaned)

	if kind == domain.ArtistKindPerson {
		words := strings.Fields(cleaned)
		if len(words) >= 2 {
			last := words[len(words)-1]
			rest := strings.Join(words[:len(words)-1], " ")
			cleaned = last + ", " + rest
		}
	}

	return strings.ToLower(cleaned)
}

// OriginalYear resolves the original release year of an item: the
// master release's year when the cache knows it, else the item's own
// pressing year, else 0.
func OriginalYear(item domain.CollectionItem, masterYears map[int64]domain.MasterYear) int {
	if item.BasicInformation.MasterID > 0 {
		if year, ok := masterYears[item.BasicInformation.MasterID]; ok && year.Known && year.Year != 0 {
			return year.Year
		}
	}
	return item.BasicInformation.Year
}

func artistKind(item domain.CollectionItem, artistTypes map[int64]domain.ArtistType) domain.ArtistKind {
	artist := item.BasicInformation.PrimaryArtist()
	if artistType, ok := artistTypes[artist.ID]; ok {
		return artistType.Kind
	}
	return domain.ArtistKindBand
}

func sortItems(items []domain.CollectionItem, key SortKey, artistTypes map[int64]domain.ArtistType, masterYears map[int64]domain.MasterYear) {
	compareArtist := func(a, b domain.CollectionItem) int {
		nameA := SortName(a.BasicInformation.PrimaryArtist().Name, artistKind(a, artistTypes))
		nameB := SortName(b.BasicInformation.PrimaryArtist().Name, artistKind(b, artistTypes))
		if c := strings.Compare(nameA, nameB); c != 0 {
			return c
		}

		// Same artist: oldest original release first, unknown last
		yearA := OriginalYear(a, masterYears)
		yearB := OriginalYear(b, masterYears)
		if yearA == 0 {
			yearA = math.MaxInt
		}
		if yearB == 0 {
			yearB = math.MaxInt
		}
		return yearA - yearB
	}

	switch key {
	case SortArtist:
		slices.SortStableFunc(items, compareArtist)
	case SortArtistDesc:
		slices.SortStableFunc(items, func(a, b domain.CollectionItem) int {
			return -compareArtist(a, b)
		})
	case SortTitle:
		slices.SortStableFunc(items, func(a, b domain.CollectionItem) int {
			return strings.Compare(
				strings.ToLower(a.BasicInformation.Title),
				strings.ToLower(b.BasicInformation.Title),
			)
		})
	case SortYear:
		slices.SortStableFunc(items, func(a, b domain.CollectionItem) int {
			return b.BasicInformation.Year - a.BasicInformation.Year
		})
	case SortOriginalYear:
		slices.SortStableFunc(items, func(a, b domain.CollectionItem) int {
			return OriginalYear(b, masterYears) - OriginalYear(a, masterYears)
		})
	default:
		// Newest additions first
		slices.SortStableFunc(items, func(a, b domain.CollectionItem) int {
			return b.DateAdded.Compare(a.DateAdded)
		})
	}
}
