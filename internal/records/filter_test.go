package records_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vinylvault/internal/domain"
	"vinylvault/internal/records"
)

func punkSingle() domain.CollectionItem {
	return domain.CollectionItem{
		ID: 1,
		BasicInformation: domain.ReleaseInfo{
			ID:      1,
			Title:   "God Save The Queen",
			Year:    1977,
			Artists: []domain.Artist{{ID: 10, Name: "Sex Pistols"}},
			Labels:  []domain.Label{{ID: 20, Name: "Virgin"}},
			Genres:  []string{"Rock", "Punk"},
		},
	}
}

func TestFilterDecade(t *testing.T) {
	t.Parallel()

	items := []domain.CollectionItem{punkSingle()}

	seventies := records.FilterAndSort(items, records.Criteria{Decade: 1970}, nil, nil)
	require.Len(t, seventies, 1)

	eighties := records.FilterAndSort(items, records.Criteria{Decade: 1980}, nil, nil)
	require.Empty(t, eighties)

	t.Run("item without a year never matches a decade", func(t *testing.T) {
		t.Parallel()
		noYear := punkSingle()
		noYear.BasicInformation.Year = 0

		matched := records.FilterAndSort([]domain.CollectionItem{noYear}, records.Criteria{Decade: 1970}, nil, nil)
		require.Empty(t, matched)

		all := records.FilterAndSort([]domain.CollectionItem{noYear}, records.Criteria{}, nil, nil)
		require.Len(t, all, 1)
	})
}

func TestFilterExactYear(t *testing.T) {
	t.Parallel()

	items := []domain.CollectionItem{punkSingle()}

	require.Len(t, records.FilterAndSort(items, records.Criteria{Year: "1977"}, nil, nil), 1)
	require.Empty(t, records.FilterAndSort(items, records.Criteria{Year: "1978"}, nil, nil))

	noYear := punkSingle()
	noYear.BasicInformation.Year = 0
	require.Empty(t, records.FilterAndSort([]domain.CollectionItem{noYear}, records.Criteria{Year: "1977"}, nil, nil))
}

func TestFilterSearch(t *testing.T) {
	t.Parallel()

	items := []domain.CollectionItem{punkSingle()}

	cases := []struct {
		search  string
		matches bool
	}{
		{search: "", matches: true},
		{search: "god save", matches: true},
		{search: "SEX PISTOLS", matches: true},
		{search: "virgin", matches: true},
		{search: "clash", matches: false},
	}

	for _, c := range cases {
		matched := records.FilterAndSort(items, records.Criteria{Search: c.search}, nil, nil)
		if c.matches {
			assert.Len(t, matched, 1, "search %q", c.search)
		} else {
			assert.Empty(t, matched, "search %q", c.search)
		}
	}
}

func TestFilterGenre(t *testing.T) {
	t.Parallel()

	items := []domain.CollectionItem{punkSingle()}

	require.Len(t, records.FilterAndSort(items, records.Criteria{Genre: "punk"}, nil, nil), 1)
	require.Len(t, records.FilterAndSort(items, records.Criteria{Genre: "Rock"}, nil, nil), 1)
	require.Empty(t, records.FilterAndSort(items, records.Criteria{Genre: "Jazz"}, nil, nil))
}

func TestGenres(t *testing.T) {
	t.Parallel()

	first := punkSingle()
	second := punkSingle()
	second.BasicInformation.Genres = []string{"Jazz", "Rock"}

	genres := records.Genres([]domain.CollectionItem{first, second})
	require.Equal(t, []string{"Jazz", "Punk", "Rock"}, genres)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in       string
		expected string
	}{
		{in: "The Stone Roses", expected: "thestoneroses"},
		{in: "Abbey Road (Remastered)", expected: "abbeyroadremastered"},
		{in: "AC/DC", expected: "acdc"},
		{in: "  ", expected: ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, records.Normalize(c.in), "input %q", c.in)
	}
}

func TestFilterCombined(t *testing.T) {
	t.Parallel()

	punk := punkSingle()
	jazz := domain.CollectionItem{
		ID:        2,
		DateAdded: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		BasicInformation: domain.ReleaseInfo{
			ID:      2,
			Title:   "Blue Train",
			Year:    1957,
			Artists: []domain.Artist{{ID: 11, Name: "John Coltrane"}},
			Genres:  []string{"Jazz"},
		},
	}

	matched := records.FilterAndSort(
		[]domain.CollectionItem{punk, jazz},
		records.Criteria{Search: "train", Genre: "Jazz", Decade: 1950},
		nil, nil,
	)
	require.Len(t, matched, 1)
	require.Equal(t, "Blue Train", matched[0].BasicInformation.Title)
}
