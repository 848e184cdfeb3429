package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vinylvault/internal/domain"
)

func TestClassifyArtist(t *testing.T) {
	t.Parallel()

	t.Run("artist with members is a band", func(t *testing.T) {
		t.Parallel()
		artistType := domain.ClassifyArtist(domain.ArtistProfile{
			Name:    "The Stone Roses",
			Members: []string{"Ian Brown", "John Squire", "Mani", "Reni"},
		})
		require.Equal(t, domain.ArtistType{Kind: domain.ArtistKindBand}, artistType)
	})

	t.Run("artist with realname is a person", func(t *testing.T) {
		t.Parallel()
		artistType := domain.ClassifyArtist(domain.ArtistProfile{
			Name:     "Eric Clapton",
			Realname: "Eric Patrick Clapton",
		})
		require.Equal(t, domain.ArtistType{
			Kind:     domain.ArtistKindPerson,
			Realname: "Eric Patrick Clapton",
		}, artistType)
	})

	t.Run("artist with group memberships is a person", func(t *testing.T) {
		t.Parallel()
		artistType := domain.ClassifyArtist(domain.ArtistProfile{
			Name:   "Phil Collins",
			Groups: []string{"Genesis", "Brand X"},
		})
		require.Equal(t, domain.ArtistKindPerson, artistType.Kind)
	})

	t.Run("members win over realname", func(t *testing.T) {
		t.Parallel()
		artistType := domain.ClassifyArtist(domain.ArtistProfile{
			Name:     "Air",
			Realname: "Air (French Band)",
			Members:  []string{"Nicolas Godin", "Jean-Benoît Dunckel"},
		})
		require.Equal(t, domain.ArtistKindBand, artistType.Kind)
	})

	t.Run("bare profile defaults to band", func(t *testing.T) {
		t.Parallel()
		artistType := domain.ClassifyArtist(domain.ArtistProfile{Name: "Unknown Artist"})
		require.Equal(t, domain.ArtistKindBand, artistType.Kind)
	})
}

func TestAbbreviateCondition(t *testing.T) {
	t.Parallel()

	require.Equal(t, "NM", domain.AbbreviateCondition("Near Mint (NM or M-)"))
	require.Equal(t, "VG+", domain.AbbreviateCondition("Very Good Plus (VG+)"))
	require.Equal(t, "Generic", domain.AbbreviateCondition("Generic"))
}
