package domain

type ArtistKind string

const (
	ArtistKindPerson ArtistKind = "person"
	ArtistKindBand   ArtistKind = "band"
)

// ArtistType is the derived classification of an artist, used to pick a
// sort-name transform. Realname is only set for persons, when Discogs
// knows it.
type ArtistType struct {
	Kind     ArtistKind `json:"type"`
	Realname string     `json:"realname,omitempty"`
}

// ArtistProfile is the subset of a Discogs artist page needed to
// classify the artist.
type ArtistProfile struct {
	ID       int64
	Name     string
	Realname string
	Members  []string
	Groups   []string
}

// ClassifyArtist derives person/band from an artist profile.
//
// An artist with members is a group. An artist with a real name or with
// group memberships is a person. Anything else defaults to band, which
// keeps the name-based sort stable for unclassifiable artists.
func ClassifyArtist(profile ArtistProfile) ArtistType {
	if len(profile.Members) > 0 {
		return ArtistType{Kind: ArtistKindBand}
	}
	if profile.Realname != "" || len(profile.Groups) > 0 {
		return ArtistType{Kind: ArtistKindPerson, Realname: profile.Realname}
	}
	return ArtistType{Kind: ArtistKindBand}
}

// MasterYear is the resolved original release year of a master release.
// A cached value with Known=false means the master was looked up and
// has no year, which must not trigger another lookup.
type MasterYear struct {
	Year  int  `json:"year,omitempty"`
	Known bool `json:"known"`
}

func KnownMasterYear(year int) MasterYear {
	return MasterYear{Year: year, Known: true}
}

// ReleaseExtras are per-release attributes not present in bulk list
// responses.
type ReleaseExtras struct {
	Country     string   `json:"country,omitempty"`
	LowestPrice *float64 `json:"lowestPrice,omitempty"`
}

type Money struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// PriceStats is the marketplace price summary for a release.
type PriceStats struct {
	LowestPrice *Money `json:"lowest_price"`
	NumForSale  int    `json:"num_for_sale"`
}
