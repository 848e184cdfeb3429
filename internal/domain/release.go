package domain

import "time"

type Artist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Label struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	CatNo string `json:"catno"`
}

type Format struct {
	Name         string   `json:"name"`
	Qty          string   `json:"qty"`
	Text         string   `json:"text,omitempty"`
	Descriptions []string `json:"descriptions"`
}

// ReleaseInfo is the per-release payload shared by collection, wantlist
// and search results.
type ReleaseInfo struct {
	ID         int64    `json:"id"`
	MasterID   int64    `json:"master_id"`
	Title      string   `json:"title"`
	Year       int      `json:"year"`
	Thumb      string   `json:"thumb"`
	CoverImage string   `json:"cover_image"`
	Artists    []Artist `json:"artists"`
	Formats    []Format `json:"formats"`
	Labels     []Label  `json:"labels"`
	Genres     []string `json:"genres"`
	Styles     []string `json:"styles"`
}

type CollectionItem struct {
	ID               int64       `json:"id"`
	InstanceID       int64       `json:"instance_id"`
	DateAdded        time.Time   `json:"date_added"`
	Rating           int         `json:"rating"`
	BasicInformation ReleaseInfo `json:"basic_information"`
}

type WantlistItem struct {
	ID               int64       `json:"id"`
	DateAdded        time.Time   `json:"date_added"`
	Rating           int         `json:"rating"`
	Notes            string      `json:"notes,omitempty"`
	BasicInformation ReleaseInfo `json:"basic_information"`
}

type Pagination struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	PerPage int `json:"per_page"`
	Items   int `json:"items"`
}

type CollectionPage struct {
	Items      []CollectionItem `json:"items"`
	Pagination Pagination       `json:"pagination"`
}

type WantlistPage struct {
	Items      []WantlistItem `json:"items"`
	Pagination Pagination     `json:"pagination"`
}

// PrimaryArtist returns the first credited artist, or a zero Artist for
// releases with no artist credits.
func (r ReleaseInfo) PrimaryArtist() Artist {
	if len(r.Artists) == 0 {
		return Artist{}
	}
	return r.Artists[0]
}

var conditionAbbreviations = map[string]string{
	"Mint (M)":             "M",
	"Near Mint (NM or M-)": "NM",
	"Very Good Plus (VG+)": "VG+",
	"Very Good (VG)":       "VG",
	"Good Plus (G+)":       "G+",
	"Good (G)":             "G",
	"Fair (F)":             "F",
	"Poor (P)":             "P",
}

// AbbreviateCondition shortens a Discogs condition grade for display.
// Unknown grades pass through unchanged.
func AbbreviateCondition(condition string) string {
	if short, ok := conditionAbbreviations[condition]; ok {
		return short
	}
	return condition
}
