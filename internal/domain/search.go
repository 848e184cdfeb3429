package domain

// SearchResult is a catalog search hit. Discogs returns the artist and
// title joined as "Artist - Title", and the year as a string.
type SearchResult struct {
	ID         int64    `json:"id"`
	MasterID   int64    `json:"master_id"`
	Title      string   `json:"title"`
	Year       string   `json:"year,omitempty"`
	Thumb      string   `json:"thumb"`
	CoverImage string   `json:"cover_image"`
	Country    string   `json:"country,omitempty"`
	Genres     []string `json:"genre,omitempty"`
	Formats    []string `json:"format,omitempty"`
	Labels     []string `json:"label,omitempty"`
}

type SearchPage struct {
	Results    []SearchResult `json:"results"`
	Pagination Pagination     `json:"pagination"`
}

// MarketplaceListing is an item the user has for sale.
type MarketplaceListing struct {
	ID              int64          `json:"id"`
	Status          string         `json:"status"`
	Condition       string         `json:"condition"`
	SleeveCondition string         `json:"sleeve_condition"`
	Price           Money          `json:"price"`
	URI             string         `json:"uri"`
	Release         ListingRelease `json:"release"`
}

type ListingRelease struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

type ListingsPage struct {
	Listings   []MarketplaceListing `json:"listings"`
	Pagination Pagination           `json:"pagination"`
}
