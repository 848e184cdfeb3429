package app

import (
	"context"
	"fmt"
	"time"

	"vinylvault/internal/domain"
)

// mockCollectionProvider serves a fixed item list in pages and counts
// upstream calls.
type mockCollectionProvider struct {
	items []domain.CollectionItem
	calls int
	err   error
}

func (m *mockCollectionProvider) GetCollectionPage(ctx context.Context, page, perPage int) (domain.CollectionPage, error) {
	m.calls++
	if m.err != nil {
		return domain.CollectionPage{}, m.err
	}

	start := (page - 1) * perPage
	end := min(start+perPage, len(m.items))

	var pageItems []domain.CollectionItem
	if start < len(m.items) {
		pageItems = m.items[start:end]
	}

	pages := (len(m.items) + perPage - 1) / perPage
	return domain.CollectionPage{
		Items: pageItems,
		Pagination: domain.Pagination{
			Page:    page,
			Pages:   pages,
			PerPage: perPage,
			Items:   len(m.items),
		},
	}, nil
}

func makeItems(n int) []domain.CollectionItem {
	items := make([]domain.CollectionItem, n)
	for i := range items {
		id := int64(i + 1)
		items[i] = domain.CollectionItem{
			ID:         id,
			InstanceID: id,
			DateAdded:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
			Rating:     3,
			BasicInformation: domain.ReleaseInfo{
				ID:      id,
				Title:   fmt.Sprintf("Record %d", id),
				Year:    1980 + i%20,
				Artists: []domain.Artist{{ID: id, Name: fmt.Sprintf("Artist %d", id)}},
				Genres:  []string{"Rock"},
			},
		}
	}
	return items
}

// immediateAfter satisfies the pacer's afterFunc without sleeping.
func immediateAfter(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}
