package aggregate

import (
	"context"
	"fmt"
)

const (
	// maxEventPages bounds the contribution window to the most recent
	// maxEventPages*eventsPerPage events.
	maxEventPages = 3
	eventsPerPage = 100
)

// scanEvents fetches up to maxEventPages pages and passes every event to
// record. It stops after an empty or short page.
func scanEvents[E any](ctx context.Context, fetch func(ctx context.Context, page, perPage int) ([]E, error), record func(E)) (int, error) {
	pages := 0
	for page := 1; page <= maxEventPages; page++ {
		events, err := fetch(ctx, page, eventsPerPage)
		if err != nil {
			return pages, fmt.Errorf("events page %d: %w", page, err)
		}
		pages++
		for _, e := range events {
			record(e)
		}
		if len(events) < eventsPerPage {
			break
		}
	}
	return pages, nil
}
