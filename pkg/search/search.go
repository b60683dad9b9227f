package search

import (
	"sort"
	"strings"

	"github.com/dshills/cargostow/pkg/cargo"
)

// Query bundles the optional filters accepted alongside the query string.
type Query struct {
	Text     string
	Location *cargo.Position
	Radius   float64
	Priority *int
}

// Search ranks the system's item catalog against q. Priority filtering
// is an exact match applied first. If the query text is empty and no
// spatial filter is set, the (priority-filtered) catalog is returned
// sorted by id. If the query text has terms, items are BM25-scored, items
// scoring <= 0 are dropped, and the rest are sorted descending (ties by
// id); a query with no terms but a location skips scoring and passes every
// candidate to the spatial filter. Finally, if a location/radius is set,
// only items within Euclidean radius survive; unplaced items are excluded
// from that filter.
func Search(q Query, sys *cargo.CargoSystem, cfg *cargo.Config) []*cargo.Item {
	var candidates []*cargo.Item
	for _, item := range sys.Items {
		if q.Priority != nil && item.Priority != *q.Priority {
			continue
		}
		candidates = append(candidates, item)
	}

	queryTerms := strings.Fields(strings.ToLower(q.Text))
	hasSpatial := q.Location != nil

	if len(queryTerms) == 0 && !hasSpatial {
		sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
		return candidates
	}

	var ranked []*cargo.Item
	if len(queryTerms) > 0 {
		s := newScorer(candidates, cfg.Search.K1, cfg.Search.B)
		type scored struct {
			item  *cargo.Item
			score float64
		}
		var scoredItems []scored
		for _, item := range candidates {
			sc := s.score(item, queryTerms)
			if sc <= 0 {
				continue
			}
			scoredItems = append(scoredItems, scored{item: item, score: sc})
		}
		sort.SliceStable(scoredItems, func(i, j int) bool {
			if scoredItems[i].score != scoredItems[j].score {
				return scoredItems[i].score > scoredItems[j].score
			}
			return scoredItems[i].item.ID < scoredItems[j].item.ID
		})
		ranked = make([]*cargo.Item, len(scoredItems))
		for i, sc := range scoredItems {
			ranked[i] = sc.item
		}
	} else {
		ranked = candidates
	}

	if !hasSpatial {
		return ranked
	}

	var filtered []*cargo.Item
	for _, item := range ranked {
		if item.Position == nil {
			continue
		}
		if item.Position.DistanceTo(*q.Location) <= q.Radius {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
