package catalog

import (
	"slices"

	"sportshub/internal/models"
)

// Service serves the static reference data: offers, venues, events and the
// recent-activity feed. Everything here is fixed at compile time; all
// operations are pure and need no external resource.
type Service struct {
	offers     []models.Offer
	venues     []models.Venue
	events     []models.Event
	activities []models.Activity
}

func NewService() *Service {
	return &Service{
		offers:     sampleOffers,
		venues:     sampleVenues,
		events:     sampleEvents,
		activities: sampleActivities,
	}
}

// Offers returns the full static offer set, unfiltered.
func (s *Service) Offers() []models.Offer {
	return slices.Clone(s.offers)
}

// Venues filters by exact venue type and tag membership; both filters
// compose with AND, an empty filter keeps everything.
func (s *Service) Venues(vtype, tag string) []models.Venue {
	items := make([]models.Venue, 0, len(s.venues))
	for _, v := range s.venues {
		if vtype != "" && v.Type != vtype {
			continue
		}
		if tag != "" && !slices.Contains(v.Tags, tag) {
			continue
		}
		items = append(items, v)
	}
	return items
}

// Events filters by exact category when one is given.
func (s *Service) Events(category string) []models.Event {
	items := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		if category != "" && e.Category != category {
			continue
		}
		items = append(items, e)
	}
	return items
}

// RecentActivities returns the full static feed in fixed order.
func (s *Service) RecentActivities() []models.Activity {
	return slices.Clone(s.activities)
}

// RecoveryPicks takes the first recovery venues in catalog order, at most
// three. There is no ranking, it is a static slice.
func (s *Service) RecoveryPicks() models.RecoveryRecommendation {
	picks := make([]models.Venue, 0, 3)
	for _, v := range s.venues {
		if v.Type != models.VenueTypeRecovery {
			continue
		}
		picks = append(picks, v)
		if len(picks) == 3 {
			break
		}
	}
	return models.RecoveryRecommendation{
		Title: "Top picks to recover",
		Items: picks,
	}
}
