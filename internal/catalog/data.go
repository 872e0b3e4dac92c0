package catalog

import "sportshub/internal/models"

var sampleOffers = []models.Offer{
	{
		ID:              "o1",
		Title:           "Weekend Smash 30% OFF",
		Description:     "On all football turfs",
		DiscountPercent: 30,
		Image:           "https://images.unsplash.com/photo-1603297637585-4eb3b0c6c3b1",
		VenueType:       models.VenueTypeCourt,
	},
	{
		ID:              "o2",
		Title:           "Studio Saver 20%",
		Description:     "Dance & Zumba",
		DiscountPercent: 20,
		Image:           "https://images.unsplash.com/photo-1571907480495-2416503cf842",
		VenueType:       models.VenueTypeStudio,
	},
	{
		ID:          "o3",
		Title:       "Recovery Combo",
		Description: "Ice bath + Massage",
		Image:       "https://images.unsplash.com/photo-1556227701-787edf1a6e47",
		VenueType:   models.VenueTypeRecovery,
	},
}

var sampleVenues = []models.Venue{
	{
		ID:            "v1",
		Name:          "City Arena",
		Type:          models.VenueTypeCourt,
		Tags:          []string{"football", "basketball"},
		Address:       "Downtown",
		Rating:        4.8,
		DistanceKm:    1.1,
		PricePer30Min: 15,
		Image:         "https://images.unsplash.com/photo-1517649763962-0c623066013b",
	},
	{
		ID:            "v2",
		Name:          "Hoops Central",
		Type:          models.VenueTypeCourt,
		Tags:          []string{"basketball"},
		Address:       "West End",
		Rating:        4.6,
		DistanceKm:    2.0,
		PricePer30Min: 12,
		Image:         "https://images.unsplash.com/photo-1483728642387-6c3bdd6c93e5",
	},
	{
		ID:            "v3",
		Name:          "Groove Studio",
		Type:          models.VenueTypeStudio,
		Tags:          []string{"dance", "zumba"},
		Address:       "Midtown",
		Rating:        4.7,
		DistanceKm:    0.9,
		PricePer30Min: 10,
		Image:         "https://images.unsplash.com/photo-1515169067865-5387ec356754",
	},
	{
		ID:            "v4",
		Name:          "Wellness Hub",
		Type:          models.VenueTypeRecovery,
		Tags:          []string{"ice bath", "massage"},
		Address:       "Riverside",
		Rating:        4.9,
		DistanceKm:    1.5,
		PricePer30Min: 18,
		Image:         "https://images.unsplash.com/photo-1519824145371-296894a0daa9",
		Phone:         "+1-555-0142",
	},
	{
		ID:            "v5",
		Name:          "Blue Pools",
		Type:          models.VenueTypeRecovery,
		Tags:          []string{"swimming"},
		Address:       "Uptown",
		Rating:        4.5,
		DistanceKm:    2.2,
		PricePer30Min: 8,
		Image:         "https://images.unsplash.com/photo-1519315901367-f34ff9154487",
	},
}

var sampleEvents = []models.Event{
	{
		ID:       "e1",
		Title:    "Local League Finals",
		Category: models.EventCategorySports,
		VenueID:  "v1",
		Date:     "2025-11-30",
		Price:    5,
		Image:    "https://images.unsplash.com/photo-1517649763962-0c623066013b",
	},
	{
		ID:       "e2",
		Title:    "Zumba Marathon",
		Category: models.EventCategoryDance,
		VenueID:  "v3",
		Date:     "2025-12-05",
		Price:    12,
		Image:    "https://images.unsplash.com/photo-1549576490-b0b4831ef60a",
	},
	{
		ID:       "e3",
		Title:    "Strength Workshop",
		Category: models.EventCategoryWorkshop,
		Date:     "2025-12-10",
		Price:    20,
		Image:    "https://images.unsplash.com/photo-1554284126-aa88f22d8b74",
	},
}

var sampleActivities = []models.Activity{
	{ID: "a1", Type: "booked", Text: "You booked City Arena - Football"},
	{ID: "a2", Type: "joined", Text: "You joined 3v3 Basketball"},
	{ID: "a3", Type: "hosted", Text: "You hosted Zumba Jam"},
}
