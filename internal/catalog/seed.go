package catalog

import (
	"github.com/lib/pq"

	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
	"github.com/chronos-atelier/chronos-backend/pkg/enums"
)

// SeedWatches returns the built-in catalog used when the watches table is
// empty and has never been written to. The slice is rebuilt on every call so
// callers can mutate their copy freely.
func SeedWatches() []models.Watch {
	return []models.Watch{
		{
			ID:        "w1",
			Name:      "Submariner Date",
			BrandID:   "b2",
			BrandName: "Rolex",
			Price:     14500,
			Description: "The archetype of the diver's watch, the Submariner Date exemplifies " +
				"the historic link between Rolex and the underwater world.",
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1547996160-81dfa63595aa?q=80&w=1000&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1619134716175-92762a4d0ba0?q=80&w=1000&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1622434641406-a15812345ad1?q=80&w=1000&auto=format&fit=crop",
			},
			SpecCase:            "Oyster, 41 mm, Oystersteel",
			SpecMovement:        "Perpetual, mechanical, self-winding",
			SpecWaterResistance: "Waterproof to 300 metres / 1,000 feet",
			SpecStrap:           "Oyster, flat three-piece links",
			Stock:               5,
			Category:            enums.WatchCategoryDive,
			Featured:            true,
		},
		{
			ID:        "w2",
			Name:      "Nautilus 5711",
			BrandID:   "b1",
			BrandName: "Patek Philippe",
			Price:     120000,
			Description: "With the rounded octagonal shape of its bezel, the ingenious porthole " +
				"construction of its case, and its horizontally embossed dial.",
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1614164185128-e4ec99c436d7?q=80&w=1000&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1629226863300-c010dec6475d?q=80&w=1000&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1612817288484-6f916006741a?q=80&w=1000&auto=format&fit=crop",
			},
			SpecCase:            "Steel, 40mm",
			SpecMovement:        "Self-winding mechanical movement",
			SpecWaterResistance: "120m",
			SpecStrap:           "Steel bracelet",
			Stock:               2,
			Category:            enums.WatchCategoryClassic,
			Featured:            true,
		},
		{
			ID:        "w3",
			Name:      "Royal Oak Offshore",
			BrandID:   "b3",
			BrandName: "Audemars Piguet",
			Price:     35000,
			Description: "The Royal Oak Offshore collection has defied established conventions " +
				"since 1993, giving an ever more powerful and sportier take.",
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1523170335258-f5ed11844a49?q=80&w=1000&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1619134716175-92762a4d0ba0?q=80&w=1000&auto=format&fit=crop",
			},
			SpecCase:            "Titanium, 42mm",
			SpecMovement:        "Calibre 4404",
			SpecWaterResistance: "100m",
			SpecStrap:           "Rubber strap",
			Stock:               8,
			Category:            enums.WatchCategorySport,
		},
		{
			ID:        "w4",
			Name:      "Speedmaster Moonwatch",
			BrandID:   "b5",
			BrandName: "Omega",
			Price:     7200,
			Description: "The Speedmaster Moonwatch is one of the world's most iconic timepieces. " +
				"Having been a part of all six moon missions.",
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1612817288484-6f916006741a?q=80&w=1000&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1547996160-81dfa63595aa?q=80&w=1000&auto=format&fit=crop",
			},
			SpecCase:            "Stainless Steel, 42mm",
			SpecMovement:        "Omega Co-Axial Master Chronometer Calibre 3861",
			SpecWaterResistance: "50m",
			SpecStrap:           "Stainless steel",
			Stock:               12,
			Category:            enums.WatchCategoryAviator,
		},
	}
}
