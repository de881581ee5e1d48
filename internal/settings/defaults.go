package settings

import "github.com/chronos-atelier/chronos-backend/pkg/db/models"

// heroImageURL doubles as the immersive backdrop until an admin replaces it.
const heroImageURL = "https://images.unsplash.com/photo-1547996160-81dfa63595aa?q=80&w=2000&auto=format&fit=crop"

// Defaults returns the copy shown before any admin has saved settings. Saved
// rows are merged over these field by field, so a blank column falls back to
// its default rather than blanking the page.
func Defaults() models.SiteSettings {
	return models.SiteSettings{
		ID:                      models.SiteSettingsID,
		HeroTag:                 "The Art of Precision",
		HeroTitle:               "Absolute Legacy",
		HeroSubtitle:            `"A timepiece is a silent witness to your life's greatest moments."`,
		HeroImageURL:            heroImageURL,
		HeroPrimaryBtnText:      "Explore Atelier",
		HeroSecondaryBtnText:    "Our Heritage",
		FeaturedTag:             "The Masterpieces",
		FeaturedHeading:         "Curated Selection",
		FeaturedArchiveLinkText: "Complete Archive",
		ImmersiveHeading:        "The Atelier",
		ImmersiveSubheading:     "Private",
		ImmersiveDescription:    "Experience the pinnacle of fine watchmaking in our private gallery spaces.",
		ImmersiveButtonText:     "Request Exclusive Access",
		ImmersiveImageURL:       heroImageURL,
	}
}
