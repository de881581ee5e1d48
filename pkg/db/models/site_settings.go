package models

import "time"

// SiteSettingsID is the key of the only logical settings row.
const SiteSettingsID = 1

// SiteSettings is the singleton record driving landing-page copy and images.
// Edits overwrite it wholesale.
type SiteSettings struct {
	ID                     int       `gorm:"column:id;primaryKey" json:"-"`
	HeroTag                string    `gorm:"column:hero_tag" json:"hero_tag"`
	HeroTitle              string    `gorm:"column:hero_title" json:"hero_title"`
	HeroSubtitle           string    `gorm:"column:hero_subtitle" json:"hero_subtitle"`
	HeroImageURL           string    `gorm:"column:hero_image_url" json:"hero_image_url"`
	HeroPrimaryBtnText     string    `gorm:"column:hero_primary_btn_text" json:"hero_primary_btn_text"`
	HeroSecondaryBtnText   string    `gorm:"column:hero_secondary_btn_text" json:"hero_secondary_btn_text"`
	FeaturedTag            string    `gorm:"column:featured_tag" json:"featured_tag"`
	FeaturedHeading        string    `gorm:"column:featured_heading" json:"featured_heading"`
	FeaturedArchiveLinkText string   `gorm:"column:featured_archive_link_text" json:"featured_archive_link_text"`
	ImmersiveHeading       string    `gorm:"column:immersive_heading" json:"immersive_heading"`
	ImmersiveSubheading    string    `gorm:"column:immersive_subheading" json:"immersive_subheading"`
	ImmersiveDescription   string    `gorm:"column:immersive_description" json:"immersive_description"`
	ImmersiveButtonText    string    `gorm:"column:immersive_button_text" json:"immersive_button_text"`
	ImmersiveImageURL      string    `gorm:"column:immersive_image_url" json:"immersive_image_url"`
	UpdatedAt              time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName pins the table used by GORM.
func (SiteSettings) TableName() string {
	return "site_settings"
}
