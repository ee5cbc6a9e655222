// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SiteSettingsID is the identifier of the only settings document.
const SiteSettingsID = "site_settings"

// SiteSettings is the singleton document holding all editable site content.
//
// Saving replaces the whole document, so callers must send every field back,
// including the current logo reference.
type SiteSettings struct {
	// Logo is a dereferenceable reference to the uploaded logo, or empty.
	Logo string `json:"logo"`

	HeroTitle   string `json:"hero_title"`
	HeroTagline string `json:"hero_tagline"`
	AboutTitle  string `json:"about_title"`
	AboutText1  string `json:"about_text_1"`
	AboutText2  string `json:"about_text_2"`

	// Services is order-significant; entries need not be unique.
	Services []Service `json:"services"`

	// Stats is order-significant; entries need not be unique.
	Stats []Stat `json:"stats"`

	InstagramURL string `json:"instagram_url"`
	ContactEmail string `json:"contact_email"`

	// Version increments on every save. It travels in the ETag header, not in
	// the document body. Zero means the defaults were never saved.
	Version int64 `json:"-"`
}

// TableName returns the name of the database table associated with
// SiteSettings.
func (s SiteSettings) TableName() string {
	return "site_settings"
}

// Service is one entry of the services section.
type Service struct {
	Icon        Icon   `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Stat is one entry of the stats section. Icon is a free-form glyph (usually
// an emoji), unlike [Service.Icon].
type Stat struct {
	Icon  string `json:"icon"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// IsEmpty reports whether s carries no data at all. Saving an empty document
// is rejected.
func (s SiteSettings) IsEmpty() bool {
	return s.Logo == "" &&
		s.HeroTitle == "" &&
		s.HeroTagline == "" &&
		s.AboutTitle == "" &&
		s.AboutText1 == "" &&
		s.AboutText2 == "" &&
		len(s.Services) == 0 &&
		len(s.Stats) == 0 &&
		s.InstagramURL == "" &&
		s.ContactEmail == ""
}

// Clone returns a deep copy of s so callers can edit the slices freely.
func (s SiteSettings) Clone() SiteSettings {
	out := s
	out.Services = append([]Service(nil), s.Services...)
	out.Stats = append([]Stat(nil), s.Stats...)
	return out
}

// DefaultSiteSettings returns the content shown when no settings document has
// ever been saved.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Logo:        "",
		HeroTitle:   "Rexora Media",
		HeroTagline: "Visuals built to perform",
		AboutTitle:  "About Us",
		AboutText1:  "Rexora Media is a creative visual studio specializing in high-end video production, photo editing, and brand storytelling.",
		AboutText2:  "We craft visuals that don't just look good—they perform. Every frame is engineered to captivate, convert, and leave a lasting impression.",
		Services: []Service{
			{Icon: IconVideo, Title: "Video Editing", Description: "Cinematic storytelling that captures attention and drives results"},
			{Icon: IconImage, Title: "Photo Editing", Description: "Professional retouching and enhancement for stunning visuals"},
			{Icon: IconZap, Title: "Reels & Short-Form Content", Description: "Viral-ready content optimized for social media platforms"},
			{Icon: IconPlay, Title: "Brand Visuals", Description: "Cohesive visual identity that elevates your brand presence"},
			{Icon: IconSparkles, Title: "Animation", Description: "Dynamic animated content that brings your vision to life"},
			{Icon: IconFilm, Title: "Motion Graphics", Description: "Eye-catching motion design for modern digital experiences"},
			{Icon: IconWand2, Title: "VFX (Visual Effects)", Description: "Professional visual effects that transform ordinary footage into extraordinary content"},
		},
		Stats: []Stat{
			{Icon: "🎬", Value: "500+", Label: "Projects Delivered"},
			{Icon: "⭐", Value: "200+", Label: "Happy Clients"},
			{Icon: "🏆", Value: "5+", Label: "Years of Excellence"},
		},
		InstagramURL: "https://instagram.com/rexoramedia",
		ContactEmail: "rexoramedia10@gmail.com",
	}
}
