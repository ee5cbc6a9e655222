package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The published defaults are content; every value is spelled out here so a
// typo in DefaultSiteSettings fails.
func TestDefaultSiteSettings_Values(t *testing.T) {
	got := DefaultSiteSettings()

	fields := []struct {
		name string
		got  string
		want string
	}{
		{"logo", got.Logo, ""},
		{"hero_title", got.HeroTitle, "Rexora Media"},
		{"hero_tagline", got.HeroTagline, "Visuals built to perform"},
		{"about_title", got.AboutTitle, "About Us"},
		{"about_text_1", got.AboutText1, "Rexora Media is a creative visual studio specializing in high-end video production, photo editing, and brand storytelling."},
		{"about_text_2", got.AboutText2, "We craft visuals that don't just look good—they perform. Every frame is engineered to captivate, convert, and leave a lasting impression."},
		{"instagram_url", got.InstagramURL, "https://instagram.com/rexoramedia"},
		{"contact_email", got.ContactEmail, "rexoramedia10@gmail.com"},
	}
	for _, f := range fields {
		assert.Equal(t, f.want, f.got, f.name)
	}

	wantServices := []struct {
		icon, title, description string
	}{
		{"Video", "Video Editing", "Cinematic storytelling that captures attention and drives results"},
		{"Image", "Photo Editing", "Professional retouching and enhancement for stunning visuals"},
		{"Zap", "Reels & Short-Form Content", "Viral-ready content optimized for social media platforms"},
		{"Play", "Brand Visuals", "Cohesive visual identity that elevates your brand presence"},
		{"Sparkles", "Animation", "Dynamic animated content that brings your vision to life"},
		{"Film", "Motion Graphics", "Eye-catching motion design for modern digital experiences"},
		{"Wand2", "VFX (Visual Effects)", "Professional visual effects that transform ordinary footage into extraordinary content"},
	}
	require.Len(t, got.Services, len(wantServices))
	for i, want := range wantServices {
		assert.Equal(t, want.icon, string(got.Services[i].Icon), "services[%d].icon", i)
		assert.Equal(t, want.title, got.Services[i].Title, "services[%d].title", i)
		assert.Equal(t, want.description, got.Services[i].Description, "services[%d].description", i)
	}

	wantStats := []Stat{
		{Icon: "\U0001F3AC", Value: "500+", Label: "Projects Delivered"},
		{Icon: "⭐", Value: "200+", Label: "Happy Clients"},
		{Icon: "\U0001F3C6", Value: "5+", Label: "Years of Excellence"},
	}
	assert.Equal(t, wantStats, got.Stats)
	assert.Zero(t, got.Version)
}

func TestDefaultSiteSettings_Wire(t *testing.T) {
	raw, err := json.Marshal(DefaultSiteSettings())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"logo": "",
		"hero_title": "Rexora Media",
		"hero_tagline": "Visuals built to perform",
		"about_title": "About Us",
		"about_text_1": "Rexora Media is a creative visual studio specializing in high-end video production, photo editing, and brand storytelling.",
		"about_text_2": "We craft visuals that don't just look good—they perform. Every frame is engineered to captivate, convert, and leave a lasting impression.",
		"services": [
			{"icon": "Video", "title": "Video Editing", "description": "Cinematic storytelling that captures attention and drives results"},
			{"icon": "Image", "title": "Photo Editing", "description": "Professional retouching and enhancement for stunning visuals"},
			{"icon": "Zap", "title": "Reels & Short-Form Content", "description": "Viral-ready content optimized for social media platforms"},
			{"icon": "Play", "title": "Brand Visuals", "description": "Cohesive visual identity that elevates your brand presence"},
			{"icon": "Sparkles", "title": "Animation", "description": "Dynamic animated content that brings your vision to life"},
			{"icon": "Film", "title": "Motion Graphics", "description": "Eye-catching motion design for modern digital experiences"},
			{"icon": "Wand2", "title": "VFX (Visual Effects)", "description": "Professional visual effects that transform ordinary footage into extraordinary content"}
		],
		"stats": [
			{"icon": "🎬", "value": "500+", "label": "Projects Delivered"},
			{"icon": "⭐", "value": "200+", "label": "Happy Clients"},
			{"icon": "🏆", "value": "5+", "label": "Years of Excellence"}
		],
		"instagram_url": "https://instagram.com/rexoramedia",
		"contact_email": "rexoramedia10@gmail.com"
	}`, string(raw))
}
