package settings

// ContactInfo holds the storefront contact block shown in the footer and on
// the contact page.
type ContactInfo struct {
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Facebook     string `json:"facebook"`
	Instagram    string `json:"instagram"`
	TikTok       string `json:"tiktok"`
	WorkingHours string `json:"workingHours"`
}

// Settings is the site-wide singleton record. An empty HeroSliderImages
// means the storefront derives hero images from product images at render
// time; that fallback is a consumer rule, not stored state.
type Settings struct {
	ContactInfo      ContactInfo `json:"contactInfo"`
	SiteLogoURL      string      `json:"siteLogoUrl"`
	HeroSliderImages []string    `json:"heroSliderImages"`
}

const DefaultSiteLogoURL = "https://i.ibb.co/tZPYk6G/Maloka-Story-Logo.png"

// Defaults returns the record used when nothing has been stored yet.
func Defaults() Settings {
	return Settings{
		ContactInfo: ContactInfo{
			Phone:        "+20 100 000 0000",
			Email:        "info@maloka-story.com",
			Facebook:     "https://facebook.com/malokastory",
			Instagram:    "https://instagram.com/malokastory",
			TikTok:       "https://tiktok.com/@malokastory",
			WorkingHours: "من 9 صباحًا إلى 5 مساءً",
		},
		SiteLogoURL:      DefaultSiteLogoURL,
		HeroSliderImages: []string{},
	}
}

// Patch updates a subset of the three top-level fields. Merging is shallow:
// a present ContactInfo or HeroSliderImages replaces the stored value
// wholesale, absent fields stay as they are.
type Patch struct {
	ContactInfo      *ContactInfo `json:"contactInfo,omitempty"`
	SiteLogoURL      *string      `json:"siteLogoUrl,omitempty"`
	HeroSliderImages *[]string    `json:"heroSliderImages,omitempty"`
}

func (p Patch) apply(dst Settings) Settings {
	if p.ContactInfo != nil {
		dst.ContactInfo = *p.ContactInfo
	}
	if p.SiteLogoURL != nil {
		dst.SiteLogoURL = *p.SiteLogoURL
	}
	if p.HeroSliderImages != nil {
		dst.HeroSliderImages = *p.HeroSliderImages
	}
	return dst
}
