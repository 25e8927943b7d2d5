package model

// Site identifies a supported source site. Every listed site carries a
// fixed domain allow-list; SiteUnlisted bypasses the list entirely.
type Site string

const (
	SiteYouTube   Site = "YouTube"
	SiteTikTok    Site = "TikTok"
	SiteFacebook  Site = "Facebook"
	SiteInstagram Site = "Instagram"
	SiteBluesky   Site = "Bluesky"

	// SiteUnlisted accepts any http/https URL regardless of host
	SiteUnlisted Site = "Allow Unlisted"
)

// DefaultSite is selected when no configuration exists
const DefaultSite = SiteYouTube

// siteDomains maps each listed site to the hosts it accepts. A URL host
// matches when it equals an entry or is a subdomain of one.
var siteDomains = map[Site][]string{
	SiteYouTube:   {"youtube.com", "youtu.be", "music.youtube.com"},
	SiteTikTok:    {"tiktok.com"},
	SiteFacebook:  {"facebook.com"},
	SiteInstagram: {"instagram.com"},
	SiteBluesky:   {"bsky.app"},
}

// ListedSites returns the listed sites in menu order
func ListedSites() []Site {
	return []Site{SiteBluesky, SiteFacebook, SiteInstagram, SiteTikTok, SiteYouTube}
}

// String returns the display name of the site
func (s Site) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known sites
func (s Site) IsValid() bool {
	if s == SiteUnlisted {
		return true
	}
	_, ok := siteDomains[s]
	return ok
}

// Domains returns the allow-list for a listed site, or nil for SiteUnlisted
func (s Site) Domains() []string {
	return siteDomains[s]
}

// ParseSite maps a persisted site name back to a Site, falling back to
// DefaultSite for anything unknown so stale configs stay usable.
func ParseSite(name string) Site {
	s := Site(name)
	if s.IsValid() {
		return s
	}
	return DefaultSite
}
