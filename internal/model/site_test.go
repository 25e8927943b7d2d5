package model

import "testing"

func TestSite_IsValid(t *testing.T) {
	tests := []struct {
		site     Site
		expected bool
	}{
		{SiteYouTube, true},
		{SiteTikTok, true},
		{SiteFacebook, true},
		{SiteInstagram, true},
		{SiteBluesky, true},
		{SiteUnlisted, true},
		{Site("Vimeo"), false},
		{Site(""), false},
	}

	for _, test := range tests {
		if result := test.site.IsValid(); result != test.expected {
			t.Errorf("Site(%q).IsValid() = %v, expected %v", test.site, result, test.expected)
		}
	}
}

func TestSite_Domains(t *testing.T) {
	domains := SiteYouTube.Domains()
	expected := []string{"youtube.com", "youtu.be", "music.youtube.com"}

	if len(domains) != len(expected) {
		t.Fatalf("Expected %d YouTube domains, got %d", len(expected), len(domains))
	}
	for i, d := range expected {
		if domains[i] != d {
			t.Errorf("YouTube domain %d: expected %s, got %s", i, d, domains[i])
		}
	}

	if SiteUnlisted.Domains() != nil {
		t.Error("Unlisted site should carry no domain allow-list")
	}
}

func TestParseSite(t *testing.T) {
	tests := []struct {
		name     string
		expected Site
	}{
		{"YouTube", SiteYouTube},
		{"TikTok", SiteTikTok},
		{"Allow Unlisted", SiteUnlisted},
		{"", DefaultSite},
		{"Vimeo", DefaultSite},
	}

	for _, test := range tests {
		if got := ParseSite(test.name); got != test.expected {
			t.Errorf("ParseSite(%q) = %s, expected %s", test.name, got, test.expected)
		}
	}
}

func TestParseSite_RoundTrip(t *testing.T) {
	sites := append(ListedSites(), SiteUnlisted)
	for _, site := range sites {
		if got := ParseSite(site.String()); got != site {
			t.Errorf("ParseSite(%s.String()) = %s, expected identity", site, got)
		}
	}
}
