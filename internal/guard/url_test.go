package guard

import (
	"errors"
	"testing"

	"github.com/isnick/isnick-downloader/internal/model"
)

func TestValidateURL_Scheme(t *testing.T) {
	tests := []struct {
		url  string
		site model.Site
	}{
		{"ftp://youtube.com/watch?v=abc", model.SiteYouTube},
		{"ftp://example.com/file", model.SiteUnlisted},
		{"file:///etc/passwd", model.SiteUnlisted},
		{"youtube.com/watch?v=abc", model.SiteYouTube},
		{"", model.SiteYouTube},
	}

	for _, test := range tests {
		err := ValidateURL(test.url, test.site)
		if !errors.Is(err, ErrBadScheme) {
			t.Errorf("ValidateURL(%q, %s): expected ErrBadScheme, got %v", test.url, test.site, err)
		}
	}
}

func TestValidateURL_DomainAllowList(t *testing.T) {
	tests := []struct {
		url  string
		site model.Site
		ok   bool
	}{
		{"https://youtube.com/watch?v=abc", model.SiteYouTube, true},
		{"https://www.youtube.com/watch?v=abc", model.SiteYouTube, true},
		{"https://youtu.be/abc", model.SiteYouTube, true},
		{"https://music.youtube.com/watch?v=abc", model.SiteYouTube, true},
		{"http://youtube.com/watch?v=abc", model.SiteYouTube, true},
		{"https://vimeo.com/12345", model.SiteYouTube, false},
		{"https://notyoutube.com/watch", model.SiteYouTube, false},
		{"https://youtube.com.evil.net/watch", model.SiteYouTube, false},
		{"https://www.tiktok.com/@user/video/1", model.SiteTikTok, true},
		{"https://tiktok.com/@user", model.SiteTikTok, true},
		{"https://facebook.com/watch", model.SiteTikTok, false},
		{"https://www.facebook.com/video", model.SiteFacebook, true},
		{"https://www.instagram.com/reel/abc", model.SiteInstagram, true},
		{"https://bsky.app/profile/u/post/1", model.SiteBluesky, true},
		{"https://youtube.com/watch", model.SiteBluesky, false},
	}

	for _, test := range tests {
		err := ValidateURL(test.url, test.site)
		if test.ok && err != nil {
			t.Errorf("ValidateURL(%q, %s): expected Ok, got %v", test.url, test.site, err)
		}
		if !test.ok && !errors.Is(err, ErrDomainMismatch) {
			t.Errorf("ValidateURL(%q, %s): expected ErrDomainMismatch, got %v", test.url, test.site, err)
		}
	}
}

func TestValidateURL_Unlisted(t *testing.T) {
	urls := []string{
		"https://vimeo.com/12345",
		"https://example.org/media.mp4",
		"http://youtube.com/watch?v=abc",
	}

	for _, u := range urls {
		if err := ValidateURL(u, model.SiteUnlisted); err != nil {
			t.Errorf("ValidateURL(%q, Unlisted): expected Ok, got %v", u, err)
		}
	}
}

func TestValidateURL_HostCaseInsensitive(t *testing.T) {
	if err := ValidateURL("https://YouTube.com/watch?v=abc", model.SiteYouTube); err != nil {
		t.Errorf("Expected host match to be case-insensitive, got %v", err)
	}
}
