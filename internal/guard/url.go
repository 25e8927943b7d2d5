package guard

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/isnick/isnick-downloader/internal/model"
)

// ValidateURL checks that raw is an http/https URL and, for listed sites,
// that its host exactly matches or is a subdomain of one of the site's
// allowed domains. SiteUnlisted accepts any http/https URL.
func ValidateURL(raw string, site model.Site) error {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("parse URL: %w", ErrBadScheme)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("scheme %q: %w", parsed.Scheme, ErrBadScheme)
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return fmt.Errorf("missing host: %w", ErrBadScheme)
	}

	if site == model.SiteUnlisted {
		return nil
	}

	for _, domain := range site.Domains() {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return nil
		}
	}
	return fmt.Errorf("host %s not allowed for %s: %w", host, site, ErrDomainMismatch)
}
