// Package pcpp builds PCPartPicker links for catalog parts.
package pcpp

import (
	"net/url"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/rfhold/partpick/internal/catalog"
)

var (
	regionMatcher  = regexp2.MustCompile(`^[a-z]{2}$`, 0)
	pcppURLMatcher = regexp2.MustCompile(`^(https?://)?([a-z]{2}\.)?pcpartpicker\.com(/.*)?$`, 0)
)

// ValidRegion reports whether region is a two-letter PCPartPicker region code
func ValidRegion(region string) bool {
	ok, _ := regionMatcher.MatchString(region)
	return ok
}

// PrefixURL returns the site root for region. The US site has no subdomain.
func PrefixURL(region string) string {
	region = strings.ToLower(strings.TrimSpace(region))
	if region == "" || region == "us" || !ValidRegion(region) {
		return "https://pcpartpicker.com/"
	}
	return "https://" + region + ".pcpartpicker.com/"
}

// SearchURL returns a product search for query on the region's site
func SearchURL(region, query string) string {
	return PrefixURL(region) + "search/?q=" + url.QueryEscape(strings.TrimSpace(query))
}

// PartURL returns a search link for a catalog part using its brand and name
func PartURL(region string, c catalog.Component) string {
	query := c.Name
	if c.Brand != "" && !strings.HasPrefix(strings.ToLower(c.Name), strings.ToLower(c.Brand)) {
		query = c.Brand + " " + c.Name
	}
	return SearchURL(region, query)
}

// MatchURL reports whether u points at a PCPartPicker site
func MatchURL(u string) bool {
	ok, _ := pcppURLMatcher.MatchString(u)
	return ok
}
