package cafes

import (
	"regexp"
	"strings"
)

var (
	spaces    = regexp.MustCompile(`\s+`)
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// StoreSlug derives a web-store slug from the cafe display name.
// Example: "Bean There" -> "bean-there"
func StoreSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = spaces.ReplaceAllString(slug, "-")
	slug = nonSlug.ReplaceAllString(slug, "")
	slug = multiDash.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "cafe"
	}
	return slug
}

// WebStoreURL builds the public store URL for a cafe name.
func WebStoreURL(baseURL, name string) string {
	return strings.TrimRight(baseURL, "/") + "/" + StoreSlug(name)
}
