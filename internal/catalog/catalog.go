// internal/catalog/catalog.go
package catalog

import "strings"

// Entry is one organization template in the static catalog. Industry is
// not stored here; the caller's industry string is stamped onto every
// match at lookup time.
type Entry struct {
    Name          string
    Email         string
    Website       string
    Location      string
    ContactPerson string
    CompanySize   string
    Notes         string
}

// Catalog maps a category key to an ordered list of entries. It is a
// read-only lookup table loaded once at process start; ordering within
// a category is list order, there is no ranking.
type Catalog struct {
    categories map[string][]Entry
}

func New(categories map[string][]Entry) *Catalog {
    return &Catalog{categories: categories}
}

// fallbackPerCategory entries from each category make up the result
// when no keyword matches.
const fallbackPerCategory = 10

// Match selects the category whose keywords are contained in the
// industry string (case-insensitive, first hit wins). Unknown
// industries get a fixed fallback slice concatenated from the main
// categories.
func (c *Catalog) Match(industry string) []Entry {
    industryLower := strings.ToLower(industry)

    switch {
    case strings.Contains(industryLower, "bil"):
        return c.categories["bilreklam"]
    case strings.Contains(industryLower, "mat"),
        strings.Contains(industryLower, "livs"),
        strings.Contains(industryLower, "restaurang"):
        return c.categories["matreklam"]
    case strings.Contains(industryLower, "stora-företag"):
        return c.categories["stora-företag"]
    case strings.Contains(industryLower, "små-företag"):
        return c.categories["små-företag"]
    }

    // Fallback: a taste of every main category
    fallback := []Entry{}
    fallback = append(fallback, head(c.categories["bilreklam"], fallbackPerCategory)...)
    fallback = append(fallback, head(c.categories["matreklam"], fallbackPerCategory)...)
    return fallback
}

// Category returns the raw list for a category key.
func (c *Catalog) Category(key string) []Entry {
    return c.categories[key]
}

func head(entries []Entry, n int) []Entry {
    if len(entries) > n {
        return entries[:n]
    }
    return entries
}
