package catalog

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/yishak-cs/campus-meals/internal/models"
)

// Directory lists restaurants sorted by name, filtered by a search query.
// Matching ignores case, accents, apostrophes and "&" vs "and".
func Directory(c *Catalog, query string) []models.RestaurantSummary {
	if c == nil {
		return []models.RestaurantSummary{}
	}

	q := NormalizeSearch(query)
	rows := make([]models.RestaurantSummary, 0, len(c.restaurants))
	for _, r := range c.restaurants {
		if q != "" && !strings.Contains(NormalizeSearch(r.name), q) {
			continue
		}
		rows = append(rows, models.RestaurantSummary{
			Name:      r.name,
			LogoRef:   r.logoRef,
			ItemCount: len(r.items),
		})
	}

	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(rows, func(i, j int) bool {
		return col.CompareString(rows[i].Name, rows[j].Name) < 0
	})
	return rows
}

// NormalizeSearch folds s for substring matching
func NormalizeSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	folded = strings.ReplaceAll(folded, "&", "and")
	folded = strings.NewReplacer("'", "", "’", "", "‘", "").Replace(folded)
	return strings.Join(strings.Fields(folded), " ")
}
