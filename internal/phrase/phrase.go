// Package phrase defines the practice phrase catalog and the text
// canonicalization used to match phrases against transcripts.
package phrase

import (
	"sort"
	"strings"
	"unicode"

	"github.com/maruel/natural"
)

// Info describes a practice phrase.
type Info struct {
	Name        string
	Description string
	Language    string
}

// Catalog is the built-in set of practice phrases.
var Catalog = []Info{
	{
		Name:        "Radhe Radhe",
		Description: "Devotional greeting to Radha and Krishna",
		Language:    "Hindi",
	},
	{
		Name:        "Om Namah Shivaya",
		Description: "Salutation to Lord Shiva",
		Language:    "Sanskrit",
	},
	{
		Name:        "Hare Krishna",
		Description: "Maha Mantra for Krishna consciousness",
		Language:    "Sanskrit",
	},
	{
		Name:        "Om Mani Padme Hum",
		Description: "Buddhist mantra of compassion",
		Language:    "Sanskrit",
	},
	{
		Name:        "Gayatri Mantra",
		Description: "Vedic mantra for enlightenment",
		Language:    "Sanskrit",
	},
}

// Names returns the catalog phrase names in natural sort order.
func Names() []string {
	names := make([]string, len(Catalog))

	for i, v := range Catalog {
		names[i] = v.Name
	}

	sort.Sort(natural.StringSlice(names))

	return names
}

// Normalize canonicalizes text for comparison: it lowercases, replaces any
// rune that is not a letter or digit with a space, collapses whitespace to
// single spaces, and trims the ends. The same function must be applied to
// both the target phrase and the transcript so comparisons are symmetric.
func Normalize(text string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return ' '
	}, text)

	return strings.Join(strings.Fields(mapped), " ")
}
