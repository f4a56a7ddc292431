package resolve

import (
	"strings"

	"carbazaar-api/internal/model"
)

// FuzzyMatch recovers a variant when no exact slug match exists, tolerating
// minor naming drift between the URL and the stored name. It returns the
// first candidate whose normalized name contains the normalized target as a
// substring, or whose leading name token appears inside the target.
//
// First match wins, in candidate order. This is deliberately not a
// best-match search: deployed links depend on the loose first-hit behavior,
// so it must not be tightened to edit distance or scoring.
func FuzzyMatch(target string, candidates []model.Variant) *model.Variant {
	want := Slug(target)
	if want == "" {
		return nil
	}
	for i := range candidates {
		name := Slug(candidates[i].Name)
		if name == "" {
			continue
		}
		if strings.Contains(name, want) {
			return &candidates[i]
		}
		if first := firstToken(candidates[i].Name); first != "" && strings.Contains(want, first) {
			return &candidates[i]
		}
	}
	return nil
}

// firstToken is the slug of the name's first whitespace-delimited word.
func firstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return Slug(fields[0])
}
