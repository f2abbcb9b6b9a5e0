// Package skillset computes set-overlap similarity between skill
// collections.
package skillset

import "strings"

// Jaccard returns |A∩B| / |A∪B| over the two skill lists after
// lowercasing every label and collapsing duplicates. Both lists empty
// yields 0.0 rather than a division fault. Pure and symmetric; the
// result is always within [0, 1].
func Jaccard(a, b []string) float64 {
	setA := normalize(a)
	setB := normalize(b)

	union := len(setA)
	intersection := 0
	for s := range setB {
		if _, ok := setA[s]; ok {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

func normalize(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[strings.ToLower(l)] = struct{}{}
	}
	return set
}
