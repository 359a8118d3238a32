// Package stats derives presentational statistics from a child
// snapshot. Everything here is a pure function: no persistence, no
// side effects, safe to recompute on demand.
package stats

import (
	"math"
	"sort"

	"littlewords/internal/catalog"
	"littlewords/internal/models"
)

// LanguageTotals holds per-language word counts
type LanguageTotals struct {
	Language   models.Language
	Understood int
	Spoken     int
}

// CategoryStats holds per-category counts plus the spoken words
// themselves, for report text
type CategoryStats struct {
	Key         string
	Title       string
	WordCount   int
	Understood  int
	Spoken      int
	SpokenWords []string
}

// LanguageShare is one language's share of all spoken words
type LanguageShare struct {
	Language models.Language
	Spoken   int
	Percent  int
}

// AgeBucket counts spoken words first spoken at one age in months
type AgeBucket struct {
	AgeMonths int
	Count     int
}

// TotalsForLanguage counts understood and spoken words across all
// categories of one language
func TotalsForLanguage(child *models.Child, lang models.Language) LanguageTotals {
	totals := LanguageTotals{Language: lang}
	for _, category := range child.Categories[lang] {
		for _, w := range category.Words {
			if w.Understanding {
				totals.Understood++
			}
			if w.Speaking {
				totals.Spoken++
			}
		}
	}
	return totals
}

// CategoryBreakdown returns per-category statistics for one language in
// catalog display order; custom categories unknown to the catalog
// follow in key order.
func CategoryBreakdown(child *models.Child, lang models.Language) []CategoryStats {
	categories, ok := child.Categories[lang]
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(categories))
	seen := make(map[string]bool, len(categories))
	for _, key := range catalog.CategoryKeys(lang) {
		if _, ok := categories[key]; ok {
			keys = append(keys, key)
			seen[key] = true
		}
	}
	extras := make([]string, 0)
	for key := range categories {
		if !seen[key] {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	keys = append(keys, extras...)

	breakdown := make([]CategoryStats, 0, len(keys))
	for _, key := range keys {
		category := categories[key]
		cs := CategoryStats{Key: key, Title: category.Title, WordCount: len(category.Words)}
		for _, w := range category.Words {
			if w.Understanding {
				cs.Understood++
			}
			if w.Speaking {
				cs.Spoken++
				cs.SpokenWords = append(cs.SpokenWords, w.Word)
			}
		}
		breakdown = append(breakdown, cs)
	}
	return breakdown
}

// LanguageShares computes each selected language's share of total
// spoken words as a rounded percentage. Each share is rounded
// independently, so the percentages need not sum to exactly 100.
func LanguageShares(child *models.Child) []LanguageShare {
	shares := make([]LanguageShare, 0, len(child.SelectedLanguages))
	total := 0
	for _, lang := range child.SelectedLanguages {
		spoken := TotalsForLanguage(child, lang).Spoken
		shares = append(shares, LanguageShare{Language: lang, Spoken: spoken})
		total += spoken
	}
	if total == 0 {
		return shares
	}
	for i := range shares {
		shares[i].Percent = int(math.Round(float64(shares[i].Spoken) / float64(total) * 100))
	}
	return shares
}

// AgeHistogram buckets one language's spoken words by the age they were
// first spoken at, ascending. Words with no recorded age are excluded.
func AgeHistogram(child *models.Child, lang models.Language) []AgeBucket {
	counts := make(map[int]int)
	for _, category := range child.Categories[lang] {
		for _, w := range category.Words {
			if w.Speaking && w.FirstSpokenAge != nil {
				counts[*w.FirstSpokenAge]++
			}
		}
	}

	buckets := make([]AgeBucket, 0, len(counts))
	for age, count := range counts {
		buckets = append(buckets, AgeBucket{AgeMonths: age, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].AgeMonths < buckets[j].AgeMonths
	})
	return buckets
}

// CumulativeAgeHistogram returns, per selected language, the running
// total of spoken words across ascending first-spoken ages. Used for
// report charts.
func CumulativeAgeHistogram(child *models.Child) map[models.Language][]AgeBucket {
	result := make(map[models.Language][]AgeBucket, len(child.SelectedLanguages))
	for _, lang := range child.SelectedLanguages {
		buckets := AgeHistogram(child, lang)
		running := 0
		for i := range buckets {
			running += buckets[i].Count
			buckets[i].Count = running
		}
		result[lang] = buckets
	}
	return result
}
