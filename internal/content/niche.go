package content

import (
	"strings"

	"github.com/ppiankov/domainhunter/internal/model"
)

// nicheVocabulary maps each niche to the keywords that vote for it.
// Keys follow model.Niches; classification walks that slice, not this map.
var nicheVocabulary = map[string][]string{
	model.NicheTechnology:    {"technology", "software", "programming", "development", "tech", "app", "digital", "code", "computer", "internet"},
	model.NicheHealth:        {"health", "medical", "fitness", "wellness", "nutrition", "doctor", "medicine", "healthcare", "diet", "exercise"},
	model.NicheFinance:       {"finance", "money", "investment", "banking", "trading", "cryptocurrency", "financial", "loan", "credit", "insurance"},
	model.NicheTravel:        {"travel", "vacation", "hotel", "flight", "tourism", "destination", "trip", "adventure", "explore", "journey"},
	model.NicheEducation:     {"education", "learning", "school", "university", "course", "student", "teaching", "academic", "study", "knowledge"},
	model.NicheEntertainment: {"entertainment", "movie", "music", "game", "celebrity", "news", "sports", "fun", "show", "media"},
	model.NicheBusiness:      {"business", "entrepreneur", "startup", "company", "marketing", "sales", "corporate", "management", "strategy", "success"},
	model.NicheFood:          {"food", "recipe", "cooking", "restaurant", "cuisine", "chef", "meal", "ingredients", "kitchen", "dining"},
	model.NicheFashion:       {"fashion", "style", "clothing", "designer", "trend", "outfit", "beauty", "accessories", "brand", "wardrobe"},
}

// classifyNiche returns the niche whose keywords occur most often in text.
// Matching is case-insensitive substring counting, so "apps" counts toward "app".
// Ties go to the niche declared first. No hits yields General, blank text Unknown.
func classifyNiche(text string) string {
	if strings.TrimSpace(text) == "" {
		return model.NicheUnknown
	}

	lower := strings.ToLower(text)
	best, bestCount := model.NicheGeneral, 0

	for _, niche := range model.Niches {
		count := countAll(lower, nicheVocabulary[niche])
		if count > bestCount {
			best, bestCount = niche, count
		}
	}

	return best
}

// countAll sums non-overlapping occurrences of every phrase in s.
func countAll(s string, phrases []string) int {
	total := 0
	for _, p := range phrases {
		total += strings.Count(s, p)
	}
	return total
}
