package content

import (
	"strings"
	"unicode"
)

var qualitySpamPhrases = []string{"click here", "buy now", "guaranteed", "free money", "limited time", "act now"}

var educationalPhrases = []string{"learn", "guide", "tutorial", "how to", "step by step", "explanation"}

var spamLexicon = []string{
	"buy now", "click here", "free money", "guaranteed", "limited time",
	"act now", "no questions asked", "risk free", "special offer",
	"amazing deal", "once in a lifetime", "get rich quick",
}

// assessQuality scores text from 0 to 100, starting at 50.
func assessQuality(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	score := 50

	words := len(strings.Fields(text))
	switch {
	case words > 500:
		score += 10
	case words > 200:
		score += 5
	case words < 50:
		score -= 20
	}

	sentences := splitSentences(text)
	if len(sentences) >= 10 {
		total := 0
		for _, s := range sentences {
			total += len(strings.Fields(s))
		}
		avg := float64(total) / float64(len(sentences))
		if avg >= 10 && avg <= 25 {
			score += 10
		}
	}

	lower := strings.ToLower(text)
	score -= 5 * countAll(lower, qualitySpamPhrases)
	score += 3 * countAll(lower, educationalPhrases)

	return clamp(score)
}

// spamScore estimates how promotional text is, from 0 (clean) to 100.
func spamScore(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	lower := strings.ToLower(text)
	score := 10 * countAll(lower, spamLexicon)

	var runes, upper, shouts int
	for _, r := range text {
		runes++
		if unicode.IsUpper(r) {
			upper++
		}
		if r == '!' || r == '?' {
			shouts++
		}
	}
	if float64(upper)/float64(runes) > 0.1 {
		score += 20
	}
	if float64(shouts)/float64(runes) > 0.05 {
		score += 15
	}

	tokens := strings.Fields(lower)
	if len(tokens) > 100 {
		freq := make(map[string]int, len(tokens))
		top := 0
		for _, tok := range tokens {
			freq[tok]++
			if freq[tok] > top {
				top = freq[tok]
			}
		}
		if float64(top) > float64(len(tokens))*0.1 {
			score += 25
		}
	}

	return clamp(score)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
