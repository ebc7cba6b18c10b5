// Package brand scores how memorable and marketable a domain label is.
package brand

import "strings"

// Neutral is returned for labels that cannot be scored.
const Neutral = 50

var dictionaryWords = []string{"tech", "web", "digital", "smart", "pro", "express", "global", "prime"}

var spamPatterns = []string{"xxx", "zzz", "123", "abc"}

// Score rates a bare domain label (no TLD) from 0 to 100.
//
//	base 50
//	length 4-8: +20, 9-12: +10, >15: -20
//	vowel ratio in [0.2, 0.6] with both vowels and consonants: +15
//	digit: -15, hyphen: -10
//	contains a dictionary word: +10
//	contains a spam pattern: -25
//
// Empty or non-ASCII labels score Neutral.
func Score(label string) int {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" || !isASCII(label) {
		return Neutral
	}

	score := Neutral

	n := len(label)
	switch {
	case n >= 4 && n <= 8:
		score += 20
	case n >= 9 && n <= 12:
		score += 10
	case n > 15:
		score -= 20
	}

	vowels := 0
	for i := 0; i < n; i++ {
		if strings.IndexByte("aeiou", label[i]) >= 0 {
			vowels++
		}
	}
	consonants := n - vowels
	if vowels > 0 && consonants > 0 {
		ratio := float64(vowels) / float64(n)
		if ratio >= 0.2 && ratio <= 0.6 {
			score += 15
		}
	}

	if strings.ContainsAny(label, "0123456789") {
		score -= 15
	}
	if strings.Contains(label, "-") {
		score -= 10
	}

	if containsAny(label, dictionaryWords) {
		score += 10
	}
	if containsAny(label, spamPatterns) {
		score -= 25
	}

	return clamp(score)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
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
