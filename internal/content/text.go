package content

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const maxKeywords = 20

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+|[^\p{L}\p{N}_\s]`)

// englishMarkers are counted as raw substrings, so "in" also matches inside "internet".
var englishMarkers = []string{
	"the", "and", "or", "but", "in", "on", "at", "to",
	"for", "of", "with", "by", "is", "are", "was", "were",
}

var stopWords = toSet(
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "your", "yours",
	"yourself", "yourselves", "he", "him", "his", "himself", "she", "her", "hers", "herself",
	"it", "its", "itself", "they", "them", "their", "theirs", "themselves", "what", "which",
	"who", "whom", "this", "that", "these", "those", "am", "is", "are", "was", "were", "be",
	"been", "being", "have", "has", "had", "having", "do", "does", "did", "doing", "a", "an",
	"the", "and", "but", "if", "or", "because", "as", "until", "while", "of", "at", "by",
	"for", "with", "about", "against", "between", "into", "through", "during", "before",
	"after", "above", "below", "to", "from", "up", "down", "in", "out", "on", "off", "over",
	"under", "again", "further", "then", "once", "here", "there", "when", "where", "why",
	"how", "all", "any", "both", "each", "few", "more", "most", "other", "some", "such", "no",
	"nor", "not", "only", "own", "same", "so", "than", "too", "very", "can", "will", "just",
	"don", "should", "now", "also", "would", "could", "shall", "may", "might", "must",
	"aren", "couldn", "didn", "doesn", "hadn", "hasn", "haven", "isn", "mightn", "mustn",
	"needn", "shan", "shouldn", "wasn", "weren", "won", "wouldn",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// tokenize splits text into word runs and single punctuation marks.
func tokenize(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// abbreviations end in a period without ending the sentence.
var abbreviations = toSet(
	"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "mt", "vs", "etc",
	"inc", "ltd", "co", "corp", "fig", "approx", "dept", "e.g", "i.e",
)

// splitSentences splits text on '.', '!' or '?' followed by whitespace.
// A period after a known abbreviation or a single-letter initial does not
// end a sentence.
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			if i+1 < len(text) && (text[i+1] == ' ' || text[i+1] == '\t') {
				if r == '.' && isAbbreviation(current.String()) {
					continue
				}
				flush()
			}
		}
	}
	flush()

	return sentences
}

// isAbbreviation reports whether the last word of s, which ends in '.',
// is an abbreviation or an initial.
func isAbbreviation(s string) bool {
	word := strings.TrimSuffix(s, ".")
	if i := strings.LastIndexAny(word, " \t(\"'"); i >= 0 {
		word = word[i+1:]
	}
	if word == "" {
		return false
	}
	if r := []rune(word); len(r) == 1 {
		return unicode.IsUpper(r[0]) && r[0] != 'I'
	}
	_, ok := abbreviations[strings.ToLower(word)]
	return ok
}

// extractKeywords returns up to 20 of the most frequent content words.
// Equal counts keep first-seen order, so output is deterministic.
func extractKeywords(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	counts := make(map[string]int)
	var order []string

	for _, tok := range tokenize(strings.ToLower(text)) {
		if utf8.RuneCountInString(tok) <= 2 || !isAlpha(tok) {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// detectLanguage reports "english" when common English function words
// appear more than ten times in total.
func detectLanguage(text string) string {
	if strings.TrimSpace(text) == "" {
		return "unknown"
	}
	if countAll(strings.ToLower(text), englishMarkers) > 10 {
		return "english"
	}
	return "unknown"
}

// readability is a Flesch-style ease score clamped to 0-100.
func readability(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	sentences := splitSentences(text)
	tokens := tokenize(text)
	if len(sentences) == 0 || len(tokens) == 0 {
		return 0
	}

	chars := 0
	for _, tok := range tokens {
		chars += utf8.RuneCountInString(tok)
	}

	avgSentence := float64(len(tokens)) / float64(len(sentences))
	avgWord := float64(chars) / float64(len(tokens))

	ease := 206.835 - 1.015*avgSentence - 84.6*avgWord
	if ease < 0 {
		return 0
	}
	if ease > 100 {
		return 100
	}
	return int(ease)
}

// ExtractText returns the visible text of an HTML document,
// skipping script, style, noscript and iframe content.
func ExtractText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "template":
				return
			}
		}

		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String()), nil
}
