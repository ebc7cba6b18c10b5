package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ppiankov/domainhunter/internal/model"
)

// parseWeights reads "seo=0.5,content=0.3,brandability=0.2,spam_penalty=0.1".
// Keys may be given in any order; missing keys are left nil for the caller
// to report.
func parseWeights(s string) (model.WeightUpdate, error) {
	var u model.WeightUpdate
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, raw, ok := strings.Cut(part, "=")
		if !ok {
			return u, fmt.Errorf("weight %q: expected key=value", part)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return u, fmt.Errorf("weight %q: %w", part, err)
		}
		if value < 0 {
			return u, fmt.Errorf("weight %q: must not be negative", part)
		}

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "seo":
			u.SEO = &value
		case "content":
			u.Content = &value
		case "brandability", "brand":
			u.Brandability = &value
		case "spam_penalty", "spam":
			u.SpamPenalty = &value
		default:
			return u, fmt.Errorf("unknown weight %q (want seo, content, brandability, spam_penalty)", key)
		}
	}
	return u, nil
}
