package content

import (
	"math"
	"strings"
	"sync"

	"github.com/jonreiter/govader"

	"github.com/ppiankov/domainhunter/internal/model"
)

// vader loads the VADER lexicon once. PolarityScores only reads the
// lexicon maps, so one analyzer is shared across goroutines.
var vader = sync.OnceValue(govader.NewSentimentIntensityAnalyzer)

// analyzeSentiment scores the polarity of text with VADER.
// Blank text is neutral.
func analyzeSentiment(text string) model.Sentiment {
	if strings.TrimSpace(text) == "" {
		return model.NeutralSentiment()
	}

	s := vader().PolarityScores(text)
	return model.Sentiment{
		Positive: round3(s.Positive),
		Negative: round3(s.Negative),
		Neutral:  round3(s.Neutral),
		Compound: round4(s.Compound),
	}
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
