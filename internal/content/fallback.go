package content

import (
	"fmt"
	"math/rand/v2"

	"github.com/ppiankov/domainhunter/internal/model"
	"github.com/ppiankov/domainhunter/internal/util"
)

var sampleKeywords = []string{
	"technology", "business", "marketing", "development", "strategy",
	"innovation", "digital", "growth", "success", "professional",
}

// Fallback synthesizes a plausible ContentSignals bundle for domain.
// The same domain always yields the same bundle.
func Fallback(domain string) model.ContentSignals {
	seed := util.StableSeed(domain)
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	between := func(lo, hi int) int { return lo + r.IntN(hi-lo+1) }
	uniform := func(lo, hi float64) float64 { return lo + r.Float64()*(hi-lo) }

	niche := model.Niches[r.IntN(len(model.Niches))]
	quality := between(30, 95)
	spam := between(0, 30)
	brandability := between(40, 90)

	k := between(5, 10)
	perm := r.Perm(len(sampleKeywords))
	keywords := make([]string, k)
	for i := 0; i < k; i++ {
		keywords[i] = sampleKeywords[perm[i]]
	}

	sentiment := model.Sentiment{
		Positive: round3(uniform(0.3, 0.7)),
		Negative: round3(uniform(0.0, 0.2)),
		Neutral:  round3(uniform(0.3, 0.5)),
		Compound: round4(uniform(0.1, 0.6)),
	}

	return model.ContentSignals{
		Niche:             niche,
		ContentQuality:    quality,
		SpamScore:         spam,
		BrandabilityScore: brandability,
		Readability:       between(60, 90),
		Sentiment:         sentiment,
		Keywords:          keywords,
		HistoricalText: fmt.Sprintf("This is sample historical content for %s. "+
			"It covers topics related to the domain's %s niche.", domain, niche),
		Language: "english",
		Fallback: true,
	}
}
