package score

import "github.com/ppiankov/domainhunter/internal/model"

const (
	msgLowSEO        = "Low SEO metrics. Consider checking for better domains with higher authority."
	msgLowAuthority  = "Domain authority is low. May require significant SEO investment."
	msgLowContent    = "Content quality is low. Review historical content for spam or irrelevant material."
	msgUnknownNiche  = "Unable to identify clear niche. May indicate diverse or unfocused content."
	msgLowBrand      = "Low brandability score. Domain name may be difficult to remember or pronounce."
	msgHighSpam      = "High spam indicators detected. Investigate backlink profile and content history."
	msgLowTrust      = "Low trust flow relative to citation flow. May indicate spammy backlinks."
	msgExcellent     = "Excellent domain opportunity. Consider acquiring soon."
	msgGood          = "Good domain potential. Suitable for most projects."
	msgModerate      = "Moderate potential. May require additional analysis."
	msgLow           = "Low potential. Consider looking for better alternatives."
	msgAnalysisError = "Unable to generate recommendations due to analysis error."
)

// recommend emits advice in a fixed order. Each rule is checked on its own,
// then exactly one verdict for the overall score closes the list.
func recommend(signals model.DomainSignals, c model.ComponentScores, overall float64) []string {
	var recs []string

	if c.SEO < 30 {
		recs = append(recs, msgLowSEO)
	}

	da := 0
	if signals.SEO != nil {
		da = model.Value(signals.SEO.DomainAuthority)
	}
	if da < 20 {
		recs = append(recs, msgLowAuthority)
	}

	if c.Content < 40 {
		recs = append(recs, msgLowContent)
	}

	niche := model.NicheUnknown
	if signals.Content != nil && signals.Content.Niche != "" {
		niche = signals.Content.Niche
	}
	if niche == model.NicheUnknown {
		recs = append(recs, msgUnknownNiche)
	}

	if c.Brandability < 50 {
		recs = append(recs, msgLowBrand)
	}

	if c.SpamPenalty > 30 {
		recs = append(recs, msgHighSpam)
	}

	if ratio, ok := trustRatio(signals.SEO); ok && ratio < 0.3 {
		recs = append(recs, msgLowTrust)
	}

	recs = append(recs, verdict(overall))
	return recs
}

func verdict(overall float64) string {
	switch {
	case overall > 80:
		return msgExcellent
	case overall > 60:
		return msgGood
	case overall > 40:
		return msgModerate
	default:
		return msgLow
	}
}
