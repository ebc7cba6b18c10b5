package provider

import (
	"context"
	"math/rand/v2"

	"github.com/ppiankov/domainhunter/internal/model"
	"github.com/ppiankov/domainhunter/internal/util"
)

// MockSEO synthesizes plausible metrics seeded by the domain name, standing
// in for a commercial SEO API. The same domain always gets the same metrics.
type MockSEO struct{}

// NewMockSEO creates a mock SEO provider.
func NewMockSEO() *MockSEO {
	return &MockSEO{}
}

// Metrics returns deterministic metrics for domain.
func (m *MockSEO) Metrics(ctx context.Context, domain string) (*model.SeoMetrics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return mockMetrics(domain), nil
}

func mockMetrics(domain string) *model.SeoMetrics {
	seed := util.StableSeed("seo:" + domain)
	r := rand.New(rand.NewPCG(seed, seed>>1|1))
	between := func(lo, hi int) int {
		if hi < lo {
			hi = lo
		}
		return lo + r.IntN(hi-lo+1)
	}

	da := between(5, 85)
	pa := between(5, min(da+15, 95))
	backlinks := between(10, da*100)
	referring := between(5, min(backlinks/10, 1000))
	tf := between(5, 60)
	cf := between(tf, min(tf+20, 80))
	traffic := between(0, da*50)
	spam := between(0, 30)

	return &model.SeoMetrics{
		DomainAuthority:  model.Int(da),
		PageAuthority:    model.Int(pa),
		Backlinks:        model.Int(backlinks),
		ReferringDomains: model.Int(referring),
		TrustFlow:        model.Int(tf),
		CitationFlow:     model.Int(cf),
		OrganicTraffic:   model.Int(traffic),
		SpamScore:        model.Int(spam),
	}
}
