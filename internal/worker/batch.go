package worker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ppiankov/domainhunter/internal/model"
	"github.com/ppiankov/domainhunter/internal/util"
)

// Evaluator defines the interface for evaluating a domain
type Evaluator interface {
	Evaluate(ctx context.Context, domain string) (*model.Report, error)
}

// lookupKey is the limiter bucket shared by every evaluation in a batch.
const lookupKey = "lookups"

// EvaluateJob represents a domain evaluation job. A non-nil Limiter paces
// the job before its provider lookups run.
type EvaluateJob struct {
	Domain    string
	Evaluator Evaluator
	Limiter   *Limiter
}

// Execute executes the evaluation job
func (j *EvaluateJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, lookupKey); err != nil {
			return &EvaluateResult{Domain: j.Domain, Error: fmt.Errorf("rate limit: %w", err)}
		}
	}

	report, err := j.Evaluator.Evaluate(ctx, j.Domain)
	if err != nil {
		return &EvaluateResult{Domain: j.Domain, Error: err}
	}
	return &EvaluateResult{Domain: j.Domain, Report: report}
}

// EvaluateResult represents the result of an evaluation job
type EvaluateResult struct {
	Domain string
	Report *model.Report
	Error  error
}

// GetError returns the error from the evaluation result
func (r *EvaluateResult) GetError() error {
	return r.Error
}

// BatchProcessor evaluates multiple domains concurrently
type BatchProcessor struct {
	evaluator   Evaluator
	concurrency int
	limiter     *Limiter
	progress    func(done, total int, r *EvaluateResult)
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(evaluator Evaluator, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		evaluator:   evaluator,
		concurrency: concurrency,
	}
}

// Throttle paces evaluations to requestsPerSecond with the given burst.
// A non-positive rate removes pacing.
func (b *BatchProcessor) Throttle(requestsPerSecond float64, burst int) {
	if requestsPerSecond <= 0 {
		b.limiter = nil
		return
	}
	b.limiter = NewLimiter(requestsPerSecond, burst)
}

// OnProgress registers a callback invoked after each domain finishes.
// Calls are serialized.
func (b *BatchProcessor) OnProgress(fn func(done, total int, r *EvaluateResult)) {
	b.progress = fn
}

// ProcessDomains evaluates domains concurrently. Results are returned in
// input order; per-domain failures are carried in EvaluateResult.Error.
func (b *BatchProcessor) ProcessDomains(ctx context.Context, domains []string) []*EvaluateResult {
	if len(domains) == 0 {
		return []*EvaluateResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()
	defer pool.Shutdown()

	tracker := newProgressTracker(len(domains), b.progress)
	for _, domain := range domains {
		if ctx.Err() != nil {
			// Stop the workers now; unsubmitted domains are reported below.
			pool.Shutdown()
			break
		}
		pool.Submit(&progressJob{
			job:     &EvaluateJob{Domain: domain, Evaluator: b.evaluator, Limiter: b.limiter},
			tracker: tracker,
		})
	}

	results := pool.Wait()

	evaluated := make([]*EvaluateResult, len(domains))
	for i, domain := range domains {
		if i < len(results) && results[i] != nil {
			evaluated[i] = results[i].(*EvaluateResult)
			continue
		}
		err := ctx.Err()
		if err == nil {
			err = fmt.Errorf("evaluation of %s did not run", domain)
		}
		evaluated[i] = &EvaluateResult{Domain: domain, Error: err}
	}

	return evaluated
}

// ProcessFile reads domains from a file and evaluates them concurrently.
// Lines that are not valid domains are returned separately.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*EvaluateResult, []string, error) {
	domains, invalid, err := ReadDomainsFromFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read domains: %w", err)
	}

	return b.ProcessDomains(ctx, domains), invalid, nil
}

// ReadDomainsFromFile reads domains from a file (one per line).
func ReadDomainsFromFile(filePath string) (domains, invalid []string, err error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadDomains(file)
}

// ReadDomains reads one domain per line. Blank lines and # comments are
// skipped, entries are normalized and deduplicated, and lines that do not
// hold a valid domain are returned in invalid.
func ReadDomains(r io.Reader) (domains, invalid []string, err error) {
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		domain, err := util.NormalizeDomain(line)
		if err != nil || !util.ValidDomain(domain) {
			invalid = append(invalid, line)
			continue
		}

		if !seen[domain] {
			seen[domain] = true
			domains = append(domains, domain)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("scan file: %w", err)
	}

	return domains, invalid, nil
}
