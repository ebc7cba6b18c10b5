package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ppiankov/domainhunter/internal/brand"
	"github.com/ppiankov/domainhunter/internal/model"
	"github.com/ppiankov/domainhunter/internal/pipeline"
	"github.com/ppiankov/domainhunter/internal/util"
)

type evaluateRequest struct {
	Domain         string            `json:"domain"`
	HistoricalText string            `json:"historical_text,omitempty"`
	CurrentText    string            `json:"current_text,omitempty"`
	SEO            *model.SeoMetrics `json:"seo,omitempty"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	report, err := s.evaluator.EvaluateRequest(r.Context(), pipeline.Request{
		Domain:     req.Domain,
		Historical: req.HistoricalText,
		Current:    req.CurrentText,
		SEO:        req.SEO,
	})
	if errors.Is(err, util.ErrInvalidDomain) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

type signalsRequest struct {
	Signals model.DomainSignals `json:"signals"`
	Weights *model.Weights      `json:"weights,omitempty"`
}

type scoreResponse struct {
	DomainName   string  `json:"domain_name"`
	OverallScore float64 `json:"overall_score"`
}

func (s *Server) decodeSignals(w http.ResponseWriter, r *http.Request) (signalsRequest, bool) {
	var req signalsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return req, false
	}
	if strings.TrimSpace(req.Signals.DomainName) == "" {
		writeError(w, http.StatusBadRequest, errors.New("signals.domain_name is required"))
		return req, false
	}
	return req, true
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSignals(w, r)
	if !ok {
		return
	}
	score := s.evaluator.Scorer().Calculate(req.Signals, req.Weights)
	writeJSON(w, http.StatusOK, scoreResponse{DomainName: req.Signals.DomainName, OverallScore: score})
}

func (s *Server) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSignals(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.evaluator.Scorer().Breakdown(req.Signals))
}

func (s *Server) handleValue(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSignals(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.evaluator.Scorer().EstimateValue(req.Signals))
}

type analyzeRequest struct {
	Domain         string `json:"domain"`
	HistoricalText string `json:"historical_text,omitempty"`
	CurrentText    string `json:"current_text,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	domain, err := util.NormalizeDomain(req.Domain)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	signals := s.evaluator.Analyzer().Analyze(domain, req.HistoricalText, req.CurrentText)
	writeJSON(w, http.StatusOK, signals)
}

type brandabilityResponse struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

func (s *Server) handleBrandability(w http.ResponseWriter, r *http.Request) {
	// Full domain names score on their registrable label, without the TLD.
	label := util.DomainLabel(chi.URLParam(r, "label"))
	writeJSON(w, http.StatusOK, brandabilityResponse{Label: label, Score: brand.Score(label)})
}

func (s *Server) handleGetWeights(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.evaluator.Scorer().Weights())
}

func (s *Server) handlePutWeights(w http.ResponseWriter, r *http.Request) {
	var update model.WeightUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	weights, ok := s.evaluator.UpdateWeights(update)
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   "weight update requires every key",
			Missing: update.Missing(),
		})
		return
	}

	writeJSON(w, http.StatusOK, weights)
}
