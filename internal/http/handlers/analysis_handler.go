// README: Analyze endpoint; validates vehicle input and runs the full analysis.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jdmpulse/internal/modules/analysis"
	"jdmpulse/internal/modules/bidding"
	"jdmpulse/internal/modules/features"
)

// Input bounds enforced at this boundary; the engine assumes them.
const (
	minYear      = 2015
	maxMileageKm = 500_000
	minEngineCC  = 600
	maxEngineCC  = 8_000
	maxGrade     = 6
	minUserBid   = 100_000
	maxUserBid   = 20_000_000
)

type AnalysisHandler struct {
	analysis      *analysis.Service
	referenceYear int
}

func NewAnalysisHandler(svc *analysis.Service, referenceYear int) *AnalysisHandler {
	return &AnalysisHandler{analysis: svc, referenceYear: referenceYear}
}

type analyzeReq struct {
	Make          string   `json:"make"`
	Model         string   `json:"model"`
	Year          int      `json:"year"`
	MileageKm     int64    `json:"mileage_km"`
	EngineCC      int      `json:"engine_cc"`
	AuctionGrade  float64  `json:"auction_grade"`
	UserBidJPY    *int64   `json:"user_bid_jpy"`
	TargetWinProb *float64 `json:"target_win_prob"`
}

// validate returns a description of the first violated field, or "".
func (h *AnalysisHandler) validate(req analyzeReq) string {
	switch {
	case req.Make == "" || len(req.Make) > 50:
		return "make must be 1-50 characters"
	case req.Model == "" || len(req.Model) > 100:
		return "model must be 1-100 characters"
	case req.Year < minYear || req.Year > h.referenceYear:
		return fmt.Sprintf("year must be between %d and %d", minYear, h.referenceYear)
	case req.MileageKm < 0 || req.MileageKm > maxMileageKm:
		return fmt.Sprintf("mileage_km must be between 0 and %d", maxMileageKm)
	case req.EngineCC < minEngineCC || req.EngineCC > maxEngineCC:
		return fmt.Sprintf("engine_cc must be between %d and %d", minEngineCC, maxEngineCC)
	case req.AuctionGrade < 0 || req.AuctionGrade > maxGrade:
		return fmt.Sprintf("auction_grade must be between 0 and %d", maxGrade)
	case req.UserBidJPY != nil && (*req.UserBidJPY < minUserBid || *req.UserBidJPY > maxUserBid):
		return fmt.Sprintf("user_bid_jpy must be between %d and %d", minUserBid, maxUserBid)
	case req.TargetWinProb != nil && (*req.TargetWinProb < bidding.MinWinProb || *req.TargetWinProb > bidding.MaxWinProb):
		return fmt.Sprintf("target_win_prob must be between %v and %v", bidding.MinWinProb, bidding.MaxWinProb)
	}
	return ""
}

// Analyze handles POST /api/v1/analyze.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if msg := h.validate(req); msg != "" {
		writeError(c, http.StatusBadRequest, msg)
		return
	}

	areq := analysis.Request{
		Vehicle: features.Vehicle{
			Make:         req.Make,
			Model:        req.Model,
			Year:         req.Year,
			MileageKm:    req.MileageKm,
			EngineCC:     req.EngineCC,
			AuctionGrade: req.AuctionGrade,
		},
	}
	if req.UserBidJPY != nil {
		areq.UserBidJPY = *req.UserBidJPY
	}
	if req.TargetWinProb != nil {
		areq.TargetWinProb = *req.TargetWinProb
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	res, err := h.analysis.Analyze(ctx, areq)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}
