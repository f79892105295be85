package http

import (
	"errors"
	"net/http"

	"github.com/MMN3003/tokenrates/src/logger"
	"github.com/MMN3003/tokenrates/src/rate/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Handler binds usecase + analyzer + logger
type Handler struct {
	service  domain.RateUseCase
	analyzer domain.ContentAnalyzer
	logger   *logger.Logger
}

func NewHandler(s domain.RateUseCase, a domain.ContentAnalyzer, l *logger.Logger) *Handler {
	return &Handler{service: s, analyzer: a, logger: l}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/rates", h.ListPairs)
	r.GET("/rates/:from/:to", h.GetRate)
	r.POST("/rates/estimate", h.EstimateOutput)
	r.POST("/rates/reset", h.ResetRates)
	r.GET("/tokens/:token/pairs", h.ListTokenPairs)
	r.GET("/tokens/:token/demand", h.GetDemand)
	r.POST("/swaps/validate", h.ValidateSwap)
	r.POST("/swaps", h.RecordSwap)
	r.POST("/contributions", h.SubmitContribution)
}

// ListPairs godoc
//
//	@Summary		List active pairs
//	@Description	Get every active pair with its current rate
//	@Tags			rates
//	@Produce		json
//	@Success		200	{object}	ListPairsResponse
//	@Router			/rates [get]
func (h *Handler) ListPairs(c *gin.Context) {
	c.JSON(http.StatusOK, ListPairsResponseFromDomain(h.service.GetAllTokenPairs()))
}

// GetRate godoc
//
//	@Summary		Get pair rate
//	@Description	Get the current rate of an active directed pair
//	@Tags			rates
//	@Produce		json
//	@Param			from	path		string	true	"From token"
//	@Param			to		path		string	true	"To token"
//	@Success		200		{object}	RateResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/rates/{from}/{to} [get]
func (h *Handler) GetRate(c *gin.Context) {
	from, to := c.Param("from"), c.Param("to")
	rate, ok := h.service.GetRate(from, to)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "pair not found"})
		return
	}
	c.JSON(http.StatusOK, RateResponse{FromToken: from, ToToken: to, Rate: rate})
}

// ListTokenPairs godoc
//
//	@Summary		List pairs for a token
//	@Description	Get active pairs where the token is on either side
//	@Tags			tokens
//	@Produce		json
//	@Param			token	path		string	true	"Token"
//	@Success		200		{object}	ListPairsResponse
//	@Router			/tokens/{token}/pairs [get]
func (h *Handler) ListTokenPairs(c *gin.Context) {
	c.JSON(http.StatusOK, ListPairsResponseFromDomain(h.service.GetTokenPairs(c.Param("token"))))
}

// GetDemand godoc
//
//	@Summary		Get token demand
//	@Description	Get the current demand weight of a token
//	@Tags			tokens
//	@Produce		json
//	@Param			token	path		string	true	"Token"
//	@Success		200		{object}	DemandResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/tokens/{token}/demand [get]
func (h *Handler) GetDemand(c *gin.Context) {
	token := c.Param("token")
	demand, ok := h.service.Demand(token)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "token not found"})
		return
	}
	c.JSON(http.StatusOK, DemandResponse{Token: token, Demand: demand})
}

// EstimateOutput godoc
//
//	@Summary		Estimate swap output
//	@Description	Quote a swap against the live rate table
//	@Tags			rates
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SwapRequestBody	true	"Request body"
//	@Success		200		{object}	EstimateResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/rates/estimate [post]
func (h *Handler) EstimateOutput(c *gin.Context) {
	req, amount, ok := h.bindSwap(c, "EstimateOutput")
	if !ok {
		return
	}

	est, found := h.service.EstimateOutput(req.FromToken, req.ToToken, amount)
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no quote for pair and amount"})
		return
	}
	c.JSON(http.StatusOK, EstimateResponse{
		FromToken:    req.FromToken,
		ToToken:      req.ToToken,
		Amount:       amount,
		OutputAmount: est.OutputAmount,
		Fee:          est.Fee,
	})
}

// ValidateSwap godoc
//
//	@Summary		Validate swap
//	@Description	Check that a pair is active and the amount is inside its limits
//	@Tags			swaps
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SwapRequestBody	true	"Request body"
//	@Success		200		{object}	ValidateSwapResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/swaps/validate [post]
func (h *Handler) ValidateSwap(c *gin.Context) {
	req, amount, ok := h.bindSwap(c, "ValidateSwap")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ValidateSwapResponse{Valid: h.service.IsValidSwap(req.FromToken, req.ToToken, amount)})
}

// RecordSwap godoc
//
//	@Summary		Record swap
//	@Description	Record an executed swap; volume and demand feed the next rates
//	@Tags			swaps
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SwapRequestBody	true	"Request body"
//	@Success		200		{object}	RecordSwapResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/swaps [post]
func (h *Handler) RecordSwap(c *gin.Context) {
	req, amount, ok := h.bindSwap(c, "RecordSwap")
	if !ok {
		return
	}

	if !h.service.IsValidSwap(req.FromToken, req.ToToken, amount) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid swap"})
		return
	}
	h.service.RecordSwap(req.FromToken, req.ToToken, amount)

	rate, _ := h.service.GetRate(req.FromToken, req.ToToken)
	c.JSON(http.StatusOK, RecordSwapResponse{
		FromToken: req.FromToken,
		ToToken:   req.ToToken,
		Amount:    amount,
		Rate:      rate,
	})
}

// SubmitContribution godoc
//
//	@Summary		Submit contribution
//	@Description	Categorise content and raise demand for the matching token
//	@Tags			contributions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ContributionRequestBody	true	"Request body"
//	@Success		200		{object}	ContributionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/contributions [post]
func (h *Handler) SubmitContribution(c *gin.Context) {
	var req ContributionRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("SubmitContribution err: %v", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request"})
		return
	}

	var analysis domain.Analysis
	switch {
	case req.Category != "" && req.Score != nil:
		analysis = domain.Analysis{Category: req.Category, Score: *req.Score}
	case req.Category != "":
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "score is required with category"})
		return
	default:
		var err error
		analysis, err = h.analyzer.Analyze(c.Request.Context(), req.ToContribution())
		if errors.Is(err, domain.ErrEmptyContent) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		if err != nil {
			h.logger.Errorf("SubmitContribution analyze err: %v", err)
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "analysis failed"})
			return
		}
	}

	if !h.service.RecognisesCategory(analysis.Category) {
		h.logger.Warnf("SubmitContribution: unrecognised category %q", analysis.Category)
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "unrecognised category"})
		return
	}
	h.service.UpdateTokenDemand(analysis.Category, analysis.Score)
	c.JSON(http.StatusOK, ContributionResponse{Category: analysis.Category, Score: analysis.Score})
}

// ResetRates godoc
//
//	@Summary		Reset rates
//	@Description	Restore default rates, demand and volume
//	@Tags			rates
//	@Produce		json
//	@Success		200	{object}	StatusResponse
//	@Router			/rates/reset [post]
func (h *Handler) ResetRates(c *gin.Context) {
	h.service.ResetRates()
	h.logger.Infof("rates reset via API")
	c.JSON(http.StatusOK, StatusResponse{Status: "reset"})
}

// bindSwap decodes the body and parses its amount, replying 400 on failure.
func (h *Handler) bindSwap(c *gin.Context, op string) (SwapRequestBody, decimal.Decimal, bool) {
	var req SwapRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("%s err: %v", op, err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request"})
		return req, decimal.Zero, false
	}
	amount, err := req.ParseAmount()
	if err != nil {
		h.logger.Errorf("%s err: %v", op, err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid amount"})
		return req, decimal.Zero, false
	}
	return req, amount, true
}
