// Package http provides HTTP handlers for rate engine operations
//
// Schemes: http
// Host: localhost:8080
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

import (
	"errors"

	"github.com/MMN3003/tokenrates/src/rate/domain"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the body of every non-2xx reply
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"pair not found"`
}

// swagger:model StatusResponse
type StatusResponse struct {
	Status string `json:"status" example:"reset"`
}

// PairDto describes a tradable directed pair
// swagger:model PairDto
type PairDto struct {
	FromToken string          `json:"from_token" example:"STX"`
	ToToken   string          `json:"to_token" example:"VIZ"`
	Rate      decimal.Decimal `json:"rate" example:"2.0"`
	Fee       decimal.Decimal `json:"fee" example:"0.01"`
	MinAmount decimal.Decimal `json:"min_amount" example:"1"`
	MaxAmount decimal.Decimal `json:"max_amount" example:"1000"`
	IsActive  bool            `json:"is_active" example:"true"`
}

func PairDtoFromDomain(p domain.TokenPair) PairDto {
	return PairDto{
		FromToken: p.FromToken,
		ToToken:   p.ToToken,
		Rate:      p.Rate,
		Fee:       p.Fee,
		MinAmount: p.MinAmount,
		MaxAmount: p.MaxAmount,
		IsActive:  p.IsActive,
	}
}

// swagger:model ListPairsResponse
type ListPairsResponse struct {
	Pairs []PairDto `json:"pairs"`
}

func ListPairsResponseFromDomain(pairs []domain.TokenPair) ListPairsResponse {
	dtos := make([]PairDto, len(pairs))
	for i, p := range pairs {
		dtos[i] = PairDtoFromDomain(p)
	}
	return ListPairsResponse{Pairs: dtos}
}

// swagger:model RateResponse
type RateResponse struct {
	FromToken string          `json:"from_token" example:"STX"`
	ToToken   string          `json:"to_token" example:"VIZ"`
	Rate      decimal.Decimal `json:"rate" example:"2.0"`
}

// swagger:model DemandResponse
type DemandResponse struct {
	Token  string  `json:"token" example:"VIZ"`
	Demand float64 `json:"demand" example:"1.0"`
}

// SwapRequestBody is the payload shared by estimate, validate and record
// swagger:model SwapRequestBody
type SwapRequestBody struct {
	FromToken string `json:"from_token" binding:"required" example:"STX"`
	ToToken   string `json:"to_token" binding:"required" example:"VIZ"`
	Amount    string `json:"amount" binding:"required" example:"100.0"` // decimal string
}

var errInvalidAmount = errors.New("amount must be a non-negative decimal")

// ParseAmount converts the decimal string into a non-negative decimal.
func (b SwapRequestBody) ParseAmount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(b.Amount)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, errInvalidAmount
	}
	return amount, nil
}

// swagger:model EstimateResponse
type EstimateResponse struct {
	FromToken    string          `json:"from_token" example:"STX"`
	ToToken      string          `json:"to_token" example:"VIZ"`
	Amount       decimal.Decimal `json:"amount" example:"100.0"`
	OutputAmount decimal.Decimal `json:"output_amount" example:"198.0"`
	Fee          decimal.Decimal `json:"fee" example:"1.0"`
}

// swagger:model ValidateSwapResponse
type ValidateSwapResponse struct {
	Valid bool `json:"valid" example:"true"`
}

// swagger:model RecordSwapResponse
type RecordSwapResponse struct {
	FromToken string          `json:"from_token" example:"STX"`
	ToToken   string          `json:"to_token" example:"VIZ"`
	Amount    decimal.Decimal `json:"amount" example:"100.0"`
	Rate      decimal.Decimal `json:"rate" example:"2.2508"`
}

// ContributionRequestBody submits content for categorisation. Category and
// Score bypass the analyzer when both are given.
// swagger:model ContributionRequestBody
type ContributionRequestBody struct {
	Title       string   `json:"title" example:"Generative art study"`
	Description string   `json:"description" example:"A series of paintings drawn with code"`
	Category    string   `json:"category,omitempty" example:"CREATIVE"`
	Score       *float64 `json:"score,omitempty" binding:"omitempty,gte=0,lte=10" example:"7.5"`
}

func (b ContributionRequestBody) ToContribution() domain.Contribution {
	return domain.Contribution{
		Title:       b.Title,
		Description: b.Description,
		Category:    b.Category,
		Score:       b.Score,
	}
}

// swagger:model ContributionResponse
type ContributionResponse struct {
	Category string  `json:"category" example:"CREATIVE"`
	Score    float64 `json:"score" example:"7.5"`
}
