package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quoteforms/services"
)

// priceRequest is the body of a price preview call for one window.
type priceRequest struct {
	Width           flexFloat `json:"width"`
	Height          flexFloat `json:"height"`
	Fabric          string    `json:"fabric"`
	DiscountPercent flexFloat `json:"discountPercent"`
}

// priceResponse carries the customer-facing price fields. Cost price is
// internal and never included.
type priceResponse struct {
	Available   bool    `json:"available"`
	Price       float64 `json:"price"`
	BasePrice   float64 `json:"basePrice"`
	LinearPrice float64 `json:"linearPrice"`
}

// HandlePrice returns a handler that prices a single window. Products
// without a pricing table always answer available=false.
func HandlePrice(engines map[string]*services.Engine) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		slug := e.Request.PathValue("product")
		if _, ok := services.ProductBySlug(slug); !ok {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "unknown product"})
		}

		var req priceRequest
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		engine := engines[slug]
		if engine == nil {
			return e.JSON(http.StatusOK, priceResponse{})
		}

		line, err := engine.PriceLineItem(float64(req.Width), float64(req.Height), req.Fabric, float64(req.DiscountPercent))
		if err != nil {
			return e.JSON(http.StatusOK, priceResponse{})
		}

		return e.JSON(http.StatusOK, priceResponse{
			Available:   true,
			Price:       line.Price,
			BasePrice:   line.BasePrice,
			LinearPrice: line.LinearPrice,
		})
	}
}
