package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pleasure08/gplsmarthubb/pkg/paystack"
)

type PaymentHandler struct {
	pay     *paystack.Client
	feeKobo int64
	baseURL string
}

func NewPaymentHandler(pay *paystack.Client, feeKobo int64, baseURL string) *PaymentHandler {
	return &PaymentHandler{pay: pay, feeKobo: feeKobo, baseURL: baseURL}
}

type initializeRequest struct {
	Email string `json:"email" binding:"required"`
	// Amount is in naira; Paystack takes kobo.
	Amount int64 `json:"amount" binding:"required"`
}

func (h *PaymentHandler) Initialize(c *gin.Context) {
	var req initializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and amount are required"})
		return
	}
	res, err := h.pay.Initialize(c.Request.Context(), req.Email, req.Amount*100, h.baseURL+"/marketplace/new")
	if err != nil {
		writeStoreError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"authorization_url": res.AuthorizationURL,
		"reference":         res.Reference,
	})
}

type verifyRequest struct {
	Reference string `json:"reference" binding:"required"`
}

// Verify confirms a transaction paid exactly the listing fee.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment reference is required"})
		return
	}
	res, err := h.pay.Verify(c.Request.Context(), req.Reference)
	if err != nil {
		writeStoreError(c, err, "transaction not found")
		return
	}
	if !res.Paid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment verification failed"})
		return
	}
	if h.feeKobo > 0 && res.AmountKobo != h.feeKobo {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid payment amount",
			"details": "The payment amount does not match the required listing fee.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified successfully",
		"data": gin.H{
			"reference": res.Reference,
			"amount":    res.AmountKobo,
			"email":     res.Email,
			"date":      res.PaidAt,
		},
	})
}
