package payment

import (
	"net/http"
	"strings"

	"github.com/gambo-stadium/gambo-api/config"
	"github.com/gambo-stadium/gambo-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentController fabricates checkout sessions. No payment provider is
// ever called; the URLs only look like real checkout links. Kept behind its
// own package so a real integration can replace it without touching the
// ledgers.
type PaymentController struct {
	config *config.Config
}

// NewPaymentController creates a new PaymentController.
func NewPaymentController(cfg *config.Config) *PaymentController {
	return &PaymentController{config: cfg}
}

type PaymentSessionRequest struct {
	GroundName string  `json:"groundName" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Time       string  `json:"time" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
}

type SubscriptionSessionRequest struct {
	Package      string   `json:"package" binding:"required"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	Coach        string   `json:"coach" binding:"required"`
	Players      int      `json:"players" binding:"required,min=1,max=6"`
	TrainingDays []string `json:"trainingDays" binding:"required,min=1,max=3"`
}

type SessionResponse struct {
	Success   bool   `json:"success"`
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

func newSessionID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// CreateSession godoc
// @Summary      Create a checkout session for a booking
// @Description  Returns a fabricated checkout URL. Stub only.
// @Tags         Payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        session body PaymentSessionRequest true "Booking being paid for"
// @Success      200 {object} SessionResponse
// @Router       /payments/session [post]
func (pc *PaymentController) CreateSession(c *gin.Context) {
	var req PaymentSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	sessionID := newSessionID("cs_test_")
	c.JSON(http.StatusOK, SessionResponse{
		Success:   true,
		URL:       "https://checkout.stripe.com/pay/" + sessionID,
		SessionID: sessionID,
	})
}

// CreateSubscription godoc
// @Summary      Create a checkout session for a premium subscription
// @Description  Returns a fabricated checkout URL. Stub only.
// @Tags         Payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        session body SubscriptionSessionRequest true "Subscription being paid for"
// @Success      200 {object} SessionResponse
// @Router       /payments/subscription [post]
func (pc *PaymentController) CreateSubscription(c *gin.Context) {
	var req SubscriptionSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	sessionID := newSessionID("sub_")
	c.JSON(http.StatusOK, SessionResponse{
		Success:   true,
		URL:       "https://checkout.stripe.com/pay/" + sessionID,
		SessionID: sessionID,
	})
}

// VerifySession godoc
// @Summary      Verify a checkout session
// @Description  Always reports success with a fabricated payment id. Stub
// @Description  only.
// @Tags         Payments
// @Security     BearerAuth
// @Produce      json
// @Param        sessionId path string true "Checkout session id"
// @Success      200 {object} map[string]interface{}
// @Router       /payments/verify/{sessionId} [get]
func (pc *PaymentController) VerifySession(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.BadRequestJSON(c, "Missing session id")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"sessionId": sessionID,
		"paymentId": newSessionID("pay_"),
	})
}
