package api

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"RiskBoard/internal/domain/models"
	"RiskBoard/internal/usecase"
	xhttp "RiskBoard/pkg/http"
	xlogger "RiskBoard/pkg/logger"

	"github.com/labstack/echo/v4"
)

const sessionHeader = "X-Session-ID"

// DashboardEchoHandler exposes the render cycle over HTTP. The renderer is
// any client of this API; it receives plain data and decides presentation.
type DashboardEchoHandler struct {
	logger      *xlogger.Logger
	dash        *usecase.Dashboard
	environment string
}

func NewDashboardEchoHandler(logger *xlogger.Logger, dash *usecase.Dashboard, environment string) *DashboardEchoHandler {
	return &DashboardEchoHandler{logger: logger, dash: dash, environment: environment}
}

func (h *DashboardEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/dashboard", h.Dashboard)
	g.POST("/auth", h.Authenticate)
	g.POST("/token", h.IssueToken)
	e.GET("/health", h.Health)
}

// Dashboard runs one render cycle without a user event.
func (h *DashboardEchoHandler) Dashboard(c echo.Context) error {
	sid := h.sessionID(c)

	resp, err := h.dash.Render(c.Request().Context(), sid, nil)
	if err != nil {
		h.logger.Error("render cycle failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError("market data unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, resp)
}

// Authenticate records a token submission and runs the render cycle that
// resolves it, so one round trip carries the outcome message.
func (h *DashboardEchoHandler) Authenticate(c echo.Context) error {
	req := &models.AuthRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	sid := h.sessionID(c)

	resp, err := h.dash.Render(c.Request().Context(), sid, &models.AuthEvent{Token: req.Token})
	if err != nil {
		h.logger.Error("render cycle failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError("market data unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, resp)
}

// IssueToken mints a fresh access token. Development helper only.
func (h *DashboardEchoHandler) IssueToken(c echo.Context) error {
	if h.environment != "development" {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("not found"))
	}

	req := &models.IssueTokenRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	token, err := h.dash.IssueToken(time.Duration(req.TTLSeconds) * time.Second)
	if err != nil {
		h.logger.Error("token issue failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.CreatedResponse(c, models.IssueTokenResponse{
		Token:   token,
		Message: models.MsgTokenCreated,
	})
}

// Health is the liveness endpoint.
func (h *DashboardEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

// sessionID returns the caller's session id, minting one for first-time
// visitors. The id is echoed back so the client can carry it forward.
func (h *DashboardEchoHandler) sessionID(c echo.Context) string {
	sid := c.Request().Header.Get(sessionHeader)
	if sid == "" {
		buf := make([]byte, 16)
		_, _ = rand.Read(buf)
		sid = hex.EncodeToString(buf)
	}
	c.Response().Header().Set(sessionHeader, sid)
	return sid
}
