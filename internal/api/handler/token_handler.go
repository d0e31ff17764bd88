package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinepass/cinema-platform/internal/core/domain"
	"github.com/cinepass/cinema-platform/internal/core/ports"
)

// TokenHandler handles credential issuance, validation, and refresh.
type TokenHandler struct {
	authService ports.AuthService
}

func NewTokenHandler(authService ports.AuthService) *TokenHandler {
	return &TokenHandler{authService: authService}
}

type issueTokensRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenPairResponse struct {
	AccessToken      string    `json:"accessToken"`
	AccessExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshToken     string    `json:"refreshToken"`
	RefreshExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}

type validateTokenResponse struct {
	AccessToken     string    `json:"accessToken"`
	AccessExpiresAt time.Time `json:"accessTokenExpiresAt"`
	UserUID         string    `json:"userId"`
	Role            string    `json:"role"`
}

func toTokenPairResponse(p *domain.TokenPair) tokenPairResponse {
	return tokenPairResponse{
		AccessToken:      p.AccessToken,
		AccessExpiresAt:  p.AccessExpiresAt,
		RefreshToken:     p.RefreshToken,
		RefreshExpiresAt: p.RefreshExpiresAt,
	}
}

// Issue handles POST /token.
//
// @Summary      Authenticate and obtain a token pair
// @Tags         token
// @Accept       json
// @Produce      json
// @Param        body  body      issueTokensRequest  true  "Login credentials"
// @Success      201   {object}  tokenPairResponse
// @Failure      401   {object}  map[string]string
// @Router       /token [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	var req issueTokensRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	pair, err := h.authService.IssueTokens(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toTokenPairResponse(pair))
}

// Validate handles GET /validate/:accessToken. This endpoint is
// unauthenticated by design: it IS the validation primitive the other
// services' gates call over the network.
//
// @Summary      Validate an access token
// @Tags         token
// @Produce      json
// @Param        accessToken  path      string  true  "Access token to validate"
// @Success      200          {object}  validateTokenResponse
// @Failure      404          {object}  map[string]string
// @Router       /validate/{accessToken} [get]
func (h *TokenHandler) Validate(c echo.Context) error {
	token := c.Param("accessToken")

	claims, err := h.authService.Validate(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, validateTokenResponse{
		AccessToken:     token,
		AccessExpiresAt: claims.ExpiresAt,
		UserUID:         claims.UserUID,
		Role:            claims.Role,
	})
}

// Refresh handles POST /refresh-token/:refreshToken/token.
//
// @Summary      Exchange a refresh token for a new token pair
// @Tags         token
// @Produce      json
// @Param        refreshToken  path      string  true  "Refresh token"
// @Success      201           {object}  tokenPairResponse
// @Failure      404           {object}  map[string]string
// @Router       /refresh-token/{refreshToken}/token [post]
func (h *TokenHandler) Refresh(c echo.Context) error {
	pair, err := h.authService.Refresh(c.Request().Context(), c.Param("refreshToken"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toTokenPairResponse(pair))
}
