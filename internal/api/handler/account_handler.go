package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinepass/cinema-platform/internal/core/domain"
	"github.com/cinepass/cinema-platform/internal/core/ports"
)

// AccountHandler handles principal registration and gated account access.
type AccountHandler struct {
	authService ports.AuthService
}

func NewAccountHandler(authService ports.AuthService) *AccountHandler {
	return &AccountHandler{authService: authService}
}

// --- Request / Response types ---

type registerRequest struct {
	Login    string `json:"login"    validate:"required,max=128"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=ROLE_USER ROLE_ADMIN"`
	Status   string `json:"status"   validate:"omitempty,oneof=open closed"`
}

type updateAccountRequest struct {
	Login    string `json:"login"    validate:"omitempty,max=128"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=ROLE_USER ROLE_ADMIN"`
	Status   string `json:"status"   validate:"omitempty,oneof=open closed"`
}

type accountResponse struct {
	UID       string    `json:"uid"`
	Login     string    `json:"login"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toAccountResponse(u *domain.User) accountResponse {
	return accountResponse{
		UID:       u.UID,
		Login:     u.Login,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Register handles POST /account.
//
// @Summary      Register a new account
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /account [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Login, req.Password, req.Role, req.Status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toAccountResponse(user))
}

// Get handles GET /account/:uid, where uid may be "me".
//
// @Summary      Get an account by UID
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Param        uid  path      string  true  "Account UID, or 'me' for the caller"
// @Success      200  {object}  accountResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /account/{uid} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	callerUID, callerRole, err := callerIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.authService.GetAccount(c.Request().Context(), ports.AccountAccessInput{
		TargetUID:  resolveAccountUID(c.Param("uid"), callerUID),
		CallerUID:  callerUID,
		CallerRole: callerRole,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAccountResponse(user))
}

// Update handles PUT /account/:uid, where uid may be "me".
//
// @Summary      Update an account by UID
// @Tags         account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        uid   path      string                true  "Account UID, or 'me' for the caller"
// @Param        body  body      updateAccountRequest  true  "Fields to update"
// @Success      201   {object}  accountResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /account/{uid} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	callerUID, callerRole, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.UpdateAccount(c.Request().Context(), ports.UpdateAccountInput{
		AccountAccessInput: ports.AccountAccessInput{
			TargetUID:  resolveAccountUID(c.Param("uid"), callerUID),
			CallerUID:  callerUID,
			CallerRole: callerRole,
		},
		Login:    req.Login,
		Password: req.Password,
		Role:     req.Role,
		Status:   req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toAccountResponse(user))
}
