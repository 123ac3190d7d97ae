package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"chili/entities"
	"chili/pkg/auth/controller"
	"chili/pkg/credential/repository"
	"chili/pkg/middleware"
)

type authCtrl struct{ creds repository.CredentialRepository }

func NewAuthController(creds repository.CredentialRepository) controller.AuthController {
	return &authCtrl{creds: creds}
}

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *authCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	id, err := h.creds.CreateAccount(req.Username, req.Password, req.Role)
	if err != nil {
		var ve *entities.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Error()})
		case errors.Is(err, repository.ErrDuplicateUsername):
			return c.JSON(http.StatusConflict, map[string]string{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": id, "username": req.Username})
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, err := h.creds.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrAuthFailed) {
			// Same answer for unknown user and wrong password.
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.SetCookie(&http.Cookie{
		Name:  middleware.SessionCookie,
		Value: strconv.FormatUint(uint64(u.ID), 10),
		Path:  "/",
	})
	return c.JSON(http.StatusOK, u)
}

func (h *authCtrl) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "", Path: "/", MaxAge: -1})
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(uint)
	role, _ := c.Get("role").(string)
	return c.JSON(http.StatusOK, map[string]any{"uid": uid, "role": role})
}
