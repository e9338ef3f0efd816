package handler

import (
	"errors"
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/repository"
	auth "storefront/internal/usecase/auth_usecase"
	"storefront/internal/validator"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthHandler struct {
	signUpUC *auth.SignUpUsecase // 会員登録usecase
	signInUC *auth.SignInUsecase // ログインusecase
	sessions repository.SessionStore
	logger   *zap.Logger
}

// DIコンストラクタ
func NewAuthHandler(
	signUpUC *auth.SignUpUsecase,
	signInUC *auth.SignInUsecase,
	sessions repository.SessionStore,
	logger *zap.Logger,
) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		signUpUC: signUpUC,
		signInUC: signInUC,
		sessions: sessions,
		logger:   logger,
	}
}

// /auth/signup のリクエストボディ。
type signUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// /auth/signin のリクエストボディ。
type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// /auth を登録。me はJWT必須。
func (h *AuthHandler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc, requireUser ...echo.MiddlewareFunc) {
	g := e.Group("/auth")
	g.POST("/signup", h.signUp, session)
	g.POST("/signin", h.signIn, session)
	g.GET("/me", h.me, requireUser...)
}

// 同じセッションで認証処理が走っている間は次を受け付けない。
func (h *AuthHandler) pending(c echo.Context, run func() error) error {
	ctx := c.Request().Context()
	sid := middleware.SessionID(c)

	if !h.sessions.TryBeginAuth(ctx, sid) {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "request in progress"})
	}
	defer h.sessions.EndAuth(ctx, sid)

	return run()
}

func (h *AuthHandler) signUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	return h.pending(c, func() error {
		out, err := h.signUpUC.Execute(c.Request().Context(), auth.SignUpInput{
			Email:     req.Email,
			Password:  req.Password,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		if err != nil {
			return h.writeAuthError(c, err)
		}

		return c.JSON(http.StatusCreated, out)
	})
}

func (h *AuthHandler) signIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	return h.pending(c, func() error {
		out, err := h.signInUC.Execute(c.Request().Context(), auth.SignInInput{
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			return h.writeAuthError(c, err)
		}

		//JSONレスポンス（user + token）
		return c.JSON(http.StatusOK, out)
	})
}

// ActiveUserGuardが入れたユーザーを返す
func (h *AuthHandler) me(c echo.Context) error {
	user, ok := c.Get(middleware.CtxUserKey).(*model.User)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	return c.JSON(http.StatusOK, user)
}

// 認証エラーは1つのメッセージにして返す
func (h *AuthHandler) writeAuthError(c echo.Context, err error) error {
	status, msg := authErrorMessage(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("auth failed", zap.Error(err))
	}
	return c.JSON(status, ErrorResponse{Error: msg})
}

func authErrorMessage(err error) (int, string) {
	switch {
	case errors.Is(err, validator.ErrInvalidInput):
		return http.StatusBadRequest, "email and password are required"
	case errors.Is(err, auth.ErrInvalidEmailFormat):
		return http.StatusBadRequest, "invalid email format"
	case errors.Is(err, auth.ErrPasswordTooShort):
		return http.StatusBadRequest, "password must be at least 6 characters"
	case errors.Is(err, auth.ErrWeakPassword):
		return http.StatusBadRequest, "password is too weak"
	case errors.Is(err, auth.ErrNameTooLong):
		return http.StatusBadRequest, "name is too long"
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, auth.ErrUserInactive):
		return http.StatusForbidden, "account is disabled"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
