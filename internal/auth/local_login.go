package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/model"
	"github.com/seifeddinerezgui/gethrought/internal/store"
	"github.com/seifeddinerezgui/gethrought/internal/utilities"
)

// LocalAuthHandler holds store reference for handler methods.
type LocalAuthHandler struct {
	Store  store.Store
	Tokens *Tokens
	Logger *zap.Logger
}

// NewLocalAuthHandler creates a new instance of LocalAuthHandler.
func NewLocalAuthHandler(s store.Store, tokens *Tokens, logger *zap.Logger) *LocalAuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalAuthHandler{
		Store:  s,
		Tokens: tokens,
		Logger: logger,
	}
}

type loginInfo struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"accessToken"`
}

// LocalLoginHandler function handles local login by receiving username and password
// do nothing if username does not exist in the database
// do nothing if password is incorrect
// @Summary Handles local login of back-office accounts
// @Description Username must exist and password match
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials for login"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 401 {object} utilities.ErrorResponse "Username not exist or password incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Database or token error"
// @Router /auth/login [post]
func (lh *LocalAuthHandler) LocalLoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username or password is not provided",
		})
		return
	}

	user, err := lh.Store.GetUserByUsername(c.Request.Context(), info.Username)

	switch {
	case errors.Is(err, store.ErrNotFound):
		LogAuthAttempt(lh.Logger, zap.WarnLevel, "Local", StatusFail, info.Username, "unknown username")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
		})
		return

	case err == nil:
		// Do nothing

	default:
		lh.Logger.Error("failed to look up user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Database error",
		})
		return
	}

	if user.Password == "" || !utilities.VerifyPassword(info.Password, user.Password) {
		LogAuthAttempt(lh.Logger, zap.WarnLevel, "Local", StatusFail, info.Username, "wrong password")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
		})
		return
	}

	accessToken, err := lh.Tokens.GenerateToken(user.ID)
	if err != nil {
		lh.Logger.Error("failed to generate access token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to generate access token",
		})
		return
	}

	LogAuthAttempt(lh.Logger, zap.InfoLevel, "Local", StatusSuccess, info.Username, "")
	c.JSON(http.StatusOK, LoginResponse{
		User:        user,
		AccessToken: accessToken,
	})
}
