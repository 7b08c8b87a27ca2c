package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "twofold/internal/errors"
	"twofold/internal/logger"
	"twofold/internal/middleware"
	"twofold/internal/session"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// periodQuery is the year/month selector shared by the savings reads.
// Zero values are replaced with the current calendar month.
type periodQuery struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}

// getSession extracts the authenticated session from the Gin context.
// Returns ErrUnauthorized if not present.
func getSession(c *gin.Context) (session.Session, error) {
	sess, ok := middleware.GetSession(c)
	if !ok || sess.UserID == "" {
		return session.Session{}, apperrors.ErrUnauthorized
	}
	if sess.Expired(time.Now()) {
		return session.Session{}, apperrors.ErrSessionExpired
	}
	return sess, nil
}

// bindPeriod reads ?year=&month= and fills in whatever is missing from now.
func bindPeriod(c *gin.Context, now time.Time) (periodQuery, error) {
	var q periodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	if q.Year == 0 {
		q.Year = now.Year()
	}
	if q.Month == 0 {
		q.Month = int(now.Month())
	}
	return q, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
