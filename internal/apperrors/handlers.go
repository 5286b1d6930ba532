package apperrors

import (
	"joblink"

	"github.com/gin-gonic/gin"
)

// Respond writes err as the wire error envelope. Unknown error types are
// hidden behind a generic 500.
func Respond(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = Internal(err)
	}

	if appErr.HTTPCode >= 500 {
		joblink.Logger.Error().Err(appErr.Unwrap()).Str("code", string(appErr.Code)).Msg("request failed")
	}

	c.JSON(appErr.HTTPCode, gin.H{
		"success": false,
		"code":    appErr.Code,
		"error":   appErr.Message,
	})
}
