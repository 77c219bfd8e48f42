package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"error_code"`
	Message string `json:"error"`
}

type ValidationError struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Success: false,
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// ValidationFailed devolve a lista de erros de validação no mesmo
// formato {success:false, errors:[...]} consumido pelos clients.
func ValidationFailed(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, ValidationError{
		Success: false,
		Errors:  errs,
	})
}
