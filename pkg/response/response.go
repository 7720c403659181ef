package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

// Result is the common JSON API contract. Every API reply carries
// success and message; failures still answer HTTP 200 so clients key
// off the success flag, not the status code.
type Result struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OK sends a success reply with a human-readable message.
func OK(c *gin.Context, message string) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, Result{Success: true, Message: message})
}

// OKData sends a success reply with a payload.
func OKData(c *gin.Context, message string, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, Result{Success: true, Message: message, Data: data})
}

// Fail converts err into the common failure shape.
func Fail(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, Result{Success: false, Message: appErr.Message})
}

// FailMessage sends a failure with an explicit message.
func FailMessage(c *gin.Context, message string) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, Result{Success: false, Message: message})
}

// Raw sends an arbitrary JSON body, for endpoints whose payload shape
// predates the success/message envelope (clubs/events catalog).
func Raw(c *gin.Context, body interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, body)
}
