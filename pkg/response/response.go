package response

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"campaign-srv/pkg/discord"
	"campaign-srv/pkg/errors"
)

// OK renders a 200 response with the standard body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error renders an error response. Known HTTPError values keep their status
// code; everything else becomes a 400 with the raw message (binding errors).
// 5xx responses are forwarded to Discord so operators see them.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	if httpErr, ok := err.(*errors.HTTPError); ok {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		if httpErr.Code >= http.StatusInternalServerError {
			notify(c, notifier, httpErr.Message)
		}
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
	})
}

// ErrorWithMap renders an error response, translating domain errors through
// the supplied mapping first.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, notifier discord.IDiscord) {
	if httpErr, ok := mapping[err]; ok {
		Error(c, httpErr, notifier)
		return
	}
	Error(c, err, notifier)
}

// PanicError renders a 500 for a recovered panic and notifies Discord.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
	notify(c, notifier, fmt.Sprintf("panic: %v", recovered))
}

func notify(c *gin.Context, notifier discord.IDiscord, message string) {
	if notifier == nil {
		return
	}
	path := c.Request.Method + " " + c.Request.URL.Path
	// Fire and forget; a failed webhook must never affect the response.
	go func() {
		_ = notifier.SendError(context.Background(), "API Error", path, fmt.Errorf("%s", message))
	}()
}
