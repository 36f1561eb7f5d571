package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the body of every non-2xx reply.
type Response struct {
	Status int     `json:"-"`
	Error  Message `json:"error"`
	Detail any     `json:"detail,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

func New(status int, msg string, detail any) Response {
	return Response{Status: status, Error: Message{Message: msg}, Detail: detail}
}

// Internal hides the cause; the logging middleware still sees it through c.Errors.
func Internal() Response {
	return New(http.StatusInternalServerError, "Internal server error", nil)
}

// AbortWithError keeps err on the gin context for the request log and writes msg to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := New(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
