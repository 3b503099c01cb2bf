package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the {"error":{"message":...}} envelope every failed request
// answers with. Status travels with it to the error middleware.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

func New(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

func Internal() Response {
	return New(http.StatusInternalServerError, "Internal server error")
}

// AbortWithError writes the envelope and keeps err on the context so the
// error middleware can log server-side failures with their stack.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(status, msg)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// FromError returns the envelope attached by AbortWithError, if any.
func FromError(ginErr *gin.Error) (Response, bool) {
	if ginErr == nil || !ginErr.IsType(gin.ErrorTypePublic) {
		return Response{}, false
	}
	resp, ok := ginErr.Meta.(Response)
	return resp, ok
}
