package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler recovers panics to a JSON 500 and logs any errors handlers
// attached to the context. Non-validation engine errors land here: they
// indicate broken invariants, so they are logged loudly rather than
// swallowed.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			}
		}()

		c.Next()

		for _, err := range c.Errors {
			log.Printf("request error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err.Err)
		}
	}
}
