package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
)

// Recovery converts any panic escaping a handler into a well-formed
// 500 response. On this class of hosting an unhandled fault surfaces
// as an opaque gateway error with nothing to diagnose from, so every
// request must produce a real response. The fault's message is exposed
// as detail; stack traces go to the log only.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				msg := fmt.Sprint(rec)
				log.Printf("Recovered from panic: %s\n%s", msg, debug.Stack())

				wantsJSON := strings.Contains(
					strings.ToLower(c.Request.Header.Get("Accept")), "application/json")

				c.Header("Cache-Control", "no-store")
				if wantsJSON {
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
						"ok":     false,
						"error":  "Internal error",
						"detail": msg,
					})
					return
				}
				c.String(http.StatusInternalServerError, "Internal error: "+msg)
				c.Abort()
			}
		}()

		c.Next()
	}
}
