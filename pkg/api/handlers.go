package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"leadrelay/pkg/config"
	"leadrelay/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	leadService services.LeadService
	config      *config.Config
}

// NewHandlers creates a new Handlers instance
func NewHandlers(leadService services.LeadService, config *config.Config) *Handlers {
	return &Handlers{
		leadService: leadService,
		config:      config,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HandleLead processes incoming contact-form submissions
func (h *Handlers) HandleLead(c *gin.Context) {
	wantsJSON := AcceptsJSON(c.Request)

	raw, err := DecodeSubmission(c.Request)
	if err != nil {
		log.Printf("Error decoding submission: %v", err)
		msg := "Unsupported Content-Type"
		var decErr *DecodeError
		if errors.As(err, &decErr) {
			msg = decErr.Message
		}
		respondError(c, wantsJSON, http.StatusBadRequest, msg, "")
		return
	}

	result := h.leadService.ProcessLead(c.Request.Context(), raw)

	if result.OK {
		if wantsJSON {
			payload := gin.H{"ok": true, "ref": result.Ref}
			if result.ID != "" {
				payload["id"] = result.ID
			}
			respondJSON(c, http.StatusOK, payload)
			return
		}
		// 303 so that back-navigation does not repeat the POST.
		c.Redirect(http.StatusSeeOther, h.config.ThanksURL)
		return
	}

	respondError(c, wantsJSON, result.Status, result.Error, result.Detail)
}

// MethodNotAllowed answers any non-POST request to the lead endpoint.
func (h *Handlers) MethodNotAllowed(c *gin.Context) {
	c.Header("Allow", http.MethodPost)
	c.Header("Cache-Control", "no-store")
	c.String(http.StatusMethodNotAllowed, "Method Not Allowed. POST a lead to /api/lead.")
}

// AcceptsJSON reports whether the caller explicitly accepts a JSON
// response; without it, callers are assumed to be browser forms.
func AcceptsJSON(r *http.Request) bool {
	return strings.Contains(strings.ToLower(r.Header.Get("Accept")), "application/json")
}

func respondJSON(c *gin.Context, status int, payload gin.H) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, payload)
}

func respondError(c *gin.Context, wantsJSON bool, status int, message, detail string) {
	if wantsJSON {
		payload := gin.H{"ok": false, "error": message}
		if detail != "" {
			payload["detail"] = detail
		}
		respondJSON(c, status, payload)
		return
	}
	c.Header("Cache-Control", "no-store")
	if detail != "" {
		message = message + ": " + detail
	}
	c.String(status, message)
}
