package services

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"leadrelay/pkg/clients/resend"
	"leadrelay/pkg/config"
	"leadrelay/pkg/lead"
	"leadrelay/pkg/models"
	"leadrelay/pkg/utils"
)

// LeadService defines the interface for handling lead submissions
type LeadService interface {
	ProcessLead(ctx context.Context, raw models.RawSubmission) models.Result
}

type leadServiceImpl struct {
	resendClient resend.Client
	config       *config.Config
}

// NewLeadService creates a new lead submission service
func NewLeadService(resendClient resend.Client, config *config.Config) LeadService {
	return &leadServiceImpl{
		resendClient: resendClient,
		config:       config,
	}
}

// ProcessLead runs one submission through the whole pipeline:
// normalize, honeypot check, validate, render, deliver. It always
// returns a Result; failures are classified into the Result rather
// than returned as errors, so the handler only has to shape them.
func (s *leadServiceImpl) ProcessLead(ctx context.Context, raw models.RawSubmission) models.Result {
	ref := uuid.NewString()

	l := lead.Normalize(raw)

	if lead.IsSpam(l) {
		// Answer exactly like a genuine success so automated
		// submitters cannot tell they were filtered out.
		log.Printf("[%s] honeypot hit, dropping lead", ref)
		return models.Result{OK: true, Status: http.StatusOK, Ref: ref}
	}

	if err := lead.Validate(l, s.config.RequireMessage); err != nil {
		log.Printf("[%s] rejected incomplete lead: %v", ref, err)
		return models.Result{
			Status: http.StatusBadRequest,
			Error:  err.Error(),
			Ref:    ref,
		}
	}

	if missing := s.missingConfig(); missing != "" {
		log.Printf("[%s] delivery not attempted: missing %s", ref, missing)
		return models.Result{
			Status: http.StatusInternalServerError,
			Error:  "Missing " + missing + " env var",
			Ref:    ref,
		}
	}

	log.Printf("[%s] lead received: name=%q email=%s phone=%s city=%q extras=%d",
		ref, l.Name, utils.HashContact(l.Email), utils.HashContact(l.Phone), l.City, len(l.Extras))

	msg := resend.Message{
		From:    s.config.LeadFrom,
		To:      []string{s.config.LeadTo},
		Subject: buildSubject(s.config.SubjectPrefix, l),
		Text:    buildEmailText(l),
	}
	if l.Email != "" {
		// Replies should reach the lead, not the site's sender.
		msg.ReplyTo = l.Email
	}

	receipt, err := s.resendClient.SendEmail(ctx, msg)
	if err != nil {
		log.Printf("[%s] delivery failed: %v", ref, err)
		result := models.Result{
			Status: http.StatusBadGateway,
			Error:  "Lead delivery failed",
			Ref:    ref,
		}
		var apiErr *resend.APIError
		if errors.As(err, &apiErr) {
			result.Detail = apiErr.Body
		} else {
			result.Detail = err.Error()
		}
		return result
	}

	log.Printf("[%s] lead delivered: provider_id=%s", ref, receipt.ID)
	return models.Result{OK: true, Status: http.StatusOK, ID: receipt.ID, Ref: ref}
}

// missingConfig returns the name of the first missing delivery
// setting, or "" when delivery is fully configured.
func (s *leadServiceImpl) missingConfig() string {
	switch {
	case s.config.ResendAPIKey == "":
		return "RESEND_API_KEY"
	case s.config.LeadTo == "":
		return "LEAD_TO"
	case s.config.LeadFrom == "":
		return "LEAD_FROM"
	}
	return ""
}
