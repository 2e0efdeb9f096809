package service

//go:generate mockgen -destination=../../mocks/mock_contact_store.go -package=mocks github.com/lsweb/lsweb-api/internal/contact/domain ContactStore

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/lsweb/lsweb-api/internal/contact/domain"
	"github.com/lsweb/lsweb-api/internal/contact/dto"
	apierrors "github.com/lsweb/lsweb-api/internal/errors"
	"github.com/lsweb/lsweb-api/internal/mailer"
)

const (
	msgSubmitOK = "Solicitud enviada exitosamente. Te contactaremos pronto."

	// Fixed cap on listing results; there is no pagination.
	listLimit = 100
)

type IntakeService struct {
	store    domain.ContactStore
	notifier mailer.Notifier
	validate *validator.Validate
}

func NewIntakeService(store domain.ContactStore, notifier mailer.Notifier) *IntakeService {
	return &IntakeService{
		store:    store,
		notifier: notifier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Submit validates an inbound submission, persists it, and then attempts a
// notification. The notification is best-effort: the request is already
// stored, so a mail failure is logged and the submission still succeeds.
func (s *IntakeService) Submit(ctx context.Context, input dto.ContactRequestCreate) (*dto.ContactRequestResponse, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)

	if err := s.validate.Struct(input); err != nil {
		return nil, asValidationError(err)
	}

	req := &domain.ContactRequest{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Company:     input.Company,
		ProjectType: input.ProjectType,
		Budget:      input.Budget,
		Timeline:    input.Timeline,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
		Status:      domain.StatusPending,
	}

	if err := s.store.Insert(ctx, req); err != nil {
		return nil, &apierrors.StorageError{Op: "insert contact request", Err: err}
	}

	if err := s.notifier.Notify(ctx, req); err != nil {
		log.Printf("warn: notification failed for request %s: %v", req.ID, err)
	}

	return &dto.ContactRequestResponse{
		Success: true,
		Message: msgSubmitOK,
		ID:      req.ID,
	}, nil
}

// List returns stored requests, newest first, capped at the fixed limit.
func (s *IntakeService) List(ctx context.Context) ([]dto.ContactRequestOutput, error) {
	requests, err := s.store.List(ctx, listLimit)
	if err != nil {
		return nil, &apierrors.StorageError{Op: "list contact requests", Err: err}
	}

	out := make([]dto.ContactRequestOutput, 0, len(requests))
	for i := range requests {
		out = append(out, dto.FromDomain(&requests[i]))
	}
	return out, nil
}

func asValidationError(err error) error {
	var fields []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return &apierrors.ValidationError{Fields: fields}
	}
	return err
}
