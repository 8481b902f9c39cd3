package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gnapi/internal/metrics"
	"gnapi/internal/model"
	"gnapi/internal/repository"
	"gnapi/internal/storage"
)

// LeadInput is a contact-form submission as received from the site.
type LeadInput struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Phone    string `json:"phone" validate:"max=50"`
	Company  string `json:"company" validate:"max=200"`
	Interest string `json:"interest" validate:"required,lead_interest"`
	Message  string `json:"message" validate:"required,max=5000"`
}

func (in LeadInput) trimmed() LeadInput {
	return LeadInput{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Company:  strings.TrimSpace(in.Company),
		Interest: strings.TrimSpace(in.Interest),
		Message:  strings.TrimSpace(in.Message),
	}
}

// ValidationError lists the rejected fields of a submission, keyed by JSON name,
// with the rule each one failed (e.g. "required", "email").
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid lead: " + strings.Join(names, ", ")
}

// LeadService defines the lead-capture use case.
type LeadService interface {
	// Submit validates and stores a lead. When an archive store is configured the lead is
	// written there first and the archived object is removed again if the database save fails.
	Submit(ctx context.Context, in LeadInput) (*model.Lead, error)
}

type leadService struct {
	repo     repository.LeadRepository
	archive  storage.Storage
	validate *validator.Validate
	log      *zap.Logger
	now      func() time.Time
}

// NewLeadService constructs a new LeadService. archive may be nil to disable archiving.
func NewLeadService(repo repository.LeadRepository, archive storage.Storage, log *zap.Logger) LeadService {
	if log == nil {
		log = zap.NewNop()
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("lead_interest", func(fl validator.FieldLevel) bool {
		return model.LeadInterest(fl.Field().String()).Valid()
	})
	return &leadService{repo: repo, archive: archive, validate: v, log: log, now: time.Now}
}

func (s *leadService) Submit(ctx context.Context, in LeadInput) (*model.Lead, error) {
	in = in.trimmed()
	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			return nil, &ValidationError{Fields: fields}
		}
		return nil, err
	}

	lead := &model.Lead{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Interest:  model.LeadInterest(in.Interest),
		Message:   in.Message,
		CreatedAt: s.now().UTC(),
	}

	key, err := s.archiveLead(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("archive lead: %w", err)
	}

	stored, err := s.repo.Create(ctx, lead)
	if err != nil {
		if key != "" {
			if delErr := s.archive.Delete(ctx, key); delErr != nil {
				return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
			}
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	metrics.LeadsSubmitted.WithLabelValues(string(stored.Interest)).Inc()
	s.log.Info("lead_submitted",
		zap.String("lead_id", stored.ID),
		zap.String("interest", string(stored.Interest)),
		zap.Bool("archived", key != ""),
	)
	return stored, nil
}

// archiveLead writes the lead as JSON and returns its key, or "" when archiving is disabled.
func (s *leadService) archiveLead(ctx context.Context, lead *model.Lead) (string, error) {
	if s.archive == nil {
		return "", nil
	}
	body, err := json.Marshal(lead)
	if err != nil {
		return "", err
	}
	key := ArchiveKey(lead)
	if _, err := s.archive.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata:    map[string]string{"interest": string(lead.Interest)},
	}); err != nil {
		return "", err
	}
	return key, nil
}

// ArchiveKey is the object key of an archived lead: leads/YYYY/MM/DD/<id>.json (UTC date).
func ArchiveKey(lead *model.Lead) string {
	return fmt.Sprintf("leads/%s/%s.json", lead.CreatedAt.UTC().Format("2006/01/02"), lead.ID)
}
