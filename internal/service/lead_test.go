package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gnapi/internal/metrics"
	"gnapi/internal/model"
	repoMocks "gnapi/internal/repository/mocks"
	"gnapi/internal/storage"
	storeMocks "gnapi/internal/storage/mocks"
)

func validLead() LeadInput {
	return LeadInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 212 555 0100",
		Company:  "Acme Capital",
		Interest: "Investor",
		Message:  "Interested in the Bronx portfolio.",
	}
}

var fixedNow = time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("EST", -5*60*60))

func newLeadService(repo *repoMocks.MockLeadRepository, store storage.Storage) *leadService {
	svc := NewLeadService(repo, store, zap.NewNop()).(*leadService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestLeadService_Submit_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		mutate     func(in *LeadInput)
		wantFields map[string]string
	}{
		{
			name:       "missing name",
			mutate:     func(in *LeadInput) { in.Name = "   " },
			wantFields: map[string]string{"name": "required"},
		},
		{
			name:       "bad email",
			mutate:     func(in *LeadInput) { in.Email = "not-an-email" },
			wantFields: map[string]string{"email": "email"},
		},
		{
			name:       "unknown interest",
			mutate:     func(in *LeadInput) { in.Interest = "Buyer" },
			wantFields: map[string]string{"interest": "lead_interest"},
		},
		{
			name:       "interest is case sensitive",
			mutate:     func(in *LeadInput) { in.Interest = "investor" },
			wantFields: map[string]string{"interest": "lead_interest"},
		},
		{
			name:       "message too long",
			mutate:     func(in *LeadInput) { in.Message = strings.Repeat("x", 5001) },
			wantFields: map[string]string{"message": "max"},
		},
		{
			name: "several fields at once",
			mutate: func(in *LeadInput) {
				in.Name = ""
				in.Email = ""
				in.Message = ""
			},
			wantFields: map[string]string{"name": "required", "email": "required", "message": "required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockLeadRepository)
			svc := newLeadService(repo, nil)
			in := validLead()
			tt.mutate(&in)

			got, err := svc.Submit(ctx, in)

			assert.Nil(t, got)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantFields, verr.Fields)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestLeadService_Submit_WithoutArchive(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockLeadRepository)
	svc := newLeadService(repo, nil)

	before := testutil.ToFloat64(metrics.LeadsSubmitted.WithLabelValues("Tenant"))

	in := validLead()
	in.Interest = "Tenant"
	in.Name = "  Jane Doe  "
	repo.On("Create", ctx, mock.AnythingOfType("*model.Lead")).Return(&model.Lead{ID: "id-1", Interest: model.InterestTenant}, nil)

	got, err := svc.Submit(ctx, in)

	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.LeadsSubmitted.WithLabelValues("Tenant")))
	repo.AssertExpectations(t)

	sent := repo.Calls[0].Arguments.Get(1).(*model.Lead)
	assert.Equal(t, "Jane Doe", sent.Name)
	assert.Equal(t, time.UTC, sent.CreatedAt.Location())
	assert.True(t, sent.CreatedAt.Equal(fixedNow))
}

func TestLeadService_Submit_ArchivesThenPersists(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockLeadRepository)
	store := new(storeMocks.MockStorage)
	svc := newLeadService(repo, store)

	var archived model.Lead
	store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "leads/2024/03/10/") && strings.HasSuffix(key, ".json")
	}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
		return opt.ContentType == "application/json" && opt.Size > 0 && opt.Metadata["interest"] == "Investor"
	})).Return(func(_ context.Context, key string, r io.Reader, _ storage.PutObjectOptions) storage.ObjectInfo {
		body, _ := io.ReadAll(r)
		_ = json.Unmarshal(body, &archived)
		return storage.ObjectInfo{Key: key}
	}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*model.Lead")).Return(&model.Lead{ID: "stored", Interest: model.InterestInvestor}, nil)

	got, err := svc.Submit(ctx, validLead())

	require.NoError(t, err)
	assert.Equal(t, "stored", got.ID)
	assert.Equal(t, "jane@example.com", archived.Email)
	assert.NotEmpty(t, archived.ID)
	store.AssertExpectations(t)
	repo.AssertExpectations(t)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestLeadService_Submit_ArchiveFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockLeadRepository)
	store := new(storeMocks.MockStorage)
	svc := newLeadService(repo, store)

	store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, errors.New("bucket gone"))

	_, err := svc.Submit(ctx, validLead())

	assert.EqualError(t, err, "archive lead: bucket gone")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLeadService_Submit_RollsBackArchive(t *testing.T) {
	ctx := context.Background()

	t.Run("db failure removes archived object", func(t *testing.T) {
		repo := new(repoMocks.MockLeadRepository)
		store := new(storeMocks.MockStorage)
		svc := newLeadService(repo, store)

		var key string
		store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(func(_ context.Context, k string, _ io.Reader, _ storage.PutObjectOptions) storage.ObjectInfo {
				key = k
				return storage.ObjectInfo{Key: k}
			}, nil)
		repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down"))
		store.On("Delete", ctx, mock.MatchedBy(func(k string) bool { return k == key })).Return(nil)

		_, err := svc.Submit(ctx, validLead())

		assert.EqualError(t, err, "db save failed: db down")
		store.AssertExpectations(t)
	})

	t.Run("rollback failure is reported", func(t *testing.T) {
		repo := new(repoMocks.MockLeadRepository)
		store := new(storeMocks.MockStorage)
		svc := newLeadService(repo, store)

		store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
		repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down"))
		store.On("Delete", ctx, mock.Anything).Return(errors.New("forbidden"))

		_, err := svc.Submit(ctx, validLead())

		assert.EqualError(t, err, "db save failed: db down; rollback delete failed: forbidden")
	})
}

func TestArchiveKey(t *testing.T) {
	lead := &model.Lead{ID: "abc", CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}
	assert.Equal(t, "leads/2025/01/02/abc.json", ArchiveKey(lead))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"name": "required", "email": "email"}}
	assert.Equal(t, "invalid lead: email, name", err.Error())
}
