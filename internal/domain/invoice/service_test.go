package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"leadcrm/internal/domain/lead"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, inv *Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockStore) GetByID(ctx context.Context, id int64) (*Invoice, error) {
	args := m.Called(ctx, id)
	if inv := args.Get(0); inv != nil {
		return inv.(*Invoice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) List(ctx context.Context, status Status, limit, offset int) ([]Invoice, error) {
	args := m.Called(ctx, status, limit, offset)
	return args.Get(0).([]Invoice), args.Error(1)
}

func (m *MockStore) MarkPaid(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) GetByID(ctx context.Context, id int64) (*lead.Lead, error) {
	args := m.Called(ctx, id)
	if l := args.Get(0); l != nil {
		return l.(*lead.Lead), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreate_WonLead(t *testing.T) {
	store := new(MockStore)
	leads := new(MockLeadStore)
	svc := NewService(store, leads)

	leads.On("GetByID", mock.Anything, int64(5)).Return(&lead.Lead{ID: 5, LeadStatus: lead.StatusWon}, nil)
	store.On("Create", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).Return(nil)

	inv, err := svc.Create(context.Background(), &CreateInvoiceRequest{LeadID: 5, Amount: 25000})

	assert.NoError(t, err)
	assert.Equal(t, StatusUnpaid, inv.Status)
	assert.Len(t, inv.Number, len("INV-")+8)
	store.AssertExpectations(t)
}

func TestCreate_LeadNotWon(t *testing.T) {
	store := new(MockStore)
	leads := new(MockLeadStore)
	svc := NewService(store, leads)

	leads.On("GetByID", mock.Anything, int64(5)).Return(&lead.Lead{ID: 5, LeadStatus: lead.StatusQuery}, nil)

	_, err := svc.Create(context.Background(), &CreateInvoiceRequest{LeadID: 5, Amount: 25000})

	assert.ErrorIs(t, err, ErrLeadNotWon)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_LeadMissing(t *testing.T) {
	store := new(MockStore)
	leads := new(MockLeadStore)
	svc := NewService(store, leads)

	leads.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := svc.Create(context.Background(), &CreateInvoiceRequest{LeadID: 99, Amount: 25000})
	assert.ErrorIs(t, err, ErrLeadNotWon)
}

func TestMarkPaid(t *testing.T) {
	store := new(MockStore)
	leads := new(MockLeadStore)
	svc := NewService(store, leads)

	store.On("GetByID", mock.Anything, int64(1)).Return(&Invoice{ID: 1, Status: StatusUnpaid}, nil)
	store.On("MarkPaid", mock.Anything, int64(1), mock.AnythingOfType("time.Time")).Return(nil)

	assert.NoError(t, svc.MarkPaid(context.Background(), 1))
	store.AssertExpectations(t)
}

func TestMarkPaid_AlreadyPaid(t *testing.T) {
	store := new(MockStore)
	leads := new(MockLeadStore)
	svc := NewService(store, leads)

	store.On("GetByID", mock.Anything, int64(1)).Return(&Invoice{ID: 1, Status: StatusPaid}, nil)

	err := svc.MarkPaid(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
	store.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkPaid_NotFound(t *testing.T) {
	store := new(MockStore)
	leads := new(MockLeadStore)
	svc := NewService(store, leads)

	store.On("GetByID", mock.Anything, int64(2)).Return(nil, nil)

	err := svc.MarkPaid(context.Background(), 2)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}
