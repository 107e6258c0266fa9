package lead

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"leadcrm/internal/domain/user"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, l *Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockStore) GetByID(ctx context.Context, id int64) (*Lead, error) {
	args := m.Called(ctx, id)
	if l := args.Get(0); l != nil {
		return l.(*Lead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) ExistsByPhoneOrEmail(ctx context.Context, phone, email string) (bool, error) {
	args := m.Called(ctx, phone, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) List(ctx context.Context, f Filters, limit, offset int) ([]Lead, int64, error) {
	args := m.Called(ctx, f, limit, offset)
	return args.Get(0).([]Lead), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) Assign(ctx context.Context, id, userID int64, at time.Time) error {
	args := m.Called(ctx, id, userID, at)
	return args.Error(0)
}

func (m *MockStore) UpdateStatus(ctx context.Context, id int64, status Status, active bool, closedAt, wonAt *time.Time, at time.Time) error {
	args := m.Called(ctx, id, status, active, closedAt, wonAt, at)
	return args.Error(0)
}

func (m *MockStore) CountByStatus(ctx context.Context) (map[Status]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[Status]int64), args.Error(1)
}

type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) GetByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func activeConsultant() *user.User {
	return &user.User{ID: 7, Name: "Sara Ahmed", Role: user.RoleConsultant, Active: true}
}

func TestCreateLead_SynthesizesPlaceholderEmail(t *testing.T) {
	store := new(MockStore)
	users := new(MockUserDirectory)
	svc := NewService(store, users, "placeholder.com")

	store.On("ExistsByPhoneOrEmail", mock.Anything, "03001234567", "03001234567@placeholder.com").Return(false, nil)
	users.On("GetByID", mock.Anything, int64(7)).Return(activeConsultant(), nil)
	store.On("Create", mock.Anything, mock.AnythingOfType("*lead.Lead")).Return(nil)

	l, err := svc.CreateLead(context.Background(), &CreateLeadRequest{
		Name:           "Ali Khan",
		Phone:          "03001234567",
		LeadSource:     string(SourceFacebook),
		LeadStatus:     string(StatusQuery),
		AssignedUserID: 7,
	})

	assert.NoError(t, err)
	assert.Equal(t, "03001234567@placeholder.com", l.Email)
	assert.Equal(t, CityOthers, l.City)
	assert.True(t, l.LeadActiveStatus)
	assert.Nil(t, l.ClosedAt)
	store.AssertExpectations(t)
}

func TestCreateLead_Duplicate(t *testing.T) {
	store := new(MockStore)
	users := new(MockUserDirectory)
	svc := NewService(store, users, "placeholder.com")

	store.On("ExistsByPhoneOrEmail", mock.Anything, "03001234567", "ali@example.com").Return(true, nil)

	_, err := svc.CreateLead(context.Background(), &CreateLeadRequest{
		Name:           "Ali Khan",
		Phone:          "03001234567",
		Email:          "ali@example.com",
		LeadSource:     string(SourceFacebook),
		LeadStatus:     string(StatusQuery),
		AssignedUserID: 7,
	})

	assert.ErrorIs(t, err, ErrDuplicateLead)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLead_InactiveAssignee(t *testing.T) {
	store := new(MockStore)
	users := new(MockUserDirectory)
	svc := NewService(store, users, "placeholder.com")

	store.On("ExistsByPhoneOrEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	users.On("GetByID", mock.Anything, int64(9)).Return(&user.User{ID: 9, Active: false}, nil)

	_, err := svc.CreateLead(context.Background(), &CreateLeadRequest{
		Name:           "Ali Khan",
		Phone:          "03001234567",
		LeadSource:     string(SourceFacebook),
		LeadStatus:     string(StatusQuery),
		AssignedUserID: 9,
	})

	assert.ErrorIs(t, err, ErrAssigneeInactive)
}

func TestCreateLead_WonStampsWonAt(t *testing.T) {
	store := new(MockStore)
	users := new(MockUserDirectory)
	svc := NewService(store, users, "placeholder.com")

	store.On("ExistsByPhoneOrEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	users.On("GetByID", mock.Anything, int64(7)).Return(activeConsultant(), nil)
	store.On("Create", mock.Anything, mock.AnythingOfType("*lead.Lead")).Return(nil)

	l, err := svc.CreateLead(context.Background(), &CreateLeadRequest{
		Name:           "Ali Khan",
		Phone:          "03001234567",
		LeadSource:     string(SourceReferral),
		LeadStatus:     string(StatusWon),
		AssignedUserID: 7,
	})

	assert.NoError(t, err)
	assert.NotNil(t, l.WonAt)
	assert.Nil(t, l.ClosedAt)
	assert.True(t, l.LeadActiveStatus)
}

func TestUpdateStatus_LostClosesLead(t *testing.T) {
	store := new(MockStore)
	users := new(MockUserDirectory)
	svc := NewService(store, users, "placeholder.com")

	store.On("GetByID", mock.Anything, int64(1)).Return(&Lead{ID: 1, LeadStatus: StatusQuery}, nil)
	store.On("UpdateStatus", mock.Anything, int64(1), StatusLost, false,
		mock.AnythingOfType("*time.Time"), (*time.Time)(nil), mock.AnythingOfType("time.Time")).Return(nil)

	err := svc.UpdateStatus(context.Background(), 1, StatusLost)

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	store := new(MockStore)
	users := new(MockUserDirectory)
	svc := NewService(store, users, "placeholder.com")

	store.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	err := svc.UpdateStatus(context.Background(), 99, StatusWon)
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestAssign_InactiveAssignee(t *testing.T) {
	store := new(MockStore)
	users := new(MockUserDirectory)
	svc := NewService(store, users, "placeholder.com")

	store.On("GetByID", mock.Anything, int64(1)).Return(&Lead{ID: 1}, nil)
	users.On("GetByID", mock.Anything, int64(9)).Return(&user.User{ID: 9, Active: false}, nil)

	err := svc.Assign(context.Background(), 1, 9)
	assert.ErrorIs(t, err, ErrAssigneeInactive)
	store.AssertNotCalled(t, "Assign", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
