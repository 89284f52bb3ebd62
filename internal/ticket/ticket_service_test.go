package ticket

import (
	"context"
	"database/sql"
	"testing"

	ticketerrors "github.com/anas1606/attendance/internal/ticket/errors"
	"github.com/anas1606/attendance/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeTicketRepo struct {
	tickets  map[string]*Ticket
	comments []TicketComment
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]*Ticket)}
}

func (f *fakeTicketRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeTicketRepo) Create(ctx context.Context, t *Ticket) error {
	f.tickets[t.ID.String()] = t
	return nil
}

func (f *fakeTicketRepo) Update(ctx context.Context, t *Ticket) error {
	f.tickets[t.ID.String()] = t
	return nil
}

func (f *fakeTicketRepo) FindByID(ctx context.Context, id string) (*Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTicketRepo) FindByViewer(ctx context.Context, userID string, filter ListFilter) ([]Ticket, int64, error) {
	var out []Ticket
	for _, t := range f.tickets {
		if t.CreatedByID.String() != userID && t.AssignedToID.String() != userID {
			continue
		}
		switch filter.View {
		case "assigned":
			if t.AssignedToID.String() != userID {
				continue
			}
		case "created":
			if t.CreatedByID.String() != userID {
				continue
			}
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (f *fakeTicketRepo) FindAll(ctx context.Context, filter ListFilter) ([]Ticket, int64, error) {
	var out []Ticket
	for _, t := range f.tickets {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (f *fakeTicketRepo) CreateComment(ctx context.Context, c *TicketComment) error {
	f.comments = append(f.comments, *c)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func newFakeUserRepo(ids ...uuid.UUID) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[uuid.UUID]*user.User)}
	for _, id := range ids {
		f.users[id] = &user.User{ID: id, Role: "STAFF"}
	}
	return f
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func seedTicket(repo *fakeTicketRepo, creator, assignee uuid.UUID, status string) *Ticket {
	t := &Ticket{
		ID:           uuid.New(),
		Title:        "Laptop replacement",
		Description:  "Battery no longer holds charge",
		Priority:     PriorityMedium,
		Status:       status,
		CreatedByID:  creator,
		AssignedToID: assignee,
	}
	repo.tickets[t.ID.String()] = t
	return t
}

func TestCreateTicket(t *testing.T) {
	creator := uuid.New()
	assignee := uuid.New()

	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeTicketRepo()
	svc := NewService(db, repo, newFakeUserRepo(creator, assignee), nil)

	resp, err := svc.Create(context.Background(), creator.String(), CreateTicketRequest{
		Title:        "Laptop replacement",
		Description:  "Battery no longer holds charge",
		Priority:     PriorityHigh,
		AssignedToID: assignee.String(),
	})
	assert.NoError(t, err)
	assert.Equal(t, StatusOpen, resp.Status)
	assert.Equal(t, PriorityHigh, resp.Priority)
	assert.Equal(t, assignee.String(), resp.AssignedToID)
	assert.Len(t, repo.tickets, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTicketDefaultsPriority(t *testing.T) {
	creator := uuid.New()
	assignee := uuid.New()

	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := NewService(db, newFakeTicketRepo(), newFakeUserRepo(creator, assignee), nil)

	resp, err := svc.Create(context.Background(), creator.String(), CreateTicketRequest{
		Title:        "Desk change",
		Description:  "Requesting a seat near the window team",
		AssignedToID: assignee.String(),
	})
	assert.NoError(t, err)
	assert.Equal(t, PriorityMedium, resp.Priority)
}

func TestCreateTicketInvalidPriority(t *testing.T) {
	creator := uuid.New()
	assignee := uuid.New()

	db, _ := newMockDB(t)
	svc := NewService(db, newFakeTicketRepo(), newFakeUserRepo(creator, assignee), nil)

	_, err := svc.Create(context.Background(), creator.String(), CreateTicketRequest{
		Title:        "Desk change",
		Description:  "Requesting a seat near the window team",
		Priority:     "URGENT",
		AssignedToID: assignee.String(),
	})
	assert.Error(t, err)
}

func TestCreateTicketUnknownAssignee(t *testing.T) {
	creator := uuid.New()

	db, _ := newMockDB(t)
	svc := NewService(db, newFakeTicketRepo(), newFakeUserRepo(creator), nil)

	_, err := svc.Create(context.Background(), creator.String(), CreateTicketRequest{
		Title:        "Desk change",
		Description:  "Requesting a seat near the window team",
		AssignedToID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, ticketerrors.ErrAssigneeNotFound)
}

func TestListTicketsByView(t *testing.T) {
	me := uuid.New()
	other := uuid.New()

	db, _ := newMockDB(t)
	repo := newFakeTicketRepo()
	seedTicket(repo, me, other, StatusOpen)
	seedTicket(repo, other, me, StatusInProgress)
	seedTicket(repo, other, other, StatusOpen)

	svc := NewService(db, repo, newFakeUserRepo(me, other), nil)

	both, _, err := svc.List(context.Background(), me.String(), "STAFF", ListFilter{})
	assert.NoError(t, err)
	assert.Len(t, both, 2)

	assigned, _, err := svc.List(context.Background(), me.String(), "STAFF", ListFilter{View: "assigned"})
	assert.NoError(t, err)
	assert.Len(t, assigned, 1)
	assert.Equal(t, StatusInProgress, assigned[0].Status)

	all, meta, err := svc.List(context.Background(), me.String(), "ADMIN", ListFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, int64(3), meta.Total)

	_, _, err = svc.List(context.Background(), me.String(), "STAFF", ListFilter{Status: "DONE"})
	assert.Error(t, err)
}

func TestGetTicketParticipantOnly(t *testing.T) {
	creator := uuid.New()
	assignee := uuid.New()
	outsider := uuid.New()

	db, _ := newMockDB(t)
	repo := newFakeTicketRepo()
	tk := seedTicket(repo, creator, assignee, StatusOpen)

	svc := NewService(db, repo, newFakeUserRepo(creator, assignee, outsider), nil)

	_, err := svc.GetByID(context.Background(), creator.String(), "STAFF", tk.ID.String())
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), outsider.String(), "STAFF", tk.ID.String())
	assert.ErrorIs(t, err, ticketerrors.ErrNotParticipant)

	_, err = svc.GetByID(context.Background(), outsider.String(), "ADMIN", tk.ID.String())
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), creator.String(), "STAFF", uuid.New().String())
	assert.ErrorIs(t, err, ticketerrors.ErrTicketNotFound)
}

func TestUpdateStatusAssigneeOnly(t *testing.T) {
	creator := uuid.New()
	assignee := uuid.New()

	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeTicketRepo()
	tk := seedTicket(repo, creator, assignee, StatusOpen)

	svc := NewService(db, repo, newFakeUserRepo(creator, assignee), nil)

	// The creator is not the assignee.
	_, err := svc.UpdateStatus(context.Background(), creator.String(), "STAFF", tk.ID.String(), UpdateStatusRequest{
		Status: StatusInProgress,
	})
	assert.ErrorIs(t, err, ticketerrors.ErrNotAssignee)

	resp, err := svc.UpdateStatus(context.Background(), assignee.String(), "STAFF", tk.ID.String(), UpdateStatusRequest{
		Status: StatusInProgress,
	})
	assert.NoError(t, err)
	assert.Equal(t, StatusInProgress, resp.Status)
	assert.Equal(t, StatusInProgress, repo.tickets[tk.ID.String()].Status)
}

func TestUpdateStatusAdminOverride(t *testing.T) {
	creator := uuid.New()
	assignee := uuid.New()
	admin := uuid.New()

	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeTicketRepo()
	tk := seedTicket(repo, creator, assignee, StatusOpen)

	svc := NewService(db, repo, newFakeUserRepo(creator, assignee, admin), nil)

	resp, err := svc.UpdateStatus(context.Background(), admin.String(), "ADMIN", tk.ID.String(), UpdateStatusRequest{
		Status: StatusOnHold,
	})
	assert.NoError(t, err)
	assert.Equal(t, StatusOnHold, resp.Status)
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewService(db, newFakeTicketRepo(), newFakeUserRepo(), nil)

	_, err := svc.UpdateStatus(context.Background(), uuid.New().String(), "STAFF", uuid.New().String(), UpdateStatusRequest{
		Status: "DONE",
	})
	assert.Error(t, err)
}

func TestAddComment(t *testing.T) {
	creator := uuid.New()
	assignee := uuid.New()
	outsider := uuid.New()

	db, _ := newMockDB(t)
	repo := newFakeTicketRepo()
	tk := seedTicket(repo, creator, assignee, StatusOpen)

	svc := NewService(db, repo, newFakeUserRepo(creator, assignee, outsider), nil)

	resp, err := svc.AddComment(context.Background(), assignee.String(), "STAFF", tk.ID.String(), AddCommentRequest{
		Body: "Ordered a replacement battery.",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Ordered a replacement battery.", resp.Body)
	assert.Len(t, repo.comments, 1)

	_, err = svc.AddComment(context.Background(), outsider.String(), "STAFF", tk.ID.String(), AddCommentRequest{
		Body: "Should not land",
	})
	assert.ErrorIs(t, err, ticketerrors.ErrNotParticipant)

	_, err = svc.AddComment(context.Background(), creator.String(), "STAFF", tk.ID.String(), AddCommentRequest{
		Body: "   ",
	})
	assert.ErrorIs(t, err, ticketerrors.ErrEmptyComment)
}
