package ticket

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/anas1606/attendance/internal/calendar"
	"github.com/anas1606/attendance/internal/events"
	"github.com/anas1606/attendance/internal/messaging/kafka"
	"github.com/anas1606/attendance/internal/shared/contextutil"
	"github.com/anas1606/attendance/internal/shared/response"
	ticketerrors "github.com/anas1606/attendance/internal/ticket/errors"
	"github.com/anas1606/attendance/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service interface {
	Create(ctx context.Context, creatorID string, req CreateTicketRequest) (TicketResponse, error)
	List(ctx context.Context, userID, role string, filter ListFilter) ([]TicketResponse, response.PaginationMeta, error)
	GetByID(ctx context.Context, userID, role, ticketID string) (TicketResponse, error)
	UpdateStatus(ctx context.Context, userID, role, ticketID string, req UpdateStatusRequest) (TicketResponse, error)
	AddComment(ctx context.Context, userID, role, ticketID string, req AddCommentRequest) (CommentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	users  user.Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	users user.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("ticket.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ticket.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		users:  users,
		outbox: outbox,
		logger: l,
		now:    calendar.Now,
	}
}

func (s *service) Create(ctx context.Context, creatorID string, req CreateTicketRequest) (TicketResponse, error) {
	creatorUUID, err := uuid.Parse(creatorID)
	if err != nil {
		return TicketResponse{}, ticketerrors.ErrInvalidUserID
	}
	assigneeUUID, err := uuid.Parse(req.AssignedToID)
	if err != nil {
		return TicketResponse{}, ticketerrors.ErrAssigneeNotFound
	}

	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !ValidPriority(priority) {
		return TicketResponse{}, ticketerrors.InvalidPriority(priority)
	}

	if _, err := s.users.GetByID(ctx, assigneeUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TicketResponse{}, ticketerrors.ErrAssigneeNotFound
		}
		return TicketResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create ticket begin tx failed", zap.Error(err))
		return TicketResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()

	t := &Ticket{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Priority:     priority,
		Status:       StatusOpen,
		CreatedByID:  creatorUUID,
		AssignedToID: assigneeUUID,
	}

	if err := qtx.Create(ctx, t); err != nil {
		return TicketResponse{}, err
	}

	if err := s.emitCreated(ctx, tx, t, now); err != nil {
		return TicketResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TicketResponse{}, err
	}

	s.logger.Info("ticket created",
		zap.String("ticket_id", t.ID.String()),
		zap.String("created_by", creatorID),
		zap.String("assigned_to", req.AssignedToID),
		zap.String("priority", priority),
	)
	return mapToResponse(*t), nil
}

func (s *service) List(ctx context.Context, userID, role string, filter ListFilter) ([]TicketResponse, response.PaginationMeta, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, response.PaginationMeta{}, ticketerrors.ErrInvalidUserID
	}
	if filter.Status != "" && !ValidStatus(filter.Status) {
		return nil, response.PaginationMeta{}, ticketerrors.InvalidStatus(filter.Status)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	var (
		rows  []Ticket
		total int64
		err   error
	)
	if role == "ADMIN" {
		rows, total, err = s.repo.FindAll(ctx, filter)
	} else {
		rows, total, err = s.repo.FindByViewer(ctx, userID, filter)
	}
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	resp := make([]TicketResponse, len(rows))
	for i, t := range rows {
		resp[i] = mapToResponse(t)
	}
	return resp, response.NewPaginationMeta(total, filter.Page, filter.Limit), nil
}

func (s *service) GetByID(ctx context.Context, userID, role, ticketID string) (TicketResponse, error) {
	t, err := s.loadForViewer(ctx, userID, role, ticketID)
	if err != nil {
		return TicketResponse{}, err
	}
	return mapToResponse(*t), nil
}

func (s *service) UpdateStatus(ctx context.Context, userID, role, ticketID string, req UpdateStatusRequest) (TicketResponse, error) {
	if !ValidStatus(req.Status) {
		return TicketResponse{}, ticketerrors.InvalidStatus(req.Status)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return TicketResponse{}, ticketerrors.ErrInvalidUserID
	}
	if _, err := uuid.Parse(ticketID); err != nil {
		return TicketResponse{}, ticketerrors.ErrInvalidTicketID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TicketResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TicketResponse{}, ticketerrors.ErrTicketNotFound
		}
		return TicketResponse{}, err
	}

	if role != "ADMIN" && t.AssignedToID != userUUID {
		return TicketResponse{}, ticketerrors.ErrNotAssignee
	}

	from := t.Status
	if from == req.Status {
		return mapToResponse(*t), nil
	}
	t.Status = req.Status

	if err := qtx.Update(ctx, t); err != nil {
		return TicketResponse{}, err
	}

	if err := s.emitStatusChanged(ctx, tx, t, userID, from, s.now()); err != nil {
		return TicketResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TicketResponse{}, err
	}

	s.logger.Info("ticket status changed",
		zap.String("ticket_id", ticketID),
		zap.String("from", from),
		zap.String("to", req.Status),
		zap.String("changed_by", userID),
	)
	return mapToResponse(*t), nil
}

func (s *service) AddComment(ctx context.Context, userID, role, ticketID string, req AddCommentRequest) (CommentResponse, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return CommentResponse{}, ticketerrors.ErrEmptyComment
	}

	t, err := s.loadForViewer(ctx, userID, role, ticketID)
	if err != nil {
		return CommentResponse{}, err
	}

	c := &TicketComment{
		ID:       uuid.New(),
		TicketID: t.ID,
		AuthorID: uuid.MustParse(userID),
		Body:     body,
	}

	if err := s.repo.CreateComment(ctx, c); err != nil {
		return CommentResponse{}, err
	}

	s.logger.Info("ticket comment added",
		zap.String("ticket_id", ticketID),
		zap.String("comment_id", c.ID.String()),
		zap.String("author_id", userID),
	)
	return mapCommentToResponse(*c), nil
}

// loadForViewer fetches the ticket and enforces the participant rule. Admins
// can see every ticket.
func (s *service) loadForViewer(ctx context.Context, userID, role, ticketID string) (*Ticket, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, ticketerrors.ErrInvalidUserID
	}
	if _, err := uuid.Parse(ticketID); err != nil {
		return nil, ticketerrors.ErrInvalidTicketID
	}

	t, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticketerrors.ErrTicketNotFound
		}
		return nil, err
	}

	if role != "ADMIN" && !t.IsParticipant(userUUID) {
		return nil, ticketerrors.ErrNotParticipant
	}
	return t, nil
}

func (s *service) emitCreated(ctx context.Context, tx *sql.Tx, t *Ticket, now time.Time) error {
	payload, err := json.Marshal(events.TicketCreatedEvent{
		EventType:    events.TypeTicketCreated,
		TicketID:     t.ID.String(),
		CreatedByID:  t.CreatedByID.String(),
		AssignedToID: t.AssignedToID.String(),
		Priority:     t.Priority,
		OccurredAt:   now,
	})
	if err != nil {
		return err
	}
	return s.enqueueOutbox(ctx, tx, t, events.TypeTicketCreated, payload)
}

func (s *service) emitStatusChanged(ctx context.Context, tx *sql.Tx, t *Ticket, changedBy, from string, now time.Time) error {
	payload, err := json.Marshal(events.TicketStatusChangedEvent{
		EventType:  events.TypeTicketStatusChanged,
		TicketID:   t.ID.String(),
		ChangedBy:  changedBy,
		FromStatus: from,
		ToStatus:   t.Status,
		OccurredAt: now,
	})
	if err != nil {
		return err
	}
	return s.enqueueOutbox(ctx, tx, t, events.TypeTicketStatusChanged, payload)
}

func (s *service) enqueueOutbox(ctx context.Context, tx *sql.Tx, t *Ticket, eventType string, payload []byte) error {
	if s.outbox == nil {
		return nil
	}
	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "ticket",
		AggregateID:   t.ID.String(),
		EventType:     eventType,
		Topic:         events.TicketTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
