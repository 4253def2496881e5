// Package service implements the application's use cases on top of the
// store interfaces.
package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taskmaster/api/internal/domain"
	"github.com/taskmaster/api/internal/platform/logger"
	"github.com/taskmaster/api/internal/platform/mail"
	"github.com/taskmaster/api/internal/store"
)

// assignmentSubject is the subject line of assignment emails.
const assignmentSubject = "New Task Assigned"

// AssignmentMessage composes the notification text for a task
// assignment.
func AssignmentMessage(taskTitle string) string {
	return fmt.Sprintf("You have been assigned a new task: %s", taskTitle)
}

// NotificationService persists assignment notifications and requests
// delivery of an email copy through the mail transport.
type NotificationService struct {
	notifications store.NotificationStore
	sender        mail.Sender
	logger        *slog.Logger
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(
	notifications store.NotificationStore,
	sender mail.Sender,
	log *slog.Logger,
) (*NotificationService, error) {
	if notifications == nil {
		return nil, fmt.Errorf("notification store is required")
	}
	if sender == nil {
		return nil, fmt.Errorf("mail sender is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &NotificationService{
		notifications: notifications,
		sender:        sender,
		logger:        log.With(slog.String("component", "notification_service")),
	}, nil
}

// RecordAssignment persists a notification row for the recipient within
// the caller's transaction, so it commits or rolls back together with
// the task that caused it.
func (s *NotificationService) RecordAssignment(
	ctx context.Context,
	tx *sql.Tx,
	recipientID uuid.UUID,
	taskTitle string,
) (*domain.Notification, error) {
	notification, err := domain.NewNotification(recipientID, AssignmentMessage(taskTitle))
	if err != nil {
		return nil, err
	}

	notifications := s.notifications
	if tx != nil {
		notifications = notifications.WithTx(tx)
	}
	if err := notifications.Create(ctx, notification); err != nil {
		return nil, err
	}

	return notification, nil
}

// SendAssignmentEmail requests the mail transport deliver an assignment
// message. Transport failures are logged and swallowed: email is
// best-effort and must never fail the request that triggered it.
func (s *NotificationService) SendAssignmentEmail(ctx context.Context, recipientEmail, taskTitle string) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.sender.Send(recipientEmail, assignmentSubject, AssignmentMessage(taskTitle)); err != nil {
		log.Error("failed to send assignment email",
			slog.String("error", err.Error()),
			slog.String("recipient", recipientEmail))
		return
	}

	log.Info("assignment email sent",
		slog.String("recipient", recipientEmail))
}

// ListForUser returns the recipient's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error) {
	return s.notifications.ListByUser(ctx, userID)
}
