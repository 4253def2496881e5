package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an immutable message created for a user as a side
// effect of task assignment. Notifications are read by listing; they are
// never updated or deleted.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNotification creates a Notification for the given recipient.
func NewNotification(userID uuid.UUID, message string) (*Notification, error) {
	notification := &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := notification.Validate(); err != nil {
		return nil, err
	}

	return notification, nil
}

// Validate checks the Notification's fields.
func (n *Notification) Validate() error {
	verr := &ValidationError{Err: ErrValidation}

	if n.ID == uuid.Nil {
		verr.Add("id", "cannot be empty")
	}
	if n.UserID == uuid.Nil {
		verr.Add("user_id", "cannot be empty")
	}
	if n.Message == "" {
		verr.Add("message", "cannot be empty")
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// RevokedToken records an invalidated token by its unique identifier
// (jti claim). A token whose jti appears in the revocation list is
// rejected even if otherwise well-formed and unexpired.
type RevokedToken struct {
	JTI       uuid.UUID `json:"jti"`
	RevokedAt time.Time `json:"revoked_at"`
}
