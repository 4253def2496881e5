package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Username and password length limits enforced at signup.
const (
	minUsernameLen = 3
	maxUsernameLen = 80
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt's practical limit
)

// User represents a registered user of the Taskmaster application.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, only populated during registration
	HashedPassword string    `json:"-"` // Never exposed in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username, email and plaintext
// password. It generates a new UUID and sets the creation/update timestamps.
// Returns a ValidationError listing every failing field if validation fails.
//
// NOTE: the plaintext password is carried on the struct only until the
// store hashes it; it is never persisted.
func NewUser(username, email, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the User's fields and collects every violation into a
// single ValidationError so callers can report them all at once.
func (u *User) Validate() error {
	verr := &ValidationError{Err: ErrValidation}

	if u.ID == uuid.Nil {
		verr.Add("id", "cannot be empty")
	}

	if n := len(u.Username); n < minUsernameLen || n > maxUsernameLen {
		verr.Add("username", "must be between 3 and 80 characters")
	}

	if u.Email == "" {
		verr.Add("email", "cannot be empty")
	} else if !validEmailFormat(u.Email) {
		verr.Add("email", "invalid email format")
	}

	if u.Password != "" {
		if n := len(u.Password); n < minPasswordLen {
			verr.Add("password", "must be at least 6 characters long")
		} else if n > maxPasswordLen {
			verr.Add("password", "must be at most 72 characters long")
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from the store carry only the hash.
		verr.Add("password", "cannot be empty")
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// validEmailFormat performs a structural check of an email address:
// a local part, a single @, and a dotted domain. The format required by
// the API layer's validator is stricter; this is the store-side floor.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
