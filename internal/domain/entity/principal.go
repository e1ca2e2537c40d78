package entity

import (
	"time"

	"github.com/google/uuid"
)

// Principal is an authenticatable account of a given Variant.
// The pair (Variant, Email) is unique in the store.
type Principal struct {
	ID                uuid.UUID        // Store identifier.
	Variant           Variant          // Which namespace the principal belongs to.
	Email             string           // Login identifier, immutable after registration.
	PasswordHash      string           // bcrypt digest. Never leaves the service layer.
	PasswordUpdated   bool             // Set once the principal has changed their initial password.
	CredentialVersion int              // Bumped on every password change; tokens carry the version they were issued for.
	Profile           Profile          // Descriptive fields captured at registration.
	Answers           []QuestionAnswer // Ordered survey answers.
	Validated         bool             // Set by the survey validation flow only.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Profile holds the descriptive, non-credential fields of a principal.
type Profile struct {
	FirstName   string
	LastName    string
	CompanyName string
	Phone       string
}

// QuestionAnswer is a single survey response.
type QuestionAnswer struct {
	QuestionID string
	Value      string
}

// InitialCredentialVersion is the version stamped on a freshly registered principal.
const InitialCredentialVersion = 1
