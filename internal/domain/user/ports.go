package user

import "context"

// Registration is the account form posted to the auth backend.
type Registration struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	DocumentType    string `json:"documentType" validate:"oneof=ID PASSPORT"`
	DocumentID      string `json:"documentId"`
	Role            Role   `json:"role" validate:"oneof=USER STAFF ADMIN"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// MemberUpdate carries the editable member fields.
type MemberUpdate struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     Role   `json:"role" validate:"oneof=USER STAFF ADMIN"`
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Register(ctx context.Context, r Registration) error
}

type Directory interface {
	ListMembers(ctx context.Context) ([]Member, error)
	// UpdateMember returns the server's confirmation message.
	UpdateMember(ctx context.Context, id string, u MemberUpdate) (string, error)
	DeleteMember(ctx context.Context, id string) error
}
