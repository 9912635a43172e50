package models

import "time"

// AdminUser is an administrator account for the reporting surface.
// Respondents never have accounts; their sessions are anonymous.
type AdminUser struct {
	ID              string     `bson:"_id,omitempty" json:"id"`
	Email           string     `bson:"email" json:"email"`
	PasswordHash    string     `bson:"password_hash" json:"-"`
	EmailVerifiedAt *time.Time `bson:"email_verified_at,omitempty" json:"email_verified_at,omitempty"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updated_at"`
}

func (u *AdminUser) EmailConfirmed() bool {
	return u.EmailVerifiedAt != nil
}
