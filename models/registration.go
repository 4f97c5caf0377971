package models

import "time"

// AllowedRegistration is a single entry of the registration ledger: a
// pre-issued invitation code that authorizes exactly one account creation.
//
// A code transitions from unused to used exactly once and permanently.
// UsedByUserID is a non-owning back-reference: deleting the user clears it,
// the ledger row itself is never deleted.
type AllowedRegistration struct {
	RegistrationID int64  `json:"id"`
	Code           string `json:"registrationNumber"`
	IsUsed         bool   `json:"isUsed"`

	// UsedByUserID is the id of the user who consumed the code.
	// Nil while the code is still redeemable.
	UsedByUserID *int64 `json:"usedByUserId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	// UsedAt records the moment of redemption. Nil while unused.
	UsedAt *time.Time `json:"usedAt,omitempty"`
}

// TableName returns the name of the database table
// associated with the AllowedRegistration model.
func (a AllowedRegistration) TableName() string {
	return "allowed_registrations"
}
