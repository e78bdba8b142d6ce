package models

// Tier is a coarse account classification. It is carried in issued tokens
// but is not used for authorization decisions.
type Tier string

const (
	TierGuest      Tier = "GUEST"
	TierPending    Tier = "PENDING"
	TierTrial      Tier = "TRIAL"
	TierPremium    Tier = "PREMIUM"
	TierBenefactor Tier = "BENEFACTOR"
)

// IsValid reports whether t is one of the known tiers.
func (t Tier) IsValid() bool {
	switch t {
	case TierGuest, TierPending, TierTrial, TierPremium, TierBenefactor:
		return true
	}
	return false
}

// User represents an account of one of the identity stores.
// Users are created on signup with [TierPending] and never mutated afterwards.
type User struct {
	// UserID is the server-assigned UUID of the account.
	UserID string `json:"id"`

	// Name is the unique login of the account.
	Name string `json:"username"`

	// Secret is the account secret. It is stored and compared as-is
	// and is never serialized.
	Secret string `json:"-"`

	// Tier is the account classification.
	Tier Tier `json:"type"`
}
