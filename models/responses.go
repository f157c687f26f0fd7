package models

// Response is the uniform envelope returned by every API endpoint.
// Domain failures are reported through Success=false and a human-readable
// Message, never through a transport-level error status.
type Response struct {
	// Success reports whether the requested operation completed.
	Success bool `json:"success"`

	// Message is an optional human-readable outcome description.
	// Omitted when empty (e.g. a bare success acknowledgement).
	Message string `json:"message,omitempty"`
}

// AccountDataResponse is the payload of the authenticated account-data
// endpoint. It wraps the envelope and the public view of the account.
type AccountDataResponse struct {
	// Success reports whether the lookup completed.
	Success bool `json:"success"`

	// UserData is the non-sensitive projection of the account.
	UserData AccountData `json:"userData"`
}

// AccountData is the public projection of an [Account]: only fields that
// are safe to hand to the browser.
type AccountData struct {
	// Name is the display name set at registration.
	Name string `json:"name"`

	// Email is the address the account is registered under.
	Email string `json:"email"`

	// IsAccountVerified reports whether the email verification flow
	// has completed for this account.
	IsAccountVerified bool `json:"isAccountVerified"`
}

// PublicView returns the AccountData projection of an account.
func (a Account) PublicView() AccountData {
	return AccountData{
		Name:              a.Name,
		Email:             a.Email,
		IsAccountVerified: a.IsVerified,
	}
}
