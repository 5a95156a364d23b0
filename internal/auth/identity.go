package auth

// Identity wraps the federated identity for the duration of a browser
// session. It is immutable; it only changes at login and logout.
type Identity struct {
	GoogleID string `json:"google_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
}
