package models

// User is the payload carried by tokens issued by the account module.
type User struct {
	// Login is the unique user login identifier.
	Login string `json:"login"`
}

// LoginRequest is accepted by the login endpoint as JSON, XML or a
// URL-encoded form.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// TokenResponse is returned after a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
