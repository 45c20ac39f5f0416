package dto

// LoginRequest represents login credentials. RequiredRole optionally pins
// the login to a dashboard section; a resolved role that does not match
// (admin excepted) is rejected.
type LoginRequest struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
	RequiredRole string `json:"requiredRole,omitempty" binding:"omitempty,oneof=admin teacher student"`
}

// LoginResponse carries the issued session token and resolved identity
type LoginResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"userId,omitempty"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresIn int    `json:"expiresIn"`
}

// IntrospectionResponse reports the identity behind a presented token
type IntrospectionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
	Role          string `json:"role"`
}
