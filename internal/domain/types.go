package domain

// ID is used across domain entities.
type ID int64

// Roles recognized by the auth layer.
const (
	RoleUser     = "user"
	RoleOperator = "operator"
)

// RequestContext carries authenticated caller info extracted from the token.
type RequestContext struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}
