package models

// Operator is a user of the reporting UI. There is no user store; operators
// are configured through the environment and live only in process memory.
type Operator struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"` // "Admin" or "Staff"
}
