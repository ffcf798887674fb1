package types

import "github.com/golang-jwt/jwt/v5"

// Roles carried in access tokens
const (
	RoleAdmin  = "admin"
	RoleWorker = "worker"
)

// Claims represents the JWT claims
type Claims struct {
	SubjectID uint   `json:"subject_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}
