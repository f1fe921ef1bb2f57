package models

import "github.com/golang-jwt/jwt/v4"

// Identity is the authenticated subject attached to a request.
type Identity struct {
	UserID uint
	Role   UserRole
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Claims is the payload of a session token.
type Claims struct {
	UserID uint     `json:"id"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() Identity {
	return Identity{UserID: c.UserID, Role: c.Role}
}
