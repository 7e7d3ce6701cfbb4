package model

import "github.com/golang-jwt/jwt/v5"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}

// AdminClaims are the JWT claims for HR administrator tokens.
type AdminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}
