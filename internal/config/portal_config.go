package config

import "time"

const (
	// Listing
	DefaultPageLimit = 10
	MaxPageLimit     = 100

	// Auth
	TokenTTL   = 72 * time.Hour
	BcryptCost = 10

	// Lost & found claim handshake
	ClaimOTPLength = 6
	ClaimOTPTTL    = 15 * time.Minute
)
