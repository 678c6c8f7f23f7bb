// Package domain defines the core credential domain entities and types.
package domain

import (
	"strings"
	"time"
)

// RolePrefix is prepended to every normalized role grant.
const RolePrefix = "ROLE_"

// User represents a stored credential record.
//
// PasswordHash must always have been produced by the codec selected by
// Algorithm; the pair is written together and never edited independently.
// Roles is the raw comma-joined roles string as persisted.
type User struct {
	Username     string
	PasswordHash string
	Algorithm    Algorithm
	Roles        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Authentication is the successful outcome of one authentication attempt.
// It is ephemeral: produced for a single attempt and handed to the session
// layer, never persisted.
type Authentication struct {
	Username    string
	Authorities []string
}

// GrantedAuthorities expands a comma-joined roles string into normalized
// grants: each non-empty trimmed token becomes RolePrefix + uppercased token.
// Duplicates in the stored string are preserved as given.
func GrantedAuthorities(roles string) []string {
	parts := strings.Split(roles, ",")
	authorities := make([]string, 0, len(parts))
	for _, part := range parts {
		role := strings.TrimSpace(part)
		if role == "" {
			continue
		}
		authorities = append(authorities, RolePrefix+strings.ToUpper(role))
	}
	return authorities
}

// normalizeTag uppercases and trims a candidate algorithm tag.
func normalizeTag(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
