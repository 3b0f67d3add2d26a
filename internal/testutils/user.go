package testutils

import "github.com/google/uuid"

// UniqueEmail keeps parallel runs against a shared database apart.
func UniqueEmail(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8] + "@example.com"
}
