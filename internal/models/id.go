package models

import "github.com/google/uuid"

// IDGenerator produces unique, collision-resistant string identifiers.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates random (version 4) UUID strings.
type UUIDGenerator struct{}

// NewID returns a new UUID v4 string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() string

// NewID calls f.
func (f IDGeneratorFunc) NewID() string {
	return f()
}
