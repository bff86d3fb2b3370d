package model

import (
	"github.com/google/uuid"
)

// User is a read-only view of a directory record owned by the store.
type User struct {
	ID     uuid.UUID
	Name   string
	Age    uint8
	Grade  uint8
	Active bool
}
