package hero

import "github.com/herodex/herodex/internal/optional"

// Hero represents a row in the heroes table. HashedPassword never leaves
// the storage and handler layers; API response shapes do not carry it.
type Hero struct {
	ID             int64
	Name           string
	SecretName     string
	Age            *int
	TeamID         *int64
	HashedPassword string
}

// UpdateFields holds updatable fields on a hero record. Pointer fields are
// skipped when nil. Age and TeamID are nullable columns, so they use
// optional wrappers: unset means skip, explicit null means write SQL NULL.
type UpdateFields struct {
	Name           *string
	SecretName     *string
	Age            optional.Optional[int]
	TeamID         optional.Optional[int64]
	HashedPassword *string
}
