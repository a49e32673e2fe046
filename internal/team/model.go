package team

// Team represents a row in the teams table.
type Team struct {
	ID           int64
	Name         string
	Headquarters string
}

// UpdateFields holds updatable fields on a team record.
// Nil fields are left untouched.
type UpdateFields struct {
	Name         *string
	Headquarters *string
}
