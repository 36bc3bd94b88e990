package domain

import "time"

// Todo is the sole persisted entity. The db tags define the stored shape,
// the json tags the wire shape; both are fixed by the v1 API contract.
type Todo struct {
	ID        int64     `json:"id" db:"id"`
	Body      string    `json:"body" db:"body"`
	Completed bool      `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
