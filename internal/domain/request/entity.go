package request

import (
	"time"

	"github.com/google/uuid"
)

// Request is an organization's declared hiring need. The required-skill list
// lives in its own table and is fetched separately; location and description
// are display metadata with no effect on scoring.
type Request struct {
	ID          uuid.UUID
	Title       string
	Location    string
	Description string
	CreatedAt   time.Time
}
