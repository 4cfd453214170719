package user

import (
	"context"
	"time"

	"user-admin-service/internal/domain/group"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type User struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Status    Status        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	Groups    []group.Group `json:"groups"`
}

// ListOptions carries the raw list parameters as they arrive from the HTTP
// layer. The service normalizes them into a ListQuery; bad values never
// produce an error, only defaults.
type ListOptions struct {
	Query    string
	Status   string
	Page     int
	PageSize int
	SortBy   string
	SortDir  string
}

// ListQuery is the normalized query the repository executes.
// SortColumn is always one of the whitelisted column names.
type ListQuery struct {
	Search     string
	Status     Status // empty means no status filter
	Page       int
	PageSize   int
	SortColumn string
	SortDesc   bool
}

type Repository interface {
	List(ctx context.Context, q ListQuery) (int, []User, error)
	ToggleStatus(ctx context.Context, id string) (*User, error)
}
