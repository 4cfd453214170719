package user

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("user not found")

// sortColumns maps the API sort keys to the columns they order by. Anything
// outside this map falls back to the default ordering.
var sortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"createdAt": "created_at",
	"status":    "status",
}

const (
	defaultPageSize   = 10
	defaultSortColumn = "created_at"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the total number of users matching the filters plus the
// requested page, sorted and with groups attached. Malformed options are
// normalized instead of rejected: unknown status values disable the filter,
// unknown sort keys fall back to newest-first, page and pageSize fall back
// to 1 and 10.
func (s *Service) List(ctx context.Context, opts ListOptions) (int, []User, error) {
	return s.repo.List(ctx, Normalize(opts))
}

// ToggleStatus flips the user between active and inactive and returns the
// persisted state with groups attached. Returns ErrNotFound when the id does
// not resolve.
func (s *Service) ToggleStatus(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	return s.repo.ToggleStatus(ctx, id)
}

// Normalize applies the permissive-input policy: every malformed value
// degrades to a safe default rather than failing.
func Normalize(opts ListOptions) ListQuery {
	q := ListQuery{
		Search:   opts.Query,
		Page:     opts.Page,
		PageSize: opts.PageSize,
	}

	if opts.Status == string(StatusActive) || opts.Status == string(StatusInactive) {
		q.Status = Status(opts.Status)
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}

	if col, ok := sortColumns[opts.SortBy]; ok {
		q.SortColumn = col
		dir := strings.ToLower(opts.SortDir)
		q.SortDesc = dir != "" && dir != "asc"
	} else {
		// default ordering: most recently created first, sortDir ignored
		q.SortColumn = defaultSortColumn
		q.SortDesc = true
	}

	return q
}
