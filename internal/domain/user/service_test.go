package user

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		opts ListOptions
		want ListQuery
	}{
		{
			name: "empty options fall back to defaults",
			opts: ListOptions{},
			want: ListQuery{Page: 1, PageSize: 10, SortColumn: "created_at", SortDesc: true},
		},
		{
			name: "negative page and pageSize fall back to defaults",
			opts: ListOptions{Page: -3, PageSize: 0},
			want: ListQuery{Page: 1, PageSize: 10, SortColumn: "created_at", SortDesc: true},
		},
		{
			name: "valid status filter is applied",
			opts: ListOptions{Status: "inactive"},
			want: ListQuery{Status: StatusInactive, Page: 1, PageSize: 10, SortColumn: "created_at", SortDesc: true},
		},
		{
			name: "unknown status is ignored",
			opts: ListOptions{Status: "bogus"},
			want: ListQuery{Page: 1, PageSize: 10, SortColumn: "created_at", SortDesc: true},
		},
		{
			name: "whitelisted sort defaults to ascending",
			opts: ListOptions{SortBy: "name"},
			want: ListQuery{Page: 1, PageSize: 10, SortColumn: "name"},
		},
		{
			name: "sortDir is case-insensitive",
			opts: ListOptions{SortBy: "email", SortDir: "ASC"},
			want: ListQuery{Page: 1, PageSize: 10, SortColumn: "email"},
		},
		{
			name: "anything but asc means descending",
			opts: ListOptions{SortBy: "status", SortDir: "descending"},
			want: ListQuery{Page: 1, PageSize: 10, SortColumn: "status", SortDesc: true},
		},
		{
			name: "createdAt maps to the created_at column",
			opts: ListOptions{SortBy: "createdAt", SortDir: "desc"},
			want: ListQuery{Page: 1, PageSize: 10, SortColumn: "created_at", SortDesc: true},
		},
		{
			name: "unknown sort key falls back to newest-first and ignores sortDir",
			opts: ListOptions{SortBy: "password", SortDir: "asc"},
			want: ListQuery{Page: 1, PageSize: 10, SortColumn: "created_at", SortDesc: true},
		},
		{
			name: "search and paging pass through",
			opts: ListOptions{Query: "alice", Page: 3, PageSize: 25},
			want: ListQuery{Search: "alice", Page: 3, PageSize: 25, SortColumn: "created_at", SortDesc: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.opts))
		})
	}
}

type captureRepo struct {
	last  ListQuery
	total int
	users []User
}

func (r *captureRepo) List(ctx context.Context, q ListQuery) (int, []User, error) {
	r.last = q
	return r.total, r.users, nil
}

func (r *captureRepo) ToggleStatus(ctx context.Context, id string) (*User, error) {
	return nil, ErrNotFound
}

func TestServiceListNormalizesBeforeRepo(t *testing.T) {
	repo := &captureRepo{total: 42}
	svc := NewService(repo)

	total, _, err := svc.List(context.Background(), ListOptions{
		Query:   "smith",
		Status:  "nonsense",
		Page:    -1,
		SortBy:  "secret",
		SortDir: "asc",
	})

	require.NoError(t, err)
	assert.Equal(t, 42, total)
	assert.Equal(t, ListQuery{
		Search:     "smith",
		Page:       1,
		PageSize:   10,
		SortColumn: "created_at",
		SortDesc:   true,
	}, repo.last)
}

type memoryRepo struct {
	mu    sync.Mutex
	users map[string]*User
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[string]*User)}
}

func (r *memoryRepo) seed(u User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.users[u.ID] = &u
}

func (r *memoryRepo) List(ctx context.Context, q ListQuery) (int, []User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]User, 0, len(r.users))
	for _, u := range r.users {
		res = append(res, *u)
	}
	return len(res), res, nil
}

func (r *memoryRepo) ToggleStatus(ctx context.Context, id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if u.Status == StatusActive {
		u.Status = StatusInactive
	} else {
		u.Status = StatusActive
	}
	copyUser := *u
	return &copyUser, nil
}

func TestToggleStatusFlipsTwice(t *testing.T) {
	repo := newMemoryRepo()
	repo.seed(User{ID: "u1", Name: "Alice Smith", Email: "alice@x.com", Status: StatusActive})
	svc := NewService(repo)
	ctx := context.Background()

	u, err := svc.ToggleStatus(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, u.Status)

	u, err = svc.ToggleStatus(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, StatusActive, u.Status)
}

func TestToggleStatusNotFound(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	_, err := svc.ToggleStatus(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ToggleStatus(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}
