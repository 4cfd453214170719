package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"user-admin-service/internal/domain/group"
	"user-admin-service/internal/domain/user"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// List counts the users matching the filters and fetches the requested page.
// The count ignores pagination; the page query orders by q.SortColumn, which
// the service guarantees is a whitelisted column name. Groups for the whole
// page are loaded in one batched query.
func (r *UserRepo) List(ctx context.Context, q user.ListQuery) (int, []user.User, error) {
	var conds []string
	var args []any

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", len(args), len(args)))
	}
	if q.Status != "" {
		args = append(args, string(q.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users"+where, args...).Scan(&total); err != nil {
		return 0, nil, err
	}

	dir := "ASC"
	if q.SortDesc {
		dir = "DESC"
	}
	args = append(args, q.PageSize, (q.Page-1)*q.PageSize)
	query := fmt.Sprintf(`
        SELECT id, name, email, status, created_at
        FROM users%s
        ORDER BY %s %s
        LIMIT $%d OFFSET $%d
    `, where, q.SortColumn, dir, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0, q.PageSize)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Status, &u.CreatedAt); err != nil {
			return 0, nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return 0, nil, err
	}

	if err := r.loadGroups(ctx, users); err != nil {
		return 0, nil, err
	}
	return total, users, nil
}

// ToggleStatus flips the status in a single UPDATE so concurrent toggles on
// the same row serialize inside the database. sql.ErrNoRows becomes
// user.ErrNotFound.
func (r *UserRepo) ToggleStatus(ctx context.Context, id string) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `
        UPDATE users
        SET status = CASE WHEN status = 'active' THEN 'inactive' ELSE 'active' END
        WHERE id = $1
        RETURNING id, name, email, status, created_at
    `, id)

	u := &user.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Status, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	page := []user.User{*u}
	if err := r.loadGroups(ctx, page); err != nil {
		return nil, err
	}
	return &page[0], nil
}

// Create inserts a user. Used by the seeder, not by the request path.
func (r *UserRepo) Create(ctx context.Context, u *user.User) error {
	return r.db.QueryRowContext(ctx, `
        INSERT INTO users (id, name, email, status)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at
    `, u.ID, u.Name, u.Email, u.Status).Scan(&u.CreatedAt)
}

// AddGroup attaches a user to a group. A repeated (user, group) pair is a
// no-op since the join table's primary key enforces uniqueness.
func (r *UserRepo) AddGroup(ctx context.Context, userID, groupID string) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO user_groups (user_id, group_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `, userID, groupID)
	return err
}

func (r *UserRepo) loadGroups(ctx context.Context, users []user.User) error {
	if len(users) == 0 {
		return nil
	}

	ids := make([]string, len(users))
	byID := make(map[string]int, len(users))
	for i := range users {
		ids[i] = users[i].ID
		byID[users[i].ID] = i
		users[i].Groups = []group.Group{}
	}

	rows, err := r.db.QueryContext(ctx, `
        SELECT ug.user_id, g.id, g.name, g.role, g.role_id
        FROM user_groups ug
        JOIN groups g ON g.id = ug.group_id
        WHERE ug.user_id = ANY($1)
        ORDER BY g.name
    `, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var g group.Group
		if err := rows.Scan(&userID, &g.ID, &g.Name, &g.Role, &g.RoleID); err != nil {
			return err
		}
		i := byID[userID]
		users[i].Groups = append(users[i].Groups, g)
	}
	return rows.Err()
}
