package postgres

import (
	"context"
	"database/sql"

	"user-admin-service/internal/domain/group"
)

type GroupRepo struct {
	db *sql.DB
}

func NewGroupRepo(db *sql.DB) *GroupRepo {
	return &GroupRepo{db: db}
}

func (r *GroupRepo) Create(ctx context.Context, g *group.Group) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO groups (id, name, role, role_id)
        VALUES ($1, $2, $3, $4)
    `, g.ID, g.Name, g.Role, g.RoleID)
	return err
}

func (r *GroupRepo) List(ctx context.Context) ([]group.Group, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, role, role_id
        FROM groups ORDER BY name
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []group.Group
	for rows.Next() {
		var g group.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Role, &g.RoleID); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
