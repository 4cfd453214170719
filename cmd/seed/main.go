// Command seed recreates the schema and fills it with demo data for the
// dashboard: a pool of shared groups and a hundred users, each a member of
// one to three groups.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"user-admin-service/internal/config"
	"user-admin-service/internal/domain/group"
	"user-admin-service/internal/domain/user"
	"user-admin-service/internal/platform/database"
	"user-admin-service/internal/repository/postgres"
)

const schema = `
DROP TABLE IF EXISTS user_groups;
DROP TABLE IF EXISTS users;
DROP TABLE IF EXISTS groups;

CREATE TABLE groups (
    id      TEXT PRIMARY KEY,
    name    TEXT NOT NULL,
    role    TEXT NOT NULL,
    role_id INTEGER NOT NULL
);

CREATE TABLE users (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    email      TEXT NOT NULL UNIQUE,
    status     TEXT NOT NULL DEFAULT 'active',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE user_groups (
    user_id  TEXT NOT NULL REFERENCES users (id),
    group_id TEXT NOT NULL REFERENCES groups (id),
    PRIMARY KEY (user_id, group_id)
);

CREATE INDEX ix_users_name_email ON users (name, email);
CREATE INDEX ix_users_status ON users (status);
CREATE INDEX ix_users_created_at ON users (created_at);
`

const (
	groupCount = 10
	userCount  = 100
)

// role_id values mirror the role enumeration; the two columns are stored
// independently on purpose.
var roleIDs = map[group.Role]int{
	group.RoleAdmin:   1,
	group.RoleManager: 2,
	group.RoleMember:  3,
}

var roles = []group.Role{group.RoleAdmin, group.RoleManager, group.RoleMember}

var groupWords = []string{
	"Aurora", "Basalt", "Cobalt", "Drift", "Ember",
	"Fathom", "Garnet", "Harbor", "Indigo", "Juniper",
}

var firstNames = []string{
	"Alice", "Bruno", "Clara", "Daniel", "Elena", "Felix", "Grace", "Hugo",
	"Irene", "Jonas", "Karin", "Liam", "Marta", "Nils", "Olga", "Pavel",
	"Quinn", "Rosa", "Stefan", "Tilda",
}

var lastNames = []string{
	"Smith", "Ivanova", "Garcia", "Chen", "Mueller", "Okafor", "Petrov",
	"Tanaka", "Novak", "Olsen", "Silva", "Kowalski", "Haddad", "Berg",
	"Costa", "Drago",
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := database.NewPostgres(ctx, cfg.DB_DSN)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	groupRepo := postgres.NewGroupRepo(db)
	userRepo := postgres.NewUserRepo(db)

	groups := make([]group.Group, 0, groupCount)
	for i := 0; i < groupCount; i++ {
		role := roles[rand.Intn(len(roles))]
		g := group.Group{
			ID:     uuid.NewString(),
			Name:   groupWords[i] + " Group",
			Role:   role,
			RoleID: roleIDs[role],
		}
		if err := groupRepo.Create(ctx, &g); err != nil {
			log.Fatalf("create group %q: %v", g.Name, err)
		}
		groups = append(groups, g)
	}

	for i := 0; i < userCount; i++ {
		first := firstNames[rand.Intn(len(firstNames))]
		last := lastNames[rand.Intn(len(lastNames))]

		u := user.User{
			ID:     uuid.NewString(),
			Name:   first + " " + last,
			Email:  fmt.Sprintf("%s.%s.%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
			Status: user.StatusActive,
		}
		if rand.Intn(2) == 1 {
			u.Status = user.StatusInactive
		}
		if err := userRepo.Create(ctx, &u); err != nil {
			log.Fatalf("create user %q: %v", u.Email, err)
		}

		// 1-3 distinct groups per user
		for _, gi := range rand.Perm(len(groups))[:1+rand.Intn(3)] {
			if err := userRepo.AddGroup(ctx, u.ID, groups[gi].ID); err != nil {
				log.Fatalf("attach user %q to group: %v", u.Email, err)
			}
		}
	}

	log.Printf("seed complete: %d groups, %d users created", groupCount, userCount)
}
