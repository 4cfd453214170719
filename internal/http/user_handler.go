package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"user-admin-service/internal/domain/user"
	"user-admin-service/internal/worker"
)

// maxPageSize bounds pageSize at the HTTP boundary; the service only applies
// the lower default.
const maxPageSize = 100

// Response shapes below are a frozen wire contract consumed by the admin
// dashboard UI. The mixed key casing (userId vs Name) and the single-element
// roles list are intentional and must not be "fixed".

type roleRecord struct {
	RoleID   string `json:"role_id"`
	RoleName string `json:"roleName"`
}

type groupRecord struct {
	GroupID   string       `json:"groupId"`
	GroupName string       `json:"groupName"`
	Roles     []roleRecord `json:"roles"`
}

type userRecord struct {
	UserID    string        `json:"userId"`
	Name      string        `json:"Name"`
	Email     string        `json:"Email"`
	Status    string        `json:"Status"`
	CreatedAt string        `json:"CreatedAt"`
	Groups    []groupRecord `json:"groups"`
}

type usersPayload struct {
	TotalCount int          `json:"totalCount"`
	Users      []userRecord `json:"users"`
}

type dataEnvelope struct {
	Data usersPayload `json:"data"`
}

func toUserRecord(u user.User) userRecord {
	groups := make([]groupRecord, 0, len(u.Groups))
	for _, g := range u.Groups {
		groups = append(groups, groupRecord{
			GroupID:   g.ID,
			GroupName: g.Name,
			Roles: []roleRecord{{
				RoleID:   strconv.Itoa(g.RoleID),
				RoleName: string(g.Role),
			}},
		})
	}
	return userRecord{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		Groups:    groups,
	}
}

func envelope(total int, users []user.User) dataEnvelope {
	records := make([]userRecord, 0, len(users))
	for _, u := range users {
		records = append(records, toUserRecord(u))
	}
	return dataEnvelope{Data: usersPayload{TotalCount: total, Users: records}}
}

// @Summary     List users
// @Tags        users
// @Produce     json
// @Param       query     query     string  false  "substring match on name or email"
// @Param       status    query     string  false  "active or inactive; other values ignored"
// @Param       page      query     int     false  "1-based page number"  default(1)
// @Param       pageSize  query     int     false  "page size, capped at 100"  default(10)
// @Param       sortBy    query     string  false  "name, email, createdAt or status"
// @Param       sortDir   query     string  false  "asc or desc"  default(asc)
// @Success     200  {object}  dataEnvelope
// @Failure     500  {object}  map[string]string  "server error"
// @Router      /users/ [get]
func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	opts := user.ListOptions{
		Query:    r.URL.Query().Get("query"),
		Status:   r.URL.Query().Get("status"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "pageSize"),
		SortBy:   r.URL.Query().Get("sortBy"),
		SortDir:  r.URL.Query().Get("sortDir"),
	}
	if opts.PageSize > maxPageSize {
		opts.PageSize = maxPageSize
	}

	total, users, err := h.userSvc.List(r.Context(), opts)
	if err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope(total, users))
}

// @Summary     Toggle user status
// @Description Flips the user between active and inactive. POST /users/{userId} is an alias.
// @Tags        users
// @Produce     json
// @Param       userId  path  string  true  "User ID"
// @Success     200  {object}  dataEnvelope
// @Failure     404  {object}  map[string]string  "user not found"
// @Failure     500  {object}  map[string]string  "server error"
// @Router      /users/{userId} [patch]
func (h *Handler) handleToggleStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	u, err := h.userSvc.ToggleStatus(r.Context(), userID)
	if err != nil {
		errorResponse(w, err)
		return
	}

	select {
	case h.statusCh <- worker.StatusEvent{UserID: u.ID, NewStatus: string(u.Status)}:
	default:
	}

	writeJSON(w, http.StatusOK, envelope(1, []user.User{*u}))
}

// queryInt parses an integer query parameter; anything unparsable comes back
// as 0 and lets the service apply its default.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}
