package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const checkUsersTableExists = `-- name: CheckUsersTableExists :one
SELECT EXISTS (
    SELECT 1 FROM information_schema.tables
    WHERE table_schema = current_schema() AND table_name = 'users'
)
`

func (q *Queries) CheckUsersTableExists(ctx context.Context) (bool, error) {
	row := q.db.QueryRow(ctx, checkUsersTableExists)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const createUser = `-- name: CreateUser :one
INSERT INTO users (email, username, first_name, last_name, password_hash, role, is_staff)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

type CreateUserParams struct {
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         Role
	IsStaff      bool
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (int64, error) {
	row := q.db.QueryRow(ctx, createUser,
		arg.Email,
		arg.Username,
		arg.FirstName,
		arg.LastName,
		arg.PasswordHash,
		arg.Role,
		arg.IsStaff,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getAdminCount = `-- name: GetAdminCount :one
SELECT COUNT(*) FROM users WHERE role = 'admin' OR is_staff
`

func (q *Queries) GetAdminCount(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, getAdminCount)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getUser = `-- name: GetUser :one
SELECT id, email, username, first_name, last_name, password_hash, role, is_staff, created_at
FROM users
WHERE id = $1
`

func (q *Queries) GetUser(ctx context.Context, id int64) (User, error) {
	row := q.db.QueryRow(ctx, getUser, id)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Username,
		&i.FirstName,
		&i.LastName,
		&i.PasswordHash,
		&i.Role,
		&i.IsStaff,
		&i.CreatedAt,
	)
	return i, err
}

const getUserByEmail = `-- name: GetUserByEmail :one
SELECT id, email, username, first_name, last_name, password_hash, role, is_staff, created_at
FROM users
WHERE LOWER(email) = LOWER($1)
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByEmail, email)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Username,
		&i.FirstName,
		&i.LastName,
		&i.PasswordHash,
		&i.Role,
		&i.IsStaff,
		&i.CreatedAt,
	)
	return i, err
}

const getUserProfile = `-- name: GetUserProfile :one
SELECT u.id, u.email, u.username, u.first_name, u.last_name,
    EXISTS (
        SELECT 1 FROM follows f
        WHERE f.author_id = u.id AND f.user_id = $2::bigint
    ) AS is_subscribed
FROM users u
WHERE u.id = $1
`

type GetUserProfileParams struct {
	ID       int64
	ViewerID pgtype.Int8
}

type UserProfileRow struct {
	ID           int64
	Email        string
	Username     string
	FirstName    string
	LastName     string
	IsSubscribed bool
}

func (q *Queries) GetUserProfile(ctx context.Context, arg GetUserProfileParams) (UserProfileRow, error) {
	row := q.db.QueryRow(ctx, getUserProfile, arg.ID, arg.ViewerID)
	var i UserProfileRow
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Username,
		&i.FirstName,
		&i.LastName,
		&i.IsSubscribed,
	)
	return i, err
}

const listUserProfiles = `-- name: ListUserProfiles :many
SELECT u.id, u.email, u.username, u.first_name, u.last_name,
    EXISTS (
        SELECT 1 FROM follows f
        WHERE f.author_id = u.id AND f.user_id = $1::bigint
    ) AS is_subscribed
FROM users u
ORDER BY u.id
LIMIT $2 OFFSET $3
`

type ListUserProfilesParams struct {
	ViewerID pgtype.Int8
	Limit    int32
	Offset   int32
}

func (q *Queries) ListUserProfiles(ctx context.Context, arg ListUserProfilesParams) ([]UserProfileRow, error) {
	rows, err := q.db.Query(ctx, listUserProfiles, arg.ViewerID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UserProfileRow
	for rows.Next() {
		var i UserProfileRow
		if err := rows.Scan(
			&i.ID,
			&i.Email,
			&i.Username,
			&i.FirstName,
			&i.LastName,
			&i.IsSubscribed,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countUsers = `-- name: CountUsers :one
SELECT COUNT(*) FROM users
`

func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countUsers)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateUserPassword = `-- name: UpdateUserPassword :exec
UPDATE users SET password_hash = $2 WHERE id = $1
`

type UpdateUserPasswordParams struct {
	ID           int64
	PasswordHash string
}

func (q *Queries) UpdateUserPassword(ctx context.Context, arg UpdateUserPasswordParams) error {
	_, err := q.db.Exec(ctx, updateUserPassword, arg.ID, arg.PasswordHash)
	return err
}
