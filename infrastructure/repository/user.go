package repository

//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

const usersTable = "users"

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	DeleteUser(ctx context.Context, uid string) (bool, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByUID(ctx context.Context, uid string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

var userColumns = []string{"uid", "email", "display_name", "password_hash", "roles", "created_at", "updated_at"}

func roleStrings(roles []domain.Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user  domain.User
		roles []string
	)
	if err := row.Scan(
		&user.UID,
		&user.Email,
		&user.DisplayName,
		&user.PasswordHash,
		pq.Array(&roles),
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	known, unknown := domain.NormalizeRoles(roles)
	if len(unknown) > 0 {
		logrus.WithFields(logrus.Fields{
			"user_id": user.UID,
			"roles":   unknown,
		}).Warn("Ignoring unknown stored roles")
	}
	user.Roles = known

	return &user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	sqlQuery, args, err := squirrel.
		Insert(usersTable).
		Columns("uid", "email", "display_name", "password_hash", "roles").
		Values(user.UID, user.Email, user.DisplayName, user.PasswordHash, pq.Array(roleStrings(user.Roles))).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	sqlQuery, args, err := squirrel.
		Update(usersTable).
		Set("display_name", user.DisplayName).
		Set("roles", pq.Array(roleStrings(user.Roles))).
		Set("password_hash", user.PasswordHash).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"uid": user.UID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build user update: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, uid string) (bool, error) {
	sqlQuery, args, err := squirrel.
		Delete(usersTable).
		Where(squirrel.Eq{"uid": uid}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build user delete: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *userRepository) getUserBy(ctx context.Context, column, value string) (*domain.User, error) {
	sqlQuery, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{column: value}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	user, err := scanUser(r.conn.QueryRowContext(ctx, sqlQuery, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user by %s: %w", column, err)
	}

	return user, nil
}

// GetUserByEmail returns nil, nil when no user matches.
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUserBy(ctx, "email", email)
}

// GetUserByUID returns nil, nil when no user matches.
func (r *userRepository) GetUserByUID(ctx context.Context, uid string) (*domain.User, error) {
	return r.getUserBy(ctx, "uid", uid)
}

func (r *userRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	sqlQuery, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		OrderBy("email ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build users query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}
