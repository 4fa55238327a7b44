package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

var userColumns = []string{
	"id", "username", "email", "password_hash", "role", "verified",
	"verified_at", "verification_note", "preferences", "created_at", "updated_at",
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u           domain.User
		verifiedAt  sql.NullTime
		preferences []byte
	)

	if err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Verified,
		&verifiedAt, &u.VerificationNote, &preferences, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return domain.User{}, err
	}

	if verifiedAt.Valid {
		t := verifiedAt.Time
		u.VerifiedAt = &t
	}
	if err := unmarshalJSON(preferences, &u.Preferences); err != nil {
		return domain.User{}, err
	}

	return u, nil
}

func (r *Repository) FetchUser(ctx context.Context, userID string) (domain.User, error) {
	sb := sqlbuilder.Select(userColumns...)
	sb.From("users")
	sb.Where(sb.Equal("id", userID))

	query, args := sb.Build()
	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user: %w", err)
	}
	return u, nil
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (domain.User, error) {
	sb := sqlbuilder.Select(userColumns...)
	sb.From("users")
	sb.Where(sb.Equal("email", email))

	query, args := sb.Build()
	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user by email: %w", err)
	}
	return u, nil
}

func (r *Repository) ListUsers(
	ctx context.Context,
	filters domain.UserFilters,
	options domain.UserListOptions,
) ([]domain.User, error) {
	sb := sqlbuilder.Select(userColumns...)
	sb.From("users")

	var conds []string
	if filters.Verified != nil {
		conds = append(conds, sb.Equal("verified", *filters.Verified))
	}
	if filters.Role != "" {
		conds = append(conds, sb.Equal("role", string(filters.Role)))
	}
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	sb.OrderBy("created_at DESC")
	sb.Offset((options.Page - 1) * options.PageSize)
	sb.Limit(options.PageSize)

	return r.queryUsers(ctx, sb)
}

func (r *Repository) queryUsers(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.User, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running users query: %w", err)
	}
	defer closeRows(rows)

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}

	return users, nil
}

func (r *Repository) CreateUser(ctx context.Context, user domain.User) error {
	preferences, err := marshalJSON(user.Preferences)
	if err != nil {
		return err
	}

	var verifiedAt sql.NullTime
	if user.VerifiedAt != nil {
		verifiedAt = sql.NullTime{Time: *user.VerifiedAt, Valid: true}
	}

	ib := sqlbuilder.InsertInto("users")
	ib.Cols(userColumns...)
	ib.Values(
		user.ID, user.Username, user.Email, user.PasswordHash,
		string(user.Role), user.Verified, verifiedAt, user.VerificationNote,
		preferences, user.CreatedAt, user.UpdatedAt,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting user: %w", mapWriteErr(err))
	}
	return nil
}

func (r *Repository) UpdateUser(ctx context.Context, user domain.User) error {
	ub := sqlbuilder.Update("users")
	ub.Set(
		ub.Assign("username", user.Username),
		ub.Assign("email", user.Email),
		ub.Assign("password_hash", user.PasswordHash),
		ub.Assign("role", string(user.Role)),
		ub.Assign("updated_at", user.UpdatedAt),
	)
	ub.Where(ub.Equal("id", user.ID))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating user: %w", mapWriteErr(err))
	}

	if err := requireAffected(res); errors.Is(err, domain.ErrNotFound) {
		if _, fetchErr := r.FetchUser(ctx, user.ID); fetchErr != nil {
			return fetchErr
		}
	} else if err != nil {
		return err
	}
	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, userID string) error {
	del := sqlbuilder.DeleteFrom("users")
	del.Where(del.Equal("id", userID))

	query, args := del.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return requireAffected(res)
}

func (r *Repository) SetUserPreferences(ctx context.Context, userID string, preferences domain.Preferences) error {
	encoded, err := marshalJSON(preferences)
	if err != nil {
		return err
	}

	ub := sqlbuilder.Update("users")
	ub.Set(ub.Assign("preferences", encoded))
	ub.Where(ub.Equal("id", userID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("setting user preferences: %w", err)
	}
	return nil
}

func (r *Repository) ListVerificationCandidates(ctx context.Context, createdBefore time.Time) ([]domain.User, error) {
	sb := sqlbuilder.Select(userColumns...)
	sb.From("users")
	sb.Where(
		sb.Equal("verified", false),
		sb.LessEqualThan("created_at", createdBefore),
	)
	sb.OrderBy("created_at")

	return r.queryUsers(ctx, sb)
}

func (r *Repository) MarkUserVerified(ctx context.Context, userID string, verifiedAt time.Time, note string) error {
	ub := sqlbuilder.Update("users")
	ub.Set(
		ub.Assign("verified", true),
		ub.Assign("verified_at", verifiedAt),
		ub.Assign("verification_note", note),
		ub.Assign("updated_at", verifiedAt),
	)
	ub.Where(ub.Equal("id", userID))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("marking user verified: %w", err)
	}
	return requireAffected(res)
}
