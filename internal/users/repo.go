package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitstreak/internal/telemetry/tracing"
	"github.com/2beens/fitstreak/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrNoProfilePicture = errors.New("no profile picture")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) FindByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.find")
	defer func() {
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("username", username))

	user := &User{}
	err = r.db.QueryRow(ctx, `
		SELECT username, password_hash, profile_picture IS NOT NULL, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&user.Username, &user.PasswordHash, &user.HasProfilePicture, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Insert fails with ErrDuplicateKey when the username is already registered.
func (r *Repo) Insert(ctx context.Context, username, passwordHash string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.insert")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("username", username))

	_, err = r.db.Exec(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
	`, username, passwordHash)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *Repo) GetProfilePicture(ctx context.Context, username string) (_ *Picture, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.picture.get")
	defer span.End()

	var data []byte
	var contentType *string
	err = r.db.QueryRow(ctx, `
		SELECT profile_picture, profile_picture_type
		FROM users
		WHERE username = $1
	`, username).Scan(&data, &contentType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		span.RecordError(err)
		return nil, err
	}
	if data == nil {
		return nil, ErrNoProfilePicture
	}

	picture := &Picture{Data: data}
	if contentType != nil {
		picture.ContentType = *contentType
	}
	return picture, nil
}

// HasProfilePicture checks for a stored picture without loading it.
func (r *Repo) HasProfilePicture(ctx context.Context, username string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.picture.exists")
	defer span.End()

	var hasPicture bool
	err = r.db.QueryRow(ctx, `
		SELECT profile_picture IS NOT NULL
		FROM users
		WHERE username = $1
	`, username).Scan(&hasPicture)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrUserNotFound
		}
		span.RecordError(err)
		return false, err
	}
	return hasPicture, nil
}

func (r *Repo) SetProfilePicture(ctx context.Context, username string, picture Picture) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.picture.set")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("picture.size", len(picture.Data)))

	tag, err := r.db.Exec(ctx, `
		UPDATE users SET profile_picture = $1, profile_picture_type = $2
		WHERE username = $3
	`, picture.Data, picture.ContentType, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
