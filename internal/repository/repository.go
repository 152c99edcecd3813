package repository

import (
	"context"
	"errors"
	"fmt"

	"handkeeper/internal/db"
)

var (
	ErrUserNotFound error = errors.New("user not found")
	ErrUserExists   error = errors.New("user already exists")
	ErrHandNotFound error = errors.New("hand not found")
)

// Migrate creates or updates the tables of every model owned by the repositories.
func Migrate(storage Storage) error {
	err := storage.MigrateModels(&User{}, &Hand{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// UserRepository is the credential store.
type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// CreateUser inserts user. The unique index on username is what rejects
// concurrent registrations of the same name.
func (r *UserRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *UserRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// HandRepository is the record store. Every read and delete is filtered by owner in the query itself.
type HandRepository struct {
	db Storage
}

func NewHandRepository(db Storage) *HandRepository {
	return &HandRepository{
		db: db,
	}
}

func (r *HandRepository) SaveHand(ctx context.Context, hand Hand) error {
	if hand.OwnerID == "" {
		return errors.New("hand has no owner")
	}

	err := r.db.Create(ctx, &hand)
	if err != nil {
		return fmt.Errorf("save hand: %w", err)
	}

	return nil
}

func (r *HandRepository) GetHandsByOwner(ctx context.Context, ownerID string, page Page) ([]Hand, error) {
	hands := []Hand{}
	err := r.db.FindAll(ctx, db.Query{
		Where:   map[string]any{"owner_id": ownerID},
		OrderBy: []string{"timestamp_ms DESC", "created_at DESC"},
		Limit:   page.Limit,
		Offset:  page.Offset,
	}, &hands)
	if err != nil {
		return []Hand{}, fmt.Errorf("get hands by owner: %w", err)
	}

	return hands, nil
}

func (r *HandRepository) CountHandsByOwner(ctx context.Context, ownerID string) (int64, error) {
	count, err := r.db.Count(ctx, &Hand{}, map[string]any{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("count hands by owner: %w", err)
	}

	return count, nil
}

// DeleteHand removes the hand only when both id and owner match.
func (r *HandRepository) DeleteHand(ctx context.Context, handID, ownerID string) error {
	deleted, err := r.db.DeleteWhere(ctx, &Hand{}, map[string]any{
		"id":       handID,
		"owner_id": ownerID,
	})
	if err != nil {
		return fmt.Errorf("delete hand: %w", err)
	}

	if deleted == 0 {
		return ErrHandNotFound
	}

	return nil
}
