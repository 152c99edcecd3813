package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"handkeeper/internal/db"
	"handkeeper/internal/repository"
	tokenIssuer "handkeeper/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrDuplicateUsername error = errors.New("username already taken")
var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrHandNotFound error = errors.New("hand not found or not owned by you")

var TimeNow = time.Now
var NewID = uuid.NewString

// HandKeeper registers and authenticates users and manages the hands they own.
type HandKeeper struct {
	logs      *zap.SugaredLogger
	users     UserRepository
	hands     HandRepository
	hasher    PasswordHasher
	jwtIssuer JWTIssuer
}

// NewHandKeeper is a constructor function for the HandKeeper type.
func NewHandKeeper(logger *zap.SugaredLogger, users UserRepository, hands HandRepository, hasher PasswordHasher, jwt JWTIssuer) *HandKeeper {
	return &HandKeeper{
		logs:      logger,
		users:     users,
		hands:     hands,
		hasher:    hasher,
		jwtIssuer: jwt,
	}
}

// Register creates a user with a hashed password. The username lookup only gives an
// early answer; the store's unique index decides concurrent registrations.
func (h *HandKeeper) Register(ctx context.Context, msg AuthMessage) error {
	_, err := h.users.GetUserByUsername(ctx, msg.Username)
	if err == nil {
		return ErrDuplicateUsername
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("get user from db: %w", err)
	}

	hash, err := h.hasher.Hash(msg.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:           NewID(),
		Username:     msg.Username,
		PasswordHash: hash,
		CreatedAt:    TimeNow().UTC(),
	}
	if err := h.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("create user: %w", err)
	}

	h.logs.Infow("user registered", "user_id", user.ID, "username", user.Username)
	return nil
}

// Login checks the provided username and password against the database. If the credentials are valid, it issues a JWT token for the user.
func (h *HandKeeper) Login(ctx context.Context, msg AuthMessage) (LoginResult, error) {
	user, err := h.users.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, ErrUserNotFound
		}
		return LoginResult{}, fmt.Errorf("get user from db: %w", err)
	}

	if !h.hasher.Verify(msg.Password, user.PasswordHash) {
		return LoginResult{}, ErrIncorrectPassword
	}

	token, err := h.jwtIssuer.Issue(tokenIssuer.Subject{
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	return LoginResult{
		Token:    token,
		Username: user.Username,
	}, nil
}

// CreateHand stores msg as a hand owned by identity.
func (h *HandKeeper) CreateHand(ctx context.Context, identity Identity, msg HandMessage) (HandRecord, error) {
	if identity.UserID == "" {
		return HandRecord{}, errors.New("missing identity")
	}

	hand := repository.Hand{
		ID:        NewID(),
		OwnerID:   identity.UserID,
		OwnerName: identity.Username,
		Timestamp: msg.Timestamp,
		DateStr:   msg.DateStr,
		Game:      db.JSON(msg.Game),
		Hero:      db.JSON(msg.Hero),
		Villains:  db.JSON(msg.Villains),
		Board:     db.JSON(msg.Board),
		Logs:      db.JSON(msg.Logs),
		CreatedAt: TimeNow().UTC(),
	}

	if err := h.hands.SaveHand(ctx, hand); err != nil {
		return HandRecord{}, fmt.Errorf("save hand: %w", err)
	}

	h.logs.Infow("hand saved", "hand_id", hand.ID, "user_id", identity.UserID)
	return handToRecord(hand), nil
}

// ListHands returns the hands owned by identity, newest first.
func (h *HandKeeper) ListHands(ctx context.Context, identity Identity, page Page) (HandPage, error) {
	hands, err := h.hands.GetHandsByOwner(ctx, identity.UserID, repository.Page{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return HandPage{}, fmt.Errorf("get hands: %w", err)
	}

	total := int64(len(hands))
	if page.Limit > 0 {
		total, err = h.hands.CountHandsByOwner(ctx, identity.UserID)
		if err != nil {
			return HandPage{}, fmt.Errorf("count hands: %w", err)
		}
	}

	records := make([]HandRecord, len(hands))
	for i, hand := range hands {
		records[i] = handToRecord(hand)
	}

	return HandPage{
		Hands: records,
		Total: total,
	}, nil
}

// DeleteHand deletes the hand only if identity owns it. A missing hand and
// someone else's hand yield the same ErrHandNotFound.
func (h *HandKeeper) DeleteHand(ctx context.Context, identity Identity, handID string) error {
	if _, err := uuid.Parse(handID); err != nil {
		return ErrHandNotFound
	}

	err := h.hands.DeleteHand(ctx, handID, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrHandNotFound) {
			return ErrHandNotFound
		}
		return fmt.Errorf("delete hand: %w", err)
	}

	h.logs.Infow("hand deleted", "hand_id", handID, "user_id", identity.UserID)
	return nil
}

func (h *HandKeeper) CheckHealth(ctx context.Context) error {
	if err := h.users.Ping(ctx); err != nil {
		return fmt.Errorf("ping store: %w", err)
	}
	return nil
}

func handToRecord(hand repository.Hand) HandRecord {
	return HandRecord{
		ID:        hand.ID,
		Owner:     hand.OwnerID,
		OwnerName: hand.OwnerName,
		Timestamp: hand.Timestamp,
		DateStr:   hand.DateStr,
		Game:      rawJSON(hand.Game),
		Hero:      rawJSON(hand.Hero),
		Villains:  rawJSON(hand.Villains),
		Board:     rawJSON(hand.Board),
		Logs:      rawJSON(hand.Logs),
		CreatedAt: hand.CreatedAt,
	}
}

func rawJSON(j db.JSON) json.RawMessage {
	if len(j) == 0 {
		return nil
	}
	return json.RawMessage(j)
}
