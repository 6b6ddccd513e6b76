package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/fatih/structs"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Service interface {
	// GetUser returns the profile stored for the given auth identity.
	GetUser(ctx context.Context, ID string) (*User, error)
	// GetByEmail returns the user registered under the given email address.
	GetByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user *User) (*User, error)
	// UpdateProfile applies the non-nil fields of update to the user's own
	// profile document and returns the updated profile.
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error)
}

type userService struct {
	db *firestore.Client
}

var _ Service = (*userService)(nil)

const userCollection = "users"

func NewService(client *firestore.Client) Service {
	return &userService{
		db: client,
	}
}

var NotFound = errors.New("user not found")

func (s *userService) GetUser(ctx context.Context, ID string) (*User, error) {
	doc, err := s.db.Collection(userCollection).Doc(ID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, NotFound
	}
	if err != nil {
		return nil, err
	}
	user := User{}
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*User, error) {
	iter := s.db.Collection(userCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)

	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		user := User{}
		if err := doc.DataTo(&user); err != nil {
			return nil, err
		}
		return &user, nil
	}

	return nil, NotFound
}

func (s *userService) CreateUser(ctx context.Context, user *User) (*User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}

	now := time.Now()
	user.CreatedAt = now

	ref := s.db.Collection(userCollection).NewDoc()
	user.ID = ref.ID

	_, err := ref.Set(ctx, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error) {
	fields := structs.Map(update)
	if len(fields) == 0 {
		return s.GetUser(ctx, userID)
	}

	_, err := s.db.Collection(userCollection).Doc(userID).Set(ctx, fields, firestore.MergeAll)
	if status.Code(err) == codes.NotFound {
		return nil, NotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetUser(ctx, userID)
}
