package game

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pickuphoops/services/user"
	"pickuphoops/set"
	"pickuphoops/utils"
)

var (
	NotFound        = errors.New("game not found")
	AlreadySignedUp = errors.New("user already holds a slot in this game")
	SlotTaken       = errors.New("slot is already taken")
	InvalidSlot     = errors.New("slot index is out of range")
	InvalidInput    = errors.New("invalid game input")
)

type Service interface {
	// Create persists a new game hosted by hostID with an empty roster of
	// input.MaxPlayers slots. The store assigns the id and creation time.
	Create(ctx context.Context, hostID string, input CreateInput) (*Game, error)

	// GetAll returns every game, most recently created first.
	GetAll(ctx context.Context) ([]Game, error)

	// Get returns one game by id.
	Get(ctx context.Context, ID string) (*Game, error)

	// ClaimSlot reserves the slot at index slot for userID. The read and the
	// conditional write run inside a single transaction so two users racing
	// for the same slot cannot both win it. Returns the refreshed game.
	ClaimSlot(ctx context.Context, gameID string, slot int, userID string) (*Game, error)
}

type service struct {
	db    *firestore.Client
	users user.Service
}

var _ Service = (*service)(nil)

const gameCollection = "games"

func NewService(db *firestore.Client, users user.Service) Service {
	return &service{
		db:    db,
		users: users,
	}
}

// NewRoster builds an all-open roster of the given size.
func NewRoster(maxPlayers int) []*Signup {
	return make([]*Signup, maxPlayers)
}

func validateInput(input CreateInput) error {
	if input.Court.ID == 0 && input.Court.Latitude == 0 && input.Court.Longitude == 0 {
		return fmt.Errorf("%w: no court selected", InvalidInput)
	}
	if input.Time == "" {
		return fmt.Errorf("%w: time is required", InvalidInput)
	}
	if input.MaxPlayers <= 0 {
		return fmt.Errorf("%w: maxPlayers must be positive", InvalidInput)
	}
	if input.SkillLevel == "" {
		return fmt.Errorf("%w: skillLevel is required", InvalidInput)
	}
	return nil
}

// validateClaim checks the roster rules for a claim. The roster is not
// mutated on any error path.
func validateClaim(g *Game, slot int, userID string) error {
	if slot < 0 || slot >= len(g.Signups) {
		return InvalidSlot
	}
	occupied := set.New[string]()
	for _, s := range g.Signups {
		if s != nil {
			occupied.Add(s.UserID)
		}
	}
	if occupied.Contains(userID) {
		return AlreadySignedUp
	}
	if g.Signups[slot] != nil {
		return SlotTaken
	}
	return nil
}

func (s *service) Create(ctx context.Context, hostID string, input CreateInput) (*Game, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	g := Game{
		HostID:     hostID,
		Court:      input.Court,
		Time:       input.Time,
		MaxPlayers: input.MaxPlayers,
		SkillLevel: input.SkillLevel,
		Signups:    NewRoster(input.MaxPlayers),
	}

	ref := s.db.Collection(gameCollection).NewDoc()
	g.ID = ref.ID
	if _, err := ref.Set(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	// Read back so the caller sees the store-assigned creation time.
	return s.Get(ctx, g.ID)
}

func (s *service) GetAll(ctx context.Context) ([]Game, error) {
	docs, err := s.db.Collection(gameCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	return utils.GetAllToStructs[Game](docs)
}

func (s *service) Get(ctx context.Context, ID string) (*Game, error) {
	doc, err := s.db.Collection(gameCollection).Doc(ID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, NotFound
	}
	if err != nil {
		return nil, err
	}
	g := Game{}
	if err := doc.DataTo(&g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *service) ClaimSlot(ctx context.Context, gameID string, slot int, userID string) (*Game, error) {
	// Resolve the display name before entering the transaction; profile reads
	// are not part of the claim's consistency boundary.
	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve signup profile: %w", err)
	}

	ref := s.db.Collection(gameCollection).Doc(gameID)
	err = s.db.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			return NotFound
		}
		if err != nil {
			return err
		}
		g := Game{}
		if err := doc.DataTo(&g); err != nil {
			return err
		}
		if err := validateClaim(&g, slot, userID); err != nil {
			return err
		}
		g.Signups[slot] = &Signup{UserID: userID, DisplayName: u.DisplayName}
		return tx.Update(ref, []firestore.Update{
			{Path: "signups", Value: g.Signups},
		})
	})
	if err != nil {
		log.Warn().Err(err).
			Str("gameId", gameID).
			Int("slot", slot).
			Str("userId", userID).
			Msg("slot claim rejected")
		return nil, err
	}

	return s.Get(ctx, gameID)
}
