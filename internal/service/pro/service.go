package pro

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/pro/mock.go -package=mocks

// ErrValidation means the onboarding request was rejected before any mutation.
var ErrValidation = errors.New("invalid professional profile")

type proRepo interface {
	Create(ctx context.Context, p *model.ProProfile) error
	GetByID(ctx context.Context, id string) (model.ProProfile, error)
	GetAll(ctx context.Context) ([]model.ProProfile, error)
}

type bioDrafter interface {
	DraftBio(ctx context.Context, profession string, traits []string) string
}

// OnboardRequest carries a new professional's registration data.
type OnboardRequest struct {
	Name        string
	Category    model.Category
	Description string
	HourlyRate  float64
	Experience  int
	Mobile      string
	Address     string
	Location    string
	PhotoCount  int
}

// Service owns the professional directory: listing, onboarding and
// AI-assisted bio drafting.
type Service struct {
	repo    proRepo
	drafter bioDrafter
}

// NewService constructs a professional service.
func NewService(repo proRepo, drafter bioDrafter) *Service {
	return &Service{repo: repo, drafter: drafter}
}

// List returns the whole directory, newest profiles first.
func (s *Service) List(ctx context.Context) ([]model.ProProfile, error) {
	pros, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	return pros, nil
}

// Get returns a single profile by id.
func (s *Service) Get(ctx context.Context, id string) (model.ProProfile, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.ProProfile{}, fmt.Errorf("get professional: %w", err)
	}
	return p, nil
}

// Onboard registers a new professional at the head of the directory. New
// profiles start with a 5.0 rating, zero reviews and unverified status.
func (s *Service) Onboard(ctx context.Context, req OnboardRequest) (model.ProProfile, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return model.ProProfile{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.HourlyRate <= 0 {
		return model.ProProfile{}, fmt.Errorf("%w: hourly rate must be positive", ErrValidation)
	}

	id := "p_" + uuid.NewString()

	photos := make([]string, 0, req.PhotoCount)
	for i := 0; i < req.PhotoCount; i++ {
		photos = append(photos, fmt.Sprintf("https://picsum.photos/400/300?random=%s-%d", id, i))
	}

	p := &model.ProProfile{
		ID:          id,
		UserID:      uuid.New(),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		HourlyRate:  req.HourlyRate,
		Rating:      5.0,
		ReviewCount: 0,
		Location:    req.Location,
		ImageURL:    "https://picsum.photos/200/200?random=99",
		WorkPhotos:  photos,
		IsVerified:  false,
		Mobile:      req.Mobile,
		Address:     req.Address,
		Experience:  req.Experience,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return model.ProProfile{}, fmt.Errorf("create professional: %w", err)
	}

	zlog.Logger.Info().Str("pro_id", id).Str("category", string(req.Category)).Msg("professional onboarded")

	return *p, nil
}

// DraftBio produces a short promotional bio for the given profession. The
// drafter already degrades to a fixed fallback on failure, so this never
// errors.
func (s *Service) DraftBio(ctx context.Context, profession string, traits []string) string {
	if len(traits) == 0 {
		traits = []string{"Experienced", "Professional", "Reliable"}
	}
	return s.drafter.DraftBio(ctx, profession, traits)
}
