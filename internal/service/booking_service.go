package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Eursukkul/aquaagro-admin/internal/booking"
	"github.com/Eursukkul/aquaagro-admin/internal/filter"
	"github.com/Eursukkul/aquaagro-admin/internal/models"
	"github.com/Eursukkul/aquaagro-admin/internal/pricing"
	"github.com/Eursukkul/aquaagro-admin/internal/repository"
	"github.com/Eursukkul/aquaagro-admin/internal/stats"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrDraftNotFound   = errors.New("draft not found")
	ErrIncompleteDraft = errors.New("booking needs a ticket type, a visit date from today on and at least one adult")
)

const RoutingBookingConfirmed = "booking.confirmed"

// DefaultPersistWindow bounds the retries of saving a confirmed booking.
const DefaultPersistWindow = 30 * time.Second

// Publisher announces confirmed bookings.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type Quote struct {
	TierID   string        `json:"tier"`
	Adults   int           `json:"adults"`
	Children int           `json:"children"`
	Rates    *models.Rates `json:"rates,omitempty"`
	Total    int           `json:"total"`
}

type BookingService interface {
	Tiers() []models.Tier
	Quote(tier string, adults, children int) Quote
	SaveDraft(ctx context.Context, id string, draft models.BookingDraft) error
	GetDraft(ctx context.Context, id string) (*models.BookingDraft, error)
	Submit(ctx context.Context, draft models.BookingDraft) (*models.Booking, error)
	SubmitDraft(ctx context.Context, draftID string) (*models.Booking, error)
	Status(ctx context.Context, ref string) (*models.Booking, error)
	Close(ctx context.Context, ref string) (*models.Booking, error)
	ListBookings(ctx context.Context, c filter.Criteria) ([]models.Booking, error)
	Shutdown()
}

type BookingDeps struct {
	Rates     pricing.RateTable
	Repo      repository.BookingRepository
	Drafts    repository.DraftStore
	Confirmer *booking.Confirmer
	Clock     booking.Clock
	Publisher Publisher
	Logger    *zap.Logger
	// PersistWindow bounds the save retries once a confirmation fires.
	PersistWindow time.Duration
}

// session is a booking whose confirmation dialog is still open.
type session struct {
	booking models.Booking
	cf      *booking.Confirmation
	failed  bool
}

type bookingService struct {
	rates     pricing.RateTable
	repo      repository.BookingRepository
	drafts    repository.DraftStore
	confirmer *booking.Confirmer
	clock     booking.Clock
	publisher Publisher
	logger    *zap.Logger
	window    time.Duration

	root   context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	sessions map[string]*session
}

func NewBookingService(d BookingDeps) BookingService {
	if d.Clock == nil {
		d.Clock = booking.RealClock{}
	}
	if d.Confirmer == nil {
		d.Confirmer = booking.NewConfirmer(booking.DefaultDelay, d.Clock)
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.PersistWindow <= 0 {
		d.PersistWindow = DefaultPersistWindow
	}
	root, cancel := context.WithCancel(context.Background())

	return &bookingService{
		rates:     d.Rates,
		repo:      d.Repo,
		drafts:    d.Drafts,
		confirmer: d.Confirmer,
		clock:     d.Clock,
		publisher: d.Publisher,
		logger:    d.Logger,
		window:    d.PersistWindow,
		root:      root,
		cancel:    cancel,
		sessions:  make(map[string]*session),
	}
}

func (s *bookingService) Tiers() []models.Tier {
	return s.rates.Tiers()
}

func (s *bookingService) Quote(tier string, adults, children int) Quote {
	q := Quote{TierID: tier, Adults: adults, Children: children, Total: s.rates.Price(tier, adults, children)}
	if r, ok := s.rates[tier]; ok {
		q.Rates = &r
	}
	return q
}

func (s *bookingService) SaveDraft(ctx context.Context, id string, draft models.BookingDraft) error {
	if err := s.drafts.Save(ctx, id, draft); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *bookingService) GetDraft(ctx context.Context, id string) (*models.BookingDraft, error) {
	draft, err := s.drafts.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	return draft, nil
}

func (s *bookingService) Submit(ctx context.Context, draft models.BookingDraft) (*models.Booking, error) {
	total := s.rates.Price(draft.TierID, draft.Adults, draft.Children)
	if !s.rates.Has(draft.TierID) || draft.Adults < 1 || draft.Children < 0 || total == 0 ||
		draft.VisitDate.IsZero() || beforeToday(draft.VisitDate, s.clock.Now()) {
		return nil, ErrIncompleteDraft
	}

	b := models.Booking{
		Reference: uuid.NewString(),
		TierID:    draft.TierID,
		VisitDate: draft.VisitDate,
		Adults:    draft.Adults,
		Children:  draft.Children,
		Total:     total,
		Status:    models.StatusProcessing,
		CreatedAt: s.clock.Now(),
	}

	cf := s.confirmer.Submit(s.root)

	s.mu.Lock()
	s.sessions[b.Reference] = &session{booking: b, cf: cf}
	s.mu.Unlock()

	s.wg.Add(1)
	go s.await(b.Reference, cf)

	s.logger.Info("booking submitted",
		zap.String("reference", b.Reference),
		zap.String("tier", b.TierID),
		zap.Int("total", b.Total))
	return &b, nil
}

func (s *bookingService) SubmitDraft(ctx context.Context, draftID string) (*models.Booking, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	b, err := s.Submit(ctx, *draft)
	if err != nil {
		return nil, err
	}

	if err := s.drafts.Delete(ctx, draftID); err != nil {
		s.logger.Warn("failed to delete submitted draft", zap.String("draft_id", draftID), zap.Error(err))
	}
	return b, nil
}

// await persists and announces the booking once its confirmation fires.
// The session only leaves processing after the save succeeds.
func (s *bookingService) await(ref string, cf *booking.Confirmation) {
	defer s.wg.Done()

	res, ok := <-cf.Done()
	if !ok {
		return
	}

	s.mu.Lock()
	sess, found := s.sessions[ref]
	if !found {
		s.mu.Unlock()
		return
	}
	b := sess.booking
	s.mu.Unlock()

	confirmedAt := res.ConfirmedAt
	b.Status = models.StatusConfirmed
	b.ConfirmedAt = &confirmedAt

	err := s.persist(&b)

	s.mu.Lock()
	if err != nil {
		if sess, found := s.sessions[ref]; found {
			sess.booking.Status = models.StatusFailed
			sess.failed = true
		}
	} else {
		delete(s.sessions, ref)
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("failed to persist confirmed booking", zap.String("reference", ref), zap.Error(err))
		return
	}
	s.logger.Info("booking confirmed", zap.String("reference", ref))

	if s.publisher != nil {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(s.root), 10*time.Second)
		defer cancel()

		ev := stats.BookingConfirmed{
			Reference:   b.Reference,
			TierID:      b.TierID,
			Adults:      b.Adults,
			Children:    b.Children,
			Total:       b.Total,
			ConfirmedAt: confirmedAt,
		}
		if err := s.publisher.Publish(ctx, RoutingBookingConfirmed, ev); err != nil {
			s.logger.Warn("failed to publish booking event", zap.String("reference", ref), zap.Error(err))
		}
	}
}

// persist saves b, retrying until the persist window runs out or the service shuts down.
func (s *bookingService) persist(b *models.Booking) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxInterval = 5 * time.Second
	policy.MaxElapsedTime = s.window

	return backoff.RetryNotify(
		func() error {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(s.root), 10*time.Second)
			defer cancel()
			rec := *b
			return s.repo.Create(ctx, &rec)
		},
		backoff.WithContext(policy, s.root),
		func(err error, next time.Duration) {
			s.logger.Warn("saving booking failed, retrying",
				zap.String("reference", b.Reference),
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
}

// Status reports the live session if there is one, else the saved booking.
func (s *bookingService) Status(ctx context.Context, ref string) (*models.Booking, error) {
	s.mu.Lock()
	sess, ok := s.sessions[ref]
	var b models.Booking
	if ok {
		b = sess.booking
	}
	s.mu.Unlock()

	if !ok {
		return s.findPersisted(ctx, ref)
	}

	// the save may have landed between reading the session and now
	if b.Status == models.StatusProcessing {
		saved, err := s.repo.FindByReference(ctx, ref)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("find booking: %w", err)
		}
	}
	return &b, nil
}

// Close dismisses the confirmation dialog. A booking still processing is
// dropped and a failed one is discarded. Once confirmation has fired the
// booking is kept and its current state returned.
func (s *bookingService) Close(ctx context.Context, ref string) (*models.Booking, error) {
	s.mu.Lock()
	sess, ok := s.sessions[ref]
	s.mu.Unlock()

	if !ok {
		return s.findPersisted(ctx, ref)
	}

	prev := sess.cf.Close()

	s.mu.Lock()
	b := sess.booking
	failed := sess.failed
	if failed || prev != models.StatusConfirmed {
		delete(s.sessions, ref)
	}
	s.mu.Unlock()

	switch {
	case failed:
		return &b, nil
	case prev == models.StatusConfirmed:
		return s.Status(ctx, ref)
	}

	b.Status = models.StatusCancelled
	s.logger.Info("booking dialog closed before confirmation", zap.String("reference", ref))
	return &b, nil
}

func (s *bookingService) findPersisted(ctx context.Context, ref string) (*models.Booking, error) {
	b, err := s.repo.FindByReference(ctx, ref)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return b, nil
}

func (s *bookingService) ListBookings(ctx context.Context, c filter.Criteria) ([]models.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return filter.Apply(bookings, c), nil
}

// Shutdown abandons pending confirmations and waits for in-flight ones to finish.
func (s *bookingService) Shutdown() {
	s.cancel()
	s.wg.Wait()
}

// beforeToday compares calendar dates. day is a date-only value and is not
// shifted into now's zone.
func beforeToday(day, now time.Time) bool {
	y1, m1, d1 := day.Date()
	y2, m2, d2 := now.Date()
	return time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC).Before(time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC))
}
