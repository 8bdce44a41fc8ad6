package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/context"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	domainerrors "github.com/alfredtoussaint-cpu/dealshaq/internal/domain/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/repository"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/geo"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"
)

// rosterService implements the RosterUsecase interface. A keyed mutex
// serializes all roster work per consumer; recomputations and manual
// edits for the same consumer never interleave.
type rosterService struct {
	rosterRepo   repository.RosterRepository
	consumerRepo repository.ConsumerRepository
	retailerRepo repository.RetailerRepository
	locks        *keyedMutex
	logger       *slog.Logger
}

// RosterServiceParams holds dependencies for rosterService, injected by Fx.
type RosterServiceParams struct {
	fx.In

	RosterRepo   repository.RosterRepository
	ConsumerRepo repository.ConsumerRepository
	RetailerRepo repository.RetailerRepository
	Logger       *slog.Logger
}

// NewRosterService is the constructor for rosterService.
func NewRosterService(params RosterServiceParams) usecase.RosterUsecase {
	return &rosterService{
		rosterRepo:   params.RosterRepo,
		consumerRepo: params.ConsumerRepo,
		retailerRepo: params.RetailerRepo,
		locks:        newKeyedMutex(),
		logger:       params.Logger,
	}
}

func (srv *rosterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRoster returns the visible roster joined with retailer profiles,
// nearest first.
func (srv *rosterService) ListRoster(ctx context.Context, consumerID uuid.UUID) ([]*usecase.RosterRetailer, error) {
	entries, err := srv.rosterRepo.FindEntriesByConsumer(ctx, consumerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roster entries")
	}

	result := make([]*usecase.RosterRetailer, 0, len(entries))
	for _, entry := range entries {
		if !entry.Visible() {
			continue
		}

		retailer, err := srv.retailerRepo.FindRetailerByID(ctx, entry.RetailerID)
		if err != nil {
			if errors.Is(err, repository.ErrRetailerNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load roster retailer")
		}

		result = append(result, &usecase.RosterRetailer{
			Retailer:      retailer,
			DistanceMiles: geo.RoundMiles(entry.DistanceMiles),
			InsideRadius:  entry.InsideRadius,
			ManuallyAdded: entry.ManuallyAdded,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].DistanceMiles < result[j].DistanceMiles
	})

	return result, nil
}

// AddRetailer pins a retailer to the roster regardless of distance and
// clears any sticky removal.
func (srv *rosterService) AddRetailer(ctx context.Context, consumerID, retailerID uuid.UUID) error {
	unlock := srv.locks.Lock(consumerID)
	defer unlock()

	retailer, err := srv.retailerRepo.FindRetailerByID(ctx, retailerID)
	if err != nil {
		if errors.Is(err, repository.ErrRetailerNotFound) {
			return domainerrors.ErrRetailerNotFound
		}

		return errors.Wrap(err, "failed to load retailer for roster add")
	}
	if !retailer.Active || retailer.Coordinates == nil {
		// Only locatable, active retailers can be pinned.
		return domainerrors.ErrRetailerNotFound
	}

	entry, err := srv.rosterRepo.FindEntry(ctx, consumerID, retailerID)
	switch {
	case err == nil:
		entry.ManuallyAdded = true
		entry.ManuallyRemoved = false
		entry.UpdatedAt = time.Now()
		if err := srv.rosterRepo.UpdateEntry(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to update roster entry")
		}
	case errors.Is(err, repository.ErrRosterEntryNotFound):
		entry = srv.newEntry(ctx, consumerID, retailer)
		entry.ManuallyAdded = true
		if err := srv.rosterRepo.CreateEntry(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to create roster entry")
		}
	default:
		return errors.Wrap(err, "failed to look up roster entry")
	}

	srv.log(ctx).Debug("Retailer pinned to roster",
		slog.String("consumer_id", consumerID.String()),
		slog.String("retailer_id", retailerID.String()))

	return nil
}

// RemoveRetailer hides a retailer from the roster. The removal sticks
// across recomputations.
func (srv *rosterService) RemoveRetailer(ctx context.Context, consumerID, retailerID uuid.UUID) error {
	unlock := srv.locks.Lock(consumerID)
	defer unlock()

	entry, err := srv.rosterRepo.FindEntry(ctx, consumerID, retailerID)
	if err != nil {
		if errors.Is(err, repository.ErrRosterEntryNotFound) {
			return domainerrors.ErrRosterEntryNotFound
		}

		return errors.Wrap(err, "failed to look up roster entry")
	}

	if !entry.InsideRadius && entry.ManuallyAdded {
		// A pinned out-of-range retailer leaves nothing to suppress once
		// unpinned, so the entry goes away entirely.
		if err := srv.rosterRepo.DeleteEntry(ctx, consumerID, retailerID); err != nil {
			return errors.Wrap(err, "failed to delete roster entry")
		}

		return nil
	}

	entry.ManuallyAdded = false
	entry.ManuallyRemoved = true
	entry.UpdatedAt = time.Now()
	if err := srv.rosterRepo.UpdateEntry(ctx, entry); err != nil {
		return errors.Wrap(err, "failed to update roster entry")
	}

	return nil
}

// Recompute rebuilds the distance facts of the roster from the
// consumer's current location and radius. Manual flags survive; entries
// that fall out of range with no manual history are pruned. Running it
// twice in a row changes nothing. The returned count is the number of
// visible entries after the rebuild.
func (srv *rosterService) Recompute(ctx context.Context, consumerID uuid.UUID) (int, error) {
	unlock := srv.locks.Lock(consumerID)
	defer unlock()

	consumer, err := srv.consumerRepo.FindConsumerByID(ctx, consumerID)
	if err != nil {
		if errors.Is(err, repository.ErrConsumerNotFound) {
			return 0, domainerrors.ErrConsumerNotFound
		}

		return 0, errors.Wrap(err, "failed to load consumer for recompute")
	}

	entries, err := srv.rosterRepo.FindEntriesByConsumer(ctx, consumerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load roster entries")
	}

	existing := make(map[uuid.UUID]*entity.RosterEntry, len(entries))
	for _, entry := range entries {
		existing[entry.RetailerID] = entry
	}

	visible := 0

	if !consumer.DeliveryLocation.Geocoded() {
		// No resolved location: nothing is in range, manual history survives.
		for _, entry := range entries {
			entry.InsideRadius = false
			if err := srv.applyRecomputed(ctx, entry); err != nil {
				return 0, err
			}
			if entry.Visible() {
				visible++
			}
		}

		return visible, nil
	}

	center := *consumer.DeliveryLocation.Coordinates
	retailers, err := srv.retailerRepo.FindLocatableRetailers(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load retailers for recompute")
	}
	byID := make(map[uuid.UUID]*entity.Retailer, len(retailers))
	for _, retailer := range retailers {
		byID[retailer.ID] = retailer
	}

	// New in-range retailers get fresh entries.
	for _, candidate := range geo.Within(center, consumer.RadiusMiles, retailers) {
		if _, ok := existing[candidate.Retailer.ID]; ok {
			continue
		}
		entry := &entity.RosterEntry{
			ID:            uuid.New(),
			ConsumerID:    consumerID,
			RetailerID:    candidate.Retailer.ID,
			DistanceMiles: candidate.DistanceMiles,
			InsideRadius:  true,
			UpdatedAt:     time.Now(),
		}
		if err := srv.rosterRepo.CreateEntry(ctx, entry); err != nil {
			return 0, errors.Wrap(err, "failed to create roster entry")
		}
		visible++
	}

	// Existing entries get refreshed distance facts. A retailer that
	// vanished from the locatable set is out of range by definition.
	for retailerID, entry := range existing {
		if retailer, ok := byID[retailerID]; ok {
			entry.DistanceMiles = geo.DistanceMiles(center, *retailer.Coordinates)
			entry.InsideRadius = entry.DistanceMiles <= consumer.RadiusMiles
		} else {
			entry.InsideRadius = false
		}
		if err := srv.applyRecomputed(ctx, entry); err != nil {
			return 0, err
		}
		if entry.Visible() {
			visible++
		}
	}

	srv.log(ctx).Debug("Roster recomputed",
		slog.String("consumer_id", consumerID.String()),
		slog.Int("visible", visible))

	return visible, nil
}

// applyRecomputed persists a recomputed entry, pruning it when it no
// longer carries information.
func (srv *rosterService) applyRecomputed(ctx context.Context, entry *entity.RosterEntry) error {
	if entry.Prunable() {
		if err := srv.rosterRepo.DeleteEntry(ctx, entry.ConsumerID, entry.RetailerID); err != nil {
			return errors.Wrap(err, "failed to prune roster entry")
		}

		return nil
	}

	entry.UpdatedAt = time.Now()
	if err := srv.rosterRepo.UpdateEntry(ctx, entry); err != nil {
		return errors.Wrap(err, "failed to update roster entry")
	}

	return nil
}

// newEntry builds a fresh entry for a manual add, computing the distance
// when the consumer has a geocoded location.
func (srv *rosterService) newEntry(ctx context.Context, consumerID uuid.UUID, retailer *entity.Retailer) *entity.RosterEntry {
	entry := &entity.RosterEntry{
		ID:         uuid.New(),
		ConsumerID: consumerID,
		RetailerID: retailer.ID,
		UpdatedAt:  time.Now(),
	}

	consumer, err := srv.consumerRepo.FindConsumerByID(ctx, consumerID)
	if err != nil || !consumer.DeliveryLocation.Geocoded() || retailer.Coordinates == nil {
		return entry
	}

	entry.DistanceMiles = geo.DistanceMiles(*consumer.DeliveryLocation.Coordinates, *retailer.Coordinates)
	entry.InsideRadius = entry.DistanceMiles <= consumer.RadiusMiles

	return entry
}
