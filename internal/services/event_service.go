package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/fathoor/calendra/internal/models"
)

// EventStore is the persistence collaborator of the event service. Missing
// rows are reported as (nil, nil) or a zero count, never as an error.
//
// Atomicity contract: single-row operations (InsertOne, ReplaceByID,
// DeleteByID) are atomic. Multi-row operations (InsertMany,
// DeleteByGroupID) are best-effort; a failure mid-batch may leave part of
// the batch applied.
type EventStore interface {
	FindAll(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	InsertOne(ctx context.Context, event *models.Event) error
	InsertMany(ctx context.Context, events []models.Event) error
	ReplaceByID(ctx context.Context, id uuid.UUID, event *models.Event) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteByGroupID(ctx context.Context, groupID uuid.UUID) (int64, error)
}

// EventService owns the series lifecycle: materializing a recurring event
// into its bounded occurrence list, promoting a standalone event to a
// series, and deleting single occurrences or whole series.
type EventService struct {
	store EventStore
}

func NewEventService(store EventStore) *EventService {
	return &EventService{store: store}
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.store.FindAll(ctx)
}

// Get returns (nil, nil) when no event has the given id.
func (s *EventService) Get(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	return s.store.FindByID(ctx, id)
}

// Create persists the event. A recurring event is expanded into its full
// occurrence list under a fresh group id and inserted as one batch; the
// first occurrence becomes the representative event written back to the
// caller. Ids are assigned by the store.
func (s *EventService) Create(ctx context.Context, event *models.Event) error {
	event.ID = uuid.Nil

	if !event.Recurrence.IsRecurring() {
		return s.store.InsertOne(ctx, event)
	}

	groupID := uuid.New()
	occurrences := generateOccurrences(*event, groupID, 0)
	if err := s.store.InsertMany(ctx, occurrences); err != nil {
		return err
	}

	*event = occurrences[0]
	return nil
}

// Update replaces the stored event at id in full. Adding a recurrence to a
// previously standalone event promotes it to a series: the future
// occurrences are generated and inserted first, so a failed insert leaves
// the original row untouched; the replace runs last and fills the series'
// first slot.
//
// Changing the recurrence pattern of an already-recurring event replaces
// only the targeted row; siblings generated under the old pattern are left
// as they are. Two concurrent promotions of the same event are not guarded
// against: both sibling batches can land while only one replace wins.
//
// Returns false when no event has the given id; no write is performed.
func (s *EventService) Update(ctx context.Context, id uuid.UUID, event *models.Event) (bool, error) {
	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if current == nil {
		return false, nil
	}

	event.ID = id

	if !current.Recurrence.IsRecurring() && event.Recurrence.IsRecurring() {
		groupID := uuid.New()
		event.GroupID = &groupID

		siblings := generateOccurrences(*event, groupID, 1)
		if err := s.store.InsertMany(ctx, siblings); err != nil {
			return false, err
		}
	}

	// Re-checked via the matched count: the row can vanish between the
	// fetch above and the replace.
	matched, err := s.store.ReplaceByID(ctx, id, event)
	if err != nil {
		return false, err
	}
	return matched > 0, nil
}

// Delete removes exactly one event. Siblings of a series member are kept.
func (s *EventService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

// DeleteSeries removes every event sharing the group id, reporting whether
// any existed.
func (s *EventService) DeleteSeries(ctx context.Context, groupID uuid.UUID) (bool, error) {
	deleted, err := s.store.DeleteByGroupID(ctx, groupID)
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

// generateOccurrences expands base into its series under groupID, one
// occurrence per index in [startIndex, cap). Index 0 is the base event
// itself; a promotion passes startIndex 1 because that slot is filled by
// the replaced row. Start and End advance together, so every occurrence
// keeps the base event's duration. Pure function, no I/O.
func generateOccurrences(base models.Event, groupID uuid.UUID, startIndex int) []models.Event {
	limit := base.Recurrence.Cap()

	occurrences := make([]models.Event, 0, limit-startIndex)
	for i := startIndex; i < limit; i++ {
		gid := groupID
		occurrences = append(occurrences, models.Event{
			Title:        base.Title,
			Start:        base.Recurrence.Advance(base.Start, i),
			End:          base.Recurrence.Advance(base.End, i),
			Color:        base.Color,
			Location:     base.Location,
			Description:  base.Description,
			Recurrence:   base.Recurrence,
			Notification: base.Notification,
			GroupID:      &gid,
		})
	}
	return occurrences
}
