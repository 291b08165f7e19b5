package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studivo/studivo-backend/internal/logger"
	"github.com/studivo/studivo-backend/internal/planner"
	"github.com/studivo/studivo-backend/internal/repos"
	"github.com/studivo/studivo-backend/internal/types"
)

type TimeSlotService interface {
	Create(ctx context.Context, slot *types.TimeSlot) (*types.TimeSlot, error)
	List(ctx context.Context) ([]*types.TimeSlot, error)
	Update(ctx context.Context, slot *types.TimeSlot) (*types.TimeSlot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type timeSlotService struct {
	log   *logger.Logger
	slots repos.TimeSlotRepo
}

func NewTimeSlotService(log *logger.Logger, slots repos.TimeSlotRepo) TimeSlotService {
	return &timeSlotService{
		log:   log.With("service", "TimeSlotService"),
		slots: slots,
	}
}

func validateSlot(slot *types.TimeSlot) error {
	if !types.IsWeekday(slot.Day) {
		return fmt.Errorf("unknown weekday %q", slot.Day)
	}
	if !planner.IsValidTime(slot.StartTime) {
		return fmt.Errorf("invalid start time %q", slot.StartTime)
	}
	if !planner.IsValidTime(slot.EndTime) {
		return fmt.Errorf("invalid end time %q", slot.EndTime)
	}
	// Valid HH:MM strings compare correctly as strings.
	if slot.StartTime >= slot.EndTime {
		return fmt.Errorf("slot must end after it starts (%s-%s)", slot.StartTime, slot.EndTime)
	}
	return nil
}

func (s *timeSlotService) Create(ctx context.Context, slot *types.TimeSlot) (*types.TimeSlot, error) {
	if err := validateSlot(slot); err != nil {
		return nil, err
	}
	if slot.ID == uuid.Nil {
		slot.ID = uuid.New()
	}
	created, err := s.slots.Create(ctx, nil, []*types.TimeSlot{slot})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (s *timeSlotService) List(ctx context.Context) ([]*types.TimeSlot, error) {
	return s.slots.GetAll(ctx, nil)
}

func (s *timeSlotService) Update(ctx context.Context, slot *types.TimeSlot) (*types.TimeSlot, error) {
	if err := validateSlot(slot); err != nil {
		return nil, err
	}
	if _, err := s.slots.GetByID(ctx, nil, slot.ID); err != nil {
		return nil, err
	}
	return s.slots.Update(ctx, nil, slot)
}

func (s *timeSlotService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.slots.Delete(ctx, nil, id)
}
