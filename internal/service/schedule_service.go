package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"parish-be/internal/dto"
	"parish-be/internal/entity"
	"parish-be/internal/pkg/apperror"
	"parish-be/internal/repository/specification"
	"parish-be/internal/repository/unitofwork"
)

const (
	cacheKeySchedules    = "schedules:list"
	cacheKeyScheduleNote = "schedules:note"
)

type IScheduleService interface {
	Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.MassScheduleResponse, error)
	List(ctx context.Context) ([]*dto.MassScheduleResponse, error)
	Update(ctx context.Context, req *dto.UpdateScheduleRequest) (*dto.MassScheduleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetNote(ctx context.Context) (*dto.ScheduleNoteResponse, error)
	UpsertNote(ctx context.Context, req *dto.UpsertScheduleNoteRequest) (*dto.ScheduleNoteResponse, error)
}

// scheduleService caches the public reads. The schedule list and banner note
// are the highest-traffic endpoints and change rarely; writes evict.
type scheduleService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewScheduleService(uowFactory unitofwork.RepositoryFactory) IScheduleService {
	return &scheduleService{
		uowFactory: uowFactory,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *scheduleService) Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.MassScheduleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	schedule := &entity.MassSchedule{
		Id:          uuid.New(),
		Day:         req.Day,
		Time:        req.Time,
		Description: req.Description,
		Location:    req.Location,
		CreatedAt:   time.Now(),
	}

	if err := uow.ScheduleRepository().Create(ctx, schedule); err != nil {
		return nil, err
	}
	s.cache.Delete(cacheKeySchedules)

	return toScheduleResponse(schedule), nil
}

func (s *scheduleService) List(ctx context.Context) ([]*dto.MassScheduleResponse, error) {
	if cached, found := s.cache.Get(cacheKeySchedules); found {
		return cached.([]*dto.MassScheduleResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	schedules, err := uow.ScheduleRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MassScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		responses = append(responses, toScheduleResponse(schedule))
	}

	s.cache.Set(cacheKeySchedules, responses, gocache.DefaultExpiration)
	return responses, nil
}

func (s *scheduleService) Update(ctx context.Context, req *dto.UpdateScheduleRequest) (*dto.MassScheduleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	schedule, err := uow.ScheduleRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, apperror.NewNotFound("mass schedule")
	}

	schedule.Day = req.Day
	schedule.Time = req.Time
	schedule.Description = req.Description
	schedule.Location = req.Location

	if err := uow.ScheduleRepository().Update(ctx, schedule); err != nil {
		return nil, err
	}
	s.cache.Delete(cacheKeySchedules)

	return toScheduleResponse(schedule), nil
}

func (s *scheduleService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	schedule, err := uow.ScheduleRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if schedule == nil {
		return apperror.NewNotFound("mass schedule")
	}

	if err := uow.ScheduleRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(cacheKeySchedules)
	return nil
}

func (s *scheduleService) GetNote(ctx context.Context) (*dto.ScheduleNoteResponse, error) {
	if cached, found := s.cache.Get(cacheKeyScheduleNote); found {
		return cached.(*dto.ScheduleNoteResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.ScheduleRepository().FindLatestNote(ctx)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NewNotFound("schedule note")
	}

	response := toNoteResponse(note)
	s.cache.Set(cacheKeyScheduleNote, response, gocache.DefaultExpiration)
	return response, nil
}

// UpsertNote replaces the banner note. The first call creates the single
// row; later calls overwrite it in place.
func (s *scheduleService) UpsertNote(ctx context.Context, req *dto.UpsertScheduleNoteRequest) (*dto.ScheduleNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	note, err := uow.ScheduleRepository().FindLatestNote(ctx)
	if err != nil {
		return nil, err
	}

	isNew := note == nil
	if isNew {
		note = &entity.ScheduleNote{
			Id:        uuid.New(),
			CreatedAt: now,
		}
	}
	note.Title = req.Title
	note.Body = req.Body
	note.ActionLabel = req.ActionLabel
	note.ActionLink = req.ActionLink
	note.UpdatedAt = now

	if isNew {
		err = uow.ScheduleRepository().CreateNote(ctx, note)
	} else {
		err = uow.ScheduleRepository().UpdateNote(ctx, note)
	}
	if err != nil {
		return nil, err
	}

	s.cache.Delete(cacheKeyScheduleNote)
	return toNoteResponse(note), nil
}

func toScheduleResponse(schedule *entity.MassSchedule) *dto.MassScheduleResponse {
	return &dto.MassScheduleResponse{
		Id:          schedule.Id,
		Day:         schedule.Day,
		Time:        schedule.Time,
		Description: schedule.Description,
		Location:    schedule.Location,
	}
}

func toNoteResponse(note *entity.ScheduleNote) *dto.ScheduleNoteResponse {
	return &dto.ScheduleNoteResponse{
		Id:          note.Id,
		Title:       note.Title,
		Body:        note.Body,
		ActionLabel: note.ActionLabel,
		ActionLink:  note.ActionLink,
	}
}
