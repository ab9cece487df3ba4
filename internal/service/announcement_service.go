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

const cacheKeyPublicAnnouncements = "announcements:public"

type IAnnouncementService interface {
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	List(ctx context.Context, publicOnly bool) ([]*dto.AnnouncementResponse, error)
	Update(ctx context.Context, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type announcementService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewAnnouncementService(uowFactory unitofwork.RepositoryFactory) IAnnouncementService {
	return &announcementService{
		uowFactory: uowFactory,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *announcementService) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperror.NewValidation("date must be YYYY-MM-DD")
	}

	// Announcements default to public; the flag exists for drafts.
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	announcement := &entity.Announcement{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		Date:      date,
		IsPublic:  isPublic,
		ImageUrl:  req.ImageUrl,
		CreatedAt: time.Now(),
	}

	if err := uow.AnnouncementRepository().Create(ctx, announcement); err != nil {
		return nil, err
	}
	s.cache.Delete(cacheKeyPublicAnnouncements)

	return toAnnouncementResponse(announcement), nil
}

func (s *announcementService) List(ctx context.Context, publicOnly bool) ([]*dto.AnnouncementResponse, error) {
	if publicOnly {
		if cached, found := s.cache.Get(cacheKeyPublicAnnouncements); found {
			return cached.([]*dto.AnnouncementResponse), nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "date", Desc: true},
	}
	if publicOnly {
		specs = append(specs, specification.PublicOnly{})
	}

	announcements, err := uow.AnnouncementRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.AnnouncementResponse, 0, len(announcements))
	for _, announcement := range announcements {
		responses = append(responses, toAnnouncementResponse(announcement))
	}

	if publicOnly {
		s.cache.Set(cacheKeyPublicAnnouncements, responses, gocache.DefaultExpiration)
	}
	return responses, nil
}

func (s *announcementService) Update(ctx context.Context, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	announcement, err := uow.AnnouncementRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, apperror.NewNotFound("announcement")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperror.NewValidation("date must be YYYY-MM-DD")
	}

	announcement.Title = req.Title
	announcement.Content = req.Content
	announcement.Date = date
	if req.IsPublic != nil {
		announcement.IsPublic = *req.IsPublic
	}
	announcement.ImageUrl = req.ImageUrl

	if err := uow.AnnouncementRepository().Update(ctx, announcement); err != nil {
		return nil, err
	}
	s.cache.Delete(cacheKeyPublicAnnouncements)

	return toAnnouncementResponse(announcement), nil
}

func (s *announcementService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	announcement, err := uow.AnnouncementRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if announcement == nil {
		return apperror.NewNotFound("announcement")
	}

	if err := uow.AnnouncementRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(cacheKeyPublicAnnouncements)
	return nil
}

func toAnnouncementResponse(announcement *entity.Announcement) *dto.AnnouncementResponse {
	return &dto.AnnouncementResponse{
		Id:       announcement.Id,
		Title:    announcement.Title,
		Content:  announcement.Content,
		Date:     announcement.Date.Format("2006-01-02"),
		IsPublic: announcement.IsPublic,
		ImageUrl: announcement.ImageUrl,
	}
}
