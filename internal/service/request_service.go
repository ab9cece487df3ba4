package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"parish-be/internal/dto"
	"parish-be/internal/entity"
	"parish-be/internal/pkg/apperror"
	"parish-be/internal/repository/specification"
	"parish-be/internal/repository/unitofwork"
)

type IRequestService interface {
	Submit(ctx context.Context, req *dto.SubmitRequestRequest) (*dto.ServiceRequestResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ServiceRequestResponse, error)
	List(ctx context.Context, status, category string) ([]*dto.ServiceRequestResponse, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateRequestStatusRequest) (*dto.ServiceRequestResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type requestService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewRequestService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IRequestService {
	return &requestService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *requestService) Submit(ctx context.Context, req *dto.SubmitRequestRequest) (*dto.ServiceRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	request := &entity.ServiceRequest{
		Id:             uuid.New(),
		Category:       entity.RequestCategory(req.Category),
		ServiceType:    req.ServiceType,
		RequesterName:  req.RequesterName,
		ContactInfo:    req.ContactInfo,
		Details:        req.Details,
		PreferredDate:  req.PreferredDate,
		Status:         entity.RequestStatusPending,
		SubmissionDate: now,
		CreatedAt:      now,
	}

	if err := uow.RequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}

	return toRequestResponse(request), nil
}

func (s *requestService) Show(ctx context.Context, id uuid.UUID) (*dto.ServiceRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	request, err := uow.RequestRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NewNotFound("service request")
	}
	return toRequestResponse(request), nil
}

func (s *requestService) List(ctx context.Context, status, category string) ([]*dto.ServiceRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "submission_date", Desc: true},
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: entity.RequestCategory(category)})
	}

	requests, err := uow.RequestRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ServiceRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toRequestResponse(request))
	}
	return responses, nil
}

// UpdateStatus applies an admin status change. The write and any derived
// sacrament record commit in one transaction; the notification event is
// published only after commit.
func (s *requestService) UpdateStatus(ctx context.Context, req *dto.UpdateRequestStatusRequest) (*dto.ServiceRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RequestRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NewNotFound("service request")
	}

	newStatus := entity.RequestStatus(req.Status)
	previousStatus := request.Status
	if !transitionAllowed(previousStatus, newStatus) {
		return nil, apperror.NewValidation(fmt.Sprintf("transition %s -> %s is not allowed", previousStatus, newStatus))
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if _, err := applyStatusUpdate(ctx, uow, request, newStatus, req.ConfirmedSchedule, req.AdminNotes, time.Now()); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	publishStatusChanged(ctx, s.publisherService, request, previousStatus)

	return toRequestResponse(request), nil
}

func (s *requestService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RequestRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if request == nil {
		return apperror.NewNotFound("service request")
	}

	return uow.RequestRepository().Delete(ctx, id)
}

// publishStatusChanged emits the event best-effort. Notification is
// auxiliary, so failures are logged and swallowed.
func publishStatusChanged(ctx context.Context, publisher IPublisherService, request *entity.ServiceRequest, previousStatus entity.RequestStatus) {
	if publisher == nil {
		return
	}

	event := dto.RequestStatusChangedEvent{
		RequestId:         request.Id,
		RequesterName:     request.RequesterName,
		ContactInfo:       request.ContactInfo,
		ServiceType:       request.ServiceType,
		PreviousStatus:    string(previousStatus),
		NewStatus:         string(request.Status),
		ConfirmedSchedule: request.ConfirmedSchedule,
		AdminNotes:        request.AdminNotes,
		OccurredAt:        time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		fmt.Printf("[WARN] Failed to marshal status event for request %s: %v\n", request.Id, err)
		return
	}
	if err := publisher.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish status event for request %s: %v\n", request.Id, err)
	}
}

func toRequestResponse(request *entity.ServiceRequest) *dto.ServiceRequestResponse {
	return &dto.ServiceRequestResponse{
		Id:                request.Id,
		Category:          string(request.Category),
		ServiceType:       request.ServiceType,
		RequesterName:     request.RequesterName,
		ContactInfo:       request.ContactInfo,
		Details:           request.Details,
		PreferredDate:     request.PreferredDate,
		Status:            string(request.Status),
		ConfirmedSchedule: request.ConfirmedSchedule,
		AdminNotes:        request.AdminNotes,
		SubmissionDate:    request.SubmissionDate.Format("2006-01-02"),
	}
}
