package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"parish-be/internal/dto"
	"parish-be/internal/entity"
	"parish-be/internal/pkg/apperror"
	"parish-be/internal/repository/specification"
	"parish-be/internal/repository/unitofwork"
)

type IRecordService interface {
	Create(ctx context.Context, req *dto.CreateRecordRequest) (*dto.SacramentRecordResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.SacramentRecordResponse, error)
	List(ctx context.Context, recordType string, includeArchived bool) ([]*dto.SacramentRecordResponse, error)
	Update(ctx context.Context, req *dto.UpdateRecordRequest) (*dto.SacramentRecordResponse, error)
	Archive(ctx context.Context, req *dto.ArchiveRecordRequest) (*dto.SacramentRecordResponse, error)
	Unarchive(ctx context.Context, id uuid.UUID) (*dto.SacramentRecordResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type recordService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRecordService(uowFactory unitofwork.RepositoryFactory) IRecordService {
	return &recordService{uowFactory: uowFactory}
}

func (s *recordService) Create(ctx context.Context, req *dto.CreateRecordRequest) (*dto.SacramentRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperror.NewValidation("date must be YYYY-MM-DD")
	}

	record := &entity.SacramentRecord{
		Id:        uuid.New(),
		Name:      req.Name,
		Date:      date,
		Type:      entity.SacramentType(req.Type),
		Officiant: req.Officiant,
		Details:   req.Details,
		CreatedAt: time.Now(),
	}

	if err := uow.RecordRepository().Create(ctx, record); err != nil {
		return nil, err
	}
	return toRecordResponse(record), nil
}

func (s *recordService) Show(ctx context.Context, id uuid.UUID) (*dto.SacramentRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record, err := uow.RecordRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFound("sacrament record")
	}
	return toRecordResponse(record), nil
}

func (s *recordService) List(ctx context.Context, recordType string, includeArchived bool) ([]*dto.SacramentRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "date", Desc: true},
	}
	if recordType != "" {
		specs = append(specs, specification.Filter("type", recordType))
	}
	if !includeArchived {
		specs = append(specs, specification.NotArchived{})
	}

	records, err := uow.RecordRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SacramentRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toRecordResponse(record))
	}
	return responses, nil
}

func (s *recordService) Update(ctx context.Context, req *dto.UpdateRecordRequest) (*dto.SacramentRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.RecordRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFound("sacrament record")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperror.NewValidation("date must be YYYY-MM-DD")
	}

	record.Name = req.Name
	record.Date = date
	record.Type = entity.SacramentType(req.Type)
	record.Officiant = req.Officiant
	record.Details = req.Details

	if err := uow.RecordRepository().Update(ctx, record); err != nil {
		return nil, err
	}
	return toRecordResponse(record), nil
}

// Archive hides a record from default listings without destroying it.
// Archiving an already archived record just refreshes the metadata.
func (s *recordService) Archive(ctx context.Context, req *dto.ArchiveRecordRequest) (*dto.SacramentRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.RecordRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFound("sacrament record")
	}

	now := time.Now()
	record.IsArchived = true
	record.ArchivedAt = &now
	record.ArchivedBy = &req.ArchivedBy
	if req.Reason != "" {
		record.ArchiveReason = &req.Reason
	}

	if err := uow.RecordRepository().Update(ctx, record); err != nil {
		return nil, err
	}
	return toRecordResponse(record), nil
}

func (s *recordService) Unarchive(ctx context.Context, id uuid.UUID) (*dto.SacramentRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.RecordRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFound("sacrament record")
	}

	record.IsArchived = false
	record.ArchivedAt = nil
	record.ArchivedBy = nil
	record.ArchiveReason = nil

	if err := uow.RecordRepository().Update(ctx, record); err != nil {
		return nil, err
	}
	return toRecordResponse(record), nil
}

func (s *recordService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.RecordRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if record == nil {
		return apperror.NewNotFound("sacrament record")
	}

	return uow.RecordRepository().Delete(ctx, id)
}

func toRecordResponse(record *entity.SacramentRecord) *dto.SacramentRecordResponse {
	return &dto.SacramentRecordResponse{
		Id:            record.Id,
		Name:          record.Name,
		Date:          record.Date.Format("2006-01-02"),
		Type:          string(record.Type),
		Officiant:     record.Officiant,
		Details:       record.Details,
		IsArchived:    record.IsArchived,
		ArchivedAt:    record.ArchivedAt,
		ArchivedBy:    record.ArchivedBy,
		ArchiveReason: record.ArchiveReason,
	}
}
