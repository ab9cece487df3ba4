package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"parish-be/internal/dto"
	"parish-be/internal/entity"
	"parish-be/internal/pkg/apperror"
	"parish-be/internal/repository/specification"
	"parish-be/internal/repository/unitofwork"
)

type ICertificateService interface {
	Issue(ctx context.Context, req *dto.IssueCertificateRequest) (*dto.IssuedCertificateResponse, error)
	List(ctx context.Context, status string) ([]*dto.IssuedCertificateResponse, error)
	UploadFile(ctx context.Context, req *dto.UploadCertificateFileRequest) (*dto.IssuedCertificateResponse, error)
	DownloadFile(ctx context.Context, id uuid.UUID) (*dto.CertificateFileResponse, error)
}

type certificateService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	maxFileBytes     int64
	reminderWindow   time.Duration
}

func NewCertificateService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	maxFileSizeMB int,
	reminderHours int,
) ICertificateService {
	return &certificateService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		maxFileBytes:     int64(maxFileSizeMB) * 1024 * 1024,
		reminderWindow:   time.Duration(reminderHours) * time.Hour,
	}
}

// Issue creates a certificate for a request and marks the request COMPLETED.
// Both writes share one transaction; if the request was a sacrament still
// short of COMPLETED, the derived record lands in the same commit.
func (s *certificateService) Issue(ctx context.Context, req *dto.IssueCertificateRequest) (*dto.IssuedCertificateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RequestRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NewNotFound("service request")
	}

	now := time.Now()
	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}
	cert := &entity.IssuedCertificate{
		Id:             uuid.New(),
		RequestId:      request.Id,
		Type:           request.ServiceType,
		RecipientName:  deriveRecipientName(request.Details),
		RequesterName:  request.RequesterName,
		DateIssued:     now,
		IssuedBy:       req.IssuedBy,
		DeliveryMethod: entity.DeliveryMethod(req.DeliveryMethod),
		Notes:          notes,
		Status:         entity.CertificateStatusPendingUpload,
		CreatedAt:      now,
	}

	previousStatus := request.Status

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.CertificateRepository().Create(ctx, cert); err != nil {
		return nil, err
	}

	if _, err := applyStatusUpdate(ctx, uow, request, entity.RequestStatusCompleted, nil, nil, now); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	publishStatusChanged(ctx, s.publisherService, request, previousStatus)

	return s.toCertificateResponse(cert, now), nil
}

func (s *certificateService) List(ctx context.Context, status string) ([]*dto.IssuedCertificateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "date_issued", Desc: true},
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	certs, err := uow.CertificateRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]*dto.IssuedCertificateResponse, 0, len(certs))
	for _, cert := range certs {
		responses = append(responses, s.toCertificateResponse(cert, now))
	}
	return responses, nil
}

func (s *certificateService) UploadFile(ctx context.Context, req *dto.UploadCertificateFileRequest) (*dto.IssuedCertificateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cert, err := uow.CertificateRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, apperror.NewNotFound("issued certificate")
	}

	if req.Size > s.maxFileBytes || int64(len(req.Data)) > s.maxFileBytes {
		return nil, apperror.NewValidation(fmt.Sprintf("file exceeds the %d MB limit", s.maxFileBytes/(1024*1024)))
	}

	mtype := mimetype.Detect(req.Data)
	if !mtype.Is("application/pdf") && !mtype.Is("image/png") && !mtype.Is("image/jpeg") {
		return nil, apperror.NewValidation("only PDF, PNG and JPEG files are accepted")
	}

	now := time.Now()
	size := int64(len(req.Data))
	mimeStr := mtype.String()

	cert.FileData = req.Data
	cert.FileName = &req.FileName
	cert.FileMimeType = &mimeStr
	cert.FileSize = &size
	cert.UploadedAt = &now
	cert.UploadedBy = &req.UploadedBy
	cert.Status = entity.CertificateStatusUploaded

	if err := uow.CertificateRepository().Update(ctx, cert); err != nil {
		return nil, err
	}

	return s.toCertificateResponse(cert, now), nil
}

func (s *certificateService) DownloadFile(ctx context.Context, id uuid.UUID) (*dto.CertificateFileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cert, err := uow.CertificateRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if cert == nil || cert.Status != entity.CertificateStatusUploaded {
		return nil, apperror.NewNotFound("certificate file")
	}

	fileName := "certificate"
	if cert.FileName != nil {
		fileName = *cert.FileName
	}
	mimeType := "application/octet-stream"
	if cert.FileMimeType != nil {
		mimeType = *cert.FileMimeType
	}

	return &dto.CertificateFileResponse{
		Data:     cert.FileData,
		FileName: fileName,
		MimeType: mimeType,
	}, nil
}

func (s *certificateService) toCertificateResponse(cert *entity.IssuedCertificate, now time.Time) *dto.IssuedCertificateResponse {
	needsReminder := cert.Status == entity.CertificateStatusPendingUpload &&
		now.Sub(cert.CreatedAt) >= s.reminderWindow

	return &dto.IssuedCertificateResponse{
		Id:                  cert.Id,
		RequestId:           cert.RequestId,
		Type:                cert.Type,
		RecipientName:       cert.RecipientName,
		RequesterName:       cert.RequesterName,
		DateIssued:          cert.DateIssued.Format("2006-01-02"),
		IssuedBy:            cert.IssuedBy,
		DeliveryMethod:      string(cert.DeliveryMethod),
		Notes:               cert.Notes,
		Status:              string(cert.Status),
		FileName:            cert.FileName,
		FileMimeType:        cert.FileMimeType,
		FileSize:            cert.FileSize,
		UploadedAt:          cert.UploadedAt,
		UploadedBy:          cert.UploadedBy,
		NeedsUploadReminder: needsReminder,
	}
}
