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

type IDonationService interface {
	Create(ctx context.Context, req *dto.CreateDonationRequest) (*dto.DonationResponse, error)
	List(ctx context.Context) ([]*dto.DonationResponse, error)
	Update(ctx context.Context, req *dto.UpdateDonationRequest) (*dto.DonationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type donationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDonationService(uowFactory unitofwork.RepositoryFactory) IDonationService {
	return &donationService{uowFactory: uowFactory}
}

func (s *donationService) Create(ctx context.Context, req *dto.CreateDonationRequest) (*dto.DonationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperror.NewValidation("date must be YYYY-MM-DD")
	}

	donation := &entity.Donation{
		Id:          uuid.New(),
		DonorName:   req.DonorName,
		Amount:      req.Amount,
		Purpose:     req.Purpose,
		Date:        date,
		IsAnonymous: req.IsAnonymous,
		CreatedAt:   time.Now(),
	}

	if err := uow.DonationRepository().Create(ctx, donation); err != nil {
		return nil, err
	}
	return toDonationResponse(donation), nil
}

func (s *donationService) List(ctx context.Context) ([]*dto.DonationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	donations, err := uow.DonationRepository().FindAll(ctx,
		specification.OrderBy{Field: "date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.DonationResponse, 0, len(donations))
	for _, donation := range donations {
		responses = append(responses, toDonationResponse(donation))
	}
	return responses, nil
}

func (s *donationService) Update(ctx context.Context, req *dto.UpdateDonationRequest) (*dto.DonationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	donation, err := uow.DonationRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, apperror.NewNotFound("donation")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperror.NewValidation("date must be YYYY-MM-DD")
	}

	donation.DonorName = req.DonorName
	donation.Amount = req.Amount
	donation.Purpose = req.Purpose
	donation.Date = date
	donation.IsAnonymous = req.IsAnonymous

	if err := uow.DonationRepository().Update(ctx, donation); err != nil {
		return nil, err
	}
	return toDonationResponse(donation), nil
}

func (s *donationService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	donation, err := uow.DonationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if donation == nil {
		return apperror.NewNotFound("donation")
	}

	return uow.DonationRepository().Delete(ctx, id)
}

// Anonymous entries keep the donor's name in storage for the ledger but
// never expose it through the API.
func toDonationResponse(donation *entity.Donation) *dto.DonationResponse {
	donorName := donation.DonorName
	if donation.IsAnonymous {
		donorName = "Anonymous"
	}
	return &dto.DonationResponse{
		Id:          donation.Id,
		DonorName:   donorName,
		Amount:      donation.Amount,
		Purpose:     donation.Purpose,
		Date:        donation.Date.Format("2006-01-02"),
		IsAnonymous: donation.IsAnonymous,
	}
}
