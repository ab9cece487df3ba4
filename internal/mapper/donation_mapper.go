package mapper

import (
	"time"

	"gorm.io/datatypes"

	"parish-be/internal/entity"
	"parish-be/internal/model"
)

type DonationMapper struct{}

func NewDonationMapper() *DonationMapper {
	return &DonationMapper{}
}

func (m *DonationMapper) ToEntity(d *model.Donation) *entity.Donation {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.Donation{
		Id:          d.Id,
		DonorName:   d.DonorName,
		Amount:      d.Amount,
		Purpose:     d.Purpose,
		Date:        time.Time(d.Date),
		IsAnonymous: d.IsAnonymous,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *DonationMapper) ToModel(d *entity.Donation) *model.Donation {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.Donation{
		Id:          d.Id,
		DonorName:   d.DonorName,
		Amount:      d.Amount,
		Purpose:     d.Purpose,
		Date:        datatypes.Date(d.Date),
		IsAnonymous: d.IsAnonymous,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *DonationMapper) ToEntities(donations []*model.Donation) []*entity.Donation {
	entities := make([]*entity.Donation, len(donations))
	for i, d := range donations {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
