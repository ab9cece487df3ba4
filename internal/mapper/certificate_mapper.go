package mapper

import (
	"time"

	"gorm.io/datatypes"

	"parish-be/internal/entity"
	"parish-be/internal/model"
)

type CertificateMapper struct{}

func NewCertificateMapper() *CertificateMapper {
	return &CertificateMapper{}
}

func (m *CertificateMapper) ToEntity(c *model.IssuedCertificate) *entity.IssuedCertificate {
	if c == nil {
		return nil
	}

	return &entity.IssuedCertificate{
		Id:             c.Id,
		RequestId:      c.RequestId,
		Type:           c.Type,
		RecipientName:  c.RecipientName,
		RequesterName:  c.RequesterName,
		DateIssued:     time.Time(c.DateIssued),
		IssuedBy:       c.IssuedBy,
		DeliveryMethod: entity.DeliveryMethod(c.DeliveryMethod),
		Notes:          c.Notes,
		Status:         entity.CertificateStatus(c.Status),
		FileData:       c.FileData,
		FileName:       c.FileName,
		FileMimeType:   c.FileMimeType,
		FileSize:       c.FileSize,
		UploadedAt:     c.UploadedAt,
		UploadedBy:     c.UploadedBy,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *CertificateMapper) ToModel(c *entity.IssuedCertificate) *model.IssuedCertificate {
	if c == nil {
		return nil
	}

	return &model.IssuedCertificate{
		Id:             c.Id,
		RequestId:      c.RequestId,
		Type:           c.Type,
		RecipientName:  c.RecipientName,
		RequesterName:  c.RequesterName,
		DateIssued:     datatypes.Date(c.DateIssued),
		IssuedBy:       c.IssuedBy,
		DeliveryMethod: string(c.DeliveryMethod),
		Notes:          c.Notes,
		Status:         string(c.Status),
		FileData:       c.FileData,
		FileName:       c.FileName,
		FileMimeType:   c.FileMimeType,
		FileSize:       c.FileSize,
		UploadedAt:     c.UploadedAt,
		UploadedBy:     c.UploadedBy,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *CertificateMapper) ToEntities(certs []*model.IssuedCertificate) []*entity.IssuedCertificate {
	entities := make([]*entity.IssuedCertificate, len(certs))
	for i, c := range certs {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
