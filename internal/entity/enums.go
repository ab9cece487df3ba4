package entity

type RequestCategory string

const (
	RequestCategorySacrament   RequestCategory = "SACRAMENT"
	RequestCategoryCertificate RequestCategory = "CERTIFICATE"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusApproved  RequestStatus = "APPROVED"
	RequestStatusScheduled RequestStatus = "SCHEDULED"
	RequestStatusCompleted RequestStatus = "COMPLETED"
	RequestStatusRejected  RequestStatus = "REJECTED"
)

type SacramentType string

const (
	SacramentTypeBaptism      SacramentType = "BAPTISM"
	SacramentTypeConfirmation SacramentType = "CONFIRMATION"
	SacramentTypeMarriage     SacramentType = "MARRIAGE"
	SacramentTypeFuneral      SacramentType = "FUNERAL"
)

type DeliveryMethod string

const (
	DeliveryMethodPickup  DeliveryMethod = "PICKUP"
	DeliveryMethodEmail   DeliveryMethod = "EMAIL"
	DeliveryMethodCourier DeliveryMethod = "COURIER"
)

type CertificateStatus string

const (
	CertificateStatusPendingUpload CertificateStatus = "PENDING_UPLOAD"
	CertificateStatusUploaded      CertificateStatus = "UPLOADED"
)

type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
)
