package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"parish-be/internal/entity"
	"parish-be/internal/repository/unitofwork"
)

// statusTransitions is the explicit transition table for service requests.
// Every transition is currently permitted (matching the admin UI, which only
// narrows choices cosmetically), but forbidding one later is a data change
// here rather than a behavior change scattered across handlers.
var statusTransitions = map[entity.RequestStatus][]entity.RequestStatus{
	entity.RequestStatusPending:   {entity.RequestStatusPending, entity.RequestStatusApproved, entity.RequestStatusScheduled, entity.RequestStatusCompleted, entity.RequestStatusRejected},
	entity.RequestStatusApproved:  {entity.RequestStatusPending, entity.RequestStatusApproved, entity.RequestStatusScheduled, entity.RequestStatusCompleted, entity.RequestStatusRejected},
	entity.RequestStatusScheduled: {entity.RequestStatusPending, entity.RequestStatusApproved, entity.RequestStatusScheduled, entity.RequestStatusCompleted, entity.RequestStatusRejected},
	entity.RequestStatusCompleted: {entity.RequestStatusPending, entity.RequestStatusApproved, entity.RequestStatusScheduled, entity.RequestStatusCompleted, entity.RequestStatusRejected},
	entity.RequestStatusRejected:  {entity.RequestStatusPending, entity.RequestStatusApproved, entity.RequestStatusScheduled, entity.RequestStatusCompleted, entity.RequestStatusRejected},
}

func transitionAllowed(from, to entity.RequestStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// mapServiceTypeToSacrament resolves the free-text service label to a
// sacrament type by case-insensitive substring match. No match means no
// derived record.
func mapServiceTypeToSacrament(serviceType string) (entity.SacramentType, bool) {
	s := strings.ToLower(serviceType)
	switch {
	case strings.Contains(s, "baptism"):
		return entity.SacramentTypeBaptism, true
	case strings.Contains(s, "confirmation"):
		return entity.SacramentTypeConfirmation, true
	case strings.Contains(s, "marriage"):
		return entity.SacramentTypeMarriage, true
	case strings.Contains(s, "funeral"):
		return entity.SacramentTypeFuneral, true
	}
	return "", false
}

// deriveRecordDate picks the date for a derived sacrament record: the token
// before the first space of confirmedSchedule (legacy "YYYY-MM-DD HH:MM AM"
// convention), else preferredDate, else today. Candidates that do not look
// like a calendar date fall back to today.
func deriveRecordDate(confirmedSchedule, preferredDate *string, now time.Time) time.Time {
	candidate := ""
	if confirmedSchedule != nil && *confirmedSchedule != "" {
		candidate = strings.SplitN(*confirmedSchedule, " ", 2)[0]
	} else if preferredDate != nil && *preferredDate != "" {
		candidate = *preferredDate
	}

	today := now.Truncate(24 * time.Hour)
	if !strings.Contains(candidate, "-") {
		return today
	}
	parsed, err := time.Parse("2006-01-02", candidate)
	if err != nil {
		return today
	}
	return parsed
}

// deriveRecipientName extracts a display name for an issued certificate from
// the request's free-text details: a prefix of at most 50 runes. A crude
// convention inherited from the intake form, kept here so a structured
// recipient field can replace it without touching callers.
func deriveRecipientName(details string) string {
	runes := []rune(details)
	if len(runes) <= 50 {
		return details
	}
	return string(runes[:50])
}

func buildGeneratedDetails(requestId uuid.UUID, details string) string {
	return fmt.Sprintf("Generated from Request #%s. Details: %s", requestId, details)
}

// applyStatusUpdate mutates a request's status plus auxiliary fields and, on
// a fresh transition into COMPLETED for a SACRAMENT-category request,
// synthesizes the sacrament record. Both writes run against the caller's
// unit of work, so a surrounding transaction makes them atomic. Returns the
// derived record when one was created.
func applyStatusUpdate(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	request *entity.ServiceRequest,
	newStatus entity.RequestStatus,
	confirmedSchedule *string,
	adminNotes *string,
	now time.Time,
) (*entity.SacramentRecord, error) {
	previousStatus := request.Status

	request.Status = newStatus
	if confirmedSchedule != nil {
		request.ConfirmedSchedule = confirmedSchedule
	}
	if adminNotes != nil {
		request.AdminNotes = adminNotes
	}

	if err := uow.RequestRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	// One-shot guard: a repeated no-op update to COMPLETED must not create
	// a second record.
	if newStatus != entity.RequestStatusCompleted ||
		previousStatus == entity.RequestStatusCompleted ||
		request.Category != entity.RequestCategorySacrament {
		return nil, nil
	}

	sacramentType, ok := mapServiceTypeToSacrament(request.ServiceType)
	if !ok {
		// Unrecognized service label: skip silently, the admin can file
		// the record manually.
		return nil, nil
	}

	record := &entity.SacramentRecord{
		Id:        uuid.New(),
		Name:      request.RequesterName,
		Date:      deriveRecordDate(request.ConfirmedSchedule, request.PreferredDate, now),
		Type:      sacramentType,
		Officiant: "Parish Priest",
		Details:   buildGeneratedDetails(request.Id, request.Details),
		CreatedAt: now,
	}

	if err := uow.RecordRepository().Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}
