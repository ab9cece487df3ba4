package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"parish-be/internal/dto"
	"parish-be/internal/pkg/mailer"
)

type INotifierService interface {
	Consume(ctx context.Context) error
}

// notifierService listens for status change events and emails requesters
// whose contact info looks like an email address. Phone numbers are skipped;
// those requesters are called by the office.
type notifierService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
}

func NewNotifierService(pubSub *gochannel.GoChannel, topicName string, emailService mailer.IEmailService) INotifierService {
	return &notifierService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
	}
}

func (s *notifierService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *notifierService) processMessage(msg *message.Message) {
	var event dto.RequestStatusChangedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		log.Printf("[ERROR] Failed to unmarshal status event: %v", err)
		msg.Ack()
		return
	}

	if !strings.Contains(event.ContactInfo, "@") {
		msg.Ack()
		return
	}

	if err := s.emailService.SendStatusUpdate(
		event.ContactInfo,
		event.RequesterName,
		event.ServiceType,
		event.NewStatus,
		event.ConfirmedSchedule,
	); err != nil {
		log.Printf("[ERROR] Failed to email %s for request %s: %v", event.ContactInfo, event.RequestId, err)
	}

	msg.Ack()
}
