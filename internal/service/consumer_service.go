package service

import (
	"context"
	"encoding/json"
	"log"

	"support-helpline-be/internal/dto"
	"support-helpline-be/internal/pkg/mailer"
	"support-helpline-be/pkg/events"
	pktNats "support-helpline-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
	inboxEmail     string
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	inboxEmail string,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		inboxEmail:     inboxEmail,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage fans an escalation out to the agent-facing channels. Every
// delivery is best-effort: a dead NATS or SMTP must never replay the message
// forever, so failures are logged and the message is acked regardless.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.EscalationCreatedMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal escalation message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing escalation %s for session %s", payload.TicketCode, payload.SessionKey)

	if cs.eventPublisher != nil {
		evt := events.NewEscalationCreated(payload.TicketCode, payload.SessionKey, payload.Message, payload.BestScore)
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[ERROR] Failed to publish escalation %s to NATS: %v", payload.TicketCode, err)
		}
	}

	if cs.emailService != nil && cs.inboxEmail != "" {
		if err := cs.emailService.SendEscalationAlert(cs.inboxEmail, payload.TicketCode, payload.SessionKey, payload.Message); err != nil {
			log.Printf("[ERROR] Failed to email escalation alert for %s: %v", payload.TicketCode, err)
		}
	}

	log.Printf("[SUCCESS] Escalation processed: %s", payload.TicketCode)
	msg.Ack()
}
