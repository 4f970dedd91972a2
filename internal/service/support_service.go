package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"support-helpline-be/internal/constant"
	"support-helpline-be/internal/dto"
	"support-helpline-be/internal/entity"
	"support-helpline-be/internal/pkg/logger"
	"support-helpline-be/internal/repository/contract"
	"support-helpline-be/pkg/convo"
	"support-helpline-be/pkg/kb"
	"support-helpline-be/pkg/match"

	"github.com/google/uuid"
)

type ISupportService interface {
	HandleTurn(ctx context.Context, req dto.SendSupportChatRequest) (*dto.SendSupportChatResponse, error)
	GetHistory(ctx context.Context, sessionId string) ([]dto.SupportTurnResponse, error)
}

type supportService struct {
	historyRepo      contract.IHistoryRepository
	ticketRepo       contract.ITicketRepository
	publisherService IPublisherService
	entries          []kb.FAQ
	logger           logger.ILogger
}

func NewSupportService(
	historyRepo contract.IHistoryRepository,
	ticketRepo contract.ITicketRepository,
	publisherService IPublisherService,
	entries []kb.FAQ,
	log logger.ILogger,
) ISupportService {
	return &supportService{
		historyRepo:      historyRepo,
		ticketRepo:       ticketRepo,
		publisherService: publisherService,
		entries:          entries,
		logger:           log,
	}
}

// HandleTurn runs one full chat turn: recall history, rank the knowledge
// base against the effective query, synthesize a reply, and decide on
// escalation. The session store is advisory; when it misbehaves the turn is
// answered statelessly rather than failed.
func (s *supportService) HandleTurn(ctx context.Context, req dto.SendSupportChatRequest) (*dto.SendSupportChatResponse, error) {
	history, err := s.historyRepo.Range(ctx, req.SessionId)
	if err != nil {
		s.logger.Warn("SupportService", "Failed to read session history, answering statelessly", map[string]interface{}{
			"sessionId": req.SessionId,
			"error":     err.Error(),
		})
		history = nil
	}

	effectiveQuery := convo.BuildEffectiveQuery(history, req.Message)
	candidates := match.TopK(effectiveQuery, s.entries, match.DefaultTopK)

	// The raw message goes to synthesis, not the expanded query.
	reply := convo.Synthesize(req.Message, candidates)
	if reply == "" {
		reply = convo.FallbackReply
	}

	bestScore := 0.0
	if len(candidates) > 0 {
		bestScore = candidates[0].Score
	}

	res := &dto.SendSupportChatResponse{
		Reply:    reply,
		Escalate: bestScore < constant.EscalationThreshold,
	}

	if res.Escalate {
		ticketCode := fmt.Sprintf("%s%06d", constant.TicketCodePrefix, time.Now().UnixMilli()%1000000)
		res.TicketId = &ticketCode
		s.recordEscalation(ctx, ticketCode, req, bestScore)
	}

	s.persistTurn(ctx, req.SessionId, req.Message, reply)

	return res, nil
}

func (s *supportService) GetHistory(ctx context.Context, sessionId string) ([]dto.SupportTurnResponse, error) {
	history, err := s.historyRepo.Range(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	turns := make([]dto.SupportTurnResponse, 0, len(history))
	for _, t := range history {
		turns = append(turns, dto.SupportTurnResponse{
			Role:    t.Role,
			Content: t.Content,
		})
	}
	return turns, nil
}

// recordEscalation writes the ticket row and publishes the escalation event.
// Both are auxiliary to the chat response, so failures are logged, not
// returned.
func (s *supportService) recordEscalation(ctx context.Context, ticketCode string, req dto.SendSupportChatRequest, bestScore float64) {
	ticket := &entity.EscalationTicket{
		Id:         uuid.New(),
		TicketCode: ticketCode,
		SessionKey: req.SessionId,
		Message:    req.Message,
		BestScore:  bestScore,
		CreatedAt:  time.Now(),
	}

	if s.ticketRepo != nil {
		if err := s.ticketRepo.Create(ctx, ticket); err != nil {
			s.logger.Error("SupportService", "Failed to persist escalation ticket", map[string]interface{}{
				"ticketCode": ticketCode,
				"error":      err,
			})
		}
	}

	if s.publisherService != nil {
		payload := dto.EscalationCreatedMessage{
			TicketId:   ticket.Id,
			TicketCode: ticket.TicketCode,
			SessionKey: ticket.SessionKey,
			Message:    ticket.Message,
			BestScore:  ticket.BestScore,
			CreatedAt:  ticket.CreatedAt,
		}
		payloadJson, _ := json.Marshal(payload)
		if err := s.publisherService.Publish(ctx, payloadJson); err != nil {
			s.logger.Warn("SupportService", "Failed to publish escalation event", map[string]interface{}{
				"ticketCode": ticketCode,
				"error":      err.Error(),
			})
		}
	}
}

// persistTurn appends the exchange, trims the list, and refreshes the TTL.
// The writes are not transactional: on the first failure the remaining steps
// are skipped and the turn stays un- or half-persisted.
func (s *supportService) persistTurn(ctx context.Context, sessionId, message, reply string) {
	steps := []struct {
		name string
		run  func() error
	}{
		{"append user turn", func() error {
			return s.historyRepo.Append(ctx, sessionId, convo.Turn{Role: convo.RoleUser, Content: message})
		}},
		{"append assistant turn", func() error {
			return s.historyRepo.Append(ctx, sessionId, convo.Turn{Role: convo.RoleAssistant, Content: reply})
		}},
		{"trim history", func() error {
			return s.historyRepo.TrimToLast(ctx, sessionId, constant.MaxHistoryTurns)
		}},
		{"refresh ttl", func() error {
			return s.historyRepo.Expire(ctx, sessionId, constant.SessionTTL)
		}},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			s.logger.Warn("SupportService", "Failed to persist session turn", map[string]interface{}{
				"sessionId": sessionId,
				"step":      step.name,
				"error":     err.Error(),
			})
			return
		}
	}
}
