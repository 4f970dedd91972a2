package service

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"support-helpline-be/internal/constant"
	"support-helpline-be/internal/dto"
	"support-helpline-be/internal/pkg/logger"
	"support-helpline-be/internal/repository/memory"
	"support-helpline-be/pkg/convo"
	"support-helpline-be/pkg/kb"
)

func newTestService() (ISupportService, *memory.HistoryRepository) {
	repo := memory.NewHistoryRepository()
	// Ticket store and event publisher are optional; the turn handler must
	// work without them.
	svc := NewSupportService(repo, nil, nil, kb.Default(), logger.NewNopLogger())
	return svc, repo
}

func TestHandleTurnDirectAnswer(t *testing.T) {
	svc, _ := newTestService()

	res, err := svc.HandleTurn(context.Background(), dto.SendSupportChatRequest{
		SessionId: "s1",
		Message:   "How do I reset my password?",
	})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}

	if res.Escalate {
		t.Error("confident match must not escalate")
	}
	if res.TicketId != nil {
		t.Errorf("no ticket expected, got %q", *res.TicketId)
	}
	if !strings.Contains(res.Reply, "Reset Password") {
		t.Errorf("expected the direct answer, got %q", res.Reply)
	}
}

func TestHandleTurnEscalatesGibberish(t *testing.T) {
	svc, _ := newTestService()

	res, err := svc.HandleTurn(context.Background(), dto.SendSupportChatRequest{
		SessionId: "s1",
		Message:   "asdf qqq zzz",
	})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}

	if !res.Escalate {
		t.Fatal("gibberish must escalate")
	}
	if res.TicketId == nil {
		t.Fatal("escalated turn must carry a ticket id")
	}
	if !regexp.MustCompile(`^HLP-\d{6}$`).MatchString(*res.TicketId) {
		t.Errorf("unexpected ticket id format: %q", *res.TicketId)
	}
	if !strings.Contains(res.Reply, "not fully confident") {
		t.Errorf("expected low-confidence reply, got %q", res.Reply)
	}
}

func TestHandleTurnPersistsExchange(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	res, err := svc.HandleTurn(ctx, dto.SendSupportChatRequest{
		SessionId: "s1",
		Message:   "How do I reset my password?",
	})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}

	turns, err := repo.Range(ctx, "s1")
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("expected 2 stored turns, got %d", len(turns))
	}
	if turns[0].Role != convo.RoleUser || turns[0].Content != "How do I reset my password?" {
		t.Errorf("unexpected user turn: %+v", turns[0])
	}
	if turns[1].Role != convo.RoleAssistant || turns[1].Content != res.Reply {
		t.Errorf("assistant turn must store the reply verbatim: %+v", turns[1])
	}
}

func TestHandleTurnUsesHistoryForFollowUps(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// Seed a prior exchange about passwords.
	_ = repo.Append(ctx, "s1", convo.Turn{Role: convo.RoleUser, Content: "How do I reset my password?"})
	_ = repo.Append(ctx, "s1", convo.Turn{Role: convo.RoleAssistant, Content: "..."})

	res, err := svc.HandleTurn(ctx, dto.SendSupportChatRequest{
		SessionId: "s1",
		Message:   "how long does it take",
	})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}

	// The short follow-up inherits the password topic instead of escalating.
	if res.Escalate {
		t.Errorf("follow-up with matching history must not escalate, reply %q", res.Reply)
	}
}

func TestHandleTurnTrimsHistory(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	for i := 0; i < constant.MaxHistoryTurns; i++ {
		_ = repo.Append(ctx, "s1", convo.Turn{Role: convo.RoleUser, Content: "filler"})
	}

	if _, err := svc.HandleTurn(ctx, dto.SendSupportChatRequest{
		SessionId: "s1",
		Message:   "How do I reset my password?",
	}); err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}

	turns, _ := repo.Range(ctx, "s1")
	if len(turns) > constant.MaxHistoryTurns {
		t.Errorf("history must be trimmed to %d turns, got %d", constant.MaxHistoryTurns, len(turns))
	}
}

func TestEscalationMonotonicity(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	confident, err := svc.HandleTurn(ctx, dto.SendSupportChatRequest{SessionId: "a", Message: "How do I cancel my subscription?"})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	unsure, err := svc.HandleTurn(ctx, dto.SendSupportChatRequest{SessionId: "b", Message: "zzz qqq blorp"})
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}

	if confident.Escalate {
		t.Error("strong match escalated")
	}
	if !unsure.Escalate {
		t.Error("no match did not escalate")
	}
}

func TestGetHistory(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_ = repo.Append(ctx, "s1", convo.Turn{Role: convo.RoleUser, Content: "hello"})
	_ = repo.Append(ctx, "s1", convo.Turn{Role: convo.RoleAssistant, Content: "hi"})

	turns, err := svc.GetHistory(ctx, "s1")
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Role != convo.RoleUser || turns[1].Role != convo.RoleAssistant {
		t.Errorf("unexpected roles: %+v", turns)
	}

	empty, err := svc.GetHistory(ctx, "missing")
	if err != nil {
		t.Fatalf("GetHistory on missing session: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty history, got %d", len(empty))
	}
}
