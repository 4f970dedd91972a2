package contract

import (
	"context"

	"support-helpline-be/internal/entity"
)

type ITicketRepository interface {
	Create(ctx context.Context, ticket *entity.EscalationTicket) error
}
