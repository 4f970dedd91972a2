package implementation

import (
	"context"

	"support-helpline-be/internal/entity"
	"support-helpline-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) contract.ITicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.EscalationTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}
