package postgres

import (
	"context"

	"edudesk/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepo struct{ db *pgxpool.Pool }

func NewCommentRepo(db *pgxpool.Pool) *CommentRepo { return &CommentRepo{db: db} }

func (r *CommentRepo) Create(ctx context.Context, c *models.TicketComment) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO ticket_comments (ticket_id, user_id, role, message, created_at)
		VALUES ($1,$2,$3,$4,now())
		RETURNING id, created_at
	`, c.TicketID, c.UserID, c.Role, c.Message).Scan(&c.ID, &c.CreatedAt)
}

// ListByTicket returns the thread oldest first, with the commenting user's
// name/email joined for display. The stored role snapshot is returned as-is.
func (r *CommentRepo) ListByTicket(ctx context.Context, ticketID string) ([]models.TicketComment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.ticket_id, c.user_id, c.role, c.message, c.created_at,
		       COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM ticket_comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.ticket_id = $1
		ORDER BY c.created_at ASC
	`, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TicketComment
	for rows.Next() {
		var c models.TicketComment
		if err := rows.Scan(
			&c.ID, &c.TicketID, &c.UserID, &c.Role, &c.Message, &c.CreatedAt,
			&c.UserName, &c.UserEmail,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
