package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"telegram-gift-certificates/internal/domain"
	"telegram-gift-certificates/internal/domain/model"
	"telegram-gift-certificates/internal/domain/ports/repository"
)

var _ repository.FAQRepository = (*faqRepo)(nil)

type faqRepo struct {
	pool *pgxpool.Pool
}

func NewFAQRepo(pool *pgxpool.Pool) repository.FAQRepository {
	return &faqRepo{pool: pool}
}

const faqColumns = `id, position, question, answer, english_question, english_answer, available`

func scanFAQ(row pgx.Row) (*model.FAQRecord, error) {
	var rec model.FAQRecord
	err := row.Scan(
		&rec.ID, &rec.Position, &rec.Question, &rec.Answer,
		&rec.EnglishQuestion, &rec.EnglishAnswer, &rec.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return &rec, nil
}

func (r *faqRepo) ListAvailable(ctx context.Context) ([]*model.FAQRecord, error) {
	const q = `
SELECT ` + faqColumns + `
  FROM faq_entries
 WHERE available = TRUE
 ORDER BY position;
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.FAQRecord
	for rows.Next() {
		rec, err := scanFAQ(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, rec)
	}
	return entries, rows.Err()
}

func (r *faqRepo) FindByID(ctx context.Context, id int64) (*model.FAQRecord, error) {
	const q = `
SELECT ` + faqColumns + `
  FROM faq_entries
 WHERE id = $1 AND available = TRUE;
`
	return scanFAQ(r.pool.QueryRow(ctx, q, id))
}
