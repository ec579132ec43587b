package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/campaignlab/campaign-api/internal/core/domain"
)

// CampaignRepository persists campaigns. Every operation is a single
// statement; conflicting writes are serialised by the database.
type CampaignRepository struct {
	db *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	query := `SELECT id, name, description, start_date, end_date, budget, status
	          FROM campaigns ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		var c domain.Campaign
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.StartDate, &c.EndDate, &c.Budget, &c.Status); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	return campaigns, nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	query := `SELECT id, name, description, start_date, end_date, budget, status
	          FROM campaigns WHERE id = $1`

	c := &domain.Campaign{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.StartDate, &c.EndDate, &c.Budget, &c.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("find campaign: %w", err)
	}

	return c, nil
}

func (r *CampaignRepository) Insert(ctx context.Context, c *domain.Campaign) error {
	query := `INSERT INTO campaigns (name, description, start_date, end_date, budget, status)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		c.Name, c.Description, c.StartDate, c.EndDate, c.Budget, c.Status).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	query := `UPDATE campaigns
	          SET name = $1, description = $2, start_date = $3, end_date = $4, budget = $5, status = $6
	          WHERE id = $7`

	res, err := r.db.ExecContext(ctx, query,
		c.Name, c.Description, c.StartDate, c.EndDate, c.Budget, c.Status, c.ID)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	if affected == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if affected == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}
