package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"fixuBack/internal/fsm"
	"fixuBack/internal/models"
)

type ItemRepository struct {
	DB *sql.DB
}

func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if item.Images == nil {
		item.Images = []string{}
	}
	images, err := json.Marshal(item.Images)
	if err != nil {
		return models.Item{}, err
	}

	query := `
INSERT INTO items (owner_id, title, description, category, status, images, created_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW())
RETURNING id, created_at
	`
	err = r.DB.QueryRowContext(ctx, query,
		item.OwnerID, item.Title, item.Description, item.Category, fsm.ItemOpen, images,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return models.Item{}, err
	}
	item.Status = fsm.ItemOpen
	return item, nil
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	query := `
		SELECT id, owner_id, title, description, category, status, images, created_at, updated_at
		FROM items
		WHERE id = $1
	`
	var item models.Item
	var images []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.OwnerID, &item.Title, &item.Description, &item.Category,
		&item.Status, &images, &item.CreatedAt, &item.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, models.ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, err
	}
	if err := json.Unmarshal(images, &item.Images); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (r *ItemRepository) GetItemsByOwner(ctx context.Context, ownerID string) ([]models.Item, error) {
	query := `
		SELECT id, owner_id, title, description, category, status, images, created_at, updated_at
		FROM items
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		var images []byte
		err := rows.Scan(&item.ID, &item.OwnerID, &item.Title, &item.Description,
			&item.Category, &item.Status, &images, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(images, &item.Images); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateItemStatus validates the move against the forward-only item
// lifecycle before writing.
func (r *ItemRepository) UpdateItemStatus(ctx context.Context, id int, status string) (models.Item, error) {
	item, err := r.GetItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	if !fsm.ItemCanTransition(item.Status, status) {
		return models.Item{}, models.ErrInvalidStatus
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Item{}, err
	}
	defer tx.Rollback()

	if err := fsm.ApplyItem(ctx, tx, id, item.Status, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, models.ErrInvalidStatus
		}
		return models.Item{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Item{}, err
	}
	item.Status = status
	return item, nil
}

// AppendImage stores an uploaded image URL on the item.
func (r *ItemRepository) AppendImage(ctx context.Context, id int, url string) (models.Item, error) {
	item, err := r.GetItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	item.Images = append(item.Images, url)
	images, err := json.Marshal(item.Images)
	if err != nil {
		return models.Item{}, err
	}
	_, err = r.DB.ExecContext(ctx, `UPDATE items SET images = $1, updated_at = NOW() WHERE id = $2`, images, id)
	if err != nil {
		return models.Item{}, err
	}
	return item, nil
}
