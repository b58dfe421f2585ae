package services

import (
	"context"
	"fmt"
	"time"

	"fixuBack/internal/fsm"
	"fixuBack/internal/models"
	"fixuBack/internal/repositories"
	"fixuBack/utils"
)

type ItemService struct {
	ItemRepo *repositories.ItemRepository
	Storage  *utils.Storage
}

func (s *ItemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	return s.ItemRepo.CreateItem(ctx, item)
}

func (s *ItemService) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	return s.ItemRepo.GetItemByID(ctx, id)
}

func (s *ItemService) GetItemsByOwner(ctx context.Context, ownerID string) ([]models.Item, error) {
	return s.ItemRepo.GetItemsByOwner(ctx, ownerID)
}

// UpdateStatus moves the item along its forward-only lifecycle.
func (s *ItemService) UpdateStatus(ctx context.Context, id int, status string) (models.Item, error) {
	return s.ItemRepo.UpdateItemStatus(ctx, id, status)
}

// ArchiveItem retires an item from the marketplace.
func (s *ItemService) ArchiveItem(ctx context.Context, id int) (models.Item, error) {
	return s.ItemRepo.UpdateItemStatus(ctx, id, fsm.ItemArchived)
}

// UploadImage pushes an image to object storage and records its URL on the
// item.
func (s *ItemService) UploadImage(ctx context.Context, id int, file []byte, ext string) (models.Item, error) {
	if _, err := s.ItemRepo.GetItemByID(ctx, id); err != nil {
		return models.Item{}, err
	}

	fileName := fmt.Sprintf("item_%d_%d%s", id, time.Now().UnixNano(), ext)
	url, err := s.Storage.UploadFile(file, fileName, "items")
	if err != nil {
		return models.Item{}, err
	}
	return s.ItemRepo.AppendImage(ctx, id, url)
}
