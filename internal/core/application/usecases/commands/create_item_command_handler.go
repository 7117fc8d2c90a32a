package commands

import (
	"context"

	"freight/internal/core/domain/model/item"
)

// CreateItemCommandHandler handles the business logic for parcel intake.
// Creates new items in china_warehouse status with zero cost until tagging
// supplies a shipping method and measurements.
type CreateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewCreateItemCommandHandler creates a handler for parcel intake operations.
// Requires an ItemUoWFactory for transactional persistence.
func NewCreateItemCommandHandler(uowFactory ItemUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the intake command.
// Builds the photo list from the submitted URLs, ordered by submission
// position, and persists the new item inside a transaction.
func (h *CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	photos := make([]item.Photo, 0, len(cmd.PhotoURLs()))
	for index, url := range cmd.PhotoURLs() {
		photo, err := item.NewPhoto(url, index)
		if err != nil {
			return err
		}
		photos = append(photos, photo)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	aggregate, err := item.NewItem(cmd.ItemID(), cmd.TrackingNumber(), cmd.ReceivingDate(), photos)
	if err != nil {
		return err
	}

	if err = itemRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
