package usecases

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
	"rewear.backend/internal/domain/repositories"
	"rewear.backend/pkg/logger"
)

// MarketplaceUsecase covers listing, commenting on, liking and buying items.
type MarketplaceUsecase struct {
	itemRepo     repositories.ItemRepository
	categoryRepo repositories.CategoryRepository
	commentRepo  repositories.CommentRepository
	favoriteRepo repositories.FavoriteRepository
	orderRepo    repositories.OrderRepository
	uow          repositories.UnitOfWork
}

func NewMarketplaceUsecase(
	itemRepo repositories.ItemRepository,
	categoryRepo repositories.CategoryRepository,
	commentRepo repositories.CommentRepository,
	favoriteRepo repositories.FavoriteRepository,
	orderRepo repositories.OrderRepository,
	uow repositories.UnitOfWork,
) *MarketplaceUsecase {
	return &MarketplaceUsecase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		commentRepo:  commentRepo,
		favoriteRepo: favoriteRepo,
		orderRepo:    orderRepo,
		uow:          uow,
	}
}

// CreateItem locks the target category while inserting so a concurrent
// category delete cannot leave the item pointing at a removed row.
func (u *MarketplaceUsecase) CreateItem(ctx context.Context, sellerID uuid.UUID, input *entities.CreateItemInput) (*entities.Item, error) {
	categoryID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		return nil, domainerrors.BadRequest("The selected category id is invalid.")
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.BadRequest("The title field is required.")
	}

	item := &entities.Item{
		SellerID:    sellerID,
		CategoryID:  categoryID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		category, err := u.categoryRepo.GetByID(u.uow.WithLock(txCtx), categoryID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.BadRequest("The selected category id is invalid.")
			}
			return err
		}
		if err := u.itemRepo.Create(txCtx, item); err != nil {
			return err
		}
		item.Category = &entities.CategorySummary{ID: category.ID, Name: category.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (u *MarketplaceUsecase) GetItem(ctx context.Context, id uuid.UUID) (*entities.Item, error) {
	item, err := u.itemRepo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "item not found")
	}
	return item, nil
}

func (u *MarketplaceUsecase) AddComment(ctx context.Context, userID, itemID uuid.UUID, input *entities.CreateCommentInput) (*entities.Comment, error) {
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, domainerrors.BadRequest("The body field is required.")
	}
	item, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, notFoundAs(err, "item not found")
	}

	comment := &entities.Comment{UserID: userID, ItemID: itemID, Body: body}
	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.Item = item.Summary()
	return comment, nil
}

// SetFavorite likes or unlikes an item. Repeating either call is a no-op.
func (u *MarketplaceUsecase) SetFavorite(ctx context.Context, userID, itemID uuid.UUID, liked bool) error {
	if _, err := u.itemRepo.GetByID(ctx, itemID); err != nil {
		return notFoundAs(err, "item not found")
	}
	if liked {
		return u.favoriteRepo.Add(ctx, userID, itemID)
	}
	return u.favoriteRepo.Remove(ctx, userID, itemID)
}

func (u *MarketplaceUsecase) HasLiked(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	return u.favoriteRepo.Exists(ctx, userID, itemID)
}

// Purchase records a paid, completed order for the full price and marks the
// item sold, both in one transaction.
func (u *MarketplaceUsecase) Purchase(ctx context.Context, buyerID, itemID uuid.UUID) (*entities.Order, error) {
	var order *entities.Order

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		item, err := u.itemRepo.GetByID(u.uow.WithLock(txCtx), itemID)
		if err != nil {
			return notFoundAs(err, "item not found")
		}
		if item.SellerID == buyerID {
			return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeInvalidInput, "You cannot buy your own item.", domainerrors.ErrSelfAction)
		}
		if item.IsSold {
			return itemSoldError()
		}

		order = &entities.Order{
			ItemID:        item.ID,
			BuyerID:       buyerID,
			SellerID:      item.SellerID,
			Status:        entities.OrderStatusCompleted,
			PaymentStatus: entities.PaymentStatusPaid,
			AmountPaid:    item.Price,
		}
		if err := u.orderRepo.Create(txCtx, order); err != nil {
			return err
		}
		if err := u.itemRepo.MarkSold(txCtx, item.ID); err != nil {
			if errors.Is(err, domainerrors.ErrItemSold) {
				return itemSoldError()
			}
			return err
		}
		item.IsSold = true
		order.Item = item.Summary()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Item purchased",
		zap.String("order_id", order.ID.String()),
		zap.String("item_id", itemID.String()),
		zap.Int64("amount_paid", order.AmountPaid),
	)
	return order, nil
}

func itemSoldError() error {
	return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict, "This item has already been sold.", domainerrors.ErrItemSold)
}
