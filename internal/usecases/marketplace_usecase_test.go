package usecases_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
	"rewear.backend/internal/usecases"
)

type marketplaceDeps struct {
	items      *MockItemRepository
	categories *MockCategoryRepository
	comments   *MockCommentRepository
	favorites  *MockFavoriteRepository
	orders     *MockOrderRepository
	uow        *MockUnitOfWork
}

func newMarketplaceUsecaseForTest() (*usecases.MarketplaceUsecase, *marketplaceDeps) {
	d := &marketplaceDeps{
		items:      new(MockItemRepository),
		categories: new(MockCategoryRepository),
		comments:   new(MockCommentRepository),
		favorites:  new(MockFavoriteRepository),
		orders:     new(MockOrderRepository),
		uow:        newMockUnitOfWork(),
	}
	return usecases.NewMarketplaceUsecase(d.items, d.categories, d.comments, d.favorites, d.orders, d.uow), d
}

func TestMarketplaceUsecase_CreateItem(t *testing.T) {
	ctx := context.Background()
	seller := uuid.New()
	categoryID := uuid.New()

	t.Run("unknown category", func(t *testing.T) {
		uc, d := newMarketplaceUsecaseForTest()
		d.categories.On("GetByID", ctx, categoryID).Return(nil, domainerrors.ErrNotFound).Once()

		_, err := uc.CreateItem(ctx, seller, &entities.CreateItemInput{Title: "Coat", Price: 1500, CategoryID: categoryID.String()})
		requireStatus(t, err, http.StatusBadRequest)
		d.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("locks category and inserts", func(t *testing.T) {
		uc, d := newMarketplaceUsecaseForTest()
		d.categories.On("GetByID", ctx, categoryID).Return(&entities.Category{ID: categoryID, Name: "Coats"}, nil).Once()
		d.items.On("Create", ctx, mock.MatchedBy(func(i *entities.Item) bool {
			return i.SellerID == seller && i.Price == 1500 && i.Title == "Wool coat"
		})).Return(nil).Once()

		item, err := uc.CreateItem(ctx, seller, &entities.CreateItemInput{Title: " Wool coat ", Price: 1500, CategoryID: categoryID.String()})
		require.NoError(t, err)
		assert.Equal(t, "Coats", item.Category.Name)
		d.uow.AssertCalled(t, "WithLock", mock.Anything)
	})
}

func TestMarketplaceUsecase_Purchase(t *testing.T) {
	ctx := context.Background()
	seller := uuid.New()
	buyer := uuid.New()
	itemID := uuid.New()

	t.Run("own item", func(t *testing.T) {
		uc, d := newMarketplaceUsecaseForTest()
		d.items.On("GetByID", ctx, itemID).Return(&entities.Item{ID: itemID, SellerID: seller}, nil).Once()

		_, err := uc.Purchase(ctx, seller, itemID)
		requireStatus(t, err, http.StatusBadRequest)
		assert.ErrorIs(t, err, domainerrors.ErrSelfAction)
	})

	t.Run("already sold", func(t *testing.T) {
		uc, d := newMarketplaceUsecaseForTest()
		d.items.On("GetByID", ctx, itemID).Return(&entities.Item{ID: itemID, SellerID: seller, IsSold: true}, nil).Once()

		_, err := uc.Purchase(ctx, buyer, itemID)
		requireStatus(t, err, http.StatusConflict)
		d.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lost race on mark sold", func(t *testing.T) {
		uc, d := newMarketplaceUsecaseForTest()
		d.items.On("GetByID", ctx, itemID).Return(&entities.Item{ID: itemID, SellerID: seller, Price: 900}, nil).Once()
		d.orders.On("Create", ctx, mock.Anything).Return(nil).Once()
		d.items.On("MarkSold", ctx, itemID).Return(domainerrors.ErrItemSold).Once()

		_, err := uc.Purchase(ctx, buyer, itemID)
		requireStatus(t, err, http.StatusConflict)
	})

	t.Run("paid completed order for the full price", func(t *testing.T) {
		uc, d := newMarketplaceUsecaseForTest()
		d.items.On("GetByID", ctx, itemID).Return(&entities.Item{ID: itemID, SellerID: seller, Price: 900}, nil).Once()
		d.orders.On("Create", ctx, mock.MatchedBy(func(o *entities.Order) bool {
			return o.BuyerID == buyer && o.SellerID == seller && o.AmountPaid == 900 &&
				o.Status == entities.OrderStatusCompleted && o.PaymentStatus == entities.PaymentStatusPaid
		})).Return(nil).Once()
		d.items.On("MarkSold", ctx, itemID).Return(nil).Once()

		order, err := uc.Purchase(ctx, buyer, itemID)
		require.NoError(t, err)
		assert.True(t, order.Item.IsSold)
		d.items.AssertExpectations(t)
	})
}

func TestMarketplaceUsecase_CommentsAndFavorites(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()
	itemID := uuid.New()
	missing := uuid.New()
	uc, d := newMarketplaceUsecaseForTest()

	d.items.On("GetByID", ctx, itemID).Return(&entities.Item{ID: itemID, Title: "Coat"}, nil)
	d.items.On("GetByID", ctx, missing).Return(nil, domainerrors.ErrNotFound)
	d.comments.On("Create", ctx, mock.Anything).Return(nil).Once()
	d.favorites.On("Add", ctx, user, itemID).Return(nil).Twice()
	d.favorites.On("Remove", ctx, user, itemID).Return(nil).Once()

	comment, err := uc.AddComment(ctx, user, itemID, &entities.CreateCommentInput{Body: " nice "})
	require.NoError(t, err)
	assert.Equal(t, "nice", comment.Body)
	assert.Equal(t, "Coat", comment.Item.Title)

	_, err = uc.AddComment(ctx, user, missing, &entities.CreateCommentInput{Body: "hi"})
	requireStatus(t, err, http.StatusNotFound)

	require.NoError(t, uc.SetFavorite(ctx, user, itemID, true))
	require.NoError(t, uc.SetFavorite(ctx, user, itemID, true))
	require.NoError(t, uc.SetFavorite(ctx, user, itemID, false))
	requireStatus(t, uc.SetFavorite(ctx, user, missing, true), http.StatusNotFound)
	d.favorites.AssertExpectations(t)
}
