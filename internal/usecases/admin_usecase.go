package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
	"rewear.backend/internal/domain/repositories"
	"rewear.backend/pkg/logger"
	"rewear.backend/pkg/utils"
)

const (
	adminUsersPerPage    = 15
	adminItemsPerPage    = 10
	adminCommentsPerPage = 20
	adminOrdersPerPage   = 10
	popularCategoryLimit = 5
)

// AdminUsecase backs the moderation endpoints.
type AdminUsecase struct {
	userRepo    repositories.UserRepository
	itemRepo    repositories.ItemRepository
	commentRepo repositories.CommentRepository
	orderRepo   repositories.OrderRepository
	statsRepo   repositories.StatisticsRepository
	mailer      AccountMailer
}

func NewAdminUsecase(
	userRepo repositories.UserRepository,
	itemRepo repositories.ItemRepository,
	commentRepo repositories.CommentRepository,
	orderRepo repositories.OrderRepository,
	statsRepo repositories.StatisticsRepository,
	mailer AccountMailer,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		commentRepo: commentRepo,
		orderRepo:   orderRepo,
		statsRepo:   statsRepo,
		mailer:      mailer,
	}
}

// ListUsers pages through users, optionally filtered by an account status.
func (u *AdminUsecase) ListUsers(ctx context.Context, rawStatus string, page int) (utils.Page[*entities.UserWithCounts], error) {
	var filter entities.UserFilter
	if rawStatus != "" {
		status, ok := entities.ParseUserStatus(rawStatus)
		if !ok {
			return utils.Page[*entities.UserWithCounts]{}, domainerrors.BadRequest("The selected status is invalid.")
		}
		filter.Status = &status
	}

	params := utils.NewPaginationParams(page, adminUsersPerPage)
	users, total, err := u.userRepo.ListWithCounts(ctx, filter, params)
	if err != nil {
		return utils.Page[*entities.UserWithCounts]{}, err
	}
	return utils.NewPage(users, total, params), nil
}

// UpdateUserStatus stores the new status and then emails the user. The mail
// goes out on every successful call, including when the status is unchanged.
func (u *AdminUsecase) UpdateUserStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*entities.User, error) {
	status, ok := entities.ParseUserStatus(rawStatus)
	if !ok {
		return nil, domainerrors.BadRequest("The selected status is invalid.")
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, err
	}

	if err := u.userRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	user.Status = status

	if err := u.mailer.SendAccountStatus(ctx, user); err != nil {
		logger.Error(ctx, "Account status updated but notification failed",
			zap.String("user_id", id.String()),
			zap.Error(err),
		)
		return nil, domainerrors.InternalError(err)
	}
	return user, nil
}

func (u *AdminUsecase) ListItems(ctx context.Context, page int) (utils.Page[*entities.Item], error) {
	params := utils.NewPaginationParams(page, adminItemsPerPage)
	items, total, err := u.itemRepo.ListWithRelations(ctx, params)
	if err != nil {
		return utils.Page[*entities.Item]{}, err
	}
	return utils.NewPage(items, total, params), nil
}

func (u *AdminUsecase) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := u.itemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("item not found")
		}
		return err
	}
	logger.Info(ctx, "Item deleted by admin", zap.String("item_id", id.String()))
	return nil
}

func (u *AdminUsecase) ListComments(ctx context.Context, page int) (utils.Page[*entities.Comment], error) {
	params := utils.NewPaginationParams(page, adminCommentsPerPage)
	comments, total, err := u.commentRepo.ListWithRelations(ctx, params)
	if err != nil {
		return utils.Page[*entities.Comment]{}, err
	}
	return utils.NewPage(comments, total, params), nil
}

func (u *AdminUsecase) DeleteComment(ctx context.Context, id uuid.UUID) error {
	if err := u.commentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("comment not found")
		}
		return err
	}
	logger.Info(ctx, "Comment deleted by admin", zap.String("comment_id", id.String()))
	return nil
}

func (u *AdminUsecase) ListOrders(ctx context.Context, page int) (utils.Page[*entities.Order], error) {
	params := utils.NewPaginationParams(page, adminOrdersPerPage)
	orders, total, err := u.orderRepo.ListWithRelations(ctx, params)
	if err != nil {
		return utils.Page[*entities.Order]{}, err
	}
	return utils.NewPage(orders, total, params), nil
}

// Statistics recomputes the dashboard on every call.
func (u *AdminUsecase) Statistics(ctx context.Context) (*entities.Statistics, error) {
	return u.statsRepo.Snapshot(ctx, startOfDay(nowFunc()), popularCategoryLimit)
}
