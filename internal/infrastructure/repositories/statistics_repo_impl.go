package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rewear.backend/internal/domain/entities"
	"rewear.backend/internal/infrastructure/models"
)

// StatisticsRepository runs the admin dashboard aggregates.
type StatisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

func (r *StatisticsRepository) Snapshot(ctx context.Context, dayStart time.Time, topCategories int) (*entities.Statistics, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	dayEnd := dayStart.Add(24 * time.Hour)
	stats := &entities.Statistics{}

	counts := []struct {
		dst   *int64
		model interface{}
		where string
		args  []interface{}
	}{
		{&stats.Users.Total, &models.User{}, "", nil},
		{&stats.Users.Active, &models.User{}, "status = ?", []interface{}{string(entities.UserStatusActive)}},
		{&stats.Users.NewToday, &models.User{}, "created_at >= ? AND created_at < ?", []interface{}{dayStart, dayEnd}},
		{&stats.Items.Total, &models.Item{}, "", nil},
		{&stats.Items.Sold, &models.Item{}, "is_sold = ?", []interface{}{true}},
		{&stats.Items.NewToday, &models.Item{}, "created_at >= ? AND created_at < ?", []interface{}{dayStart, dayEnd}},
		{&stats.Orders.Total, &models.Order{}, "", nil},
		{&stats.Orders.Completed, &models.Order{}, "status = ?", []interface{}{string(entities.OrderStatusCompleted)}},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if c.where != "" {
			q = q.Where(c.where, c.args...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	if err := db.Model(&models.Order{}).
		Select("COALESCE(SUM(amount_paid), 0)").
		Where("payment_status = ?", string(entities.PaymentStatusPaid)).
		Scan(&stats.Orders.Revenue).Error; err != nil {
		return nil, err
	}

	var popular []struct {
		CategoryID uuid.UUID
		Name       string
		Total      int64
	}
	if err := db.Model(&models.Item{}).
		Select("items.category_id AS category_id, categories.name AS name, COUNT(*) AS total").
		Joins("JOIN categories ON categories.id = items.category_id").
		Group("items.category_id, categories.name").
		Order("total DESC, categories.name ASC").
		Limit(topCategories).
		Scan(&popular).Error; err != nil {
		return nil, err
	}

	stats.PopularCategories = make([]entities.CategoryPopularity, 0, len(popular))
	for _, p := range popular {
		stats.PopularCategories = append(stats.PopularCategories, entities.CategoryPopularity{
			CategoryID: p.CategoryID,
			Name:       p.Name,
			Total:      p.Total,
		})
	}
	return stats, nil
}
