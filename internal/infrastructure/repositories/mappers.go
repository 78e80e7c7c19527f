package repositories

import (
	"rewear.backend/internal/domain/entities"
	"rewear.backend/internal/infrastructure/models"
)

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entities.UserRole(m.Role),
		Status:       entities.UserStatus(m.Status),
		ProfilePhoto: m.ProfilePhoto,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func userSummary(m *models.User) *entities.UserSummary {
	if m == nil {
		return nil
	}
	return userToEntity(m).Summary()
}

func categoryToEntity(m *models.Category) *entities.Category {
	return &entities.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Icon:        m.Icon,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func itemToEntity(m *models.Item) *entities.Item {
	e := &entities.Item{
		ID:          m.ID,
		SellerID:    m.SellerID,
		CategoryID:  m.CategoryID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		IsSold:      m.IsSold,
		Seller:      userSummary(m.Seller),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Category != nil {
		e.Category = &entities.CategorySummary{ID: m.Category.ID, Name: m.Category.Name}
	}
	return e
}

func itemSummary(m *models.Item) *entities.ItemSummary {
	if m == nil {
		return nil
	}
	return itemToEntity(m).Summary()
}

func orderToEntity(m *models.Order) *entities.Order {
	return &entities.Order{
		ID:            m.ID,
		ItemID:        m.ItemID,
		BuyerID:       m.BuyerID,
		SellerID:      m.SellerID,
		Status:        entities.OrderStatus(m.Status),
		PaymentStatus: entities.PaymentStatus(m.PaymentStatus),
		AmountPaid:    m.AmountPaid,
		Item:          itemSummary(m.Item),
		Buyer:         userSummary(m.Buyer),
		Seller:        userSummary(m.Seller),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func commentToEntity(m *models.Comment) *entities.Comment {
	return &entities.Comment{
		ID:        m.ID,
		UserID:    m.UserID,
		ItemID:    m.ItemID,
		Body:      m.Body,
		User:      userSummary(m.User),
		Item:      itemSummary(m.Item),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
