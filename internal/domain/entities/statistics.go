package entities

import "github.com/google/uuid"

// Statistics is the admin dashboard snapshot.
type Statistics struct {
	Users             UserStatistics       `json:"users"`
	Items             ItemStatistics       `json:"items"`
	Orders            OrderStatistics      `json:"orders"`
	PopularCategories []CategoryPopularity `json:"popular_categories"`
}

type UserStatistics struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	NewToday int64 `json:"new_today"`
}

type ItemStatistics struct {
	Total    int64 `json:"total"`
	Sold     int64 `json:"sold"`
	NewToday int64 `json:"new_today"`
}

type OrderStatistics struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Revenue   int64 `json:"revenue"`
}

type CategoryPopularity struct {
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
	Total      int64     `json:"total"`
}
