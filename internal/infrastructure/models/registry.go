package models

// All lists every table model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&Item{},
		&Order{},
		&Comment{},
		&Favorite{},
		&Subscription{},
	}
}
