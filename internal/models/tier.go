package models

type Rates struct {
	Adult int `json:"adult"`
	Child int `json:"child"`
}

// Tier is a ticket product with its per-person rates.
type Tier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rates       Rates  `json:"rates"`
}
