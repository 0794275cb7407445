package models

// CartItem is a dish snapshot with a quantity of at least 1
type CartItem struct {
	Dish
	Quantity int `json:"quantity"`
}

type Cart struct {
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Count    int        `json:"count"`
}
