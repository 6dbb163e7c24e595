package entity

import "time"

// Authorization grants a producer the right to offer a product. At most one exists per pair.
type Authorization struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	ProductID    string    `json:"productId"`
	AuthorizedAt time.Time `json:"authorizedAt"`
}
