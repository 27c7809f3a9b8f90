package delivery

import "time"

type DeliveryDB struct {
	ID            int64
	ProductName   string
	CustomerName  string
	Address       string
	Status        string
	Branch        string
	Notes         string
	ProductImage  []byte
	CreatedAt     time.Time
	LastUpdatedBy *string
	UpdatedAt     *time.Time
}

type DeliveryModifyDB struct {
	ID            *int64
	ProductName   *string
	CustomerName  *string
	Address       *string
	Status        *string
	Branch        *string
	Notes         *string
	ProductImage  *[]byte
	LastUpdatedBy *string
}
