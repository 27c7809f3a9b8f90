// Package dto содержит типы HTTP-обвязки. Доменные типы наружу не
// выходят, снимок товара сериализуется base64-строкой.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token          string    `json:"token"`
	Email          string    `json:"email"`
	ExpiresAt      time.Time `json:"expires_at"`
	CanManageStaff bool      `json:"can_manage_staff"`
}

type Delivery struct {
	ID            int64      `json:"id"`
	ProductName   string     `json:"product_name"`
	CustomerName  string     `json:"customer_name"`
	Address       string     `json:"address"`
	Status        string     `json:"status"`
	Branch        string     `json:"branch"`
	Notes         string     `json:"notes,omitempty"`
	ProductImage  []byte     `json:"product_image,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	LastUpdatedBy *string    `json:"last_updated_by,omitempty"`
	// LastUpdatedByName - имя автора последней правки, расшифрованное по
	// справочнику сотрудников. Заполняется на выдаче списков.
	LastUpdatedByName *string    `json:"last_updated_by_name,omitempty"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

type DeliveryCreate struct {
	ProductName  string `json:"product_name"`
	CustomerName string `json:"customer_name"`
	Address      string `json:"address"`
	Branch       string `json:"branch"`
	Notes        string `json:"notes,omitempty"`
	ProductImage []byte `json:"product_image,omitempty"`
}

type DeliveryUpdate struct {
	ProductName  *string `json:"product_name,omitempty"`
	CustomerName *string `json:"customer_name,omitempty"`
	Address      *string `json:"address,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type DeliveryList struct {
	Deliveries []Delivery `json:"deliveries"`
}

type DeliveryEvent struct {
	ID         int64     `json:"id"`
	DeliveryID int64     `json:"delivery_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	ChangedBy  string    `json:"changed_by"`
	OccurredAt time.Time `json:"occurred_at"`
}

type DeliveryEventList struct {
	Events []DeliveryEvent `json:"events"`
}

type StatusStageRequest struct {
	Status string `json:"status"`
}

type Stage struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type Staff struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role,omitempty"`
}

type StaffCreate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role,omitempty"`
}

type StaffUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Role  *string `json:"role,omitempty"`
}

type StaffList struct {
	Staff []Staff `json:"staff"`
}
