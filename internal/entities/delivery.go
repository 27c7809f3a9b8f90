package entities

import "time"

type Delivery struct {
	ID            int64
	ProductName   string
	CustomerName  string
	Address       string
	Status        DeliveryStatusType
	Branch        BranchType
	Notes         string
	ProductImage  []byte
	CreatedAt     time.Time
	LastUpdatedBy *string
	UpdatedAt     *time.Time
}

type DeliveryStatusType string

const (
	DeliveryNew        DeliveryStatusType = "New"
	DeliveryOnDelivery DeliveryStatusType = "On Delivery"
	DeliveryPending    DeliveryStatusType = "Pending"
	DeliveryDelivered  DeliveryStatusType = "Delivered"
)

// DefaultDeliveryStatus - статус любой новой доставки, задается сервисом,
// а не клиентом.
const DefaultDeliveryStatus = DeliveryNew

func (s DeliveryStatusType) String() string {
	return string(s)
}

// DeliveryStatuses перечисляет статусы в порядке жизненного цикла.
// Переходы не ограничены: любой статус достижим из любого другого.
func DeliveryStatuses() []DeliveryStatusType {
	return []DeliveryStatusType{
		DeliveryNew,
		DeliveryOnDelivery,
		DeliveryPending,
		DeliveryDelivered,
	}
}

type BranchType string

const (
	BranchNikol            BranchType = "Nikol"
	BranchSardarPatelChowk BranchType = "Sardar Patel Chowk"
)

func (b BranchType) String() string {
	return string(b)
}

type DeliveryModify struct {
	ID            *int64
	ProductName   *string
	CustomerName  *string
	Address       *string
	Status        *DeliveryStatusType
	Branch        *BranchType
	Notes         *string
	ProductImage  *[]byte
	LastUpdatedBy *string
}

// DeliveryFilter - транзиентное состояние фильтра списка доставок.
// Нулевое значение означает отсутствие фильтрации.
type DeliveryFilter struct {
	Status string // пусто = все статусы
	Date   string // календарная дата создания, формат YYYY-MM-DD
	Query  string // подстрока без учета регистра
}

// DeliveryStatusChange - событие смены статуса для аудита и брокера.
type DeliveryStatusChange struct {
	DeliveryID int64
	OldStatus  DeliveryStatusType
	NewStatus  DeliveryStatusType
	ChangedBy  string
	OccurredAt time.Time
}
