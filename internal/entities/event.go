package entities

import "time"

// DeliveryEvent - строка аудита смены статуса, пишется kafka-воркером.
type DeliveryEvent struct {
	ID         int64
	DeliveryID int64
	OldStatus  DeliveryStatusType
	NewStatus  DeliveryStatusType
	ChangedBy  string
	OccurredAt time.Time
}
