package dto

import (
	"tracker/internal/entities"
	"tracker/internal/service/staging"
)

func FromDelivery(d *entities.Delivery) Delivery {
	return Delivery{
		ID:            d.ID,
		ProductName:   d.ProductName,
		CustomerName:  d.CustomerName,
		Address:       d.Address,
		Status:        string(d.Status),
		Branch:        string(d.Branch),
		Notes:         d.Notes,
		ProductImage:  d.ProductImage,
		CreatedAt:     d.CreatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
		UpdatedAt:     d.UpdatedAt,
	}
}

// FromDeliveryList собирает список доставок для выдачи. names - индекс
// email -> имя сотрудника; авторство правок хранится почтой, поэтому для
// известной почты дополнительно отдается last_updated_by_name. Пустой
// индекс допустим: поле просто опускается.
func FromDeliveryList(deliveries []entities.Delivery, names map[string]string) DeliveryList {
	list := DeliveryList{Deliveries: make([]Delivery, 0, len(deliveries))}
	for i := range deliveries {
		item := FromDelivery(&deliveries[i])
		if item.LastUpdatedBy != nil {
			if name, ok := names[*item.LastUpdatedBy]; ok {
				item.LastUpdatedByName = &name
			}
		}
		list.Deliveries = append(list.Deliveries, item)
	}
	return list
}

func FromStaff(s *entities.Staff) Staff {
	return Staff{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
		Phone: s.Phone,
		Role:  s.Role,
	}
}

func FromStaffList(staffMembers []entities.Staff) StaffList {
	list := StaffList{Staff: make([]Staff, 0, len(staffMembers))}
	for i := range staffMembers {
		list.Staff = append(list.Staff, FromStaff(&staffMembers[i]))
	}
	return list
}

func FromDeliveryEvent(e *entities.DeliveryEvent) DeliveryEvent {
	return DeliveryEvent{
		ID:         e.ID,
		DeliveryID: e.DeliveryID,
		OldStatus:  string(e.OldStatus),
		NewStatus:  string(e.NewStatus),
		ChangedBy:  e.ChangedBy,
		OccurredAt: e.OccurredAt,
	}
}

func FromDeliveryEventList(events []entities.DeliveryEvent) DeliveryEventList {
	list := DeliveryEventList{Events: make([]DeliveryEvent, 0, len(events))}
	for i := range events {
		list.Events = append(list.Events, FromDeliveryEvent(&events[i]))
	}
	return list
}

func FromStage(s *staging.Stage) Stage {
	return Stage{
		ID:          s.ID,
		Kind:        string(s.Kind),
		Description: s.Description,
		ExpiresAt:   s.ExpiresAt,
	}
}
