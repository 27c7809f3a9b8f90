package delivery

import "tracker/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:            d.ID,
		ProductName:   d.ProductName,
		CustomerName:  d.CustomerName,
		Address:       d.Address,
		Status:        entities.DeliveryStatusType(d.Status),
		Branch:        entities.BranchType(d.Branch),
		Notes:         d.Notes,
		ProductImage:  d.ProductImage,
		CreatedAt:     d.CreatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
		UpdatedAt:     d.UpdatedAt,
	}
}

func ToDomainList(models []DeliveryDB) []entities.Delivery {
	deliveries := make([]entities.Delivery, 0, len(models))
	for i := range models {
		deliveries = append(deliveries, *ToDomain(&models[i]))
	}
	return deliveries
}

func FromDomainModify(d *entities.DeliveryModify) *DeliveryModifyDB {
	if d == nil {
		return nil
	}
	deliveryModifyDB := &DeliveryModifyDB{}

	if d.ID != nil {
		deliveryModifyDB.ID = d.ID
	}
	if d.ProductName != nil {
		deliveryModifyDB.ProductName = d.ProductName
	}
	if d.CustomerName != nil {
		deliveryModifyDB.CustomerName = d.CustomerName
	}
	if d.Address != nil {
		deliveryModifyDB.Address = d.Address
	}
	if d.Status != nil {
		status := string(*d.Status)
		deliveryModifyDB.Status = &status
	}
	if d.Branch != nil {
		branch := string(*d.Branch)
		deliveryModifyDB.Branch = &branch
	}
	if d.Notes != nil {
		deliveryModifyDB.Notes = d.Notes
	}
	if d.ProductImage != nil {
		deliveryModifyDB.ProductImage = d.ProductImage
	}
	if d.LastUpdatedBy != nil {
		deliveryModifyDB.LastUpdatedBy = d.LastUpdatedBy
	}

	return deliveryModifyDB
}
