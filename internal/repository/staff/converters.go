package staff

import "tracker/internal/entities"

func ToDomain(s *StaffDB) *entities.Staff {
	if s == nil {
		return nil
	}
	return &entities.Staff{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
		Phone: s.Phone,
		Role:  s.Role,
	}
}

func ToDomainList(models []StaffDB) []entities.Staff {
	staffList := make([]entities.Staff, 0, len(models))
	for i := range models {
		staffList = append(staffList, *ToDomain(&models[i]))
	}
	return staffList
}

func FromDomainModify(s *entities.StaffModify) *StaffModifyDB {
	if s == nil {
		return nil
	}
	staffModifyDB := &StaffModifyDB{}

	if s.ID != nil {
		staffModifyDB.ID = s.ID
	}
	if s.Name != nil {
		staffModifyDB.Name = s.Name
	}
	if s.Email != nil {
		staffModifyDB.Email = s.Email
	}
	if s.Phone != nil {
		staffModifyDB.Phone = s.Phone
	}
	if s.Role != nil {
		staffModifyDB.Role = s.Role
	}

	return staffModifyDB
}
