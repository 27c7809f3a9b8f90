package staff

import (
	"context"
	"fmt"

	"tracker/internal/entities"
)

type Staff struct {
	repository Repository
	events     Events
}

func New(repository Repository, events Events) *Staff {
	return &Staff{
		repository: repository,
		events:     events,
	}
}

// CreateStaffMember добавляет сотрудника в справочник. Почта обязана
// быть уникальной: по ней строится индекс авторства доставок.
func (s *Staff) CreateStaffMember(ctx context.Context, staffModify entities.StaffModify) (*entities.Staff, error) {
	if staffModify.Name == nil ||
		staffModify.Email == nil ||
		staffModify.Phone == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidText(*staffModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidEmail(*staffModify.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidText(*staffModify.Phone) {
		return nil, ErrInvalidPhone
	}

	created, err := s.repository.Create(ctx, staffModify)
	if err != nil {
		return nil, fmt.Errorf("create staff member: %w", err)
	}

	s.events.StaffChanged(ctx)
	return created, nil
}

// UpdateStaffMember меняет карточку сотрудника. Почта тоже может
// меняться; индекс авторства пересобирается из свежего снапшота.
func (s *Staff) UpdateStaffMember(ctx context.Context, staffModify entities.StaffModify) (*entities.Staff, error) {
	if staffModify.ID == nil {
		return nil, ErrInvalidStaffID
	}

	if staffModify.Name == nil &&
		staffModify.Email == nil &&
		staffModify.Phone == nil &&
		staffModify.Role == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if staffModify.Name != nil && !isValidText(*staffModify.Name) {
		return nil, ErrInvalidName
	}
	if staffModify.Email != nil && !isValidEmail(*staffModify.Email) {
		return nil, ErrInvalidEmail
	}
	if staffModify.Phone != nil && !isValidText(*staffModify.Phone) {
		return nil, ErrInvalidPhone
	}

	updated, err := s.repository.Update(ctx, staffModify)
	if err != nil {
		return nil, fmt.Errorf("update staff member: %w", err)
	}

	s.events.StaffChanged(ctx)
	return updated, nil
}

func (s *Staff) DeleteStaffMember(ctx context.Context, id int64) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete staff member: %w", err)
	}

	s.events.StaffChanged(ctx)
	return nil
}

func (s *Staff) GetStaffMember(ctx context.Context, id int64) (*entities.Staff, error) {
	staffMember, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}

	return staffMember, nil
}

func (s *Staff) GetStaff(ctx context.Context) ([]entities.Staff, error) {
	staffList, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	return staffList, nil
}
