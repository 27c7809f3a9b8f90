package entities

type Staff struct {
	ID    int64
	Name  string
	Email string
	Phone string
	Role  string
}

type StaffModify struct {
	ID    *int64
	Name  *string
	Email *string
	Phone *string
	Role  *string
}
