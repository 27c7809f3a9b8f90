package staff

type StaffDB struct {
	ID    int64
	Name  string
	Email string
	Phone string
	Role  string
}

type StaffModifyDB struct {
	ID    *int64
	Name  *string
	Email *string
	Phone *string
	Role  *string
}
