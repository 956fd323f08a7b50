package model

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

func (s CustomerStatus) Valid() bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive
}

type Customer struct {
	BaseModel
	Name    string         `db:"name"`
	Email   string         `db:"email"`
	Phone   *string        `db:"phone"`   // Nullable
	Address *string        `db:"address"` // Nullable
	Company *string        `db:"company"` // Nullable
	Status  CustomerStatus `db:"status"`
}
