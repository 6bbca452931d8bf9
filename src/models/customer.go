package models

// Customer is one tenant of the back office as recorded in the control
// database. Its connection details point at the customer's own database.
type Customer struct {
	Code       string `gorm:"column:code"`
	Name       string `gorm:"column:name"`
	DBHost     string `gorm:"column:db_host"`
	DBPort     int    `gorm:"column:db_port"`
	DBName     string `gorm:"column:db_name"`
	DBUser     string `gorm:"column:db_user"`
	DBPassword string `gorm:"column:db_password"`
	Active     bool   `gorm:"column:active"`
}

func (Customer) TableName() string {
	return "customers"
}
