package models

type Owner struct {
	ID       int64  `db:"owner_id" json:"id"`
	Code     string `db:"owner_code" json:"code"`
	Name     string `db:"owner_name" json:"name"`
	Company  string `db:"company" json:"company"`
	TaxID    string `db:"tax_id" json:"-"`
	Address1 string `db:"address1" json:"address1"`
	City     string `db:"city" json:"city"`
	State    string `db:"state" json:"state"`
	Zip      string `db:"zip" json:"zip"`
	Phone    string `db:"phone" json:"phone"`
	Email    string `db:"email" json:"email"`
	Status   string `db:"status" json:"status"`
}

// SaveArgs returns the positional parameters of sp_owner_save.
func (o *Owner) SaveArgs(updatedBy string) []interface{} {
	return []interface{}{
		o.ID,
		o.Code,
		o.Name,
		o.Company,
		o.TaxID,
		o.Address1,
		o.City,
		o.State,
		o.Zip,
		o.Phone,
		o.Email,
		o.Status,
		updatedBy,
	}
}

func (o Owner) RowID() int64 { return o.ID }

func (o Owner) Cells() []string {
	return []string{o.Code, o.Name, o.Company, o.City, o.State, o.Phone, o.Status}
}

var OwnerColumns = []string{"Code", "Name", "Company", "City", "State", "Phone", "Status"}
