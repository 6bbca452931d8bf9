package models

import "strconv"

type Agent struct {
	ID            int64   `db:"agent_id" json:"id"`
	Code          string  `db:"agent_code" json:"code"`
	Name          string  `db:"agent_name" json:"name"`
	Company       string  `db:"company" json:"company"`
	Address1      string  `db:"address1" json:"address1"`
	City          string  `db:"city" json:"city"`
	State         string  `db:"state" json:"state"`
	Zip           string  `db:"zip" json:"zip"`
	Phone         string  `db:"phone" json:"phone"`
	Email         string  `db:"email" json:"email"`
	CommissionPct float64 `db:"commission_pct" json:"commissionPct"`
	Status        string  `db:"status" json:"status"`
}

// SaveArgs returns the positional parameters of sp_agent_save.
func (a *Agent) SaveArgs(updatedBy string) []interface{} {
	return []interface{}{
		a.ID,
		a.Code,
		a.Name,
		a.Company,
		a.Address1,
		a.City,
		a.State,
		a.Zip,
		a.Phone,
		a.Email,
		a.CommissionPct,
		a.Status,
		updatedBy,
	}
}

func (a Agent) RowID() int64 { return a.ID }

func (a Agent) Cells() []string {
	return []string{a.Code, a.Name, a.Company, a.City, a.State, a.Phone, strconv.FormatFloat(a.CommissionPct, 'f', 2, 64), a.Status}
}

var AgentColumns = []string{"Code", "Name", "Company", "City", "State", "Phone", "Commission %", "Status"}
