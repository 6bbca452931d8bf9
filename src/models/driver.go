package models

import "time"

type Driver struct {
	ID              int64      `db:"driver_id" json:"id"`
	Code            string     `db:"driver_code" json:"code"`
	FirstName       string     `db:"first_name" json:"firstName"`
	MiddleName      string     `db:"middle_name" json:"middleName"`
	LastName        string     `db:"last_name" json:"lastName"`
	Status          string     `db:"status" json:"status"`
	Address1        string     `db:"address1" json:"address1"`
	Address2        string     `db:"address2" json:"address2"`
	City            string     `db:"city" json:"city"`
	State           string     `db:"state" json:"state"`
	Zip             string     `db:"zip" json:"zip"`
	Country         string     `db:"country" json:"country"`
	HomePhone       string     `db:"home_phone" json:"homePhone"`
	CellPhone       string     `db:"cell_phone" json:"cellPhone"`
	Email           string     `db:"email" json:"email"`
	BirthDate       *time.Time `db:"birth_date" json:"birthDate"`
	TaxID           string     `db:"tax_id" json:"-"`
	LicenseNumber   string     `db:"license_number" json:"licenseNumber"`
	LicenseState    string     `db:"license_state" json:"licenseState"`
	LicenseClass    string     `db:"license_class" json:"licenseClass"`
	LicenseExpires  *time.Time `db:"license_expires" json:"licenseExpires"`
	MedicalExpires  *time.Time `db:"medical_expires" json:"medicalExpires"`
	HireDate        *time.Time `db:"hire_date" json:"hireDate"`
	TerminationDate *time.Time `db:"termination_date" json:"terminationDate"`
	DriverType      string     `db:"driver_type" json:"driverType"`
	OwnerID         int64      `db:"owner_id" json:"ownerId"`
	TeamID          int64      `db:"team_id" json:"teamId"`
	AgentID         int64      `db:"agent_id" json:"agentId"`
	PayRate         float64    `db:"pay_rate" json:"payRate"`
	PayType         string     `db:"pay_type" json:"payType"`
	EmergencyName   string     `db:"emergency_name" json:"emergencyName"`
	EmergencyPhone  string     `db:"emergency_phone" json:"emergencyPhone"`

	// Display columns returned by the list and get procedures.
	OwnerName string `db:"owner_name" json:"ownerName"`
	TeamName  string `db:"team_name" json:"teamName"`
	AgentName string `db:"agent_name" json:"agentName"`
}

// SaveArgs returns the 33 positional parameters of sp_driver_save in order.
// DriverID 0 asks the procedure to insert.
func (d *Driver) SaveArgs(updatedBy string) []interface{} {
	return []interface{}{
		d.ID,
		d.Code,
		d.FirstName,
		d.MiddleName,
		d.LastName,
		d.Status,
		d.Address1,
		d.Address2,
		d.City,
		d.State,
		d.Zip,
		d.Country,
		d.HomePhone,
		d.CellPhone,
		d.Email,
		d.BirthDate,
		d.TaxID,
		d.LicenseNumber,
		d.LicenseState,
		d.LicenseClass,
		d.LicenseExpires,
		d.MedicalExpires,
		d.HireDate,
		d.TerminationDate,
		d.DriverType,
		nullableID(d.OwnerID),
		nullableID(d.TeamID),
		nullableID(d.AgentID),
		d.PayRate,
		d.PayType,
		d.EmergencyName,
		d.EmergencyPhone,
		updatedBy,
	}
}

func (d Driver) FullName() string {
	name := d.FirstName
	if d.MiddleName != "" {
		name += " " + d.MiddleName
	}
	return name + " " + d.LastName
}

func (d Driver) RowID() int64 { return d.ID }

func (d Driver) Cells() []string {
	return []string{
		d.Code,
		d.FullName(),
		d.Status,
		d.DriverType,
		d.CellPhone,
		d.TeamName,
		formatDate(d.LicenseExpires),
		formatDate(d.MedicalExpires),
	}
}

// DriverColumns are the headers matching Driver.Cells.
var DriverColumns = []string{"Code", "Name", "Status", "Type", "Cell phone", "Team", "License expires", "Medical expires"}

// nullableID maps the "none selected" zero value to NULL for optional
// foreign keys.
func nullableID(id int64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

