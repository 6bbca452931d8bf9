package schemas

import (
	"net/url"
	"time"

	"backoffice/src/models"
)

type DriverForm struct {
	ID              int64      `form:"id" json:"id"`
	Code            string     `form:"code" json:"code" validate:"required,max=20"`
	FirstName       string     `form:"first_name" json:"firstName" validate:"required,max=50"`
	MiddleName      string     `form:"middle_name" json:"middleName" validate:"max=50"`
	LastName        string     `form:"last_name" json:"lastName" validate:"required,max=50"`
	Status          string     `form:"status" json:"status" validate:"required,oneof=A I T"`
	Address1        string     `form:"address1" json:"address1" validate:"max=100"`
	Address2        string     `form:"address2" json:"address2" validate:"max=100"`
	City            string     `form:"city" json:"city" validate:"max=50"`
	State           string     `form:"state" json:"state" validate:"omitempty,len=2"`
	Zip             string     `form:"zip" json:"zip" validate:"max=10"`
	Country         string     `form:"country" json:"country" validate:"omitempty,len=2"`
	HomePhone       string     `form:"home_phone" json:"homePhone" validate:"max=20"`
	CellPhone       string     `form:"cell_phone" json:"cellPhone" validate:"max=20"`
	Email           string     `form:"email" json:"email" validate:"omitempty,email,max=100"`
	BirthDate       *time.Time `form:"birth_date" json:"birthDate"`
	TaxID           string     `form:"tax_id" json:"-" validate:"max=20"`
	LicenseNumber   string     `form:"license_number" json:"licenseNumber" validate:"max=30"`
	LicenseState    string     `form:"license_state" json:"licenseState" validate:"omitempty,len=2"`
	LicenseClass    string     `form:"license_class" json:"licenseClass" validate:"omitempty,oneof=A B C"`
	LicenseExpires  *time.Time `form:"license_expires" json:"licenseExpires"`
	MedicalExpires  *time.Time `form:"medical_expires" json:"medicalExpires"`
	HireDate        *time.Time `form:"hire_date" json:"hireDate"`
	TerminationDate *time.Time `form:"termination_date" json:"terminationDate" validate:"required_if=Status T"`
	DriverType      string     `form:"driver_type" json:"driverType" validate:"required,oneof=C O L"`
	OwnerID         int64      `form:"owner_id" json:"ownerId" validate:"required_if=DriverType O,gte=0"`
	TeamID          int64      `form:"team_id" json:"teamId" validate:"gte=0"`
	AgentID         int64      `form:"agent_id" json:"agentId" validate:"gte=0"`
	PayRate         float64    `form:"pay_rate" json:"payRate" validate:"gte=0"`
	PayType         string     `form:"pay_type" json:"payType" validate:"omitempty,oneof=M H P F"`
	EmergencyName   string     `form:"emergency_name" json:"emergencyName" validate:"max=80"`
	EmergencyPhone  string     `form:"emergency_phone" json:"emergencyPhone" validate:"max=20"`
}

func (f *DriverForm) Bind(values url.Values) error {
	b := newBinder(values)
	f.ID = b.int64("id")
	f.Code = b.upper("code")
	f.FirstName = b.str("first_name")
	f.MiddleName = b.str("middle_name")
	f.LastName = b.str("last_name")
	f.Status = b.upper("status")
	f.Address1 = b.str("address1")
	f.Address2 = b.str("address2")
	f.City = b.str("city")
	f.State = b.upper("state")
	f.Zip = b.str("zip")
	f.Country = b.upper("country")
	f.HomePhone = b.str("home_phone")
	f.CellPhone = b.str("cell_phone")
	f.Email = b.str("email")
	f.BirthDate = b.date("birth_date")
	f.TaxID = b.str("tax_id")
	f.LicenseNumber = b.upper("license_number")
	f.LicenseState = b.upper("license_state")
	f.LicenseClass = b.upper("license_class")
	f.LicenseExpires = b.date("license_expires")
	f.MedicalExpires = b.date("medical_expires")
	f.HireDate = b.date("hire_date")
	f.TerminationDate = b.date("termination_date")
	f.DriverType = b.upper("driver_type")
	f.OwnerID = b.int64("owner_id")
	f.TeamID = b.int64("team_id")
	f.AgentID = b.int64("agent_id")
	f.PayRate = b.float("pay_rate")
	f.PayType = b.upper("pay_type")
	f.EmergencyName = b.str("emergency_name")
	f.EmergencyPhone = b.str("emergency_phone")
	return b.err()
}

func (f *DriverForm) EntityID() int64 { return f.ID }

func (f *DriverForm) Fields() []FormField {
	return []FormField{
		{Name: "id", Type: "hidden", Value: formatID(f.ID)},
		{Name: "code", Label: "Driver code", Type: "text", Value: f.Code, Required: true},
		{Name: "status", Label: "Status", Type: "select", Lookup: "driver_status", Value: f.Status, Required: true},
		{Name: "first_name", Label: "First name", Type: "text", Value: f.FirstName, Required: true},
		{Name: "middle_name", Label: "Middle name", Type: "text", Value: f.MiddleName},
		{Name: "last_name", Label: "Last name", Type: "text", Value: f.LastName, Required: true},
		{Name: "address1", Label: "Address", Type: "text", Value: f.Address1},
		{Name: "address2", Label: "Address (cont.)", Type: "text", Value: f.Address2},
		{Name: "city", Label: "City", Type: "text", Value: f.City},
		{Name: "state", Label: "State", Type: "select", Lookup: "states", Value: f.State},
		{Name: "zip", Label: "Zip", Type: "text", Value: f.Zip},
		{Name: "country", Label: "Country", Type: "text", Value: f.Country},
		{Name: "home_phone", Label: "Home phone", Type: "tel", Value: f.HomePhone},
		{Name: "cell_phone", Label: "Cell phone", Type: "tel", Value: f.CellPhone},
		{Name: "email", Label: "Email", Type: "email", Value: f.Email},
		{Name: "birth_date", Label: "Birth date", Type: "date", Value: formatDate(f.BirthDate)},
		{Name: "tax_id", Label: "Tax id", Type: "password", Value: f.TaxID},
		{Name: "license_number", Label: "License number", Type: "text", Value: f.LicenseNumber},
		{Name: "license_state", Label: "License state", Type: "select", Lookup: "states", Value: f.LicenseState},
		{Name: "license_class", Label: "License class", Type: "select", Lookup: "license_classes", Value: f.LicenseClass},
		{Name: "license_expires", Label: "License expires", Type: "date", Value: formatDate(f.LicenseExpires)},
		{Name: "medical_expires", Label: "Medical card expires", Type: "date", Value: formatDate(f.MedicalExpires)},
		{Name: "hire_date", Label: "Hire date", Type: "date", Value: formatDate(f.HireDate)},
		{Name: "termination_date", Label: "Termination date", Type: "date", Value: formatDate(f.TerminationDate)},
		{Name: "driver_type", Label: "Driver type", Type: "select", Lookup: "driver_types", Value: f.DriverType, Required: true},
		{Name: "owner_id", Label: "Owner", Type: "select", Lookup: "owners", Value: formatID(f.OwnerID)},
		{Name: "team_id", Label: "Team", Type: "select", Lookup: "teams", Value: formatID(f.TeamID)},
		{Name: "agent_id", Label: "Agent", Type: "select", Lookup: "agents", Value: formatID(f.AgentID)},
		{Name: "pay_rate", Label: "Pay rate", Type: "number", Value: formatFloat(f.PayRate)},
		{Name: "pay_type", Label: "Pay type", Type: "select", Lookup: "pay_types", Value: f.PayType},
		{Name: "emergency_name", Label: "Emergency contact", Type: "text", Value: f.EmergencyName},
		{Name: "emergency_phone", Label: "Emergency phone", Type: "tel", Value: f.EmergencyPhone},
	}
}

func (f *DriverForm) ToModel() *models.Driver {
	return &models.Driver{
		ID:              f.ID,
		Code:            f.Code,
		FirstName:       f.FirstName,
		MiddleName:      f.MiddleName,
		LastName:        f.LastName,
		Status:          f.Status,
		Address1:        f.Address1,
		Address2:        f.Address2,
		City:            f.City,
		State:           f.State,
		Zip:             f.Zip,
		Country:         f.Country,
		HomePhone:       f.HomePhone,
		CellPhone:       f.CellPhone,
		Email:           f.Email,
		BirthDate:       f.BirthDate,
		TaxID:           f.TaxID,
		LicenseNumber:   f.LicenseNumber,
		LicenseState:    f.LicenseState,
		LicenseClass:    f.LicenseClass,
		LicenseExpires:  f.LicenseExpires,
		MedicalExpires:  f.MedicalExpires,
		HireDate:        f.HireDate,
		TerminationDate: f.TerminationDate,
		DriverType:      f.DriverType,
		OwnerID:         f.OwnerID,
		TeamID:          f.TeamID,
		AgentID:         f.AgentID,
		PayRate:         f.PayRate,
		PayType:         f.PayType,
		EmergencyName:   f.EmergencyName,
		EmergencyPhone:  f.EmergencyPhone,
	}
}

func DriverFormFromModel(d *models.Driver) *DriverForm {
	return &DriverForm{
		ID:              d.ID,
		Code:            d.Code,
		FirstName:       d.FirstName,
		MiddleName:      d.MiddleName,
		LastName:        d.LastName,
		Status:          d.Status,
		Address1:        d.Address1,
		Address2:        d.Address2,
		City:            d.City,
		State:           d.State,
		Zip:             d.Zip,
		Country:         d.Country,
		HomePhone:       d.HomePhone,
		CellPhone:       d.CellPhone,
		Email:           d.Email,
		BirthDate:       d.BirthDate,
		TaxID:           d.TaxID,
		LicenseNumber:   d.LicenseNumber,
		LicenseState:    d.LicenseState,
		LicenseClass:    d.LicenseClass,
		LicenseExpires:  d.LicenseExpires,
		MedicalExpires:  d.MedicalExpires,
		HireDate:        d.HireDate,
		TerminationDate: d.TerminationDate,
		DriverType:      d.DriverType,
		OwnerID:         d.OwnerID,
		TeamID:          d.TeamID,
		AgentID:         d.AgentID,
		PayRate:         d.PayRate,
		PayType:         d.PayType,
		EmergencyName:   d.EmergencyName,
		EmergencyPhone:  d.EmergencyPhone,
	}
}
