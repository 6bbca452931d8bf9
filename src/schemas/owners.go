package schemas

import (
	"net/url"

	"backoffice/src/models"
)

type OwnerForm struct {
	ID       int64  `form:"id" json:"id"`
	Code     string `form:"code" json:"code" validate:"required,max=20"`
	Name     string `form:"name" json:"name" validate:"required,max=80"`
	Company  string `form:"company" json:"company" validate:"max=80"`
	TaxID    string `form:"tax_id" json:"-" validate:"max=20"`
	Address1 string `form:"address1" json:"address1" validate:"max=100"`
	City     string `form:"city" json:"city" validate:"max=50"`
	State    string `form:"state" json:"state" validate:"omitempty,len=2"`
	Zip      string `form:"zip" json:"zip" validate:"max=10"`
	Phone    string `form:"phone" json:"phone" validate:"max=20"`
	Email    string `form:"email" json:"email" validate:"omitempty,email,max=100"`
	Status   string `form:"status" json:"status" validate:"required,oneof=A I"`
}

func (f *OwnerForm) Bind(values url.Values) error {
	b := newBinder(values)
	f.ID = b.int64("id")
	f.Code = b.upper("code")
	f.Name = b.str("name")
	f.Company = b.str("company")
	f.TaxID = b.str("tax_id")
	f.Address1 = b.str("address1")
	f.City = b.str("city")
	f.State = b.upper("state")
	f.Zip = b.str("zip")
	f.Phone = b.str("phone")
	f.Email = b.str("email")
	f.Status = b.upper("status")
	return b.err()
}

func (f *OwnerForm) EntityID() int64 { return f.ID }

func (f *OwnerForm) Fields() []FormField {
	return []FormField{
		{Name: "id", Type: "hidden", Value: formatID(f.ID)},
		{Name: "code", Label: "Owner code", Type: "text", Value: f.Code, Required: true},
		{Name: "name", Label: "Name", Type: "text", Value: f.Name, Required: true},
		{Name: "company", Label: "Company", Type: "text", Value: f.Company},
		{Name: "tax_id", Label: "Tax id", Type: "password", Value: f.TaxID},
		{Name: "address1", Label: "Address", Type: "text", Value: f.Address1},
		{Name: "city", Label: "City", Type: "text", Value: f.City},
		{Name: "state", Label: "State", Type: "select", Lookup: "states", Value: f.State},
		{Name: "zip", Label: "Zip", Type: "text", Value: f.Zip},
		{Name: "phone", Label: "Phone", Type: "tel", Value: f.Phone},
		{Name: "email", Label: "Email", Type: "email", Value: f.Email},
		{Name: "status", Label: "Status", Type: "select", Lookup: "entity_status", Value: f.Status, Required: true},
	}
}

func (f *OwnerForm) ToModel() *models.Owner {
	return &models.Owner{
		ID:       f.ID,
		Code:     f.Code,
		Name:     f.Name,
		Company:  f.Company,
		TaxID:    f.TaxID,
		Address1: f.Address1,
		City:     f.City,
		State:    f.State,
		Zip:      f.Zip,
		Phone:    f.Phone,
		Email:    f.Email,
		Status:   f.Status,
	}
}

func OwnerFormFromModel(o *models.Owner) *OwnerForm {
	return &OwnerForm{
		ID:       o.ID,
		Code:     o.Code,
		Name:     o.Name,
		Company:  o.Company,
		TaxID:    o.TaxID,
		Address1: o.Address1,
		City:     o.City,
		State:    o.State,
		Zip:      o.Zip,
		Phone:    o.Phone,
		Email:    o.Email,
		Status:   o.Status,
	}
}
