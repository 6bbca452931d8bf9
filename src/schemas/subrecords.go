package schemas

import (
	"net/url"

	"backoffice/src/models"
)

// Sub-record forms carry only what the user types. The owning entity comes
// from the URL and is set by the handler.

type AddressForm struct {
	ID          int64  `form:"id" json:"id"`
	AddressType string `form:"address_type" json:"addressType" validate:"required,max=20"`
	Line1       string `form:"line1" json:"line1" validate:"required,max=100"`
	Line2       string `form:"line2" json:"line2" validate:"max=100"`
	City        string `form:"city" json:"city" validate:"required,max=50"`
	State       string `form:"state" json:"state" validate:"omitempty,len=2"`
	Zip         string `form:"zip" json:"zip" validate:"max=10"`
	Country     string `form:"country" json:"country" validate:"omitempty,len=2"`
}

func (f *AddressForm) Bind(values url.Values) error {
	b := newBinder(values)
	f.ID = b.int64("id")
	f.AddressType = b.upper("address_type")
	f.Line1 = b.str("line1")
	f.Line2 = b.str("line2")
	f.City = b.str("city")
	f.State = b.upper("state")
	f.Zip = b.str("zip")
	f.Country = b.upper("country")
	return b.err()
}

func (f *AddressForm) ToModel(entityType string, entityID int64) *models.Address {
	return &models.Address{
		ID:          f.ID,
		EntityType:  entityType,
		EntityID:    entityID,
		AddressType: f.AddressType,
		Line1:       f.Line1,
		Line2:       f.Line2,
		City:        f.City,
		State:       f.State,
		Zip:         f.Zip,
		Country:     f.Country,
	}
}

type ContactForm struct {
	ID        int64  `form:"id" json:"id"`
	Name      string `form:"name" json:"name" validate:"required,max=80"`
	Title     string `form:"title" json:"title" validate:"max=50"`
	Phone     string `form:"phone" json:"phone" validate:"max=20"`
	Email     string `form:"email" json:"email" validate:"omitempty,email,max=100"`
	IsPrimary bool   `form:"is_primary" json:"isPrimary"`
}

func (f *ContactForm) Bind(values url.Values) error {
	b := newBinder(values)
	f.ID = b.int64("id")
	f.Name = b.str("name")
	f.Title = b.str("title")
	f.Phone = b.str("phone")
	f.Email = b.str("email")
	f.IsPrimary = b.bool("is_primary")
	return b.err()
}

func (f *ContactForm) ToModel(entityType string, entityID int64) *models.Contact {
	return &models.Contact{
		ID:         f.ID,
		EntityType: entityType,
		EntityID:   entityID,
		Name:       f.Name,
		Title:      f.Title,
		Phone:      f.Phone,
		Email:      f.Email,
		IsPrimary:  f.IsPrimary,
	}
}

type CommentForm struct {
	ID   int64  `form:"id" json:"id"`
	Body string `form:"body" json:"body" validate:"required,max=2000"`
}

func (f *CommentForm) Bind(values url.Values) error {
	b := newBinder(values)
	f.ID = b.int64("id")
	f.Body = b.str("body")
	return b.err()
}

func (f *CommentForm) ToModel(entityType string, entityID int64) *models.Comment {
	return &models.Comment{
		ID:         f.ID,
		EntityType: entityType,
		EntityID:   entityID,
		Body:       f.Body,
	}
}
