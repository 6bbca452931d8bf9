package models

import "time"

// Address, Contact and Comment hang off any maintained entity. EntityType is
// one of the utils.Entity* constants.
type Address struct {
	ID          int64  `db:"address_id" json:"id"`
	EntityType  string `db:"entity_type" json:"entityType"`
	EntityID    int64  `db:"entity_id" json:"entityId"`
	AddressType string `db:"address_type" json:"addressType"`
	Line1       string `db:"line1" json:"line1"`
	Line2       string `db:"line2" json:"line2"`
	City        string `db:"city" json:"city"`
	State       string `db:"state" json:"state"`
	Zip         string `db:"zip" json:"zip"`
	Country     string `db:"country" json:"country"`
}

func (a *Address) SaveArgs(updatedBy string) []interface{} {
	return []interface{}{a.ID, a.EntityType, a.EntityID, a.AddressType, a.Line1, a.Line2, a.City, a.State, a.Zip, a.Country, updatedBy}
}

type Contact struct {
	ID         int64  `db:"contact_id" json:"id"`
	EntityType string `db:"entity_type" json:"entityType"`
	EntityID   int64  `db:"entity_id" json:"entityId"`
	Name       string `db:"contact_name" json:"name"`
	Title      string `db:"title" json:"title"`
	Phone      string `db:"phone" json:"phone"`
	Email      string `db:"email" json:"email"`
	IsPrimary  bool   `db:"is_primary" json:"isPrimary"`
}

func (c *Contact) SaveArgs(updatedBy string) []interface{} {
	return []interface{}{c.ID, c.EntityType, c.EntityID, c.Name, c.Title, c.Phone, c.Email, c.IsPrimary, updatedBy}
}

type Comment struct {
	ID         int64     `db:"comment_id" json:"id"`
	EntityType string    `db:"entity_type" json:"entityType"`
	EntityID   int64     `db:"entity_id" json:"entityId"`
	Body       string    `db:"body" json:"body"`
	CreatedBy  string    `db:"created_by" json:"createdBy"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

func (c *Comment) SaveArgs(updatedBy string) []interface{} {
	return []interface{}{c.ID, c.EntityType, c.EntityID, c.Body, updatedBy}
}

// LookupItem is one option of a dropdown list served by sp_lookup.
type LookupItem struct {
	Value string `db:"value" json:"value"`
	Text  string `db:"text" json:"text"`
}
