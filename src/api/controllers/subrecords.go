package controllers

import (
	"context"

	"backoffice/src/models"
	"backoffice/src/schemas"
)

type SubRecordsControllerI interface {
	Addresses(ctx context.Context, entityType string, entityID int64) ([]models.Address, error)
	SaveAddress(ctx context.Context, entityType string, entityID int64, form *schemas.AddressForm, user string) (int64, error)
	DeleteAddress(ctx context.Context, entityType string, entityID, id int64, user string) error
	Contacts(ctx context.Context, entityType string, entityID int64) ([]models.Contact, error)
	SaveContact(ctx context.Context, entityType string, entityID int64, form *schemas.ContactForm, user string) (int64, error)
	DeleteContact(ctx context.Context, entityType string, entityID, id int64, user string) error
	Comments(ctx context.Context, entityType string, entityID int64) ([]models.Comment, error)
	SaveComment(ctx context.Context, entityType string, entityID int64, form *schemas.CommentForm, user string) (int64, error)
	DeleteComment(ctx context.Context, entityType string, entityID, id int64, user string) error
}

func (c *Controller) Addresses(ctx context.Context, entityType string, entityID int64) ([]models.Address, error) {
	addresses, err := c.SubRecords.Addresses(ctx, entityType, entityID)
	return addresses, translate(err, "")
}

func (c *Controller) SaveAddress(ctx context.Context, entityType string, entityID int64, form *schemas.AddressForm, user string) (int64, error) {
	if err := schemas.Validate(form); err != nil {
		return 0, err
	}
	id, err := c.SubRecords.SaveAddress(ctx, form.ToModel(entityType, entityID), user)
	return id, translate(err, "Address not found")
}

func (c *Controller) DeleteAddress(ctx context.Context, entityType string, entityID, id int64, user string) error {
	return translate(c.SubRecords.DeleteAddress(ctx, entityType, entityID, id, user), "Address not found")
}

func (c *Controller) Contacts(ctx context.Context, entityType string, entityID int64) ([]models.Contact, error) {
	contacts, err := c.SubRecords.Contacts(ctx, entityType, entityID)
	return contacts, translate(err, "")
}

func (c *Controller) SaveContact(ctx context.Context, entityType string, entityID int64, form *schemas.ContactForm, user string) (int64, error) {
	if err := schemas.Validate(form); err != nil {
		return 0, err
	}
	id, err := c.SubRecords.SaveContact(ctx, form.ToModel(entityType, entityID), user)
	return id, translate(err, "Contact not found")
}

func (c *Controller) DeleteContact(ctx context.Context, entityType string, entityID, id int64, user string) error {
	return translate(c.SubRecords.DeleteContact(ctx, entityType, entityID, id, user), "Contact not found")
}

func (c *Controller) Comments(ctx context.Context, entityType string, entityID int64) ([]models.Comment, error) {
	comments, err := c.SubRecords.Comments(ctx, entityType, entityID)
	return comments, translate(err, "")
}

func (c *Controller) SaveComment(ctx context.Context, entityType string, entityID int64, form *schemas.CommentForm, user string) (int64, error) {
	if err := schemas.Validate(form); err != nil {
		return 0, err
	}
	id, err := c.SubRecords.SaveComment(ctx, form.ToModel(entityType, entityID), user)
	return id, translate(err, "Comment not found")
}

func (c *Controller) DeleteComment(ctx context.Context, entityType string, entityID, id int64, user string) error {
	return translate(c.SubRecords.DeleteComment(ctx, entityType, entityID, id, user), "Comment not found")
}
