package repositories

import (
	"context"

	"backoffice/src/models"
	"backoffice/src/procedures"
)

// SubRecordRepository serves the addresses, contacts and comments attached
// to any maintained entity. All three share the same procedure shapes:
// list(entity_type, entity_id), save(..., updated_by) and
// delete(id, entity_type, entity_id, user). Deletes are scoped to the owning
// entity so a record attached elsewhere is reported as not found.
type SubRecordRepository interface {
	Addresses(ctx context.Context, entityType string, entityID int64) ([]models.Address, error)
	SaveAddress(ctx context.Context, address *models.Address, updatedBy string) (int64, error)
	DeleteAddress(ctx context.Context, entityType string, entityID, id int64, deletedBy string) error

	Contacts(ctx context.Context, entityType string, entityID int64) ([]models.Contact, error)
	SaveContact(ctx context.Context, contact *models.Contact, updatedBy string) (int64, error)
	DeleteContact(ctx context.Context, entityType string, entityID, id int64, deletedBy string) error

	Comments(ctx context.Context, entityType string, entityID int64) ([]models.Comment, error)
	SaveComment(ctx context.Context, comment *models.Comment, updatedBy string) (int64, error)
	DeleteComment(ctx context.Context, entityType string, entityID, id int64, deletedBy string) error
}

type subRecordRepo struct {
	caller procedures.Caller
}

func NewSubRecordRepository(caller procedures.Caller) SubRecordRepository {
	return &subRecordRepo{caller: caller}
}

func (r *subRecordRepo) Addresses(ctx context.Context, entityType string, entityID int64) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.caller.Select(ctx, &addresses, procedures.AddressList, entityType, entityID); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *subRecordRepo) SaveAddress(ctx context.Context, address *models.Address, updatedBy string) (int64, error) {
	return r.save(ctx, procedures.AddressSave, address.SaveArgs(updatedBy))
}

func (r *subRecordRepo) DeleteAddress(ctx context.Context, entityType string, entityID, id int64, deletedBy string) error {
	_, err := r.caller.Save(ctx, procedures.AddressDelete, id, entityType, entityID, deletedBy)
	return err
}

func (r *subRecordRepo) Contacts(ctx context.Context, entityType string, entityID int64) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.caller.Select(ctx, &contacts, procedures.ContactList, entityType, entityID); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *subRecordRepo) SaveContact(ctx context.Context, contact *models.Contact, updatedBy string) (int64, error) {
	return r.save(ctx, procedures.ContactSave, contact.SaveArgs(updatedBy))
}

func (r *subRecordRepo) DeleteContact(ctx context.Context, entityType string, entityID, id int64, deletedBy string) error {
	_, err := r.caller.Save(ctx, procedures.ContactDelete, id, entityType, entityID, deletedBy)
	return err
}

func (r *subRecordRepo) Comments(ctx context.Context, entityType string, entityID int64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.caller.Select(ctx, &comments, procedures.CommentList, entityType, entityID); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *subRecordRepo) SaveComment(ctx context.Context, comment *models.Comment, updatedBy string) (int64, error) {
	return r.save(ctx, procedures.CommentSave, comment.SaveArgs(updatedBy))
}

func (r *subRecordRepo) DeleteComment(ctx context.Context, entityType string, entityID, id int64, deletedBy string) error {
	_, err := r.caller.Save(ctx, procedures.CommentDelete, id, entityType, entityID, deletedBy)
	return err
}

func (r *subRecordRepo) save(ctx context.Context, name string, args []interface{}) (int64, error) {
	result, err := r.caller.Save(ctx, name, args...)
	if err != nil {
		return 0, err
	}
	return result.ID, nil
}
