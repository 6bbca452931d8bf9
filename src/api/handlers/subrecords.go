package handlers

import (
	"context"
	"net/http"

	"backoffice/src/api/controllers"
	"backoffice/src/schemas"
	"backoffice/src/utils"
)

// SubRecordKinds are the record types every maintained entity carries.
var SubRecordKinds = []string{"addresses", "contacts", "comments"}

// Sub-record endpoints always answer JSON; the form page loads them on the
// fly.

func (h *Handler) SubRecordList(m *Maintenance, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := h.context(r)
		defer cancel()

		entityID, err := idParam(r, "id")
		if err != nil {
			h.HandleErrors(w, r, err)
			return
		}
		c, _, err := h.controller(ctx)
		if err != nil {
			h.HandleErrors(w, r, err)
			return
		}

		var data interface{}
		switch kind {
		case "addresses":
			data, err = c.Addresses(ctx, m.Entity, entityID)
		case "contacts":
			data, err = c.Contacts(ctx, m.Entity, entityID)
		case "comments":
			data, err = c.Comments(ctx, m.Entity, entityID)
		default:
			err = utils.NotFound("Unknown record type " + kind)
		}
		if err != nil {
			h.HandleErrors(w, r, err)
			return
		}
		h.respond(w, r, schemas.JSONResult{Success: true, ID: entityID, Data: data}, http.StatusOK)
	}
}

func (h *Handler) SubRecordSave(m *Maintenance, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := h.context(r)
		defer cancel()

		entityID, err := idParam(r, "id")
		if err != nil {
			h.HandleErrors(w, r, err)
			return
		}
		if err := r.ParseForm(); err != nil {
			h.HandleErrors(w, r, utils.BadRequest("Invalid form"))
			return
		}
		c, _, err := h.controller(ctx)
		if err != nil {
			h.HandleErrors(w, r, err)
			return
		}

		id, err := saveSubRecord(ctx, c, m.Entity, entityID, kind, r, sessionUser(r))
		if err != nil {
			h.HandleErrors(w, r, err)
			return
		}
		h.respond(w, r, schemas.JSONResult{Success: true, ID: id, Message: "Saved"}, http.StatusOK)
	}
}

func saveSubRecord(ctx context.Context, c *controllers.Controller, entity string, entityID int64, kind string, r *http.Request, user string) (int64, error) {
	switch kind {
	case "addresses":
		var form schemas.AddressForm
		if err := schemas.Parse(&form, r.PostForm); err != nil {
			return 0, err
		}
		return c.SaveAddress(ctx, entity, entityID, &form, user)
	case "contacts":
		var form schemas.ContactForm
		if err := schemas.Parse(&form, r.PostForm); err != nil {
			return 0, err
		}
		return c.SaveContact(ctx, entity, entityID, &form, user)
	case "comments":
		var form schemas.CommentForm
		if err := schemas.Parse(&form, r.PostForm); err != nil {
			return 0, err
		}
		return c.SaveComment(ctx, entity, entityID, &form, user)
	}
	return 0, utils.NotFound("Unknown record type " + kind)
}

func (h *Handler) SubRecordDelete(m *Maintenance, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := h.context(r)
		defer cancel()

		entityID, err := idParam(r, "id")
		if err != nil {
			h.HandleErrors(w, r, err)
			return
		}
		subID, err := idParam(r, "subID")
		if err != nil {
			h.HandleErrors(w, r, err)
			return
		}
		c, _, err := h.controller(ctx)
		if err != nil {
			h.HandleErrors(w, r, err)
			return
		}

		user := sessionUser(r)
		switch kind {
		case "addresses":
			err = c.DeleteAddress(ctx, m.Entity, entityID, subID, user)
		case "contacts":
			err = c.DeleteContact(ctx, m.Entity, entityID, subID, user)
		case "comments":
			err = c.DeleteComment(ctx, m.Entity, entityID, subID, user)
		default:
			err = utils.NotFound("Unknown record type " + kind)
		}
		if err != nil {
			h.HandleErrors(w, r, err)
			return
		}
		h.respond(w, r, schemas.JSONResult{Success: true, ID: subID, Message: "Deleted"}, http.StatusOK)
	}
}
