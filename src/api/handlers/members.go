package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"backoffice/src/schemas"
	"backoffice/src/utils"
	"backoffice/src/utils/render"
)

func memberFields(form *schemas.TeamMemberForm) []schemas.FormField {
	role := form.Role
	if role == "" {
		role = "CO"
	}
	driver := ""
	if form.DriverID != 0 {
		driver = strconv.FormatInt(form.DriverID, 10)
	}
	return []schemas.FormField{
		{Name: "driver_id", Label: "Driver", Type: "select", Lookup: "drivers", Value: driver, Required: true},
		{Name: "role", Label: "Role", Type: "select", Value: role, Required: true, Options: []schemas.FieldOption{
			{Value: "LEAD", Text: "Lead driver"},
			{Value: "CO", Text: "Co-driver"},
		}},
	}
}

func (h *Handler) TeamMembers(w http.ResponseWriter, r *http.Request) {
	h.showMembers(w, r, &schemas.TeamMemberForm{}, nil)
}

func (h *Handler) showMembers(w http.ResponseWriter, r *http.Request, form *schemas.TeamMemberForm, formErr error) {
	ctx, cancel := h.context(r)
	defer cancel()

	teamID, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, _, err := h.controller(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	members, err := c.TeamMembers(ctx, teamID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if utils.WantsJSON(r) {
		h.respond(w, r, schemas.JSONResult{Success: true, ID: teamID, Data: members}, http.StatusOK)
		return
	}

	team, err := c.GetTeam(ctx, teamID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	view := render.MembersView{
		TeamID:   teamID,
		TeamName: team.Name,
		Members:  members,
		CanEdit:  can(r, utils.PermTeamEdit),
	}
	status := http.StatusOK
	p := h.page(r, "Team members")
	if view.CanEdit {
		fields, err := c.FillOptions(ctx, memberFields(form))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		if formErr != nil {
			status, p.Error = classify(r, formErr)
			fields = schemas.ApplyErrors(fields, formErr)
		}
		view.Fields = fields
	}
	p.Data = view
	h.html(w, r, status, "members", p)
}

func (h *Handler) AddTeamMember(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	teamID, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, utils.BadRequest("Invalid form"))
		return
	}
	var form schemas.TeamMemberForm
	err = schemas.Parse(&form, r.PostForm)
	if err == nil {
		c, _, cerr := h.controller(ctx)
		if cerr != nil {
			h.fail(w, r, cerr)
			return
		}
		err = c.AddTeamMember(ctx, teamID, &form, sessionUser(r))
	}

	if utils.WantsJSON(r) {
		if err != nil {
			h.HandleErrors(w, r, err)
			return
		}
		h.respond(w, r, schemas.JSONResult{Success: true, ID: teamID, Message: "Member added"}, http.StatusOK)
		return
	}
	if err != nil {
		h.showMembers(w, r, &form, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/teams/%d/members", teamID), http.StatusSeeOther)
}

func (h *Handler) RemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	teamID, err := idParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	driverID, err := idParam(r, "driverID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, _, err := h.controller(ctx)
	if err == nil {
		err = c.RemoveTeamMember(ctx, teamID, driverID, sessionUser(r))
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if utils.WantsJSON(r) {
		h.respond(w, r, schemas.JSONResult{Success: true, ID: teamID, Message: "Member removed"}, http.StatusOK)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/teams/%d/members", teamID), http.StatusSeeOther)
}
