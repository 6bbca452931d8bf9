package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"backoffice/src/api/controllers"
	"backoffice/src/models"
	"backoffice/src/schemas"
	"backoffice/src/utils"
	"backoffice/src/utils/render"
)

// Maintenance describes one entity maintenance screen. The list, form, save
// and delete handlers are shared; only the calls differ per entity.
type Maintenance struct {
	Path       string
	Entity     string
	Title      string
	Singular   string
	ViewPerm   string
	EditPerm   string
	Columns    []string
	SubRecords bool
	ExportURL  string

	newForm func() schemas.Form
	list    func(ctx context.Context, c *controllers.Controller, q schemas.ListQuery) ([]schemas.Row, error)
	get     func(ctx context.Context, c *controllers.Controller, id int64) (schemas.Form, error)
	save    func(ctx context.Context, c *controllers.Controller, form schemas.Form, user string) (int64, error)
	remove  func(ctx context.Context, c *controllers.Controller, id int64, user string) error
	links   func(id int64) []render.Link
}

func rows[T schemas.Row](items []T, err error) ([]schemas.Row, error) {
	if err != nil {
		return nil, err
	}
	out := make([]schemas.Row, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out, nil
}

func form[T schemas.Form](f T, err error) (schemas.Form, error) {
	if err != nil {
		return nil, err
	}
	return f, nil
}

var Drivers = &Maintenance{
	Path:       "/drivers",
	Entity:     utils.EntityDriver,
	Title:      "Drivers",
	Singular:   "Driver",
	ViewPerm:   utils.PermDriverView,
	EditPerm:   utils.PermDriverEdit,
	Columns:    models.DriverColumns,
	SubRecords: true,
	ExportURL:  "/drivers/export",
	newForm:    func() schemas.Form { return &schemas.DriverForm{Status: "A"} },
	list: func(ctx context.Context, c *controllers.Controller, q schemas.ListQuery) ([]schemas.Row, error) {
		return rows(c.ListDrivers(ctx, q))
	},
	get: func(ctx context.Context, c *controllers.Controller, id int64) (schemas.Form, error) {
		return form(c.GetDriver(ctx, id))
	},
	save: func(ctx context.Context, c *controllers.Controller, f schemas.Form, user string) (int64, error) {
		return c.SaveDriver(ctx, f.(*schemas.DriverForm), user)
	},
	remove: func(ctx context.Context, c *controllers.Controller, id int64, user string) error {
		return c.DeleteDriver(ctx, id, user)
	},
}

var Agents = &Maintenance{
	Path:       "/agents",
	Entity:     utils.EntityAgent,
	Title:      "Agents",
	Singular:   "Agent",
	ViewPerm:   utils.PermAgentView,
	EditPerm:   utils.PermAgentEdit,
	Columns:    models.AgentColumns,
	SubRecords: true,
	newForm:    func() schemas.Form { return &schemas.AgentForm{Status: "A"} },
	list: func(ctx context.Context, c *controllers.Controller, q schemas.ListQuery) ([]schemas.Row, error) {
		return rows(c.ListAgents(ctx, q))
	},
	get: func(ctx context.Context, c *controllers.Controller, id int64) (schemas.Form, error) {
		return form(c.GetAgent(ctx, id))
	},
	save: func(ctx context.Context, c *controllers.Controller, f schemas.Form, user string) (int64, error) {
		return c.SaveAgent(ctx, f.(*schemas.AgentForm), user)
	},
	remove: func(ctx context.Context, c *controllers.Controller, id int64, user string) error {
		return c.DeleteAgent(ctx, id, user)
	},
}

var Owners = &Maintenance{
	Path:       "/owners",
	Entity:     utils.EntityOwner,
	Title:      "Owners",
	Singular:   "Owner",
	ViewPerm:   utils.PermOwnerView,
	EditPerm:   utils.PermOwnerEdit,
	Columns:    models.OwnerColumns,
	SubRecords: true,
	newForm:    func() schemas.Form { return &schemas.OwnerForm{Status: "A"} },
	list: func(ctx context.Context, c *controllers.Controller, q schemas.ListQuery) ([]schemas.Row, error) {
		return rows(c.ListOwners(ctx, q))
	},
	get: func(ctx context.Context, c *controllers.Controller, id int64) (schemas.Form, error) {
		return form(c.GetOwner(ctx, id))
	},
	save: func(ctx context.Context, c *controllers.Controller, f schemas.Form, user string) (int64, error) {
		return c.SaveOwner(ctx, f.(*schemas.OwnerForm), user)
	},
	remove: func(ctx context.Context, c *controllers.Controller, id int64, user string) error {
		return c.DeleteOwner(ctx, id, user)
	},
}

var Teams = &Maintenance{
	Path:       "/teams",
	Entity:     utils.EntityTeam,
	Title:      "Teams",
	Singular:   "Team",
	ViewPerm:   utils.PermTeamView,
	EditPerm:   utils.PermTeamEdit,
	Columns:    models.TeamColumns,
	SubRecords: true,
	newForm:    func() schemas.Form { return &schemas.TeamForm{Status: "A"} },
	list: func(ctx context.Context, c *controllers.Controller, q schemas.ListQuery) ([]schemas.Row, error) {
		return rows(c.ListTeams(ctx, q))
	},
	get: func(ctx context.Context, c *controllers.Controller, id int64) (schemas.Form, error) {
		return form(c.GetTeam(ctx, id))
	},
	save: func(ctx context.Context, c *controllers.Controller, f schemas.Form, user string) (int64, error) {
		return c.SaveTeam(ctx, f.(*schemas.TeamForm), user)
	},
	remove: func(ctx context.Context, c *controllers.Controller, id int64, user string) error {
		return c.DeleteTeam(ctx, id, user)
	},
	links: func(id int64) []render.Link {
		return []render.Link{{Title: "Members", URL: fmt.Sprintf("/teams/%d/members", id)}}
	},
}

// Maintenances lists every entity screen in menu order.
var Maintenances = []*Maintenance{Drivers, Teams, Agents, Owners}

func (m *Maintenance) formView(r *http.Request, f schemas.Form, fields []schemas.FormField) render.FormView {
	id := f.EntityID()
	title := "New " + m.Singular
	if id != 0 {
		title = m.Singular + " " + strconv.FormatInt(id, 10)
	}
	view := render.FormView{
		Title:      title,
		BasePath:   m.Path,
		ID:         id,
		Fields:     fields,
		CanEdit:    can(r, m.EditPerm),
		SubRecords: m.SubRecords,
	}
	if id != 0 && m.links != nil {
		view.Extra = m.links(id)
	}
	return view
}

// List renders the list page of the entity.
func (h *Handler) List(m *Maintenance) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := h.context(r)
		defer cancel()

		c, _, err := h.controller(ctx)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		query := schemas.ListQueryFromValues(r.URL.Query())
		items, err := m.list(ctx, c, query)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		view := render.ListView{
			Title:    m.Title,
			BasePath: m.Path,
			Columns:  m.Columns,
			Query:    query,
			CanEdit:  can(r, m.EditPerm),
			Rows:     make([]render.ListRow, 0, len(items)),
		}
		if m.ExportURL != "" && can(r, utils.PermDriverExport) {
			view.ExportURL = m.ExportURL
		}
		for _, item := range items {
			view.Rows = append(view.Rows, render.ListRow{ID: item.RowID(), Cells: item.Cells()})
		}
		p := h.page(r, m.Title)
		p.Data = view
		h.html(w, r, http.StatusOK, "list", p)
	}
}

// Data returns the list rows as JSON.
func (h *Handler) Data(m *Maintenance) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := h.context(r)
		defer cancel()

		c, _, err := h.controller(ctx)
		if err != nil {
			h.HandleErrors(w, r, err)
			return
		}
		items, err := m.list(ctx, c, schemas.ListQueryFromValues(r.URL.Query()))
		if err != nil {
			h.HandleErrors(w, r, err)
			return
		}
		h.respond(w, r, schemas.JSONResult{Success: true, Data: items}, http.StatusOK)
	}
}

func (h *Handler) New(m *Maintenance) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.showForm(w, r, m, m.newForm(), http.StatusOK, nil)
	}
}

func (h *Handler) Edit(m *Maintenance) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := h.context(r)
		defer cancel()

		id, err := idParam(r, "id")
		if err != nil {
			h.fail(w, r, err)
			return
		}
		c, _, err := h.controller(ctx)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		f, err := m.get(ctx, c, id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		if utils.WantsJSON(r) {
			h.respond(w, r, schemas.JSONResult{Success: true, ID: id, Data: f}, http.StatusOK)
			return
		}
		h.showForm(w, r, m, f, http.StatusOK, nil)
	}
}

// showForm renders the form page. When err is set the form is shown again
// with the error message and the per field messages.
func (h *Handler) showForm(w http.ResponseWriter, r *http.Request, m *Maintenance, f schemas.Form, status int, err error) {
	ctx, cancel := h.context(r)
	defer cancel()

	c, _, cerr := h.controller(ctx)
	if cerr != nil {
		h.fail(w, r, cerr)
		return
	}
	fields, lerr := c.FillOptions(ctx, f.Fields())
	if lerr != nil {
		h.fail(w, r, lerr)
		return
	}

	p := h.page(r, m.Singular)
	if err != nil {
		status, p.Error = classify(r, err)
		fields = schemas.ApplyErrors(fields, err)
	} else if r.URL.Query().Get("saved") == "1" {
		p.Flash = m.Singular + " saved."
	}
	p.Data = m.formView(r, f, fields)
	h.html(w, r, status, "form", p)
}

func (h *Handler) Save(m *Maintenance) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := h.context(r)
		defer cancel()

		if err := r.ParseForm(); err != nil {
			h.fail(w, r, utils.BadRequest("Invalid form"))
			return
		}
		f := m.newForm()
		err := schemas.Parse(f, r.PostForm)
		var id int64
		if err == nil {
			var c *controllers.Controller
			c, _, err = h.controller(ctx)
			if err == nil {
				id, err = m.save(ctx, c, f, sessionUser(r))
			}
		}

		if utils.WantsJSON(r) {
			if err != nil {
				h.HandleErrors(w, r, err)
				return
			}
			h.respond(w, r, schemas.JSONResult{Success: true, ID: id, Message: m.Singular + " saved"}, http.StatusOK)
			return
		}
		if err != nil {
			h.showForm(w, r, m, f, http.StatusOK, err)
			return
		}
		http.Redirect(w, r, fmt.Sprintf("%s/%d?saved=1", m.Path, id), http.StatusSeeOther)
	}
}

func (h *Handler) Delete(m *Maintenance) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := h.context(r)
		defer cancel()

		id, err := idParam(r, "id")
		if err == nil {
			var c *controllers.Controller
			c, _, err = h.controller(ctx)
			if err == nil {
				err = m.remove(ctx, c, id, sessionUser(r))
			}
		}

		if !utils.WantsJSON(r) && err == nil {
			http.Redirect(w, r, m.Path, http.StatusSeeOther)
			return
		}
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.respond(w, r, schemas.JSONResult{Success: true, ID: id, Message: m.Singular + " deleted"}, http.StatusOK)
	}
}
