package schemas

import (
	"net/url"

	"backoffice/src/models"
)

type TeamForm struct {
	ID           int64  `form:"id" json:"id"`
	Code         string `form:"code" json:"code" validate:"required,max=20"`
	Name         string `form:"name" json:"name" validate:"required,max=60"`
	Dispatcher   string `form:"dispatcher" json:"dispatcher" validate:"max=60"`
	LeadDriverID int64  `form:"lead_driver_id" json:"leadDriverId" validate:"gte=0"`
	Status       string `form:"status" json:"status" validate:"required,oneof=A I"`
}

func (f *TeamForm) Bind(values url.Values) error {
	b := newBinder(values)
	f.ID = b.int64("id")
	f.Code = b.upper("code")
	f.Name = b.str("name")
	f.Dispatcher = b.str("dispatcher")
	f.LeadDriverID = b.int64("lead_driver_id")
	f.Status = b.upper("status")
	return b.err()
}

func (f *TeamForm) EntityID() int64 { return f.ID }

func (f *TeamForm) Fields() []FormField {
	return []FormField{
		{Name: "id", Type: "hidden", Value: formatID(f.ID)},
		{Name: "code", Label: "Team code", Type: "text", Value: f.Code, Required: true},
		{Name: "name", Label: "Name", Type: "text", Value: f.Name, Required: true},
		{Name: "dispatcher", Label: "Dispatcher", Type: "text", Value: f.Dispatcher},
		{Name: "lead_driver_id", Label: "Lead driver", Type: "select", Lookup: "drivers", Value: formatID(f.LeadDriverID)},
		{Name: "status", Label: "Status", Type: "select", Lookup: "entity_status", Value: f.Status, Required: true},
	}
}

func (f *TeamForm) ToModel() *models.Team {
	return &models.Team{
		ID:           f.ID,
		Code:         f.Code,
		Name:         f.Name,
		Dispatcher:   f.Dispatcher,
		LeadDriverID: f.LeadDriverID,
		Status:       f.Status,
	}
}

func TeamFormFromModel(t *models.Team) *TeamForm {
	return &TeamForm{
		ID:           t.ID,
		Code:         t.Code,
		Name:         t.Name,
		Dispatcher:   t.Dispatcher,
		LeadDriverID: t.LeadDriverID,
		Status:       t.Status,
	}
}

type TeamMemberForm struct {
	DriverID int64  `form:"driver_id" json:"driverId" validate:"required,gt=0"`
	Role     string `form:"role" json:"role" validate:"required,oneof=LEAD CO"`
}

func (f *TeamMemberForm) Bind(values url.Values) error {
	b := newBinder(values)
	f.DriverID = b.int64("driver_id")
	f.Role = b.upper("role")
	return b.err()
}
