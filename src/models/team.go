package models

import "strconv"

type Team struct {
	ID             int64  `db:"team_id" json:"id"`
	Code           string `db:"team_code" json:"code"`
	Name           string `db:"team_name" json:"name"`
	Dispatcher     string `db:"dispatcher" json:"dispatcher"`
	LeadDriverID   int64  `db:"lead_driver_id" json:"leadDriverId"`
	LeadDriverName string `db:"lead_driver_name" json:"leadDriverName"`
	MemberCount    int    `db:"member_count" json:"memberCount"`
	Status         string `db:"status" json:"status"`
}

// SaveArgs returns the positional parameters of sp_team_save.
func (t *Team) SaveArgs(updatedBy string) []interface{} {
	return []interface{}{
		t.ID,
		t.Code,
		t.Name,
		t.Dispatcher,
		nullableID(t.LeadDriverID),
		t.Status,
		updatedBy,
	}
}

func (t Team) RowID() int64 { return t.ID }

func (t Team) Cells() []string {
	return []string{t.Code, t.Name, t.Dispatcher, t.LeadDriverName, strconv.Itoa(t.MemberCount), t.Status}
}

var TeamColumns = []string{"Code", "Name", "Dispatcher", "Lead driver", "Members", "Status"}

type TeamMember struct {
	TeamID     int64  `db:"team_id" json:"teamId"`
	DriverID   int64  `db:"driver_id" json:"driverId"`
	DriverCode string `db:"driver_code" json:"driverCode"`
	DriverName string `db:"driver_name" json:"driverName"`
	Role       string `db:"member_role" json:"role"`
}
