package procedures

// Stored procedure names. The parameter lists are documented on the
// repository methods that call them.
const (
	CustomerLookup = "sp_customer_lookup"

	UserLogin          = "sp_user_login"
	UserLogout         = "sp_user_logout"
	UserPermissions    = "sp_user_permissions"
	UserChangePassword = "sp_user_change_password"

	DriverList   = "sp_driver_list"
	DriverGet    = "sp_driver_get"
	DriverSave   = "sp_driver_save"
	DriverDelete = "sp_driver_delete"

	AgentList   = "sp_agent_list"
	AgentGet    = "sp_agent_get"
	AgentSave   = "sp_agent_save"
	AgentDelete = "sp_agent_delete"

	OwnerList   = "sp_owner_list"
	OwnerGet    = "sp_owner_get"
	OwnerSave   = "sp_owner_save"
	OwnerDelete = "sp_owner_delete"

	TeamList         = "sp_team_list"
	TeamGet          = "sp_team_get"
	TeamSave         = "sp_team_save"
	TeamDelete       = "sp_team_delete"
	TeamMembers      = "sp_team_members"
	TeamMemberAdd    = "sp_team_member_add"
	TeamMemberRemove = "sp_team_member_remove"

	AddressList   = "sp_address_list"
	AddressSave   = "sp_address_save"
	AddressDelete = "sp_address_delete"

	ContactList   = "sp_contact_list"
	ContactSave   = "sp_contact_save"
	ContactDelete = "sp_contact_delete"

	CommentList   = "sp_comment_list"
	CommentSave   = "sp_comment_save"
	CommentDelete = "sp_comment_delete"

	Lookup = "sp_lookup"
)
