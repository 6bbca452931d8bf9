package utils

const ShortSlashDateLayout = "2006/01/02"
const ShortDashDateLayout = "2006-01-02"

// Entity types as understood by the shared address/contact/comment procedures.
const (
	EntityDriver = "DRIVER"
	EntityAgent  = "AGENT"
	EntityOwner  = "OWNER"
	EntityTeam   = "TEAM"
)

// Permission codes returned by sp_user_permissions.
const (
	PermDriverView   = "DRIVER_VIEW"
	PermDriverEdit   = "DRIVER_EDIT"
	PermDriverExport = "DRIVER_EXPORT"
	PermAgentView    = "AGENT_VIEW"
	PermAgentEdit    = "AGENT_EDIT"
	PermOwnerView    = "OWNER_VIEW"
	PermOwnerEdit    = "OWNER_EDIT"
	PermTeamView     = "TEAM_VIEW"
	PermTeamEdit     = "TEAM_EDIT"
)

// GenericFailureMessage is what users see when a call fails for a reason
// they cannot act on. The details go to the log.
const GenericFailureMessage = "The operation could not be completed. Please try again or contact support."
