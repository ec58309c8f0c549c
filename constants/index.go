package constants

const (
	ROLE_ADMIN    = "ADMIN"
	ROLE_MANAGER  = "MANAGER"
	ROLE_OPERATOR = "OPERATOR"
	ROLE_GUICHET  = "GUICHET"
)

const (
	ERROR_INPUT                = "ERROR_INPUT"
	ERROR_INTERNAL_ERROR       = "ERROR_INTERNAL_ERROR"
	ERROR_CREATE               = "ERROR_CREATE"
	ERROR_EDIT                 = "ERROR_EDIT"
	ERROR_DELETE               = "ERROR_DELETE"
	NOT_FOUND_RECORDS          = "NOT_FOUND_RECORDS"
	NOT_ADMIN                  = "NOT_ADMIN"
	DATA_INPUT_IS_NOT_NUMBER   = "DATA_INPUT_IS_NOT_NUMBER"
	ERROR_PARSE_DATA_TO_LOCALS = "ERROR_PARSE_DATA_TO_LOCALS"

	MISSING_LOGIN_INPUT = "MISSING_LOGIN_INPUT"
	INVALID_USERNAME    = "INVALID_USERNAME"
	INVALID_PASSWORD    = "INVALID_PASSWORD"
	ACCOUNT_NOT_ACTIVE  = "ACCOUNT_NOT_ACTIVE"
	USERNAME_EXISTS     = "USERNAME_EXISTS"

	TEMPLATE_NAME_EXISTS    = "TEMPLATE_NAME_EXISTS"
	TEMPLATE_NOT_FOUND      = "TEMPLATE_NOT_FOUND"
	TEMPLATE_STILL_USED     = "TEMPLATE_STILL_USED"
	NO_TEMPLATE_AVAILABLE   = "NO_TEMPLATE_AVAILABLE"
	OVERRIDE_SAME_ZONE      = "OVERRIDE_SAME_ZONE"
	OVERRIDE_NOT_FOUND      = "OVERRIDE_NOT_FOUND"
	DANGLING_OVERRIDE       = "DANGLING_OVERRIDE"
	MISSING_TEMPLATE_FIELD  = "MISSING_TEMPLATE_FIELD"
	EVENT_NOT_FOUND         = "EVENT_NOT_FOUND"
	VENUE_NOT_FOUND         = "VENUE_NOT_FOUND"
	PLAN_NOT_FOUND          = "PLAN_NOT_FOUND"
	ZONE_NOT_FOUND          = "ZONE_NOT_FOUND"
	NO_BASELINE_ZONE        = "NO_BASELINE_ZONE"
	TICKET_NOT_FOUND        = "TICKET_NOT_FOUND"
	TICKET_ALREADY_USED     = "TICKET_ALREADY_USED"
	TICKET_NOT_CHECKABLE    = "TICKET_NOT_CHECKABLE"
	ZONE_CODE_EXISTS        = "ZONE_CODE_EXISTS"
	BASELINE_ALREADY_EXISTS = "BASELINE_ALREADY_EXISTS"
)
