package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
)

const (
	MongoCollectionAdminUsers     = "admin_users"
	MongoCollectionSurveySessions = "survey_sessions"
)

const (
	SessionCookieName = "nutrisurvey_session"

	RedisSessionKeyPrefix    = "session:"
	RedisOTPKeyPrefix        = "otp:"
	RedisResetTokenKeyPrefix = "pwreset:"
)

// Page routes evaluated by the access guard. Everything outside the public
// set that reaches the guarded surface requires a live admin session.
const (
	RouteLogin         = "/Login"
	RouteDashboard     = "/Findevaluationresults"
	RouteRedirectParam = "redirect"
)

var PublicRoutePrefixes = []string{
	RouteLogin,
	"/SingUp",
	"/OTP",
	"/ForgotPassword",
	"/password",
	"/success",
	"/finishotp",
	"/newpassword",
	"/resetpassword",
}

const (
	ExportSheetName      = "Nutritional"
	ExportFilenamePrefix = "nutritional_export"
)
