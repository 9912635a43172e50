package constvars

// Client-facing messages. Keep generic; the DevMessage carries detail.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "Please log in to continue"
	ErrClientInvalidUsernameOrPassword     = "Invalid email or password"
	ErrClientEmailNotConfirmed             = "Please confirm your email before logging in"
	ErrClientEmailAlreadyExists            = "Email is already registered"
	ErrClientOTPInvalid                    = "The code you entered is invalid"
	ErrClientOTPExpired                    = "The code has expired, please request a new one"
	ErrClientOTPResendTooSoon              = "Please wait before requesting another code"
	ErrClientResetTokenExpired             = "The reset link has expired, please request a new one"
	ErrClientRespondentNotFound            = "Respondent session not found"
	ErrClientInvalidStatType               = "invalid type"
	ErrClientInvalidTopic                  = "invalid topic"
	ErrClientExportFailed                  = "export failed"
)

// Developer-facing messages logged alongside errors.
const (
	ErrDevCannotParseJSON           = "Failed to parse JSON body"
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalid          = "Authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevAuthGenerateToken         = "Failed to generate JWT"
	ErrDevAuthInvalidSession        = "Session not found or expired"
	ErrDevInvalidCredentials        = "Credentials do not match any user"
	ErrDevEmailNotConfirmed         = "User email is not confirmed"
	ErrDevEmailAlreadyExists        = "Email already exists in admin user collection"
	ErrDevFailedToHashPassword      = "Failed to hash password"
	ErrDevOTPInvalid                = "OTP does not match stored code"
	ErrDevOTPExpired                = "OTP key missing or expired in redis"
	ErrDevOTPResendThrottled        = "OTP resend rate limit exceeded"
	ErrDevResetTokenExpired         = "Password reset token missing or expired"
	ErrDevUserNotExists             = "User does not exist"
	ErrDevMongoDBFindDocument       = "Failed to find document(s) in mongo"
	ErrDevMongoDBInsertDocument     = "Failed to insert document into mongo"
	ErrDevMongoDBUpdateDocument     = "Failed to update document in mongo"
	ErrDevMongoDBCountDocuments     = "Failed to count documents in mongo"
	ErrDevRedisSet                  = "Failed to set key in redis"
	ErrDevRedisGet                  = "Failed to get key from redis"
	ErrDevRedisDelete               = "Failed to delete key from redis"
	ErrDevCannotMarshalJSON         = "Failed to marshal value to JSON"
	ErrDevMailerPublish             = "Failed to publish email job to mailer queue"
	ErrDevExportRender              = "Failed to render export payload"
	ErrDevExportArchiveUpload       = "Failed to upload export copy to object storage"
	ErrDevServerDeadlineExceeded    = "Request exceeded server deadline"
	ErrDevBridgeCreateRequest       = "Failed to build upstream page request"
	ErrDevBridgeSendRequest         = "Failed to reach upstream page server"
	ErrDevInvalidQueryParam         = "Invalid query parameter value"
)
