package constvars

const (
	RegisterSuccessMessage         = "Successfully registered, check your email for the verification code"
	LoginSuccessMessage            = "Successfully logged in"
	LogoutSuccessMessage           = "Successfully logged out"
	VerifyOTPSuccessMessage        = "Email successfully verified"
	ResendOTPSuccessMessage        = "Verification code resent"
	ForgotPasswordSuccessMessage   = "If the email exists, a reset link has been sent"
	ResetPasswordSuccessMessage    = "Password successfully updated"
	ListRespondentsSuccessMessage  = "Successfully fetched respondent sessions"
	RespondentDetailSuccessMessage = "Successfully fetched respondent detail"
	StressStatsSuccessMessage      = "Successfully fetched stress statistics"
	StatsDetailSuccessMessage      = "Successfully fetched topic statistics"
	MonthlySuccessMessage          = "Successfully fetched monthly averages"
)
