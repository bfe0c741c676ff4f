package constants

// Redis key formats
const (
	// Identity service
	KeyUserOTP         = "user:otp:%s"          // Format: user:otp:{identity}
	KeyUserOTPAttempts = "user:otp:attempts:%s" // Format: user:otp:attempts:{identity}

	// Rate limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{identifier}
)
