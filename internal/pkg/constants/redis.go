package constants

// Redis key prefixes
const (
	KeyCancelPenalty = "penalty:cancel" // penalty:cancel:<user_id> -> recent cancellation count
	KeyRateLimit     = "ratelimit"      // ratelimit:<path>:<identifier> -> request count
)
