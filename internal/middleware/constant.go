package middleware

const (
	DefaultRequestsPerMin = 60
	MaxTrackedClients     = 1000

	LogPrefixRateLimit = "internal.middleware.RateLimit"
)
