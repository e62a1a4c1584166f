package router

// Log prefixes
const (
	LogPrefixDetermineModel = "internal.router.DetermineModel"
)

// ComplexitySaturationBytes is the serialized-context size at which
// contextComplexity reaches 1.
const ComplexitySaturationBytes = 1000.0

// Default thresholds, overridable via config.
const (
	DefaultTechnicalThreshold  = 0.7
	DefaultComplexityThreshold = 0.8
)
