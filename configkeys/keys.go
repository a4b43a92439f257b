package configkeys

const (
	delimiter = "."

	// EnvPrefix is prepended to every key when read from the environment,
	// with the delimiter replaced by an underscore: TOOLKIT_LOG_LEVEL.
	EnvPrefix = "TOOLKIT"

	LogPrefix = "log"
	LogLevel  = LogPrefix + delimiter + "level"
	LogFormat = LogPrefix + delimiter + "format"

	DispatchPrefix      = "dispatch"
	DispatchStrictArity = DispatchPrefix + delimiter + "strict_arity"
)

// Delimiter separates the segments of a key.
func Delimiter() string { return delimiter }
