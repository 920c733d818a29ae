package pipeline

// SchemaError means no usable timestamp column could be derived from the
// input table. It is fatal to the normalization call; no partial result is
// returned alongside it.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "schema error: " + e.Reason
}

// ConfigError reports invalid pipeline parameters, such as a non-positive
// slot width. Callers are expected to validate before invoking.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Reason
}
