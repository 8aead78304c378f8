package alloc

// Config holds allocator limits. Zero values mean unlimited; limits exist to
// simulate exhaustion in tests and leak hunting runs.
type Config struct {
	MaxBytes   int64 `json:"max_bytes,omitempty" yaml:"max_bytes,omitempty"`     // Cap on live buffer bytes.
	MaxRecords int   `json:"max_records,omitempty" yaml:"max_records,omitempty"` // Cap on live records.
	FailAfter  int   `json:"fail_after,omitempty" yaml:"fail_after,omitempty"`   // Refuse every request after this many successful allocations.
}

// DefaultConfig returns the default allocator configuration (unlimited).
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.MaxBytes > 0 {
		c.MaxBytes = source.MaxBytes
	}
	if source.MaxRecords > 0 {
		c.MaxRecords = source.MaxRecords
	}
	if source.FailAfter > 0 {
		c.FailAfter = source.FailAfter
	}
}
