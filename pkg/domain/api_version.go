package domain

// APIVersion represents a valid API version string.
type APIVersion string

// Supported API versions.
const (
	APIVersionV1 APIVersion = "v1"
)

// String returns the string representation of the API version.
func (v APIVersion) String() string {
	return string(v)
}
