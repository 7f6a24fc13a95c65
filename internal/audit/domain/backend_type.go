package domain

// BackendType tags the audit backend variant that durably stores entries and
// mints entry identifiers. Tags are stable lowercase strings and part of the
// caller-facing contract.
type BackendType string

// Supported backend variants.
const (
	BackendMock       BackendType = "mock"
	BackendBlockchain BackendType = "blockchain"
	BackendPostgreSQL BackendType = "postgresql"
	BackendMySQL      BackendType = "mysql"
)

// String returns the stable lowercase tag.
func (b BackendType) String() string {
	return string(b)
}

// ParseBackendType maps a configuration string to a BackendType.
// Returns ErrUnknownBackend for anything else.
func ParseBackendType(s string) (BackendType, error) {
	switch BackendType(s) {
	case BackendMock, BackendBlockchain, BackendPostgreSQL, BackendMySQL:
		return BackendType(s), nil
	default:
		return "", ErrUnknownBackend
	}
}
