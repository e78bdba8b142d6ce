package store

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// Repositories use it to translate driver errors into store sentinels.
type ErrorClassification int

const (
	// Unclassified is returned for nil errors and errors the classifier does
	// not recognise.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates a unique or primary key constraint failure.
	UniqueViolation

	// ForeignKeyViolation indicates a reference to a missing parent row.
	ForeignKeyViolation

	// InvalidInput indicates a value the column type cannot represent
	// (e.g. a malformed UUID).
	InvalidInput

	// ValueTooLong indicates a string longer than its column allows.
	ValueTooLong

	// Transient indicates that the failed operation may succeed if attempted
	// again (connection loss, serialization failure, busy database).
	Transient
)

// String returns the lower-case name used in log fields.
func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case InvalidInput:
		return "invalid_input"
	case ValueTooLong:
		return "value_too_long"
	case Transient:
		return "transient"
	default:
		return "unclassified"
	}
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type unclassified struct{}

func (unclassified) Classify(error) ErrorClassification {
	return Unclassified
}
