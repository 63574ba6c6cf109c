package emissions

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownPeriod is returned by ParsePeriodKind for anything other than
// annual, monthly or daily.
const ErrUnknownPeriod = constError("unknown period kind")
