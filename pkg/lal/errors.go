package lal

// TransformationError reports a failed transformation pass or pattern
// import: malformed stored annotations, undecodable pattern documents.
// Missing transformation rules are not errors; they produce fallback
// annotations instead.
type TransformationError struct {
	Message string
	Err     error
}

func (e *TransformationError) Error() string {
	if e.Err != nil {
		return "transformation failed: " + e.Message + ": " + e.Err.Error()
	}

	return "transformation failed: " + e.Message
}

func (e *TransformationError) Unwrap() error { return e.Err }
