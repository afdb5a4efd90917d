package backend

// GenerationError reports a failure while rendering a tree to source text.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return "generation failed: " + e.Message + ": " + e.Err.Error()
	}

	return "generation failed: " + e.Message
}

func (e *GenerationError) Unwrap() error { return e.Err }
