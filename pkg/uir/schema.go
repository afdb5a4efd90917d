package uir

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir/spec"
)

// ValidateDocument checks a serialized UIR document against the embedded
// JSON schema. It returns nil when the document conforms, and an error
// wrapping ErrInvalidDocument that lists every violated constraint when
// it does not.
func ValidateDocument(data []byte) error {
	schemaBytes, err := spec.UIRSchemaFS.ReadFile("uir-schema.json")
	if err != nil {
		return fmt.Errorf("read embedded schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validate document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	failures := make([]string, 0, len(result.Errors()))
	for _, failure := range result.Errors() {
		failures = append(failures, fmt.Sprintf("%s: %s", failure.Field(), failure.Description()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(failures, "; "))
}
