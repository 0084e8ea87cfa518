package gqlclient

import (
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
)

// ExtensionCodeMaxCostExceeded signals that a single query went over the
// API's cost budget; callers split the selection into field groups and retry.
const ExtensionCodeMaxCostExceeded = "MAX_COST_EXCEEDED"

// TransportError wraps a connection-level failure that survived the retry
// bound.
type TransportError struct {
	Err      error
	Attempts int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gqlclient: request failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is a non-2xx response. It is never retried.
type HTTPStatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("gqlclient: unexpected status %s: %s", e.Status, e.Body)
}

// GraphQLError is a response carrying an errors array. Errors holds the raw
// payload for diagnosis.
type GraphQLError struct {
	Errors json.RawMessage
}

func (e *GraphQLError) Error() string {
	return fmt.Sprintf("gqlclient: graphql errors: %s", e.Errors)
}

// ExtensionCode returns the extensions.code of the first reported error, or
// the empty string when none is present.
func (e *GraphQLError) ExtensionCode() string {
	code, err := jsonparser.GetString(e.Errors, "[0]", "extensions", "code")
	if err != nil {
		return ""
	}
	return code
}

// Cost returns the reported query cost and budget when the first error
// carries them.
func (e *GraphQLError) Cost() (cost, maxCost int64, ok bool) {
	cost, costErr := jsonparser.GetInt(e.Errors, "[0]", "extensions", "cost")
	maxCost, maxErr := jsonparser.GetInt(e.Errors, "[0]", "extensions", "maxCost")
	return cost, maxCost, costErr == nil && maxErr == nil
}

// InvalidResponseError is an empty response or one without a data key.
type InvalidResponseError struct {
	Body []byte
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("gqlclient: invalid or empty graphql response: %s", e.Body)
}
