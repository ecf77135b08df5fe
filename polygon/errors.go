package polygon

import (
	"errors"
	"fmt"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
)

var (
	// ErrAPIKeyNotSet is returned when a request is attempted without an API key.
	ErrAPIKeyNotSet = errors.New("api key not set")
	// ErrTickerNotSet is returned when an endpoint requires a ticker and none was given.
	ErrTickerNotSet = errors.New("ticker not set")
	// ErrTickerTypeNotValid is returned when the ticker (or ticker type) is not
	// accepted by the endpoint.
	ErrTickerTypeNotValid = errors.New("ticker type not valid for call")
	// ErrParameterNotSet is matched by every *ParameterNotSetError.
	ErrParameterNotSet = errors.New("parameter not set")
	// ErrInvalidParameter is matched by every *InvalidParameterError.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidTicker is returned when a ticker cannot be turned into URL parts.
	ErrInvalidTicker = errors.New("invalid ticker")
	// ErrFormat is returned when a response body is not a JSON object.
	ErrFormat = errors.New("response format error")
	// ErrNoNextPage is returned by NextPage when the response carries no next_url.
	ErrNoNextPage = errors.New("no next page")
	// ErrTransport is matched by every *TransportError.
	ErrTransport = errors.New("transport error")
)

// ParameterNotSetError reports a required parameter missing from Params.
type ParameterNotSetError struct {
	Parameter Parameter
}

func (e *ParameterNotSetError) Error() string {
	return fmt.Sprintf("parameter not set: %s", e.Parameter)
}

func (e *ParameterNotSetError) Is(target error) bool {
	return target == ErrParameterNotSet
}

// InvalidParameterError reports a present parameter with a malformed value.
type InvalidParameterError struct {
	Parameter Parameter
	Value     string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid value for %s: %q", e.Parameter, e.Value)
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// TransportError wraps a failure of the HTTP layer.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// APIError wraps the error envelope returned by Polygon's API
// together with the HTTP status code.
type APIError struct {
	StatusCode int
	Status     string
	RequestID  string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// UnmarshalEasyJSON decodes {"status":..,"request_id":..,"error"|"message":..}.
func (e *APIError) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "status":
			e.Status = in.String()
		case "request_id":
			e.RequestID = in.String()
		case "error":
			e.Message = in.String()
		case "message":
			if e.Message == "" {
				e.Message = in.String()
			} else {
				in.SkipRecursive()
			}
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

var _ easyjson.Unmarshaler = (*APIError)(nil)

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if err := easyjson.Unmarshal(body, apiErr); err != nil {
		// not Polygon's envelope, keep the raw body
		apiErr.Message = string(body)
	}
	return apiErr
}
