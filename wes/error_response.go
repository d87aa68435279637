package wes

import (
	"fmt"

	"github.com/speakeasy-api/wes/marshaller"
)

// ErrorResponse is the body returned with a failed API call.
type ErrorResponse struct {
	Msg        marshaller.Field[string]
	StatusCode marshaller.Field[int32]
}

var _ marshaller.Model = (*ErrorResponse)(nil)

var errorResponseSchema = marshaller.NewSchema[ErrorResponse](ModelErrorResponse,
	marshaller.Prop("msg", marshaller.String(), func(m *ErrorResponse) *marshaller.Field[string] { return &m.Msg }),
	marshaller.Prop("status_code", marshaller.Integer(), func(m *ErrorResponse) *marshaller.Field[int32] { return &m.StatusCode }),
)

func (*ErrorResponse) Schema() *marshaller.Schema {
	return errorResponseSchema
}

// GetMsg returns the value of the Msg field. Returns empty string if not set.
func (e *ErrorResponse) GetMsg() string {
	if e == nil {
		return ""
	}
	return e.Msg.Get()
}

// GetStatusCode returns the value of the StatusCode field. Returns 0 if not set.
func (e *ErrorResponse) GetStatusCode() int32 {
	if e == nil {
		return 0
	}
	return e.StatusCode.Get()
}

func (e *ErrorResponse) SetMsg(v string) {
	e.Msg.Set(v)
}

func (e *ErrorResponse) SetStatusCode(v int32) {
	e.StatusCode.Set(v)
}

// Error allows a decoded error body to be returned as an error.
func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("%d: %s", e.GetStatusCode(), e.GetMsg())
}
