package dto

import (
	"fmt"
	"strings"
	"time"
)

// Status values mirror the wire contract consumed by existing clients,
// including the original spelling.
type Status string

const (
	StatusSuccess Status = "Successo"
	StatusError   Status = "Erro"
)

// Envelope is the response body of every endpoint: data carries the entity,
// the list, or the deletion record; errors carry a nil data.
type Envelope struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func Success(message string, data any) Envelope {
	return Envelope{Status: StatusSuccess, Message: message, Data: data}
}

func Error(message string) Envelope {
	return Envelope{Status: StatusError, Message: message, Data: nil}
}

// DeleteData is the deletion record returned by DELETE endpoints.
type DeleteData struct {
	ID uint `json:"id"`
}

// ListQuery carries pagination plus the optional nome search filter.
type ListQuery struct {
	Skip   int    `form:"skip,default=0"   validate:"min=0"`
	Limit  int    `form:"limit,default=10" validate:"min=1,max=100"`
	Search string `form:"search"`
}

const dateLayout = "2006-01-02"

// Date (de)serializes as "2006-01-02", the format the API has always used
// for data_validade and periodo fields.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	// Only the JSON literal null is a no-op; an empty string is a bad date.
	if string(b) == "null" {
		return nil
	}
	s := strings.Trim(string(b), `"`)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("data inválida %q: esperado YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

// TimePtr converts an optional Date to the *time.Time the models store.
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// DateFrom converts an optional stored time back to the wire type.
func DateFrom(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Time: *t}
}
