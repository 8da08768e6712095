package heroku

import (
	"net/http"
	"time"
)

// Reference identifies a related resource by id and/or name.
type Reference struct {
	ID   string `json:"id,omitempty"   yaml:"id,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// AccountReference identifies an account by id and email.
type AccountReference struct {
	ID    string `json:"id,omitempty"    yaml:"id,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// IDReference identifies a related resource by id only.
type IDReference struct {
	ID string `json:"id" yaml:"id"`
}

// Timestamps are shared by most resources.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Verbs used by endpoint descriptors.
const (
	methodGet    = http.MethodGet
	methodPost   = http.MethodPost
	methodPatch  = http.MethodPatch
	methodPut    = http.MethodPut
	methodDelete = http.MethodDelete
)

// String returns a pointer to s, for optional parameters.
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b, for optional parameters.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to i, for optional parameters.
func Int(i int) *int {
	return &i
}
