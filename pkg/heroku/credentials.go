package heroku

import "github.com/fivetwenty-io/hapi/internal/constants"

// Header is a single header name/value pair.
type Header struct {
	Name  string
	Value string
}

// Credentials is authentication material attached to every request. The set
// of kinds is closed; UserAuthToken is the only one.
type Credentials interface {
	// Headers returns the headers to attach to a request.
	Headers() []Header

	credentials()
}

// UserAuthToken authenticates with a Platform API token.
type UserAuthToken struct {
	Token string
}

// NewUserAuthToken returns token credentials.
func NewUserAuthToken(token string) *UserAuthToken {
	return &UserAuthToken{Token: token}
}

// Headers implements Credentials.
func (c *UserAuthToken) Headers() []Header {
	return []Header{{Name: constants.AuthorizationHeader, Value: "Bearer " + c.Token}}
}

// String masks the token so credentials can be logged safely.
func (c *UserAuthToken) String() string {
	if len(c.Token) <= constants.TokenPreviewLength {
		return "UserAuthToken(" + constants.MaskedSecret + ")"
	}

	return "UserAuthToken(" + c.Token[:constants.TokenPreviewLength] + constants.MaskedSecret + ")"
}

func (c *UserAuthToken) credentials() {}
