package heroku

import "time"

// App is an application on the platform.
type App struct {
	Timestamps

	ID                           string           `json:"id"                             yaml:"id"`
	Name                         string           `json:"name"                           yaml:"name"`
	ACM                          bool             `json:"acm"                            yaml:"acm"`
	ArchivedAt                   *time.Time       `json:"archived_at"                    yaml:"archived_at"`
	BuildpackProvidedDescription *string          `json:"buildpack_provided_description" yaml:"buildpack_provided_description"`
	BuildStack                   Reference        `json:"build_stack"                    yaml:"build_stack"`
	GitURL                       string           `json:"git_url"                        yaml:"git_url"`
	Maintenance                  bool             `json:"maintenance"                    yaml:"maintenance"`
	Owner                        AccountReference `json:"owner"                          yaml:"owner"`
	Organization                 *Reference       `json:"organization"                   yaml:"organization"`
	Team                         *Reference       `json:"team"                           yaml:"team"`
	Region                       Reference        `json:"region"                         yaml:"region"`
	ReleasedAt                   *time.Time       `json:"released_at"                    yaml:"released_at"`
	RepoSize                     *int             `json:"repo_size"                      yaml:"repo_size"`
	SlugSize                     *int             `json:"slug_size"                      yaml:"slug_size"`
	Space                        *Reference       `json:"space"                          yaml:"space"`
	Stack                        Reference        `json:"stack"                          yaml:"stack"`
	WebURL                       string           `json:"web_url"                        yaml:"web_url"`
}

// AppList lists apps visible to the caller.
type AppList struct {
	Returns[[]App]
}

// NewAppList creates an AppList endpoint.
func NewAppList() *AppList { return &AppList{} }

func (e *AppList) Method() string { return methodGet }
func (e *AppList) Path() string   { return "apps" }

// AppDetails fetches an app by id or name.
type AppDetails struct {
	Returns[App]

	AppID string
}

// NewAppDetails creates an AppDetails endpoint.
func NewAppDetails(appID string) *AppDetails { return &AppDetails{AppID: appID} }

func (e *AppDetails) Method() string { return methodGet }
func (e *AppDetails) Path() string   { return "apps/" + e.AppID }

// AppCreate creates an app. Every parameter is optional.
type AppCreate struct {
	Returns[App]

	Params AppCreateParams
}

// AppCreateParams are the parameters of AppCreate.
type AppCreateParams struct {
	Name   *string `json:"name,omitempty"`
	Region *string `json:"region,omitempty"`
	Stack  *string `json:"stack,omitempty"`
}

// NewAppCreate creates an AppCreate endpoint.
func NewAppCreate() *AppCreate { return &AppCreate{} }

// WithName sets the app name.
func (e *AppCreate) WithName(name string) *AppCreate {
	e.Params.Name = &name

	return e
}

// WithRegion sets the region by name or id.
func (e *AppCreate) WithRegion(region string) *AppCreate {
	e.Params.Region = &region

	return e
}

// WithStack sets the stack by name or id.
func (e *AppCreate) WithStack(stack string) *AppCreate {
	e.Params.Stack = &stack

	return e
}

func (e *AppCreate) Method() string { return methodPost }
func (e *AppCreate) Path() string   { return "apps" }
func (e *AppCreate) Body() any      { return e.Params }

// AppUpdate updates an app.
type AppUpdate struct {
	Returns[App]

	AppID  string
	Params AppUpdateParams
}

// AppUpdateParams are the parameters of AppUpdate.
type AppUpdateParams struct {
	BuildStack  *string `json:"build_stack,omitempty"`
	Maintenance *bool   `json:"maintenance,omitempty"`
	Name        *string `json:"name,omitempty"`
}

// NewAppUpdate creates an AppUpdate endpoint.
func NewAppUpdate(appID string) *AppUpdate { return &AppUpdate{AppID: appID} }

// WithBuildStack sets the stack used by the next build.
func (e *AppUpdate) WithBuildStack(stack string) *AppUpdate {
	e.Params.BuildStack = &stack

	return e
}

// WithMaintenance toggles maintenance mode.
func (e *AppUpdate) WithMaintenance(maintenance bool) *AppUpdate {
	e.Params.Maintenance = &maintenance

	return e
}

// WithName renames the app.
func (e *AppUpdate) WithName(name string) *AppUpdate {
	e.Params.Name = &name

	return e
}

func (e *AppUpdate) Method() string { return methodPatch }
func (e *AppUpdate) Path() string   { return "apps/" + e.AppID }
func (e *AppUpdate) Body() any      { return e.Params }

// AppDelete deletes an app and returns its last state.
type AppDelete struct {
	Returns[App]

	AppID string
}

// NewAppDelete creates an AppDelete endpoint.
func NewAppDelete(appID string) *AppDelete { return &AppDelete{AppID: appID} }

func (e *AppDelete) Method() string { return methodDelete }
func (e *AppDelete) Path() string   { return "apps/" + e.AppID }
