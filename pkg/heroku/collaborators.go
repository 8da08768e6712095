package heroku

// Collaborator is an account with access to an app.
type Collaborator struct {
	Timestamps

	ID          string                   `json:"id"          yaml:"id"`
	App         Reference                `json:"app"         yaml:"app"`
	Permissions []CollaboratorPermission `json:"permissions" yaml:"permissions"`
	Role        *string                  `json:"role"        yaml:"role"`
	User        CollaboratorUser         `json:"user"        yaml:"user"`
}

// CollaboratorPermission is a team app permission held by a collaborator.
type CollaboratorPermission struct {
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// CollaboratorUser identifies the collaborating account.
type CollaboratorUser struct {
	ID        string `json:"id"        yaml:"id"`
	Email     string `json:"email"     yaml:"email"`
	Federated bool   `json:"federated" yaml:"federated"`
}

// CollaboratorCreate grants an account access to an app.
//
// POST /apps/{app_id_or_name}/collaborators
type CollaboratorCreate struct {
	Returns[Collaborator]

	AppID  string
	Params CollaboratorCreateParams
}

// CollaboratorCreateParams are the parameters of CollaboratorCreate.
type CollaboratorCreateParams struct {
	User   string `json:"user"`
	Silent *bool  `json:"silent,omitempty"`
}

// NewCollaboratorCreate creates a CollaboratorCreate endpoint for user, an
// email or account id.
func NewCollaboratorCreate(appID, user string) *CollaboratorCreate {
	return &CollaboratorCreate{AppID: appID, Params: CollaboratorCreateParams{User: user}}
}

// WithSilent suppresses the invitation email.
func (e *CollaboratorCreate) WithSilent(silent bool) *CollaboratorCreate {
	e.Params.Silent = &silent

	return e
}

func (e *CollaboratorCreate) Method() string { return methodPost }
func (e *CollaboratorCreate) Path() string   { return "apps/" + e.AppID + "/collaborators" }
func (e *CollaboratorCreate) Body() any      { return e.Params }

// CollaboratorList lists collaborators of an app.
type CollaboratorList struct {
	Returns[[]Collaborator]

	AppID string
}

// NewCollaboratorList creates a CollaboratorList endpoint.
func NewCollaboratorList(appID string) *CollaboratorList {
	return &CollaboratorList{AppID: appID}
}

func (e *CollaboratorList) Method() string { return methodGet }
func (e *CollaboratorList) Path() string   { return "apps/" + e.AppID + "/collaborators" }

// CollaboratorDetails fetches one collaborator by id or email.
type CollaboratorDetails struct {
	Returns[Collaborator]

	AppID          string
	CollaboratorID string
}

// NewCollaboratorDetails creates a CollaboratorDetails endpoint.
func NewCollaboratorDetails(appID, collaboratorID string) *CollaboratorDetails {
	return &CollaboratorDetails{AppID: appID, CollaboratorID: collaboratorID}
}

func (e *CollaboratorDetails) Method() string { return methodGet }
func (e *CollaboratorDetails) Path() string {
	return "apps/" + e.AppID + "/collaborators/" + e.CollaboratorID
}

// CollaboratorDelete revokes a collaborator's access.
type CollaboratorDelete struct {
	Returns[Collaborator]

	AppID          string
	CollaboratorID string
}

// NewCollaboratorDelete creates a CollaboratorDelete endpoint.
func NewCollaboratorDelete(appID, collaboratorID string) *CollaboratorDelete {
	return &CollaboratorDelete{AppID: appID, CollaboratorID: collaboratorID}
}

func (e *CollaboratorDelete) Method() string { return methodDelete }
func (e *CollaboratorDelete) Path() string {
	return "apps/" + e.AppID + "/collaborators/" + e.CollaboratorID
}
