package heroku

// Space is a private network for apps.
type Space struct {
	Timestamps

	ID           string    `json:"id"           yaml:"id"`
	Name         string    `json:"name"         yaml:"name"`
	CIDR         string    `json:"cidr"         yaml:"cidr"`
	DataCIDR     string    `json:"data_cidr"    yaml:"data_cidr"`
	Organization Reference `json:"organization" yaml:"organization"`
	Team         Reference `json:"team"         yaml:"team"`
	Region       Reference `json:"region"       yaml:"region"`
	Shield       bool      `json:"shield"       yaml:"shield"`
	State        string    `json:"state"        yaml:"state"`
}

// SpaceNAT lists the outbound IPs of a space.
type SpaceNAT struct {
	Timestamps

	Sources []string `json:"sources" yaml:"sources"`
	State   string   `json:"state"   yaml:"state"`
}

// SpaceTransfer is the result of transferring a space to another team.
type SpaceTransfer struct {
	Timestamps

	ID    string    `json:"id"    yaml:"id"`
	Name  string    `json:"name"  yaml:"name"`
	Team  Reference `json:"team"  yaml:"team"`
	State string    `json:"state" yaml:"state"`
}

// SpaceAccess is an account's permissions in a space.
type SpaceAccess struct {
	Timestamps

	ID          string            `json:"id"          yaml:"id"`
	Space       Reference         `json:"space"       yaml:"space"`
	Permissions []SpacePermission `json:"permissions" yaml:"permissions"`
	User        AccountReference  `json:"user"        yaml:"user"`
}

// SpacePermission is a named space permission.
type SpacePermission struct {
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// SpaceList lists spaces visible to the caller.
type SpaceList struct {
	Returns[[]Space]
}

// NewSpaceList creates a SpaceList endpoint.
func NewSpaceList() *SpaceList { return &SpaceList{} }

func (e *SpaceList) Method() string { return methodGet }
func (e *SpaceList) Path() string   { return "spaces" }

// SpaceDetails fetches a space by id or name.
type SpaceDetails struct {
	Returns[Space]

	SpaceID string
}

// NewSpaceDetails creates a SpaceDetails endpoint.
func NewSpaceDetails(spaceID string) *SpaceDetails { return &SpaceDetails{SpaceID: spaceID} }

func (e *SpaceDetails) Method() string { return methodGet }
func (e *SpaceDetails) Path() string   { return "spaces/" + e.SpaceID }

// SpaceCreate creates a space owned by a team.
//
// POST /spaces
type SpaceCreate struct {
	Returns[Space]

	Params SpaceCreateParams
}

// SpaceCreateParams are the parameters of SpaceCreate.
type SpaceCreateParams struct {
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Region   *string `json:"region,omitempty"`
	Shield   *bool   `json:"shield,omitempty"`
	CIDR     *string `json:"cidr,omitempty"`
	DataCIDR *string `json:"data_cidr,omitempty"`
}

// NewSpaceCreate creates a SpaceCreate endpoint.
func NewSpaceCreate(name, team string) *SpaceCreate {
	return &SpaceCreate{Params: SpaceCreateParams{Name: name, Team: team}}
}

// WithRegion sets the region by name or id.
func (e *SpaceCreate) WithRegion(region string) *SpaceCreate {
	e.Params.Region = &region

	return e
}

// WithShield requests a shield space.
func (e *SpaceCreate) WithShield(shield bool) *SpaceCreate {
	e.Params.Shield = &shield

	return e
}

// WithCIDR sets the RFC-1918 block for dynos.
func (e *SpaceCreate) WithCIDR(cidr string) *SpaceCreate {
	e.Params.CIDR = &cidr

	return e
}

// WithDataCIDR sets the RFC-1918 block for data services.
func (e *SpaceCreate) WithDataCIDR(cidr string) *SpaceCreate {
	e.Params.DataCIDR = &cidr

	return e
}

func (e *SpaceCreate) Method() string { return methodPost }
func (e *SpaceCreate) Path() string   { return "spaces" }
func (e *SpaceCreate) Body() any      { return e.Params }

// SpaceUpdate renames a space.
type SpaceUpdate struct {
	Returns[Space]

	SpaceID string
	Params  SpaceUpdateParams
}

// SpaceUpdateParams are the parameters of SpaceUpdate.
type SpaceUpdateParams struct {
	Name *string `json:"name,omitempty"`
}

// NewSpaceUpdate creates a SpaceUpdate endpoint.
func NewSpaceUpdate(spaceID string) *SpaceUpdate { return &SpaceUpdate{SpaceID: spaceID} }

// WithName sets the new name.
func (e *SpaceUpdate) WithName(name string) *SpaceUpdate {
	e.Params.Name = &name

	return e
}

func (e *SpaceUpdate) Method() string { return methodPatch }
func (e *SpaceUpdate) Path() string   { return "spaces/" + e.SpaceID }
func (e *SpaceUpdate) Body() any      { return e.Params }

// SpaceDelete deletes a space.
type SpaceDelete struct {
	Returns[Space]

	SpaceID string
}

// NewSpaceDelete creates a SpaceDelete endpoint.
func NewSpaceDelete(spaceID string) *SpaceDelete { return &SpaceDelete{SpaceID: spaceID} }

func (e *SpaceDelete) Method() string { return methodDelete }
func (e *SpaceDelete) Path() string   { return "spaces/" + e.SpaceID }

// SpaceNATDetails fetches the NAT sources of a space.
type SpaceNATDetails struct {
	Returns[SpaceNAT]

	SpaceID string
}

// NewSpaceNATDetails creates a SpaceNATDetails endpoint.
func NewSpaceNATDetails(spaceID string) *SpaceNATDetails {
	return &SpaceNATDetails{SpaceID: spaceID}
}

func (e *SpaceNATDetails) Method() string { return methodGet }
func (e *SpaceNATDetails) Path() string   { return "spaces/" + e.SpaceID + "/nat" }

// SpaceTransferCreate moves a space to another team.
type SpaceTransferCreate struct {
	Returns[SpaceTransfer]

	SpaceID string
	Params  SpaceTransferCreateParams
}

// SpaceTransferCreateParams are the parameters of SpaceTransferCreate.
type SpaceTransferCreateParams struct {
	NewOwner string `json:"new_owner"`
}

// NewSpaceTransferCreate creates a SpaceTransferCreate endpoint.
func NewSpaceTransferCreate(spaceID, newOwner string) *SpaceTransferCreate {
	return &SpaceTransferCreate{
		SpaceID: spaceID,
		Params:  SpaceTransferCreateParams{NewOwner: newOwner},
	}
}

func (e *SpaceTransferCreate) Method() string { return methodPost }
func (e *SpaceTransferCreate) Path() string   { return "spaces/" + e.SpaceID + "/transfer" }
func (e *SpaceTransferCreate) Body() any      { return e.Params }

// SpaceAccessList lists members of a space.
type SpaceAccessList struct {
	Returns[[]SpaceAccess]

	SpaceID string
}

// NewSpaceAccessList creates a SpaceAccessList endpoint.
func NewSpaceAccessList(spaceID string) *SpaceAccessList {
	return &SpaceAccessList{SpaceID: spaceID}
}

func (e *SpaceAccessList) Method() string { return methodGet }
func (e *SpaceAccessList) Path() string   { return "spaces/" + e.SpaceID + "/members" }

// SpaceAccessDetails fetches one member's permissions.
type SpaceAccessDetails struct {
	Returns[SpaceAccess]

	SpaceID   string
	AccountID string
}

// NewSpaceAccessDetails creates a SpaceAccessDetails endpoint.
func NewSpaceAccessDetails(spaceID, accountID string) *SpaceAccessDetails {
	return &SpaceAccessDetails{SpaceID: spaceID, AccountID: accountID}
}

func (e *SpaceAccessDetails) Method() string { return methodGet }
func (e *SpaceAccessDetails) Path() string {
	return "spaces/" + e.SpaceID + "/members/" + e.AccountID
}

// SpaceAccessUpdate replaces a member's permissions.
type SpaceAccessUpdate struct {
	Returns[SpaceAccess]

	SpaceID   string
	AccountID string
	Params    SpaceAccessUpdateParams
}

// SpaceAccessUpdateParams are the parameters of SpaceAccessUpdate.
type SpaceAccessUpdateParams struct {
	Permissions []SpacePermission `json:"permissions"`
}

// NewSpaceAccessUpdate creates a SpaceAccessUpdate endpoint granting the
// named permissions.
func NewSpaceAccessUpdate(spaceID, accountID string, permissions ...string) *SpaceAccessUpdate {
	perms := make([]SpacePermission, 0, len(permissions))
	for _, name := range permissions {
		perms = append(perms, SpacePermission{Name: name})
	}

	return &SpaceAccessUpdate{
		SpaceID:   spaceID,
		AccountID: accountID,
		Params:    SpaceAccessUpdateParams{Permissions: perms},
	}
}

func (e *SpaceAccessUpdate) Method() string { return methodPatch }
func (e *SpaceAccessUpdate) Path() string {
	return "spaces/" + e.SpaceID + "/members/" + e.AccountID
}
func (e *SpaceAccessUpdate) Body() any { return e.Params }
