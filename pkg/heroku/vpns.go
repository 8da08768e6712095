package heroku

// VPN is an IPsec connection between a space and a remote network.
type VPN struct {
	ID            string      `json:"id"               yaml:"id"`
	Name          string      `json:"name"             yaml:"name"`
	PublicIP      string      `json:"public_ip"        yaml:"public_ip"`
	RoutableCIDRs []string    `json:"routable_cidrs"   yaml:"routable_cidrs"`
	SpaceCIDR     string      `json:"space_cidr_block" yaml:"space_cidr_block"`
	IKEVersion    int         `json:"ike_version"      yaml:"ike_version"`
	Tunnels       []VPNTunnel `json:"tunnels"          yaml:"tunnels"`
	Status        string      `json:"status"           yaml:"status"`
	StatusMessage string      `json:"status_message"   yaml:"status_message"`
}

// VPNTunnel is one side of a VPN connection.
type VPNTunnel struct {
	LastStatusChange string `json:"last_status_change" yaml:"last_status_change"`
	IP               string `json:"ip"                 yaml:"ip"`
	CustomerIP       string `json:"customer_ip"        yaml:"customer_ip"`
	PreSharedKey     string `json:"pre_shared_key"     yaml:"-"`
	Status           string `json:"status"             yaml:"status"`
	StatusMessage    string `json:"status_message"     yaml:"status_message"`
}

// VPNList lists VPN connections of a space.
type VPNList struct {
	Returns[[]VPN]

	SpaceID string
}

// NewVPNList creates a VPNList endpoint.
func NewVPNList(spaceID string) *VPNList { return &VPNList{SpaceID: spaceID} }

func (e *VPNList) Method() string { return methodGet }
func (e *VPNList) Path() string   { return "spaces/" + e.SpaceID + "/vpn-connections" }

// VPNDetails fetches one VPN connection.
type VPNDetails struct {
	Returns[VPN]

	SpaceID string
	VPNID   string
}

// NewVPNDetails creates a VPNDetails endpoint.
func NewVPNDetails(spaceID, vpnID string) *VPNDetails {
	return &VPNDetails{SpaceID: spaceID, VPNID: vpnID}
}

func (e *VPNDetails) Method() string { return methodGet }
func (e *VPNDetails) Path() string {
	return "spaces/" + e.SpaceID + "/vpn-connections/" + e.VPNID
}

// VPNCreate opens a VPN connection.
//
// POST /spaces/{space_id_or_name}/vpn-connections
type VPNCreate struct {
	Returns[VPN]

	SpaceID string
	Params  VPNCreateParams
}

// VPNCreateParams are the parameters of VPNCreate.
type VPNCreateParams struct {
	Name          string   `json:"name"`
	PublicIP      string   `json:"public_ip"`
	RoutableCIDRs []string `json:"routable_cidrs"`
}

// NewVPNCreate creates a VPNCreate endpoint.
func NewVPNCreate(spaceID, name, publicIP string, routableCIDRs []string) *VPNCreate {
	return &VPNCreate{
		SpaceID: spaceID,
		Params: VPNCreateParams{
			Name:          name,
			PublicIP:      publicIP,
			RoutableCIDRs: routableCIDRs,
		},
	}
}

func (e *VPNCreate) Method() string { return methodPost }
func (e *VPNCreate) Path() string   { return "spaces/" + e.SpaceID + "/vpn-connections" }
func (e *VPNCreate) Body() any      { return e.Params }

// VPNDelete closes a VPN connection.
type VPNDelete struct {
	Returns[VPN]

	SpaceID string
	VPNID   string
}

// NewVPNDelete creates a VPNDelete endpoint.
func NewVPNDelete(spaceID, vpnID string) *VPNDelete {
	return &VPNDelete{SpaceID: spaceID, VPNID: vpnID}
}

func (e *VPNDelete) Method() string { return methodDelete }
func (e *VPNDelete) Path() string {
	return "spaces/" + e.SpaceID + "/vpn-connections/" + e.VPNID
}
