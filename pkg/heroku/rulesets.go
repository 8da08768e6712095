package heroku

// InboundRuleset controls which sources can reach a space.
type InboundRuleset struct {
	ID        string        `json:"id"         yaml:"id"`
	CreatedAt string        `json:"created_at" yaml:"created_at"`
	CreatedBy string        `json:"created_by" yaml:"created_by"`
	Space     Reference     `json:"space"      yaml:"space"`
	Rules     []InboundRule `json:"rules"      yaml:"rules"`
}

// InboundRule allows or denies one source CIDR.
type InboundRule struct {
	Action string `json:"action" yaml:"action"`
	Source string `json:"source" yaml:"source"`
}

// OutboundRuleset controls which destinations a space can reach.
type OutboundRuleset struct {
	ID        string         `json:"id"         yaml:"id"`
	CreatedAt string         `json:"created_at" yaml:"created_at"`
	CreatedBy string         `json:"created_by" yaml:"created_by"`
	Space     Reference      `json:"space"      yaml:"space"`
	Rules     []OutboundRule `json:"rules"      yaml:"rules"`
}

// OutboundRule allows traffic to a target CIDR on a port range.
type OutboundRule struct {
	Target   string `json:"target"    yaml:"target"`
	FromPort int    `json:"from_port" yaml:"from_port"`
	ToPort   int    `json:"to_port"   yaml:"to_port"`
	Protocol string `json:"protocol"  yaml:"protocol"`
}

// Inbound rule actions.
const (
	RuleActionAllow = "allow"
	RuleActionDeny  = "deny"
)

// InboundRulesetList lists the inbound ruleset history of a space.
type InboundRulesetList struct {
	Returns[[]InboundRuleset]

	SpaceID string
}

// NewInboundRulesetList creates an InboundRulesetList endpoint.
func NewInboundRulesetList(spaceID string) *InboundRulesetList {
	return &InboundRulesetList{SpaceID: spaceID}
}

func (e *InboundRulesetList) Method() string { return methodGet }
func (e *InboundRulesetList) Path() string   { return "spaces/" + e.SpaceID + "/inbound-rulesets" }

// InboundRulesetDetails fetches one inbound ruleset.
type InboundRulesetDetails struct {
	Returns[InboundRuleset]

	SpaceID   string
	RulesetID string
}

// NewInboundRulesetDetails creates an InboundRulesetDetails endpoint.
func NewInboundRulesetDetails(spaceID, rulesetID string) *InboundRulesetDetails {
	return &InboundRulesetDetails{SpaceID: spaceID, RulesetID: rulesetID}
}

func (e *InboundRulesetDetails) Method() string { return methodGet }
func (e *InboundRulesetDetails) Path() string {
	return "spaces/" + e.SpaceID + "/inbound-rulesets/" + e.RulesetID
}

// InboundRulesetCurrent fetches the active inbound ruleset.
type InboundRulesetCurrent struct {
	Returns[InboundRuleset]

	SpaceID string
}

// NewInboundRulesetCurrent creates an InboundRulesetCurrent endpoint.
func NewInboundRulesetCurrent(spaceID string) *InboundRulesetCurrent {
	return &InboundRulesetCurrent{SpaceID: spaceID}
}

func (e *InboundRulesetCurrent) Method() string { return methodGet }
func (e *InboundRulesetCurrent) Path() string   { return "spaces/" + e.SpaceID + "/inbound-ruleset" }

// InboundRulesetCreate replaces the active inbound ruleset.
//
// PUT /spaces/{space_id_or_name}/inbound-ruleset
type InboundRulesetCreate struct {
	Returns[InboundRuleset]

	SpaceID string
	Params  InboundRulesetCreateParams
}

// InboundRulesetCreateParams are the parameters of InboundRulesetCreate.
type InboundRulesetCreateParams struct {
	Rules []InboundRule `json:"rules,omitempty"`
}

// NewInboundRulesetCreate creates an InboundRulesetCreate endpoint with no
// rules.
func NewInboundRulesetCreate(spaceID string) *InboundRulesetCreate {
	return &InboundRulesetCreate{SpaceID: spaceID}
}

// WithRule appends a rule.
func (e *InboundRulesetCreate) WithRule(action, source string) *InboundRulesetCreate {
	e.Params.Rules = append(e.Params.Rules, InboundRule{Action: action, Source: source})

	return e
}

func (e *InboundRulesetCreate) Method() string { return methodPut }
func (e *InboundRulesetCreate) Path() string   { return "spaces/" + e.SpaceID + "/inbound-ruleset" }
func (e *InboundRulesetCreate) Body() any      { return e.Params }

// OutboundRulesetList lists the outbound ruleset history of a space.
type OutboundRulesetList struct {
	Returns[[]OutboundRuleset]

	SpaceID string
}

// NewOutboundRulesetList creates an OutboundRulesetList endpoint.
func NewOutboundRulesetList(spaceID string) *OutboundRulesetList {
	return &OutboundRulesetList{SpaceID: spaceID}
}

func (e *OutboundRulesetList) Method() string { return methodGet }
func (e *OutboundRulesetList) Path() string   { return "spaces/" + e.SpaceID + "/outbound-rulesets" }

// OutboundRulesetDetails fetches one outbound ruleset.
type OutboundRulesetDetails struct {
	Returns[OutboundRuleset]

	SpaceID   string
	RulesetID string
}

// NewOutboundRulesetDetails creates an OutboundRulesetDetails endpoint.
func NewOutboundRulesetDetails(spaceID, rulesetID string) *OutboundRulesetDetails {
	return &OutboundRulesetDetails{SpaceID: spaceID, RulesetID: rulesetID}
}

func (e *OutboundRulesetDetails) Method() string { return methodGet }
func (e *OutboundRulesetDetails) Path() string {
	return "spaces/" + e.SpaceID + "/outbound-rulesets/" + e.RulesetID
}

// OutboundRulesetCurrent fetches the active outbound ruleset.
type OutboundRulesetCurrent struct {
	Returns[OutboundRuleset]

	SpaceID string
}

// NewOutboundRulesetCurrent creates an OutboundRulesetCurrent endpoint.
func NewOutboundRulesetCurrent(spaceID string) *OutboundRulesetCurrent {
	return &OutboundRulesetCurrent{SpaceID: spaceID}
}

func (e *OutboundRulesetCurrent) Method() string { return methodGet }
func (e *OutboundRulesetCurrent) Path() string   { return "spaces/" + e.SpaceID + "/outbound-ruleset" }

// OutboundRulesetCreate replaces the active outbound ruleset.
//
// PUT /spaces/{space_id_or_name}/outbound-ruleset
type OutboundRulesetCreate struct {
	Returns[OutboundRuleset]

	SpaceID string
	Params  OutboundRulesetCreateParams
}

// OutboundRulesetCreateParams are the parameters of OutboundRulesetCreate.
type OutboundRulesetCreateParams struct {
	Rules []OutboundRule `json:"rules,omitempty"`
}

// NewOutboundRulesetCreate creates an OutboundRulesetCreate endpoint with no
// rules.
func NewOutboundRulesetCreate(spaceID string) *OutboundRulesetCreate {
	return &OutboundRulesetCreate{SpaceID: spaceID}
}

// WithRule appends a rule.
func (e *OutboundRulesetCreate) WithRule(target, protocol string, fromPort, toPort int) *OutboundRulesetCreate {
	e.Params.Rules = append(e.Params.Rules, OutboundRule{
		Target:   target,
		Protocol: protocol,
		FromPort: fromPort,
		ToPort:   toPort,
	})

	return e
}

func (e *OutboundRulesetCreate) Method() string { return methodPut }
func (e *OutboundRulesetCreate) Path() string   { return "spaces/" + e.SpaceID + "/outbound-ruleset" }
func (e *OutboundRulesetCreate) Body() any      { return e.Params }
