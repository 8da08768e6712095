package heroku

// Addon is a provisioned add-on resource.
type Addon struct {
	Timestamps

	ID            string        `json:"id"             yaml:"id"`
	Name          string        `json:"name"           yaml:"name"`
	Actions       []AddonAction `json:"actions"        yaml:"actions"`
	AddonService  Reference     `json:"addon_service"  yaml:"addon_service"`
	BillingEntity AddonBilling  `json:"billing_entity" yaml:"billing_entity"`
	App           Reference     `json:"app"            yaml:"app"`
	BilledPrice   *AddonPrice   `json:"billed_price"   yaml:"billed_price"`
	ConfigVars    []string      `json:"config_vars"    yaml:"config_vars"`
	Plan          Reference     `json:"plan"           yaml:"plan"`
	ProviderID    string        `json:"provider_id"    yaml:"provider_id"`
	State         string        `json:"state"          yaml:"state"`
	WebURL        *string       `json:"web_url"        yaml:"web_url"`
}

// AddonAction is a provider-defined action on an add-on.
type AddonAction struct {
	ID            string `json:"id"             yaml:"id"`
	Label         string `json:"label"          yaml:"label"`
	Action        string `json:"action"         yaml:"action"`
	URL           string `json:"url"            yaml:"url"`
	RequiresOwner bool   `json:"requires_owner" yaml:"requires_owner"`
}

// AddonBilling is the entity billed for an add-on.
type AddonBilling struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// AddonPrice is the billed price of an add-on.
type AddonPrice struct {
	Cents    int    `json:"cents"    yaml:"cents"`
	Contract bool   `json:"contract" yaml:"contract"`
	Unit     string `json:"unit"     yaml:"unit"`
}

// AddonAttachment attaches an add-on to an app under a name.
type AddonAttachment struct {
	Timestamps

	ID          string    `json:"id"            yaml:"id"`
	Name        string    `json:"name"          yaml:"name"`
	Addon       Reference `json:"addon"         yaml:"addon"`
	App         Reference `json:"app"           yaml:"app"`
	LogInputURL *string   `json:"log_input_url" yaml:"log_input_url"`
	Namespace   *string   `json:"namespace"     yaml:"namespace"`
	WebURL      *string   `json:"web_url"       yaml:"web_url"`
}

// AddonWebhook is a webhook subscription on an add-on.
type AddonWebhook struct {
	Addon   Reference `json:"addon"   yaml:"addon"`
	Webhook Webhook   `json:"webhook" yaml:"webhook"`
}

// Webhook is a notification subscription.
type Webhook struct {
	Timestamps

	ID      string   `json:"id"      yaml:"id"`
	Include []string `json:"include" yaml:"include"`
	Level   string   `json:"level"   yaml:"level"`
	URL     string   `json:"url"     yaml:"url"`
}

// Webhook delivery levels.
const (
	WebhookLevelNotify = "notify"
	WebhookLevelSync   = "sync"
)

// AddonCreate provisions an add-on on an app.
//
// POST /apps/{app_id_or_name}/addons
type AddonCreate struct {
	Returns[Addon]

	AppID  string
	Params AddonCreateParams
}

// AddonCreateParams are the parameters of AddonCreate. Plan is required.
type AddonCreateParams struct {
	Attachment *AddonAttachmentName `json:"attachment,omitempty"`
	Config     map[string]string    `json:"config,omitempty"`
	Confirm    *string              `json:"confirm,omitempty"`
	Plan       string               `json:"plan"`
	Name       *string              `json:"name,omitempty"`
}

// AddonAttachmentName names the attachment created alongside an add-on.
type AddonAttachmentName struct {
	Name *string `json:"name,omitempty"`
}

// NewAddonCreate creates an AddonCreate endpoint for plan, e.g.
// "heroku-postgresql:dev".
func NewAddonCreate(appID, plan string) *AddonCreate {
	return &AddonCreate{AppID: appID, Params: AddonCreateParams{Plan: plan}}
}

// WithAttachmentName sets the name of the attachment on the app.
func (e *AddonCreate) WithAttachmentName(name string) *AddonCreate {
	e.Params.Attachment = &AddonAttachmentName{Name: &name}

	return e
}

// WithConfig sets provider-specific provisioning options.
func (e *AddonCreate) WithConfig(config map[string]string) *AddonCreate {
	e.Params.Config = config

	return e
}

// WithConfirm sets the billing entity name used for confirmation.
func (e *AddonCreate) WithConfirm(confirm string) *AddonCreate {
	e.Params.Confirm = &confirm

	return e
}

// WithName sets the globally unique add-on name.
func (e *AddonCreate) WithName(name string) *AddonCreate {
	e.Params.Name = &name

	return e
}

func (e *AddonCreate) Method() string { return methodPost }
func (e *AddonCreate) Path() string   { return "apps/" + e.AppID + "/addons" }
func (e *AddonCreate) Body() any      { return e.Params }

// AddonResolutionCreate resolves an add-on reference to candidate add-ons.
//
// POST /actions/addons/resolve
type AddonResolutionCreate struct {
	Returns[[]Addon]

	Params AddonResolutionCreateParams
}

// AddonResolutionCreateParams are the parameters of AddonResolutionCreate.
type AddonResolutionCreateParams struct {
	Addon        string  `json:"addon"`
	AddonService *string `json:"addon_service,omitempty"`
	App          *string `json:"app,omitempty"`
}

// NewAddonResolutionCreate creates an AddonResolutionCreate endpoint.
func NewAddonResolutionCreate(addon string) *AddonResolutionCreate {
	return &AddonResolutionCreate{Params: AddonResolutionCreateParams{Addon: addon}}
}

// WithAddonService narrows resolution to one service.
func (e *AddonResolutionCreate) WithAddonService(service string) *AddonResolutionCreate {
	e.Params.AddonService = &service

	return e
}

// WithApp narrows resolution to one app.
func (e *AddonResolutionCreate) WithApp(app string) *AddonResolutionCreate {
	e.Params.App = &app

	return e
}

func (e *AddonResolutionCreate) Method() string { return methodPost }
func (e *AddonResolutionCreate) Path() string   { return "actions/addons/resolve" }
func (e *AddonResolutionCreate) Body() any      { return e.Params }

// AddonActionProvision marks an add-on as provisioned. Provider only.
type AddonActionProvision struct {
	Returns[Addon]

	AddonID string
}

// NewAddonActionProvision creates an AddonActionProvision endpoint.
func NewAddonActionProvision(addonID string) *AddonActionProvision {
	return &AddonActionProvision{AddonID: addonID}
}

func (e *AddonActionProvision) Method() string { return methodPost }
func (e *AddonActionProvision) Path() string   { return "addons/" + e.AddonID + "/actions/provision" }

// AddonActionDeprovision marks an add-on as deprovisioned. Provider only.
type AddonActionDeprovision struct {
	Returns[Addon]

	AddonID string
}

// NewAddonActionDeprovision creates an AddonActionDeprovision endpoint.
func NewAddonActionDeprovision(addonID string) *AddonActionDeprovision {
	return &AddonActionDeprovision{AddonID: addonID}
}

func (e *AddonActionDeprovision) Method() string { return methodPost }
func (e *AddonActionDeprovision) Path() string {
	return "addons/" + e.AddonID + "/actions/deprovision"
}

// AttachmentCreate attaches an existing add-on to an app.
//
// POST /addon-attachments
type AttachmentCreate struct {
	Returns[AddonAttachment]

	Params AttachmentCreateParams
}

// AttachmentCreateParams are the parameters of AttachmentCreate.
type AttachmentCreateParams struct {
	Addon     string  `json:"addon"`
	App       string  `json:"app"`
	Confirm   *string `json:"confirm,omitempty"`
	Name      *string `json:"name,omitempty"`
	Namespace *string `json:"namespace,omitempty"`
}

// NewAttachmentCreate creates an AttachmentCreate endpoint.
func NewAttachmentCreate(addon, app string) *AttachmentCreate {
	return &AttachmentCreate{Params: AttachmentCreateParams{Addon: addon, App: app}}
}

// WithConfirm sets the owning app name used for confirmation.
func (e *AttachmentCreate) WithConfirm(confirm string) *AttachmentCreate {
	e.Params.Confirm = &confirm

	return e
}

// WithName sets the attachment name.
func (e *AttachmentCreate) WithName(name string) *AttachmentCreate {
	e.Params.Name = &name

	return e
}

// WithNamespace sets the attachment namespace.
func (e *AttachmentCreate) WithNamespace(namespace string) *AttachmentCreate {
	e.Params.Namespace = &namespace

	return e
}

func (e *AttachmentCreate) Method() string { return methodPost }
func (e *AttachmentCreate) Path() string   { return "addon-attachments" }
func (e *AttachmentCreate) Body() any      { return e.Params }

// AttachmentResolutionCreate resolves an attachment reference.
//
// POST /actions/addon-attachments/resolve
type AttachmentResolutionCreate struct {
	Returns[[]AddonAttachment]

	Params AttachmentResolutionCreateParams
}

// AttachmentResolutionCreateParams are the parameters of
// AttachmentResolutionCreate.
type AttachmentResolutionCreateParams struct {
	AddonAttachment string  `json:"addon_attachment"`
	AddonService    *string `json:"addon_service,omitempty"`
	App             *string `json:"app,omitempty"`
}

// NewAttachmentResolutionCreate creates an AttachmentResolutionCreate
// endpoint.
func NewAttachmentResolutionCreate(attachment string) *AttachmentResolutionCreate {
	return &AttachmentResolutionCreate{
		Params: AttachmentResolutionCreateParams{AddonAttachment: attachment},
	}
}

// WithAddonService narrows resolution to one service.
func (e *AttachmentResolutionCreate) WithAddonService(service string) *AttachmentResolutionCreate {
	e.Params.AddonService = &service

	return e
}

// WithApp narrows resolution to one app.
func (e *AttachmentResolutionCreate) WithApp(app string) *AttachmentResolutionCreate {
	e.Params.App = &app

	return e
}

func (e *AttachmentResolutionCreate) Method() string { return methodPost }
func (e *AttachmentResolutionCreate) Path() string   { return "actions/addon-attachments/resolve" }
func (e *AttachmentResolutionCreate) Body() any      { return e.Params }

// WebhookCreate subscribes a URL to add-on notifications.
//
// POST /addons/{addon_id_or_name}/webhooks
type WebhookCreate struct {
	Returns[AddonWebhook]

	AddonID string
	Params  WebhookCreateParams
}

// WebhookCreateParams are the parameters of WebhookCreate.
type WebhookCreateParams struct {
	Authorization *string  `json:"authorization,omitempty"`
	Include       []string `json:"include"`
	Level         string   `json:"level"`
	Secret        *string  `json:"secret,omitempty"`
	URL           string   `json:"url"`
}

// NewWebhookCreate creates a WebhookCreate endpoint. level is
// WebhookLevelNotify or WebhookLevelSync.
func NewWebhookCreate(addonID string, include []string, level, url string) *WebhookCreate {
	return &WebhookCreate{
		AddonID: addonID,
		Params: WebhookCreateParams{
			Include: include,
			Level:   level,
			URL:     url,
		},
	}
}

// WithAuthorization sets the Authorization header sent with notifications.
func (e *WebhookCreate) WithAuthorization(authorization string) *WebhookCreate {
	e.Params.Authorization = &authorization

	return e
}

// WithSecret sets the HMAC signing secret for notifications.
func (e *WebhookCreate) WithSecret(secret string) *WebhookCreate {
	e.Params.Secret = &secret

	return e
}

func (e *WebhookCreate) Method() string { return methodPost }
func (e *WebhookCreate) Path() string   { return "addons/" + e.AddonID + "/webhooks" }
func (e *WebhookCreate) Body() any      { return e.Params }

// AddonList lists all add-ons visible to the caller.
type AddonList struct {
	Returns[[]Addon]
}

// NewAddonList creates an AddonList endpoint.
func NewAddonList() *AddonList { return &AddonList{} }

func (e *AddonList) Method() string { return methodGet }
func (e *AddonList) Path() string   { return "addons" }

// AppAddonList lists add-ons of one app.
type AppAddonList struct {
	Returns[[]Addon]

	AppID string
}

// NewAppAddonList creates an AppAddonList endpoint.
func NewAppAddonList(appID string) *AppAddonList { return &AppAddonList{AppID: appID} }

func (e *AppAddonList) Method() string { return methodGet }
func (e *AppAddonList) Path() string   { return "apps/" + e.AppID + "/addons" }

// AddonDetails fetches an add-on by id or name.
type AddonDetails struct {
	Returns[Addon]

	AddonID string
}

// NewAddonDetails creates an AddonDetails endpoint.
func NewAddonDetails(addonID string) *AddonDetails { return &AddonDetails{AddonID: addonID} }

func (e *AddonDetails) Method() string { return methodGet }
func (e *AddonDetails) Path() string   { return "addons/" + e.AddonID }

// AddonDelete deprovisions an add-on from an app.
type AddonDelete struct {
	Returns[Addon]

	AppID   string
	AddonID string
}

// NewAddonDelete creates an AddonDelete endpoint.
func NewAddonDelete(appID, addonID string) *AddonDelete {
	return &AddonDelete{AppID: appID, AddonID: addonID}
}

func (e *AddonDelete) Method() string { return methodDelete }
func (e *AddonDelete) Path() string   { return "apps/" + e.AppID + "/addons/" + e.AddonID }
