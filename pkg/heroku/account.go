package heroku

import "time"

// Account is an account on the platform.
type Account struct {
	Timestamps

	ID                      string       `json:"id"                          yaml:"id"`
	Email                   string       `json:"email"                       yaml:"email"`
	Name                    *string      `json:"name"                        yaml:"name"`
	AllowTracking           bool         `json:"allow_tracking"              yaml:"allow_tracking"`
	Beta                    bool         `json:"beta"                        yaml:"beta"`
	Federated               bool         `json:"federated"                   yaml:"federated"`
	Verified                bool         `json:"verified"                    yaml:"verified"`
	TwoFactorAuthentication bool         `json:"two_factor_authentication"   yaml:"two_factor_authentication"`
	LastLogin               *time.Time   `json:"last_login"                  yaml:"last_login"`
	SMSNumber               *string      `json:"sms_number"                  yaml:"sms_number"`
	SuspendedAt             *time.Time   `json:"suspended_at"                yaml:"suspended_at"`
	DelinquentAt            *time.Time   `json:"delinquent_at"               yaml:"delinquent_at"`
	DefaultTeam             *Reference   `json:"default_team"                yaml:"default_team"`
	IdentityProvider        *IDReference `json:"identity_provider,omitempty" yaml:"identity_provider,omitempty"`
}

// AccountFeature is an opt-in account feature.
type AccountFeature struct {
	Timestamps

	ID            string `json:"id"             yaml:"id"`
	Name          string `json:"name"           yaml:"name"`
	DisplayName   string `json:"display_name"   yaml:"display_name"`
	Description   string `json:"description"    yaml:"description"`
	DocURL        string `json:"doc_url"        yaml:"doc_url"`
	Enabled       bool   `json:"enabled"        yaml:"enabled"`
	State         string `json:"state"          yaml:"state"`
	FeedbackEmail string `json:"feedback_email" yaml:"feedback_email"`
}

// Credit is a promotional credit on an account.
type Credit struct {
	Timestamps

	ID        string    `json:"id"         yaml:"id"`
	Amount    float64   `json:"amount"     yaml:"amount"`
	Balance   float64   `json:"balance"    yaml:"balance"`
	ExpiresAt time.Time `json:"expires_at" yaml:"expires_at"`
	Title     string    `json:"title"      yaml:"title"`
}

// Invoice is a billing period summary.
type Invoice struct {
	Timestamps

	ID           string  `json:"id"            yaml:"id"`
	Number       int     `json:"number"        yaml:"number"`
	ChargesTotal float64 `json:"charges_total" yaml:"charges_total"`
	CreditsTotal float64 `json:"credits_total" yaml:"credits_total"`
	Total        float64 `json:"total"         yaml:"total"`
	PeriodStart  string  `json:"period_start"  yaml:"period_start"`
	PeriodEnd    string  `json:"period_end"    yaml:"period_end"`
	State        int     `json:"state"         yaml:"state"`
}

// InvoiceAddress is the address printed on invoices.
type InvoiceAddress struct {
	Address1          string `json:"address_1"           yaml:"address_1"`
	Address2          string `json:"address_2"           yaml:"address_2"`
	City              string `json:"city"                yaml:"city"`
	Country           string `json:"country"             yaml:"country"`
	HerokuID          string `json:"heroku_id"           yaml:"heroku_id"`
	Other             string `json:"other"               yaml:"other"`
	PostalCode        string `json:"postal_code"         yaml:"postal_code"`
	State             string `json:"state"               yaml:"state"`
	UseInvoiceAddress bool   `json:"use_invoice_address" yaml:"use_invoice_address"`
}

// Key is an SSH public key.
type Key struct {
	Timestamps

	ID          string `json:"id"          yaml:"id"`
	Comment     string `json:"comment"     yaml:"comment"`
	Email       string `json:"email"       yaml:"email"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
	PublicKey   string `json:"public_key"  yaml:"public_key"`
}

// RateLimit is the number of requests remaining in the current window.
type RateLimit struct {
	Remaining int `json:"remaining" yaml:"remaining"`
}

// AppTransfer is a pending transfer of app ownership.
type AppTransfer struct {
	Timestamps

	ID        string           `json:"id"        yaml:"id"`
	App       Reference        `json:"app"       yaml:"app"`
	Owner     AccountReference `json:"owner"     yaml:"owner"`
	Recipient AccountReference `json:"recipient" yaml:"recipient"`
	State     string           `json:"state"     yaml:"state"`
}

// SMSNumber is the recovery number of an account.
type SMSNumber struct {
	SMSNumber *string `json:"sms_number" yaml:"sms_number"`
}

// AccountDetails fetches the authenticated account.
//
// GET /account
type AccountDetails struct {
	Returns[Account]
}

// NewAccountDetails creates an AccountDetails endpoint.
func NewAccountDetails() *AccountDetails { return &AccountDetails{} }

func (e *AccountDetails) Method() string { return methodGet }
func (e *AccountDetails) Path() string   { return "account" }

// AccountUpdate updates the authenticated account.
//
// PATCH /account
type AccountUpdate struct {
	Returns[Account]

	Params AccountUpdateParams
}

// AccountUpdateParams are the optional fields of AccountUpdate.
type AccountUpdateParams struct {
	AllowTracking *bool   `json:"allow_tracking,omitempty"`
	Beta          *bool   `json:"beta,omitempty"`
	Name          *string `json:"name,omitempty"`
}

// NewAccountUpdate creates an AccountUpdate endpoint with no changes set.
func NewAccountUpdate() *AccountUpdate { return &AccountUpdate{} }

// WithAllowTracking sets whether to allow web activity tracking.
func (e *AccountUpdate) WithAllowTracking(allow bool) *AccountUpdate {
	e.Params.AllowTracking = &allow

	return e
}

// WithBeta sets whether to opt into beta features.
func (e *AccountUpdate) WithBeta(beta bool) *AccountUpdate {
	e.Params.Beta = &beta

	return e
}

// WithName sets the full name of the account owner.
func (e *AccountUpdate) WithName(name string) *AccountUpdate {
	e.Params.Name = &name

	return e
}

func (e *AccountUpdate) Method() string { return methodPatch }
func (e *AccountUpdate) Path() string   { return "account" }
func (e *AccountUpdate) Body() any      { return e.Params }

// UserAccountDetails fetches an account by email or id.
//
// GET /users/{account_email_or_id_or_self}
type UserAccountDetails struct {
	Returns[Account]

	AccountID string
}

// NewUserAccountDetails creates a UserAccountDetails endpoint.
func NewUserAccountDetails(accountID string) *UserAccountDetails {
	return &UserAccountDetails{AccountID: accountID}
}

func (e *UserAccountDetails) Method() string { return methodGet }
func (e *UserAccountDetails) Path() string   { return "users/" + e.AccountID }

// AccountFeatureList lists account features.
type AccountFeatureList struct {
	Returns[[]AccountFeature]
}

// NewAccountFeatureList creates an AccountFeatureList endpoint.
func NewAccountFeatureList() *AccountFeatureList { return &AccountFeatureList{} }

func (e *AccountFeatureList) Method() string { return methodGet }
func (e *AccountFeatureList) Path() string   { return "account/features" }

// AccountFeatureDetails fetches one account feature by id or name.
type AccountFeatureDetails struct {
	Returns[AccountFeature]

	FeatureID string
}

// NewAccountFeatureDetails creates an AccountFeatureDetails endpoint.
func NewAccountFeatureDetails(featureID string) *AccountFeatureDetails {
	return &AccountFeatureDetails{FeatureID: featureID}
}

func (e *AccountFeatureDetails) Method() string { return methodGet }
func (e *AccountFeatureDetails) Path() string   { return "account/features/" + e.FeatureID }

// AccountFeatureUpdate enables or disables an account feature.
type AccountFeatureUpdate struct {
	Returns[AccountFeature]

	FeatureID string
	Params    AccountFeatureUpdateParams
}

// AccountFeatureUpdateParams holds the required enabled flag.
type AccountFeatureUpdateParams struct {
	Enabled bool `json:"enabled"`
}

// NewAccountFeatureUpdate creates an AccountFeatureUpdate endpoint.
func NewAccountFeatureUpdate(featureID string, enabled bool) *AccountFeatureUpdate {
	return &AccountFeatureUpdate{
		FeatureID: featureID,
		Params:    AccountFeatureUpdateParams{Enabled: enabled},
	}
}

func (e *AccountFeatureUpdate) Method() string { return methodPatch }
func (e *AccountFeatureUpdate) Path() string   { return "account/features/" + e.FeatureID }
func (e *AccountFeatureUpdate) Body() any      { return e.Params }

// CreditList lists credits on the account.
type CreditList struct {
	Returns[[]Credit]
}

// NewCreditList creates a CreditList endpoint.
func NewCreditList() *CreditList { return &CreditList{} }

func (e *CreditList) Method() string { return methodGet }
func (e *CreditList) Path() string   { return "account/credits" }

// InvoiceList lists invoices of the account.
type InvoiceList struct {
	Returns[[]Invoice]
}

// NewInvoiceList creates an InvoiceList endpoint.
func NewInvoiceList() *InvoiceList { return &InvoiceList{} }

func (e *InvoiceList) Method() string { return methodGet }
func (e *InvoiceList) Path() string   { return "account/invoices" }

// InvoiceAddressDetails fetches the invoice address.
type InvoiceAddressDetails struct {
	Returns[InvoiceAddress]
}

// NewInvoiceAddressDetails creates an InvoiceAddressDetails endpoint.
func NewInvoiceAddressDetails() *InvoiceAddressDetails { return &InvoiceAddressDetails{} }

func (e *InvoiceAddressDetails) Method() string { return methodGet }
func (e *InvoiceAddressDetails) Path() string   { return "account/invoice-address" }

// KeyList lists SSH keys.
type KeyList struct {
	Returns[[]Key]
}

// NewKeyList creates a KeyList endpoint.
func NewKeyList() *KeyList { return &KeyList{} }

func (e *KeyList) Method() string { return methodGet }
func (e *KeyList) Path() string   { return "account/keys" }

// RateLimitDetails fetches the remaining request budget.
type RateLimitDetails struct {
	Returns[RateLimit]
}

// NewRateLimitDetails creates a RateLimitDetails endpoint.
func NewRateLimitDetails() *RateLimitDetails { return &RateLimitDetails{} }

func (e *RateLimitDetails) Method() string { return methodGet }
func (e *RateLimitDetails) Path() string   { return "account/rate-limits" }

// AppTransferList lists app transfers involving the account.
type AppTransferList struct {
	Returns[[]AppTransfer]
}

// NewAppTransferList creates an AppTransferList endpoint.
func NewAppTransferList() *AppTransferList { return &AppTransferList{} }

func (e *AppTransferList) Method() string { return methodGet }
func (e *AppTransferList) Path() string   { return "account/app-transfers" }

// UserAddonList lists add-ons on apps owned by or shared with an account.
type UserAddonList struct {
	Returns[[]Addon]

	AccountID string
}

// NewUserAddonList creates a UserAddonList endpoint.
func NewUserAddonList(accountID string) *UserAddonList {
	return &UserAddonList{AccountID: accountID}
}

func (e *UserAddonList) Method() string { return methodGet }
func (e *UserAddonList) Path() string   { return "users/" + e.AccountID + "/addons" }

// UserAppList lists apps owned by or shared with an account.
type UserAppList struct {
	Returns[[]App]

	AccountID string
}

// NewUserAppList creates a UserAppList endpoint.
func NewUserAppList(accountID string) *UserAppList {
	return &UserAppList{AccountID: accountID}
}

func (e *UserAppList) Method() string { return methodGet }
func (e *UserAppList) Path() string   { return "users/" + e.AccountID + "/apps" }

// SMSNumberDetails fetches the recovery SMS number of an account.
type SMSNumberDetails struct {
	Returns[SMSNumber]

	AccountID string
}

// NewSMSNumberDetails creates an SMSNumberDetails endpoint.
func NewSMSNumberDetails(accountID string) *SMSNumberDetails {
	return &SMSNumberDetails{AccountID: accountID}
}

func (e *SMSNumberDetails) Method() string { return methodGet }
func (e *SMSNumberDetails) Path() string   { return "users/" + e.AccountID + "/sms-number" }
