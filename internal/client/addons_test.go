package client_test

import (
	"net/http"
	"testing"

	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addonJSON = `{
	"id": "ad1",
	"name": "postgresql-curly-12345",
	"actions": [],
	"addon_service": {"id": "svc1", "name": "heroku-postgresql"},
	"billing_entity": {"id": "a1", "name": "example", "type": "app"},
	"app": {"id": "a1", "name": "example"},
	"billed_price": {"cents": 0, "contract": false, "unit": "month"},
	"config_vars": ["DATABASE_URL"],
	"plan": {"id": "p1", "name": "heroku-postgresql:essential-0"},
	"provider_id": "resource1",
	"state": "provisioned",
	"web_url": null,
	"created_at": "2024-01-01T12:00:00Z",
	"updated_at": "2024-01-01T12:00:00Z"
}`

func TestAddons_Execute(t *testing.T) {
	t.Parallel()

	RunExecuteTests(t, []ExecuteTestCase[heroku.Addon]{
		{
			Name: "create",
			Endpoint: heroku.NewAddonCreate("example", "heroku-postgresql:essential-0").
				WithAttachmentName("DATABASE").
				WithConfig(map[string]string{"version": "16"}),
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/apps/example/addons",
			ExpectedBody: `{
				"attachment": {"name": "DATABASE"},
				"config": {"version": "16"},
				"plan": "heroku-postgresql:essential-0"
			}`,
			StatusCode: http.StatusCreated,
			Response:   addonJSON,
			Check: func(t *testing.T, addon *heroku.Addon) {
				t.Helper()

				assert.Equal(t, "provisioned", addon.State)
				assert.Equal(t, []string{"DATABASE_URL"}, addon.ConfigVars)
				require.NotNil(t, addon.BilledPrice)
				assert.Equal(t, "month", addon.BilledPrice.Unit)
				assert.Nil(t, addon.WebURL)
			},
		},
		{
			Name:           "details",
			Endpoint:       heroku.NewAddonDetails("ad1"),
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/addons/ad1",
			StatusCode:     http.StatusOK,
			Response:       addonJSON,
		},
		{
			Name:           "delete",
			Endpoint:       heroku.NewAddonDelete("example", "ad1"),
			ExpectedMethod: http.MethodDelete,
			ExpectedPath:   "/apps/example/addons/ad1",
			StatusCode:     http.StatusOK,
			Response:       addonJSON,
		},
		{
			Name:           "mark provisioned",
			Endpoint:       heroku.NewAddonActionProvision("ad1"),
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/addons/ad1/actions/provision",
			StatusCode:     http.StatusOK,
			Response:       addonJSON,
		},
		{
			Name:           "payment required",
			Endpoint:       heroku.NewAddonCreate("example", "heroku-postgresql:standard-0"),
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/apps/example/addons",
			ExpectedBody:   `{"plan":"heroku-postgresql:standard-0"}`,
			StatusCode:     http.StatusPaymentRequired,
			Response:       `{"id":"verification_needed","message":"This add-on requires a verified account."}`,
			WantErr:        true,
			ErrMessage:     "verification_needed",
		},
	})
}

func TestAddonResolution_Execute(t *testing.T) {
	t.Parallel()

	RunExecuteTests(t, []ExecuteTestCase[[]heroku.Addon]{
		{
			Name:           "resolve",
			Endpoint:       heroku.NewAddonResolutionCreate("DATABASE").WithApp("example"),
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/actions/addons/resolve",
			ExpectedBody:   `{"addon":"DATABASE","app":"example"}`,
			StatusCode:     http.StatusOK,
			Response:       "[" + addonJSON + "]",
			Check: func(t *testing.T, addons *[]heroku.Addon) {
				t.Helper()

				require.Len(t, *addons, 1)
				assert.Equal(t, "heroku-postgresql", (*addons)[0].AddonService.Name)
			},
		},
	})
}

func TestAttachments_Execute(t *testing.T) {
	t.Parallel()

	RunExecuteTests(t, []ExecuteTestCase[heroku.AddonAttachment]{
		{
			Name:           "attach",
			Endpoint:       heroku.NewAttachmentCreate("postgresql-curly-12345", "other-app").WithName("SHARED_DB"),
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/addon-attachments",
			ExpectedBody:   `{"addon":"postgresql-curly-12345","app":"other-app","name":"SHARED_DB"}`,
			StatusCode:     http.StatusCreated,
			Response: `{"id":"att1","name":"SHARED_DB","addon":{"id":"ad1","name":"postgresql-curly-12345"},` +
				`"app":{"id":"a2","name":"other-app"},"namespace":null}`,
			Check: func(t *testing.T, attachment *heroku.AddonAttachment) {
				t.Helper()

				assert.Equal(t, "SHARED_DB", attachment.Name)
				assert.Equal(t, "other-app", attachment.App.Name)
				assert.Nil(t, attachment.Namespace)
			},
		},
	})
}

func TestWebhooks_Execute(t *testing.T) {
	t.Parallel()

	RunExecuteTests(t, []ExecuteTestCase[heroku.AddonWebhook]{
		{
			Name: "create",
			Endpoint: heroku.NewWebhookCreate("ad1", []string{"api:release"}, heroku.WebhookLevelSync,
				"https://hooks.example.com").WithSecret("s3cret"),
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/addons/ad1/webhooks",
			ExpectedBody: `{"include":["api:release"],"level":"sync","secret":"s3cret",` +
				`"url":"https://hooks.example.com"}`,
			StatusCode: http.StatusCreated,
			Response: `{"addon":{"id":"ad1","name":"postgresql-curly-12345"},` +
				`"webhook":{"id":"wh1","include":["api:release"],"level":"sync","url":"https://hooks.example.com"}}`,
			Check: func(t *testing.T, webhook *heroku.AddonWebhook) {
				t.Helper()

				assert.Equal(t, "wh1", webhook.Webhook.ID)
				assert.Equal(t, heroku.WebhookLevelSync, webhook.Webhook.Level)
			},
		},
	})
}
