package client_test

import (
	"net/http"
	"testing"

	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spaceJSON = `{
	"id": "sp1",
	"name": "prod",
	"cidr": "10.0.0.0/16",
	"data_cidr": "10.1.0.0/16",
	"organization": {"name": "acme"},
	"team": {"id": "t1", "name": "acme"},
	"region": {"id": "r1", "name": "virginia"},
	"shield": true,
	"state": "allocated",
	"created_at": "2024-01-01T12:00:00Z",
	"updated_at": "2024-01-01T12:00:00Z"
}`

func TestSpaces_Execute(t *testing.T) {
	t.Parallel()

	RunExecuteTests(t, []ExecuteTestCase[heroku.Space]{
		{
			Name:           "create",
			Endpoint:       heroku.NewSpaceCreate("prod", "acme").WithRegion("virginia").WithShield(true),
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/spaces",
			ExpectedBody:   `{"name":"prod","team":"acme","region":"virginia","shield":true}`,
			StatusCode:     http.StatusCreated,
			Response:       spaceJSON,
			Check: func(t *testing.T, space *heroku.Space) {
				t.Helper()

				assert.True(t, space.Shield)
				assert.Equal(t, "acme", space.Team.Name)
				assert.Equal(t, "10.1.0.0/16", space.DataCIDR)
			},
		},
		{
			Name:           "rename",
			Endpoint:       heroku.NewSpaceUpdate("sp1").WithName("production"),
			ExpectedMethod: http.MethodPatch,
			ExpectedPath:   "/spaces/sp1",
			ExpectedBody:   `{"name":"production"}`,
			StatusCode:     http.StatusOK,
			Response:       spaceJSON,
		},
		{
			Name:           "delete",
			Endpoint:       heroku.NewSpaceDelete("sp1"),
			ExpectedMethod: http.MethodDelete,
			ExpectedPath:   "/spaces/sp1",
			StatusCode:     http.StatusOK,
			Response:       spaceJSON,
		},
	})
}

func TestSpaceAccess_Execute(t *testing.T) {
	t.Parallel()

	RunExecuteTests(t, []ExecuteTestCase[heroku.SpaceAccess]{
		{
			Name:           "update permissions",
			Endpoint:       heroku.NewSpaceAccessUpdate("sp1", "u2", "view", "deploy"),
			ExpectedMethod: http.MethodPatch,
			ExpectedPath:   "/spaces/sp1/members/u2",
			ExpectedBody: mustJSON(t, heroku.SpaceAccessUpdateParams{
				Permissions: []heroku.SpacePermission{{Name: "view"}, {Name: "deploy"}},
			}),
			StatusCode: http.StatusOK,
			Response: `{"id":"acc1","space":{"id":"sp1","name":"prod"},"user":{"email":"friend@example.com"},` +
				`"permissions":[{"name":"view"},{"name":"deploy"}]}`,
			Check: func(t *testing.T, access *heroku.SpaceAccess) {
				t.Helper()

				require.Len(t, access.Permissions, 2)
				assert.Equal(t, "friend@example.com", access.User.Email)
			},
		},
	})
}

func TestSpaceNAT_Execute(t *testing.T) {
	t.Parallel()

	RunExecuteTests(t, []ExecuteTestCase[heroku.SpaceNAT]{
		{
			Name:           "details",
			Endpoint:       heroku.NewSpaceNATDetails("sp1"),
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/spaces/sp1/nat",
			StatusCode:     http.StatusOK,
			Response:       `{"sources":["203.0.113.1","203.0.113.2"],"state":"enabled"}`,
			Check: func(t *testing.T, nat *heroku.SpaceNAT) {
				t.Helper()

				assert.Equal(t, []string{"203.0.113.1", "203.0.113.2"}, nat.Sources)
			},
		},
	})
}

func TestVPNs_Execute(t *testing.T) {
	t.Parallel()

	vpnJSON := `{"id":"v1","name":"office","public_ip":"198.51.100.1","routable_cidrs":["172.16.0.0/16"],` +
		`"space_cidr_block":"10.0.0.0/16","ike_version":1,"status":"active",` +
		`"tunnels":[{"ip":"52.0.0.1","customer_ip":"198.51.100.1","pre_shared_key":"psk","status":"UP"}]}`

	RunExecuteTests(t, []ExecuteTestCase[heroku.VPN]{
		{
			Name:           "create",
			Endpoint:       heroku.NewVPNCreate("sp1", "office", "198.51.100.1", []string{"172.16.0.0/16"}),
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/spaces/sp1/vpn-connections",
			ExpectedBody:   `{"name":"office","public_ip":"198.51.100.1","routable_cidrs":["172.16.0.0/16"]}`,
			StatusCode:     http.StatusCreated,
			Response:       vpnJSON,
			Check: func(t *testing.T, vpn *heroku.VPN) {
				t.Helper()

				require.Len(t, vpn.Tunnels, 1)
				assert.Equal(t, "psk", vpn.Tunnels[0].PreSharedKey)
				assert.Equal(t, "10.0.0.0/16", vpn.SpaceCIDR)
			},
		},
		{
			Name:           "delete",
			Endpoint:       heroku.NewVPNDelete("sp1", "v1"),
			ExpectedMethod: http.MethodDelete,
			ExpectedPath:   "/spaces/sp1/vpn-connections/v1",
			StatusCode:     http.StatusOK,
			Response:       vpnJSON,
		},
	})
}

func TestRulesets_Execute(t *testing.T) {
	t.Parallel()

	RunExecuteTests(t, []ExecuteTestCase[heroku.InboundRuleset]{
		{
			Name: "replace inbound",
			Endpoint: heroku.NewInboundRulesetCreate("sp1").
				WithRule(heroku.RuleActionAllow, "0.0.0.0/0").
				WithRule(heroku.RuleActionDeny, "10.0.0.0/8"),
			ExpectedMethod: http.MethodPut,
			ExpectedPath:   "/spaces/sp1/inbound-ruleset",
			ExpectedBody:   `{"rules":[{"action":"allow","source":"0.0.0.0/0"},{"action":"deny","source":"10.0.0.0/8"}]}`,
			StatusCode:     http.StatusOK,
			Response:       `{"id":"ir1","rules":[{"action":"allow","source":"0.0.0.0/0"},{"action":"deny","source":"10.0.0.0/8"}]}`,
			Check: func(t *testing.T, ruleset *heroku.InboundRuleset) {
				t.Helper()

				require.Len(t, ruleset.Rules, 2)
				assert.Equal(t, heroku.RuleActionDeny, ruleset.Rules[1].Action)
			},
		},
		{
			Name:           "current inbound",
			Endpoint:       heroku.NewInboundRulesetCurrent("sp1"),
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/spaces/sp1/inbound-ruleset",
			StatusCode:     http.StatusOK,
			Response:       `{"id":"ir1","rules":[]}`,
		},
	})

	RunExecuteTests(t, []ExecuteTestCase[heroku.OutboundRuleset]{
		{
			Name:           "replace outbound",
			Endpoint:       heroku.NewOutboundRulesetCreate("sp1").WithRule("0.0.0.0/0", "tcp", 443, 443),
			ExpectedMethod: http.MethodPut,
			ExpectedPath:   "/spaces/sp1/outbound-ruleset",
			ExpectedBody:   `{"rules":[{"target":"0.0.0.0/0","protocol":"tcp","from_port":443,"to_port":443}]}`,
			StatusCode:     http.StatusOK,
			Response:       `{"id":"or1","rules":[{"target":"0.0.0.0/0","protocol":"tcp","from_port":443,"to_port":443}]}`,
		},
	})
}
