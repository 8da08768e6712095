package client_test

import (
	"net/http"
	"testing"

	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const collaboratorJSON = `{
	"id": "c1",
	"app": {"id": "a1", "name": "example"},
	"permissions": [{"name": "view", "description": "Can view"}, {"name": "deploy", "description": "Can deploy"}],
	"role": "member",
	"user": {"id": "u2", "email": "friend@example.com", "federated": false},
	"created_at": "2024-01-01T12:00:00Z",
	"updated_at": "2024-01-01T12:00:00Z"
}`

func TestCollaborators_Execute(t *testing.T) {
	t.Parallel()

	RunExecuteTests(t, []ExecuteTestCase[heroku.Collaborator]{
		{
			Name:           "create silently",
			Endpoint:       heroku.NewCollaboratorCreate("example", "friend@example.com").WithSilent(true),
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/apps/example/collaborators",
			ExpectedBody:   `{"user":"friend@example.com","silent":true}`,
			StatusCode:     http.StatusCreated,
			Response:       collaboratorJSON,
			Check: func(t *testing.T, collaborator *heroku.Collaborator) {
				t.Helper()

				require.Len(t, collaborator.Permissions, 2)
				assert.Equal(t, "deploy", collaborator.Permissions[1].Name)
				require.NotNil(t, collaborator.Role)
				assert.Equal(t, "member", *collaborator.Role)
			},
		},
		{
			Name:           "details",
			Endpoint:       heroku.NewCollaboratorDetails("example", "friend@example.com"),
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/apps/example/collaborators/friend@example.com",
			StatusCode:     http.StatusOK,
			Response:       collaboratorJSON,
		},
		{
			Name:           "delete",
			Endpoint:       heroku.NewCollaboratorDelete("example", "c1"),
			ExpectedMethod: http.MethodDelete,
			ExpectedPath:   "/apps/example/collaborators/c1",
			StatusCode:     http.StatusOK,
			Response:       collaboratorJSON,
		},
	})
}

func TestCollaborators_List(t *testing.T) {
	t.Parallel()

	RunExecuteTests(t, []ExecuteTestCase[[]heroku.Collaborator]{
		{
			Name:           "list",
			Endpoint:       heroku.NewCollaboratorList("example"),
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/apps/example/collaborators",
			StatusCode:     http.StatusOK,
			Response:       "[" + collaboratorJSON + "]",
			Check: func(t *testing.T, collaborators *[]heroku.Collaborator) {
				t.Helper()

				require.Len(t, *collaborators, 1)
				assert.Equal(t, "friend@example.com", (*collaborators)[0].User.Email)
			},
		},
	})
}
