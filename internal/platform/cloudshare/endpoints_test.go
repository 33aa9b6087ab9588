package cloudshare

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/report"
)

func jsonHandler(t *testing.T, wantMethod, wantPath, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantMethod, r.Method)
		assert.Equal(t, "/api/v3"+wantPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestPing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantErr   bool
		malformed bool
	}{
		{name: "pong", body: `{"result":"Pong"}`},
		{name: "case insensitive", body: `{"result":"pong"}`},
		{name: "wrong ack", body: `{"result":"nope"}`, wantErr: true, malformed: true},
		{name: "not json", body: `<html>`, wantErr: true, malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, collector := newTestClient(t, jsonHandler(t, http.MethodGet, EndpointPing, tt.body))

			err := c.Ping(context.Background())
			if !tt.wantErr {
				require.NoError(t, err)
				assert.True(t, collector.Empty())
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.malformed, IsMalformed(err))
			require.Equal(t, 1, collector.Len())
			assert.Equal(t, report.TagConnectivity, collector.Records()[0].Tag)
		})
	}
}

func TestCurrentUser(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, jsonHandler(t, http.MethodGet, EndpointCurrentUser,
		`{"id":"U1","email":"owner@nextgen.group","firstName":"Owner"}`))

	user, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "owner@nextgen.group", user.Email)
}

func TestCurrentUser_MissingEmail(t *testing.T) {
	t.Parallel()
	c, collector := newTestClient(t, jsonHandler(t, http.MethodGet, EndpointCurrentUser, `{"id":"U1"}`))

	_, err := c.CurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, IsMalformed(err))
	assert.Len(t, collector.ByTag(report.TagIdentity), 1)
}

func TestCreateProject(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3"+EndpointCreateProject, r.URL.Path)
		var req CreateProjectRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "SUB", req.SubscriptionID)
		assert.Equal(t, "NEXTGEN CyberLAB - Acme", req.ProjectName)
		assert.Equal(t, []string{"Acme"}, req.TeamNames)
		assert.Equal(t, 0, req.ProjectType)
		_, _ = w.Write([]byte(`{"id":"P1"}`))
	})

	p, err := c.CreateProject(context.Background(), CreateProjectRequest{
		SubscriptionID: "SUB",
		ProjectName:    "NEXTGEN CyberLAB - Acme",
		TeamNames:      []string{"Acme"},
	})
	require.NoError(t, err)
	assert.Equal(t, "P1", p.ID)
}

func TestCreateProject_MissingID(t *testing.T) {
	t.Parallel()
	c, collector := newTestClient(t, jsonHandler(t, http.MethodPost, EndpointCreateProject,
		`{"message":"Project name already exists"}`))

	_, err := c.CreateProject(context.Background(), CreateProjectRequest{ProjectName: "x"})
	require.Error(t, err)
	assert.True(t, IsMalformed(err))

	records := collector.ByTag(report.TagProject)
	require.Len(t, records, 1)
	assert.Equal(t, report.KindMalformed, records[0].Kind)
	assert.Contains(t, records[0].Error, "Project name already exists")
}

func TestListTeams(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "P1", r.URL.Query().Get("projectId"))
		assert.Equal(t, "true", r.URL.Query().Get("getRows"))
		assert.Equal(t, "0", r.URL.Query().Get("skip"))
		_, _ = w.Write([]byte(`{"rows":[{"id":"T1","name":"Acme"},{"id":"T2"}]}`))
	})

	teams, err := c.ListTeams(context.Background(), "P1")
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "T1", teams[0].ID)
}

func TestListTeams_Empty(t *testing.T) {
	t.Parallel()
	c, collector := newTestClient(t, jsonHandler(t, http.MethodGet, EndpointTeams, `{"rows":[]}`))

	_, err := c.ListTeams(context.Background(), "P1")
	require.Error(t, err)
	assert.True(t, IsMalformed(err))
	assert.Len(t, collector.ByTag(report.TagTeam), 1)
}

func TestListPolicies(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, jsonHandler(t, http.MethodGet, EndpointPolicies("P1"), `[{"id":"PL1"},{"id":"PL2"}]`))

	policies, err := c.ListPolicies(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, "PL1", policies[0].ID)
}

func TestListPolicies_Empty(t *testing.T) {
	t.Parallel()
	c, collector := newTestClient(t, jsonHandler(t, http.MethodGet, EndpointPolicies("P1"), `[]`))

	_, err := c.ListPolicies(context.Background(), "P1")
	require.Error(t, err)
	assert.Len(t, collector.ByTag(report.TagPolicy), 1)
}

func TestInviteProjectMember(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req InvitationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "carol@acme.com", req.Email)
		assert.Equal(t, 8, req.UserLevel)
		assert.False(t, req.SuppressEmails)
		_, _ = w.Write([]byte(`"ok"`))
	})

	_, err := c.InviteProjectMember(context.Background(), InvitationRequest{
		Email: "carol@acme.com", FirstName: "Carol", LastName: "Lee",
		ProjectID: "P1", TeamID: "T1", UserLevel: 8,
	})
	require.NoError(t, err)
}

func TestInviteProjectMember_Failure(t *testing.T) {
	t.Parallel()
	c, collector := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"User already invited"}`))
	})

	_, err := c.InviteProjectMember(context.Background(), InvitationRequest{Email: "x@y.co"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
	assert.Len(t, collector.ByTag(report.TagInvitation), 1)
}

func TestCreateEnvironment(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		env := raw["environment"].(map[string]any)
		assert.Equal(t, "owner@nextgen.group", env["OwnerEmail"])
		assert.Equal(t, []any{}, env["externalCloudData"])
		assert.Len(t, raw["itemsCart"], 1)
		assert.Equal(t, false, raw["enableAutomaticSnapshot"])
		_, _ = w.Write([]byte(`{"environmentId":"E1"}`))
	})

	env, err := c.CreateEnvironment(context.Background(), EnvironmentRequest{
		Environment: EnvironmentSpec{OwnerEmail: "owner@nextgen.group", ExternalCloudData: []any{}},
		ItemsCart:   []CartItem{{Type: CartItemTypeTemplateVM, Name: "Kali", TemplateVMID: "VM1", ChocolateyPackages: []string{}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "E1", env.ID)
}
