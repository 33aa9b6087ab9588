package roster

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"user.name+tag@sub.example.com",
		"alice@example.com",
		"first-last@acme.co.uk",
		"under_score@host-name.io",
	}
	invalid := []string{
		"not-an-email",
		"user@",
		"@domain.com",
		"user@localhost",
		"a+b+c@example.com",
		"space in@example.com",
		"",
	}

	for _, e := range valid {
		assert.NoError(t, ValidateEmail(e), e)
	}
	for _, e := range invalid {
		err := ValidateEmail(e)
		assert.Error(t, err, e)
		assert.True(t, errors.Is(err, ErrInvalidEmail), e)
	}
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "2", want: RoleTeamMember},
		{in: "4", want: RoleTeamManager},
		{in: " 8 ", want: RoleProjectManager},
		{in: "1", wantErr: true},
		{in: "16", wantErr: true},
		{in: "admin", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidRole, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestRole_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Team Member", RoleTeamMember.String())
	assert.Equal(t, "Team Manager", RoleTeamManager.String())
	assert.Equal(t, "Project Manager", RoleProjectManager.String())
	assert.Equal(t, "Role(3)", Role(3).String())
}

func TestRoleOptions_HighestFirst(t *testing.T) {
	t.Parallel()
	opts := RoleOptions()
	require.Len(t, opts, 3)
	assert.Equal(t, RoleProjectManager, opts[0].Value)
	assert.Equal(t, RoleTeamMember, opts[2].Value)
}

func TestInvitee_FullName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Carol Lee", Invitee{FirstName: "Carol", LastName: "Lee"}.FullName())
	assert.Equal(t, "Carol", Invitee{FirstName: "Carol"}.FullName())
	assert.Equal(t, "Lee", Invitee{LastName: "Lee"}.FullName())
}

func TestResolve(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	existing := filepath.Join(dir, "users.csv")
	require.NoError(t, os.WriteFile(existing, []byte("a@b.co,A,B\n"), 0o600))
	missing := filepath.Join(dir, "missing.csv")

	t.Run("file wins", func(t *testing.T) {
		src, interactive, err := Resolve(existing, true, nil)
		require.NoError(t, err)
		assert.False(t, interactive)
		assert.IsType(t, &CSVSource{}, src)
	})

	t.Run("missing file escalates to interactive", func(t *testing.T) {
		src, interactive, err := Resolve(missing, true, &scriptedPrompter{})
		require.NoError(t, err)
		assert.True(t, interactive)
		assert.IsType(t, &InteractiveSource{}, src)
	})

	t.Run("missing file without interactive", func(t *testing.T) {
		_, _, err := Resolve(missing, false, nil)
		assert.ErrorIs(t, err, ErrNoSource)
	})
}

// scriptedPrompter replays canned entries.
type scriptedPrompter struct {
	entries []Invitee
	next    int
	err     error
}

func (p *scriptedPrompter) PromptInvitee(_ context.Context) (Invitee, error) {
	if p.err != nil {
		return Invitee{}, p.err
	}
	inv := p.entries[p.next]
	p.next++
	return inv, nil
}

func (p *scriptedPrompter) ConfirmAnother(_ context.Context) (bool, error) {
	return p.next < len(p.entries), nil
}

func TestInteractiveSource_Load(t *testing.T) {
	t.Parallel()
	p := &scriptedPrompter{entries: []Invitee{
		{Email: "carol@acme.com", FirstName: "Carol", LastName: "Lee", Role: RoleProjectManager},
		{Email: "bad-address", FirstName: "Bad", LastName: "Entry", Role: RoleTeamMember},
		{Email: " dan@acme.com ", FirstName: "Dan", LastName: "Ho", Role: Role(3)},
	}}

	r, err := NewInteractiveSource(p).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OriginInteractive, r.Origin)
	require.Len(t, r.Invitees, 2)
	assert.Equal(t, "carol@acme.com", r.Invitees[0].Email)
	assert.Equal(t, "dan@acme.com", r.Invitees[1].Email)
	assert.Equal(t, DefaultRole, r.Invitees[1].Role)
	assert.Equal(t, 1, r.DefaultRoleCount)
	require.Len(t, r.Skipped, 1)
	assert.Equal(t, 2, r.Skipped[0].Line)
}

func TestInteractiveSource_PromptError(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("user aborted")
	_, err := NewInteractiveSource(&scriptedPrompter{err: wantErr}).Load(context.Background())
	assert.ErrorIs(t, err, wantErr)
}
