package roster

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_DefaultAndExplicitRoles(t *testing.T) {
	t.Parallel()
	input := "alice@example.com,Alice,Smith\nbob@example.com,Bob,Jones,2\n"

	r, err := ParseCSV(strings.NewReader(input), "users.csv")
	require.NoError(t, err)
	require.Len(t, r.Invitees, 2)

	assert.Equal(t, Invitee{Email: "alice@example.com", FirstName: "Alice", LastName: "Smith", Role: RoleProjectManager}, r.Invitees[0])
	assert.Equal(t, 8, r.Invitees[0].Role.Level())
	assert.Equal(t, RoleTeamMember, r.Invitees[1].Role)
	assert.Equal(t, 1, r.DefaultRoleCount)
	assert.Empty(t, r.Skipped)
}

func TestParseCSV_TwoFieldRowSkipped(t *testing.T) {
	t.Parallel()
	input := "short@example.com,Short\ncarol@acme.com,Carol,Lee,8\n"

	r, err := ParseCSV(strings.NewReader(input), "users.csv")
	require.NoError(t, err)

	require.Len(t, r.Invitees, 1)
	assert.Equal(t, "carol@acme.com", r.Invitees[0].Email)

	require.Len(t, r.Skipped, 1)
	assert.Equal(t, 1, r.Skipped[0].Line)
	assert.Contains(t, r.Skipped[0].Reason, "at least 3 fields")
	assert.Contains(t, strings.Join(r.Diagnostics, "\n"), "line 1 skipped")
}

func TestParseCSV_InvalidEmailSkipped(t *testing.T) {
	t.Parallel()
	input := "not-an-email,No,Body\n"

	r, err := ParseCSV(strings.NewReader(input), "users.csv")
	require.NoError(t, err)
	assert.Empty(t, r.Invitees)
	require.Len(t, r.Skipped, 1)
	assert.Contains(t, r.Skipped[0].Reason, "invalid email")
}

func TestParseCSV_OutOfSetRoleDefaults(t *testing.T) {
	t.Parallel()
	input := "dave@example.com,Dave,Doe,5\n"

	r, err := ParseCSV(strings.NewReader(input), "users.csv")
	require.NoError(t, err)
	require.Len(t, r.Invitees, 1)
	assert.Equal(t, DefaultRole, r.Invitees[0].Role)
	assert.Equal(t, 1, r.DefaultRoleCount)
	assert.Contains(t, strings.Join(r.Diagnostics, "\n"), "invalid role code")
}

func TestParseCSV_BOMHeaderAndBlankLines(t *testing.T) {
	t.Parallel()
	input := "\xEF\xBB\xBFEmail,First Name,Last Name,Role\n\n  erin@example.com , Erin , Ng , 4 \n,,,\n"

	r, err := ParseCSV(strings.NewReader(input), "users.csv")
	require.NoError(t, err)
	require.Len(t, r.Invitees, 1)
	assert.Equal(t, Invitee{Email: "erin@example.com", FirstName: "Erin", LastName: "Ng", Role: RoleTeamManager}, r.Invitees[0])
	assert.Empty(t, r.Skipped)
	assert.Zero(t, r.DefaultRoleCount)
}

func TestParseCSV_EmptyRoleColumnCountsAsDefault(t *testing.T) {
	t.Parallel()
	r, err := ParseCSV(strings.NewReader("frank@example.com,Frank,Li,\n"), "users.csv")
	require.NoError(t, err)
	require.Len(t, r.Invitees, 1)
	assert.Equal(t, DefaultRole, r.Invitees[0].Role)
	assert.Equal(t, 1, r.DefaultRoleCount)
}

func TestParseCSV_BareQuoteKeepsSurroundingRows(t *testing.T) {
	t.Parallel()
	in := "alice@example.com,Alice,Smith,2\n" +
		"bob@example.com,Bob \"Bobby\",Jones,4\n" +
		"carol@example.com,Carol,Lee\n"

	r, err := ParseCSV(strings.NewReader(in), "users.csv")
	require.NoError(t, err)

	require.Len(t, r.Invitees, 3)
	assert.Equal(t, "alice@example.com", r.Invitees[0].Email)
	assert.Equal(t, `Bob "Bobby"`, r.Invitees[1].FirstName)
	assert.Equal(t, RoleTeamManager, r.Invitees[1].Role)
	assert.Equal(t, "carol@example.com", r.Invitees[2].Email)
	assert.Empty(t, r.Skipped)
}

func TestParseCSV_UnterminatedQuoteSkipsOnlyThatRow(t *testing.T) {
	t.Parallel()
	in := "alice@example.com,Alice,Smith\n\"unterminated,Bob,Jones\n"

	r, err := ParseCSV(strings.NewReader(in), "users.csv")
	require.NoError(t, err)

	require.Len(t, r.Invitees, 1)
	assert.Equal(t, "alice@example.com", r.Invitees[0].Email)
	require.Len(t, r.Skipped, 1)
	assert.Equal(t, 2, r.Skipped[0].Line)
}

func TestCSVSource_Load(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("carol@acme.com,Carol,Lee,8\n"), 0o600))

	r, err := NewCSVSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, path, r.Origin)
	assert.Equal(t, 1, r.Len())
}

func TestCSVSource_Load_Missing(t *testing.T) {
	t.Parallel()
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "missing.csv")).Load(context.Background())
	require.Error(t, err)
}
