package assignment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type VerifierSuite struct {
	suite.Suite
	verifier *Verifier
}

func TestVerifierSuite(t *testing.T) {
	suite.Run(t, new(VerifierSuite))
}

func (s *VerifierSuite) SetupTest() {
	s.verifier = NewVerifier(DefaultRoster())
}

func (s *VerifierSuite) TestVerify() {
	s.Run("rostered employee is verified with role", func() {
		result := s.verifier.Verify("maria.rosa@enterprise.com", "PROJ-ALPHA")
		s.Equal(200, result.Status)
		s.True(result.AssignmentValid)
		s.Equal("Developer", result.EmployeeRole)
		s.Equal("PROJ-ALPHA", result.AssignedProjectID)
		s.Equal("maria.rosa@enterprise.com", result.EmployeeMail)
	})

	s.Run("email match is case-insensitive", func() {
		result := s.verifier.Verify("Maria.Rosa@Enterprise.COM", "PROJ-ALPHA")
		s.Equal(200, result.Status)
		s.Equal("Developer", result.EmployeeRole)
	})

	s.Run("unrostered employee is denied", func() {
		result := s.verifier.Verify("eve.intruder@enterprise.com", "PROJ-ALPHA")
		s.Equal(401, result.Status)
		s.False(result.AssignmentValid)
		s.Equal("Unassigned", result.EmployeeRole)
		s.Equal("NONE", result.AssignedProjectID)
	})

	s.Run("rostered employee against unknown project is denied", func() {
		result := s.verifier.Verify("maria.rosa@enterprise.com", "PROJ-OMEGA")
		s.Equal(401, result.Status)
		s.Equal("Unassigned", result.EmployeeRole)
	})

	s.Run("verification is deterministic", func() {
		first := s.verifier.Verify("bob.lover@enterprise.com", "PROJ-ALPHA")
		second := s.verifier.Verify("bob.lover@enterprise.com", "PROJ-ALPHA")
		s.Equal(first, second)
	})
}

func TestLoadRoster(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.toml")
	content := `
[[project]]
id = "PROJ-ZETA"

  [[project.member]]
  email = "carol.ng@enterprise.com"
  role = "Tech Lead"
  status = "Active"

  [[project.member]]
  email = "dan.ferro@enterprise.com"
  role = "Developer"
  status = "Active"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	roster, err := LoadRoster(path)
	require.NoError(t, err)
	require.Len(t, roster["PROJ-ZETA"], 2)

	verifier := NewVerifier(roster)
	result := verifier.Verify("carol.ng@enterprise.com", "PROJ-ZETA")
	assert.Equal(t, 200, result.Status)
	assert.Equal(t, "Tech Lead", result.EmployeeRole)

	// Projects absent from the file have empty rosters.
	denied := verifier.Verify("maria.rosa@enterprise.com", "PROJ-ALPHA")
	assert.Equal(t, 401, denied.Status)
}

func TestLoadRosterRejectsMissingID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.toml")
	content := `
[[project]]
id = ""
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadRoster(path)
	assert.Error(t, err)
}
