// Package assignment validates an employee's role against a project roster.
// Verification is a pure function of roster and inputs: no side effects,
// fully deterministic.
package assignment

import (
	"fmt"
	"strings"
)

// Result is the structured outcome of one assignment check. It is produced
// once per onboarding session and never mutated after write; a later check
// for the same session produces a new result.
type Result struct {
	Status            int    `json:"status"`
	AssignmentValid   bool   `json:"assignment_valid"`
	EmployeeRole      string `json:"employee_role"`
	AssignedProjectID string `json:"assigned_project_id"`
	EmployeeMail      string `json:"employee_mail"`
	Message           string `json:"message"`
}

// Verifier checks employee assignments against a per-project roster.
type Verifier struct {
	roster Roster
}

// NewVerifier builds a verifier over the given roster.
func NewVerifier(roster Roster) *Verifier {
	return &Verifier{roster: roster}
}

// Verify matches the employee email (case-insensitively) against the roster
// scoped to projectID. A match returns 200 with the roster role; a miss
// returns 401 with role "Unassigned" and project "NONE".
func (v *Verifier) Verify(employeeEmail, projectID string) Result {
	needle := strings.ToLower(employeeEmail)

	for _, member := range v.roster[projectID] {
		if strings.ToLower(member.Email) == needle {
			return Result{
				Status:            200,
				AssignmentValid:   true,
				EmployeeRole:      member.Role,
				AssignedProjectID: projectID,
				EmployeeMail:      employeeEmail,
				Message:           fmt.Sprintf("Assignment verified. User is the assigned %s for %s.", member.Role, projectID),
			}
		}
	}

	return Result{
		Status:            401,
		AssignmentValid:   false,
		EmployeeRole:      "Unassigned",
		AssignedProjectID: "NONE",
		EmployeeMail:      employeeEmail,
		Message:           fmt.Sprintf("Access denied. Employee is not currently assigned to project %s.", projectID),
	}
}
