package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// PersistResult is the status-coded outcome of a persistence attempt.
type PersistResult struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// metadataBlob is the persistence request contract. Absent optional fields
// persist as empty values without failing the whole operation.
type metadataBlob struct {
	AssignedProjectID string `json:"assigned_project_id"`
	EmployeeMail      string `json:"employee_mail"`
	EmployeeRole      string `json:"employee_role"`
}

// Adapter writes validated assignment facts into session state. Parsing or
// store failures are recovered locally and reported as a structured 500;
// nothing raises past this boundary.
type Adapter struct {
	store  StateStore
	logger *slog.Logger
}

// NewAdapter builds the adapter over any state store variant.
func NewAdapter(store StateStore, logger *slog.Logger) *Adapter {
	return &Adapter{store: store, logger: logger}
}

// Persist parses the metadata blob and overwrites exactly three session keys.
// A malformed blob yields status 500 and zero state mutations.
func (a *Adapter) Persist(ctx context.Context, metadataJSON []byte) PersistResult {
	var blob metadataBlob
	if err := json.Unmarshal(metadataJSON, &blob); err != nil {
		a.logger.ErrorContext(ctx, "failed to parse persistence request", "error", err)
		return PersistResult{Status: 500, Message: "Persistence failed: metadata could not be parsed."}
	}

	writes := []struct{ key, value string }{
		{KeyProjectID, blob.AssignedProjectID},
		{KeyUserEmail, blob.EmployeeMail},
		{KeyUserRole, blob.EmployeeRole},
	}
	for _, w := range writes {
		if err := a.store.Set(ctx, w.key, w.value); err != nil {
			a.logger.ErrorContext(ctx, "failed to write session state", "key", w.key, "error", err)
			return PersistResult{Status: 500, Message: fmt.Sprintf("Persistence failed while writing %s.", w.key)}
		}
	}

	return PersistResult{Status: 200, Message: "Metadata successfully updated and persisted."}
}
