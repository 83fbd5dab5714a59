package workflow

import "gangway/internal/protocol/models"

// Disposition is the domain meaning of a protocol outcome. Status codes
// overload transport and domain signals, so the outcome is classified once
// here and matched exhaustively downstream instead of re-deriving meaning
// from magic numbers at every branch.
type Disposition int

const (
	// DispositionFound: an active protocol exists; execution may proceed.
	DispositionFound Disposition = iota
	// DispositionDraftCreated: a new draft was just persisted.
	DispositionDraftCreated
	// DispositionNotFoundAuthorized: no protocol, but the caller may create one.
	DispositionNotFoundAuthorized
	// DispositionNotFoundBlocked: no protocol and no authorization; terminal.
	DispositionNotFoundBlocked
	// DispositionFailure: infrastructure or unexpected failure; terminal.
	DispositionFailure
)

func (d Disposition) String() string {
	switch d {
	case DispositionFound:
		return "found"
	case DispositionDraftCreated:
		return "draft_created"
	case DispositionNotFoundAuthorized:
		return "not_found_authorized"
	case DispositionNotFoundBlocked:
		return "not_found_blocked"
	default:
		return "failure"
	}
}

// Classify maps a protocol outcome to its disposition.
func Classify(outcome models.ProtocolOutcome) Disposition {
	switch {
	case outcome.Status == 200:
		return DispositionFound
	case outcome.Status == 201:
		return DispositionDraftCreated
	case outcome.Status == 403:
		return DispositionNotFoundBlocked
	case outcome.Status == 404 && outcome.AuthorizedToCreate:
		return DispositionNotFoundAuthorized
	case outcome.Status == 404:
		return DispositionNotFoundBlocked
	default:
		return DispositionFailure
	}
}
