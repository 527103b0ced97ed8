package store

import (
	"fmt"
	"time"

	"github.com/campuslink/peerhelp-api/schema"
)

// Sentinel errors surfaced by the store adapter. Callers branch on
// these; anything else is an unexpected store failure.
var (
	// ErrRequestNotFound - no help request with the given id
	ErrRequestNotFound = fmt.Errorf("help request not found")

	// ErrStatusConflict - a conditional status write lost a race: the
	// stored status no longer matched the expected one at write time
	ErrStatusConflict = fmt.Errorf("help request status changed concurrently")

	// ErrInvalidRequestState - the request exists but its lifecycle
	// state forbids the operation
	ErrInvalidRequestState = fmt.Errorf("help request is not in a state allowing this operation")

	// ErrStoreUnavailable - the backing store did not answer within
	// the operation deadline
	ErrStoreUnavailable = fmt.Errorf("store unavailable")
)

// FeedFilter is the enumerated set of recognized feed query options.
// Zero values mean "not filtered".
type FeedFilter struct {
	// Skills is OR-matched against a request's needed skills.
	Skills []string

	// Urgency keeps only requests at exactly this level.
	Urgency schema.UrgencyLevel

	// IsRemote keeps only remote (true) or on-campus (false) requests.
	IsRemote *bool

	// MaxAgeHours drops requests created earlier than now minus this
	// window. Zero disables the cut-off.
	MaxAgeHours int
}

// PeerHelpStore is the persistence boundary of the matching core. All
// status mutations go through conditional writes: TransitionStatus and
// AcceptResponse are compare-and-swap against the currently stored
// status, so the design stays correct with any number of concurrent
// service instances sharing one database.
type PeerHelpStore interface {
	Pinger
	Closer

	CreateHelpRequest(request *schema.HelpRequest) error
	GetHelpRequest(id string) (*schema.HelpRequest, error)
	ListOpenRequests(filter FeedFilter) ([]schema.HelpRequest, error)

	// AppendResponse adds one helper offer to a request that is still
	// OPEN or RESPONDED and moves an OPEN request to RESPONDED in the
	// same write.
	AppendResponse(requestID string, response schema.Response) error

	// TransitionStatus performs a compare-and-swap status change. It
	// returns ErrStatusConflict when the stored status differs from
	// expected at the moment of the write.
	TransitionStatus(requestID string, expected, next schema.RequestStatus) error

	// AcceptResponse is the accept-specialized compare-and-swap: in a
	// single conditional write it moves RESPONDED to ACCEPTED, records
	// the accepted response id, marks that response ACCEPTED and
	// declines the remaining pending ones.
	AcceptResponse(requestID, responseID string) error

	// ExpireStaleRequests cancels OPEN and RESPONDED requests created
	// before the cut-off. Used by the retention worker.
	ExpireStaleRequests(olderThan time.Duration) (int64, error)

	// ArchiveSettledRequests removes RESOLVED and CANCELLED requests
	// whose last update is past the retention window.
	ArchiveSettledRequests(retention time.Duration) (int64, error)
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}
