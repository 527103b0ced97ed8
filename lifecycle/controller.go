package lifecycle

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/campuslink/peerhelp-api/cloak"
	"github.com/campuslink/peerhelp-api/schema"
	"github.com/campuslink/peerhelp-api/store"
)

var logEntry = log.WithField("prefix", "lifecycle")

var (
	// ErrForbidden - the caller is not the requester of the target
	// request
	ErrForbidden = fmt.Errorf("not the requester of this help request")

	// ErrAlreadyAccepted - another accept won the race; the caller
	// must re-fetch and must not retry the same accept
	ErrAlreadyAccepted = fmt.Errorf("another response has already been accepted")

	// ErrResponseNotFound - the request holds no response with the
	// given id
	ErrResponseNotFound = fmt.Errorf("response not found on this help request")
)

// ValidationError marks a creation payload that violates an invariant.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Event is the payload handed to the notification collaborator on
// lifecycle transitions. Delivery, retries and formatting are the
// collaborator's business.
type Event struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id"`
	ActorRef  string `json:"actor_ref"`
}

const (
	EventRequestCreated   = "REQUEST_CREATED"
	EventRequestResponded = "REQUEST_RESPONDED"
	EventResponseAccepted = "RESPONSE_ACCEPTED"
)

// Notifier receives lifecycle events. Implementations must be quick;
// the controller does not await delivery.
type Notifier interface {
	NotifyEvent(event Event) error
}

// CreateParams is the creation payload accepted from an authenticated
// requester.
type CreateParams struct {
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	SkillsNeeded     []string            `json:"skills_needed"`
	UrgencyLevel     schema.UrgencyLevel `json:"urgency_level"`
	EstimatedTime    schema.TimeEstimate `json:"estimated_time"`
	IsRemote         bool                `json:"is_remote"`
	CollegeHint      string              `json:"college_hint"`
	AllowSameCollege bool                `json:"allow_same_college"`
}

// Controller drives a help request through its lifecycle. It owns
// validation, identity cloaking and authorization; the concurrency of
// competing transitions is settled by the store's compare-and-swap
// writes, never by in-process locking, so any number of controller
// instances may share one store.
type Controller struct {
	store    store.PeerHelpStore
	notifier Notifier
}

// NewController creates a lifecycle controller. notifier may be nil
// when no notification collaborator is wired, e.g. in tests.
func NewController(s store.PeerHelpStore, notifier Notifier) *Controller {
	return &Controller{
		store:    s,
		notifier: notifier,
	}
}

func validateCreate(params *CreateParams) error {
	if strings.TrimSpace(params.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(params.Title) > schema.TitleMaxLength {
		return &ValidationError{Field: "title", Reason: fmt.Sprintf("longer than %d characters", schema.TitleMaxLength)}
	}
	if utf8.RuneCountInString(params.Description) > schema.DescriptionMaxLength {
		return &ValidationError{Field: "description", Reason: fmt.Sprintf("longer than %d characters", schema.DescriptionMaxLength)}
	}

	skills := make([]string, 0, len(params.SkillsNeeded))
	for _, s := range params.SkillsNeeded {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	if len(skills) == 0 {
		return &ValidationError{Field: "skills_needed", Reason: "at least one skill is required"}
	}
	params.SkillsNeeded = skills

	if !schema.ValidUrgencyLevel(params.UrgencyLevel) {
		return &ValidationError{Field: "urgency_level", Reason: "unrecognized value"}
	}
	if !schema.ValidTimeEstimate(params.EstimatedTime) {
		return &ValidationError{Field: "estimated_time", Reason: "unrecognized value"}
	}

	return nil
}

// CreateRequest validates the payload, cloaks the requester and writes
// the new request. The cloaked identity is generated once here and
// stored with the document, so it stays stable for the request's
// lifetime while staying unlinkable across requesters.
func (c *Controller) CreateRequest(requesterRef string, params CreateParams) (*schema.HelpRequest, error) {
	if err := validateCreate(&params); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	request := &schema.HelpRequest{
		ID:               uuid.New().String(),
		RequesterRef:     requesterRef,
		Requester:        cloak.New(),
		Title:            params.Title,
		Description:      params.Description,
		SkillsNeeded:     params.SkillsNeeded,
		UrgencyLevel:     params.UrgencyLevel,
		EstimatedTime:    params.EstimatedTime,
		IsRemote:         params.IsRemote,
		CollegeHint:      params.CollegeHint,
		AllowSameCollege: params.AllowSameCollege,
		Status:           schema.RequestOpen,
		Responses:        []schema.Response{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := store.WithRetry(func() error {
		return c.store.CreateHelpRequest(request)
	}); err != nil {
		return nil, err
	}

	c.emit(Event{Type: EventRequestCreated, RequestID: request.ID, ActorRef: requesterRef})

	return request, nil
}

// GetRequest fetches a request by id, with transient store failures
// retried.
func (c *Controller) GetRequest(requestID string) (*schema.HelpRequest, error) {
	var request *schema.HelpRequest
	err := store.WithRetry(func() error {
		var opErr error
		request, opErr = c.store.GetHelpRequest(requestID)
		return opErr
	})
	return request, err
}

// Respond appends a helper's offer. Only OPEN and RESPONDED requests
// take offers, a requester cannot respond to themselves, and the
// append moves an OPEN request to RESPONDED in the same store write.
func (c *Controller) Respond(requestID, helperRef, message string) (*schema.Response, error) {
	if strings.TrimSpace(message) == "" {
		return nil, &ValidationError{Field: "message", Reason: "must not be empty"}
	}

	request, err := c.GetRequest(requestID)
	if err != nil {
		return nil, err
	}
	if request.RequesterRef == helperRef {
		return nil, ErrForbidden
	}
	if request.Status != schema.RequestOpen && request.Status != schema.RequestResponded {
		return nil, store.ErrInvalidRequestState
	}

	response := schema.Response{
		ID:        uuid.New().String(),
		RequestID: requestID,
		HelperRef: helperRef,
		Helper:    cloak.New(),
		Message:   message,
		Status:    schema.ResponsePending,
		CreatedAt: time.Now().UTC(),
	}

	// no retry here: the conditional append re-checks the state and a
	// replay could double the offer
	if err := c.store.AppendResponse(requestID, response); err != nil {
		return nil, err
	}

	c.emit(Event{Type: EventRequestResponded, RequestID: requestID, ActorRef: helperRef})

	return &response, nil
}

// Accept settles the request on one helper. Only the original
// requester may accept; the store's compare-and-swap decides a race
// between competing accepts, and losing it surfaces ErrAlreadyAccepted
// so the caller can tell a lost race from a generic failure.
func (c *Controller) Accept(requestID, responseID, byRequesterRef string) error {
	request, err := c.GetRequest(requestID)
	if err != nil {
		return err
	}
	if request.RequesterRef != byRequesterRef {
		return ErrForbidden
	}

	response := request.ResponseByID(responseID)
	if response == nil {
		return ErrResponseNotFound
	}

	switch request.Status {
	case schema.RequestResponded:
	case schema.RequestAccepted:
		return ErrAlreadyAccepted
	default:
		return store.ErrInvalidRequestState
	}

	// never retried on store failure: the caller must re-fetch and
	// decide, a blind replay risks double semantics
	if err := c.store.AcceptResponse(requestID, responseID); err != nil {
		if err == store.ErrStatusConflict {
			return ErrAlreadyAccepted
		}
		return err
	}

	c.emit(Event{Type: EventResponseAccepted, RequestID: requestID, ActorRef: response.HelperRef})

	return nil
}

// Resolve closes an accepted request. Terminal.
func (c *Controller) Resolve(requestID, byRequesterRef string) error {
	request, err := c.GetRequest(requestID)
	if err != nil {
		return err
	}
	if request.RequesterRef != byRequesterRef {
		return ErrForbidden
	}

	if err := c.store.TransitionStatus(requestID, schema.RequestAccepted, schema.RequestResolved); err != nil {
		if err == store.ErrStatusConflict {
			return store.ErrInvalidRequestState
		}
		return err
	}

	return nil
}

// Cancel withdraws a request that has not been settled yet. Reachable
// from OPEN and RESPONDED only; once a response has been accepted the
// request can no longer be cancelled.
func (c *Controller) Cancel(requestID, byRequesterRef string) error {
	request, err := c.GetRequest(requestID)
	if err != nil {
		return err
	}
	if request.RequesterRef != byRequesterRef {
		return ErrForbidden
	}

	err = c.store.TransitionStatus(requestID, schema.RequestOpen, schema.RequestCancelled)
	if err == store.ErrStatusConflict {
		err = c.store.TransitionStatus(requestID, schema.RequestResponded, schema.RequestCancelled)
	}
	if err != nil {
		if err == store.ErrStatusConflict {
			return store.ErrInvalidRequestState
		}
		return err
	}

	return nil
}

// emit hands an event to the notification collaborator without
// awaiting it. Failures are logged and swallowed; a lost notification
// never fails the transition that triggered it.
func (c *Controller) emit(event Event) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.NotifyEvent(event); err != nil {
		logEntry.WithError(err).WithField("event", event.Type).Warn("failed to hand off notification event")
	}
}
