package schema

import (
	"time"
)

const (
	HelpRequestCollection = "helpRequest"
)

// TitleMaxLength and DescriptionMaxLength bound the free text a
// requester may submit. They are creation-time invariants, not UI
// affordances.
const (
	TitleMaxLength       = 100
	DescriptionMaxLength = 500
)

// RequestStatus is the lifecycle state of a help request.
type RequestStatus string

const (
	RequestOpen      RequestStatus = "OPEN"
	RequestResponded RequestStatus = "RESPONDED"
	RequestAccepted  RequestStatus = "ACCEPTED"
	RequestResolved  RequestStatus = "RESOLVED"
	RequestCancelled RequestStatus = "CANCELLED"
)

// ResponseStatus is the state of a single helper's offer.
type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "PENDING"
	ResponseAccepted ResponseStatus = "ACCEPTED"
	ResponseDeclined ResponseStatus = "DECLINED"
)

// UrgencyLevel is an ordered enum; its feed weight lives in the score
// package.
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "LOW"
	UrgencyMedium   UrgencyLevel = "MEDIUM"
	UrgencyHigh     UrgencyLevel = "HIGH"
	UrgencyCritical UrgencyLevel = "CRITICAL"
)

// UrgencyLevels enumerates every recognized urgency value.
var UrgencyLevels = []UrgencyLevel{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}

// TimeEstimate is a coarse duration bucket declared by the requester.
type TimeEstimate string

const (
	EstimateQuarterHour TimeEstimate = "15_MIN"
	EstimateHalfHour    TimeEstimate = "30_MIN"
	EstimateOneHour     TimeEstimate = "1_HOUR"
	EstimateTwoHours    TimeEstimate = "2_HOURS"
	EstimateHalfDay     TimeEstimate = "HALF_DAY"
	EstimateFullDay     TimeEstimate = "FULL_DAY"
)

// TimeEstimates enumerates every recognized estimate bucket.
var TimeEstimates = []TimeEstimate{
	EstimateQuarterHour, EstimateHalfHour, EstimateOneHour,
	EstimateTwoHours, EstimateHalfDay, EstimateFullDay,
}

// AvatarShape is one of the bounded shapes a synthetic avatar may take.
type AvatarShape string

const (
	ShapeCircle   AvatarShape = "circle"
	ShapeSquare   AvatarShape = "square"
	ShapeHexagon  AvatarShape = "hexagon"
	ShapeTriangle AvatarShape = "triangle"
)

// AvatarShapes enumerates every recognized avatar shape.
var AvatarShapes = []AvatarShape{ShapeCircle, ShapeSquare, ShapeHexagon, ShapeTriangle}

// Avatar is a synthetic avatar descriptor. Every field is drawn from a
// bounded enumeration or a random seed; none derives from the member
// it stands in for.
type Avatar struct {
	ColorSeed   string      `bson:"color_seed" json:"color_seed"`
	Shape       AvatarShape `bson:"shape" json:"shape"`
	PatternSeed string      `bson:"pattern_seed" json:"pattern_seed"`
}

// CloakedIdentity is the pseudonymous identity shown to other members
// in place of a real member reference.
type CloakedIdentity struct {
	Label  string `bson:"label" json:"label"`
	Avatar Avatar `bson:"avatar" json:"avatar"`
}

// Response is one helper's offer against a help request. HelperRef is
// the verified member reference of the helper and is never serialized
// to any party.
type Response struct {
	ID        string          `bson:"id" json:"id"`
	RequestID string          `bson:"request_id" json:"request_id"`
	HelperRef string          `bson:"helper_ref" json:"-"`
	Helper    CloakedIdentity `bson:"helper" json:"helper"`
	Message   string          `bson:"message" json:"message"`
	Status    ResponseStatus  `bson:"status" json:"status"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
}

// HelpRequest is the central entity: one member's short-lived ask for
// help, stored as a single document with its responses embedded.
//
// RequesterRef is the verified member reference of the requester. It is
// used for authorization checks only and must never reach a browsing
// party; the cloaked Requester identity is the only one exposed.
type HelpRequest struct {
	ID                 string          `bson:"id" json:"id"`
	RequesterRef       string          `bson:"requester_ref" json:"-"`
	Requester          CloakedIdentity `bson:"requester" json:"requester"`
	Title              string          `bson:"title" json:"title"`
	Description        string          `bson:"description" json:"description"`
	SkillsNeeded       []string        `bson:"skills_needed" json:"skills_needed"`
	UrgencyLevel       UrgencyLevel    `bson:"urgency_level" json:"urgency_level"`
	EstimatedTime      TimeEstimate    `bson:"estimated_time" json:"estimated_time"`
	IsRemote           bool            `bson:"is_remote" json:"is_remote"`
	CollegeHint        string          `bson:"college_hint,omitempty" json:"college_hint,omitempty"`
	AllowSameCollege   bool            `bson:"allow_same_college" json:"allow_same_college"`
	Status             RequestStatus   `bson:"status" json:"status"`
	Responses          []Response      `bson:"responses" json:"responses"`
	AcceptedResponseID string          `bson:"accepted_response_id,omitempty" json:"accepted_response_id,omitempty"`
	CreatedAt          time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time       `bson:"updated_at" json:"updated_at"`

	// MatchScore is filled in by the feed service for personalized
	// queries. It is never persisted.
	MatchScore int `bson:"-" json:"match_score,omitempty"`
}

// ResponseByID returns the embedded response with the given id.
func (r *HelpRequest) ResponseByID(responseID string) *Response {
	for i := range r.Responses {
		if r.Responses[i].ID == responseID {
			return &r.Responses[i]
		}
	}
	return nil
}

// ValidUrgencyLevel reports whether u is a recognized urgency value.
func ValidUrgencyLevel(u UrgencyLevel) bool {
	for _, l := range UrgencyLevels {
		if l == u {
			return true
		}
	}
	return false
}

// ValidTimeEstimate reports whether t is a recognized estimate bucket.
func ValidTimeEstimate(t TimeEstimate) bool {
	for _, e := range TimeEstimates {
		if e == t {
			return true
		}
	}
	return false
}
