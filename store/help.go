package store

import (
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campuslink/peerhelp-api/schema"
)

// respondableStatuses are the lifecycle states that still take new
// helper offers.
var respondableStatuses = []schema.RequestStatus{schema.RequestOpen, schema.RequestResponded}

func (m *mongoDB) collection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.HelpRequestCollection)
}

// CreateHelpRequest inserts a new help request document. A duplicate
// id means a retried insert already landed, not a failure.
func (m *mongoDB) CreateHelpRequest(request *schema.HelpRequest) error {
	ctx, cancel := opContext()
	defer cancel()

	if _, err := m.collection().InsertOne(ctx, request); err != nil {
		if we, hasErr := err.(mongo.WriteException); hasErr {
			if 1 == len(we.WriteErrors) && DuplicateKeyCode == we.WriteErrors[0].Code {
				return nil
			}
		}
		return wrapStoreError(err)
	}

	return nil
}

// GetHelpRequest finds a help request by id.
func (m *mongoDB) GetHelpRequest(id string) (*schema.HelpRequest, error) {
	ctx, cancel := opContext()
	defer cancel()

	var request schema.HelpRequest
	if err := m.collection().FindOne(ctx, bson.M{"id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, wrapStoreError(err)
	}

	return &request, nil
}

// ListOpenRequests returns OPEN requests matching the filter, newest
// first. Urgency, remoteness and the age window are pushed into the
// query; skill matching is free text and is applied by the feed layer.
func (m *mongoDB) ListOpenRequests(filter FeedFilter) ([]schema.HelpRequest, error) {
	ctx, cancel := opContext()
	defer cancel()

	query := bson.M{"status": schema.RequestOpen}
	if filter.Urgency != "" {
		query["urgency_level"] = filter.Urgency
	}
	if filter.IsRemote != nil {
		query["is_remote"] = *filter.IsRemote
	}
	if filter.MaxAgeHours > 0 {
		cutoff := time.Now().UTC().Add(-time.Duration(filter.MaxAgeHours) * time.Hour)
		query["created_at"] = bson.M{"$gt": cutoff}
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := m.collection().Find(ctx, query, opts)
	if err != nil {
		return nil, wrapStoreError(err)
	}

	requests := make([]schema.HelpRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, wrapStoreError(err)
	}

	return requests, nil
}

// AppendResponse is additive-only: a single conditional write appends
// the offer and settles the status on RESPONDED, matched only while
// the request is OPEN or RESPONDED. A zero match is disambiguated into
// not-found versus wrong-state by a follow-up read.
func (m *mongoDB) AppendResponse(requestID string, response schema.Response) error {
	ctx, cancel := opContext()
	defer cancel()

	result, err := m.collection().UpdateOne(ctx,
		bson.M{
			"id":     requestID,
			"status": bson.M{"$in": respondableStatuses},
		},
		bson.M{
			"$push": bson.M{"responses": response},
			"$set": bson.M{
				"status":     schema.RequestResponded,
				"updated_at": time.Now().UTC(),
			},
		},
	)
	if err != nil {
		return wrapStoreError(err)
	}

	if result.MatchedCount == 0 {
		if _, err := m.GetHelpRequest(requestID); err != nil {
			return err
		}
		return ErrInvalidRequestState
	}

	return nil
}

// TransitionStatus changes a request's status only if the stored
// status still equals expected: the compare-and-swap preventing two
// concurrent accepts, or a cancel racing an accept, from both landing.
func (m *mongoDB) TransitionStatus(requestID string, expected, next schema.RequestStatus) error {
	ctx, cancel := opContext()
	defer cancel()

	result, err := m.collection().UpdateOne(ctx,
		bson.M{
			"id":     requestID,
			"status": expected,
		},
		bson.M{
			"$set": bson.M{
				"status":     next,
				"updated_at": time.Now().UTC(),
			},
		},
	)
	if err != nil {
		return wrapStoreError(err)
	}

	if result.MatchedCount == 0 {
		if _, err := m.GetHelpRequest(requestID); err != nil {
			return err
		}
		return ErrStatusConflict
	}

	return nil
}

// AcceptResponse performs the accept transition as one conditional
// write so the at-most-one-accepted-helper invariant holds under
// concurrent accepts: the filter requires status RESPONDED and the
// presence of the target response, the update flips the request to
// ACCEPTED, records the winning response id, marks it ACCEPTED and
// declines every other pending offer.
func (m *mongoDB) AcceptResponse(requestID, responseID string) error {
	ctx, cancel := opContext()
	defer cancel()

	result, err := m.collection().UpdateOne(ctx,
		bson.M{
			"id":           requestID,
			"status":       schema.RequestResponded,
			"responses.id": responseID,
		},
		bson.M{
			"$set": bson.M{
				"status":                     schema.RequestAccepted,
				"accepted_response_id":       responseID,
				"responses.$[winner].status": schema.ResponseAccepted,
				"responses.$[others].status": schema.ResponseDeclined,
				"updated_at":                 time.Now().UTC(),
			},
		},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{
				bson.M{"winner.id": responseID},
				bson.M{"others.id": bson.M{"$ne": responseID}, "others.status": schema.ResponsePending},
			},
		}),
	)
	if err != nil {
		return wrapStoreError(err)
	}

	if result.MatchedCount == 0 {
		request, err := m.GetHelpRequest(requestID)
		if err != nil {
			return err
		}
		if request.ResponseByID(responseID) == nil {
			return ErrInvalidRequestState
		}
		// the response exists, so the CAS missed on status: only an
		// already-accepted request is a lost accept race, anything
		// else (cancelled, resolved, still open) is a state error
		if request.Status == schema.RequestAccepted {
			return ErrStatusConflict
		}
		return ErrInvalidRequestState
	}

	return nil
}

// ExpireStaleRequests cancels requests still waiting for help past the
// open window. Run by the retention worker; requests already accepted
// are deliberately untouched.
func (m *mongoDB) ExpireStaleRequests(olderThan time.Duration) (int64, error) {
	ctx, cancel := opContext()
	defer cancel()

	cutoff := time.Now().UTC().Add(-olderThan)
	result, err := m.collection().UpdateMany(ctx,
		bson.M{
			"status":     bson.M{"$in": respondableStatuses},
			"created_at": bson.M{"$lte": cutoff},
		},
		bson.M{
			"$set": bson.M{
				"status":     schema.RequestCancelled,
				"updated_at": time.Now().UTC(),
			},
		},
	)
	if err != nil {
		return 0, wrapStoreError(err)
	}

	if result.ModifiedCount > 0 {
		log.WithField("prefix", mongoLogPrefix).
			WithField("count", result.ModifiedCount).Info("expired stale help requests")
	}

	return result.ModifiedCount, nil
}

// ArchiveSettledRequests drops terminal requests past the retention
// window.
func (m *mongoDB) ArchiveSettledRequests(retention time.Duration) (int64, error) {
	ctx, cancel := opContext()
	defer cancel()

	cutoff := time.Now().UTC().Add(-retention)
	result, err := m.collection().DeleteMany(ctx,
		bson.M{
			"status":     bson.M{"$in": []schema.RequestStatus{schema.RequestResolved, schema.RequestCancelled}},
			"updated_at": bson.M{"$lte": cutoff},
		},
	)
	if err != nil {
		return 0, wrapStoreError(err)
	}

	return result.DeletedCount, nil
}
