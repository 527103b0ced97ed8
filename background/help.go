package background

import (
	log "github.com/sirupsen/logrus"
)

// BroadcastNewRequest is a background job that fans out a newly posted
// help request to helpers. The queue payload carries refs only; the
// durable copy is read back from the store.
func (m *BackgroundManager) BroadcastNewRequest(requestID, actorRef string) error {
	request, err := m.store.GetHelpRequest(requestID)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":     "notification",
		"request_id": request.ID,
		"urgency":    request.UrgencyLevel,
		"is_remote":  request.IsRemote,
	}).Info("broadcast new help request")
	return nil
}

// NotifyRequestResponded is a background job to tell a requester that
// someone offered to help.
func (m *BackgroundManager) NotifyRequestResponded(requestID, actorRef string) error {
	request, err := m.store.GetHelpRequest(requestID)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":     "notification",
		"request_id": request.ID,
		"recipient":  request.RequesterRef,
	}).Info("notify requester of new response")
	return nil
}

// NotifyResponseAccepted is a background job to tell the winning helper
// that their offer was accepted.
func (m *BackgroundManager) NotifyResponseAccepted(requestID, actorRef string) error {
	request, err := m.store.GetHelpRequest(requestID)
	if err != nil {
		return err
	}

	response := request.ResponseByID(request.AcceptedResponseID)
	if response == nil {
		log.WithFields(log.Fields{
			"prefix":     "notification",
			"request_id": request.ID,
		}).Warn("accepted request without a winning response")
		return nil
	}

	log.WithFields(log.Fields{
		"prefix":     "notification",
		"request_id": request.ID,
		"recipient":  response.HelperRef,
	}).Info("notify helper of accepted response")
	return nil
}
