package background

import (
	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"

	"github.com/campuslink/peerhelp-api/lifecycle"
)

// Task names registered on the machinery queue. The worker side routes
// them to the matching notification jobs.
const (
	TaskBroadcastNewRequest    = "broadcast_new_request"
	TaskNotifyRequestResponded = "notify_request_responded"
	TaskNotifyResponseAccepted = "notify_response_accepted"
)

// MachineryNotifier hands lifecycle events to the background queue.
// Enqueueing is the whole job: delivery to devices belongs to the
// notification collaborator consuming the queue.
type MachineryNotifier struct {
	taskServer *machinery.Server
}

func NewMachineryNotifier(taskServer *machinery.Server) *MachineryNotifier {
	return &MachineryNotifier{
		taskServer: taskServer,
	}
}

// NotifyEvent maps a lifecycle event onto its queue task. Unknown
// event types are dropped silently; the producer may be newer than
// this consumer.
func (n *MachineryNotifier) NotifyEvent(event lifecycle.Event) error {
	var name string
	switch event.Type {
	case lifecycle.EventRequestCreated:
		name = TaskBroadcastNewRequest
	case lifecycle.EventRequestResponded:
		name = TaskNotifyRequestResponded
	case lifecycle.EventResponseAccepted:
		name = TaskNotifyResponseAccepted
	default:
		return nil
	}

	_, err := n.taskServer.SendTask(&tasks.Signature{
		Name: name,
		Args: []tasks.Arg{
			{Type: "string", Value: event.RequestID},
			{Type: "string", Value: event.ActorRef},
		},
	})
	return err
}
