package retention

import (
	"context"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/campuslink/peerhelp-api/external/cadence"
)

const retentionWorkflowID = "help-request-retention"

// TriggerRetentionSweep signals the retention workflow, starting it if
// no run exists yet. Safe to call on every worker boot; the workflow id
// is fixed so there is only ever one sweeping loop.
func TriggerRetentionSweep(client cadence.CadenceClient, c context.Context) error {
	_, err := client.SignalWithStartWorkflow(c,
		retentionWorkflowID, "retentionCheckSignal", nil,
		cadenceClient.StartWorkflowOptions{
			ID:                           retentionWorkflowID,
			TaskList:                     TaskListName,
			ExecutionStartToCloseTimeout: time.Hour,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
		}, "RequestRetentionWorkflow")
	return err
}
