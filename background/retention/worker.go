package retention

import (
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/campuslink/peerhelp-api/store"
)

const TaskListName = "peerhelp-retention-tasks"

// RetentionWorker hosts the workflow that ages out stale help requests
// and purges settled ones past their retention window.
type RetentionWorker struct {
	domain string
	store  store.PeerHelpStore
}

func NewRetentionWorker(domain string, s store.PeerHelpStore) *RetentionWorker {
	return &RetentionWorker{
		domain: domain,
		store:  s,
	}
}

func (r *RetentionWorker) Register() {
	workflow.RegisterWithOptions(r.RequestRetentionWorkflow, workflow.RegisterOptions{Name: "RequestRetentionWorkflow"})

	activity.RegisterWithOptions(r.ExpireStaleRequestsActivity, activity.RegisterOptions{Name: "ExpireStaleRequestsActivity"})
	activity.RegisterWithOptions(r.ArchiveSettledRequestsActivity, activity.RegisterOptions{Name: "ArchiveSettledRequestsActivity"})
}

func (r *RetentionWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	workerOptions := worker.Options{
		Logger:       logger,
		MetricsScope: tally.NewTestScope(TaskListName, map[string]string{}),
	}

	worker := worker.New(
		service,
		r.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
