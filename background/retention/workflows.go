package retention

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"
)

const RetentionCheckInterval = 30 * time.Minute

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// RequestRetentionWorkflow periodically sweeps the help request
// collection. It wakes either on a timer or on a retentionCheckSignal,
// runs the expiry and archival activities and continues as new.
func (r *RetentionWorker) RequestRetentionWorkflow(ctx workflow.Context) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, "retentionCheckSignal")
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx)
	selector := workflow.NewSelector(ctx)

	timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, RetentionCheckInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start periodically help request retention sweep")
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		cancelTimerHandler()
		signalChan.Receive(ctx, nil)

		logger.Info("Trigger help request retention sweep by signal")
	})

	selector.Select(ctx)

	var expired int64
	if err := workflow.ExecuteActivity(ctx, r.ExpireStaleRequestsActivity).Get(ctx, &expired); err != nil {
		logger.Error("Fail to expire stale help requests.", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, r.RequestRetentionWorkflow)
	}

	var archived int64
	if err := workflow.ExecuteActivity(ctx, r.ArchiveSettledRequestsActivity).Get(ctx, &archived); err != nil {
		logger.Error("Fail to archive settled help requests.", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, r.RequestRetentionWorkflow)
	}

	return workflow.NewContinueAsNewError(ctx, r.RequestRetentionWorkflow)
}
