package retention

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	"github.com/campuslink/peerhelp-api/external/cadence"
)

type RetentionWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env    *testsuite.TestWorkflowEnvironment
	worker *RetentionWorker
}

func (ts *RetentionWorkflowTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())

	ts.worker = NewRetentionWorker("test", nil)
}

func (ts *RetentionWorkflowTestSuite) SetupTest() {
	ts.env = ts.NewTestWorkflowEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		DataConverter: cadence.NewMsgPackDataConverter(),
	})
}

// TestRequestRetentionWorkflowNormalRun tests a regular sweep where both
// activities succeed
func (ts *RetentionWorkflowTestSuite) TestRequestRetentionWorkflowNormalRun() {
	ts.env.OnActivity(ts.worker.ExpireStaleRequestsActivity, mock.Anything).Return(
		func(ctx context.Context) (int64, error) {
			return 3, nil
		})

	ts.env.OnActivity(ts.worker.ArchiveSettledRequestsActivity, mock.Anything).Return(
		func(ctx context.Context) (int64, error) {
			return 2, nil
		})

	ts.env.ExecuteWorkflow(ts.worker.RequestRetentionWorkflow)

	ts.env.AssertNumberOfCalls(ts.T(), "ExpireStaleRequestsActivity", 1)
	ts.env.AssertNumberOfCalls(ts.T(), "ArchiveSettledRequestsActivity", 1)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

// TestRequestRetentionWorkflowExpireFails verifies that a failing expiry
// run continues as new without touching archival
func (ts *RetentionWorkflowTestSuite) TestRequestRetentionWorkflowExpireFails() {
	ts.env.OnActivity(ts.worker.ExpireStaleRequestsActivity, mock.Anything).Return(
		func(ctx context.Context) (int64, error) {
			return 0, fmt.Errorf("store unavailable")
		})

	ts.env.ExecuteWorkflow(ts.worker.RequestRetentionWorkflow)

	ts.env.AssertNumberOfCalls(ts.T(), "ExpireStaleRequestsActivity", 1)
	ts.env.AssertNumberOfCalls(ts.T(), "ArchiveSettledRequestsActivity", 0)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

// TestRequestRetentionWorkflowArchiveFails verifies that a failing
// archival run still continues as new
func (ts *RetentionWorkflowTestSuite) TestRequestRetentionWorkflowArchiveFails() {
	ts.env.OnActivity(ts.worker.ExpireStaleRequestsActivity, mock.Anything).Return(
		func(ctx context.Context) (int64, error) {
			return 0, nil
		})

	ts.env.OnActivity(ts.worker.ArchiveSettledRequestsActivity, mock.Anything).Return(
		func(ctx context.Context) (int64, error) {
			return 0, fmt.Errorf("store unavailable")
		})

	ts.env.ExecuteWorkflow(ts.worker.RequestRetentionWorkflow)

	ts.env.AssertNumberOfCalls(ts.T(), "ExpireStaleRequestsActivity", 1)
	ts.env.AssertNumberOfCalls(ts.T(), "ArchiveSettledRequestsActivity", 1)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

func TestRequestRetentionWorkflow(t *testing.T) {
	suite.Run(t, new(RetentionWorkflowTestSuite))
}
