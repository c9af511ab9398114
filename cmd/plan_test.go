package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"repkg.dev/repkg/internal/domain"
	domainmocks "repkg.dev/repkg/internal/domain/mocks"
	m "repkg.dev/repkg/internal/model"
)

func TestPlanCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newTestRootCmd()
	cmd.AddCommand(newPlanCmd())

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("ShowPlan", mock.Anything, mock.MatchedBy(func(args domain.PlanArgs) bool {
		return args.Plan == m.Path("migration.yaml")
	})).Return(nil)

	cmd.SetArgs([]string{"plan", "--plan", "migration.yaml"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}
