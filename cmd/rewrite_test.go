package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"repkg.dev/repkg/internal/domain"
	domainmocks "repkg.dev/repkg/internal/domain/mocks"
	m "repkg.dev/repkg/internal/model"
)

func TestRewriteCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newTestRootCmd()
	cmd.AddCommand(newRewriteCmd())

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("RewriteImports", mock.Anything, mock.MatchedBy(func(args domain.RewriteArgs) bool {
		return args.Plan == m.Path("migration.yaml") && args.Root == m.Path("src")
	})).Return(nil)

	cmd.SetArgs([]string{"rewrite", "-p", "migration.yaml", "-r", "src"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestRewriteCmd_PlanLoadErrorPropagates(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newTestRootCmd()
	cmd.AddCommand(newRewriteCmd())

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("RewriteImports", mock.Anything, mock.Anything).
		Return(errors.New("load plan: no such file"))

	cmd.SetArgs([]string{"rewrite", "-p", "missing.yaml"})
	err := cmd.Execute()
	require.Error(t, err)

	mockWorkflow.AssertExpectations(t)
}
