package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"repkg.dev/repkg/internal/domain"
	domainmocks "repkg.dev/repkg/internal/domain/mocks"
	m "repkg.dev/repkg/internal/model"
)

func newTestRootCmd() *cobra.Command {
	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func TestRelocateCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newTestRootCmd()
	cmd.AddCommand(newRelocateCmd())

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Relocate", mock.Anything, mock.MatchedBy(func(args domain.RelocateArgs) bool {
		return args.Plan == m.Path("migration.yaml") && args.Root == m.Path("/tmp/tree")
	})).Return(nil)

	cmd.SetArgs([]string{"relocate", "--plan", "migration.yaml", "--root", "/tmp/tree"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestRelocateCmd_RejectsPositionalArgs(t *testing.T) {
	cmd := newTestRootCmd()
	cmd.AddCommand(newRelocateCmd())

	cmd.SetArgs([]string{"relocate", "extra"})
	err := cmd.Execute()
	require.Error(t, err)
}
