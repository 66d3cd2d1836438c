package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/postkeeper/internal/client/data"
	"github.com/iudanet/postkeeper/internal/models"
)

func executeCommand(t *testing.T, tc *testCli, args ...string) error {
	t.Helper()

	root, closeFn := NewRootCommand(tc.io, "test", func(*cobra.Command) (*Cli, error) {
		return tc.Cli, nil
	})
	root.SetArgs(args)
	root.SetErr(tc.out)

	err := root.ExecuteContext(context.Background())
	assert.NoError(t, closeFn())
	return err
}

func TestRootCommand_Update(t *testing.T) {
	tc := newTestCli(t, true)
	tc.dataService.UpdatePostFunc = func(context.Context, int64, models.PostPatch) (*data.Result, error) {
		return &data.Result{}, nil
	}

	require.NoError(t, executeCommand(t, tc, "update", "3", "--body", "new body"))

	calls := tc.dataService.UpdatePostCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, int64(3), calls[0].Id)
	assert.Nil(t, calls[0].Patch.Title)
	require.NotNil(t, calls[0].Patch.Body)
	assert.Equal(t, "new body", *calls[0].Patch.Body)
}

func TestRootCommand_UpdateWithoutFields(t *testing.T) {
	tc := newTestCli(t, true)

	err := executeCommand(t, tc, "update", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")
	assert.Empty(t, tc.dataService.UpdatePostCalls())
}

func TestRootCommand_InvalidID(t *testing.T) {
	tc := newTestCli(t, true)

	for _, cmd := range []string{"get", "update", "delete"} {
		err := executeCommand(t, tc, cmd, "abc")
		require.Error(t, err, cmd)
		assert.Contains(t, err.Error(), "invalid post ID")
	}
}

func TestRootCommand_Create(t *testing.T) {
	tc := newTestCli(t, true)
	tc.dataService.CreatePostFunc = func(context.Context, models.PostDraft) (*data.Result, error) {
		return &data.Result{Queued: true, RecordID: 1}, nil
	}

	require.NoError(t, executeCommand(t, tc, "create", "--title", "t", "--body", "b", "--user", "2"))

	calls := tc.dataService.CreatePostCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.PostDraft{Title: "t", Body: "b", UserID: 2}, calls[0].Draft)
	assert.Contains(t, tc.out.String(), "record #1")
}

func TestRootCommand_ListFlags(t *testing.T) {
	tc := newTestCli(t, true)
	tc.dataService.PostsFunc = func(context.Context) ([]*models.Post, error) {
		return samplePosts(30), nil
	}

	require.NoError(t, executeCommand(t, tc, "list", "-p", "3"))
	assert.Contains(t, tc.out.String(), "Page 3 of 3 (30 posts)")
}

func TestRootCommand_DeleteYes(t *testing.T) {
	tc := newTestCli(t, true)
	tc.dataService.ProposeFunc = func(_ context.Context, m models.Mutation) (*data.Proposal, error) {
		return &data.Proposal{ID: 1, Mutation: m}, nil
	}
	tc.dataService.ConfirmFunc = func(context.Context, *data.Proposal) (*data.Result, error) {
		return &data.Result{}, nil
	}

	require.NoError(t, executeCommand(t, tc, "delete", "8", "-y"))
	require.Len(t, tc.dataService.ConfirmCalls(), 1)
	assert.Equal(t, models.DeletePost{ID: 8}, tc.dataService.ConfirmCalls()[0].P.Mutation)
}

func TestRootCommand_Version(t *testing.T) {
	tc := newTestCli(t, true)

	require.NoError(t, executeCommand(t, tc, "--version"))
	assert.Contains(t, tc.out.String(), "test")
}
