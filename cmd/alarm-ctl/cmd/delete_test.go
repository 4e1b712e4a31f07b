package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDeleteHelp points users at the way to stop a snooze.
func TestDeleteHelp(t *testing.T) {
	t.Parallel()

	require.Contains(t, deleteCmd.Long, "status -v")
	require.Contains(t, deleteCmd.Long, "delete --code N")
	require.NotNil(t, deleteCmd.Flags().Lookup("code"))
}
