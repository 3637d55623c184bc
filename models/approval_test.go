package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApprovalStatusTransitions(t *testing.T) {
	t.Run(`pending may move to terminal states`, func(t *testing.T) {
		require.True(t, ApprovalStatusPending.IsAllowChange(ApprovalStatusApproved))
		require.True(t, ApprovalStatusPending.IsAllowChange(ApprovalStatusRejected))
	})

	t.Run(`terminal states are frozen`, func(t *testing.T) {
		require.False(t, ApprovalStatusApproved.IsAllowChange(ApprovalStatusRejected))
		require.False(t, ApprovalStatusApproved.IsAllowChange(ApprovalStatusApproved))
		require.False(t, ApprovalStatusRejected.IsAllowChange(ApprovalStatusApproved))
	})

	t.Run(`pending is not a transition target`, func(t *testing.T) {
		require.False(t, ApprovalStatusPending.IsAllowChange(ApprovalStatusPending))
		require.False(t, ApprovalStatusApproved.IsAllowChange(ApprovalStatusPending))
	})
}
