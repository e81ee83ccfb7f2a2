package dashboard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"

	dashboard "github.com/sauravaggarwalcfd/CCPL-GOOGLE-ERP-sub004"
)

func TestRequestTransition(t *testing.T) {
	now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	validator := dashboard.NewTransitionValidator(
		dashboard.TestingDefinition(t),
		dashboard.TestingRoles(),
		dashboard.WithValidatorClock(clocktesting.NewFakeClock(now)),
	)

	record := dashboard.TestingRecords(t)[0] // PO-1, Draft

	t.Run("Legal transition returns a proposal", func(t *testing.T) {
		proposal, err := validator.RequestTransition(record, "Pending", "clerk")
		require.NoError(t, err)
		require.NotEmpty(t, proposal.ID)
		require.Equal(t, "PO-1", proposal.RecordID)
		require.Equal(t, dashboard.Status("Draft"), proposal.FromStatus)
		require.Equal(t, dashboard.Status("Pending"), proposal.ToStatus)
		require.Equal(t, now, proposal.ProposedAt)
		require.Equal(t, record.Version, proposal.RecordVersion)
	})

	t.Run("Skipping a status is illegal", func(t *testing.T) {
		// Draft may only move to Pending or Cancelled, never straight to
		// Approved.
		_, err := validator.RequestTransition(record, "Approved", "admin")
		require.ErrorIs(t, err, dashboard.ErrIllegalTransition)
	})

	t.Run("Role below the requirement is rejected", func(t *testing.T) {
		pending := record
		pending.Status = "Pending"

		_, err := validator.RequestTransition(pending, "Approved", "clerk")
		require.ErrorIs(t, err, dashboard.ErrInsufficientRole)

		_, err = validator.RequestTransition(pending, "Approved", "manager")
		require.NoError(t, err)
	})

	t.Run("Role above the requirement is accepted", func(t *testing.T) {
		pending := record
		pending.Status = "Pending"

		_, err := validator.RequestTransition(pending, "Approved", "admin")
		require.NoError(t, err)
	})

	t.Run("Undefined target status", func(t *testing.T) {
		_, err := validator.RequestTransition(record, "Shipped", "admin")
		require.ErrorIs(t, err, dashboard.ErrUnknownStatus)
	})

	t.Run("Record carrying an undefined status", func(t *testing.T) {
		orphan := record
		orphan.Status = "Limbo"

		_, err := validator.RequestTransition(orphan, "Pending", "admin")
		require.ErrorIs(t, err, dashboard.ErrUnknownStatus)
	})

	t.Run("Same-status transition is a valid no-op", func(t *testing.T) {
		proposal, err := validator.RequestTransition(record, "Draft", "viewer")
		require.NoError(t, err)
		require.Equal(t, proposal.FromStatus, proposal.ToStatus)
	})

	t.Run("No required role means any actor may transition", func(t *testing.T) {
		_, err := validator.RequestTransition(record, "Cancelled", "viewer")
		require.NoError(t, err)
	})
}

func TestRequestTransitionIsPure(t *testing.T) {
	validator := dashboard.NewTransitionValidator(
		dashboard.TestingDefinition(t),
		dashboard.TestingRoles(),
	)

	record := dashboard.TestingRecords(t)[0]
	before := record

	_, err := validator.RequestTransition(record, "Pending", "clerk")
	require.NoError(t, err)
	require.Equal(t, before, record)

	_, err = validator.RequestTransition(record, "Approved", "clerk")
	require.Error(t, err)
	require.Equal(t, before, record)
}
