package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/forno/app/models"
	"github.com/shashiranjanraj/forno/app/repositories"
	"github.com/shashiranjanraj/forno/app/services"
	"github.com/shashiranjanraj/forno/pkg/rbac"
	"github.com/shashiranjanraj/forno/pkg/storage"
	"github.com/shashiranjanraj/forno/pkg/testkit"
)

var (
	asAlice = models.Account{Username: "alice", Status: rbac.RoleUser}
	asBob   = models.Account{Username: "bob", Status: rbac.RoleAdmin}
	asCarol = models.Account{Username: "carol", Status: rbac.RoleUser}
)

func newOrderFixture(t *testing.T) (*services.OrderService, storage.Disk) {
	t.Helper()
	d := testkit.TempDisk(t)
	repo := repositories.NewOrderRepositoryOn(d, "orders.csv")
	noon := func() time.Time {
		return time.Date(2026, time.August, 29, 12, 34, 0, 0, time.UTC)
	}
	return services.NewOrderServiceWith(repo, noon), d
}

func TestPlaceStampsTimeAndFreshID(t *testing.T) {
	svc, d := newOrderFixture(t)

	order, err := svc.Place(asAlice, "")
	require.NoError(t, err)
	assert.Equal(t, models.SizeMedium, order.Size) // default size
	assert.Equal(t, "12:34", order.OrderTime)
	assert.Len(t, order.ID, 8)

	second, err := svc.Place(asAlice, "large")
	require.NoError(t, err)
	assert.NotEqual(t, order.ID, second.ID)

	testkit.RequireRowCount(t, d, "orders.csv", models.OrderFields, 2)
}

func TestPlaceRejectsUnknownSize(t *testing.T) {
	svc, d := newOrderFixture(t)

	_, err := svc.Place(asAlice, "calzone")
	assert.Error(t, err)
	assert.True(t, d.Missing("orders.csv")) // nothing written
}

func TestListScopesVisibilityByRole(t *testing.T) {
	svc, _ := newOrderFixture(t)

	first, err := svc.Place(asAlice, "small")
	require.NoError(t, err)
	_, err = svc.Place(asCarol, "large")
	require.NoError(t, err)
	third, err := svc.Place(asAlice, "medium")
	require.NoError(t, err)

	own, err := svc.List(asAlice)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, []string{first.ID, third.ID}, []string{own[0].ID, own[1].ID})

	all, err := svc.List(asBob) // ADMIN sees everything, ledger order
	require.NoError(t, err)
	assert.Len(t, all, 3)

	empty, err := svc.List(models.Account{Username: "nobody", Status: rbac.RoleUser})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCancelSingleCandidateDirectly(t *testing.T) {
	svc, d := newOrderFixture(t)
	order, err := svc.Place(asAlice, "small")
	require.NoError(t, err)

	victim, err := svc.Cancel(asAlice, "", 1)
	require.NoError(t, err)
	assert.Equal(t, order.ID, victim.ID)
	testkit.RequireRowCount(t, d, "orders.csv", models.OrderFields, 0)
}

func TestCancelRemovesExactlySelected(t *testing.T) {
	svc, _ := newOrderFixture(t)
	first, err := svc.Place(asAlice, "small")
	require.NoError(t, err)
	second, err := svc.Place(asAlice, "large")
	require.NoError(t, err)

	victim, err := svc.Cancel(asAlice, "", 1)
	require.NoError(t, err)
	assert.Equal(t, first.ID, victim.ID)

	remaining, err := svc.List(asAlice)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, second, remaining[0]) // untouched, fields intact
}

func TestCancelOutOfRangeLeavesLedgerAlone(t *testing.T) {
	svc, d := newOrderFixture(t)
	_, err := svc.Place(asAlice, "small")
	require.NoError(t, err)
	_, err = svc.Place(asAlice, "large")
	require.NoError(t, err)

	_, err = svc.Cancel(asAlice, "", 3)
	assert.ErrorIs(t, err, services.ErrInvalidSelection)
	_, err = svc.Cancel(asAlice, "", 0)
	assert.ErrorIs(t, err, services.ErrInvalidSelection)

	testkit.RequireRowCount(t, d, "orders.csv", models.OrderFields, 2)
}

func TestCancelWithNoOrders(t *testing.T) {
	svc, _ := newOrderFixture(t)

	_, err := svc.CancelCandidates(asAlice, "")
	assert.ErrorIs(t, err, services.ErrNoOrdersFound)
}

func TestCancelForOtherNeedsAdminAndConfig(t *testing.T) {
	svc, _ := newOrderFixture(t)
	_, err := svc.Place(asCarol, "small")
	require.NoError(t, err)

	// Off by default, even for an ADMIN: visibility is elevated, not
	// cancellation rights.
	_, err = svc.CancelCandidates(asBob, "carol")
	assert.ErrorIs(t, err, services.ErrAuthorizationDenied)

	t.Setenv("ADMIN_CANCEL_OVERRIDE", "true")

	// Still never for a plain USER.
	_, err = svc.CancelCandidates(asAlice, "carol")
	assert.ErrorIs(t, err, services.ErrAuthorizationDenied)

	victim, err := svc.Cancel(asBob, "carol", 1)
	require.NoError(t, err)
	assert.Equal(t, "carol", victim.Username)
}
