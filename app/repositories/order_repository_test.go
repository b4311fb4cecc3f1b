package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/forno/app/models"
	"github.com/shashiranjanraj/forno/app/repositories"
	"github.com/shashiranjanraj/forno/pkg/tabular"
	"github.com/shashiranjanraj/forno/pkg/testkit"
)

func TestOrderRepositoryRoundTrip(t *testing.T) {
	d := testkit.TempDisk(t)
	repo := repositories.NewOrderRepositoryOn(d, "orders.csv")

	in := []models.Order{
		{ID: "aa11bb22", Username: "alice", Size: "small", OrderTime: "09:00"},
		{ID: "cc33dd44", Username: "carol", Size: "large", OrderTime: "09:05"},
	}
	require.NoError(t, repo.SaveAll(in))

	out, err := repo.All()
	require.NoError(t, err)
	assert.Equal(t, in, out)

	own, err := repo.ByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, in[:1], own)
}

func TestOrderRepositoryNormalizesEmptySize(t *testing.T) {
	d := testkit.TempDisk(t)
	testkit.SeedTable(t, d, "orders.csv", `
		id,username,size,order_time
		aa11bb22,alice,,09:00
	`)

	orders, err := repositories.NewOrderRepositoryOn(d, "orders.csv").All()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.SizeMedium, orders[0].Size)
}

func TestOrderRepositoryRejectsUnknownSize(t *testing.T) {
	d := testkit.TempDisk(t)
	testkit.SeedTable(t, d, "orders.csv", `
		id,username,size,order_time
		aa11bb22,alice,calzone,09:00
	`)

	_, err := repositories.NewOrderRepositoryOn(d, "orders.csv").All()
	require.Error(t, err)
	assert.ErrorIs(t, err, tabular.ErrStorageUnavailable)
}
