package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpulse/insights/pkg/db"
)

func TestEngagementByState(t *testing.T) {
	store := &fakeStore{
		stateEngagement: []db.StateEngagementRow{
			{State: "alpha", TotalRegisteredUsers: 600, TotalAppOpens: 1500},
			{State: "bravo", TotalRegisteredUsers: 400, TotalAppOpens: 1000},
			{State: "ghost", TotalRegisteredUsers: 0, TotalAppOpens: 50},
		},
		nationalUsers: 1000,
	}
	engine := newTestEngine(t, store)

	rows, err := engine.EngagementByState(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.NotNil(t, rows[0].AvgOpensPerUser)
	assert.Equal(t, 2.5, *rows[0].AvgOpensPerUser)
	require.NotNil(t, rows[0].NationalUserPercentage)
	assert.Equal(t, 60.0, *rows[0].NationalUserPercentage)

	// Zero registered users: no ratio, zero share.
	assert.Nil(t, rows[2].AvgOpensPerUser)
	require.NotNil(t, rows[2].NationalUserPercentage)
	assert.Equal(t, 0.0, *rows[2].NationalUserPercentage)
}

func TestEngagementByDistrict(t *testing.T) {
	store := &fakeStore{
		districtEngagement: []db.DistrictEngagementRow{
			{District: "north", TotalRegisteredUsers: 750, TotalAppOpens: 3000},
			{District: "south", TotalRegisteredUsers: 250, TotalAppOpens: 250},
		},
		stateMapUsers: 1000,
	}
	engine := newTestEngine(t, store)

	rows, err := engine.EngagementByDistrict(context.Background(), "alpha")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].AvgOpensPerUser)
	assert.Equal(t, 4.0, *rows[0].AvgOpensPerUser)
	require.NotNil(t, rows[0].DistrictUserPercentage)
	assert.Equal(t, 75.0, *rows[0].DistrictUserPercentage)

	require.NotNil(t, rows[1].AvgOpensPerUser)
	assert.Equal(t, 1.0, *rows[1].AvgOpensPerUser)
}

func TestEngagementByStateZeroNationalTotal(t *testing.T) {
	store := &fakeStore{
		stateEngagement: []db.StateEngagementRow{
			{State: "alpha", TotalRegisteredUsers: 0, TotalAppOpens: 0},
		},
		nationalUsers: 0,
	}
	engine := newTestEngine(t, store)

	rows, err := engine.EngagementByState(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].NationalUserPercentage)
	assert.Nil(t, rows[0].AvgOpensPerUser)
}
