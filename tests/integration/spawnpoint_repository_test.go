package integration

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hexvane/mhfgo/internal/db"
	"github.com/hexvane/mhfgo/internal/model"
)

// SpawnPointRepositorySuite tests spawn point persistence.
type SpawnPointRepositorySuite struct {
	IntegrationSuite
	repo *db.SpawnPointRepository
}

func (s *SpawnPointRepositorySuite) SetupSuite() {
	s.IntegrationSuite.SetupSuite()
	s.repo = db.NewSpawnPointRepository(s.db.Pool())
}

// TestCreateAndLoadAll points load back in insertion order.
func (s *SpawnPointRepositorySuite) TestCreateAndLoadAll() {
	points := []model.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 10},
		{X: -10, Y: 2.5, Z: -10},
	}

	var lastID int64
	for _, p := range points {
		id, err := s.repo.Create(s.ctx, p)
		s.Require().NoError(err)
		s.Greater(id, lastID, "ids must be monotonically increasing")
		lastID = id
	}

	loaded, err := s.repo.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(points, loaded)
}

// TestLoadAllEmpty an empty table is not an error.
func (s *SpawnPointRepositorySuite) TestLoadAllEmpty() {
	loaded, err := s.repo.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(loaded)
}

// TestSpawnPointRepositorySuite runs SpawnPointRepositorySuite.
func TestSpawnPointRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	t.Parallel()

	suite.Run(t, new(SpawnPointRepositorySuite))
}
