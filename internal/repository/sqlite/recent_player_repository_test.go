package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/agstats/shionweb/internal/models"
	"github.com/agstats/shionweb/internal/repository"
	"github.com/agstats/shionweb/internal/repository/sqlite"
	"github.com/agstats/shionweb/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type RecentPlayerRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.RecentPlayerRepository
	base time.Time
}

func (s *RecentPlayerRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewRecentPlayerRepository(s.db)
	s.base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RecentPlayerRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *RecentPlayerRepositorySuite) view(id int64, name string, rating int, offset time.Duration) {
	err := s.repo.Record(context.Background(), models.RecentPlayer{
		PlayerID:  id,
		SteamName: name,
		AvatarURL: "https://avatars.example/" + name + ".jpg",
		Rating:    rating,
		ViewedAt:  s.base.Add(offset),
	})
	s.Require().NoError(err)
}

func (s *RecentPlayerRepositorySuite) TestListOrdersByMostRecent() {
	s.view(1, "alpha", 1500, 0)
	s.view(2, "bravo", 1400, time.Minute)
	s.view(3, "charlie", 1300, 2*time.Minute)

	players, err := s.repo.List(context.Background(), 10)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(int64(3), players[0].PlayerID)
	s.Equal(int64(2), players[1].PlayerID)
	s.Equal(int64(1), players[2].PlayerID)
	s.Equal("charlie", players[0].SteamName)
	s.Equal(1, players[0].Views)
	s.True(players[0].ViewedAt.Equal(s.base.Add(2 * time.Minute)))
}

func (s *RecentPlayerRepositorySuite) TestRecordAgainBumpsViewsAndRefreshes() {
	s.view(1, "alpha", 1500, 0)
	s.view(2, "bravo", 1400, time.Minute)
	s.view(1, "alpha-renamed", 1520, 2*time.Minute)

	players, err := s.repo.List(context.Background(), 10)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal(int64(1), players[0].PlayerID)
	s.Equal("alpha-renamed", players[0].SteamName)
	s.Equal(1520, players[0].Rating)
	s.Equal(2, players[0].Views)
}

func (s *RecentPlayerRepositorySuite) TestListRespectsLimit() {
	for i := int64(1); i <= 5; i++ {
		s.view(i, "p", 1000, time.Duration(i)*time.Second)
	}

	players, err := s.repo.List(context.Background(), 2)
	s.Require().NoError(err)
	s.Len(players, 2)

	players, err = s.repo.List(context.Background(), 0)
	s.Require().NoError(err)
	s.NotNil(players)
	s.Empty(players)
}

func (s *RecentPlayerRepositorySuite) TestPruneKeepsNewest() {
	for i := int64(1); i <= 5; i++ {
		s.view(i, "p", 1000, time.Duration(i)*time.Second)
	}

	s.Require().NoError(s.repo.Prune(context.Background(), 2))

	players, err := s.repo.List(context.Background(), 10)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal(int64(5), players[0].PlayerID)
	s.Equal(int64(4), players[1].PlayerID)
}

func TestRecentPlayerRepositorySuite(t *testing.T) {
	suite.Run(t, new(RecentPlayerRepositorySuite))
}
