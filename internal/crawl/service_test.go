package crawl

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"intern_scout/internal/config"
	"intern_scout/internal/crawl/mocks"
	"intern_scout/internal/domain"
	"intern_scout/internal/source"
	"intern_scout/testdata/utils"
)

type CrawlServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	extractor  *mocks.MockExtractor
	postings   *mocks.MockPostingStore
	crawlState *mocks.MockCrawlStateStore
	publisher  *mocks.MockPublisher

	cfg    config.CrawlerConfig
	logger *slog.Logger
}

func (s *CrawlServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.extractor = mocks.NewMockExtractor(s.ctrl)
	s.postings = mocks.NewMockPostingStore(s.ctrl)
	s.crawlState = mocks.NewMockCrawlStateStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.cfg = config.CrawlerConfig{
		Workers:  1,
		Cooldown: time.Millisecond,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func (s *CrawlServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCrawlServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CrawlServiceTestSuite))
}

func (s *CrawlServiceTestSuite) newService(sources []source.Descriptor, publisher Publisher) *Service {
	return NewService(sources, s.extractor, s.postings, s.crawlState, publisher, s.logger, s.cfg)
}

func (s *CrawlServiceTestSuite) expectStateUpdate() {
	s.crawlState.EXPECT().Get(gomock.Any()).Return(&domain.CrawlState{ID: 1}, nil)
	s.crawlState.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
}

func testSources(urls ...string) []source.Descriptor {
	sources := make([]source.Descriptor, len(urls))
	for i, u := range urls {
		sources[i] = source.Descriptor{URL: u, Institute: "IITM", City: "Chennai", Type: "Research"}
	}
	return sources
}

func candidate(link string) domain.Posting {
	return domain.Posting{
		InstituteCode: "IITM",
		Title:         "Research Internship Opening",
		Deadline:      utils.Ptr("unknown"),
		Link:          link,
		PostedOn:      time.Now(),
	}
}

func (s *CrawlServiceTestSuite) TestRun_NewPostingsPublished() {
	ctx := context.Background()
	sources := testSources("https://x.edu/a")
	candidates := []domain.Posting{candidate("https://x.edu/a/1"), candidate("https://x.edu/a/2")}

	s.extractor.EXPECT().Extract(gomock.Any(), sources[0]).Return(candidates, nil)
	s.postings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.expectStateUpdate()

	stats, err := s.newService(sources, s.publisher).Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Sources)
	s.Equal(2, stats.Found)
	s.Equal(2, stats.New)
	s.Equal(0, stats.Duplicates)
	s.Equal(2, stats.Published)
	s.Equal(0, stats.Failed)
}

func (s *CrawlServiceTestSuite) TestRun_DuplicateLinksNotPublished() {
	ctx := context.Background()
	sources := testSources("https://x.edu/a")
	candidates := []domain.Posting{candidate("https://x.edu/a/1")}

	s.extractor.EXPECT().Extract(gomock.Any(), sources[0]).Return(candidates, nil)
	s.postings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, nil)
	s.expectStateUpdate()

	stats, err := s.newService(sources, s.publisher).Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Found)
	s.Equal(0, stats.New)
	s.Equal(1, stats.Duplicates)
	s.Equal(0, stats.Published)
}

func (s *CrawlServiceTestSuite) TestRun_SourceFailureIsolated() {
	ctx := context.Background()
	sources := testSources("https://down.edu", "https://up.edu")

	s.extractor.EXPECT().Extract(gomock.Any(), sources[0]).Return(nil, errors.New("timeout"))
	s.extractor.EXPECT().Extract(gomock.Any(), sources[1]).
		Return([]domain.Posting{candidate("https://up.edu/1")}, nil)
	s.postings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	s.expectStateUpdate()

	stats, err := s.newService(sources, s.publisher).Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Failed)
	s.Equal(1, stats.New)
}

func (s *CrawlServiceTestSuite) TestRun_InsertErrorCountedAndContinues() {
	ctx := context.Background()
	sources := testSources("https://x.edu/a")
	candidates := []domain.Posting{candidate("https://x.edu/a/1"), candidate("https://x.edu/a/2")}

	s.extractor.EXPECT().Extract(gomock.Any(), sources[0]).Return(candidates, nil)
	gomock.InOrder(
		s.postings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, errors.New("disk full")),
		s.postings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil),
	)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	s.expectStateUpdate()

	stats, err := s.newService(sources, s.publisher).Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Errors)
	s.Equal(1, stats.New)
}

func (s *CrawlServiceTestSuite) TestRun_PublishErrorCounted() {
	ctx := context.Background()
	sources := testSources("https://x.edu/a")

	s.extractor.EXPECT().Extract(gomock.Any(), sources[0]).
		Return([]domain.Posting{candidate("https://x.edu/a/1")}, nil)
	s.postings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))
	s.expectStateUpdate()

	stats, err := s.newService(sources, s.publisher).Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.New)
	s.Equal(0, stats.Published)
	s.Equal(1, stats.Errors)
}

func (s *CrawlServiceTestSuite) TestRun_PublisherNil() {
	ctx := context.Background()
	sources := testSources("https://x.edu/a")

	s.extractor.EXPECT().Extract(gomock.Any(), sources[0]).
		Return([]domain.Posting{candidate("https://x.edu/a/1")}, nil)
	s.postings.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
	s.expectStateUpdate()

	stats, err := s.newService(sources, nil).Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.New)
	s.Equal(0, stats.Published)
}

func (s *CrawlServiceTestSuite) TestRun_BoundedWorkersCoverAllSources() {
	ctx := context.Background()
	s.cfg.Workers = 3
	sources := testSources(
		"https://a.edu", "https://b.edu", "https://c.edu",
		"https://d.edu", "https://e.edu",
	)

	s.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(nil, nil).Times(len(sources))
	s.expectStateUpdate()

	stats, err := s.newService(sources, nil).Run(ctx)

	s.NoError(err)
	s.Equal(len(sources), stats.Sources)
	s.Equal(0, stats.Failed)
}

func (s *CrawlServiceTestSuite) TestRun_CrawlStateErrorReturned() {
	ctx := context.Background()
	sources := testSources("https://x.edu/a")

	s.extractor.EXPECT().Extract(gomock.Any(), sources[0]).Return(nil, nil)
	s.crawlState.EXPECT().Get(gomock.Any()).Return(nil, errors.New("connection refused"))

	stats, err := s.newService(sources, nil).Run(ctx)

	s.Error(err)
	s.NotNil(stats)
	s.Contains(err.Error(), "update crawl state")
}
