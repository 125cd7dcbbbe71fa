package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"text-summarizer/config"
	"text-summarizer/domain"
	"text-summarizer/test/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPipelineRunner(t *testing.T, repo *mocks.MockSummaryRepository) JobRunner {
	t.Helper()

	fetcher := NewHTTPFetcher(config.FetchConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "TextSummarizerBot/test",
		MaxBodyBytes: 1 << 20,
	}, testLogger())
	extractor := NewArticleExtractor(testLogger())
	summarizer := NewExtractiveSummarizer(config.SummarizerConfig{SentenceCount: 3}, testLogger())

	return NewJobRunner(fetcher, extractor, summarizer, repo, testLogger())
}

// TestJobRunner_EndToEnd_KeyTermArticle covers the full pipeline: a
// 10-sentence article with one densely repeated key term produces a
// summary of the three densest sentences, in source order.
func TestJobRunner_EndToEnd_KeyTermArticle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "<html><body><article><p>%s</p></article></body></html>", keyTermArticle())
	}))
	defer server.Close()

	var persisted string

	mockRepo := mocks.NewMockSummaryRepository(ctrl)
	mockRepo.EXPECT().
		UpdateSummaryText(gomock.Any(), int64(42), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int64, summaryText string) error {
			persisted = summaryText
			return nil
		}).
		Times(1)

	runner := newPipelineRunner(t, mockRepo)
	runner.Run(context.Background(), 42, server.URL)

	expected := keyTermSentences[1] + " " + keyTermSentences[4] + " " + keyTermSentences[8]
	assert.Equal(t, expected, persisted)
}

// TestJobRunner_EndToEnd_UnreachableHost covers the failure path: the
// fetch step fails, the job terminates, the record is never written,
// and nothing escapes to the submitting layer.
func TestJobRunner_EndToEnd_UnreachableHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	// No expectations: any repository call fails the test.
	mockRepo := mocks.NewMockSummaryRepository(ctrl)

	runner := newPipelineRunner(t, mockRepo)

	require.NotPanics(t, func() {
		runner.Run(context.Background(), 7, url)
	})
}

func TestJobRunner_StepFailures(t *testing.T) {
	tests := map[string]struct {
		setupMocks func(f *mocks.MockFetcher, e *mocks.MockExtractor, s *mocks.MockSummarizer)
	}{
		"should stop after fetch failure": {
			setupMocks: func(f *mocks.MockFetcher, e *mocks.MockExtractor, s *mocks.MockSummarizer) {
				f.EXPECT().Fetch(gomock.Any(), "https://example.com/a").
					Return(nil, domain.ErrFetchFailed)
			},
		},
		"should stop after extraction failure": {
			setupMocks: func(f *mocks.MockFetcher, e *mocks.MockExtractor, s *mocks.MockSummarizer) {
				f.EXPECT().Fetch(gomock.Any(), "https://example.com/a").
					Return([]byte("<html></html>"), nil)
				e.EXPECT().Extract([]byte("<html></html>"), "https://example.com/a").
					Return("", domain.ErrNoExtractableBody)
			},
		},
		"should stop after summarization failure": {
			setupMocks: func(f *mocks.MockFetcher, e *mocks.MockExtractor, s *mocks.MockSummarizer) {
				f.EXPECT().Fetch(gomock.Any(), "https://example.com/a").
					Return([]byte("<html></html>"), nil)
				e.EXPECT().Extract(gomock.Any(), gomock.Any()).
					Return("   ", nil)
				s.EXPECT().Summarize("   ").
					Return("", domain.ErrEmptyDocument)
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFetcher := mocks.NewMockFetcher(ctrl)
			mockExtractor := mocks.NewMockExtractor(ctrl)
			mockSummarizer := mocks.NewMockSummarizer(ctrl)
			mockRepo := mocks.NewMockSummaryRepository(ctrl)
			tc.setupMocks(mockFetcher, mockExtractor, mockSummarizer)

			// The repository must never be written on a failed job.
			runner := NewJobRunner(mockFetcher, mockExtractor, mockSummarizer, mockRepo, testLogger())

			require.NotPanics(t, func() {
				runner.Run(context.Background(), 1, "https://example.com/a")
			})
		})
	}
}

func TestJobRunner_PersistenceFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockFetcher(ctrl)
	mockExtractor := mocks.NewMockExtractor(ctrl)
	mockSummarizer := mocks.NewMockSummarizer(ctrl)
	mockRepo := mocks.NewMockSummaryRepository(ctrl)

	mockFetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return([]byte("doc"), nil)
	mockExtractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return("Some text.", nil)
	mockSummarizer.EXPECT().Summarize("Some text.").Return("Some text.", nil)
	mockRepo.EXPECT().UpdateSummaryText(gomock.Any(), int64(9), "Some text.").
		Return(domain.ErrSummaryNotFound)

	runner := NewJobRunner(mockFetcher, mockExtractor, mockSummarizer, mockRepo, testLogger())

	require.NotPanics(t, func() {
		runner.Run(context.Background(), 9, "https://example.com/gone")
	})
}
