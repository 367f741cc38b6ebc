package hermes

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/klogins-hash/collectiv-intelligence/internal/report"
	"github.com/klogins-hash/collectiv-intelligence/internal/scoring"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) Publish(subject string, data interface{}) error {
	args := m.Called(subject, data)
	return args.Error(0)
}

func (m *MockClient) Close() {}

func sampleReport() *report.Report {
	return &report.Report{
		ID: uuid.MustParse("5f0c2a52-8f3e-4b1c-9d7a-0c1f2e3d4b5a"),
		Rows: []report.Row{
			{Rank: 1, Name: "Ideal", Score: 100, Verdict: scoring.VerdictZion},
			{Rank: 2, Name: "Meta", Score: -56, Verdict: scoring.VerdictExtractive},
		},
	}
}

func TestPublishReport(t *testing.T) {
	c := new(MockClient)
	r := sampleReport()

	c.On("Publish", SubjectEntityScored, mock.AnythingOfType("hermes.EntityScoredEvent")).Return(nil).Twice()
	c.On("Publish", SubjectReportGenerated(r.ID.String()), mock.MatchedBy(func(e ReportGeneratedEvent) bool {
		return e.EntityCount == 2 &&
			e.Verdicts[scoring.VerdictZion] == 1 &&
			e.Verdicts[scoring.VerdictExtractive] == 1 &&
			e.Verdicts[scoring.VerdictDystopia] == 0
	})).Return(nil).Once()

	require.NoError(t, PublishReport(c, r))
	c.AssertExpectations(t)

	first := c.Calls[0].Arguments.Get(1).(EntityScoredEvent)
	assert.Equal(t, "Ideal", first.Entity)
	assert.Equal(t, r.ID.String(), first.ReportID)
}

func TestPublishReportStopsOnError(t *testing.T) {
	c := new(MockClient)
	c.On("Publish", SubjectEntityScored, mock.Anything).Return(errors.New("connection closed")).Once()

	err := PublishReport(c, sampleReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ideal")
	c.AssertNumberOfCalls(t, "Publish", 1)
}

func TestSubjects(t *testing.T) {
	assert.Equal(t, "alignment.report.abc.generated", SubjectReportGenerated("abc"))
	assert.Equal(t, "alignment.entity.scored", SubjectEntityScored)
}

func TestEntityScoredEventJSON(t *testing.T) {
	evt := EntityScoredEvent{Entity: "Meta", Score: -56, Verdict: scoring.VerdictExtractive}
	b, err := json.Marshal(evt)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"verdict":"Extractive (Babylon)"`)
	assert.Contains(t, string(b), `"breakdown":{`)
}
