package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantops/linesight/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testResult(issue string, evaluatedAt time.Time) *models.AnalysisResult {
	return &models.AnalysisResult{
		Request: models.AnalysisRequest{
			Domain:        "engine",
			Issue:         issue,
			WindowMinutes: 60,
		},
		Assessment: models.Assessment{
			Domain:          "engine",
			Station:         "2",
			Findings:        []string{"Possible bearing wear or misalignment (high vibration)."},
			Actions:         []string{"Schedule bearing inspection within next 24–48 hours; reduce RPM by 10% temporarily."},
			TimeToAttention: "Likely failure within 3–5 days if untreated.",
			RULDays:         4,
			Anomalous:       true,
			Source:          models.SourceRules,
			EvaluatedAt:     evaluatedAt,
		},
		Narrative: "**Assessment:**\n- Possible bearing wear or misalignment (high vibration).",
	}
}

var baseTime = time.Date(2025, 8, 29, 9, 15, 0, 0, time.UTC)

func TestSaveAndGet(t *testing.T) {
	db := testDB(t)

	id, err := db.SaveResult(testResult("Vibration spike on Station 2", baseTime))
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	stored, err := db.GetAssessment(id)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "engine", stored.Domain)
	assert.Equal(t, "2", stored.Station)
	assert.Equal(t, "Vibration spike on Station 2", stored.Issue)
	assert.Equal(t, 4, stored.RULDays)
	assert.True(t, stored.Anomalous)
	assert.Equal(t, models.SourceRules, stored.Source)
	assert.Equal(t, stored.Result.Assessment.Findings,
		[]string{"Possible bearing wear or misalignment (high vibration)."})
}

func TestSaveUpsertsOnAssessmentIdentity(t *testing.T) {
	db := testDB(t)

	first, err := db.SaveResult(testResult("initial run", baseTime))
	require.NoError(t, err)

	// same domain/station/evaluated_at replaces the row
	second, err := db.SaveResult(testResult("re-analysis of the same window", baseTime))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	count, err := db.CountAssessments()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	stored, err := db.GetAssessment(first)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "re-analysis of the same window", stored.Issue)

	// a different window is a new row
	_, err = db.SaveResult(testResult("next window", baseTime.Add(5*time.Minute)))
	require.NoError(t, err)

	count, err = db.CountAssessments()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGetMissingReturnsNil(t *testing.T) {
	db := testDB(t)

	stored, err := db.GetAssessment(12345)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestSourceIsStoredAsAssessed(t *testing.T) {
	db := testDB(t)

	result := testResult("issue", baseTime)
	result.GeneratorUsed = true
	result.Assessment.Source = models.SourceGenerator
	id, err := db.SaveResult(result)
	require.NoError(t, err)

	stored, err := db.GetAssessment(id)
	require.NoError(t, err)
	assert.Equal(t, models.SourceGenerator, stored.Source)
}

func TestListAndCount(t *testing.T) {
	db := testDB(t)

	for i, issue := range []string{"first", "second", "third"} {
		_, err := db.SaveResult(testResult(issue, baseTime.Add(time.Duration(i)*5*time.Minute)))
		require.NoError(t, err)
	}

	count, err := db.CountAssessments()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	assessments, err := db.ListAssessments(2, 0)
	require.NoError(t, err)
	assert.Len(t, assessments, 2)

	assessments, err = db.ListAssessments(10, 2)
	require.NoError(t, err)
	assert.Len(t, assessments, 1)
}

func TestAllAssessments(t *testing.T) {
	db := testDB(t)

	for i := 0; i < 5; i++ {
		_, err := db.SaveResult(testResult("window", baseTime.Add(time.Duration(i)*5*time.Minute)))
		require.NoError(t, err)
	}

	assessments, err := db.AllAssessments()
	require.NoError(t, err)
	assert.Len(t, assessments, 5)
}

func TestDelete(t *testing.T) {
	db := testDB(t)

	id, err := db.SaveResult(testResult("to delete", baseTime))
	require.NoError(t, err)

	require.NoError(t, db.DeleteAssessment(id))

	stored, err := db.GetAssessment(id)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
