package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"insightboard/internal/insight/models"
)

type ModelSuite struct {
	suite.Suite
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelSuite))
}

func record(sector, region string, intensity models.Value) models.Record {
	r := models.Record{models.FieldIntensity: intensity}
	if sector != "" {
		r[models.FieldSector] = models.String(sector)
	}
	if region != "" {
		r[models.FieldRegion] = models.String(region)
	}
	return r
}

func (s *ModelSuite) TestTwoRecordRoundTrip() {
	m, err := Train([]models.Record{
		record("A", "X", models.Number(10)),
		record("B", "Y", models.Number(20)),
	})
	s.Require().NoError(err)

	got := m.Predict(models.PredictRequest{Sector: "A", Region: "X"})
	s.True(got.Valid)
	s.Equal(10.0, got.Intensity)

	got = m.Predict(models.PredictRequest{Sector: "B", Region: "Y"})
	s.True(got.Valid)
	s.Equal(20.0, got.Intensity)
}

func (s *ModelSuite) TestOutOfVocabulary() {
	m, err := Train([]models.Record{
		record("A", "X", models.Number(10)),
		record("B", "Y", models.Number(20)),
	})
	s.Require().NoError(err)

	for _, req := range []models.PredictRequest{
		{Sector: "Z", Region: "X"},
		{Sector: "A", Region: "Z"},
		{Sector: "a", Region: "x"},
	} {
		got := m.Predict(req)
		s.False(got.Valid, "%+v", req)
		s.Zero(got.Intensity)
	}
}

func (s *ModelSuite) TestRecoversExactLinearRelation() {
	// intensity = 1 + 2*sector + 3*region with A,B,C -> 0,1,2 and X,Y -> 0,1
	m, err := Train([]models.Record{
		record("A", "X", models.Number(1)),
		record("B", "X", models.Number(3)),
		record("C", "Y", models.Number(8)),
		record("A", "Y", models.Number(4)),
	})
	s.Require().NoError(err)

	got := m.Predict(models.PredictRequest{Sector: "B", Region: "Y"})
	s.True(got.Valid)
	s.Equal(6.0, got.Intensity)
}

func (s *ModelSuite) TestSkipsRecordsWithoutIntensity() {
	m, err := Train([]models.Record{
		record("A", "X", models.Number(10)),
		record("B", "Y", models.Number(20)),
		record("C", "Z", models.String("n/a")),
		record("D", "W", models.Null()),
	})
	s.Require().NoError(err)

	sectors, regions := m.Vocabulary()
	s.Equal(2, sectors)
	s.Equal(2, regions)
	s.False(m.Predict(models.PredictRequest{Sector: "C", Region: "Z"}).Valid)
}

func (s *ModelSuite) TestBlankLabelsBecomeUnknown() {
	m, err := Train([]models.Record{
		record("", "", models.Number(7)),
		record("A", "X", models.String("9")),
	})
	s.Require().NoError(err)

	got := m.Predict(models.PredictRequest{Sector: models.UnknownLabel, Region: models.UnknownLabel})
	s.True(got.Valid)
	s.Equal(7.0, got.Intensity)
}

func (s *ModelSuite) TestSingleRecordPredictsItsIntensity() {
	m, err := Train([]models.Record{record("A", "X", models.Number(4.256))})
	s.Require().NoError(err)

	got := m.Predict(models.PredictRequest{Sector: "A", Region: "X"})
	s.True(got.Valid)
	s.Equal(4.26, got.Intensity)
}

func (s *ModelSuite) TestEmptyTrainingSetRejectsEverything() {
	m, err := Train(nil)
	s.Require().NoError(err)

	got := m.Predict(models.PredictRequest{Sector: models.UnknownLabel, Region: models.UnknownLabel})
	s.False(got.Valid)
	s.Zero(got.Intensity)
}

func TestLabelEncoderSortsClasses(t *testing.T) {
	enc := newLabelEncoder([]string{"Retail", "Energy", "Retail", "Banking"})

	require.Equal(t, 3, enc.size())
	code, ok := enc.encode("Banking")
	assert.True(t, ok)
	assert.Equal(t, 0.0, code)
	code, _ = enc.encode("Retail")
	assert.Equal(t, 2.0, code)
	_, ok = enc.encode("Mining")
	assert.False(t, ok)
}

func TestFitLinearConstantPredictors(t *testing.T) {
	m, err := fitLinear([][]float64{{1, 1}, {1, 1}, {1, 1}}, []float64{2, 4, 6})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, m.predict([]float64{1, 1}), 1e-9)
	assert.InDelta(t, 0.0, m.coef[0], 1e-9)
}

func TestFitLinearRejectsEmptyInput(t *testing.T) {
	_, err := fitLinear(nil, nil)
	assert.Error(t, err)
}
