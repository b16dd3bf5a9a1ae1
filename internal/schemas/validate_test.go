package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvaluation_FullPayload(t *testing.T) {
	raw := `{
		"score": 82,
		"technical_score": 78,
		"communication_score": 85,
		"star_components": {"situation": true, "task": true, "action": true, "result": false},
		"strengths": ["Clear structure"],
		"improvements": ["Quantify the outcome"],
		"model_answer": "A stronger answer would include metrics."
	}`

	eval, err := DecodeEvaluation(raw)
	require.NoError(t, err)

	assert.Equal(t, 82, eval.Score)
	require.NotNil(t, eval.TechnicalScore)
	assert.Equal(t, 78, *eval.TechnicalScore)
	require.NotNil(t, eval.CommunicationScore)
	assert.Equal(t, 85, *eval.CommunicationScore)
	assert.Equal(t, 3, eval.Star.Count())
	assert.Equal(t, []string{"Clear structure"}, eval.Strengths)
	assert.Equal(t, []string{"Quantify the outcome"}, eval.Improvements)
	assert.Equal(t, "A stronger answer would include metrics.", eval.ModelAnswer)
}

func TestDecodeEvaluation_MinimalPayloadFillsDefaults(t *testing.T) {
	eval, err := DecodeEvaluation(`{"score": 70}`)
	require.NoError(t, err)

	assert.Equal(t, 70, eval.Score)
	assert.Nil(t, eval.TechnicalScore)
	assert.Nil(t, eval.CommunicationScore)
	assert.Equal(t, 0, eval.Star.Count())
	assert.Equal(t, []string{"Answer provided"}, eval.Strengths)
	assert.Equal(t, []string{"Could be more specific"}, eval.Improvements)
}

func TestDecodeEvaluation_MissingScore(t *testing.T) {
	_, err := DecodeEvaluation(`{"strengths": ["good"]}`)
	assert.Error(t, err)
}

func TestDecodeEvaluation_ScoreOutOfRange(t *testing.T) {
	_, err := DecodeEvaluation(`{"score": 150}`)
	assert.Error(t, err)

	_, err = DecodeEvaluation(`{"score": -5}`)
	assert.Error(t, err)
}

func TestDecodeEvaluation_UnknownStarComponent(t *testing.T) {
	_, err := DecodeEvaluation(`{"score": 70, "star_components": {"situation": true, "outcome": true}}`)
	assert.Error(t, err)
}

func TestDecodeEvaluation_NotJSON(t *testing.T) {
	_, err := DecodeEvaluation("the answer was fine")
	assert.Error(t, err)
}

func TestDecodeEvaluation_WrongScoreType(t *testing.T) {
	_, err := DecodeEvaluation(`{"score": "eighty"}`)
	assert.Error(t, err)
}
