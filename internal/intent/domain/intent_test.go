package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Success_RequiredFieldsAndDefaults", func(t *testing.T) {
		intent, err := New("analyze_data", "finance")
		require.NoError(t, err)

		assert.NotEmpty(t, intent.ID())
		assert.Equal(t, "analyze_data", intent.Action())
		assert.Equal(t, "finance", intent.Domain())
		assert.Equal(t, PriorityNormal, intent.Priority())

		_, hasTarget := intent.Target()
		assert.False(t, hasTarget)
	})

	t.Run("Success_DistinctIDs", func(t *testing.T) {
		first, err := New("analyze_data", "finance")
		require.NoError(t, err)

		second, err := New("analyze_data", "finance")
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
	})

	t.Run("Error_EmptyAction", func(t *testing.T) {
		_, err := New("", "finance")
		assert.ErrorIs(t, err, ErrEmptyAction)
	})

	t.Run("Error_EmptyDomain", func(t *testing.T) {
		_, err := New("analyze_data", "")
		assert.ErrorIs(t, err, ErrEmptyDomain)
	})
}

func TestIntentBuilder(t *testing.T) {
	t.Run("Success_ChainedConstruction", func(t *testing.T) {
		intent, err := New("analyze_data", "finance")
		require.NoError(t, err)

		intent.SetTarget("s3://lake/x.parquet").
			SetPriority(PriorityHigh).
			AddParam("format", "parquet")

		target, hasTarget := intent.Target()
		assert.True(t, hasTarget)
		assert.Equal(t, "s3://lake/x.parquet", target)
		assert.Equal(t, PriorityHigh, intent.Priority())

		format, ok := intent.Param("format")
		assert.True(t, ok)
		assert.Equal(t, "parquet", format)
	})

	t.Run("Error_InvalidPriorityIsDeferred", func(t *testing.T) {
		intent, err := New("analyze_data", "finance")
		require.NoError(t, err)

		// The chain stays fluent; the error surfaces at serialization.
		intent.SetPriority(PriorityLevel(9)).AddParam("format", "parquet")

		_, err = intent.CanonicalJSON()
		assert.ErrorIs(t, err, ErrInvalidPriority)
	})

	t.Run("Error_EmptyParamKeyIsDeferred", func(t *testing.T) {
		intent, err := New("analyze_data", "finance")
		require.NoError(t, err)

		intent.AddParam("", "value")

		_, err = intent.CanonicalJSON()
		assert.ErrorIs(t, err, ErrEmptyParamKey)
	})

	t.Run("Error_FirstDeferredErrorWins", func(t *testing.T) {
		intent, err := New("analyze_data", "finance")
		require.NoError(t, err)

		intent.SetPriority(PriorityLevel(9)).AddParam("", "value")

		_, err = intent.CanonicalJSON()
		assert.ErrorIs(t, err, ErrInvalidPriority)
	})
}

func TestIntentCanonicalJSON(t *testing.T) {
	t.Run("Success_FullShape", func(t *testing.T) {
		intent, err := New("analyze_data", "finance")
		require.NoError(t, err)

		intent.SetTarget("s3://lake/x.parquet").
			SetPriority(PriorityHigh).
			AddParam("format", "parquet")

		canonical, err := intent.CanonicalJSON()
		require.NoError(t, err)

		var decoded struct {
			ID       string `json:"id"`
			Action   string `json:"action"`
			Domain   string `json:"domain"`
			Target   *string `json:"target"`
			Priority struct {
				Value int    `json:"value"`
				Label string `json:"label"`
			} `json:"priority"`
			Params map[string]string `json:"params"`
		}
		require.NoError(t, json.Unmarshal([]byte(canonical), &decoded))

		assert.Equal(t, intent.ID(), decoded.ID)
		assert.Equal(t, "analyze_data", decoded.Action)
		assert.Equal(t, "finance", decoded.Domain)
		require.NotNil(t, decoded.Target)
		assert.Equal(t, "s3://lake/x.parquet", *decoded.Target)
		assert.Equal(t, 2, decoded.Priority.Value)
		assert.Equal(t, "High", decoded.Priority.Label)
		assert.Equal(t, map[string]string{"format": "parquet"}, decoded.Params)
	})

	t.Run("Success_NullTargetWhenUnset", func(t *testing.T) {
		intent, err := New("summarize", "reporting")
		require.NoError(t, err)

		canonical, err := intent.CanonicalJSON()
		require.NoError(t, err)

		assert.Contains(t, canonical, `"target":null`)
	})

	t.Run("Success_RepeatedSerializationIsByteIdentical", func(t *testing.T) {
		intent, err := New("analyze_data", "finance")
		require.NoError(t, err)

		intent.AddParam("b", "2").AddParam("a", "1")

		first, err := intent.CanonicalJSON()
		require.NoError(t, err)

		second, err := intent.CanonicalJSON()
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Error_MutationAfterSerializationIsFrozen", func(t *testing.T) {
		intent, err := New("analyze_data", "finance")
		require.NoError(t, err)

		_, err = intent.CanonicalJSON()
		require.NoError(t, err)

		intent.SetTarget("s3://lake/other.parquet")

		_, err = intent.CanonicalJSON()
		assert.ErrorIs(t, err, ErrIntentFrozen)
	})
}
