package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartUnknownFlow(t *testing.T) {
	e := NewEngine()
	_, _, err := e.Start("create_spaceship")
	assert.Error(t, err)
}

func TestCreateStopFlow(t *testing.T) {
	e := NewEngine()

	state, out, err := e.Start(FlowCreateStop)
	require.NoError(t, err)
	assert.Equal(t, StatusContinue, out.Status)
	assert.Equal(t, "What should the stop be called?", out.Prompt)

	state, out, err = e.Advance(state, "Central Market")
	require.NoError(t, err)
	assert.Equal(t, StatusContinue, out.Status)

	state, out, err = e.Advance(state, "12.9716")
	require.NoError(t, err)
	assert.Equal(t, StatusContinue, out.Status)

	state, out, err = e.Advance(state, "77.5946")
	require.NoError(t, err)
	assert.Equal(t, StatusContinue, out.Status)

	state, out, err = e.Advance(state, "yes")
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, out.Status)
	assert.Equal(t, "Central Market", out.Answers["name"])
	assert.Equal(t, 12.9716, out.Answers["latitude"])
	assert.Equal(t, 77.5946, out.Answers["longitude"])
	assert.Equal(t, true, out.Answers["confirmed"])
	assert.Equal(t, 4, state.Step)
}

func TestInvalidAnswerRepeatsStep(t *testing.T) {
	e := NewEngine()

	state, _, err := e.Start(FlowCreateTrip)
	require.NoError(t, err)

	state, _, err = e.Advance(state, "Morning Express")
	require.NoError(t, err)

	// A bad date keeps the flow on the same step.
	before := state.Step
	state, out, err := e.Advance(state, "tomorrow")
	require.NoError(t, err)
	assert.Equal(t, StatusInvalid, out.Status)
	assert.Equal(t, before, state.Step)
	assert.Contains(t, out.Message, "YYYY-MM-DD")

	state, out, err = e.Advance(state, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, StatusContinue, out.Status)
	assert.Equal(t, before+1, state.Step)
}

func TestCancellationAtAnyStep(t *testing.T) {
	e := NewEngine()

	state, _, err := e.Start(FlowCreateRoute)
	require.NoError(t, err)
	state, _, err = e.Advance(state, "Airport Shuttle")
	require.NoError(t, err)

	_, out, err := e.Advance(state, "cancel")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, out.Status)
	assert.Contains(t, out.Message, "Nothing was created")
}

func TestCreateTripSkipsOptionalIDs(t *testing.T) {
	e := NewEngine()

	state, _, err := e.Start(FlowCreateTrip)
	require.NoError(t, err)

	answers := []string{"Morning Express", "2026-03-10", "08:30", "skip", "skip", "skip", "yes"}
	var out Outcome
	for _, a := range answers {
		state, out, err = e.Advance(state, a)
		require.NoError(t, err)
	}
	assert.Equal(t, StatusComplete, out.Status)
	assert.Equal(t, 0, out.Answers["route_id"])
	assert.Equal(t, 0, out.Answers["vehicle_id"])
	assert.Equal(t, 0, out.Answers["driver_id"])
}

func TestOptionsProviderSurfacesOnStepEntry(t *testing.T) {
	e := NewEngine()

	state, _, err := e.Start(FlowCreatePath)
	require.NoError(t, err)

	_, out, err := e.Advance(state, "Ring Road")
	require.NoError(t, err)
	assert.Equal(t, "stops", out.OptionsProvider)
}

func TestIDListValidator(t *testing.T) {
	v := IDList("stop", 2)

	got, err := v("3, 7, 12")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7, 12}, got)

	_, err = v("3")
	assert.Error(t, err)

	_, err = v("3, seven")
	assert.Error(t, err)
}

func TestStateRoundTrip(t *testing.T) {
	e := NewEngine()

	state, _, err := e.Start(FlowCreateStop)
	require.NoError(t, err)
	state, _, err = e.Advance(state, "Central Market")
	require.NoError(t, err)

	// Through the session store the state becomes a JSON map; numbers
	// come back as float64.
	m := state.ToMap()
	m["step"] = float64(state.Step)

	restored, ok := StateFromMap(m)
	require.True(t, ok)
	assert.Equal(t, state.FlowType, restored.FlowType)
	assert.Equal(t, state.Step, restored.Step)
	assert.Equal(t, "Central Market", restored.Answers["name"])

	// The restored state asks the same next question.
	_, out, err := e.Advance(restored, "12.9716")
	require.NoError(t, err)
	assert.Equal(t, StatusContinue, out.Status)
	assert.Equal(t, "What is its longitude?", out.Prompt)
}

func TestStateFromMapRejectsNonWizard(t *testing.T) {
	_, ok := StateFromMap(map[string]any{"action": "cancel_trip"})
	assert.False(t, ok)
}
