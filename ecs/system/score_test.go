package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreboard(t *testing.T) {
	sd := &fakeScoreDisplay{}
	s := NewScoreboard(sd)

	s.Add(1)
	s.Add(0)
	s.Add(2)

	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []int{0, 1, 3}, sd.shown)

	other := &fakeScoreDisplay{}
	s.SetDisplay(other)
	assert.Equal(t, []int{3}, other.shown)

	var nilBoard *Scoreboard
	nilBoard.Add(5)
	assert.Equal(t, 0, nilBoard.Count())
}

func TestRewardScript(t *testing.T) {
	tests := []struct {
		name string
		ctx  KillContext
		want int
	}{
		{"clean_kill", KillContext{MaxHealth: 100, Overkill: 0}, 1},
		{"overkill", KillContext{MaxHealth: 100, Overkill: 30}, 2},
		{"veteran", KillContext{MaxHealth: 100, Overkill: 0, Attacks: 5}, 2},
	}

	script, err := NewRewardScript([]byte(`
reward = 1
if overkill >= 25 || attacks >= 5 {
	reward += 1
}
`))
	require.NoError(t, err)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := script.Reward(tc.ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRewardScriptDefaults(t *testing.T) {
	var script *RewardScript
	got, err := script.Reward(KillContext{})
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = NewRewardScript([]byte(`reward = unknown_name`))
	assert.Error(t, err)
}
