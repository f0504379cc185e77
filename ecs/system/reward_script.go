package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// KillContext is what the reward script sees about a kill.
type KillContext struct {
	MaxHealth float64
	Overkill  float64
	Attacks   int
}

// RewardScript computes the score for a kill with a tengo script. The
// script reads max_health, overkill and attacks and assigns reward.
type RewardScript struct {
	compiled *tengo.Compiled
}

// NewRewardScript compiles src.
func NewRewardScript(src []byte) (*RewardScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("max_health", 0.0)
	_ = script.Add("overkill", 0.0)
	_ = script.Add("attacks", 0)
	_ = script.Add("reward", 1)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("reward script: compile: %w", err)
	}
	return &RewardScript{compiled: compiled}, nil
}

// Reward runs the script. A nil script awards one point.
func (r *RewardScript) Reward(k KillContext) (int, error) {
	if r == nil || r.compiled == nil {
		return 1, nil
	}
	if err := r.compiled.Set("max_health", k.MaxHealth); err != nil {
		return 1, err
	}
	if err := r.compiled.Set("overkill", k.Overkill); err != nil {
		return 1, err
	}
	if err := r.compiled.Set("attacks", k.Attacks); err != nil {
		return 1, err
	}
	if err := r.compiled.Set("reward", 1); err != nil {
		return 1, err
	}
	if err := r.compiled.Run(); err != nil {
		return 1, fmt.Errorf("reward script: run: %w", err)
	}
	return r.compiled.Get("reward").Int(), nil
}
