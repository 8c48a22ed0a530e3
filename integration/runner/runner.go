package runner

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/sunken-cathedral/pkg/command"
	"github.com/jwebster45206/sunken-cathedral/pkg/difficulty"
	"github.com/jwebster45206/sunken-cathedral/pkg/player"
	"github.com/jwebster45206/sunken-cathedral/pkg/state"
)

type ErrorHandlingMode string

const ErrorHandlingExit ErrorHandlingMode = "exit"
const ErrorHandlingContinue ErrorHandlingMode = "continue"

// Runner executes scripted suites against an in-process game session,
// applying the same oil and move accounting the UI applies.
type Runner struct {
	ErrorHandlingMode ErrorHandlingMode
	Logger            func(format string, args ...interface{})
}

// NewRunner creates a runner that logs nothing and runs all steps.
func NewRunner() *Runner {
	return &Runner{
		ErrorHandlingMode: ErrorHandlingContinue,
		Logger:            func(format string, args ...interface{}) {},
	}
}

// RunSuite plays a suite against the given session and reports
// per-step results. The session is mutated; give each suite a fresh one.
func (r *Runner) RunSuite(gs *state.GameState, suite TestSuite) ([]StepResult, error) {
	if suite.Difficulty != "" {
		level, err := difficulty.ParseLevel(suite.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("suite %s: %w", suite.Name, err)
		}
		gs.Difficulty.SetLevel(level)
	}
	if suite.Start != nil {
		gs.Player.SetPosition(*suite.Start)
	}

	var results []StepResult
	for _, step := range suite.Steps {
		res := r.runStep(gs, suite.Name, step)
		results = append(results, res)
		if !res.Passed {
			r.Logger("FAIL %s / %s: %s", suite.Name, step.Name, res.Detail)
			if r.ErrorHandlingMode == ErrorHandlingExit {
				break
			}
			continue
		}
		r.Logger("ok   %s / %s", suite.Name, step.Name)
	}
	return results, nil
}

func (r *Runner) runStep(gs *state.GameState, suiteName string, step TestStep) StepResult {
	result := StepResult{Suite: suiteName, Step: step.Name, Passed: true}

	switch {
	case step.Teleport != nil:
		gs.Player.SetPosition(*step.Teleport)
		return result

	case step.Move != nil:
		moved := gs.Player.TryMove(*step.Move, gs.World)
		if moved {
			gs.Player.ConsumeOil(player.ActionMove, gs.Difficulty.CurrentSettings())
			gs.RecordMove()
		}
		if step.ExpectMoved != nil && moved != *step.ExpectMoved {
			result.Passed = false
			result.Detail = fmt.Sprintf("moved = %v, want %v", moved, *step.ExpectMoved)
		}
		return result

	default:
		verb, noun := command.Parse(step.Input)
		res := command.Execute(verb, noun, gs)
		if command.ConsumesOil(verb) {
			gs.Player.ConsumeOil(player.ActionCommand, gs.Difficulty.CurrentSettings())
			gs.RecordMove()
		}
		return checkResult(result, step, res)
	}
}

func checkResult(result StepResult, step TestStep, res command.Result) StepResult {
	var faults []string
	if step.ExpectKind != nil && res.Kind != *step.ExpectKind {
		faults = append(faults, fmt.Sprintf("kind = %s, want %s", res.Kind, *step.ExpectKind))
	}
	if step.ExpectUI != nil && res.UI != *step.ExpectUI {
		faults = append(faults, fmt.Sprintf("ui = %d, want %d", res.UI, *step.ExpectUI))
	}
	if step.ExpectContains != "" && !strings.Contains(res.Message, step.ExpectContains) {
		faults = append(faults, fmt.Sprintf("message %q does not contain %q", res.Message, step.ExpectContains))
	}
	if len(faults) > 0 {
		result.Passed = false
		result.Detail = strings.Join(faults, "; ")
	}
	return result
}
