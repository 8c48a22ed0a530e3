package runner

import (
	"github.com/jwebster45206/sunken-cathedral/pkg/command"
	"github.com/jwebster45206/sunken-cathedral/pkg/world"
)

// TestSuite is a scripted play session run against a fresh world.
type TestSuite struct {
	Name       string
	Difficulty string          // difficulty tag; "" keeps the default
	Start      *world.Position // starting position override
	Steps      []TestStep
}

// TestStep is a single scripted action and its expected outcome.
// Exactly one of Input, Move or Teleport drives the step.
type TestStep struct {
	Name string

	Input    string           // command line text, parsed and dispatched
	Move     *world.Direction // one arrow-key step
	Teleport *world.Position  // reposition without movement cost

	// Expectations; nil/empty fields are not checked.
	ExpectKind     *command.ResultKind
	ExpectUI       *command.UIRequest
	ExpectContains string // substring of the result message
	ExpectMoved    *bool  // for Move steps
}

// StepResult records one executed step.
type StepResult struct {
	Suite  string
	Step   string
	Passed bool
	Detail string
}
