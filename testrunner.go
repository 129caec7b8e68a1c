package canopy

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Dir    string  `json:"dir,omitempty"`
	Name   string  `json:"name,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input, focus expectations and screenshots
// across frames for automated menu testing. Attach to a Scene via
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("canopy: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("canopy: parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "navigate":
			if _, err := ParseDirection(st.Dir); err != nil {
				return nil, fmt.Errorf("canopy: parse test script: step %d: %w", i, err)
			}
		case "validate", "cancel", "move", "click", "wait", "expectFocus", "screenshot":
		default:
			return nil, fmt.Errorf("canopy: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before input is processed each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the expectations that did not hold, in step order.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone(s)
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "navigate":
		dir, _ := ParseDirection(st.Dir)
		s.InjectNavigate(dir)
	case "validate":
		s.InjectValidate()
	case "cancel":
		s.InjectCancel()
	case "move":
		s.InjectMove(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expectFocus":
		r.expectFocus(s, r.cursor-1, st.Name)
	case "screenshot":
		s.Screenshot(st.Label)
	}

	r.checkDone(s)
}

func (r *TestRunner) checkDone(s *Scene) {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) expectFocus(s *Scene, index int, name string) {
	got := ""
	if f := s.focus.Focused(); f != nil {
		got = f.Name
	}
	if got != name {
		r.failures = append(r.failures, fmt.Sprintf("step %d: focused %q, want %q", index, got, name))
	}
}
