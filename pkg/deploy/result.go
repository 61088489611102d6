package deploy

// Phase is the step a deployment reached
type Phase string

const (
	PhaseStage   Phase = "stage"
	PhasePurge   Phase = "purge"
	PhaseInstall Phase = "install"
	PhaseDone    Phase = "done"
)

// Result reports what a deployment changed. Paths are manifest entries.
type Result struct {
	Preset    string   `json:"preset,omitempty"` // Preset name, empty for Remove
	Target    string   `json:"target"`           // Game directory
	Removed   []string `json:"removed"`          // Entries purged from the target
	Installed []string `json:"installed"`        // Entries copied from the preset
	Skipped   []string `json:"skipped"`          // Entries the preset does not provide
	Phase     Phase    `json:"phase"`            // Last phase entered
	Partial   bool     `json:"partial"`          // Set when a failed call already changed the target
}

func newResult(preset, target string) *Result {
	return &Result{
		Preset:    preset,
		Target:    target,
		Removed:   []string{},
		Installed: []string{},
		Skipped:   []string{},
	}
}

// Changed reports whether the target was modified at all
func (r *Result) Changed() bool {
	return len(r.Removed) > 0 || len(r.Installed) > 0
}
