package wes

import (
	"github.com/speakeasy-api/wes/marshaller"
)

// RunID identifies a workflow run. It is the response body of run
// submission and cancellation.
type RunID struct {
	RunID marshaller.Field[string]
}

var _ marshaller.Model = (*RunID)(nil)

var runIDSchema = marshaller.NewSchema[RunID](ModelRunID,
	marshaller.Prop("run_id", marshaller.String(), func(m *RunID) *marshaller.Field[string] { return &m.RunID }),
)

func (*RunID) Schema() *marshaller.Schema {
	return runIDSchema
}

// GetRunID returns the value of the RunID field. Returns empty string if not set.
func (r *RunID) GetRunID() string {
	if r == nil {
		return ""
	}
	return r.RunID.Get()
}

func (r *RunID) SetRunID(runID string) {
	r.RunID.Set(runID)
}
