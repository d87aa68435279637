package wes

import (
	"github.com/speakeasy-api/wes/marshaller"
)

// RunStatus is the short status of a workflow run.
type RunStatus struct {
	RunID marshaller.Field[string]
	State marshaller.Field[State]
}

var _ marshaller.Model = (*RunStatus)(nil)

var runStatusSchema = marshaller.NewSchema[RunStatus](ModelRunStatus,
	marshaller.Prop("run_id", marshaller.String(), func(m *RunStatus) *marshaller.Field[string] { return &m.RunID }, marshaller.WithRequired()),
	marshaller.Prop("state", marshaller.Enum(stateNames()...), func(m *RunStatus) *marshaller.Field[State] { return &m.State }),
)

func (*RunStatus) Schema() *marshaller.Schema {
	return runStatusSchema
}

// GetRunID returns the value of the RunID field. Returns empty string if not set.
func (r *RunStatus) GetRunID() string {
	if r == nil {
		return ""
	}
	return r.RunID.Get()
}

// GetState returns the value of the State field. Returns empty string if not set.
func (r *RunStatus) GetState() State {
	if r == nil {
		return ""
	}
	return r.State.Get()
}

func (r *RunStatus) SetRunID(v string) {
	r.RunID.Set(v)
}

func (r *RunStatus) SetState(v State) {
	r.State.Set(v)
}

// RunListResponse is one page of workflow runs.
type RunListResponse struct {
	Runs marshaller.Field[[]*RunStatus]
	// NextPageToken requests the following page. Empty on the last page.
	NextPageToken marshaller.Field[string]
}

var _ marshaller.Model = (*RunListResponse)(nil)

var runListResponseSchema = marshaller.NewSchema[RunListResponse](ModelRunListResponse,
	marshaller.Prop("runs", marshaller.ListOf(marshaller.Ref(ModelRunStatus)), func(m *RunListResponse) *marshaller.Field[[]*RunStatus] { return &m.Runs }),
	marshaller.Prop("next_page_token", marshaller.String(), func(m *RunListResponse) *marshaller.Field[string] { return &m.NextPageToken }),
)

func (*RunListResponse) Schema() *marshaller.Schema {
	return runListResponseSchema
}

// GetRuns returns the value of the Runs field. Returns nil if not set.
func (r *RunListResponse) GetRuns() []*RunStatus {
	if r == nil {
		return nil
	}
	return r.Runs.Get()
}

// GetNextPageToken returns the value of the NextPageToken field. Returns empty string if not set.
func (r *RunListResponse) GetNextPageToken() string {
	if r == nil {
		return ""
	}
	return r.NextPageToken.Get()
}

func (r *RunListResponse) SetRuns(v []*RunStatus) {
	r.Runs.Set(v)
}

func (r *RunListResponse) SetNextPageToken(v string) {
	r.NextPageToken.Set(v)
}

// HasMore reports whether another page can be requested.
func (r *RunListResponse) HasMore() bool {
	return r.GetNextPageToken() != ""
}
