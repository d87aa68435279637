package wes

import (
	"github.com/speakeasy-api/wes/marshaller"
	"github.com/speakeasy-api/wes/values"
)

// RunLog is the full record of a workflow run.
type RunLog struct {
	RunID    marshaller.Field[string]
	Request  marshaller.Field[*RunRequest]
	State    marshaller.Field[State]
	RunLog   marshaller.Field[*Log]
	TaskLogs marshaller.Field[[]*Log]
	// Outputs is the free form output document of the workflow.
	Outputs marshaller.Field[*values.Value]
}

var _ marshaller.Model = (*RunLog)(nil)

var runLogSchema = marshaller.NewSchema[RunLog](ModelRunLog,
	marshaller.Prop("run_id", marshaller.String(), func(m *RunLog) *marshaller.Field[string] { return &m.RunID }),
	marshaller.Prop("request", marshaller.Ref(ModelRunRequest), func(m *RunLog) *marshaller.Field[*RunRequest] { return &m.Request }),
	marshaller.Prop("state", marshaller.Enum(stateNames()...), func(m *RunLog) *marshaller.Field[State] { return &m.State }),
	marshaller.Prop("run_log", marshaller.Ref(ModelLog), func(m *RunLog) *marshaller.Field[*Log] { return &m.RunLog }),
	marshaller.Prop("task_logs", marshaller.ListOf(marshaller.Ref(ModelLog)), func(m *RunLog) *marshaller.Field[[]*Log] { return &m.TaskLogs }),
	marshaller.Prop("outputs", marshaller.Any(), func(m *RunLog) *marshaller.Field[*values.Value] { return &m.Outputs }),
)

func (*RunLog) Schema() *marshaller.Schema {
	return runLogSchema
}

// GetRunID returns the value of the RunID field. Returns empty string if not set.
func (r *RunLog) GetRunID() string {
	if r == nil {
		return ""
	}
	return r.RunID.Get()
}

// GetRequest returns the value of the Request field. Returns nil if not set.
func (r *RunLog) GetRequest() *RunRequest {
	if r == nil {
		return nil
	}
	return r.Request.Get()
}

// GetState returns the value of the State field. Returns empty string if not set.
func (r *RunLog) GetState() State {
	if r == nil {
		return ""
	}
	return r.State.Get()
}

// GetRunLog returns the value of the RunLog field. Returns nil if not set.
func (r *RunLog) GetRunLog() *Log {
	if r == nil {
		return nil
	}
	return r.RunLog.Get()
}

// GetTaskLogs returns the value of the TaskLogs field. Returns nil if not set.
func (r *RunLog) GetTaskLogs() []*Log {
	if r == nil {
		return nil
	}
	return r.TaskLogs.Get()
}

// GetOutputs returns the value of the Outputs field. Returns nil if not set.
func (r *RunLog) GetOutputs() *values.Value {
	if r == nil {
		return nil
	}
	return r.Outputs.Get()
}

func (r *RunLog) SetRunID(v string) {
	r.RunID.Set(v)
}

func (r *RunLog) SetRequest(v *RunRequest) {
	r.Request.Set(v)
}

func (r *RunLog) SetState(v State) {
	r.State.Set(v)
}

func (r *RunLog) SetRunLog(v *Log) {
	r.RunLog.Set(v)
}

func (r *RunLog) SetTaskLogs(v []*Log) {
	r.TaskLogs.Set(v)
}

func (r *RunLog) SetOutputs(v *values.Value) {
	r.Outputs.Set(v)
}

// Status returns the short status of the run.
func (r *RunLog) Status() *RunStatus {
	s := &RunStatus{}
	if r == nil {
		return s
	}
	if r.RunID.IsPresent() {
		s.SetRunID(r.GetRunID())
	}
	if r.State.IsPresent() {
		s.SetState(r.GetState())
	}
	return s
}

// FailedTasks returns the task logs that exited with a non zero code.
func (r *RunLog) FailedTasks() []*Log {
	var failed []*Log
	for _, l := range r.GetTaskLogs() {
		if l.GetExitCode() != 0 {
			failed = append(failed, l)
		}
	}
	return failed
}
