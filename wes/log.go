package wes

import (
	"github.com/speakeasy-api/wes/marshaller"
)

// Log records a single command executed as part of a workflow run.
type Log struct {
	Name marshaller.Field[string]
	Cmd  marshaller.Field[[]string]
	// StartTime and EndTime are ISO 8601 timestamps kept as sent.
	StartTime marshaller.Field[string]
	EndTime   marshaller.Field[string]
	// Stdout and Stderr are URLs of the captured streams.
	Stdout   marshaller.Field[string]
	Stderr   marshaller.Field[string]
	ExitCode marshaller.Field[int32]
}

var _ marshaller.Model = (*Log)(nil)

var logSchema = marshaller.NewSchema[Log](ModelLog,
	marshaller.Prop("name", marshaller.String(), func(m *Log) *marshaller.Field[string] { return &m.Name }),
	marshaller.Prop("cmd", marshaller.ListOf(marshaller.String()), func(m *Log) *marshaller.Field[[]string] { return &m.Cmd }),
	marshaller.Prop("start_time", marshaller.String(), func(m *Log) *marshaller.Field[string] { return &m.StartTime }),
	marshaller.Prop("end_time", marshaller.String(), func(m *Log) *marshaller.Field[string] { return &m.EndTime }),
	marshaller.Prop("stdout", marshaller.String(), func(m *Log) *marshaller.Field[string] { return &m.Stdout }),
	marshaller.Prop("stderr", marshaller.String(), func(m *Log) *marshaller.Field[string] { return &m.Stderr }),
	marshaller.Prop("exit_code", marshaller.Integer(), func(m *Log) *marshaller.Field[int32] { return &m.ExitCode }),
)

func (*Log) Schema() *marshaller.Schema {
	return logSchema
}

// GetName returns the value of the Name field. Returns empty string if not set.
func (l *Log) GetName() string {
	if l == nil {
		return ""
	}
	return l.Name.Get()
}

// GetCmd returns the value of the Cmd field. Returns nil if not set.
func (l *Log) GetCmd() []string {
	if l == nil {
		return nil
	}
	return l.Cmd.Get()
}

// GetStartTime returns the value of the StartTime field. Returns empty string if not set.
func (l *Log) GetStartTime() string {
	if l == nil {
		return ""
	}
	return l.StartTime.Get()
}

// GetEndTime returns the value of the EndTime field. Returns empty string if not set.
func (l *Log) GetEndTime() string {
	if l == nil {
		return ""
	}
	return l.EndTime.Get()
}

// GetStdout returns the value of the Stdout field. Returns empty string if not set.
func (l *Log) GetStdout() string {
	if l == nil {
		return ""
	}
	return l.Stdout.Get()
}

// GetStderr returns the value of the Stderr field. Returns empty string if not set.
func (l *Log) GetStderr() string {
	if l == nil {
		return ""
	}
	return l.Stderr.Get()
}

// GetExitCode returns the value of the ExitCode field. Returns 0 if not set.
func (l *Log) GetExitCode() int32 {
	if l == nil {
		return 0
	}
	return l.ExitCode.Get()
}

func (l *Log) SetName(v string) {
	l.Name.Set(v)
}

func (l *Log) SetCmd(v []string) {
	l.Cmd.Set(v)
}

func (l *Log) SetStartTime(v string) {
	l.StartTime.Set(v)
}

func (l *Log) SetEndTime(v string) {
	l.EndTime.Set(v)
}

func (l *Log) SetStdout(v string) {
	l.Stdout.Set(v)
}

func (l *Log) SetStderr(v string) {
	l.Stderr.Set(v)
}

func (l *Log) SetExitCode(v int32) {
	l.ExitCode.Set(v)
}
