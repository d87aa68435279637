package wes

import (
	"github.com/speakeasy-api/wes/marshaller"
	"github.com/speakeasy-api/wes/sequencedmap"
	"github.com/speakeasy-api/wes/values"
)

// RunRequest is the body of a workflow run submission.
type RunRequest struct {
	// WorkflowParams is the free form input document of the workflow.
	WorkflowParams      marshaller.Field[*values.Value]
	WorkflowType        marshaller.Field[string]
	WorkflowTypeVersion marshaller.Field[string]
	Tags                marshaller.Field[*sequencedmap.Map[string, string]]
	// WorkflowEngineParameters overrides the engine's default parameters.
	WorkflowEngineParameters marshaller.Field[*sequencedmap.Map[string, string]]
	WorkflowURL              marshaller.Field[string]
}

var _ marshaller.Model = (*RunRequest)(nil)

var runRequestSchema = marshaller.NewSchema[RunRequest](ModelRunRequest,
	marshaller.Prop("workflow_params", marshaller.Any(), func(m *RunRequest) *marshaller.Field[*values.Value] { return &m.WorkflowParams }, marshaller.WithRequired()),
	marshaller.Prop("workflow_type", marshaller.String(), func(m *RunRequest) *marshaller.Field[string] { return &m.WorkflowType }, marshaller.WithRequired()),
	marshaller.Prop("workflow_type_version", marshaller.String(), func(m *RunRequest) *marshaller.Field[string] { return &m.WorkflowTypeVersion }, marshaller.WithRequired()),
	marshaller.Prop("tags", marshaller.MapOf(marshaller.String()), func(m *RunRequest) *marshaller.Field[*sequencedmap.Map[string, string]] { return &m.Tags }),
	marshaller.Prop("workflow_engine_parameters", marshaller.MapOf(marshaller.String()), func(m *RunRequest) *marshaller.Field[*sequencedmap.Map[string, string]] {
		return &m.WorkflowEngineParameters
	}),
	marshaller.Prop("workflow_url", marshaller.String(), func(m *RunRequest) *marshaller.Field[string] { return &m.WorkflowURL }, marshaller.WithRequired()),
)

func (*RunRequest) Schema() *marshaller.Schema {
	return runRequestSchema
}

// GetWorkflowParams returns the value of the WorkflowParams field. Returns nil if not set.
func (r *RunRequest) GetWorkflowParams() *values.Value {
	if r == nil {
		return nil
	}
	return r.WorkflowParams.Get()
}

// GetWorkflowType returns the value of the WorkflowType field. Returns empty string if not set.
func (r *RunRequest) GetWorkflowType() string {
	if r == nil {
		return ""
	}
	return r.WorkflowType.Get()
}

// GetWorkflowTypeVersion returns the value of the WorkflowTypeVersion field. Returns empty string if not set.
func (r *RunRequest) GetWorkflowTypeVersion() string {
	if r == nil {
		return ""
	}
	return r.WorkflowTypeVersion.Get()
}

// GetTags returns the value of the Tags field. Returns nil if not set.
func (r *RunRequest) GetTags() *sequencedmap.Map[string, string] {
	if r == nil {
		return nil
	}
	return r.Tags.Get()
}

// GetWorkflowEngineParameters returns the value of the WorkflowEngineParameters field. Returns nil if not set.
func (r *RunRequest) GetWorkflowEngineParameters() *sequencedmap.Map[string, string] {
	if r == nil {
		return nil
	}
	return r.WorkflowEngineParameters.Get()
}

// GetWorkflowURL returns the value of the WorkflowURL field. Returns empty string if not set.
func (r *RunRequest) GetWorkflowURL() string {
	if r == nil {
		return ""
	}
	return r.WorkflowURL.Get()
}

func (r *RunRequest) SetWorkflowParams(v *values.Value) {
	r.WorkflowParams.Set(v)
}

func (r *RunRequest) SetWorkflowType(v string) {
	r.WorkflowType.Set(v)
}

func (r *RunRequest) SetWorkflowTypeVersion(v string) {
	r.WorkflowTypeVersion.Set(v)
}

func (r *RunRequest) SetTags(v *sequencedmap.Map[string, string]) {
	r.Tags.Set(v)
}

func (r *RunRequest) SetWorkflowEngineParameters(v *sequencedmap.Map[string, string]) {
	r.WorkflowEngineParameters.Set(v)
}

func (r *RunRequest) SetWorkflowURL(v string) {
	r.WorkflowURL.Set(v)
}

// EngineParameter returns the value a run uses for the named engine
// parameter: the request's override when set, otherwise the default
// advertised in defaults.
func (r *RunRequest) EngineParameter(name string, defaults []*DefaultWorkflowEngineParameter) (string, bool) {
	if v, ok := r.GetWorkflowEngineParameters().Get(name); ok {
		return v, true
	}
	for _, d := range defaults {
		if d.GetName() == name && d.DefaultValue.IsPresent() {
			return d.GetDefaultValue(), true
		}
	}
	return "", false
}
