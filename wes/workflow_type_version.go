package wes

import (
	"github.com/speakeasy-api/wes/marshaller"
)

// WorkflowTypeVersion lists the versions of a workflow language the service can run.
type WorkflowTypeVersion struct {
	WorkflowTypeVersion marshaller.Field[[]string]
}

var _ marshaller.Model = (*WorkflowTypeVersion)(nil)

var workflowTypeVersionSchema = marshaller.NewSchema[WorkflowTypeVersion](ModelWorkflowTypeVersion,
	marshaller.Prop("workflow_type_version", marshaller.ListOf(marshaller.String()), func(m *WorkflowTypeVersion) *marshaller.Field[[]string] {
		return &m.WorkflowTypeVersion
	}),
)

func (*WorkflowTypeVersion) Schema() *marshaller.Schema {
	return workflowTypeVersionSchema
}

// GetWorkflowTypeVersion returns the value of the WorkflowTypeVersion field. Returns nil if not set.
func (w *WorkflowTypeVersion) GetWorkflowTypeVersion() []string {
	if w == nil {
		return nil
	}
	return w.WorkflowTypeVersion.Get()
}

func (w *WorkflowTypeVersion) SetWorkflowTypeVersion(versions []string) {
	w.WorkflowTypeVersion.Set(versions)
}
