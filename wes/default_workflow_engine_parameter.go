package wes

import (
	"github.com/speakeasy-api/wes/marshaller"
)

// DefaultWorkflowEngineParameter describes a parameter the workflow engine
// accepts along with the value used when a run does not set it.
type DefaultWorkflowEngineParameter struct {
	// Name of the parameter.
	Name marshaller.Field[string]
	// Type of the parameter, e.g. float.
	Type marshaller.Field[string]
	// DefaultValue is the stringified value used when the parameter is not set.
	DefaultValue marshaller.Field[string]
}

var _ marshaller.Model = (*DefaultWorkflowEngineParameter)(nil)

var defaultWorkflowEngineParameterSchema = marshaller.NewSchema[DefaultWorkflowEngineParameter](ModelDefaultWorkflowEngineParameter,
	marshaller.Prop("name", marshaller.String(), func(m *DefaultWorkflowEngineParameter) *marshaller.Field[string] { return &m.Name }),
	marshaller.Prop("type", marshaller.String(), func(m *DefaultWorkflowEngineParameter) *marshaller.Field[string] { return &m.Type }),
	marshaller.Prop("default_value", marshaller.String(), func(m *DefaultWorkflowEngineParameter) *marshaller.Field[string] { return &m.DefaultValue }),
)

func (*DefaultWorkflowEngineParameter) Schema() *marshaller.Schema {
	return defaultWorkflowEngineParameterSchema
}

// GetName returns the value of the Name field. Returns empty string if not set.
func (p *DefaultWorkflowEngineParameter) GetName() string {
	if p == nil {
		return ""
	}
	return p.Name.Get()
}

// GetType returns the value of the Type field. Returns empty string if not set.
func (p *DefaultWorkflowEngineParameter) GetType() string {
	if p == nil {
		return ""
	}
	return p.Type.Get()
}

// GetDefaultValue returns the value of the DefaultValue field. Returns empty string if not set.
func (p *DefaultWorkflowEngineParameter) GetDefaultValue() string {
	if p == nil {
		return ""
	}
	return p.DefaultValue.Get()
}

func (p *DefaultWorkflowEngineParameter) SetName(name string) {
	p.Name.Set(name)
}

func (p *DefaultWorkflowEngineParameter) SetType(typ string) {
	p.Type.Set(typ)
}

func (p *DefaultWorkflowEngineParameter) SetDefaultValue(value string) {
	p.DefaultValue.Set(value)
}
