package wes

import (
	"slices"

	"github.com/speakeasy-api/wes/internal/version"
	"github.com/speakeasy-api/wes/marshaller"
	"github.com/speakeasy-api/wes/sequencedmap"
)

// ServiceInfo describes the capabilities of a workflow execution service.
type ServiceInfo struct {
	// WorkflowTypeVersions maps a workflow language, e.g. CWL, to its supported versions.
	WorkflowTypeVersions marshaller.Field[*sequencedmap.Map[string, *WorkflowTypeVersion]]
	// SupportedWESVersions lists the API versions the service implements.
	SupportedWESVersions         marshaller.Field[[]string]
	SupportedFilesystemProtocols marshaller.Field[[]string]
	// WorkflowEngineVersions maps an engine name to its version.
	WorkflowEngineVersions          marshaller.Field[*sequencedmap.Map[string, string]]
	DefaultWorkflowEngineParameters marshaller.Field[[]*DefaultWorkflowEngineParameter]
	// SystemStateCounts maps a run state to the number of runs in it.
	SystemStateCounts   marshaller.Field[*sequencedmap.Map[string, int64]]
	AuthInstructionsURL marshaller.Field[string]
	ContactInfoURL      marshaller.Field[string]
	Tags                marshaller.Field[*sequencedmap.Map[string, string]]
}

var _ marshaller.Model = (*ServiceInfo)(nil)

var serviceInfoSchema = marshaller.NewSchema[ServiceInfo](ModelServiceInfo,
	marshaller.Prop("workflow_type_versions", marshaller.MapOf(marshaller.Ref(ModelWorkflowTypeVersion)), func(m *ServiceInfo) *marshaller.Field[*sequencedmap.Map[string, *WorkflowTypeVersion]] {
		return &m.WorkflowTypeVersions
	}, marshaller.WithRequired()),
	marshaller.Prop("supported_wes_versions", marshaller.ListOf(marshaller.String()), func(m *ServiceInfo) *marshaller.Field[[]string] {
		return &m.SupportedWESVersions
	}, marshaller.WithRequired()),
	marshaller.Prop("supported_filesystem_protocols", marshaller.ListOf(marshaller.String()), func(m *ServiceInfo) *marshaller.Field[[]string] {
		return &m.SupportedFilesystemProtocols
	}, marshaller.WithRequired()),
	marshaller.Prop("workflow_engine_versions", marshaller.MapOf(marshaller.String()), func(m *ServiceInfo) *marshaller.Field[*sequencedmap.Map[string, string]] {
		return &m.WorkflowEngineVersions
	}, marshaller.WithRequired()),
	marshaller.Prop("default_workflow_engine_parameters", marshaller.ListOf(marshaller.Ref(ModelDefaultWorkflowEngineParameter)), func(m *ServiceInfo) *marshaller.Field[[]*DefaultWorkflowEngineParameter] {
		return &m.DefaultWorkflowEngineParameters
	}, marshaller.WithRequired()),
	marshaller.Prop("system_state_counts", marshaller.MapOf(marshaller.Integer()), func(m *ServiceInfo) *marshaller.Field[*sequencedmap.Map[string, int64]] {
		return &m.SystemStateCounts
	}, marshaller.WithRequired()),
	marshaller.Prop("auth_instructions_url", marshaller.String(), func(m *ServiceInfo) *marshaller.Field[string] {
		return &m.AuthInstructionsURL
	}, marshaller.WithRequired()),
	marshaller.Prop("contact_info_url", marshaller.String(), func(m *ServiceInfo) *marshaller.Field[string] {
		return &m.ContactInfoURL
	}, marshaller.WithRequired()),
	marshaller.Prop("tags", marshaller.MapOf(marshaller.String()), func(m *ServiceInfo) *marshaller.Field[*sequencedmap.Map[string, string]] {
		return &m.Tags
	}, marshaller.WithRequired()),
)

func (*ServiceInfo) Schema() *marshaller.Schema {
	return serviceInfoSchema
}

// GetWorkflowTypeVersions returns the value of the WorkflowTypeVersions field. Returns nil if not set.
func (s *ServiceInfo) GetWorkflowTypeVersions() *sequencedmap.Map[string, *WorkflowTypeVersion] {
	if s == nil {
		return nil
	}
	return s.WorkflowTypeVersions.Get()
}

// GetSupportedWESVersions returns the value of the SupportedWESVersions field. Returns nil if not set.
func (s *ServiceInfo) GetSupportedWESVersions() []string {
	if s == nil {
		return nil
	}
	return s.SupportedWESVersions.Get()
}

// GetSupportedFilesystemProtocols returns the value of the SupportedFilesystemProtocols field. Returns nil if not set.
func (s *ServiceInfo) GetSupportedFilesystemProtocols() []string {
	if s == nil {
		return nil
	}
	return s.SupportedFilesystemProtocols.Get()
}

// GetWorkflowEngineVersions returns the value of the WorkflowEngineVersions field. Returns nil if not set.
func (s *ServiceInfo) GetWorkflowEngineVersions() *sequencedmap.Map[string, string] {
	if s == nil {
		return nil
	}
	return s.WorkflowEngineVersions.Get()
}

// GetDefaultWorkflowEngineParameters returns the value of the DefaultWorkflowEngineParameters field. Returns nil if not set.
func (s *ServiceInfo) GetDefaultWorkflowEngineParameters() []*DefaultWorkflowEngineParameter {
	if s == nil {
		return nil
	}
	return s.DefaultWorkflowEngineParameters.Get()
}

// GetSystemStateCounts returns the value of the SystemStateCounts field. Returns nil if not set.
func (s *ServiceInfo) GetSystemStateCounts() *sequencedmap.Map[string, int64] {
	if s == nil {
		return nil
	}
	return s.SystemStateCounts.Get()
}

// GetAuthInstructionsURL returns the value of the AuthInstructionsURL field. Returns empty string if not set.
func (s *ServiceInfo) GetAuthInstructionsURL() string {
	if s == nil {
		return ""
	}
	return s.AuthInstructionsURL.Get()
}

// GetContactInfoURL returns the value of the ContactInfoURL field. Returns empty string if not set.
func (s *ServiceInfo) GetContactInfoURL() string {
	if s == nil {
		return ""
	}
	return s.ContactInfoURL.Get()
}

// GetTags returns the value of the Tags field. Returns nil if not set.
func (s *ServiceInfo) GetTags() *sequencedmap.Map[string, string] {
	if s == nil {
		return nil
	}
	return s.Tags.Get()
}

func (s *ServiceInfo) SetWorkflowTypeVersions(v *sequencedmap.Map[string, *WorkflowTypeVersion]) {
	s.WorkflowTypeVersions.Set(v)
}

func (s *ServiceInfo) SetSupportedWESVersions(v []string) {
	s.SupportedWESVersions.Set(v)
}

func (s *ServiceInfo) SetSupportedFilesystemProtocols(v []string) {
	s.SupportedFilesystemProtocols.Set(v)
}

func (s *ServiceInfo) SetWorkflowEngineVersions(v *sequencedmap.Map[string, string]) {
	s.WorkflowEngineVersions.Set(v)
}

func (s *ServiceInfo) SetDefaultWorkflowEngineParameters(v []*DefaultWorkflowEngineParameter) {
	s.DefaultWorkflowEngineParameters.Set(v)
}

func (s *ServiceInfo) SetSystemStateCounts(v *sequencedmap.Map[string, int64]) {
	s.SystemStateCounts.Set(v)
}

func (s *ServiceInfo) SetAuthInstructionsURL(v string) {
	s.AuthInstructionsURL.Set(v)
}

func (s *ServiceInfo) SetContactInfoURL(v string) {
	s.ContactInfoURL.Set(v)
}

func (s *ServiceInfo) SetTags(v *sequencedmap.Map[string, string]) {
	s.Tags.Set(v)
}

// SupportsWESVersion reports whether the service implements an API version
// compatible with requested: the same major version at or above the
// requested one. Unparseable advertised versions are skipped.
func (s *ServiceInfo) SupportsWESVersion(requested string) (bool, error) {
	want, err := version.Parse(requested)
	if err != nil {
		return false, err
	}

	return slices.ContainsFunc(s.GetSupportedWESVersions(), func(supported string) bool {
		have, err := version.Parse(supported)
		if err != nil {
			return false
		}
		return have.Satisfies(*want)
	}), nil
}

// WorkflowTypes returns the workflow languages the service can run, in the order advertised.
func (s *ServiceInfo) WorkflowTypes() []string {
	versions := s.GetWorkflowTypeVersions()
	if versions == nil {
		return nil
	}
	types := make([]string, 0, versions.Len())
	for typ := range versions.Keys() {
		types = append(types, typ)
	}
	return types
}
