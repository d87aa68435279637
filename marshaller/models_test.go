package marshaller_test

import (
	"github.com/speakeasy-api/wes/marshaller"
	"github.com/speakeasy-api/wes/sequencedmap"
	"github.com/speakeasy-api/wes/values"
)

type testParam struct {
	Name         marshaller.Field[string]
	Type         marshaller.Field[string]
	DefaultValue marshaller.Field[string]
}

var testParamSchema = marshaller.NewSchema[testParam]("TestParam",
	marshaller.Prop("name", marshaller.String(), func(m *testParam) *marshaller.Field[string] { return &m.Name }),
	marshaller.Prop("type", marshaller.String(), func(m *testParam) *marshaller.Field[string] { return &m.Type }),
	marshaller.Prop("default_value", marshaller.String(), func(m *testParam) *marshaller.Field[string] { return &m.DefaultValue }, marshaller.WithKey("defaultValue")),
)

func (*testParam) Schema() *marshaller.Schema { return testParamSchema }

type testPipeline struct {
	ID       marshaller.Field[string]
	Retries  marshaller.Field[int32]
	Ratio    marshaller.Field[float64]
	Enabled  marshaller.Field[bool]
	Phase    marshaller.Field[string]
	Params   marshaller.Field[[]*testParam]
	Defaults marshaller.Field[*sequencedmap.Map[string, *testParam]]
	Tags     marshaller.Field[*sequencedmap.Map[string, string]]
	Primary  marshaller.Field[*testParam]
	Extra    marshaller.Field[*values.Value]
	Matrix   marshaller.Field[[][]uint8]
}

var testPipelineSchema = marshaller.NewSchema[testPipeline]("TestPipeline",
	marshaller.Prop("id", marshaller.String(), func(m *testPipeline) *marshaller.Field[string] { return &m.ID }, marshaller.WithRequired()),
	marshaller.Prop("retries", marshaller.Integer(), func(m *testPipeline) *marshaller.Field[int32] { return &m.Retries }),
	marshaller.Prop("ratio", marshaller.Number(), func(m *testPipeline) *marshaller.Field[float64] { return &m.Ratio }),
	marshaller.Prop("enabled", marshaller.Boolean(), func(m *testPipeline) *marshaller.Field[bool] { return &m.Enabled }),
	marshaller.Prop("phase", marshaller.Enum("PLAN", "APPLY"), func(m *testPipeline) *marshaller.Field[string] { return &m.Phase }),
	marshaller.Prop("params", marshaller.ListOf(marshaller.Ref("TestParam")), func(m *testPipeline) *marshaller.Field[[]*testParam] { return &m.Params }),
	marshaller.Prop("defaults", marshaller.MapOf(marshaller.Ref("TestParam")), func(m *testPipeline) *marshaller.Field[*sequencedmap.Map[string, *testParam]] {
		return &m.Defaults
	}),
	marshaller.Prop("tags", marshaller.MapOf(marshaller.String()), func(m *testPipeline) *marshaller.Field[*sequencedmap.Map[string, string]] { return &m.Tags }),
	marshaller.Prop("primary", marshaller.Ref("TestParam"), func(m *testPipeline) *marshaller.Field[*testParam] { return &m.Primary }),
	marshaller.Prop("extra", marshaller.Any(), func(m *testPipeline) *marshaller.Field[*values.Value] { return &m.Extra }),
	marshaller.Prop("matrix", marshaller.ListOf(marshaller.ListOf(marshaller.Integer())), func(m *testPipeline) *marshaller.Field[[][]uint8] { return &m.Matrix }),
)

func (*testPipeline) Schema() *marshaller.Schema { return testPipelineSchema }

// testTree nests itself through a list, which is allowed.
type testTree struct {
	Label    marshaller.Field[string]
	Children marshaller.Field[[]*testTree]
}

var testTreeSchema = marshaller.NewSchema[testTree]("TestTree",
	marshaller.Prop("label", marshaller.String(), func(m *testTree) *marshaller.Field[string] { return &m.Label }),
	marshaller.Prop("children", marshaller.ListOf(marshaller.Ref("TestTree")), func(m *testTree) *marshaller.Field[[]*testTree] { return &m.Children }),
)

func (*testTree) Schema() *marshaller.Schema { return testTreeSchema }

// testOrphan references a model that is never registered and is itself left
// out of the registry.
type testOrphan struct {
	Name  marshaller.Field[string]
	Child marshaller.Field[*testParam]
}

var testOrphanSchema = marshaller.NewSchema[testOrphan]("TestOrphan",
	marshaller.Prop("name", marshaller.String(), func(m *testOrphan) *marshaller.Field[string] { return &m.Name }),
	marshaller.Prop("child", marshaller.Ref("Missing"), func(m *testOrphan) *marshaller.Field[*testParam] { return &m.Child }),
)

func (*testOrphan) Schema() *marshaller.Schema { return testOrphanSchema }

func init() {
	marshaller.Register(testParamSchema)
	marshaller.Register(testPipelineSchema)
	marshaller.Register(testTreeSchema)
}
