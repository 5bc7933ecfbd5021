package codec

import (
	"time"

	"github.com/kbukum/vcd/schema"
)

// Test catalog: a small entity hierarchy exercising every field shape, a
// polymorphic record family dispatched on "_type", and an opaque type.

type powerState string

func (p powerState) EnumValue() any { return string(p) }

const (
	powerOn  powerState = "POWERED_ON"
	powerOff powerState = "POWERED_OFF"
)

type testEntity struct {
	Href *string
	Name *string
}

func (e *testEntity) TypeName() string { return "TestEntityType" }

func (e *testEntity) entity() *testEntity { return e }

type hasTestEntity interface {
	schema.Object
	entity() *testEntity
}

type testVM struct {
	testEntity
	CPUCount *int
	MemoryMB *float64
	Enabled  *bool
	State    *powerState
	Deployed *time.Time
	Expires  *schema.Date
	Nics     []string
	Children []*testVM
	Metadata map[string]any
}

func (v *testVM) TypeName() string { return "TestVmType" }

type testRecord struct {
	Href *string
}

func (r *testRecord) TypeName() string { return "TestRecordType" }

func (r *testRecord) record() *testRecord { return r }

type hasTestRecord interface {
	schema.Object
	record() *testRecord
}

type testOrgRecord struct {
	testRecord
	DisplayName *string
}

func (r *testOrgRecord) TypeName() string { return "TestOrgRecord" }

func newTestCodec() *Codec {
	registry := schema.MustNewRegistry(
		schema.EnumOf("PowerState", powerOn, powerOff),
		&schema.Descriptor{
			Name: "TestEntityType",
			New:  func() schema.Object { return &testEntity{} },
			Fields: []schema.Field{
				schema.StringField[hasTestEntity]("Href", "href", func(o hasTestEntity) **string { return &o.entity().Href }),
				schema.StringField[hasTestEntity]("Name", "name", func(o hasTestEntity) **string { return &o.entity().Name }),
			},
		},
		&schema.Descriptor{
			Name: "TestVmType",
			Base: "TestEntityType",
			New:  func() schema.Object { return &testVM{} },
			Fields: []schema.Field{
				schema.IntField[*testVM]("CPUCount", "cpuCount", func(o *testVM) **int { return &o.CPUCount }),
				schema.FloatField[*testVM]("MemoryMB", "memoryMB", func(o *testVM) **float64 { return &o.MemoryMB }),
				schema.BoolField[*testVM]("Enabled", "enabled", func(o *testVM) **bool { return &o.Enabled }),
				schema.EnumField[*testVM, powerState]("State", "state", "PowerState", func(o *testVM) **powerState { return &o.State }),
				schema.TimeField[*testVM]("Deployed", "deployedAt", func(o *testVM) **time.Time { return &o.Deployed }),
				schema.DateField[*testVM]("Expires", "expiryDate", func(o *testVM) **schema.Date { return &o.Expires }),
				schema.StringListField[*testVM]("Nics", "nics", func(o *testVM) *[]string { return &o.Nics }),
				schema.ObjectListField[*testVM, testVM]("Children", "children", "TestVmType", func(o *testVM) *[]*testVM { return &o.Children }),
				schema.MapField[*testVM]("Metadata", "metadata", schema.Any(), func(o *testVM) *map[string]any { return &o.Metadata }),
			},
		},
		&schema.Descriptor{
			Name:          "TestRecordType",
			Discriminator: "_type",
			Fields: []schema.Field{
				schema.StringField[hasTestRecord]("Href", "href", func(o hasTestRecord) **string { return &o.record().Href }),
			},
		},
		&schema.Descriptor{
			Name: "TestOrgRecord",
			Base: "TestRecordType",
			New:  func() schema.Object { return &testOrgRecord{} },
			Fields: []schema.Field{
				schema.StringField[*testOrgRecord]("DisplayName", "displayName", func(o *testOrgRecord) **string { return &o.DisplayName }),
			},
		},
		&schema.Descriptor{Name: "TestOpaqueType"},
	)
	return New(registry)
}
