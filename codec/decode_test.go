package codec

import (
	"errors"
	"testing"
	"time"

	"github.com/kbukum/vcd/schema"
	"github.com/kbukum/vcd/util"
)

func TestDeserializeNil(t *testing.T) {
	c := newTestCodec()
	v, err := c.Deserialize(nil, schema.Named("TestVmType"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Errorf("expected nil, got %v", v)
	}
}

func TestDecodeBytesEmpty(t *testing.T) {
	c := newTestCodec()
	for _, data := range [][]byte{nil, []byte(""), []byte("  \n")} {
		v, err := c.DecodeBytes(data, schema.Named("TestVmType"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != nil {
			t.Errorf("expected nil for %q, got %v", data, v)
		}
	}
}

func TestDecodeBytesInvalidJSON(t *testing.T) {
	c := newTestCodec()
	_, err := c.DecodeBytes([]byte("{nope"), schema.Named("TestVmType"))
	var derr *DeserializationError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DeserializationError, got %v", err)
	}
}

func TestDecodeObject(t *testing.T) {
	c := newTestCodec()
	payload := []byte(`{
		"href": "https://vcd.example.com/api/vm/1",
		"name": "web-01",
		"cpuCount": 4,
		"memoryMB": 4096,
		"enabled": true,
		"state": "POWERED_ON",
		"deployedAt": "2026-03-01T10:00:00Z",
		"expiryDate": "2026-11-30",
		"nics": ["eth0", "eth1"],
		"children": [{"name": "child"}],
		"metadata": {"owner": "ops"}
	}`)

	v, err := c.DecodeBytes(payload, schema.Named("TestVmType"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vm, ok := v.(*testVM)
	if !ok {
		t.Fatalf("expected *testVM, got %T", v)
	}
	if util.Deref(vm.Href) != "https://vcd.example.com/api/vm/1" {
		t.Errorf("unexpected href: %v", vm.Href)
	}
	if util.Deref(vm.Name) != "web-01" {
		t.Errorf("unexpected name: %v", vm.Name)
	}
	if util.Deref(vm.CPUCount) != 4 {
		t.Errorf("unexpected cpuCount: %v", vm.CPUCount)
	}
	if util.Deref(vm.MemoryMB) != 4096.0 {
		t.Errorf("unexpected memoryMB: %v", vm.MemoryMB)
	}
	if !util.Deref(vm.Enabled) {
		t.Errorf("unexpected enabled: %v", vm.Enabled)
	}
	if util.Deref(vm.State) != powerOn {
		t.Errorf("unexpected state: %v", vm.State)
	}
	want := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	if vm.Deployed == nil || !vm.Deployed.Equal(want) {
		t.Errorf("unexpected deployedAt: %v", vm.Deployed)
	}
	if util.Deref(vm.Expires) != schema.NewDate(2026, time.November, 30) {
		t.Errorf("unexpected expiryDate: %v", vm.Expires)
	}
	if len(vm.Nics) != 2 || vm.Nics[0] != "eth0" || vm.Nics[1] != "eth1" {
		t.Errorf("unexpected nics: %v", vm.Nics)
	}
	if len(vm.Children) != 1 || util.Deref(vm.Children[0].Name) != "child" {
		t.Errorf("unexpected children: %v", vm.Children)
	}
	if vm.Metadata["owner"] != "ops" {
		t.Errorf("unexpected metadata: %v", vm.Metadata)
	}
}

func TestDecodeAbsentAndNullFieldsStayUnset(t *testing.T) {
	c := newTestCodec()
	v, err := c.DecodeBytes([]byte(`{"name": "bare", "cpuCount": null}`), schema.Named("TestVmType"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vm := v.(*testVM)
	if util.Deref(vm.Name) != "bare" {
		t.Errorf("unexpected name: %v", vm.Name)
	}
	if vm.Href != nil || vm.CPUCount != nil || vm.State != nil || vm.Nics != nil {
		t.Errorf("expected unset fields, got %+v", vm)
	}
}

func TestRoundTrip(t *testing.T) {
	c := newTestCodec()
	deployed := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	vm := &testVM{
		CPUCount: util.Ptr(4),
		State:    util.Ptr(powerOff),
		Deployed: &deployed,
		Expires:  util.Ptr(schema.NewDate(2026, time.November, 30)),
		Nics:     []string{"eth0"},
		Children: []*testVM{{testEntity: testEntity{Name: util.Ptr("child")}}},
	}
	vm.Name = util.Ptr("rt")

	data, err := c.EncodeBytes(vm)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	v, err := c.DecodeBytes(data, schema.Named("TestVmType"))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	got := v.(*testVM)
	if util.Deref(got.Name) != "rt" || util.Deref(got.CPUCount) != 4 || util.Deref(got.State) != powerOff {
		t.Errorf("round trip lost scalar fields: %+v", got)
	}
	if got.Deployed == nil || !got.Deployed.Equal(deployed) {
		t.Errorf("round trip lost timestamp: %v", got.Deployed)
	}
	if util.Deref(got.Expires) != schema.NewDate(2026, time.November, 30) {
		t.Errorf("round trip lost date: %v", got.Expires)
	}
	if len(got.Children) != 1 || util.Deref(got.Children[0].Name) != "child" {
		t.Errorf("round trip lost children: %v", got.Children)
	}
	if got.Href != nil || got.Enabled != nil {
		t.Errorf("round trip invented fields: %+v", got)
	}
}

func TestDecodePolymorphicDispatch(t *testing.T) {
	c := newTestCodec()
	payload := []byte(`{"_type": "TestOrgRecord", "href": "urn:a", "displayName": "Acme"}`)
	v, err := c.DecodeBytes(payload, schema.Named("TestRecordType"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, ok := v.(*testOrgRecord)
	if !ok {
		t.Fatalf("expected *testOrgRecord, got %T", v)
	}
	if util.Deref(rec.Href) != "urn:a" {
		t.Errorf("unexpected href: %v", rec.Href)
	}
	if util.Deref(rec.DisplayName) != "Acme" {
		t.Errorf("unexpected displayName: %v", rec.DisplayName)
	}
}

func TestDecodeMissingDiscriminator(t *testing.T) {
	c := newTestCodec()
	_, err := c.DecodeBytes([]byte(`{"href": "urn:a"}`), schema.Named("TestRecordType"))
	var derr *DeserializationError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DeserializationError, got %v", err)
	}
}

func TestDecodeUnknownDiscriminator(t *testing.T) {
	c := newTestCodec()
	_, err := c.DecodeBytes([]byte(`{"_type": "NopeRecord"}`), schema.Named("TestRecordType"))
	var uerr *schema.UnknownTypeError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
	if uerr.Name != "NopeRecord" {
		t.Errorf("unexpected type name: %q", uerr.Name)
	}
}

func TestDecodeUnknownTargetType(t *testing.T) {
	c := newTestCodec()
	_, err := c.Deserialize(map[string]any{}, schema.Named("NopeType"))
	var uerr *schema.UnknownTypeError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
}

func TestDecodeEnum(t *testing.T) {
	c := newTestCodec()
	v, err := c.Deserialize("POWERED_OFF", schema.Named("PowerState"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != powerOff {
		t.Errorf("expected %v, got %v (%T)", powerOff, v, v)
	}

	_, err = c.Deserialize("MELTED", schema.Named("PowerState"))
	var derr *DeserializationError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DeserializationError, got %v", err)
	}
}

func TestDecodeEnumFieldMismatch(t *testing.T) {
	c := newTestCodec()
	_, err := c.DecodeBytes([]byte(`{"state": "MELTED"}`), schema.Named("TestVmType"))
	var derr *DeserializationError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DeserializationError, got %v", err)
	}
}

func TestDecodeBadTimestamp(t *testing.T) {
	c := newTestCodec()
	for _, payload := range []string{
		`{"deployedAt": "not-a-time"}`,
		`{"expiryDate": "2026-13-45"}`,
		`{"deployedAt": 12345}`,
	} {
		_, err := c.DecodeBytes([]byte(payload), schema.Named("TestVmType"))
		var derr *DeserializationError
		if !errors.As(err, &derr) {
			t.Fatalf("expected DeserializationError for %s, got %v", payload, err)
		}
	}
}

func TestDecodeLenientPrimitives(t *testing.T) {
	c := newTestCodec()
	raw := map[string]any{"nested": true}
	tests := []struct {
		name   string
		in     any
		target schema.TypeRef
		want   any
	}{
		{"string passthrough", "ok", schema.String(), "ok"},
		{"bool to string", true, schema.String(), "true"},
		{"number to string", 12.0, schema.String(), "12"},
		{"numeric string to int", "5", schema.Int(), 5},
		{"integral float to int", 5.0, schema.Int(), 5},
		{"fractional float stays raw", 2.5, schema.Int(), 2.5},
		{"int to float", 3, schema.Float(), 3.0},
		{"numeric string to float", "2.5", schema.Float(), 2.5},
		{"string to bool", "true", schema.Bool(), true},
		{"junk string stays raw", "maybe", schema.Bool(), "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Deserialize(tt.in, tt.target)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v (%T), got %v (%T)", tt.want, tt.want, got, got)
			}
		})
	}

	// A structured payload aimed at a primitive slot comes back unchanged.
	got, err := c.Deserialize(raw, schema.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m, ok := got.(map[string]any); !ok || m["nested"] != true {
		t.Errorf("expected raw payload back, got %v", got)
	}
}

func TestDecodeLenientFieldLeftUnset(t *testing.T) {
	c := newTestCodec()
	v, err := c.DecodeBytes([]byte(`{"name": "x", "cpuCount": {"odd": "shape"}}`), schema.Named("TestVmType"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vm := v.(*testVM)
	if vm.CPUCount != nil {
		t.Errorf("expected cpuCount unset, got %v", *vm.CPUCount)
	}
	if util.Deref(vm.Name) != "x" {
		t.Errorf("unexpected name: %v", vm.Name)
	}
}

func TestDecodeOpaqueType(t *testing.T) {
	c := newTestCodec()
	v, err := c.DecodeBytes([]byte(`{"anything": [1, 2], "goes": true}`), schema.Named("TestOpaqueType"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok || m["goes"] != true {
		t.Errorf("expected raw payload, got %v", v)
	}
	xs, ok := m["anything"].([]any)
	if !ok || len(xs) != 2 {
		t.Errorf("expected raw list, got %v", m["anything"])
	}
}

func TestDecodeCollections(t *testing.T) {
	c := newTestCodec()
	v, err := c.DecodeBytes([]byte(`[{"name": "a"}, {"name": "b"}]`), schema.ListOf(schema.Named("TestVmType")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	xs, ok := v.([]any)
	if !ok || len(xs) != 2 {
		t.Fatalf("expected 2 elements, got %v", v)
	}
	first, ok := xs[0].(*testVM)
	if !ok || util.Deref(first.Name) != "a" {
		t.Errorf("unexpected first element: %v", xs[0])
	}

	v, err = c.DecodeBytes([]byte(`{"a": 1, "b": 2}`), schema.MapOf(schema.Int()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok || m["a"] != 1 || m["b"] != 2 {
		t.Errorf("unexpected map: %v", v)
	}

	_, err = c.Deserialize("not-a-list", schema.ListOf(schema.String()))
	var derr *DeserializationError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DeserializationError, got %v", err)
	}
}

func TestDecodeAnyPassthrough(t *testing.T) {
	c := newTestCodec()
	v, err := c.Deserialize(map[string]any{"free": "form"}, schema.Any())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok || m["free"] != "form" {
		t.Errorf("expected passthrough, got %v", v)
	}
}

func TestParseDateTimeFallbacks(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-01T10:00:00Z", time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)},
		{"2026-03-01T10:00:00.500Z", time.Date(2026, time.March, 1, 10, 0, 0, 500000000, time.UTC)},
		{"2026-03-01T10:00:00+01:00", time.Date(2026, time.March, 1, 10, 0, 0, 0, time.FixedZone("", 3600))},
		{"2026-03-01T10:00:00", time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseDateTime(tt.in)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
	if _, err := ParseDateTime("yesterday"); err == nil {
		t.Fatal("expected error for unparseable timestamp")
	}
}
