package model

import "github.com/kbukum/vcd/schema"

// AdminOrgMediaType is the Content-Type for admin organization payloads on
// the legacy /api surface.
const AdminOrgMediaType = "application/vnd.vmware.admin.organization+json"

// AdminOrg is the administrative view of an organization.
type AdminOrg struct {
	Entity
	FullName  *string
	IsEnabled *bool
	Settings  map[string]any
}

func (o *AdminOrg) TypeName() string { return TypeAdminOrg }

func adminOrgDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name: TypeAdminOrg,
		Base: TypeEntity,
		New:  func() schema.Object { return &AdminOrg{} },
		Fields: []schema.Field{
			schema.StringField[*AdminOrg]("FullName", "fullName", func(o *AdminOrg) **string { return &o.FullName }),
			schema.BoolField[*AdminOrg]("IsEnabled", "isEnabled", func(o *AdminOrg) **bool { return &o.IsEnabled }),
			schema.MapField[*AdminOrg]("Settings", "settings", schema.Any(), func(o *AdminOrg) *map[string]any { return &o.Settings }),
		},
	}
}
