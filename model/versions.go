package model

import "github.com/kbukum/vcd/schema"

// SupportedVersions is the /api/versions discovery document.
type SupportedVersions struct {
	VersionInfo []*VersionInfo
}

func (v *SupportedVersions) TypeName() string { return TypeSupportedVersions }

func supportedVersionsDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name: TypeSupportedVersions,
		New:  func() schema.Object { return &SupportedVersions{} },
		Fields: []schema.Field{
			schema.ObjectListField[*SupportedVersions, VersionInfo]("VersionInfo", "versionInfo", TypeVersionInfo, func(o *SupportedVersions) *[]*VersionInfo { return &o.VersionInfo }),
		},
	}
}

// VersionInfo describes one API version the server offers.
type VersionInfo struct {
	Version    *string
	Deprecated *bool
}

func (v *VersionInfo) TypeName() string { return TypeVersionInfo }

func versionInfoDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name: TypeVersionInfo,
		New:  func() schema.Object { return &VersionInfo{} },
		Fields: []schema.Field{
			schema.StringField[*VersionInfo]("Version", "version", func(o *VersionInfo) **string { return &o.Version }),
			schema.BoolField[*VersionInfo]("Deprecated", "deprecated", func(o *VersionInfo) **bool { return &o.Deprecated }),
		},
	}
}
