package model

import "github.com/kbukum/vcd/schema"

// Registered type names. Legacy /api types keep their wire schema names;
// /cloudapi models register under their model names, which is what the
// server's discriminators and Link headers use.
const (
	TypeResource           = "ResourceType"
	TypeEntity             = "EntityType"
	TypeReference          = "ReferenceType"
	TypeLink               = "LinkType"
	TypeTask               = "TaskType"
	TypeAPIError           = "ErrorType"
	TypeAdminOrg           = "AdminOrgType"
	TypeSupportedVersions  = "SupportedVersionsType"
	TypeVersionInfo        = "VersionInfoType"
	TypeQueryResultRecords = "QueryResultRecordsType"
	TypeQueryRecord        = "QueryResultRecordType"
	TypeOrgRecord          = "QueryResultOrgRecordType"
	TypeRoleRecord         = "QueryResultRoleRecordType"
	TypeSession            = "Session"
	TypeSessions           = "Sessions"
	TypeRole               = "Role"
	TypeQueryFormat        = "QueryFormat"
)

// Descriptors returns the shipped descriptor set. The slice is freshly
// built on every call, so callers may append to it freely.
func Descriptors() []*schema.Descriptor {
	return []*schema.Descriptor{
		resourceDescriptor(),
		entityDescriptor(),
		referenceDescriptor(),
		linkDescriptor(),
		taskDescriptor(),
		apiErrorDescriptor(),
		adminOrgDescriptor(),
		supportedVersionsDescriptor(),
		versionInfoDescriptor(),
		queryResultRecordsDescriptor(),
		queryRecordDescriptor(),
		orgRecordDescriptor(),
		roleRecordDescriptor(),
		sessionDescriptor(),
		sessionsDescriptor(),
		roleDescriptor(),
		schema.EnumOf(TypeQueryFormat, FormatRecords, FormatReferences, FormatIDRecords),
	}
}

// NewRegistry builds a registry holding the shipped catalog plus any
// caller-defined descriptors.
func NewRegistry(extra ...*schema.Descriptor) (*schema.Registry, error) {
	return schema.NewRegistry(append(Descriptors(), extra...)...)
}
