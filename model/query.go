package model

import "github.com/kbukum/vcd/schema"

// QueryFormat selects the shape of /api/query results.
type QueryFormat string

func (f QueryFormat) EnumValue() any { return string(f) }

const (
	FormatRecords    QueryFormat = "records"
	FormatReferences QueryFormat = "references"
	FormatIDRecords  QueryFormat = "idrecords"
)

// QueryResultRecords is a page of typed query results. Each record in the
// page carries a "_type" discriminator naming its concrete record type.
type QueryResultRecords struct {
	Resource
	Name     *string
	Page     *int
	PageSize *int
	Total    *int
	Record   []Record
}

func (q *QueryResultRecords) TypeName() string { return TypeQueryResultRecords }

func queryResultRecordsDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name: TypeQueryResultRecords,
		Base: TypeResource,
		New:  func() schema.Object { return &QueryResultRecords{} },
		Fields: []schema.Field{
			schema.StringField[*QueryResultRecords]("Name", "name", func(o *QueryResultRecords) **string { return &o.Name }),
			schema.IntField[*QueryResultRecords]("Page", "page", func(o *QueryResultRecords) **int { return &o.Page }),
			schema.IntField[*QueryResultRecords]("PageSize", "pageSize", func(o *QueryResultRecords) **int { return &o.PageSize }),
			schema.IntField[*QueryResultRecords]("Total", "total", func(o *QueryResultRecords) **int { return &o.Total }),
			schema.VariantListField[*QueryResultRecords, Record]("Record", "record", TypeQueryRecord, func(o *QueryResultRecords) *[]Record { return &o.Record }),
		},
	}
}

// Record is implemented by every query record variant. Embedding
// QueryRecord satisfies it, so caller-defined record types can join the
// family.
type Record interface {
	schema.Object
	record() *QueryRecord
}

// QueryRecord is the base of the polymorphic record family: the common
// attributes every query record shares, dispatched on "_type".
type QueryRecord struct {
	Href *string
	Id   *string
	Type *string
}

func (r *QueryRecord) TypeName() string { return TypeQueryRecord }

func (r *QueryRecord) record() *QueryRecord { return r }

func queryRecordDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name:          TypeQueryRecord,
		Discriminator: "_type",
		New:           func() schema.Object { return &QueryRecord{} },
		Fields: []schema.Field{
			schema.StringField[Record]("Href", "href", func(o Record) **string { return &o.record().Href }),
			schema.StringField[Record]("Id", "id", func(o Record) **string { return &o.record().Id }),
			schema.StringField[Record]("Type", "type", func(o Record) **string { return &o.record().Type }),
		},
	}
}

// OrgRecord is the query record for organizations.
type OrgRecord struct {
	QueryRecord
	Name             *string
	DisplayName      *string
	IsEnabled        *bool
	NumberOfVdcs     *int
	NumberOfVapps    *int
	NumberOfCatalogs *int
}

func (r *OrgRecord) TypeName() string { return TypeOrgRecord }

func orgRecordDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name: TypeOrgRecord,
		Base: TypeQueryRecord,
		New:  func() schema.Object { return &OrgRecord{} },
		Fields: []schema.Field{
			schema.StringField[*OrgRecord]("Name", "name", func(o *OrgRecord) **string { return &o.Name }),
			schema.StringField[*OrgRecord]("DisplayName", "displayName", func(o *OrgRecord) **string { return &o.DisplayName }),
			schema.BoolField[*OrgRecord]("IsEnabled", "isEnabled", func(o *OrgRecord) **bool { return &o.IsEnabled }),
			schema.IntField[*OrgRecord]("NumberOfVdcs", "numberOfVdcs", func(o *OrgRecord) **int { return &o.NumberOfVdcs }),
			schema.IntField[*OrgRecord]("NumberOfVapps", "numberOfVapps", func(o *OrgRecord) **int { return &o.NumberOfVapps }),
			schema.IntField[*OrgRecord]("NumberOfCatalogs", "numberOfCatalogs", func(o *OrgRecord) **int { return &o.NumberOfCatalogs }),
		},
	}
}

// RoleRecord is the query record for roles.
type RoleRecord struct {
	QueryRecord
	Name        *string
	Description *string
	IsReadOnly  *bool
}

func (r *RoleRecord) TypeName() string { return TypeRoleRecord }

func roleRecordDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name: TypeRoleRecord,
		Base: TypeQueryRecord,
		New:  func() schema.Object { return &RoleRecord{} },
		Fields: []schema.Field{
			schema.StringField[*RoleRecord]("Name", "name", func(o *RoleRecord) **string { return &o.Name }),
			schema.StringField[*RoleRecord]("Description", "description", func(o *RoleRecord) **string { return &o.Description }),
			schema.BoolField[*RoleRecord]("IsReadOnly", "isReadOnly", func(o *RoleRecord) **bool { return &o.IsReadOnly }),
		},
	}
}
