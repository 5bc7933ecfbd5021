package model

import "github.com/kbukum/vcd/schema"

// Session is the authenticated /cloudapi session: who is logged in, where,
// and with which roles.
type Session struct {
	Id                        *string
	Site                      *Reference
	User                      *Reference
	Org                       *Reference
	Location                  *string
	Roles                     []string
	RoleRefs                  []*Reference
	SessionIdleTimeoutMinutes *int
}

func (s *Session) TypeName() string { return TypeSession }

func sessionDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name: TypeSession,
		New:  func() schema.Object { return &Session{} },
		Fields: []schema.Field{
			schema.StringField[*Session]("Id", "id", func(o *Session) **string { return &o.Id }),
			schema.ObjectField[*Session, Reference]("Site", "site", TypeReference, func(o *Session) **Reference { return &o.Site }),
			schema.ObjectField[*Session, Reference]("User", "user", TypeReference, func(o *Session) **Reference { return &o.User }),
			schema.ObjectField[*Session, Reference]("Org", "org", TypeReference, func(o *Session) **Reference { return &o.Org }),
			schema.StringField[*Session]("Location", "location", func(o *Session) **string { return &o.Location }),
			schema.StringListField[*Session]("Roles", "roles", func(o *Session) *[]string { return &o.Roles }),
			schema.ObjectListField[*Session, Reference]("RoleRefs", "roleRefs", TypeReference, func(o *Session) *[]*Reference { return &o.RoleRefs }),
			schema.IntField[*Session]("SessionIdleTimeoutMinutes", "sessionIdleTimeoutMinutes", func(o *Session) **int { return &o.SessionIdleTimeoutMinutes }),
		},
	}
}

// Sessions is the page of sessions returned when validating a bearer
// token against /cloudapi/1.0.0/sessions.
type Sessions struct {
	ResultTotal *int
	PageCount   *int
	Page        *int
	PageSize    *int
	Values      []*Session
}

func (s *Sessions) TypeName() string { return TypeSessions }

func sessionsDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name: TypeSessions,
		New:  func() schema.Object { return &Sessions{} },
		Fields: []schema.Field{
			schema.IntField[*Sessions]("ResultTotal", "resultTotal", func(o *Sessions) **int { return &o.ResultTotal }),
			schema.IntField[*Sessions]("PageCount", "pageCount", func(o *Sessions) **int { return &o.PageCount }),
			schema.IntField[*Sessions]("Page", "page", func(o *Sessions) **int { return &o.Page }),
			schema.IntField[*Sessions]("PageSize", "pageSize", func(o *Sessions) **int { return &o.PageSize }),
			schema.ObjectListField[*Sessions, Session]("Values", "values", TypeSession, func(o *Sessions) *[]*Session { return &o.Values }),
		},
	}
}

// Role is the /cloudapi role model.
type Role struct {
	Id          *string
	Name        *string
	Description *string
	BundleKey   *string
	ReadOnly    *bool
}

func (r *Role) TypeName() string { return TypeRole }

func roleDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name: TypeRole,
		New:  func() schema.Object { return &Role{} },
		Fields: []schema.Field{
			schema.StringField[*Role]("Id", "id", func(o *Role) **string { return &o.Id }),
			schema.StringField[*Role]("Name", "name", func(o *Role) **string { return &o.Name }),
			schema.StringField[*Role]("Description", "description", func(o *Role) **string { return &o.Description }),
			schema.StringField[*Role]("BundleKey", "bundleKey", func(o *Role) **string { return &o.BundleKey }),
			schema.BoolField[*Role]("ReadOnly", "readOnly", func(o *Role) **bool { return &o.ReadOnly }),
		},
	}
}
