package model

import (
	"strings"

	"github.com/kbukum/vcd/schema"
)

// Resource is the base of every legacy /api entity: an addressable object
// with a href, a media type, and the links the server attached to it.
type Resource struct {
	Href *string
	Type *string
	Link []*Link
}

func (r *Resource) TypeName() string { return TypeResource }

func (r *Resource) resource() *Resource { return r }

// hasResource is satisfied by every type embedding Resource, giving the
// base descriptor one accessor implementation for the whole hierarchy.
type hasResource interface {
	schema.Object
	resource() *Resource
}

func resourceDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name: TypeResource,
		New:  func() schema.Object { return &Resource{} },
		Fields: []schema.Field{
			schema.StringField[hasResource]("Href", "href", func(o hasResource) **string { return &o.resource().Href }),
			schema.StringField[hasResource]("Type", "type", func(o hasResource) **string { return &o.resource().Type }),
			schema.ObjectListField[hasResource, Link]("Link", "link", TypeLink, func(o hasResource) *[]*Link { return &o.resource().Link }),
		},
	}
}

// Entity extends Resource with identity and the in-progress task list the
// server reports on entity bodies.
type Entity struct {
	Resource
	Id          *string
	Name        *string
	Description *string
	Tasks       []*Task
}

func (e *Entity) TypeName() string { return TypeEntity }

func (e *Entity) entity() *Entity { return e }

type hasEntity interface {
	schema.Object
	entity() *Entity
}

func entityDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name: TypeEntity,
		Base: TypeResource,
		New:  func() schema.Object { return &Entity{} },
		Fields: []schema.Field{
			schema.StringField[hasEntity]("Id", "id", func(o hasEntity) **string { return &o.entity().Id }),
			schema.StringField[hasEntity]("Name", "name", func(o hasEntity) **string { return &o.entity().Name }),
			schema.StringField[hasEntity]("Description", "description", func(o hasEntity) **string { return &o.entity().Description }),
			schema.ObjectListField[hasEntity, Task]("Tasks", "tasks", TypeTask, func(o hasEntity) *[]*Task { return &o.entity().Tasks }),
		},
	}
}

// Reference points at another entity by href, id, or name. Legacy bodies
// carry all three; /cloudapi entity references usually carry id and name.
type Reference struct {
	Href *string
	Id   *string
	Name *string
	Type *string
}

func (r *Reference) TypeName() string { return TypeReference }

func referenceDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name: TypeReference,
		New:  func() schema.Object { return &Reference{} },
		Fields: []schema.Field{
			schema.StringField[*Reference]("Href", "href", func(o *Reference) **string { return &o.Href }),
			schema.StringField[*Reference]("Id", "id", func(o *Reference) **string { return &o.Id }),
			schema.StringField[*Reference]("Name", "name", func(o *Reference) **string { return &o.Name }),
			schema.StringField[*Reference]("Type", "type", func(o *Reference) **string { return &o.Type }),
		},
	}
}

// Link is a hypermedia link. Legacy responses embed links in the body's
// "link" array; /cloudapi responses carry them as Link headers, where the
// "model" attribute names the entity model the link targets.
//
// Rel holds a whitespace-separated token set; match it with HasRel rather
// than string equality.
type Link struct {
	Rel   *string
	Href  *string
	Type  *string
	Model *string
	Name  *string
	Id    *string
}

func (l *Link) TypeName() string { return TypeLink }

// HasRel reports whether rel appears in the link's relation token set.
func (l *Link) HasRel(rel string) bool {
	if l.Rel == nil {
		return false
	}
	for _, tok := range strings.Fields(*l.Rel) {
		if tok == rel {
			return true
		}
	}
	return false
}

// Attr returns the named wire attribute of the link (rel, href, type,
// model, name, id). The second return is false for unset or unknown
// attributes.
func (l *Link) Attr(key string) (string, bool) {
	var v *string
	switch key {
	case "rel":
		v = l.Rel
	case "href":
		v = l.Href
	case "type":
		v = l.Type
	case "model":
		v = l.Model
	case "name":
		v = l.Name
	case "id":
		v = l.Id
	}
	if v == nil {
		return "", false
	}
	return *v, true
}

func linkDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name: TypeLink,
		New:  func() schema.Object { return &Link{} },
		Fields: []schema.Field{
			schema.StringField[*Link]("Rel", "rel", func(o *Link) **string { return &o.Rel }),
			schema.StringField[*Link]("Href", "href", func(o *Link) **string { return &o.Href }),
			schema.StringField[*Link]("Type", "type", func(o *Link) **string { return &o.Type }),
			schema.StringField[*Link]("Model", "model", func(o *Link) **string { return &o.Model }),
			schema.StringField[*Link]("Name", "name", func(o *Link) **string { return &o.Name }),
			schema.StringField[*Link]("Id", "id", func(o *Link) **string { return &o.Id }),
		},
	}
}
