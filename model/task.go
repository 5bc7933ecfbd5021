package model

import (
	"time"

	"github.com/kbukum/vcd/schema"
)

// Task is the handle of an asynchronous server operation. The server
// surfaces tasks as response bodies, inside an entity's task list, or
// behind a Location header; task.Monitor polls them to completion.
//
// Status is a free string on the wire; the task package defines the known
// values.
type Task struct {
	Entity
	Status           *string
	Operation        *string
	OperationName    *string
	ServiceNamespace *string
	StartTime        *time.Time
	EndTime          *time.Time
	ExpiryTime       *time.Time
	CancelRequested  *bool
	Progress         *int
	Details          *string
	Owner            *Reference
	User             *Reference
	Organization     *Reference
	Error            *APIError
}

func (t *Task) TypeName() string { return TypeTask }

func taskDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name: TypeTask,
		Base: TypeEntity,
		New:  func() schema.Object { return &Task{} },
		Fields: []schema.Field{
			schema.StringField[*Task]("Status", "status", func(o *Task) **string { return &o.Status }),
			schema.StringField[*Task]("Operation", "operation", func(o *Task) **string { return &o.Operation }),
			schema.StringField[*Task]("OperationName", "operationName", func(o *Task) **string { return &o.OperationName }),
			schema.StringField[*Task]("ServiceNamespace", "serviceNamespace", func(o *Task) **string { return &o.ServiceNamespace }),
			schema.TimeField[*Task]("StartTime", "startTime", func(o *Task) **time.Time { return &o.StartTime }),
			schema.TimeField[*Task]("EndTime", "endTime", func(o *Task) **time.Time { return &o.EndTime }),
			schema.TimeField[*Task]("ExpiryTime", "expiryTime", func(o *Task) **time.Time { return &o.ExpiryTime }),
			schema.BoolField[*Task]("CancelRequested", "cancelRequested", func(o *Task) **bool { return &o.CancelRequested }),
			schema.IntField[*Task]("Progress", "progress", func(o *Task) **int { return &o.Progress }),
			schema.StringField[*Task]("Details", "details", func(o *Task) **string { return &o.Details }),
			schema.ObjectField[*Task, Reference]("Owner", "owner", TypeReference, func(o *Task) **Reference { return &o.Owner }),
			schema.ObjectField[*Task, Reference]("User", "user", TypeReference, func(o *Task) **Reference { return &o.User }),
			schema.ObjectField[*Task, Reference]("Organization", "organization", TypeReference, func(o *Task) **Reference { return &o.Organization }),
			schema.ObjectField[*Task, APIError]("Error", "error", TypeAPIError, func(o *Task) **APIError { return &o.Error }),
		},
	}
}

// APIError is the structured error body the server attaches to failed
// calls and failed tasks.
type APIError struct {
	MajorErrorCode          *int
	MinorErrorCode          *string
	Message                 *string
	VendorSpecificErrorCode *string
	StackTrace              *string
}

func (e *APIError) TypeName() string { return TypeAPIError }

func apiErrorDescriptor() *schema.Descriptor {
	return &schema.Descriptor{
		Name: TypeAPIError,
		New:  func() schema.Object { return &APIError{} },
		Fields: []schema.Field{
			schema.IntField[*APIError]("MajorErrorCode", "majorErrorCode", func(o *APIError) **int { return &o.MajorErrorCode }),
			schema.StringField[*APIError]("MinorErrorCode", "minorErrorCode", func(o *APIError) **string { return &o.MinorErrorCode }),
			schema.StringField[*APIError]("Message", "message", func(o *APIError) **string { return &o.Message }),
			schema.StringField[*APIError]("VendorSpecificErrorCode", "vendorSpecificErrorCode", func(o *APIError) **string { return &o.VendorSpecificErrorCode }),
			schema.StringField[*APIError]("StackTrace", "stackTrace", func(o *APIError) **string { return &o.StackTrace }),
		},
	}
}
