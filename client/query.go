package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kbukum/vcd/model"
	"github.com/kbukum/vcd/schema"
	"github.com/kbukum/vcd/validation"
)

const (
	defaultQueryPage     = 1
	defaultQueryPageSize = 25
	maxQueryPageSize     = 128
)

type queryOptions struct {
	format   model.QueryFormat
	page     int
	pageSize int
	filter   string
	sortAsc  string
}

// QueryOption customizes one typed query.
type QueryOption func(*queryOptions)

// WithFormat selects the result shape; records is the default.
func WithFormat(f model.QueryFormat) QueryOption {
	return func(o *queryOptions) { o.format = f }
}

// WithPage selects the result page, starting at 1.
func WithPage(page int) QueryOption {
	return func(o *queryOptions) { o.page = page }
}

// WithPageSize sets the page size, at most 128.
func WithPageSize(size int) QueryOption {
	return func(o *queryOptions) { o.pageSize = size }
}

// WithFilter applies a server-side filter expression, for example
// "name==dept;isEnabled==true".
func WithFilter(expr string) QueryOption {
	return func(o *queryOptions) { o.filter = expr }
}

// WithSortAsc sorts results ascending by the named record attribute.
func WithSortAsc(field string) QueryOption {
	return func(o *queryOptions) { o.sortAsc = field }
}

// ExecuteQuery runs a typed query against /api/query and returns one page
// of records. typ names the record type, for example "organization" or
// "role".
func (c *Client) ExecuteQuery(ctx context.Context, typ string, opts ...QueryOption) (*model.QueryResultRecords, error) {
	o := queryOptions{
		format:   model.FormatRecords,
		page:     defaultQueryPage,
		pageSize: defaultQueryPageSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validation.New().
		Required("type", typ).
		Min("page", o.page, 1).
		Range("pageSize", o.pageSize, 1, maxQueryPageSize).
		Validate(); err != nil {
		return nil, err
	}

	query := map[string]any{
		"type":     typ,
		"format":   o.format,
		"page":     o.page,
		"pageSize": o.pageSize,
	}
	if o.filter != "" {
		query["filter"] = o.filter
	}
	if o.sortAsc != "" {
		query["sortAsc"] = o.sortAsc
	}

	result, err := c.Execute(ctx, Request{
		Method:       http.MethodGet,
		URL:          c.APIURL("/query"),
		Query:        query,
		ResponseType: schema.Named(model.TypeQueryResultRecords),
	})
	if err != nil {
		return nil, err
	}

	records, _ := result.Decoded.(*model.QueryResultRecords)
	if records == nil {
		return nil, fmt.Errorf("client: query returned no record page")
	}
	return records, nil
}
