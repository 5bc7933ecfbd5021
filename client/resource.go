package client

import (
	"context"
	"net/http"

	"github.com/kbukum/vcd/model"
	"github.com/kbukum/vcd/schema"
)

// GetResource fetches href and decodes the body as typ.
func (c *Client) GetResource(ctx context.Context, href string, typ schema.TypeRef) (any, error) {
	result, err := c.Execute(ctx, Request{
		Method:       http.MethodGet,
		URL:          href,
		ResponseType: typ,
	})
	if err != nil {
		return nil, err
	}
	return result.Decoded, nil
}

// PostResource sends body to href with the given content type and decodes
// the response as typ. A zero typ keeps the response raw; inspect it
// through LastResult.
func (c *Client) PostResource(ctx context.Context, href, contentType string, body any, typ schema.TypeRef) (any, error) {
	result, err := c.Execute(ctx, Request{
		Method:       http.MethodPost,
		URL:          href,
		Body:         body,
		ContentType:  contentType,
		ResponseType: typ,
	})
	if err != nil {
		return nil, err
	}
	return result.Decoded, nil
}

// PutResource replaces the resource at href with body and decodes the
// response as typ.
func (c *Client) PutResource(ctx context.Context, href, contentType string, body any, typ schema.TypeRef) (any, error) {
	result, err := c.Execute(ctx, Request{
		Method:       http.MethodPut,
		URL:          href,
		Body:         body,
		ContentType:  contentType,
		ResponseType: typ,
	})
	if err != nil {
		return nil, err
	}
	return result.Decoded, nil
}

// DeleteResource deletes the resource at href. Asynchronous deletions
// return the tracking task.
func (c *Client) DeleteResource(ctx context.Context, href string) (*model.Task, error) {
	result, err := c.Execute(ctx, Request{
		Method: http.MethodDelete,
		URL:    href,
	})
	if err != nil {
		return nil, err
	}
	return result.Task, nil
}

// GetTask fetches the current state of a task by href. Satisfies the task
// monitor's getter.
func (c *Client) GetTask(ctx context.Context, href string) (*model.Task, error) {
	result, err := c.Execute(ctx, Request{
		Method:       http.MethodGet,
		URL:          href,
		ResponseType: schema.Named(model.TypeTask),
	})
	if err != nil {
		return nil, err
	}
	task, _ := result.Decoded.(*model.Task)
	return task, nil
}
