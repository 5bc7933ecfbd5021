// Package client executes typed calls against a VMware Cloud Director
// endpoint. It layers authentication, API version negotiation, request and
// response serialization, hypermedia link extraction, asynchronous task
// references, and typed error mapping over a pluggable HTTP transport.
//
// A call flows through Execute: the request body is serialized through the
// codec, the response body is decoded into the type named by the request,
// and links and task references are lifted off the response. Every call
// returns a *Result; the most recent result is additionally retained for
// single-threaded convenience accessors.
//
//	c, err := client.New(client.Config{Host: "https://vcd.example.com"})
//	if err != nil { ... }
//	if _, err := c.NegotiateVersion(ctx); err != nil { ... }
//	err = c.SetCredentials(ctx, client.BasicCredentials{
//	    User: "admin", Org: "system", Password: secret,
//	})
//
//	result, err := c.GetResource(ctx, href, schema.Named(model.TypeAdminOrg))
package client
