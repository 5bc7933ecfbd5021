// Package model ships the typed catalog for the vCloud Director API
// surface the client speaks: legacy /api entities (resources, entities,
// tasks, orgs, query records) and /cloudapi models (sessions, roles).
//
// Every type registers a schema descriptor under its wire name, so the
// codec can resolve "TaskType" or a query record's "_type" discriminator
// to the matching Go struct. Optional fields are pointers; nil means the
// field is unset and stays off the wire.
//
// Descriptors() returns the shipped descriptor set and NewRegistry builds
// a registry from it, optionally extended with caller-defined types:
//
//	registry, err := model.NewRegistry(myDescriptor)
package model
