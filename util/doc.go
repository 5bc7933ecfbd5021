// Package util provides small generic helpers shared across the library.
//
// Model fields in this module are pointer-typed so that "unset" can be told
// apart from a zero value; Ptr and Deref keep call sites readable:
//
//	org := model.NewAdminOrg()
//	org.FullName = util.Ptr("Engineering")
//	name := util.Deref(org.FullName)
package util
