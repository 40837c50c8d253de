// Package jtd implements a validator for JSON Type Definition (JTD, RFC
// 8927) schemas: building a Schema from a decoded JSON value, verifying it
// against the RFC's form rules, and validating JSON instances against a
// verified schema.
//
// Credit to https://github.com/jsontypedef/json-typedef-go for the
// reference recursive-validation algorithm this package's walker follows.
package jtd
