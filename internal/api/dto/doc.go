// Package dto holds the wire representations of the API resources, the
// explicit mapping functions between them and the domain entities, the
// request validation table and JSON Patch support for books.
//
// JSON field names are Spanish to keep the public contract of the API.
package dto
