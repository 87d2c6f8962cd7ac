// Package models holds the portfolio content records and auth records that
// travel over the REST API. Both the admin client and the reference backend
// use these types, so the JSON field names here are the wire contract.
package models
