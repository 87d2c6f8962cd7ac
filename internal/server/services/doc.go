// Package services implements the backend use cases on top of the
// repositories: accounts and tokens, portfolio content, the contact inbox
// and presigned image uploads.
package services
