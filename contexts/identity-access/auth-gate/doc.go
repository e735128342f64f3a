// Package authgate verifies bearer credentials and binds the verified caller
// identity to the request context. Protected operations compose the Guard in
// front of their handlers; ownership checks are layered on top of it.
package authgate
