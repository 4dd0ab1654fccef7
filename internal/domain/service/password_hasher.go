// Package service declares the ports the usecases need from infrastructure:
// the push gateway, the delivery queue, event publishing and operator auth.
package service

// PasswordHasher checks the operator password against the configured hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
