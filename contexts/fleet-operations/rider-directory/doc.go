// Package riderdirectory manages rider applications and their onboarding
// status. Dispatch and matching are out of scope.
package riderdirectory
