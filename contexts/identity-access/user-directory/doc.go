// Package userdirectory stores user profiles keyed by email along with their
// role and last login time.
package userdirectory
