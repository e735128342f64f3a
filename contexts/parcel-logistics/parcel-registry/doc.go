// Package parcelregistry owns parcel records: registration, lookup, owner
// listings, deletion and the unpaid to paid transition used by the payment
// ledger.
package parcelregistry
