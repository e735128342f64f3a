// Package paymentledger records completed parcel payments as immutable ledger
// entries. Recording a payment first transitions the parcel to paid and only
// then appends the entry, both inside one unit of work.
package paymentledger
