package entities

type PaymentIntent struct {
	IntentID     string
	ClientSecret string
	AmountMinor  int64
	Currency     string
}
