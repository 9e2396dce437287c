package request

// VerifyPaymentRequest is the provider callback body, JSON or form encoded.
type VerifyPaymentRequest struct {
	TxRef string `json:"tx_ref" form:"tx_ref"`
}
