package dto

// OpenWizardRequest starts a wizard session for one of the three request kinds.
type OpenWizardRequest struct {
	RequestType string `json:"requestType" binding:"required,oneof=resume project ppt"`
}

// SaveFormRequest replaces the wizard session's form state.
type SaveFormRequest struct {
	Form map[string]string `json:"form" binding:"required"`
}

// WizardSessionResponse is the session view returned to the client.
type WizardSessionResponse struct {
	ID          string            `json:"id"`
	RequestType string            `json:"requestType"`
	State       string            `json:"state"`
	Form        map[string]string `json:"form"`
}

// CheckoutResponse carries the payment page redirect URL.
type CheckoutResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// RequestHistoryResponse pairs a student request with its status trail,
// oldest entry first.
type RequestHistoryResponse struct {
	Request interface{} `json:"request"`
	History interface{} `json:"history"`
}

// ConfirmPaymentResponse mirrors the original confirm-payment contract:
// not-paid is an outcome, not an HTTP error.
type ConfirmPaymentResponse struct {
	Success bool   `json:"success"`
	Paid    bool   `json:"paid"`
	Message string `json:"message,omitempty"`
}
