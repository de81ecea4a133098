package booking_wizard

// OpenWizardRequest HTTP request model
type OpenWizardRequest struct {
	ProviderID string `json:"providerId"`
}
