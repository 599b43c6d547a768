package observability

const (
	MUsecaseRequests   MetricKey = "usecase_requests_total"
	MUsecaseDuration   MetricKey = "usecase_duration_seconds"
	MMenuSelections    MetricKey = "menu_selections_total"
	MPaymentsProcessed MetricKey = "payments_processed_total"
	MPaymentAmount     MetricKey = "payment_amount_total"
	MBeveragesServed   MetricKey = "beverages_served_total"
)
