package pricing

// Package pricing implements the currency display widget: it walks the
// page's priced elements, converts each into the selected display currency
// through the backend, and formats the result. A failed conversion degrades
// to the original amount in its original currency so a price is never shown
// mislabeled. Each update pass carries a generation token; responses landing
// after a newer pass started are discarded.
