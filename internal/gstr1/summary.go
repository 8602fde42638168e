package gstr1

// Reconcile computes the top-of-report totals as straight sums over the
// canonical invoices. No reconciliation against upstream summary blocks
// happens here: the computed figures are authoritative.
func Reconcile(invoices []Invoice) Totals {
	t := Totals{InvoiceCount: len(invoices)}
	for i := range invoices {
		t.TaxableValue += invoices[i].TaxableValue
		t.TaxAmount += invoices[i].TaxAmount()
		t.InvoiceValue += invoices[i].InvoiceValue
	}
	return t
}
