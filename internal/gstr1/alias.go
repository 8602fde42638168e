package gstr1

// SchemaVersion identifies the revision of the alias tables below. Bump it
// whenever a table gains, loses or reorders an entry so downstream consumers
// can tell which resolution rules produced a report.
const SchemaVersion = "2025.2"

// Alias tables map one canonical field to the raw payload keys that may carry
// it, in priority order: the first key that is present with a non-empty value
// wins. The tables are plain package data so they can be diffed and tested
// like any other artifact. Resolution never scans a record for "likely"
// keys; a spelling that is not listed here does not exist.
var (
	TaxableValueAliases = []string{"taxable_value", "taxable_amount", "base_amount", "net_amount", "amount", "value"}

	IGSTAliases = []string{"igst", "igst_amount", "integrated_tax"}
	CGSTAliases = []string{"cgst", "cgst_amount", "central_tax"}
	SGSTAliases = []string{"sgst", "sgst_amount", "state_tax", "utgst", "utgst_amount"}
	CessAliases = []string{"cess", "cess_amount"}

	HSNCodeAliases     = []string{"hsn_sac", "hsn", "sac", "hsn_code", "product_code", "commodity_code", "item_code"}
	DescriptionAliases = []string{"description", "item_description", "product_name", "item_name", "goods_description", "name"}
	QuantityAliases    = []string{"quantity", "qty", "units", "no_of_units"}
	UnitAliases        = []string{"unit", "uqc", "uom", "unit_of_measure"}
	TaxRateAliases     = []string{"tax_rate", "rate", "gst_rate"}

	LineItemsAliases = []string{"items", "line_items", "invoice_items", "products", "itms"}

	InvoiceNumberAliases = []string{"invoice_no", "invoice_number", "inv_no", "bill_no", "number"}
	InvoiceDateAliases   = []string{"invoice_date", "inv_date", "bill_date", "date"}
	InvoiceValueAliases  = []string{"invoice_value", "invoice_total", "total_value", "grand_total", "total_amount", "total"}
	InvoiceTypeAliases   = []string{"invoice_type", "document_type"}

	RecipientGSTINAliases = []string{"recipient_gstin", "customer_gstin", "buyer_gstin", "party_gstin", "gstin", "ctin"}
	RecipientNameAliases  = []string{"recipient_name", "customer_name", "buyer_name", "party_name", "legal_name", "trade_name"}
	PlaceOfSupplyAliases  = []string{"place_of_supply", "pos", "supply_state", "state"}
	ReverseChargeAliases  = []string{"reverse_charge", "is_reverse_charge", "rcm"}
	ECommerceGSTINAliases = []string{"ecommerce_gstin", "e_commerce_gstin", "etin"}

	CategoryAliases = []string{"category", "invoice_category", "supply_type", "section"}
)
