package gstr1

// BuildInvoice resolves one raw record into its canonical form.
//
// The monetary figures come from exactly one source: invoice-level fields
// are trusted only when the record carries a non-zero taxable value AND at
// least one non-zero tax head; otherwise all five figures are recomputed
// from the line items. The two sources are never mixed.
func (cfg Config) BuildInvoice(rec Raw) Invoice {
	cfg = cfg.normalized()

	inv := Invoice{
		Category:       cfg.Classify(rec),
		RecipientGSTIN: ResolveText(rec, RecipientGSTINAliases, ""),
		RecipientName:  ResolveText(rec, RecipientNameAliases, ""),
		InvoiceNumber:  ResolveText(rec, InvoiceNumberAliases, ""),
		InvoiceDate:    ResolveText(rec, InvoiceDateAliases, ""),
		InvoiceType:    ResolveText(rec, InvoiceTypeAliases, "Regular"),
		PlaceOfSupply:  ResolveText(rec, PlaceOfSupplyAliases, ""),
		ReverseCharge:  ResolveFlag(rec, ReverseChargeAliases),
		ECommerceGSTIN: ResolveText(rec, ECommerceGSTINAliases, ""),
	}

	raw := RawLineItems(rec)
	inv.LineItems = make([]LineItem, 0, len(raw))
	for _, item := range raw {
		inv.LineItems = append(inv.LineItems, LineItem{
			HSNCode:      ResolveText(item, HSNCodeAliases, ""),
			Description:  ResolveText(item, DescriptionAliases, ""),
			Unit:         ResolveText(item, UnitAliases, ""),
			Quantity:     ResolveAmount(item, QuantityAliases),
			TaxRate:      ResolveAmount(item, TaxRateAliases),
			TaxableValue: ResolveAmount(item, TaxableValueAliases),
			IGST:         ResolveAmount(item, IGSTAliases),
			CGST:         ResolveAmount(item, CGSTAliases),
			SGST:         ResolveAmount(item, SGSTAliases),
			Cess:         ResolveAmount(item, CessAliases),
		})
	}

	taxable := ResolveAmount(rec, TaxableValueAliases)
	igst := ResolveAmount(rec, IGSTAliases)
	cgst := ResolveAmount(rec, CGSTAliases)
	sgst := ResolveAmount(rec, SGSTAliases)
	cess := ResolveAmount(rec, CessAliases)

	if taxable != 0 && (igst != 0 || cgst != 0 || sgst != 0 || cess != 0) {
		inv.TaxableValue = taxable
		inv.IGST, inv.CGST, inv.SGST, inv.Cess = igst, cgst, sgst, cess
	} else {
		for _, li := range inv.LineItems {
			inv.TaxableValue += li.TaxableValue
			inv.IGST += li.IGST
			inv.CGST += li.CGST
			inv.SGST += li.SGST
			inv.Cess += li.Cess
		}
	}

	if computed := inv.TaxableValue + inv.TaxAmount(); computed != 0 {
		inv.InvoiceValue = computed
	} else if supplied := ResolveAmount(rec, InvoiceValueAliases); supplied > 0 {
		inv.InvoiceValue = supplied
	}

	inv.TaxRate = ResolveAmount(rec, TaxRateAliases)
	if inv.TaxRate == 0 {
		for _, li := range inv.LineItems {
			if li.TaxRate != 0 {
				inv.TaxRate = li.TaxRate
				break
			}
		}
	}

	return inv
}
