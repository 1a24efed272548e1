package docstore

// Design document names.
const (
	DesignCustomers      = "customers"
	DesignArchivedOrders = "archived_orders"
	DesignCouriers       = "couriers"
	DesignAddresses      = "addresses"
)

// CustomerViews indexes customers by phone number and by name.
func CustomerViews() map[string]string {
	return map[string]string{
		"by_phone": "function (doc) { if (doc.type === 'customer' && doc.phone) { emit(doc.phone, null); } }",
		"by_name":  "function (doc) { if (doc.type === 'customer' && doc.name) { emit(doc.name, null); } }",
	}
}

// ArchivedOrderViews indexes archived orders by archive date and by table.
func ArchivedOrderViews() map[string]string {
	return map[string]string{
		"by_date":  "function (doc) { if (doc.type === 'archived_order') { emit(doc.archivedAt, null); } }",
		"by_table": "function (doc) { if (doc.type === 'archived_order' && doc.tableId) { emit(doc.tableId, null); } }",
	}
}

// CourierViews indexes couriers by status and by name.
func CourierViews() map[string]string {
	return map[string]string{
		"by_status": "function (doc) { if (doc.type === 'courier') { emit(doc.status, null); } }",
		"by_name":   "function (doc) { if (doc.type === 'courier' && doc.name) { emit(doc.name, null); } }",
	}
}

// AddressViews indexes delivery addresses by street and by composed address.
func AddressViews() map[string]string {
	return map[string]string{
		"by_street":       "function (doc) { if (doc.type === 'address' && doc.street) { emit(doc.street, null); } }",
		"by_full_address": "function (doc) { if (doc.type === 'address' && doc.fullAddress) { emit(doc.fullAddress, null); } }",
	}
}
