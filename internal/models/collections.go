package models

const (
	CollectionBarber      = "barber"
	CollectionService     = "service"
	CollectionAppointment = "appointment"
	CollectionTestimonial = "testimonial"
	CollectionShopInfo    = "shopinfo"
	CollectionAuditLog    = "auditlog"
)

// Collections lists the public collections, in the order the schema
// endpoint reports them.
var Collections = []string{
	CollectionBarber,
	CollectionService,
	CollectionAppointment,
	CollectionTestimonial,
	CollectionShopInfo,
}
