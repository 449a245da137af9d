package models

// Key prefixes group records of one collection in the key-value store.
const (
	BookingPrefix = "booking:"
	ProductPrefix = "product:"
	ServicePrefix = "service:"
	ImagePrefix   = "image:"
	StylePrefix   = "style:"
	ReviewPrefix  = "review:"
	AdminPrefix   = "admin:"
	AuditPrefix   = "audit:"

	// ActiveStyleKey holds the pointer record naming the one active style.
	ActiveStyleKey = "active-style"
)

func BookingKey(id string) string { return BookingPrefix + id }
func ProductKey(id string) string { return ProductPrefix + id }
func ServiceKey(id string) string { return ServicePrefix + id }
func ImageKey(id string) string   { return ImagePrefix + id }
func StyleKey(id string) string   { return StylePrefix + id }
func AdminKey(email string) string { return AdminPrefix + email }
func AuditKey(id string) string   { return AuditPrefix + id }
