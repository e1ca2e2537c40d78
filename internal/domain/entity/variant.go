// Package entity contains the core business objects of the project.
package entity

// Variant identifies which kind of principal an account belongs to.
// Admin and Company principals live in disjoint namespaces.
type Variant string

const (
	// VariantAdmin indicates an administrator principal.
	VariantAdmin Variant = "admin"
	// VariantCompany indicates a company principal.
	VariantCompany Variant = "company"
)

// String returns the string representation of the Variant.
func (v Variant) String() string {
	return string(v)
}

// IsValid checks if the Variant is a known value.
func (v Variant) IsValid() bool {
	switch v {
	case VariantAdmin, VariantCompany:
		return true
	default:
		return false
	}
}

// Variants lists every supported principal kind.
func Variants() []Variant {
	return []Variant{VariantAdmin, VariantCompany}
}
