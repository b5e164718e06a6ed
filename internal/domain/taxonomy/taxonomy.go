// Package taxonomy holds the fixed industry catalog bots are configured
// against: ~80 industry codes, each with a display name and exactly one
// category. The tables are static and read-only after init.
package taxonomy

import (
	"fmt"
	"strings"

	domainerrors "ouibooking.backend/internal/domain/errors"
)

// Industry identifies a business vertical a bot is configured for
type Industry string

// Category is one of the fixed groupings partitioning all industries
type Category string

const (
	CategoryHealthcare Category = "healthcare"
	CategoryProperty   Category = "property"
	CategoryServices   Category = "services"
	CategoryEducation  Category = "education"
	CategoryEmergency  Category = "emergency"
)

// categories in declaration order
var categories = []Category{
	CategoryHealthcare,
	CategoryProperty,
	CategoryServices,
	CategoryEducation,
	CategoryEmergency,
}

// industryNames maps every industry code to its display name. Display names
// are data, not translated strings.
var industryNames = map[Industry]string{
	"orthopedic_surgery_services":     "Orthopedic Surgery",
	"cardiology_services":             "Cardiology",
	"find_rental_property":            "Rental Property Search",
	"internal_medicine_services":      "Internal Medicine",
	"anesthesiology_services":         "Anesthesiology",
	"cryotherapy_services":            "Cryotherapy",
	"radiology_services":              "Radiology",
	"oncology_services":               "Oncology",
	"renovation_services":             "Renovation & Construction",
	"emergency_numbers":               "Emergency Services",
	"painting_services":               "Painting",
	"driver_services":                 "Driver & Transportation",
	"roofing_services":                "Roofing",
	"cook_services":                   "Cooking & Catering",
	"electrician_services":            "Electrician",
	"car_rental":                      "Car Rental",
	"nanny_services":                  "Childcare & Nanny",
	"gp_services":                     "General Practice Medicine",
	"financial_services":              "Financial Services",
	"plastic_surgery_services":        "Plastic Surgery",
	"laser_skin_services":             "Laser Skin Treatments",
	"tax_advisor_services":            "Tax Advisory",
	"Visa_Consultant":                 "Visa Consultancy",
	"international_school_search":     "International Schools",
	"pet_services":                    "Pet Care",
	"summer_school_programs":          "Summer School Programs",
	"gas_connection":                  "Gas Services",
	"orthodontics_services":           "Orthodontics",
	"rheumatology_services":           "Rheumatology",
	"notary_services":                 "Notary Services",
	"emergency_medicine_services":     "Emergency Medicine",
	"hair_services":                   "Hair Styling & Care",
	"ophthalmology_services":          "Ophthalmology",
	"massage_services":                "Massage Therapy",
	"banking_payment_setup":           "Banking & Payments",
	"gardening_services":              "Gardening & Landscaping",
	"barbershop_services":             "Barbershop",
	"legal_advice_general":            "General Legal Advice",
	"dermatology_services":            "Dermatology",
	"pediatric_services":              "Pediatrics",
	"oral_surgery_services":           "Oral Surgery",
	"spa_services":                    "Spa & Wellness",
	"security_services":               "Security Services",
	"business_setup":                  "Business Setup",
	"locksmith_services":              "Locksmith",
	"psychiatry_services":             "Psychiatry",
	"urology_services":                "Urology",
	"ent_services":                    "ENT (Ear, Nose & Throat)",
	"gynecology_obstetrics_services":  "Gynecology & Obstetrics",
	"gastroenterology_services":       "Gastroenterology",
	"nails_lashes_services":           "Nails & Lashes",
	"neurology_services":              "Neurology",
	"physiotherapy_services":          "Physiotherapy",
	"makeup_services":                 "Makeup & Beauty",
	"dentist_services":                "Dental Care",
	"maid_services":                   "Maid & Cleaning",
	"hospital_services":               "Hospital Services",
	"masonry_services":                "Masonry",
	"digital_marketing_services":      "Digital Marketing",
	"general_dentistry_services":      "General Dentistry",
	"plumbing_services":               "Plumbing",
	"currency_exchange_services":      "Currency Exchange",
	"geriatric_services":              "Geriatric Care",
	"cardiothoracic_surgery_services": "Cardiothoracic Surgery",
	"carpentry_services":              "Carpentry",
	"legal_advice":                    "Legal Services",
	"alternative_medicine_services":   "Alternative Medicine",
	"neurosurgery_services":           "Neurosurgery",
	"health_insurance":                "Health Insurance",
	"general_surgery_services":        "General Surgery",
	"embassy_registration":            "Embassy Registration",
	"license_conversion_process":      "License Conversion",
	"pulmonology_services":            "Pulmonology",
	"international_bank_services":     "International Banking",
	"sports_medicine_services":        "Sports Medicine",
	"electricity_installation":        "Electricity Installation",
	"relocation_services":             "Relocation Services",
	"tattoo_services":                 "Tattoo & Body Art",
	"temporary_housing":               "Temporary Housing",
	"endocrinology_services":          "Endocrinology",
}

// categoryIndustries partitions all industry codes across the categories,
// preserving declaration order within each category.
var categoryIndustries = map[Category][]Industry{
	CategoryHealthcare: {
		"orthopedic_surgery_services",
		"cardiology_services",
		"internal_medicine_services",
		"anesthesiology_services",
		"cryotherapy_services",
		"radiology_services",
		"oncology_services",
		"gp_services",
		"plastic_surgery_services",
		"laser_skin_services",
		"orthodontics_services",
		"rheumatology_services",
		"emergency_medicine_services",
		"ophthalmology_services",
		"dermatology_services",
		"pediatric_services",
		"oral_surgery_services",
		"psychiatry_services",
		"urology_services",
		"ent_services",
		"gynecology_obstetrics_services",
		"gastroenterology_services",
		"neurology_services",
		"physiotherapy_services",
		"dentist_services",
		"hospital_services",
		"general_dentistry_services",
		"geriatric_services",
		"cardiothoracic_surgery_services",
		"alternative_medicine_services",
		"neurosurgery_services",
		"health_insurance",
		"general_surgery_services",
		"pulmonology_services",
		"sports_medicine_services",
		"endocrinology_services",
	},
	CategoryProperty: {
		"find_rental_property",
		"renovation_services",
		"painting_services",
		"roofing_services",
		"electrician_services",
		"gas_connection",
		"gardening_services",
		"masonry_services",
		"plumbing_services",
		"carpentry_services",
		"electricity_installation",
		"temporary_housing",
	},
	CategoryServices: {
		"driver_services",
		"cook_services",
		"car_rental",
		"nanny_services",
		"financial_services",
		"tax_advisor_services",
		"Visa_Consultant",
		"pet_services",
		"notary_services",
		"hair_services",
		"massage_services",
		"banking_payment_setup",
		"barbershop_services",
		"legal_advice_general",
		"spa_services",
		"security_services",
		"business_setup",
		"locksmith_services",
		"nails_lashes_services",
		"makeup_services",
		"maid_services",
		"digital_marketing_services",
		"currency_exchange_services",
		"legal_advice",
		"embassy_registration",
		"license_conversion_process",
		"international_bank_services",
		"relocation_services",
		"tattoo_services",
	},
	CategoryEducation: {
		"international_school_search",
		"summer_school_programs",
	},
	CategoryEmergency: {
		"emergency_numbers",
	},
}

// industryCategory is the reverse index, built at init
var industryCategory = map[Industry]Category{}

// all is every industry code in category declaration order
var all []Industry

func init() {
	for _, cat := range categories {
		for _, code := range categoryIndustries[cat] {
			if _, dup := industryCategory[code]; dup {
				panic(fmt.Sprintf("taxonomy: industry %q appears in two categories", code))
			}
			if _, ok := industryNames[code]; !ok {
				panic(fmt.Sprintf("taxonomy: industry %q has no display name", code))
			}
			industryCategory[code] = cat
			all = append(all, code)
		}
	}
	if len(all) != len(industryNames) {
		panic(fmt.Sprintf("taxonomy: %d categorized industries but %d named", len(all), len(industryNames)))
	}
}

// NameOf returns the display name for an industry code
func NameOf(code Industry) (string, error) {
	name, ok := industryNames[code]
	if !ok {
		return "", domainerrors.ErrUnknownIndustry
	}
	return name, nil
}

// Valid reports whether code is part of the catalog
func Valid(code Industry) bool {
	_, ok := industryNames[code]
	return ok
}

// Categories returns all categories in declaration order
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IndustriesIn returns the industry codes of a category in declaration order
func IndustriesIn(cat Category) []Industry {
	src := categoryIndustries[cat]
	out := make([]Industry, len(src))
	copy(out, src)
	return out
}

// CategoryOf returns the category an industry code belongs to
func CategoryOf(code Industry) (Category, bool) {
	cat, ok := industryCategory[code]
	return cat, ok
}

// All returns every industry code, ordered by category declaration order
func All() []Industry {
	out := make([]Industry, len(all))
	copy(out, all)
	return out
}

// Search returns the industries whose display name or code contains term,
// case-insensitively. An empty term matches everything.
func Search(term string) []Industry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return All()
	}
	var out []Industry
	for _, code := range all {
		if strings.Contains(strings.ToLower(string(code)), term) ||
			strings.Contains(strings.ToLower(industryNames[code]), term) {
			out = append(out, code)
		}
	}
	return out
}
