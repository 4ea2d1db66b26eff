// Package profile defines the household profile value object and its derived
// totals. A profile is an immutable snapshot of user-entered numbers; every
// derived figure is recomputed on demand and never stored back into it.
package profile

import (
	"math"

	"github.com/KatyGHub/finhealth-app/pkg/constants"
)

// EmploymentType enumerates the recognized employment situations.
type EmploymentType string

// Employment types.
const (
	EmploymentUnset      EmploymentType = ""
	EmploymentSalaried   EmploymentType = "salaried"
	EmploymentBusiness   EmploymentType = "business"
	EmploymentFreelancer EmploymentType = "freelancer"
	EmploymentStudent    EmploymentType = "student"
	EmploymentOther      EmploymentType = "other"
)

// CityTier enumerates the recognized city tiers.
type CityTier string

// City tiers.
const (
	CityMetro CityTier = "metro"
	CityTier2 CityTier = "tier2"
	CityTier3 CityTier = "tier3"
)

// Household is a flat record of the numeric and enum inputs describing a
// household's finances. All currency amounts are monthly unless noted.
type Household struct {
	// Identity and context
	Age            int            `json:"age" yaml:"age"`
	Dependents     int            `json:"dependents" yaml:"dependents"`
	EmploymentType EmploymentType `json:"employmentType" yaml:"employmentType"`
	CityTier       CityTier       `json:"cityTier" yaml:"cityTier"`

	// Income
	IncomeSelf     float64 `json:"incomeSelf" yaml:"incomeSelf"`
	IncomeSpouse   float64 `json:"incomeSpouse" yaml:"incomeSpouse"`
	IncomeOther    float64 `json:"incomeOther" yaml:"incomeOther"`
	IncomeVariable float64 `json:"incomeVariable" yaml:"incomeVariable"`

	// Fixed expenses ("needs")
	FixedRent      float64 `json:"fixedRent" yaml:"fixedRent"`
	FixedFood      float64 `json:"fixedFood" yaml:"fixedFood"`
	FixedUtilities float64 `json:"fixedUtilities" yaml:"fixedUtilities"`
	FixedMedical   float64 `json:"fixedMedical" yaml:"fixedMedical"`

	// Variable expenses ("wants")
	VarWifi          float64 `json:"varWifi" yaml:"varWifi"`
	VarEntertainment float64 `json:"varEntertainment" yaml:"varEntertainment"`
	VarShopping      float64 `json:"varShopping" yaml:"varShopping"`
	VarMisc          float64 `json:"varMisc" yaml:"varMisc"`

	// Debt
	TotalEMI        float64 `json:"totalEmi" yaml:"totalEmi"`
	LoanOutstanding float64 `json:"loanOutstanding" yaml:"loanOutstanding"`

	// Protection and safety
	EmergencyFund float64 `json:"emergencyFund" yaml:"emergencyFund"`
	HealthCover   float64 `json:"healthCover" yaml:"healthCover"`
	LifeCover     float64 `json:"lifeCover" yaml:"lifeCover"`

	// Investments (current market values)
	InvBonds  float64 `json:"invBonds" yaml:"invBonds"`
	InvMF     float64 `json:"invMF" yaml:"invMF"`
	InvStocks float64 `json:"invStocks" yaml:"invStocks"`
	InvGold   float64 `json:"invGold" yaml:"invGold"`
	InvOthers float64 `json:"invOthers" yaml:"invOthers"`
}

// Normalize returns a copy of the household with every field coerced to its
// documented domain: currency amounts become non-negative finite numbers,
// counts become non-negative integers, and unset enums fall back to their
// defaults. The receiver is not modified.
func (h Household) Normalize() Household {
	out := h

	if out.Age <= 0 {
		out.Age = constants.DefaultAge
	}
	if out.Dependents < 0 {
		out.Dependents = 0
	}
	switch out.EmploymentType {
	case EmploymentSalaried, EmploymentBusiness, EmploymentFreelancer, EmploymentStudent, EmploymentOther:
	default:
		out.EmploymentType = EmploymentUnset
	}
	switch out.CityTier {
	case CityMetro, CityTier2, CityTier3:
	default:
		out.CityTier = CityTier(constants.DefaultCityTier)
	}

	for _, field := range []*float64{
		&out.IncomeSelf, &out.IncomeSpouse, &out.IncomeOther, &out.IncomeVariable,
		&out.FixedRent, &out.FixedFood, &out.FixedUtilities, &out.FixedMedical,
		&out.VarWifi, &out.VarEntertainment, &out.VarShopping, &out.VarMisc,
		&out.TotalEMI, &out.LoanOutstanding,
		&out.EmergencyFund, &out.HealthCover, &out.LifeCover,
		&out.InvBonds, &out.InvMF, &out.InvStocks, &out.InvGold, &out.InvOthers,
	} {
		*field = coerceAmount(*field)
	}

	return out
}

// coerceAmount maps NaN, infinities, and negative values to 0.
func coerceAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// FromMap builds a normalized household from a JSON-style map. Unknown keys
// are ignored; missing or non-numeric values take the documented defaults.
func FromMap(fields map[string]interface{}) Household {
	h := Household{
		Age:            int(number(fields, "age")),
		Dependents:     int(number(fields, "dependents")),
		EmploymentType: EmploymentType(str(fields, "employmentType")),
		CityTier:       CityTier(str(fields, "cityTier")),

		IncomeSelf:     number(fields, "incomeSelf"),
		IncomeSpouse:   number(fields, "incomeSpouse"),
		IncomeOther:    number(fields, "incomeOther"),
		IncomeVariable: number(fields, "incomeVariable"),

		FixedRent:      number(fields, "fixedRent"),
		FixedFood:      number(fields, "fixedFood"),
		FixedUtilities: number(fields, "fixedUtilities"),
		FixedMedical:   number(fields, "fixedMedical"),

		VarWifi:          number(fields, "varWifi"),
		VarEntertainment: number(fields, "varEntertainment"),
		VarShopping:      number(fields, "varShopping"),
		VarMisc:          number(fields, "varMisc"),

		TotalEMI:        number(fields, "totalEmi"),
		LoanOutstanding: number(fields, "loanOutstanding"),

		EmergencyFund: number(fields, "emergencyFund"),
		HealthCover:   number(fields, "healthCover"),
		LifeCover:     number(fields, "lifeCover"),

		InvBonds:  number(fields, "invBonds"),
		InvMF:     number(fields, "invMF"),
		InvStocks: number(fields, "invStocks"),
		InvGold:   number(fields, "invGold"),
		InvOthers: number(fields, "invOthers"),
	}
	return h.Normalize()
}

// number extracts a numeric value from a decoded JSON map, tolerating the
// types encoding/json and YAML decoders produce.
func number(fields map[string]interface{}, key string) float64 {
	raw, ok := fields[key]
	if !ok {
		return 0
	}
	switch v := raw.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return 0
	}
}

func str(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}
