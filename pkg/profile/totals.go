package profile

// Totals holds the aggregates derived from a household profile. Totals are
// always recomputed from a normalized profile, never persisted.
type Totals struct {
	TotalIncome      float64 `json:"totalIncome"`
	FixedTotal       float64 `json:"fixedTotal"`
	VariableTotal    float64 `json:"variableTotal"`
	TotalExpenses    float64 `json:"totalExpenses"`
	MonthlySavings   float64 `json:"monthlySavings"`
	SavingsRate      float64 `json:"savingsRate"`
	TotalInvestments float64 `json:"totalInvestments"`
}

// Derive computes the aggregate totals for the household. A spending deficit
// floors monthly savings at zero rather than modeling debt growth, and a zero
// income yields a zero savings rate rather than a division error.
func (h Household) Derive() Totals {
	n := h.Normalize()

	t := Totals{}
	t.TotalIncome = n.IncomeSelf + n.IncomeSpouse + n.IncomeOther + n.IncomeVariable
	t.FixedTotal = n.FixedRent + n.FixedFood + n.FixedUtilities + n.FixedMedical
	t.VariableTotal = n.VarWifi + n.VarEntertainment + n.VarShopping + n.VarMisc
	t.TotalExpenses = t.FixedTotal + t.VariableTotal

	if savings := t.TotalIncome - t.TotalExpenses; savings > 0 {
		t.MonthlySavings = savings
	}
	if t.TotalIncome > 0 {
		t.SavingsRate = t.MonthlySavings / t.TotalIncome
	}

	t.TotalInvestments = n.InvBonds + n.InvMF + n.InvStocks + n.InvGold + n.InvOthers
	return t
}
