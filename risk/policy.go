package risk

import "fmt"

// Policy holds the account-level limits a planned trade is checked against.
// Zero fields are not enforced.
type Policy struct {
	MaxRiskPct float64 // percent of balance, e.g. 2
	MinRR      float64 // e.g. 1.5
}

// Decision is the outcome of Evaluate. Violations are advisory: the
// engines still compute numbers for a trade that breaks the policy.
type Decision struct {
	Allowed    bool
	Violations []Violation

	PlannedRiskPct float64
	PlannedRR      float64
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Evaluate checks a planned trade against the policy. rr is the plan's
// reward:risk ratio from CalculateRiskReward.
func Evaluate(p Policy, riskAmount, accountBalance, rr float64) Decision {
	d := Decision{Allowed: true, PlannedRR: rr}

	if accountBalance <= 0 {
		d.add(CodeBalance, "account balance must be greater than zero")
		return d
	}
	d.PlannedRiskPct = riskAmount / accountBalance * 100

	if p.MaxRiskPct > 0 && d.PlannedRiskPct > p.MaxRiskPct {
		d.add("RISK_TOO_HIGH",
			fmt.Sprintf("planned risk %.2f%% exceeds max %.2f%%", d.PlannedRiskPct, p.MaxRiskPct))
	}
	if p.MinRR > 0 && rr < p.MinRR {
		d.add("RR_TOO_LOW",
			fmt.Sprintf("RR %.2f below minimum %.2f", rr, p.MinRR))
	}
	return d
}
