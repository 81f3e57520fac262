package planner

import (
	"fmt"

	"hungerguard/internal/domain"
)

// BuildAllocationPrompt returns the instruction prompt for generative
// planners. The required section layout and impact labels mirror the
// deterministic Composer so ExtractImpact can read the output.
func BuildAllocationPrompt(rawReport string, focus domain.PriorityFocus) string {
	return fmt.Sprintf(`You are an expert supply chain logistics coordinator called "HungerGuard AI".
Your goal is to minimize food waste and hunger by optimally matching food surplus to communities in need.

Consider these factors in priority order:
1. URGENCY: Address critical hunger situations first
2. PERISHABILITY: Highly perishable goods must be allocated immediately to nearest locations
3. PROXIMITY: Minimize transportation distance to reduce spoilage and environmental impact
4. ECONOMIC IMPACT: Support struggling farmers when possible without compromising hunger relief
5. ENVIRONMENTAL EFFICIENCY: Minimize CO2 emissions and resource waste

Priority focus for this request: %s

Surplus report:
%s

Produce a plain-text distribution plan with these sections, in order:
an IDENTIFIED FOOD SURPLUS list, an ALLOCATION STRATEGY, a LOGISTICS & DISTRIBUTION
section, and an ESTIMATED IMPACT section. The impact section MUST contain exactly
these lines, with your numbers substituted:
   • People served: ~<number> individuals
   • Food waste prevented: <number>kg
   • Economic value: ₹<number with comma separators>
   • CO2 emissions avoided: <number>kg
   • Water saved: ~<number> liters

End with a single line starting with "Summary: " that recaps the plan in one sentence.`, focus, rawReport)
}
