package service

import (
	"sort"

	tariffdomain "github.com/wattwiselabs/wattwise/internal/tariff/domain"
)

// ComputeBill partitions consumption across blocks in ascending kwh_from
// order and sums the per-block energy charges plus one fixed charge.
//
// Blocks are assumed contiguous and non-overlapping; that is a property of
// the reference table, not validated here. Consumption beyond the last
// bounded block is only charged if an unbounded block covers it.
func ComputeBill(consumptionKwh float64, blocks []tariffdomain.Block, fixedLkr float64) (*tariffdomain.Computation, error) {
	if consumptionKwh < 0 {
		return nil, tariffdomain.ErrNegativeConsumption
	}

	ordered := make([]tariffdomain.Block, len(blocks))
	copy(ordered, blocks)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].KwhFrom < ordered[j].KwhFrom
	})

	comp := &tariffdomain.Computation{
		ConsumptionKwh: consumptionKwh,
		FixedLkr:       fixedLkr,
	}

	for _, b := range ordered {
		upper := consumptionKwh
		if b.KwhTo != nil && *b.KwhTo < upper {
			upper = *b.KwhTo
		}
		qty := upper - b.KwhFrom
		if qty <= 0 {
			continue
		}
		amount := qty * b.RateLkrPerKwh
		comp.EnergyLkr += amount
		comp.Breakdown = append(comp.Breakdown, tariffdomain.BlockCharge{
			Block:         b.Label,
			Kwh:           qty,
			RateLkrPerKwh: b.RateLkrPerKwh,
			AmountLkr:     amount,
		})
	}

	comp.TotalLkr = comp.EnergyLkr + comp.FixedLkr
	return comp, nil
}
