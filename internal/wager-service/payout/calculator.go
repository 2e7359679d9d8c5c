package payout

import "math"

// NetPayoutCents calcula o prêmio líquido garantido em centavos:
// bruto = stake * multiplicador do plano * bônus do período; a taxa da
// plataforma é descontada do bruto e o resultado arredondado para o centavo
// (half-up). Função pura: mesmo input, mesmo output, sem relógio nem I/O.
func NetPayoutCents(stakeCents int64, planMultiplier, periodBonusMultiplier, platformFeeRate float64) int64 {
	gross := float64(stakeCents) * planMultiplier * periodBonusMultiplier
	net := gross * (1 - platformFeeRate)
	return int64(math.Round(net))
}

// GrossPayoutCents expõe o bruto antes da taxa, usado só para exibição.
func GrossPayoutCents(stakeCents int64, planMultiplier, periodBonusMultiplier float64) int64 {
	return int64(math.Round(float64(stakeCents) * planMultiplier * periodBonusMultiplier))
}
