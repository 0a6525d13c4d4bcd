package dashboard

import (
	"strconv"
)

func formatInt(v int) string {
	return strconv.Itoa(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func growthLabel(pct float64) string {
	if pct == 0 {
		return ""
	}
	sign := "+"
	if pct < 0 {
		sign = ""
	}
	return sign + formatFloat(pct) + "% vs mês anterior"
}

func dailyGainLabel(kg float64) string {
	if kg == 0 {
		return ""
	}
	return "Ganho diário: " + formatFloat(kg) + "kg"
}
