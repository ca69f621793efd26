package logistics

import "github.com/shopspring/decimal"

// SumNull suma null-aware: el resultado es nulo solo si ningún aporte es
// válido; con al menos un aporte válido, los nulos restantes cuentan como
// cero. Es la única primitiva de agregación del motor; todas las columnas de
// subtotal y de total general pasan por aquí.
func SumNull(vals ...decimal.NullDecimal) decimal.NullDecimal {
	sum := decimal.Zero
	seen := false
	for _, v := range vals {
		if !v.Valid {
			continue
		}
		sum = sum.Add(v.Decimal)
		seen = true
	}
	if !seen {
		return decimal.NullDecimal{}
	}
	return known(sum)
}

// RoundNull redondea un nullable sin tocar su nulidad.
func RoundNull(v decimal.NullDecimal, places int32) decimal.NullDecimal {
	if !v.Valid {
		return v
	}
	return known(v.Decimal.Round(places))
}
